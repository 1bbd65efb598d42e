// Package mongo provides the MongoDB implementation of store.TodoListStore.
//
// Each list is one document in a single collection, with its items embedded
// as an array. Every mutation is a single findAndModify/update command that
// targets the list document and, where needed, the matching array element,
// so concurrent requests against the same list never lose updates.
package mongo
