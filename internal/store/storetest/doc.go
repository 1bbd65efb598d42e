// Package storetest provides a conformance suite that every
// store.TodoListStore implementation must pass. Backends call
// RunTodoListStoreSuite from their own integration tests.
package storetest
