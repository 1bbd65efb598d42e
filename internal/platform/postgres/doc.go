// Package postgres provides a PostgreSQL implementation of store.TodoListStore.
//
// Lists are stored as documents: one row per list, with the items embedded in
// a JSONB array column. Each mutation is a single UPDATE whose SET expression
// rewrites the array server-side, so the row lock taken by the UPDATE is the
// only coordination needed between concurrent requests.
package postgres
