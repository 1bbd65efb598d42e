// Package api handles incoming HTTP requests, request validation and
// response formatting. TodoHandler adapts each route to a single
// store.TodoListStore call and maps store and domain errors to status codes.
package api
