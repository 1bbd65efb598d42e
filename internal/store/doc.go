// Package store defines the data-access contract for to-do lists. The
// interfaces here abstract the underlying document store from the HTTP
// layer, so handlers stay independent of whether lists live in MongoDB or
// in a PostgreSQL JSONB column.
package store
