// Package domain contains the core entities of the to-do lists service:
// lists, the items they own, and the summary projection used when listing
// every list. It is independent of any storage or delivery mechanism.
package domain
