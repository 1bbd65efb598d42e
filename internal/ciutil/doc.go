// Package ciutil detects CI environments and resolves the connection strings
// integration tests run against.
//
// Integration tests call RequireEnv with the resolved URI: locally a missing
// URI skips the test, while in CI it fails it, so a misconfigured pipeline
// cannot pass by silently skipping every backend.
package ciutil
