// Package types defines the item and slot entity types, the compatibility
// rule model, solve configuration, solution and report types, and standard
// error types for the Stowage assignment engine.
package types
