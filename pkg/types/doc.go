// Package types defines the Table interface, the football entity types,
// configuration, and the typed errors shared by the footadmin record store
// and its callers.
package types
