// Package constants provides shared constants used throughout the
// persondir codebase.
package constants

import "time"

// Attribute constants define well-known attribute names
const (
	// DefaultUsernameAttribute is the attribute name used to seed a
	// single-identity lookup when no provider is configured
	DefaultUsernameAttribute = "username"
)

// Timeout constants define various timeout durations used in the application
const (
	// DefaultQueryTimeout is the default timeout for a backing-source query
	DefaultQueryTimeout = 10 * time.Second

	// CommandTimeout is the maximum runtime for a CLI command
	CommandTimeout = 2 * time.Minute
)

// File permission constants define standard Unix file permissions
const (
	// DirPermissions is the default permission for created directories (rwxr-xr-x)
	DirPermissions = 0755

	// FilePermissions is the default permission for created files (rw-r--r--)
	FilePermissions = 0644
)
