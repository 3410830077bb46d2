// Package utils provides shared helpers for sealpost.
//
// # Filesystem Utilities
//
//   - ReadTextFile: reads a post along with its permission bits
//   - WriteFileAtomic: replaces a file via temp file, sync and rename
//
// # System Utilities
//
//   - GetUsername, GetHostname: identity recorded in the audit trail
//
// # Terminal Utilities
//
//   - ReadPassword: no-echo password entry from stdin or the controlling TTY
//   - IsTerminal: checks whether stdin is a terminal
package utils
