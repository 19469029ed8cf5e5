// Package types defines the shared contracts of the binkit toolkit: the
// Medium interface random-access editors operate on, and the typed errors
// every component reports through.
//
// Design goals:
//   - Explicit byte order per instance, never ambient configuration.
//   - All-or-nothing scalar transfers; a failed read never moves the cursor.
//   - Typed errors with stable categories (end-of-data/position/closed/medium).
//
// This package has no dependencies beyond the standard library.
package types
