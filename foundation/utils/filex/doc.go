// Package filex provides the small set of file helpers shared by the
// command line, the configuration locator and the dump loader.
//
// Package: filex
// Title: File Helpers
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation with comprehensive file utilities
// - 2026-10-19 v0.2.0: Reduced to existence checks, size formatting and OpenAppend
//
// Example:
//
//	if !filex.Exists(path) {
//		fmt.Printf("nvdiff: %s not found\n", path)
//	}
//
//	f, err := filex.OpenAppend("logs/browse.log", 0o644)
package filex
