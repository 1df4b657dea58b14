// Package error provides the coded error type used across nvdiff.
//
// Package: error
// Title: nvdiff Error Handling
// Description: Structured errors carrying a code, a severity, the failing operation
//              and free-form details such as the file a parse error belongs to.
//              Errors stay compatible with the standard errors package.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with contextual errors and codes
// - 2026-10-19 v0.2.0: Reduced to the codes used by the dump and dictionary readers
//
// Usage:
//
//	err := mdwerror.New("Invalid format input file").
//		WithCode(mdwerror.CodeInvalidFormat).
//		WithOperation("dump.Parse").
//		WithDetail("line", 12)
//
//	if mdwerror.HasCode(err, mdwerror.CodeInvalidFormat) {
//		// report and abort
//	}
package error
