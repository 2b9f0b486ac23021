// File: doc.go
// Title: Package Documentation for error
// Description: Structured error type shared by the strhelp foundation packages.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial implementation

// Package error provides the structured error used throughout strhelp.
//
// Errors carry a machine readable Code, a Severity, an operation name and a
// free-form details map. They implement the standard error interface and
// support errors.Is / errors.As through Unwrap.
//
//	err := sherror.New("unknown printf argument type").
//		WithCode(sherror.CodeUnknownType).
//		WithOperation("strhelp.ValidatePrintfFormat").
//		WithDetail("type", "quad")
//
//	if sherror.HasCode(err, sherror.CodeUnknownType) {
//		// ...
//	}
//
// The package is conventionally imported under the alias sherror because its
// name collides with the predeclared error type.
package error
