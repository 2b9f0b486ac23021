// File: errors.go
// Title: Error Constructors for strhelp
// Description: Helpers producing structured errors with consistent operation
//              names and details.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial implementation

package strhelp

import (
	"fmt"

	sherror "github.com/msto63/strhelp/foundation/core/error"
)

const module = "strhelp"

func invalidInputError(operation, field string, value interface{}, expected string) *sherror.Error {
	return sherror.New(fmt.Sprintf("invalid %s for %s.%s: expected %s", field, module, operation, expected)).
		WithCode(sherror.CodeInvalidInput).
		WithOperation(module + "." + operation).
		WithDetails(map[string]interface{}{
			"field":    field,
			"value":    value,
			"expected": expected,
		})
}

func invalidPatternError(operation, pattern, reason string) *sherror.Error {
	return sherror.New(fmt.Sprintf("invalid pattern for %s.%s: %s", module, operation, reason)).
		WithCode(sherror.CodeInvalidPattern).
		WithOperation(module + "." + operation).
		WithDetail("pattern", pattern)
}

// wrapPatternError keeps err in the chain so callers can reach the
// underlying *syntax.Error with errors.As.
func wrapPatternError(operation, pattern string, err error) *sherror.Error {
	return sherror.Wrap(err, fmt.Sprintf("invalid pattern for %s.%s", module, operation)).
		WithCode(sherror.CodeInvalidPattern).
		WithOperation(module + "." + operation).
		WithDetail("pattern", pattern)
}

func noMatchError(operation, pattern string) *sherror.Error {
	return sherror.New(fmt.Sprintf("%s.%s: no match", module, operation)).
		WithCode(sherror.CodeNoMatch).
		WithOperation(module + "." + operation).
		WithDetail("pattern", pattern)
}
