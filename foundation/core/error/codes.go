// File: codes.go
// Title: Error Code Definitions
// Description: Defines the error codes used by the strhelp library and its
//              command line front end.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial implementation

package error

// Code represents a structured error code for categorizing errors
type Code string

const (
	// Generic codes
	CodeUnknown      Code = "UNKNOWN"
	CodeInternal     Code = "INTERNAL"
	CodeNotFound     Code = "NOT_FOUND"
	CodeInvalidInput Code = "INVALID_INPUT"

	// Regular expression handling
	CodeInvalidPattern Code = "INVALID_PATTERN"
	CodeNoMatch        Code = "NO_MATCH"

	// printf format validation
	CodeUnknownType    Code = "UNKNOWN_TYPE"
	CodeArityMismatch  Code = "ARITY_MISMATCH"
	CodeFormatMismatch Code = "FORMAT_MISMATCH"

	// Configuration
	CodeConfigInvalid Code = "CONFIG_INVALID"
)

// String returns the string representation of the code
func (c Code) String() string {
	return string(c)
}

// IsValid reports whether the code is one of the codes defined above
func (c Code) IsValid() bool {
	_, ok := codeSeverity[c]
	return ok
}

var codeSeverity = map[Code]Severity{
	CodeUnknown:        SeverityMedium,
	CodeInternal:       SeverityHigh,
	CodeNotFound:       SeverityLow,
	CodeInvalidInput:   SeverityLow,
	CodeInvalidPattern: SeverityLow,
	CodeNoMatch:        SeverityLow,
	CodeUnknownType:    SeverityLow,
	CodeArityMismatch:  SeverityLow,
	CodeFormatMismatch: SeverityLow,
	CodeConfigInvalid:  SeverityMedium,
}

// GetSeverityFromCode returns the default severity for an error code
func GetSeverityFromCode(code Code) Severity {
	if s, ok := codeSeverity[code]; ok {
		return s
	}
	return SeverityMedium
}
