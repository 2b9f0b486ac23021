// File: format.go
// Title: printf Format String Validation
// Description: Checks that a printf style format string has one conversion
//              specifier per declared C argument type and that each
//              specifier is compatible with its type.
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
	"sort"
	"strings"

	sherror "github.com/msto63/strhelp/foundation/core/error"
)

// building blocks of the conversion specifier expressions
const (
	fmtFlags     = `%#?0?-? ?\+?'?`
	fmtIntFlags  = fmtFlags + `I?`
	fmtPrecision = `(([1-9][0-9]*)?(\.[0-9]*)?)?`

	// literal text between specifiers: anything but '%', or an escaped "%%"
	fmtLiteral = `([^%]|%%)*`
)

// typeNameToFmtRE maps C type names to the specifier expression accepted for
// an argument of that type. Read-only after init.
var typeNameToFmtRE = func() map[string]string {
	m := map[string]string{
		"float":                  fmtFlags + fmtPrecision + `[eEfFgGaA]`,
		"double":                 fmtFlags + fmtPrecision + `[eEfFgGaA]`,
		"long double":            fmtFlags + fmtPrecision + `L[eEfFgGaA]`,
		"int":                    fmtIntFlags + fmtPrecision + `[di]`,
		"long int":               fmtIntFlags + fmtPrecision + `l[di]`,
		"long long int":          fmtIntFlags + fmtPrecision + `ll[di]`,
		"unsigned int":           fmtIntFlags + fmtPrecision + `[ouxX]`,
		"unsigned long int":      fmtIntFlags + fmtPrecision + `l[ouxX]`,
		"unsigned long long int": fmtIntFlags + fmtPrecision + `ll[ouxX]`,
		"short int":              fmtIntFlags + fmtPrecision + `h[di]`,
		"unsigned short int":     fmtIntFlags + fmtPrecision + `h[ouxX]`,
		"char":                   `%c`,
		"unsigned char":          fmtIntFlags + fmtPrecision + `hh[ouxX]`,
		"char*":                  fmtIntFlags + fmtPrecision + `s`,
		"void*":                  `%p`,
		"size_t":                 fmtIntFlags + fmtPrecision + `z[ouxX]`,
	}

	aliases := map[string]string{
		"long":               "long int",
		"long long":          "long long int",
		"unsigned":           "unsigned int",
		"unsigned long":      "unsigned long int",
		"unsigned long long": "unsigned long long int",
		"short":              "short int",
		"unsigned short":     "unsigned short int",
	}
	for alias, target := range aliases {
		m[alias] = m[target]
	}

	return m
}()

// KnownFormatTypes returns the accepted type names in sorted order
func KnownFormatTypes() []string {
	names := make([]string, 0, len(typeNameToFmtRE))
	for name := range typeNameToFmtRE {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// CountConversionSpecs returns the number of conversion specifiers in
// format. A "%%" pair is a literal percent sign and is not counted; a
// trailing lone '%' is not counted either.
func CountConversionSpecs(format string) int {
	n := 0
	for i := 0; i < len(format)-1; i++ {
		if format[i] != '%' {
			continue
		}
		if format[i+1] == '%' {
			i++
			continue
		}
		n++
	}
	return n
}

// ValidatePrintfFormatString reports whether format has exactly one
// conversion specifier per entry of argTypes, each compatible with the C
// type named by that entry. A format without specifiers is always valid.
func ValidatePrintfFormatString(format string, argTypes ...string) bool {
	return ValidatePrintfFormat(format, argTypes) == nil
}

// ValidatePrintfFormat performs the same check as ValidatePrintfFormatString
// and reports why validation failed: CodeUnknownType for a type name not in
// KnownFormatTypes, CodeArityMismatch when the number of types differs from
// the number of specifiers, CodeFormatMismatch when a specifier does not fit
// its type.
func ValidatePrintfFormat(format string, argTypes []string) error {
	const op = module + ".ValidatePrintfFormat"

	nspecs := CountConversionSpecs(format)
	if nspecs == 0 {
		return nil
	}

	if len(argTypes) != nspecs {
		return sherror.New(fmt.Sprintf("format has %d conversion specifiers but %d argument types were given", nspecs, len(argTypes))).
			WithCode(sherror.CodeArityMismatch).
			WithOperation(op).
			WithDetails(map[string]interface{}{
				"format":     format,
				"specifiers": nspecs,
				"types":      len(argTypes),
			})
	}

	var re strings.Builder
	re.WriteString("^")
	for i, typeName := range argTypes {
		spec, ok := typeNameToFmtRE[typeName]
		if !ok {
			return sherror.New(fmt.Sprintf("unknown printf argument type %q", typeName)).
				WithCode(sherror.CodeUnknownType).
				WithOperation(op).
				WithDetails(map[string]interface{}{
					"type":  typeName,
					"index": i,
				})
		}
		re.WriteString(fmtLiteral)
		re.WriteString(spec)
	}
	re.WriteString(fmtLiteral)
	re.WriteString("$")

	if FindRE(format, re.String()) < 0 {
		return sherror.New("format string does not match the argument types").
			WithCode(sherror.CodeFormatMismatch).
			WithOperation(op).
			WithDetails(map[string]interface{}{
				"format": format,
				"types":  strings.Join(argTypes, ", "),
			})
	}

	return nil
}
