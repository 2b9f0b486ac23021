// File: doc.go
// Title: Package Documentation for strhelp
// Description: Package strhelp groups, compares and transforms collections of
//              strings such as dataset file names, and validates printf
//              style format strings.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial implementation

// Package strhelp provides string helpers for organising file and dataset
// names in visualization front ends.
//
// Overview
//
// The package is a flat set of pure functions. None of them keeps state
// between calls, so every function is safe for concurrent use. The only
// shared structure is the compiled-regex cache from foundation/core/cache,
// which is internally synchronized.
//
// Functional groups:
//
//   - Relevance filtering: RelevantString, RelevanceFilter (relevant.go)
//   - Grouping: GroupStrings, GroupStringsAsPaths, GroupStringsFixedAlpha,
//     GroupSortedSetFixedAlpha (group.go)
//   - Paths: Basename, Dirname (path.go)
//   - Regular expressions: FindRE, ReplaceRE, ExtractRESubstr (regex.go)
//   - printf validation: ValidatePrintfFormatString (format.go)
//   - Words: Plural (plural.go)
//   - Helpers: Replace, Car, Cdr, Split, Append, IsPureASCII (helpers.go)
//
// Relevant characters
//
// Grouping sorts strings by their relevant characters: the bytes not in an
// ignore set. With the default set, digits and punctuation are ignored so
// "run_0010.silo" and "run_0020.silo" compare equal and land next to each
// other. The ignore set is always passed explicitly:
//
//	groups := strhelp.GroupStrings(names, 3, strhelp.DefaultNonRelevantChars)
//	for _, g := range groups {
//		fmt.Println(g.Name, len(g.Members))
//	}
//
// Sorting is not stable; strings with equal relevant projections may appear
// in either order inside a group.
//
// Regular expressions
//
// Patterns use POSIX extended syntax and leftmost-longest matching
// (regexp.CompilePOSIX). Perl extensions such as \d are not available; use
// [0-9]. ExtractRESubstr takes a wrapped pattern naming the capture group:
//
//	cycle, err := strhelp.ExtractRESubstr("run_23_0010_yana.silo", `<.*_([0-9]{4})_.*\..*> \1`)
//	// cycle == "0010"
//
// Errors
//
// Functions that can fail return errors from foundation/core/error with a
// code: CodeInvalidInput, CodeInvalidPattern, CodeNoMatch, CodeUnknownType,
// CodeArityMismatch or CodeFormatMismatch. FindRE keeps the integer
// sentinels FindNone and FindError.
package strhelp
