// File: helpers.go
// Title: Miscellaneous String Helpers
// Description: Literal replacement, first/rest token splitting, separator
//              splitting without empty tokens, blank-skipping append and a
//              printable-ASCII check.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial implementation

package strhelp

import (
	"strings"
	"unicode"
)

// Replace replaces every non-overlapping occurrence of before in source with
// after, scanning left to right. An empty before leaves source unchanged.
func Replace(source, before, after string) string {
	if before == "" {
		return source
	}
	return strings.ReplaceAll(source, before, after)
}

// Car returns the text before the first sep, or s if sep does not occur
func Car(s string, sep byte) string {
	if i := strings.IndexByte(s, sep); i >= 0 {
		return s[:i]
	}
	return s
}

// Cdr returns the text after the first sep, or s if sep does not occur
func Cdr(s string, sep byte) string {
	if i := strings.IndexByte(s, sep); i >= 0 {
		return s[i+1:]
	}
	return s
}

// Split splits s at every sep and drops empty tokens, so "a,,b," yields
// ["a" "b"].
func Split(s string, sep byte) []string {
	var tokens []string
	for len(s) > 0 {
		i := strings.IndexByte(s, sep)
		if i < 0 {
			tokens = append(tokens, s)
			break
		}
		if i > 0 {
			tokens = append(tokens, s[:i])
		}
		s = s[i+1:]
	}
	return tokens
}

// Append appends the elements of src that contain at least one non-space
// character to dest and returns the extended slice.
func Append(dest, src []string) []string {
	for _, s := range src {
		if !isBlank(s) {
			dest = append(dest, s)
		}
	}
	return dest
}

func isBlank(s string) bool {
	return strings.IndexFunc(s, func(r rune) bool { return !unicode.IsSpace(r) }) < 0
}

// IsPureASCII reports whether text consists of printable ASCII plus the
// usual whitespace and control characters 0x01 and 0x07-0x0D. Scanning stops
// at the first NUL byte.
func IsPureASCII(text string) bool {
	return IsPureASCIIBytes([]byte(text), len(text))
}

// IsPureASCIIBytes is IsPureASCII over the first length bytes of txt. A
// negative length or one past the end of txt scans all of txt.
func IsPureASCIIBytes(txt []byte, length int) bool {
	if length < 0 || length > len(txt) {
		length = len(txt)
	}

	for _, c := range txt[:length] {
		if (c > 1 && c < 7) || (c > 13 && c < 32) || c > 127 {
			return false
		}
		if c == 0 {
			break
		}
	}
	return true
}
