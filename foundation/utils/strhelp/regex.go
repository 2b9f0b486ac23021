// File: regex.go
// Title: Regular Expression Helpers
// Description: Thin helpers over POSIX extended regular expressions: find a
//              match offset, prefix replacement and capture extraction using
//              the "<REGEX> \N" wrapper notation.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial implementation

package strhelp

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/msto63/strhelp/foundation/core/cache"
)

// FindRE results that are not offsets
const (
	FindNone  = -1
	FindError = -2
)

// MaxCaptureGroups bounds the capture index accepted by ExtractRESubstr
const MaxCaptureGroups = 255

// compile goes through the shared cache; all patterns are POSIX ERE
func compile(pattern string) (*regexp.Regexp, error) {
	return cache.Default().Compile(pattern)
}

// FindRE returns the byte offset of the first match of pattern in text,
// FindNone if there is no match, or FindError if pattern does not compile or
// the match does not start inside text.
func FindRE(text, pattern string) int {
	re, err := compile(pattern)
	if err != nil {
		return FindError
	}

	loc := re.FindStringIndex(text)
	if loc == nil {
		return FindNone
	}
	if loc[0] < 0 || loc[0] >= len(text) {
		return FindError
	}
	return loc[0]
}

// ReplaceRE replaces everything from the start of the first match of pattern
// to the end of text with replacement. Patterns are expected to be anchored
// with "$", in which case this is an ordinary suffix substitution. The second
// result reports whether a replacement happened; text is returned unchanged
// otherwise.
func ReplaceRE(text, pattern, replacement string) (string, bool) {
	n := FindRE(text, pattern)
	if n < 0 {
		return text, false
	}
	return text[:n] + replacement, true
}

// ExtractRESubstr returns a capture group of the first match of a wrapped
// pattern. The wrapper is "<REGEX>" for the whole match or "<REGEX> \N" for
// capture group N, e.g. "<.*_([0-9]{4})_.*\..*> \1".
//
// A malformed wrapper, an invalid regular expression or a group index out of
// range yields an error with CodeInvalidPattern. No match, or a group that
// did not take part in the match, yields CodeNoMatch. A group that matched
// empty text yields "", nil.
func ExtractRESubstr(text, wrapped string) (string, error) {
	pattern, group, err := parseWrappedPattern(wrapped)
	if err != nil {
		return "", err
	}

	re, err := compile(pattern)
	if err != nil {
		return "", wrapPatternError("ExtractRESubstr", wrapped, err)
	}
	if group > re.NumSubexp() {
		return "", invalidPatternError("ExtractRESubstr", wrapped,
			"capture group "+strconv.Itoa(group)+" exceeds the "+strconv.Itoa(re.NumSubexp())+" groups in the expression")
	}

	loc := re.FindStringSubmatchIndex(text)
	if loc == nil || loc[2*group] < 0 {
		return "", noMatchError("ExtractRESubstr", wrapped)
	}
	return text[loc[2*group]:loc[2*group+1]], nil
}

// parseWrappedPattern splits "<REGEX>" or "<REGEX> \N" into REGEX and N
func parseWrappedPattern(wrapped string) (string, int, error) {
	if !strings.HasPrefix(wrapped, "<") {
		return "", 0, invalidPatternError("ExtractRESubstr", wrapped, "pattern must start with '<'")
	}

	last := strings.LastIndexByte(wrapped, '>')
	if last <= 0 {
		return "", 0, invalidPatternError("ExtractRESubstr", wrapped, "pattern must close with '>'")
	}

	pattern := wrapped[1:last]
	rest := wrapped[last+1:]
	if rest == "" {
		return pattern, 0, nil
	}

	digits, ok := strings.CutPrefix(rest, ` \`)
	if !ok || digits == "" {
		return "", 0, invalidPatternError("ExtractRESubstr", wrapped, `expected " \N" after '>'`)
	}

	group, err := strconv.Atoi(digits)
	if err != nil || group < 0 || strings.ContainsAny(digits, "+-") {
		return "", 0, invalidPatternError("ExtractRESubstr", wrapped, "capture reference must be a decimal number")
	}
	if group >= MaxCaptureGroups {
		return "", 0, invalidPatternError("ExtractRESubstr", wrapped,
			"capture reference must be below "+strconv.Itoa(MaxCaptureGroups))
	}

	return pattern, group, nil
}
