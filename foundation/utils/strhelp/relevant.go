// File: relevant.go
// Title: Relevance-Filtered String Comparison
// Description: Projects strings onto their relevant characters (those not in
//              an ignore set) and compares/sorts by that projection.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial implementation

package strhelp

import (
	"slices"
	"strings"
)

// DefaultNonRelevantChars is the ignore set used when callers have no
// preference: punctuation, brackets, separators and digits.
const DefaultNonRelevantChars = "`~!@#$%^&*()-_=+{[}]|\\:;\"'<,>.?/0123456789"

// PathNonRelevantChars is the ignore set used by GroupStringsAsPaths. It keeps
// path separators, dots and digits significant.
const PathNonRelevantChars = "`~!@#$%^&*()|\\\"'?"

// RelevantString returns input with every byte that occurs in ignoreChars
// removed. It is idempotent for a fixed ignore set.
func RelevantString(input, ignoreChars string) string {
	if ignoreChars == "" || input == "" {
		return input
	}

	var b strings.Builder
	b.Grow(len(input))
	for i := 0; i < len(input); i++ {
		if strings.IndexByte(ignoreChars, input[i]) < 0 {
			b.WriteByte(input[i])
		}
	}
	return b.String()
}

// CompareRelevantStrings compares the relevant projections of a and b
// byte-wise. It returns -1, 0 or +1.
func CompareRelevantStrings(a, b, ignoreChars string) int {
	return strings.Compare(RelevantString(a, ignoreChars), RelevantString(b, ignoreChars))
}

// RelevanceFilter carries an ignore set through comparisons and sorts. The
// zero value ignores nothing and compares whole strings.
type RelevanceFilter struct {
	ignore string
}

// NewRelevanceFilter creates a filter ignoring the bytes in ignoreChars
func NewRelevanceFilter(ignoreChars string) RelevanceFilter {
	return RelevanceFilter{ignore: ignoreChars}
}

// IgnoreChars returns the filter's ignore set
func (f RelevanceFilter) IgnoreChars() string {
	return f.ignore
}

// Relevant returns the relevant projection of s
func (f RelevanceFilter) Relevant(s string) string {
	return RelevantString(s, f.ignore)
}

// Compare is a three-way comparison of the relevant projections of a and b
func (f RelevanceFilter) Compare(a, b string) int {
	return CompareRelevantStrings(a, b, f.ignore)
}

// Sort sorts list in place by relevant projection. The sort is not stable:
// strings with equal projections may appear in any relative order.
func (f RelevanceFilter) Sort(list []string) {
	if len(list) < 2 {
		return
	}
	if f.ignore == "" {
		slices.Sort(list)
		return
	}

	// project once instead of on every comparison
	keyed := make([]keyedString, len(list))
	for i, s := range list {
		keyed[i] = keyedString{key: f.Relevant(s), value: s}
	}
	slices.SortFunc(keyed, func(a, b keyedString) int {
		return strings.Compare(a.key, b.key)
	})
	for i := range keyed {
		list[i] = keyed[i].value
	}
}

// Sorted returns a sorted copy of list, leaving list untouched
func (f RelevanceFilter) Sorted(list []string) []string {
	out := slices.Clone(list)
	f.Sort(out)
	return out
}

type keyedString struct {
	key   string
	value string
}
