// File: group.go
// Title: String Grouping
// Description: Partitions string collections into ordered groups by leading
//              or trailing substring, by directory name, or into fixed-size
//              alphabetical buckets.
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
)

// Group is an ordered run of strings sharing a key
type Group struct {
	Name    string   `json:"name" yaml:"name"`
	Members []string `json:"members" yaml:"members"`
}

// Len returns the number of members
func (g Group) Len() int {
	return len(g.Members)
}

// SplitGroups returns the members and names of groups as parallel slices
func SplitGroups(groups []Group) (members [][]string, names []string) {
	if len(groups) == 0 {
		return nil, nil
	}
	members = make([][]string, len(groups))
	names = make([]string, len(groups))
	for i, g := range groups {
		members[i] = g.Members
		names[i] = g.Name
	}
	return members, names
}

// GroupStrings sorts list by relevant characters (ignoring nonRelevantChars)
// and splits the sorted run wherever the leading key changes.
//
// The key of a string is its first numLeadingVals bytes when numLeadingVals
// is positive, its last -numLeadingVals bytes when negative, and the whole
// string when zero. numLeadingVals is clamped once against the length of the
// first sorted string; later strings shorter than the clamped length use as
// many bytes as they have.
//
// Each group is named after the relevant projection of its first member.
// An empty list yields no groups. list is not modified.
func GroupStrings(list []string, numLeadingVals int, nonRelevantChars string) []Group {
	if len(list) == 0 {
		return nil
	}

	filter := NewRelevanceFilter(nonRelevantChars)
	sorted := filter.Sorted(list)

	n := clampLeading(numLeadingVals, len(sorted[0]))
	return scanGroups(sorted, func(s string) string {
		return leadingKey(s, n)
	}, func(first, _ string) string {
		return filter.Relevant(first)
	})
}

// GroupStringsAsPaths groups path-like strings by their Dirname. Sorting
// ignores PathNonRelevantChars. Every group is named after the relevant
// projection of its directory.
func GroupStringsAsPaths(list []string) []Group {
	if len(list) == 0 {
		return nil
	}

	filter := NewRelevanceFilter(PathNonRelevantChars)
	sorted := filter.Sorted(list)

	return scanGroups(sorted, Dirname, func(_, key string) string {
		return filter.Relevant(key)
	})
}

// GroupStringsFixedAlpha sorts list by full-string comparison and cuts it
// into numGroups buckets of ceil(len(list)/numGroups) strings; the last
// bucket may be smaller and fewer than numGroups buckets are returned when
// the division leaves nothing for them.
func GroupStringsFixedAlpha(list []string, numGroups int) ([][]string, error) {
	if numGroups <= 0 {
		return nil, invalidInputError("GroupStringsFixedAlpha", "numGroups", numGroups, "a positive group count")
	}
	if len(list) == 0 {
		return nil, nil
	}

	sorted := RelevanceFilter{}.Sorted(list)
	groupSize := (len(sorted) + numGroups - 1) / numGroups
	return chunk(sorted, groupSize), nil
}

// GroupSortedSetFixedAlpha cuts an already sorted, duplicate free sequence
// into consecutive buckets of groupSize strings without re-sorting it. The
// caller guarantees the order (for example by collecting into a sorted set).
func GroupSortedSetFixedAlpha(set []string, groupSize int) ([][]string, error) {
	if groupSize <= 0 {
		return nil, invalidInputError("GroupSortedSetFixedAlpha", "groupSize", groupSize, "a positive group size")
	}
	if len(set) == 0 {
		return nil, nil
	}
	return chunk(slices.Clone(set), groupSize), nil
}

// scanGroups walks sorted strings and starts a new group whenever keyOf
// changes. nameOf receives the first member and the key of each group.
func scanGroups(sorted []string, keyOf func(string) string, nameOf func(first, key string) string) []Group {
	var groups []Group

	lastKey := keyOf(sorted[0])
	current := Group{Name: nameOf(sorted[0], lastKey), Members: []string{sorted[0]}}

	for _, s := range sorted[1:] {
		key := keyOf(s)
		if key != lastKey {
			groups = append(groups, current)
			lastKey = key
			current = Group{Name: nameOf(s, key), Members: []string{s}}
			continue
		}
		current.Members = append(current.Members, s)
	}

	return append(groups, current)
}

func clampLeading(n, length int) int {
	// compare against -length; negating n overflows for math.MinInt
	if n < -length {
		return -length
	}
	if n > length {
		return length
	}
	return n
}

func leadingKey(s string, n int) string {
	switch {
	case n > 0:
		return s[:min(n, len(s))]
	case n < -len(s):
		return s
	case n < 0:
		return s[len(s)+n:]
	default:
		return s
	}
}

// chunk splits list into consecutive slices of size; the slices share
// list's backing array.
func chunk(list []string, size int) [][]string {
	chunks := make([][]string, 0, (len(list)+size-1)/size)
	for i := 0; i < len(list); i += size {
		end := min(i+size, len(list))
		chunks = append(chunks, list[i:end:end])
	}
	return chunks
}
