// File: path_test.go
// Title: Unit Tests for Path Decomposition
// Description: Tests Basename and Dirname on the separator edge cases.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial test implementation

package strhelp

import (
	"strings"
	"testing"
)

func TestBasenameDirname(t *testing.T) {
	if SlashChar != '/' {
		t.Skip("test paths use '/' separators")
	}

	tests := []struct {
		path string
		dir  string
		base string
	}{
		{"/a/b/c", "/a/b", "c"},
		{"", ".", "."},
		{"/", "/", "/"},
		{"///", "/", "/"},
		{"a", ".", "a"},
		{"a/", ".", "a"},
		{"/a", "/", "a"},
		{"//a", "/", "a"},
		{"a/b/", "a", "b"},
		{"a//b", "a", "b"},
		{"/usr//lib///", "/usr", "lib"},
		{"./x.silo", ".", "x.silo"},
		{"../data/run.silo", "../data", "run.silo"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			if got := Dirname(tt.path); got != tt.dir {
				t.Errorf("Dirname(%q) = %q; want %q", tt.path, got, tt.dir)
			}
			if got := Basename(tt.path); got != tt.base {
				t.Errorf("Basename(%q) = %q; want %q", tt.path, got, tt.base)
			}
		})
	}
}

func TestLongPaths(t *testing.T) {
	if SlashChar != '/' {
		t.Skip("test paths use '/' separators")
	}

	dir := "/" + strings.Repeat("segment/", 1000) + "leaf"
	path := dir + "/file.txt"

	if got := Basename(path); got != "file.txt" {
		t.Errorf("Basename() = %q", got)
	}
	if got := Dirname(path); got != dir {
		t.Errorf("Dirname() returned %d bytes; want %d", len(got), len(dir))
	}
}

func TestBasenameNeverContainsSeparator(t *testing.T) {
	paths := []string{"a/b", "a/b/", "/x//y//", "plain", SlashString + "z"}
	for _, p := range paths {
		p = strings.ReplaceAll(p, "/", SlashString)
		if b := Basename(p); strings.Contains(b, SlashString) {
			t.Errorf("Basename(%q) = %q contains a separator", p, b)
		}
	}
}
