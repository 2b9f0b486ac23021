// File: path.go
// Title: Path Decomposition
// Description: POSIX basename/dirname over the platform path separator.
//              Results are newly allocated strings without length limits.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial implementation

package strhelp

import (
	"os"
	"strings"
)

// SlashChar is the path separator used by Basename and Dirname. It is fixed
// at build time.
const SlashChar = os.PathSeparator

// SlashString is SlashChar as a string
const SlashString = string(SlashChar)

// Basename returns the last element of path. Trailing separators are
// ignored. An empty path yields "." and a path made only of separators
// yields SlashString.
func Basename(path string) string {
	base, _ := splitBase(path)
	return base
}

// Dirname returns everything before the last element of path with trailing
// separators removed. An empty path or a path without separators yields ".";
// a path whose only directory is the root yields SlashString.
func Dirname(path string) string {
	_, start := splitBase(path)

	switch start {
	case -1:
		return SlashString
	case 0:
		return "."
	}

	dir := strings.TrimRight(path[:start], SlashString)
	if dir == "" {
		return SlashString
	}
	return dir
}

// splitBase returns the basename and the offset at which it starts in path.
// The offset is 0 for empty paths and -1 for separator-only paths.
func splitBase(path string) (string, int) {
	if path == "" {
		return ".", 0
	}

	end := len(path)
	for end > 0 && path[end-1] == SlashChar {
		end--
	}
	if end == 0 {
		return SlashString, -1
	}

	start := strings.LastIndexByte(path[:end], SlashChar) + 1
	return path[start:end], start
}
