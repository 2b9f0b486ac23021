// ============================================================================
// strhelp - String helpers for data file collections
// ============================================================================
//
// Package:     version
// Description: Central version management for the library and the CLI
// Author:      msto63
// Created:     2026-10-18
// License:     MIT
// ============================================================================

package version

// Version constants for all strhelp components
const (
	// Release version
	Release = "0.1.0"

	// Component versions
	Library = "0.1.0"
	CLI     = "0.1.0"
	Config  = "1.0.0"
)

// ComponentVersion returns the version for a given component name
func ComponentVersion(name string) string {
	switch name {
	case "library", "strhelp":
		return Library
	case "cli":
		return CLI
	case "config":
		return Config
	default:
		return Release
	}
}

// Components returns the component names known to ComponentVersion
func Components() []string {
	return []string{"library", "cli", "config"}
}
