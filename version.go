// Package assessor provides version information and metadata for the
// password-assessor library.
//
// This package exports version constants and utilities for runtime version
// detection, enabling applications to programmatically access library version
// information for logging, compatibility checks, and debugging purposes.
package assessor

// Version represents the current semantic version of the password-assessor
// library.
//
// This constant follows semantic versioning format (MAJOR.MINOR.PATCH) and is
// updated with each release. Applications can use this for version logging,
// compatibility validation, or feature detection.
const Version = "0.3.0"

// VersionInfo encapsulates version metadata for the password-assessor library.
//
// Fields:
//   - Version: Semantic version string (e.g., "0.3.0")
//   - Name: Human-readable library name for identification
type VersionInfo struct {
	// Version contains the semantic version string following semver format
	Version string

	// Name contains the canonical library name for identification purposes
	Name string
}

// GetVersion returns structured version information for the password-assessor
// library.
//
// Usage:
//
//	info := GetVersion()
//	log.Printf("Using %s version %s", info.Name, info.Version)
func GetVersion() VersionInfo {
	return VersionInfo{
		Version: Version,
		Name:    "password-assessor",
	}
}
