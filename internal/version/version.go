// Package version holds build-time metadata injected via ldflags.
package version

import (
	"strings"

	"golang.org/x/mod/semver"
)

// These variables are set at build time using -ldflags:
//
//	-X 'github.com/janekbaraniewski/perfstats/internal/version.Version=...'
//	-X 'github.com/janekbaraniewski/perfstats/internal/version.CommitHash=...'
//	-X 'github.com/janekbaraniewski/perfstats/internal/version.BuildDate=...'
var (
	Version    = "dev"
	CommitHash = "unknown"
	BuildDate  = "unknown"
)

// Canonical returns Version in canonical semver form ("1.2" becomes
// "v1.2.0"). Non-semver builds such as "dev" are returned unchanged.
func Canonical() string {
	v := strings.TrimSpace(Version)
	if !strings.HasPrefix(v, "v") {
		v = "v" + v
	}
	if !semver.IsValid(v) {
		return Version
	}
	return semver.Canonical(v)
}

// IsRelease reports whether the build carries a semver version without a
// prerelease suffix.
func IsRelease() bool {
	c := Canonical()
	return semver.IsValid(c) && semver.Prerelease(c) == ""
}

// String returns a formatted version string.
func String() string {
	return Canonical() + " (" + CommitHash + ") built " + BuildDate
}
