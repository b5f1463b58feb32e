package config

import (
	"strings"

	"github.com/Masterminds/semver/v3"
)

// ParseVersion strips a leading "v" and parses the version string as a
// semantic version.
func ParseVersion(version string) (*semver.Version, error) {
	version = strings.TrimPrefix(version, "v")
	return semver.StrictNewVersion(version)
}
