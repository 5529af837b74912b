// Package version checks the running build against semver constraints
// declared by batch files.
package version

import (
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// Dev is the version reported by builds without ldflags.
const Dev = "dev"

// Satisfies reports whether current meets constraint (e.g. ">=0.2.0, <1.0.0").
// An empty constraint and a dev build satisfy everything.
func Satisfies(current, constraint string) (bool, error) {
	constraint = strings.TrimSpace(constraint)
	if constraint == "" || current == Dev {
		return true, nil
	}

	c, err := semver.NewConstraint(constraint)
	if err != nil {
		return false, fmt.Errorf("parsing constraint %q: %w", constraint, err)
	}
	v, err := parseSemver(current)
	if err != nil {
		return false, fmt.Errorf("parsing current version %q: %w", current, err)
	}
	return c.Check(v), nil
}

// parseSemver strips a leading "v" and parses the version string.
func parseSemver(version string) (*semver.Version, error) {
	version = strings.TrimPrefix(version, "v")
	return semver.NewVersion(version)
}
