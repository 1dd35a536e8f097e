package version

import (
	"fmt"

	"github.com/Masterminds/semver/v3"
)

// Parse parses a binding-reported version string. Partial versions such as
// "4.6" are accepted and padded with zero components.
func Parse(v string) (*semver.Version, error) {
	parsed, err := semver.NewVersion(v)
	if err != nil {
		return nil, fmt.Errorf("parsing version %q: %w", v, err)
	}
	return parsed, nil
}

// AtLeast reports whether version v is greater than or equal to minimum.
// Both strings are parsed leniently; a parse failure is returned rather
// than silently treated as either outcome.
func AtLeast(v, minimum string) (bool, error) {
	got, err := Parse(v)
	if err != nil {
		return false, err
	}
	min, err := Parse(minimum)
	if err != nil {
		return false, err
	}
	return !got.LessThan(min), nil
}

// Compare returns -1, 0, or 1 when a is less than, equal to, or greater
// than b.
func Compare(a, b string) (int, error) {
	va, err := Parse(a)
	if err != nil {
		return 0, err
	}
	vb, err := Parse(b)
	if err != nil {
		return 0, err
	}
	return va.Compare(vb), nil
}
