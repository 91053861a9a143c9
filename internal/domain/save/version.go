package save

import (
	"fmt"
	"strconv"
	"strings"
)

// CurrentVersion is the save format version the engine writes and the
// baseline it gates loads against.
const CurrentVersion = "1.2.0"

// SemVer is a strict MAJOR.MINOR.PATCH semantic version.
type SemVer struct {
	Major int
	Minor int
	Patch int
}

// ParseSemVer parses exactly three dot-separated non-negative integer
// components; anything else fails with a version error.
func ParseSemVer(raw string) (SemVer, error) {
	parts := strings.Split(raw, ".")
	if len(parts) != 3 {
		return SemVer{}, NewErrMalformedVersion(raw)
	}

	components := make([]int, 3)
	for i, part := range parts {
		if part == "" || !isDigits(part) {
			return SemVer{}, NewErrMalformedVersion(raw)
		}
		value, err := strconv.Atoi(part)
		if err != nil {
			return SemVer{}, NewErrMalformedVersion(raw)
		}
		components[i] = value
	}

	return SemVer{Major: components[0], Minor: components[1], Patch: components[2]}, nil
}

// MustParseSemVer parses a version known at compile time, panicking on a
// malformed literal.
func MustParseSemVer(raw string) SemVer {
	version, err := ParseSemVer(raw)
	if err != nil {
		panic(fmt.Sprintf("save: malformed version literal %q", raw))
	}
	return version
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func (v SemVer) String() string {
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
}

// IsCompatibleWith reports load compatibility: true iff the major components
// match. Minor and patch differences are assumed additive-only within a
// major line.
func (v SemVer) IsCompatibleWith(other SemVer) bool {
	return v.Major == other.Major
}
