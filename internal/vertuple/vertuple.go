package vertuple

import (
	"strconv"
	"strings"
)

// Tuple is a MAJOR.MINOR.PATCH[-BUILD] release version.
type Tuple struct {
	Major int
	Minor int
	Patch int
	Build int

	// HasBuild reports whether the source string carried a -BUILD part
	HasBuild bool
}

// Parse parses a version like "4.9.0" or "4.9.0-1".
//
// Every component must be a non-empty run of ASCII digits.
func Parse(s string) (Tuple, error) {
	parts := strings.Split(s, ".")
	if len(parts) != 3 {
		return Tuple{}, &ParseError{Input: s, Reason: "expect exactly three dot separated components"}
	}

	patch, build, hasBuild := strings.Cut(parts[2], "-")

	var t Tuple
	var err error

	if t.Major, err = component(s, "major", parts[0]); err != nil {
		return Tuple{}, err
	}
	if t.Minor, err = component(s, "minor", parts[1]); err != nil {
		return Tuple{}, err
	}
	if t.Patch, err = component(s, "patch", patch); err != nil {
		return Tuple{}, err
	}
	if hasBuild {
		if t.Build, err = component(s, "build", build); err != nil {
			return Tuple{}, err
		}
		t.HasBuild = true
	}

	return t, nil
}

func component(input, name, s string) (int, error) {
	if s == "" {
		return 0, &ParseError{Input: input, Reason: name + " is empty"}
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			return 0, &ParseError{Input: input, Reason: name + " is not a number"}
		}
	}

	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, &ParseError{Input: input, Reason: name + " is out of range"}
	}

	return n, nil
}

func (t Tuple) String() string {
	s := strconv.Itoa(t.Major) + "." + strconv.Itoa(t.Minor) + "." + strconv.Itoa(t.Patch)
	if t.HasBuild || t.Build != 0 {
		s += "-" + strconv.Itoa(t.Build)
	}
	return s
}

// Compare returns -1 if a is older than b, 1 if a is newer, 0 if equal.
// A missing build counts as build 0.
func Compare(a, b Tuple) int {
	if c := cmpInt(a.Major, b.Major); c != 0 {
		return c
	}
	if c := cmpInt(a.Minor, b.Minor); c != 0 {
		return c
	}
	if c := cmpInt(a.Patch, b.Patch); c != 0 {
		return c
	}
	return cmpInt(a.Build, b.Build)
}

// Newer is the ordering used for newest-first lists.
func Newer(a, b Tuple) bool {
	return Compare(a, b) > 0
}

func cmpInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
