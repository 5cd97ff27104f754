package installer

import (
	"strconv"
	"strings"

	"github.com/ImSingee/semver"
)

// Key is the sort key of an installer filename.
//
// For "Miniconda3-py310_23.1.0-1-Linux-x86_64.sh" it is
// {Version: 23.1.0, Build: 1, Prefix: "Miniconda3", Python: 310}.
type Key struct {
	Version Release
	Build   int
	Prefix  string

	Python    int
	HasPython bool
}

// ParseFilename extracts the sort key from an installer filename.
//
// Known layouts:
//
//	Miniconda-3.0.0-Linux-x86.sh
//	Miniconda3-4.7.12.1-Windows-x86_64.exe
//	Miniconda3-py37_4.8.2-MacOSX-x86_64.sh
//	Miniconda3-py311_23.5.2-0-Linux-aarch64.sh
func ParseFilename(name string) (Key, error) {
	segments := strings.Split(name, "-")
	if len(segments) < 2 {
		return Key{}, &ParseError{Filename: name, Reason: "no version segment"}
	}

	key := Key{Prefix: segments[0]}
	if key.Prefix == "" {
		return Key{}, &ParseError{Filename: name, Reason: "empty prefix"}
	}

	// since 4.8.2 one installer is released per supported python:
	// <prefix>-py3XX_<version>-<platform>.<ext>
	versionSegment := segments[1]
	if tag, v, ok := strings.Cut(versionSegment, "_"); ok {
		py, found := strings.CutPrefix(tag, "py")
		if !found {
			return Key{}, &ParseError{Filename: name, Reason: "unknown runtime tag " + tag}
		}
		n, err := strconv.Atoi(py)
		if err != nil || n < 0 {
			return Key{}, &ParseError{Filename: name, Reason: "invalid python version " + py}
		}

		key.Python = n
		key.HasPython = true
		versionSegment = v
	}

	release, err := ParseRelease(versionSegment)
	if err != nil {
		return Key{}, &ParseError{Filename: name, Reason: err.Error()}
	}
	key.Version = release

	// newer installers carry a build number right after the version
	if len(segments) > 2 && isDigits(segments[2]) {
		key.Build, _ = strconv.Atoi(segments[2])
	}

	return key, nil
}

// Compare orders keys by version, prefix and python version. The build
// number only breaks ties between otherwise equal keys.
// A key without python version is lower than one with.
func Compare(a, b Key) int {
	if c := a.Version.Compare(b.Version); c != 0 {
		return c
	}
	if c := strings.Compare(a.Prefix, b.Prefix); c != 0 {
		return c
	}
	if a.HasPython != b.HasPython {
		if a.HasPython {
			return 1
		}
		return -1
	}
	if c := cmpInt(a.Python, b.Python); c != 0 {
		return c
	}
	return cmpInt(a.Build, b.Build)
}

// AtLeast reports whether the installer version is not older than min.
// Only major, minor and patch of min are considered.
func (k Key) AtLeast(min *semver.Version) bool {
	if min == nil {
		return true
	}

	floor := Release{int(min.Major()), int(min.Minor()), int(min.Patch())}
	return k.Version.Compare(floor) >= 0
}

func (k Key) String() string {
	s := k.Prefix + " " + k.Version.String()
	if k.Build != 0 {
		s += "-" + strconv.Itoa(k.Build)
	}
	if k.HasPython {
		s += " py" + strconv.Itoa(k.Python)
	}
	return s
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
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
