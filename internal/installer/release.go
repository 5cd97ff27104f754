package installer

import (
	"strconv"
	"strings"

	"github.com/ImSingee/go-ex/ee"
)

// Release is a dotted run of non-negative integers such as 4.7.12.1
type Release []int

func ParseRelease(s string) (Release, error) {
	if s == "" {
		return nil, ee.New("empty version")
	}

	parts := strings.Split(s, ".")
	release := make(Release, 0, len(parts))
	for _, p := range parts {
		if !isDigits(p) {
			return nil, ee.Errorf("invalid version %q", s)
		}

		n, err := strconv.Atoi(p)
		if err != nil {
			return nil, ee.Wrapf(err, "invalid version %q", s)
		}
		release = append(release, n)
	}

	return release, nil
}

// Compare treats missing trailing components as zero, so 4.7.12 == 4.7.12.0
func (r Release) Compare(o Release) int {
	n := len(r)
	if len(o) > n {
		n = len(o)
	}

	for i := 0; i < n; i++ {
		if c := cmpInt(r.at(i), o.at(i)); c != 0 {
			return c
		}
	}
	return 0
}

func (r Release) at(i int) int {
	if i < len(r) {
		return r[i]
	}
	return 0
}

func (r Release) String() string {
	parts := make([]string, len(r))
	for i, n := range r {
		parts[i] = strconv.Itoa(n)
	}
	return strings.Join(parts, ".")
}
