package glob

import (
	"path/filepath"
	"strings"

	"github.com/ImSingee/go-ex/ee"
	"github.com/gobwas/glob"
)

// Patterns is a compiled list of glob patterns, a name matches if any pattern does.
type Patterns struct {
	raw   []string
	globs []glob.Glob
}

func Compile(patterns ...string) (*Patterns, error) {
	p := &Patterns{
		raw:   make([]string, 0, len(patterns)),
		globs: make([]glob.Glob, 0, len(patterns)),
	}

	for _, pattern := range patterns {
		g, err := glob.Compile(pattern)
		if err != nil {
			return nil, ee.Wrapf(err, "invalid glob pattern %q", pattern)
		}

		p.raw = append(p.raw, pattern)
		p.globs = append(p.globs, g)
	}

	return p, nil
}

// Match reports whether name matches one of the patterns.
//
// Patterns without a "/" are matched against the base name only.
func (p *Patterns) Match(name string) bool {
	if p == nil {
		return false
	}

	for i, g := range p.globs {
		if Match(p.raw[i], g, name) {
			return true
		}
	}
	return false
}

func (p *Patterns) Strings() []string {
	if p == nil {
		return nil
	}
	return p.raw
}

func Match(pattern string, g glob.Glob, name string) bool {
	if strings.Contains(pattern, "/") {
		return g.Match(name)
	}
	return g.Match(filepath.Base(name))
}
