package hashdoc

import (
	"time"
	_ "time/tzdata"

	"github.com/ImSingee/go-ex/ee"
	"github.com/ImSingee/semver"

	"github.com/ImSingee/minitools/internal/manifest"
)

const (
	DefaultTitle        = "Miniconda hash information"
	DefaultTemplatePath = "docs/source/miniconda-hashes.rst.tmpl"
	DefaultOutputPath   = "docs/source/miniconda-hashes.rst"

	// DefaultTimezone is where the hosting server lives, timestamps are
	// rendered there so every machine produces the same page.
	DefaultTimezone = "US/Central"

	timeLayout = "2006-01-02 15:04:05"
)

var DefaultExclude = []string{"index.json", "*latest*", "*uninstaller*"}

type Options struct {
	// ManifestFile takes precedence over ManifestURL when set
	ManifestURL  string
	ManifestFile string

	TemplatePath string
	OutputPath   string
	Title        string

	Location *time.Location
	Exclude  []string

	// Since drops installers older than this version, nil keeps all
	Since *semver.Version
}

func DefaultOptions() (*Options, error) {
	loc, err := LoadLocation(DefaultTimezone)
	if err != nil {
		return nil, err
	}

	return &Options{
		ManifestURL:  manifest.DefaultURL,
		TemplatePath: DefaultTemplatePath,
		OutputPath:   DefaultOutputPath,
		Title:        DefaultTitle,
		Location:     loc,
		Exclude:      append([]string(nil), DefaultExclude...),
	}, nil
}

func LoadLocation(name string) (*time.Location, error) {
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, ee.Wrapf(err, "unknown timezone %s", name)
	}
	return loc, nil
}

func ParseSince(s string) (*semver.Version, error) {
	if s == "" {
		return nil, nil
	}

	v, err := semver.NewVersion(s)
	if err != nil {
		return nil, ee.Wrapf(err, "invalid version %s", s)
	}
	return v, nil
}
