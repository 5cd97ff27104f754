package hashdoc

import (
	"time"

	"github.com/ImSingee/go-ex/mr"

	"github.com/ImSingee/minitools/internal/installer"
	"github.com/ImSingee/minitools/internal/lib/glob"
	"github.com/ImSingee/minitools/internal/manifest"
	"github.com/ImSingee/minitools/internal/sizefmt"
)

// Item is one row of the rendered page
type Item struct {
	Filename     string
	Size         string
	LastModified string
	SHA256       string
}

type Warning struct {
	Filename string
	Message  string
}

func (w Warning) String() string {
	return w.Message + ": " + w.Filename
}

// Collect filters the manifest entries and turns them into page rows,
// newest installer first.
func Collect(entries []*manifest.Entry, exclude *glob.Patterns, o *Options) ([]*Item, []Warning) {
	var warnings []Warning

	entries = mr.Filter(entries, func(e *manifest.Entry, _ int) bool {
		return !exclude.Match(e.Name)
	})

	keys := make(map[string]installer.Key, len(entries))
	byName := make(map[string]*manifest.Entry, len(entries))
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		key, err := installer.ParseFilename(e.Name)
		if err != nil {
			warnings = append(warnings, Warning{Filename: e.Name, Message: "cannot find version in"})
			continue
		}

		if !key.AtLeast(o.Since) {
			continue
		}

		keys[e.Name] = key
		byName[e.Name] = e
		names = append(names, e.Name)
	}

	installer.SortDescending(names, keys)

	// checked after sorting so warnings follow the page order
	names = mr.Filter(names, func(name string, _ int) bool {
		if !byName[name].HasSHA256() {
			warnings = append(warnings, Warning{Filename: name, Message: "no sha256 information for"})
			return false
		}
		return true
	})

	loc := o.Location
	if loc == nil {
		loc = time.Local
	}

	items := mr.Map(names, func(name string, _ int) *Item {
		e := byName[name]
		return &Item{
			Filename:     e.Name,
			Size:         sizefmt.Format(e.Size),
			LastModified: e.MTime.In(loc).Format(timeLayout),
			SHA256:       e.SHA256,
		}
	})

	return items, warnings
}
