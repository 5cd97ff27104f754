package manifest

import (
	"encoding/json"
	"math"
	"sort"
	"time"

	"github.com/ImSingee/go-ex/ee"
	"github.com/ysmood/gson"
)

// Entry is the metadata of one file in the manifest.
type Entry struct {
	Name  string
	Size  int64
	MTime time.Time

	// SHA256 is empty when the manifest has no checksum for the file
	SHA256 string
	MD5    string
}

func (e *Entry) HasSHA256() bool {
	return e.SHA256 != ""
}

// Parse converts raw manifest items into entries, sorted by name.
//
// Items that lack a usable size or mtime are reported in errs and skipped.
func Parse(raw map[string]gson.JSON) (entries []*Entry, errs []error) {
	names := make([]string, 0, len(raw))
	for name := range raw {
		names = append(names, name)
	}
	sort.Strings(names)

	entries = make([]*Entry, 0, len(names))
	for _, name := range names {
		e, err := parseEntry(name, raw[name])
		if err != nil {
			errs = append(errs, err)
			continue
		}
		entries = append(entries, e)
	}

	return entries, errs
}

func parseEntry(name string, j gson.JSON) (*Entry, error) {
	fields, ok := j.Val().(map[string]any)
	if !ok {
		return nil, ee.Errorf("manifest item %s is not an object", name)
	}

	size, ok := number(fields["size"])
	if !ok {
		return nil, ee.Errorf("manifest item %s has no valid size", name)
	}
	mtime, ok := number(fields["mtime"])
	if !ok {
		return nil, ee.Errorf("manifest item %s has no valid mtime", name)
	}

	e := &Entry{
		Name: name,
		Size: int64(size),
		// fractional seconds are dropped
		MTime: time.Unix(int64(math.Floor(mtime)), 0),
	}
	e.SHA256, _ = fields["sha256"].(string)
	e.MD5, _ = fields["md5"].(string)

	return e, nil
}

func number(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	default:
		return 0, false
	}
}
