package releases

import (
	"os"
	"path/filepath"
	"sort"

	"github.com/ImSingee/go-ex/ee"

	"github.com/ImSingee/minitools/internal/vertuple"
)

type release struct {
	name    string
	version vertuple.Tuple
}

// SortDirectories returns the names of the subdirectories of dir that are
// release versions (e.g. "4.9.0" or "4.9.0-1"), newest first.
// Other entries are ignored.
func SortDirectories(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, ee.Wrapf(err, "cannot read releases dir %s", dir)
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if !isDir(dir, entry) {
			continue
		}

		names = append(names, entry.Name())
	}

	return Sort(names), nil
}

func isDir(dir string, entry os.DirEntry) bool {
	if entry.IsDir() {
		return true
	}
	if entry.Type()&os.ModeSymlink == 0 {
		return false
	}

	// follow symlinks
	info, err := os.Stat(filepath.Join(dir, entry.Name()))
	return err == nil && info.IsDir()
}

// Sort returns the names that parse as release versions, newest first
func Sort(names []string) []string {
	releases := make([]release, 0, len(names))
	for _, name := range names {
		v, err := vertuple.Parse(name)
		if err != nil {
			continue
		}

		releases = append(releases, release{name: name, version: v})
	}

	sort.SliceStable(releases, func(i, j int) bool {
		if c := vertuple.Compare(releases[i].version, releases[j].version); c != 0 {
			return c > 0
		}
		return releases[i].name > releases[j].name
	})

	result := make([]string, len(releases))
	for i, r := range releases {
		result[i] = r.name
	}
	return result
}
