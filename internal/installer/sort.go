package installer

import (
	"sort"
)

// SortDescending orders names newest first by their keys.
//
// Every name must have an entry in keys. Names with equal keys are
// ordered by name, descending.
func SortDescending(names []string, keys map[string]Key) {
	sort.SliceStable(names, func(i, j int) bool {
		if c := Compare(keys[names[i]], keys[names[j]]); c != 0 {
			return c > 0
		}
		return names[i] > names[j]
	})
}
