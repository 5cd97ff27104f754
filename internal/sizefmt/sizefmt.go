package sizefmt

import (
	"fmt"
	"math"
	"strconv"
)

var units = []string{"", "Ki", "Mi", "Gi", "Ti", "Pi", "Ei", "Zi"}

// Format renders a byte count with binary unit prefixes, e.g. 1536 -> "1.5 KiB"
func Format(n int64) string {
	return FormatSuffix(float64(n), "B")
}

// FormatSuffix is like Format but for any quantity and unit suffix.
//
// The number is divided by 1024 until, rounded to one decimal, it drops
// below 1024. Values that outgrow "Zi" are shown in "Yi".
func FormatSuffix(num float64, suffix string) string {
	for _, unit := range units {
		s := strconv.FormatFloat(num, 'f', 1, 64)
		if rounded, _ := strconv.ParseFloat(s, 64); math.Abs(rounded) < 1024.0 {
			return s + " " + unit + suffix
		}
		num /= 1024.0
	}

	return fmt.Sprintf("%.1f %s%s", num, "Yi", suffix)
}
