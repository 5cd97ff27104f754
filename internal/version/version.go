package version

import "fmt"

// set by -ldflags "-X github.com/ImSingee/minitools/internal/version.version=..."
var (
	version = "DEV"
	commit  = ""
	buildAt = ""
)

func Version() string {
	return version
}

func Commit() string {
	return commit
}

func BuildAt() string {
	return buildAt
}

func GetVersionString() string {
	s := version
	if commit != "" {
		s += fmt.Sprintf("\nCommit: %s", commit)
	}
	if buildAt != "" {
		s += fmt.Sprintf("\nBuild At: %s", buildAt)
	}
	return s
}
