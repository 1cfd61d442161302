package version

import "fmt"

//nolint:gochecknoglobals // set at build time via -ldflags
var (
	Version = "unknown"
	Commit  = "unknown"
)

//nolint:gochecknoglobals
var FullVersion = fmt.Sprintf("%s-%s", Version, Commit)
