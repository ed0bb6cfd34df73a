// Package version carries build metadata injected with -ldflags, e.g.
//
//	go build -ldflags "-X github.com/phrazzld/medgen-api/internal/version.Version=v1.2.0"
package version

import "fmt"

var (
	Version   = "dev"
	Commit    = "none"
	BuildDate = "unknown"
)

func String() string {
	return fmt.Sprintf("version=%s commit=%s build_date=%s", Version, Commit, BuildDate)
}
