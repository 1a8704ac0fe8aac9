package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
)

// Version is the module version stamped by the Go toolchain, or "(dev)" for
// an untagged build.
var Version = "(dev)"

var revision string

func init() {
	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return
	}
	if bi.Main.Version != "" {
		Version = bi.Main.Version
	}
	for _, s := range bi.Settings {
		if s.Key == "vcs.revision" {
			revision = s.Value
		}
	}
}

// String renders the one-line version the version command prints.
func String() string {
	if revision != "" {
		return fmt.Sprintf("%s (%s) %s %s/%s", Version, shortRev(revision), runtime.Version(), runtime.GOOS, runtime.GOARCH)
	}
	return fmt.Sprintf("%s %s %s/%s", Version, runtime.Version(), runtime.GOOS, runtime.GOARCH)
}

func shortRev(rev string) string {
	if len(rev) > 12 {
		return rev[:12]
	}
	return rev
}
