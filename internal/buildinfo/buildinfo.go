package buildinfo

import (
	"fmt"
	"runtime/debug"
)

// Set with -ldflags "-X .../internal/buildinfo.Version=v1.2.3".
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

func String() string {
	return fmt.Sprintf("romcalc %s (commit=%s, date=%s)", version(), Commit, Date)
}

// version falls back to the module version recorded by `go install`.
func version() string {
	if Version != "dev" {
		return Version
	}
	if bi, ok := debug.ReadBuildInfo(); ok && bi.Main.Version != "" && bi.Main.Version != "(devel)" {
		return bi.Main.Version
	}
	return Version
}
