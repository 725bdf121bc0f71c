// Package version provides version information for matchderef.
package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
)

// Build information set via -ldflags at build time.
var (
	Version   = "dev"
	Commit    = "unknown"
	Date      = "unknown"
	GoVersion = runtime.Version()
)

// Info returns formatted version information. Binaries installed with
// go install carry no ldflags, so the module version is used instead.
func Info() string {
	return fmt.Sprintf("matchderef %s (commit: %s, built: %s, %s)",
		resolve(Version, readBuildInfo), Commit, Date, GoVersion)
}

func resolve(v string, read func() (*debug.BuildInfo, bool)) string {
	if v != "dev" {
		return v
	}

	if bi, ok := read(); ok && bi.Main.Version != "" && bi.Main.Version != "(devel)" {
		return bi.Main.Version
	}

	return v
}

var readBuildInfo = debug.ReadBuildInfo
