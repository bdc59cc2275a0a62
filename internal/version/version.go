// Package version reports the cra2parcel build version.
package version

import (
	"runtime/debug"
	"strings"
)

// version is set at build time with -ldflags "-X .../internal/version.version=1.2.3".
var version = ""

// readBuildInfo is swapped in tests.
var readBuildInfo = debug.ReadBuildInfo

// GetVersion returns the linked version, else the module version recorded by
// go install, else "dev". A leading "v" is stripped.
func GetVersion() string {
	if version != "" {
		return strings.TrimPrefix(version, "v")
	}
	if info, ok := readBuildInfo(); ok {
		if v := info.Main.Version; v != "" && v != "(devel)" {
			return strings.TrimPrefix(v, "v")
		}
	}
	return "dev"
}
