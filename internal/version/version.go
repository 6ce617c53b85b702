package version

import (
	"runtime/debug"
)

var (
	defaultVersion = "UNSTABLE"
	version        = ""
)

// Version returns the release version set at build time, falling back to the
// module version recorded in the build info.
func Version() string {
	if version != "" && version != defaultVersion {
		return version
	}

	info, ok := debug.ReadBuildInfo()
	if !ok {
		return defaultVersion
	}

	if info.Main.Version == "" || info.Main.Version == "(devel)" {
		return defaultVersion
	}

	return info.Main.Version
}
