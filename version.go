package ultrastar

import "runtime"

// Version is the semantic version of the ultrastar library.
const Version = "0.1.0"

// VersionInfo describes the build of the library a binary was
// compiled against.
type VersionInfo struct {
	// Version is the library's semantic version.
	Version string
	// GitCommit and BuildTime are stamped at build time via -ldflags
	// and read "unknown" otherwise.
	GitCommit string
	BuildTime string
	// GoVersion is the Go toolchain the binary was built with.
	GoVersion string
}

// GetVersionInfo returns the build information. Binaries that want a
// commit hash and timestamp in their version output stamp the
// unexported variables below:
//
//	go build -ldflags="-X github.com/randompersona1/ultrastar.gitCommit=$(git rev-parse HEAD) \
//	  -X github.com/randompersona1/ultrastar.buildTime=$(date -u +%Y-%m-%dT%H:%M:%SZ)"
func GetVersionInfo() VersionInfo {
	goVer := goVersion
	if goVer == "unknown" {
		goVer = runtime.Version()
	}
	return VersionInfo{
		Version:   Version,
		GitCommit: gitCommit,
		BuildTime: buildTime,
		GoVersion: goVer,
	}
}

var (
	gitCommit = "unknown"
	buildTime = "unknown"
	goVersion = "unknown"
)
