// Package version carries build metadata for descape, injected at
// build time:
//
//	go build -ldflags "-X github.com/descape/descape/internal/version.Version=1.2.0 ..."
//
// Unset variables keep their dev defaults, so plain go build still
// produces a usable binary.
package version

import (
	"fmt"
	"runtime"
)

// Set via ldflags.
var (
	Version   = "dev"
	Commit    = "unknown"
	Dirty     = "false"
	BuildDate = "unknown"
)

// Info is the structured form, also served by the web form's healthz
// endpoint.
type Info struct {
	Version   string `json:"version"`
	Commit    string `json:"commit"`
	Dirty     bool   `json:"dirty"`
	BuildDate string `json:"build_date"`
	GoVersion string `json:"go_version"`
	Platform  string `json:"platform"`
}

// Get returns the build metadata plus the runtime's Go version and
// platform.
func Get() Info {
	return Info{
		Version:   Version,
		Commit:    Commit,
		Dirty:     Dirty == "true",
		BuildDate: BuildDate,
		GoVersion: runtime.Version(),
		Platform:  runtime.GOOS + "/" + runtime.GOARCH,
	}
}

// String is the one-line form, with a -dirty marker for builds from an
// uncommitted tree.
func String() string {
	if Dirty == "true" {
		return Version + "-dirty"
	}
	return Version
}

// Full is the multi-line form printed by the version command.
func Full() string {
	i := Get()
	out := fmt.Sprintf("descape %s\n", String())
	out += fmt.Sprintf("  commit:     %s\n", i.Commit)
	if i.Dirty {
		out += "  dirty:      yes\n"
	}
	out += fmt.Sprintf("  built:      %s\n", i.BuildDate)
	out += fmt.Sprintf("  go version: %s\n", i.GoVersion)
	out += fmt.Sprintf("  platform:   %s", i.Platform)
	return out
}
