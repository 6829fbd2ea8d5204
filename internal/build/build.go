// Package build provides build-time information for the CLI application.
// Values are set via ldflags during release builds:
//
//	-X github.com/tacogips/liscaf/internal/build.version=x.y.z
package build

import "runtime"

var (
	version   = "dev"
	gitCommit = "unknown"
	buildDate = "unknown"
)

// Info describes the running binary.
type Info struct {
	Version   string `json:"version"`
	GoVersion string `json:"go_version"`
	Commit    string `json:"commit"`
	BuildDate string `json:"build_date"`
	OS        string `json:"os"`
	Arch      string `json:"arch"`
}

// Version returns the application version.
func Version() string {
	return version
}

// SetVersion overrides the build information, for binaries that receive
// it through their own main package variables.
func SetVersion(v, commit, date string) {
	if v != "" {
		version = v
	}
	if commit != "" {
		gitCommit = commit
	}
	if date != "" {
		buildDate = date
	}
}

// Current returns the build information of the running binary.
func Current() Info {
	return Info{
		Version:   version,
		GoVersion: runtime.Version(),
		Commit:    gitCommit,
		BuildDate: buildDate,
		OS:        runtime.GOOS,
		Arch:      runtime.GOARCH,
	}
}
