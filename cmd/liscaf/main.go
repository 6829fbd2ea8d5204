package main

import (
	"github.com/tacogips/liscaf/internal/build"
	"github.com/tacogips/liscaf/internal/cli"
)

// Version information (set via ldflags during build)
var (
	version   = "dev"
	gitCommit = "unknown"
	buildDate = "unknown"
)

func main() {
	build.SetVersion(version, gitCommit, buildDate)

	cli.Execute()
}
