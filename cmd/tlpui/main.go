package main

import (
	"runtime"

	"github.com/bnema/tlpui/internal/cli/cmd"
	"github.com/bnema/tlpui/internal/domain/build"
)

// Build-time variables (set via ldflags).
var (
	version   = "dev"
	commit    = "unknown"
	buildDate = "unknown"
)

func init() {
	// GTK must run on the thread that started the process.
	runtime.LockOSThread()
}

func main() {
	enableCrashForensics()

	cmd.SetBuildInfo(build.Info{
		Version:   version,
		Commit:    commit,
		BuildDate: buildDate,
		GoVersion: runtime.Version(),
	})

	cmd.Execute()
}
