// Package build provides domain entities for build information.
package build

// Info holds build-time information injected via ldflags.
type Info struct {
	Version   string
	Commit    string
	BuildDate string
	GoVersion string
}

// Short returns the version with the abbreviated commit when known.
func (i Info) Short() string {
	version := i.Version
	if version == "" {
		version = "dev"
	}
	if len(i.Commit) >= 7 {
		return version + " (" + i.Commit[:7] + ")"
	}
	return version
}

// RepoURL returns the GitHub repository URL.
func RepoURL() string {
	return "https://github.com/bnema/tlpui"
}
