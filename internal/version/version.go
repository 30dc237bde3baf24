// Package version provides build metadata for the application.
package version

// These variables are set at build time via -ldflags.
var (
	// Version is the semantic version of the build.
	Version = "1.0.0"
	// Commit is the git commit hash of the build.
	Commit = "none"
	// BuildTime is the build timestamp.
	BuildTime = "unknown"
)

// Short returns the semantic version only.
func Short() string {
	return Version
}

// Full returns the version along with commit hash and build time.
func Full() string {
	return "version: " + Version + ", commit: " + Commit + ", built at: " + BuildTime
}
