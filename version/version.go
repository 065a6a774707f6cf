// Package version holds build metadata injected at link time via -ldflags.
package version

var (
	// GitRelease is the release tag or branch name.
	GitRelease = "dev"
	// GitCommit is the short commit hash.
	GitCommit = "unknown"
	// GitCommitDate is the commit timestamp.
	GitCommitDate = "unknown"
	// GoInfo is the Go toolchain version used for the build.
	GoInfo = "unknown"
)
