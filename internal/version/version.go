// Package version carries the build identity of the cplcheck CLI.
package version

import "github.com/fatih/color"

// These variables can be overridden at build time via -ldflags.
var (
	// Version is the semantic version of the CLI.
	Version = "0.1.0-dev"

	// GitCommit is an optional git commit hash.
	GitCommit = ""

	// BuildDate is an optional build date in ISO-8601.
	BuildDate = ""
)

var versionColor = color.New(color.FgGreen, color.Bold)

// Pretty returns the version with terminal emphasis.
func Pretty() string {
	return versionColor.Sprint(Version)
}

// Full returns the version followed by the optional commit hash and
// build date, space-separated.
func Full() string {
	s := Version
	if GitCommit != "" {
		s += " " + GitCommit
	}
	if BuildDate != "" {
		s += " " + BuildDate
	}
	return s
}
