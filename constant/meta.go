// Package constant defines immutable application-level identifiers and defaults.
package constant

const (
	// App is the canonical application identifier used for filesystem paths and CLI branding.
	App = "ytplayer"

	// Version is the current application semantic version string.
	Version = "0.1.0"

	// PlayerObject is the name of the sandboxed player object exposed by the
	// embedded web runtime. Every expression built by the script package is
	// evaluated against this object.
	PlayerObject = "player"

	// Repository is the canonical source repository slug.
	Repository = "stormychel/YouTubePlayerKit"
)
