// Package key defines the canonical set of configuration identifiers used for centralized settings management.
package key

// Player Runtime - these keys govern the interaction with the embedded player runtime.
const (
	PlayerScriptObject = "player.script_object"
	PlayerPollInterval = "player.poll_interval"
)

// Recently Played - these keys configure the persistence of recently played video identifiers.
const (
	RecentsWrite       = "recents.write"
	RecentsSuggestions = "recents.suggestions"
	RecentsLimit       = "recents.limit"
)

// Iconography - these keys manage the visual rendering of UI symbols.
const (
	IconsVariant = "icons.variant"
)

// Logging Infrastructure - these keys manage the application's internal diagnostics.
const (
	LogsWrite = "logs.write"
	LogsLevel = "logs.level"
	LogsJson  = "logs.json"
)

// CLI Execution Environment - these flags and settings govern CLI behavior.
const (
	CliColored      = "cli.colored"
	CliVersionCheck = "cli.version_check"
)
