// Package icon provides a multi-variant rendering engine for UI symbols and feedback indicators.
package icon

import (
	"github.com/spf13/viper"
	"github.com/stormychel/YouTubePlayerKit/key"
)

// Visual variant constants - these define the supported aesthetic styles for icon rendering.
const (
	emoji = "emoji"
	nerd  = "nerd"
	plain = "plain"
)

// AvailableVariants returns a slice of all registered icon style identifiers.
func AvailableVariants() []string {
	return []string{emoji, nerd, plain}
}

// iconDef encapsulates the visual representations of a single UI symbol across all supported variants.
type iconDef struct {
	emoji string
	nerd  string
	plain string
}

// Get retrieves the visual representation based on the global icons variant configuration.
func (d *iconDef) Get() string {
	switch viper.GetString(key.IconsVariant) {
	case emoji:
		return d.emoji
	case nerd:
		return d.nerd
	default:
		return d.plain
	}
}

// Registered symbols.
var (
	Success  = &iconDef{emoji: "✅", nerd: "", plain: "[ok]"}
	Fail     = &iconDef{emoji: "❌", nerd: "", plain: "[fail]"}
	Progress = &iconDef{emoji: "⏳", nerd: "", plain: "..."}
	Play     = &iconDef{emoji: "▶️", nerd: "", plain: ">"}
	Pause    = &iconDef{emoji: "⏸️", nerd: "", plain: "||"}
)

// Get returns the rendered form of the given symbol.
func Get(d *iconDef) string {
	return d.Get()
}
