package version

import (
	"fmt"

	"github.com/spf13/viper"
	"github.com/stormychel/YouTubePlayerKit/color"
	"github.com/stormychel/YouTubePlayerKit/constant"
	"github.com/stormychel/YouTubePlayerKit/icon"
	"github.com/stormychel/YouTubePlayerKit/key"
	"github.com/stormychel/YouTubePlayerKit/style"
	"github.com/stormychel/YouTubePlayerKit/util"
)

// Notify prints an update hint when a newer release exists. Lookup
// failures stay silent: an update notice is never worth an error.
func Notify() {
	if !viper.GetBool(key.CliVersionCheck) {
		return
	}

	erase := util.PrintErasable(fmt.Sprintf("%s Checking for updates...", icon.Get(icon.Progress)))
	latest, err := Latest()
	erase()
	if err != nil {
		return
	}

	if Compare(latest, constant.Version) > 0 {
		fmt.Printf(
			"%s New version is available %s %s\n",
			style.Fg(color.Cyan)("▲"),
			style.Bold(latest),
			style.Faint(fmt.Sprintf("(%s is current)", constant.Version)),
		)
	}
}
