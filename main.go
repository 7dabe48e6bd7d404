package main

import (
	"github.com/samber/lo"
	"github.com/stormychel/YouTubePlayerKit/cmd"
	"github.com/stormychel/YouTubePlayerKit/config"
	"github.com/stormychel/YouTubePlayerKit/log"
	"github.com/stormychel/YouTubePlayerKit/version"
)

func main() {
	lo.Must0(config.Setup())
	lo.Must0(log.Setup())
	version.Notify()
	cmd.Execute()
}
