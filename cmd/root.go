// Package cmd wires the command line interface of ytplayer.
package cmd

import (
	"fmt"
	"os"
	"strings"

	cc "github.com/ivanpirog/coloredcobra"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/stormychel/YouTubePlayerKit/constant"
	"github.com/stormychel/YouTubePlayerKit/icon"
	"github.com/stormychel/YouTubePlayerKit/key"
	"github.com/stormychel/YouTubePlayerKit/log"
)

var rootCmd = &cobra.Command{
	Use:   constant.App,
	Short: "Control the embedded video player from your terminal",
	Long: constant.App + ` drives the embedded video player through its
evaluation channel: load content, control playback and watch the
player state from the command line.`,
	SilenceErrors: true,
	SilenceUsage:  true,
}

// Execute runs the root command of the application.
func Execute() {
	if viper.GetBool(key.CliColored) {
		cc.Init(&cc.Config{
			RootCmd:       rootCmd,
			Headings:      cc.HiCyan + cc.Bold + cc.Underline,
			Commands:      cc.HiYellow + cc.Bold,
			Example:       cc.Italic,
			ExecName:      cc.Bold,
			Flags:         cc.Bold,
			FlagsDataType: cc.Italic + cc.HiBlue,
		})
	}

	handleErr(rootCmd.Execute())
}

// handleErr gracefully handles fatal errors.
func handleErr(err error) {
	if err == nil {
		return
	}

	log.Error(err)
	fmt.Fprintf(os.Stderr, "%s %s\n", icon.Get(icon.Fail), strings.Trim(err.Error(), " \n"))
	os.Exit(1)
}
