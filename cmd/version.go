package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/stormychel/YouTubePlayerKit/constant"
	"github.com/stormychel/YouTubePlayerKit/style"
	"github.com/stormychel/YouTubePlayerKit/version"
)

func init() {
	rootCmd.AddCommand(versionCmd)
	versionCmd.Flags().BoolP("latest", "l", false, "also look the latest released version up")
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show the version",
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Printf("%s %s\n", constant.App, style.Bold(constant.Version))

		if latest, err := cmd.Flags().GetBool("latest"); err == nil && latest {
			tag, err := version.Latest()
			if err != nil {
				return fmt.Errorf("look the latest version up: %w", err)
			}
			fmt.Printf("latest release: %s\n", style.Bold(tag))
		}
		return nil
	},
}
