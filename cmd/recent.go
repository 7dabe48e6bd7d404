package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/stormychel/YouTubePlayerKit/icon"
	"github.com/stormychel/YouTubePlayerKit/recent"
	"github.com/stormychel/YouTubePlayerKit/util"
)

func init() {
	rootCmd.AddCommand(recentCmd)
	recentCmd.AddCommand(recentListCmd)
	recentCmd.AddCommand(recentForgetCmd)
}

var recentCmd = &cobra.Command{
	Use:   "recent",
	Short: "Manage the recently played registry",
}

var recentListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recently played video ids",
	RunE: func(cmd *cobra.Command, args []string) error {
		ids, err := recent.List()
		if err != nil {
			return err
		}
		if len(ids) == 0 {
			fmt.Println("Nothing played yet")
			return nil
		}

		fmt.Println(util.Quantify(len(ids), "remembered video", "remembered videos"))
		for _, id := range ids {
			fmt.Println(id)
		}
		return nil
	},
}

var recentForgetCmd = &cobra.Command{
	Use:   "forget",
	Short: "Drop the recently played registry",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := recent.Forget(); err != nil {
			return err
		}
		fmt.Printf("%s Registry dropped\n", icon.Get(icon.Success))
		return nil
	},
}
