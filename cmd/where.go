package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/stormychel/YouTubePlayerKit/style"
	"github.com/stormychel/YouTubePlayerKit/where"
)

func init() {
	rootCmd.AddCommand(whereCmd)
}

var whereCmd = &cobra.Command{
	Use:   "where",
	Short: "Show the paths the application uses",
	Run: func(cmd *cobra.Command, args []string) {
		for _, entry := range []struct {
			name string
			path string
		}{
			{"config", where.Config()},
			{"cache", where.Cache()},
			{"logs", where.Logs()},
			{"recents", where.Recents()},
		} {
			fmt.Printf("%s %s\n", style.Bold(entry.name+":"), entry.path)
		}
	},
}
