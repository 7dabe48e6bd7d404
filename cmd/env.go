package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/stormychel/YouTubePlayerKit/config"
	"github.com/stormychel/YouTubePlayerKit/style"
	"github.com/stormychel/YouTubePlayerKit/where"
	"golang.org/x/exp/slices"
)

func init() {
	rootCmd.AddCommand(envCmd)
}

var envCmd = &cobra.Command{
	Use:   "env",
	Short: "Show the environment variables the application reads",
	Run: func(cmd *cobra.Command, args []string) {
		names := make([]string, 0, len(config.EnvExposed)+1)
		for _, k := range config.EnvExposed {
			field := config.Default[k]
			names = append(names, field.Env())
		}
		names = append(names, where.EnvConfigPath)
		slices.Sort(names)

		for _, name := range names {
			value, set := os.LookupEnv(name)
			if set {
				fmt.Printf("%s=%s\n", style.Bold(name), value)
			} else {
				fmt.Printf("%s=%s\n", style.Bold(name), style.Faint("<unset>"))
			}
		}
	},
}
