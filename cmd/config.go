package cmd

import (
	"encoding/json"
	"fmt"
	"path/filepath"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/stormychel/YouTubePlayerKit/config"
	"github.com/stormychel/YouTubePlayerKit/constant"
	"github.com/stormychel/YouTubePlayerKit/icon"
	"github.com/stormychel/YouTubePlayerKit/where"
	"golang.org/x/exp/slices"
)

func init() {
	rootCmd.AddCommand(configCmd)

	configCmd.AddCommand(configInfoCmd)
	configInfoCmd.Flags().StringP("key", "k", "", "show a single configuration field")
	configInfoCmd.Flags().BoolP("json", "j", false, "output as json")

	configCmd.AddCommand(configInitCmd)
	configInitCmd.Flags().BoolP("force", "f", false, "overwrite an existing configuration file")
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the configuration",
}

var configInfoCmd = &cobra.Command{
	Use:   "info",
	Short: "Show configuration fields with their current values",
	RunE: func(cmd *cobra.Command, args []string) error {
		asJson := lo.Must(cmd.Flags().GetBool("json"))

		if name := lo.Must(cmd.Flags().GetString("key")); name != "" {
			field, ok := config.Default[name]
			if !ok {
				return fmt.Errorf("unknown configuration key %q", name)
			}
			printField(&field, asJson)
			return nil
		}

		keys := lo.Keys(config.Default)
		slices.Sort(keys)
		for _, name := range keys {
			field := config.Default[name]
			printField(&field, asJson)
			fmt.Println()
		}
		return nil
	},
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a configuration file populated with the defaults",
	RunE: func(cmd *cobra.Command, args []string) error {
		path := filepath.Join(where.Config(), constant.App+".toml")

		var err error
		if lo.Must(cmd.Flags().GetBool("force")) {
			err = viper.WriteConfigAs(path)
		} else {
			err = viper.SafeWriteConfigAs(path)
		}
		if err != nil {
			return err
		}

		fmt.Printf("%s Wrote %s\n", icon.Get(icon.Success), path)
		return nil
	},
}

func printField(field *config.Field, asJson bool) {
	if asJson {
		fmt.Println(string(lo.Must(json.Marshal(field))))
		return
	}
	fmt.Println(field.Pretty())
}
