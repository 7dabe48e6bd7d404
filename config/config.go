// Package config provides centralized management for application settings, defaults, and the Viper-based configuration engine.
package config

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"github.com/stormychel/YouTubePlayerKit/constant"
	"github.com/stormychel/YouTubePlayerKit/filesystem"
	"github.com/stormychel/YouTubePlayerKit/key"
	"github.com/stormychel/YouTubePlayerKit/where"
)

// EnvKeyReplacer is a strings.Replacer used to normalize configuration keys into environment variable naming conventions.
var EnvKeyReplacer = strings.NewReplacer(".", "_")

// Setup initializes the global configuration state, including defaults, environment bindings, and config file resolution.
func Setup() error {
	viper.SetConfigName(constant.App)
	viper.SetConfigType("toml")
	viper.SetFs(filesystem.API())
	viper.AddConfigPath(where.Config())

	// Synchronize environment variable bindings.
	viper.SetEnvPrefix(constant.App)
	viper.SetEnvKeyReplacer(EnvKeyReplacer)
	for _, env := range EnvExposed {
		viper.MustBindEnv(env)
	}

	// Initialize factory default values.
	viper.SetTypeByDefaultValue(true)
	for name, field := range Default {
		viper.SetDefault(name, field.Value)
	}

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return err
		}
	}

	return validate()
}

// propertyPath matches a dotted chain of JS identifiers. The script
// object name is spliced into generated expressions verbatim, so
// anything else would let the config inject arbitrary script.
var propertyPath = regexp.MustCompile(`^[A-Za-z_$][A-Za-z0-9_$]*(\.[A-Za-z_$][A-Za-z0-9_$]*)*$`)

// validate rejects configuration values the player cannot run with.
func validate() error {
	if name := viper.GetString(key.PlayerScriptObject); !propertyPath.MatchString(name) {
		return fmt.Errorf("%s: %q is not a property path", key.PlayerScriptObject, name)
	}
	if interval := viper.GetInt(key.PlayerPollInterval); interval <= 0 {
		return fmt.Errorf("%s must be a positive number of milliseconds, got %d", key.PlayerPollInterval, interval)
	}
	if limit := viper.GetInt(key.RecentsLimit); limit < 0 {
		return fmt.Errorf("%s cannot be negative, got %d", key.RecentsLimit, limit)
	}
	if level := viper.GetString(key.LogsLevel); level != "" {
		if _, err := logrus.ParseLevel(level); err != nil {
			return fmt.Errorf("%s: %w", key.LogsLevel, err)
		}
	}
	return nil
}
