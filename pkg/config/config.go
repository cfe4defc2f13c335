// Package config wires defaults, the config file and environment variables into viper.
package config

import (
	"errors"
	"strings"

	"github.com/kerbaras/anitrack/pkg/key"
	"github.com/kerbaras/anitrack/pkg/where"
	"github.com/spf13/viper"
)

// EnvKeyReplacer maps config keys to environment variable names.
var EnvKeyReplacer = strings.NewReplacer(".", "_")

// Setup loads defaults, anitrack.toml from the config directory and ANITRACK_* variables.
func Setup() error {
	dir, err := where.Config()
	if err != nil {
		return err
	}

	viper.SetConfigName(where.App)
	viper.SetConfigType("toml")
	viper.SetFs(where.Fs())
	viper.AddConfigPath(dir)

	viper.SetEnvPrefix(where.App)
	viper.SetEnvKeyReplacer(EnvKeyReplacer)
	for name := range Default {
		if err := viper.BindEnv(name); err != nil {
			return err
		}
	}

	viper.SetTypeByDefaultValue(true)
	for name, field := range Default {
		viper.SetDefault(name, field.Value)
	}

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return err
	}

	return nil
}

// DatabasePath returns the configured database file, falling back to the config directory.
func DatabasePath() (string, error) {
	if path := viper.GetString(key.DatabasePath); path != "" {
		return path, nil
	}
	return where.Database()
}
