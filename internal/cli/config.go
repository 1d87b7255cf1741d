package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"

	"github.com/mesh-intelligence/wardrobe/pkg/types"
)

const (
	configFileName = "config"
	configFileType = "yaml"
	envPrefix      = "WARDROBE"

	cfgKeySeasons  = "seasons"
	cfgKeyTypes    = "types"
	cfgKeyLogLevel = "log_level"
)

// loadConfig reads config.yaml from configDir with Viper, applying defaults
// and WARDROBE_* environment overrides. A missing config.yaml is not an
// error.
func loadConfig(configDir string) (types.Config, error) {
	defaults := types.DefaultConfig()

	v := viper.New()
	v.SetDefault(cfgKeySeasons, defaults.Seasons)
	v.SetDefault(cfgKeyTypes, defaults.Types)
	v.SetDefault(cfgKeyLogLevel, defaults.LogLevel)
	v.SetConfigName(configFileName)
	v.SetConfigType(configFileType)
	v.AddConfigPath(configDir)
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return types.Config{}, sysError(fmt.Errorf("read config: %w", err))
		}
	}

	cfg := types.Config{
		Seasons:  v.GetStringSlice(cfgKeySeasons),
		Types:    v.GetStringSlice(cfgKeyTypes),
		LogLevel: v.GetString(cfgKeyLogLevel),
	}
	if err := cfg.Validate(); err != nil {
		return types.Config{}, userError(fmt.Errorf("invalid config: %w", err))
	}
	return cfg, nil
}
