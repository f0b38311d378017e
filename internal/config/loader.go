package config

import (
	"errors"
	"strings"

	"github.com/spf13/viper"
)

const envPrefix = "GO_FD_PRODUCT"

// Load reads config.yaml from the usual search paths and lets
// GO_FD_PRODUCT_* environment variables override individual keys.
// A missing config file is not an error so the service can run from
// environment variables alone.
func Load() (Config, error) {
	var cfg Config

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("/config")
	v.AddConfigPath("./config")
	v.AddConfigPath(".")

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return cfg, err
		}
	}

	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, err
	}

	return cfg, nil
}
