package common

import (
	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

type Config struct {
	LogLevel string
	LogDir   string
}

// LoadConfig reads the optional config file, missing keys fall back
// to the defaults. An empty path means defaults only.
func LoadConfig(path string) (*Config, error) {
	v := viper.New()
	v.SetDefault("loglevel", "info")
	v.SetDefault("logdir", "./log")
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Wrap(err, "read config file")
		}
	}
	return &Config{
		LogLevel: v.GetString("loglevel"),
		LogDir:   v.GetString("logdir"),
	}, nil
}
