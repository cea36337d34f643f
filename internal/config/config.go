// Package config loads exclar settings from file, environment and flags.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"
)

const (
	KeyOutputDir        = "output_dir"
	KeyStatusResetDelay = "status_reset_delay"
	KeyLogLevel         = "log_level"
	KeyLogFile          = "log_file"

	EnvPrefix = "EXCLAR"
	fileName  = "exclar"
)

type Config struct {
	// OutputDir receives generated documents. Empty means next to the input.
	OutputDir string `mapstructure:"output_dir"`

	// StatusResetDelay is how long the success status stays up in the UI.
	StatusResetDelay time.Duration `mapstructure:"status_reset_delay"`

	LogLevel string `mapstructure:"log_level"`

	// LogFile is where the UI logs; the terminal itself is never written to.
	LogFile string `mapstructure:"log_file"`
}

func SetDefaults(v *viper.Viper) {
	v.SetDefault(KeyOutputDir, "")
	v.SetDefault(KeyStatusResetDelay, 2*time.Second)
	v.SetDefault(KeyLogLevel, "info")
	v.SetDefault(KeyLogFile, "")
}

// Load reads cfgFile, or exclar.yaml from the working directory or
// ~/.config/exclar when cfgFile is empty. A missing default config file is
// not an error. Environment variables prefixed EXCLAR_ override the file.
func Load(v *viper.Viper, cfgFile string) (*Config, error) {
	SetDefaults(v)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName(fileName)
		v.SetConfigType("yaml")
		v.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", fileName))
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	if c.StatusResetDelay < 0 {
		return fmt.Errorf("%s must not be negative, got %s", KeyStatusResetDelay, c.StatusResetDelay)
	}
	if c.OutputDir != "" {
		info, err := os.Stat(c.OutputDir)
		if err != nil {
			return fmt.Errorf("%s: %w", KeyOutputDir, err)
		}
		if !info.IsDir() {
			return fmt.Errorf("%s: %s is not a directory", KeyOutputDir, c.OutputDir)
		}
	}
	return nil
}
