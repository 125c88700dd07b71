package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment override, e.g. CAPY_GRID_HEIGHT.
const EnvPrefix = "CAPY"

// Config is the main configuration struct combining all sub-configs.
type Config struct {
	Grid    GridConfig    `mapstructure:"grid"`
	Render  RenderConfig  `mapstructure:"render"`
	Server  ServerConfig  `mapstructure:"server"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// GridConfig holds the default building space size used when the user
// does not enter one.
type GridConfig struct {
	Height int `mapstructure:"height" validate:"min=0"`
	Width  int `mapstructure:"width" validate:"min=0"`
}

// RenderConfig controls board output.
type RenderConfig struct {
	// Color enables coloured building labels.
	Color bool `mapstructure:"color"`

	// Width overrides terminal width detection when > 0.
	Width int `mapstructure:"width" validate:"min=0"`
}

// ServerConfig holds the HTTP API settings for `capycity serve`.
type ServerConfig struct {
	Port int `mapstructure:"port" validate:"min=1,max=65535"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	// Log level: debug, info, warn, error
	Level string `mapstructure:"level" validate:"required,oneof=debug info warn error"`

	// ConsoleLevel raises the threshold of the console output only, e.g.
	// "warn" so that info lines do not interleave with the interactive
	// menu. Empty follows Level.
	ConsoleLevel string `mapstructure:"console_level" validate:"omitempty,oneof=debug info warn error"`

	// File receives JSON logs with rotation when set.
	File string `mapstructure:"file"`

	MaxSize    int  `mapstructure:"max_size" validate:"min=0"`
	MaxBackups int  `mapstructure:"max_backups" validate:"min=0"`
	MaxAge     int  `mapstructure:"max_age" validate:"min=0"`
	Compress   bool `mapstructure:"compress"`

	// Dev adds stack traces to warnings and above.
	Dev bool `mapstructure:"dev"`
}

// Load reads configuration from, in order of priority:
// 1. Environment variables (CAPY_ prefix, .env honoured)
// 2. Config file (capycity.yaml)
// 3. Defaults
//
// The returned viper instance is kept so callers can watch the file.
func Load(configPath string) (*Config, *viper.Viper, error) {
	// Load .env file if it exists (doesn't error if missing)
	_ = godotenv.Load()

	v := viper.New()
	setViperDefaults(v)

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("capycity")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./configs")
		v.AddConfigPath("$HOME/.capycity")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	cfg, err := decode(v)
	if err != nil {
		return nil, nil, err
	}
	return cfg, v, nil
}

// Reload re-decodes an already loaded viper instance, e.g. after the config
// file changed on disk.
func Reload(v *viper.Viper) (*Config, error) {
	return decode(v)
}

func decode(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	SetDefaults(&cfg)

	if err := ValidateConfig(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &cfg, nil
}

