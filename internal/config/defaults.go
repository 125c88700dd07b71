package config

import "github.com/spf13/viper"

// SetDefaults fills zero values that have a non-zero default.
func SetDefaults(cfg *Config) {
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 3000
	}
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "info"
	}
	if cfg.Logging.File != "" {
		if cfg.Logging.MaxSize == 0 {
			cfg.Logging.MaxSize = 10
		}
		if cfg.Logging.MaxBackups == 0 {
			cfg.Logging.MaxBackups = 3
		}
		if cfg.Logging.MaxAge == 0 {
			cfg.Logging.MaxAge = 28
		}
	}
}

// setViperDefaults registers defaults for keys whose zero value is a valid
// setting, so that AutomaticEnv can still override them.
func setViperDefaults(v *viper.Viper) {
	v.SetDefault("grid.height", 0)
	v.SetDefault("grid.width", 0)
	v.SetDefault("render.color", true)
	v.SetDefault("render.width", 0)
	v.SetDefault("server.port", 3000)
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.console_level", "")
	v.SetDefault("logging.file", "")
	v.SetDefault("logging.compress", false)
	v.SetDefault("logging.dev", false)
}
