// Package config loads metromap settings from metromap.yaml, a .env file and
// METROMAP_* environment variables, and builds the global logger.
package config

import (
	"strings"

	"github.com/joho/godotenv"
	"github.com/rotisserie/eris"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config holds the full application configuration.
type Config struct {
	Theme   ThemeConfig   `yaml:"theme" mapstructure:"theme"`
	View    ViewConfig    `yaml:"view" mapstructure:"view"`
	Catalog CatalogConfig `yaml:"catalog" mapstructure:"catalog"`
	Log     LogConfig     `yaml:"log" mapstructure:"log"`
}

// ThemeConfig selects the initial colour theme.
type ThemeConfig struct {
	Dark bool `yaml:"dark" mapstructure:"dark"`
}

// ViewConfig tunes the map viewer.
type ViewConfig struct {
	// WheelDelta is the scroll delta of one wheel notch; the engine applies 0.001 per unit.
	WheelDelta float64 `yaml:"wheel_delta" mapstructure:"wheel_delta"`
	StartCity  string  `yaml:"start_city" mapstructure:"start_city"`
}

// CatalogConfig selects where city networks come from. DB wins over Dir;
// with neither set the built-in cities are used.
type CatalogConfig struct {
	Dir string `yaml:"dir" mapstructure:"dir"`
	DB  string `yaml:"db" mapstructure:"db"`
}

// LogConfig configures logging.
type LogConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`
	Format string `yaml:"format" mapstructure:"format"`
	File   string `yaml:"file" mapstructure:"file"`
}

// Load reads configuration from file and environment.
func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()

	v.SetConfigName("metromap")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	v.SetEnvPrefix("METROMAP")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("theme.dark", false)
	v.SetDefault("view.wheel_delta", 100.0)
	v.SetDefault("view.start_city", "")
	v.SetDefault("catalog.dir", "")
	v.SetDefault("catalog.db", "")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")
	v.SetDefault("log.file", "metromap.log")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, eris.Wrap(err, "config: read file")
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, eris.Wrap(err, "config: unmarshal")
	}
	if cfg.View.WheelDelta <= 0 {
		return nil, eris.Errorf("config: view.wheel_delta must be positive, got %v", cfg.View.WheelDelta)
	}

	return &cfg, nil
}

// InitLogger initializes the global zap logger. The terminal belongs to the
// viewer, so output goes to cfg.File; an empty File or "stderr" logs to stderr.
func InitLogger(cfg LogConfig) error {
	var zapCfg zap.Config
	if cfg.Format == "console" {
		zapCfg = zap.NewDevelopmentConfig()
	} else {
		zapCfg = zap.NewProductionConfig()
	}

	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return eris.Wrap(err, "config: parse log level")
	}
	zapCfg.Level.SetLevel(level)

	out := cfg.File
	if out == "" {
		out = "stderr"
	}
	zapCfg.OutputPaths = []string{out}
	zapCfg.ErrorOutputPaths = []string{out}

	logger, err := zapCfg.Build()
	if err != nil {
		return eris.Wrap(err, "config: build logger")
	}
	zap.ReplaceGlobals(logger)

	return nil
}
