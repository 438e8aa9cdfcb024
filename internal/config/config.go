// Package config loads application configuration from file and
// environment and initializes the global logger.
package config

import (
	"strings"

	"github.com/rotisserie/eris"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/sells-group/colsense/pkg/anthropic"
	"github.com/sells-group/colsense/pkg/openrouter"
)

// Config holds the full application configuration.
type Config struct {
	Store      StoreConfig      `yaml:"store" mapstructure:"store"`
	Classifier ClassifierConfig `yaml:"classifier" mapstructure:"classifier"`
	Ensemble   EnsembleConfig   `yaml:"ensemble" mapstructure:"ensemble"`
	OpenRouter OpenRouterConfig `yaml:"openrouter" mapstructure:"openrouter"`
	Groq       GroqConfig       `yaml:"groq" mapstructure:"groq"`
	Anthropic  AnthropicConfig  `yaml:"anthropic" mapstructure:"anthropic"`
	Server     ServerConfig     `yaml:"server" mapstructure:"server"`
	Limits     LimitsConfig     `yaml:"limits" mapstructure:"limits"`
	Log        LogConfig        `yaml:"log" mapstructure:"log"`
}

// StoreConfig configures the optional run-history database backend.
type StoreConfig struct {
	Driver      string `yaml:"driver" mapstructure:"driver"`
	DatabaseURL string `yaml:"database_url" mapstructure:"database_url"`
	Path        string `yaml:"path" mapstructure:"path"`
}

// ClassifierConfig configures the local classification engine.
type ClassifierConfig struct {
	Concurrency int     `yaml:"concurrency" mapstructure:"concurrency"`
	Threshold   float64 `yaml:"threshold" mapstructure:"threshold"`
}

// EnsembleConfig configures the AI judgment blend over local results.
type EnsembleConfig struct {
	Enabled     bool    `yaml:"enabled" mapstructure:"enabled"`
	Mode        string  `yaml:"mode" mapstructure:"mode"`
	Threshold   float64 `yaml:"threshold" mapstructure:"threshold"`
	TimeoutSecs int     `yaml:"timeout_secs" mapstructure:"timeout_secs"`
	MaxSamples  int     `yaml:"max_samples" mapstructure:"max_samples"`
	RatePerMin  int     `yaml:"rate_per_min" mapstructure:"rate_per_min"`
	ConfigPath  string  `yaml:"config_path" mapstructure:"config_path"`
}

// OpenRouterConfig holds OpenRouter API settings.
type OpenRouterConfig struct {
	Key     string `yaml:"key" mapstructure:"key"`
	BaseURL string `yaml:"base_url" mapstructure:"base_url"`
	Model   string `yaml:"model" mapstructure:"model"`
}

// GroqConfig holds Groq API settings.
type GroqConfig struct {
	Key   string `yaml:"key" mapstructure:"key"`
	Model string `yaml:"model" mapstructure:"model"`
}

// AnthropicConfig holds Anthropic API settings.
type AnthropicConfig struct {
	Key   string `yaml:"key" mapstructure:"key"`
	Model string `yaml:"model" mapstructure:"model"`
}

// ServerConfig configures the HTTP server.
type ServerConfig struct {
	Port           int `yaml:"port" mapstructure:"port"`
	SessionTTLMins int `yaml:"session_ttl_mins" mapstructure:"session_ttl_mins"`
}

// LimitsConfig bounds accepted uploads.
type LimitsConfig struct {
	MaxFileSizeMB int `yaml:"max_file_size_mb" mapstructure:"max_file_size_mb"`
	MaxRows       int `yaml:"max_rows" mapstructure:"max_rows"`
	MaxColumns    int `yaml:"max_columns" mapstructure:"max_columns"`
}

// LogConfig configures logging.
type LogConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`
	Format string `yaml:"format" mapstructure:"format"`
}

// Load reads configuration from file and environment.
func Load() (*Config, error) {
	v := viper.New()

	// Config file
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	// Environment
	v.SetEnvPrefix("COLSENSE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("store.driver", "sqlite")
	v.SetDefault("store.path", "colsense.db")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")
	v.SetDefault("server.port", 8000)
	v.SetDefault("server.session_ttl_mins", 60)
	v.SetDefault("classifier.concurrency", 4)
	v.SetDefault("classifier.threshold", 0.25)
	v.SetDefault("ensemble.enabled", false)
	v.SetDefault("ensemble.mode", "override")
	v.SetDefault("ensemble.threshold", 0.7)
	v.SetDefault("ensemble.timeout_secs", 15)
	v.SetDefault("ensemble.max_samples", 3)
	v.SetDefault("ensemble.rate_per_min", 60)
	v.SetDefault("ensemble.config_path", "judges.yaml")
	v.SetDefault("openrouter.base_url", openrouter.DefaultBaseURL)
	v.SetDefault("openrouter.model", openrouter.DefaultModel)
	v.SetDefault("groq.model", "llama-3.1-8b-instant")
	v.SetDefault("anthropic.model", anthropic.DefaultModel)
	v.SetDefault("limits.max_file_size_mb", 100)
	v.SetDefault("limits.max_rows", 100000)
	v.SetDefault("limits.max_columns", 1000)

	// Read config file (optional)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, eris.Wrap(err, "config: read file")
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, eris.Wrap(err, "config: unmarshal")
	}

	return &cfg, nil
}

// Validate checks the configuration for the given run mode. Mode is
// "classify" or "serve".
func (c *Config) Validate(mode string) error {
	var problems []string

	switch mode {
	case "serve":
		if c.Server.Port <= 0 || c.Server.Port > 65535 {
			problems = append(problems, "server.port must be between 1 and 65535")
		}
		if c.Limits.MaxFileSizeMB <= 0 {
			problems = append(problems, "limits.max_file_size_mb must be > 0")
		}
		if c.Limits.MaxRows <= 0 {
			problems = append(problems, "limits.max_rows must be > 0")
		}
		if c.Limits.MaxColumns <= 0 {
			problems = append(problems, "limits.max_columns must be > 0")
		}
	case "classify":
	default:
		return eris.Errorf("config: unknown mode %q", mode)
	}

	if c.Classifier.Concurrency < 1 || c.Classifier.Concurrency > 64 {
		problems = append(problems, "classifier.concurrency must be between 1 and 64")
	}
	if c.Classifier.Threshold < 0 || c.Classifier.Threshold > 1 {
		problems = append(problems, "classifier.threshold must be between 0 and 1")
	}
	if c.Ensemble.Threshold < 0 || c.Ensemble.Threshold > 1 {
		problems = append(problems, "ensemble.threshold must be between 0 and 1")
	}
	if c.Ensemble.Mode != "override" && c.Ensemble.Mode != "weighted" {
		problems = append(problems, "ensemble.mode must be override or weighted")
	}
	if c.Ensemble.Enabled && c.OpenRouter.Key == "" && c.Groq.Key == "" && c.Anthropic.Key == "" {
		problems = append(problems, "ensemble.enabled requires at least one provider key")
	}
	switch c.Store.Driver {
	case "", "sqlite", "postgres":
	default:
		problems = append(problems, "store.driver must be sqlite or postgres")
	}
	if c.Store.Driver == "postgres" && c.Store.DatabaseURL == "" {
		problems = append(problems, "store.database_url is required for the postgres driver")
	}

	if len(problems) > 0 {
		return eris.Errorf("config: %s", strings.Join(problems, "; "))
	}
	return nil
}

// InitLogger initializes the global zap logger.
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

	logger, err := zapCfg.Build()
	if err != nil {
		return eris.Wrap(err, "config: build logger")
	}
	zap.ReplaceGlobals(logger)

	return nil
}
