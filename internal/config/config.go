package config

import (
	"errors"
	"fmt"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/aretw0/helpcenter/internal/runtime"
	"github.com/aretw0/helpcenter/pkg/adapters/file"
	"github.com/aretw0/helpcenter/pkg/adapters/redis"
)

// EnvPrefix namespaces environment overrides (HELPCENTER_ADDR, ...).
const EnvPrefix = "HELPCENTER"

// Config holds all runtime configuration of the helpcenter binary.
// Values are populated from helpcenter.yaml, HELPCENTER_* env vars, and CLI flags.
type Config struct {
	Topics      string        `mapstructure:"topics"`
	Corpus      string        `mapstructure:"corpus"`
	RedisURL    string        `mapstructure:"redis_url"`
	RedisKey    string        `mapstructure:"redis_key"`
	Addr        string        `mapstructure:"addr"`
	LogLevel    string        `mapstructure:"log_level"`
	LogFormat   string        `mapstructure:"log_format"`
	CORSOrigins []string      `mapstructure:"cors_origins"`
	Theme       runtime.Theme `mapstructure:"theme"`
}

// SetDefaults registers built-in values for any key not set elsewhere.
func SetDefaults(v *viper.Viper) {
	theme := runtime.DefaultTheme()

	v.SetDefault("topics", "topics")
	v.SetDefault("corpus", file.DefaultPath)
	v.SetDefault("redis_url", "")
	v.SetDefault("redis_key", redis.DefaultKey)
	v.SetDefault("addr", ":8080")
	v.SetDefault("log_level", "info")
	v.SetDefault("log_format", "text")
	v.SetDefault("cors_origins", []string{"*"})
	v.SetDefault("theme.title", theme.Title)
	v.SetDefault("theme.welcome", theme.Welcome)
	v.SetDefault("theme.color", theme.Color)
	v.SetDefault("theme.placeholder", theme.Placeholder)
}

// Init prepares v: optional config file, .env, environment binding, defaults.
// A missing config file is not an error; an unreadable one is.
func Init(v *viper.Viper, cfgFile string) error {
	// Ignore a missing .env; production sets real environment variables.
	_ = godotenv.Load()

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName("helpcenter")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()
	SetDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("failed to read config: %w", err)
	}
	return nil
}

// Load decodes v into a Config and validates it.
func Load(v *viper.Viper) (Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// Validate checks the values a command may rely on.
func (c Config) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.Addr, validation.Required),
		validation.Field(&c.LogLevel, validation.In("debug", "info", "warn", "error", "DEBUG", "INFO", "WARN", "ERROR")),
		validation.Field(&c.LogFormat, validation.In("text", "json")),
		validation.Field(&c.RedisURL, validation.When(c.RedisURL != "", is.RequestURI)),
		validation.Field(&c.RedisKey, validation.Required),
	)
}
