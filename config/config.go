package config

import (
	"errors"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	App       AppConfig       `mapstructure:"app"`
	Server    ServerConfig    `mapstructure:"server"`
	Log       LogConfig       `mapstructure:"log"`
	DB        DBConfig        `mapstructure:"db"`
	Feeds     FeedsConfig     `mapstructure:"feeds"`
	RateLimit RateLimitConfig `mapstructure:"rate_limit"`
}

type AppConfig struct {
	Env string `mapstructure:"env"`
}

type ServerConfig struct {
	HTTPAddr string `mapstructure:"http_addr"`
}

type LogConfig struct {
	Level       string `mapstructure:"level"`
	Encoding    string `mapstructure:"encoding"`
	Development bool   `mapstructure:"development"`
}

type DBConfig struct {
	DSN string `mapstructure:"dsn"`
}

type FeedsConfig struct {
	RelayURL    string        `mapstructure:"relay_url"`
	Timeout     time.Duration `mapstructure:"timeout"`
	NewsPerPage int           `mapstructure:"news_per_page"`
	ImpactLimit int           `mapstructure:"impact_limit"`
}

type RateLimitConfig struct {
	RPS   float64 `mapstructure:"rps"`
	Burst int     `mapstructure:"burst"`
}

// Load reads .env (if present), then the YAML file at path (if present),
// then MP_* environment variables. Later sources win.
func Load(path string) (Config, error) {
	// .env is optional; real environment variables are never overridden.
	_ = godotenv.Load()

	v := viper.New()
	v.SetEnvPrefix("MP")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("app.env", "dev")
	v.SetDefault("server.http_addr", ":8090")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.encoding", "console")
	v.SetDefault("log.development", true)
	v.SetDefault("db.dsn", "file:market-pulse?mode=memory&cache=shared")
	v.SetDefault("feeds.relay_url", "https://api.allorigins.win/raw")
	v.SetDefault("feeds.timeout", "15s")
	v.SetDefault("feeds.news_per_page", 8)
	v.SetDefault("feeds.impact_limit", 10)
	v.SetDefault("rate_limit.rps", 10)
	v.SetDefault("rate_limit.burst", 30)

	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) && !os.IsNotExist(err) {
				return Config{}, err
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// IsDev reports whether the app runs in the dev environment.
func (c Config) IsDev() bool {
	return strings.EqualFold(c.App.Env, "dev")
}
