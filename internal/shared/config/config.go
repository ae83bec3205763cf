package config

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/reshetovitsme/blog-feed-client/internal/shared/domain"
	"github.com/reshetovitsme/blog-feed-client/internal/shared/errors"
	"github.com/samber/lo"
	"github.com/samber/oops"
)

type Config struct {
	BackendURL       string        `koanf:"backend_url"`
	StoragePath      string        `koanf:"storage_path"`
	HTTPPort         string        `koanf:"http_port"`
	RequestTimeout   int           `koanf:"request_timeout"`
	TelegramBotToken string        `koanf:"telegram_bot_token"`
	TelegramAPIURL   string        `koanf:"telegram_api_url"`
	AllowedUsers     []int64       `koanf:"-"`
	Locale           domain.Locale `koanf:"-"`
	AppEnv           domain.AppEnv `koanf:"-"`
}

var configFiles = []string{
	"config.yaml",
	"config.yml",
	"config.json",
	"config.toml",
}

// Load reads the first config file found in the working directory, then
// environment variables, then defaults.
func Load() (*Config, error) {
	return load(configFiles)
}

func load(candidates []string) (*Config, error) {
	k := koanf.New(".")

	configFile, found := lo.Find(candidates, func(file string) bool {
		_, err := os.Stat(file)
		return err == nil
	})

	if found {
		var parser koanf.Parser
		ext := filepath.Ext(configFile)

		switch ext {
		case ".yaml", ".yml":
			parser = yaml.Parser()
		case ".json":
			parser = json.Parser()
		case ".toml":
			parser = toml.Parser()
		default:
			return nil, oops.Errorf("unsupported config file extension: %s", ext)
		}

		if err := k.Load(file.Provider(configFile), parser); err != nil {
			return nil, oops.With("config_file", configFile).Wrap(err)
		}
	}

	// Environment variables override config file values
	if err := k.Load(env.Provider("", ".", func(s string) string {
		return strings.ToLower(s)
	}), nil); err != nil {
		return nil, oops.With("context", "loading environment variables").Wrap(err)
	}

	if !k.Exists("backend_url") {
		k.Set("backend_url", "http://localhost:8080")
	}
	if !k.Exists("storage_path") {
		k.Set("storage_path", "./data")
	}
	if !k.Exists("http_port") {
		k.Set("http_port", "3000")
	}
	if !k.Exists("request_timeout") {
		k.Set("request_timeout", 30)
	}
	if !k.Exists("telegram_api_url") {
		k.Set("telegram_api_url", "https://api.telegram.org")
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, oops.With("context", "unmarshaling config").Wrap(err)
	}

	if allowedUsers := k.Get("allowed_users"); allowedUsers != nil {
		switch v := allowedUsers.(type) {
		case string:
			cfg.AllowedUsers = ParseAllowedUsers(v)
		case []interface{}:
			cfg.AllowedUsers = lo.FilterMap(v, func(item interface{}, _ int) (int64, bool) {
				switch val := item.(type) {
				case int64:
					return val, true
				case int:
					return int64(val), true
				case float64:
					return int64(val), true
				default:
					return 0, false
				}
			})
		}
	}

	cfg.AppEnv = domain.AppEnvProduction
	if env, err := domain.ParseAppEnv(k.String("app_env")); err == nil {
		cfg.AppEnv = env
	}

	cfg.Locale = domain.LocaleEn
	if locale, err := domain.ParseLocale(k.String("locale")); err == nil {
		cfg.Locale = locale
	}

	if cfg.RequestTimeout <= 0 {
		cfg.RequestTimeout = 30
	}

	if err := validateBackendURL(cfg.BackendURL); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Timeout is the request timeout applied to backend calls.
func (c *Config) Timeout() time.Duration {
	return time.Duration(c.RequestTimeout) * time.Second
}

// BotEnabled reports whether the Telegram surface should start.
func (c *Config) BotEnabled() bool {
	return c.TelegramBotToken != ""
}

func validateBackendURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil || !u.IsAbs() || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return oops.With("backend_url", raw).Wrap(errors.ErrMissingBackendURL)
	}
	return nil
}

// ParseAllowedUsers parses comma-separated user IDs string into []int64
func ParseAllowedUsers(s string) []int64 {
	if s == "" {
		return []int64{}
	}
	parts := strings.Split(s, ",")
	return lo.FilterMap(parts, func(part string, _ int) (int64, bool) {
		part = strings.TrimSpace(part)
		if part == "" {
			return 0, false
		}
		var id int64
		if _, err := fmt.Sscanf(part, "%d", &id); err == nil {
			return id, true
		}
		return 0, false
	})
}
