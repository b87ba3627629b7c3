package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	StorageMemory = "memory"
	StorageFile   = "file"
	StorageRedis  = "redis"
)

type Config struct {
	APIBaseURL string
	Port       string
	Env        string

	Storage     string
	StoragePath string
	RedisURL    string
	RedisDB     int
	ClientID    string

	LogLevel string

	NotificationDwell     time.Duration
	NotificationExit      time.Duration
	LoginRedirectDelay    time.Duration
	RegisterRedirectDelay time.Duration
	RequestTimeout        time.Duration

	AllowedOrigin string
}

func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

// Load reads LOTTERY_* environment variables and an optional config.yaml in
// the working directory. Environment wins over the file.
func Load() (*Config, error) {
	return load(viper.New(), ".")
}

func load(v *viper.Viper, paths ...string) (*Config, error) {
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	for _, p := range paths {
		v.AddConfigPath(p)
	}
	v.SetEnvPrefix("LOTTERY")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("api_base_url", "http://localhost:8080")
	v.SetDefault("port", "3000")
	v.SetDefault("env", "development")
	v.SetDefault("storage", StorageFile)
	v.SetDefault("storage_path", ".lottery-session.json")
	v.SetDefault("redis_url", "localhost:6379")
	v.SetDefault("redis_db", 0)
	v.SetDefault("client_id", "default")
	v.SetDefault("log_level", "info")
	v.SetDefault("notification_dwell", "3s")
	v.SetDefault("notification_exit", "300ms")
	v.SetDefault("login_redirect_delay", "1s")
	v.SetDefault("register_redirect_delay", "3s")
	v.SetDefault("request_timeout", "0")
	v.SetDefault("allowed_origin", "*")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	cfg := &Config{
		APIBaseURL:            strings.TrimRight(v.GetString("api_base_url"), "/"),
		Port:                  v.GetString("port"),
		Env:                   v.GetString("env"),
		Storage:               strings.ToLower(v.GetString("storage")),
		StoragePath:           v.GetString("storage_path"),
		RedisURL:              v.GetString("redis_url"),
		RedisDB:               v.GetInt("redis_db"),
		ClientID:              v.GetString("client_id"),
		LogLevel:              v.GetString("log_level"),
		NotificationDwell:     v.GetDuration("notification_dwell"),
		NotificationExit:      v.GetDuration("notification_exit"),
		LoginRedirectDelay:    v.GetDuration("login_redirect_delay"),
		RegisterRedirectDelay: v.GetDuration("register_redirect_delay"),
		RequestTimeout:        v.GetDuration("request_timeout"),
		AllowedOrigin:         v.GetString("allowed_origin"),
	}

	switch cfg.Storage {
	case StorageMemory, StorageFile, StorageRedis:
	default:
		return nil, fmt.Errorf("unknown storage %q", cfg.Storage)
	}
	if cfg.APIBaseURL == "" {
		return nil, errors.New("api base url is required")
	}

	return cfg, nil
}
