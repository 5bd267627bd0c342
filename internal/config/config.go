package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

const (
	StorePostgres = "postgres"
	StoreSupabase = "supabase"
)

// Config stores all configuration of the application.
// The values are read by viper from a config file or environment variables.
type Config struct {
	Environment   string        `mapstructure:"ENVIRONMENT"`
	ServerAddress string        `mapstructure:"SERVER_ADDRESS"`
	LogLevel      string        `mapstructure:"LOG_LEVEL"`
	LocationStore string        `mapstructure:"LOCATION_STORE"`
	DBSource      string        `mapstructure:"DB_SOURCE"`
	SupabaseURL   string        `mapstructure:"SUPABASE_URL"`
	SupabaseKey   string        `mapstructure:"SUPABASE_KEY"`
	JWTSecret     string        `mapstructure:"JWT_SECRET"`
	JWTExpiry     time.Duration `mapstructure:"JWT_EXPIRY"`
}

// LoadConfig reads app.env from path, letting environment variables override it.
// A missing file is not an error as long as the environment supplies the rest.
func LoadConfig(path string) (config Config, err error) {
	v := viper.New()
	v.AddConfigPath(path)
	v.SetConfigName("app")
	v.SetConfigType("env")
	v.AutomaticEnv()

	v.SetDefault("ENVIRONMENT", "development")
	v.SetDefault("SERVER_ADDRESS", "0.0.0.0:8080")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOCATION_STORE", StorePostgres)
	v.SetDefault("DB_SOURCE", "")
	v.SetDefault("SUPABASE_URL", "")
	v.SetDefault("SUPABASE_KEY", "")
	v.SetDefault("JWT_SECRET", "")
	v.SetDefault("JWT_EXPIRY", "24h")

	if err = v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return config, fmt.Errorf("config: failed to read config file: %w", err)
		}
	}

	if err = v.Unmarshal(&config); err != nil {
		return config, fmt.Errorf("config: failed to unmarshal config: %w", err)
	}

	config.LocationStore = strings.ToLower(strings.TrimSpace(config.LocationStore))
	if err = config.Validate(); err != nil {
		return config, err
	}

	return config, nil
}

// Validate checks that the selected location store has its connection settings.
func (c Config) Validate() error {
	switch c.LocationStore {
	case StorePostgres:
		if c.DBSource == "" {
			return fmt.Errorf("config: DB_SOURCE is required for the postgres store")
		}
	case StoreSupabase:
		if c.SupabaseURL == "" || c.SupabaseKey == "" {
			return fmt.Errorf("config: SUPABASE_URL and SUPABASE_KEY are required for the supabase store")
		}
	default:
		return fmt.Errorf("config: unknown LOCATION_STORE %q", c.LocationStore)
	}

	if c.JWTSecret == "" {
		return fmt.Errorf("config: JWT_SECRET is required")
	}

	return nil
}

// IsProduction reports whether logs should be emitted as JSON.
func (c Config) IsProduction() bool {
	return c.Environment == "production"
}

// WatchLogLevel calls onChange with the new LOG_LEVEL whenever app.env in path is
// written. It returns an error when there is no config file to watch.
func WatchLogLevel(path string, onChange func(level string)) error {
	v := viper.New()
	v.AddConfigPath(path)
	v.SetConfigName("app")
	v.SetConfigType("env")
	v.SetDefault("LOG_LEVEL", "info")

	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("config: failed to read config file: %w", err)
	}

	v.OnConfigChange(func(e fsnotify.Event) {
		if !e.Has(fsnotify.Write) && !e.Has(fsnotify.Create) {
			return
		}
		onChange(v.GetString("LOG_LEVEL"))
	})
	v.WatchConfig()

	return nil
}
