// Package config loads the FinanceFlow configuration from defaults, an
// optional config file, a .env file and the environment.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to all environment variables, e.g.
// FINANCEFLOW_STORAGE_BACKEND for storage.backend.
const EnvPrefix = "FINANCEFLOW"

type Config struct {
	Storage Storage `mapstructure:"storage"`
	Server  Server  `mapstructure:"server"`
	Log     Log     `mapstructure:"log"`
}

type Storage struct {
	Backend string `mapstructure:"backend"` // memory or sqlite
	Path    string `mapstructure:"path"`    // Database file for sqlite
}

type Server struct {
	Port   int    `mapstructure:"port"`
	APIURL string `mapstructure:"api_url"` // Externally reachable URL of the API, used for links
}

type Log struct {
	Format string `mapstructure:"format"` // human or json
	Level  string `mapstructure:"level"`
}

var defaults = map[string]interface{}{
	"storage.backend": "sqlite",
	"storage.path":    "data/financeflow.db",
	"server.port":     8080,
	"server.api_url":  "http://localhost:8080",
	"log.format":      "json",
	"log.level":       "info",
}

// Environment variables that are read in addition to the prefixed ones.
var legacyEnv = map[string]string{
	"server.api_url": "API_URL",
	"log.format":     "LOG_FORMAT",
}

// Load reads the configuration. If file is empty, config.yaml is looked up in
// the working directory and is optional. Variables from a .env file in the
// working directory are added to the environment if they are not already set.
func Load(file string) (Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	for key, env := range legacyEnv {
		prefixed := EnvPrefix + "_" + strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
		if err := v.BindEnv(key, prefixed, env); err != nil {
			return Config{}, err
		}
	}

	if file != "" {
		v.SetConfigFile(file)
	} else {
		v.AddConfigPath(".")
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if file != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("failed to parse config: %w", err)
	}

	return c, nil
}

// Validate reports all problems with the configuration at once.
func (c Config) Validate() error {
	var errs []error

	switch c.Storage.Backend {
	case "memory":
	case "sqlite":
		if c.Storage.Path == "" {
			errs = append(errs, errors.New("storage.path must be set for the sqlite backend"))
		}
	default:
		errs = append(errs, fmt.Errorf("storage.backend must be 'memory' or 'sqlite', got '%s'", c.Storage.Backend))
	}

	if c.Server.Port < 1 || c.Server.Port > 65535 {
		errs = append(errs, fmt.Errorf("server.port must be between 1 and 65535, got %d", c.Server.Port))
	}

	if u, err := url.Parse(c.Server.APIURL); err != nil || u.Scheme == "" || u.Host == "" {
		errs = append(errs, fmt.Errorf("server.api_url must be an absolute URL, got '%s'", c.Server.APIURL))
	}

	if c.Log.Format != "human" && c.Log.Format != "json" {
		errs = append(errs, fmt.Errorf("log.format must be 'human' or 'json', got '%s'", c.Log.Format))
	}

	return errors.Join(errs...)
}
