package config

import (
	"path/filepath"
	"reflect"
	"strings"

	"pantry-planner/core/database"
	"pantry-planner/core/logger"
	"pantry-planner/core/server"
	"pantry-planner/core/storage"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application.
type Config struct {
	// Server holds the HTTP server and identity settings.
	Server server.Config `mapstructure:"server"`
	// Storage holds the object storage settings used for datasets.
	Storage storage.Config `mapstructure:"storage"`
	// Log holds configuration for the logger.
	Log logger.Config `mapstructure:"log"`
	// Database holds the connection settings for the kitchen stores.
	Database database.Config `mapstructure:"database"`
}

// LoadConfig loads configuration from an optional .env file in path and the environment.
// Keys map to upper-case variables with dots replaced, so server.port is SERVER_PORT.
func LoadConfig(path string) (*Config, error) {
	// 1. Load .env file if it exists
	// A missing .env is fine outside development.
	_ = godotenv.Overload(filepath.Join(path, ".env"))

	v := viper.New()

	// 2. Register every key with its `default` tag
	bindValues(v, Config{}, "")

	// 3. Map environment variables to nested keys (e.g. DATABASE_DRIVER -> database.driver)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

// bindValues walks the struct and registers every mapstructure key with its
// `default` tag, so AutomaticEnv can resolve keys that have no default.
func bindValues(v *viper.Viper, iface any, prefix string) {
	t := reflect.TypeOf(iface)

	// If it's a pointer, get the element
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		tag := field.Tag.Get("mapstructure")

		// Skip if no tag
		if tag == "" {
			continue
		}

		key := tag
		if prefix != "" {
			key = prefix + "." + tag
		}

		// Nested struct, recurse with the extended prefix
		if field.Type.Kind() == reflect.Struct {
			bindValues(v, reflect.New(field.Type).Elem().Interface(), key)
			continue
		}

		// Always set the default, even if empty, so AutomaticEnv sees the key
		v.SetDefault(key, field.Tag.Get("default"))
	}
}
