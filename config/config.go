// Package config defines the server configuration and loads it from an
// optional YAML file plus environment variable overrides.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Configuration holds all configuration for the payroll server.
type Configuration struct {
	Server   Server
	Database Database
	CORS     CORS
	Payroll  Payroll
	Logging  Logging
}

// Server holds the HTTP listener parameters.
type Server struct {
	Port int
}

// Database holds the SQLite parameters.
type Database struct {
	Path string
}

// CORS lists the frontend origins allowed to call the API. Empty means
// same-origin only.
type CORS struct {
	AllowedOrigins []string
}

// Payroll holds engine defaults applied when a request leaves them out.
type Payroll struct {
	WeeklyOrdinaryLimit int
}

// Logging selects the zap logger profile.
type Logging struct {
	Level  string // debug, info, warn, error
	Format string // json or console
}

// LoadConfiguration loads the YAML configuration at configPath, applying
// defaults and PAYROLL_* environment overrides (PAYROLL_SERVER_PORT and
// the like). An empty path loads defaults and environment only.
func LoadConfiguration(configPath string) (*Configuration, error) {
	v := viper.New()

	v.SetDefault("server.port", 8080)
	v.SetDefault("database.path", "payroll.db")
	v.SetDefault("cors.allowedOrigins", []string{})
	v.SetDefault("payroll.weeklyOrdinaryLimit", 44)
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "json")

	v.SetEnvPrefix("PAYROLL")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configPath != "" {
		v.SetConfigFile(configPath)
		v.SetConfigType("yml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("error reading config file, %s", err)
		}
	}

	var configuration Configuration
	if err := v.Unmarshal(&configuration); err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %s", err)
	}

	return &configuration, nil
}
