// Package config loads service configuration from environment variables and
// an optional .env file.
package config

import (
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/mesh-intelligence/scriptorium/pkg/types"
)

// Config holds application configuration.
type Config struct {
	Server ServerConfig
	Store  types.Config
	Log    LogConfig
}

type ServerConfig struct {
	Host         string
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

type LogConfig struct {
	Level string
}

// Load reads configuration from environment variables, after loading a .env
// file when one is present. Every key has a default; nothing is required.
func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("SERVER_HOST", "127.0.0.1")
	v.SetDefault("SERVER_PORT", "8080")
	v.SetDefault("SERVER_READ_TIMEOUT", 30)
	v.SetDefault("SERVER_WRITE_TIMEOUT", 30)
	v.SetDefault("DATA_DIR", types.DefaultDataDir)
	v.SetDefault("DB_FILE", types.DefaultDBFile)
	v.SetDefault("SEED_ON_INIT", true)
	v.SetDefault("LOG_LEVEL", "info")

	cfg := &Config{
		Server: ServerConfig{
			Host:         v.GetString("SERVER_HOST"),
			Port:         v.GetString("SERVER_PORT"),
			ReadTimeout:  time.Duration(v.GetInt("SERVER_READ_TIMEOUT")) * time.Second,
			WriteTimeout: time.Duration(v.GetInt("SERVER_WRITE_TIMEOUT")) * time.Second,
		},
		Store: types.Config{
			DataDir:    v.GetString("DATA_DIR"),
			DBFile:     v.GetString("DB_FILE"),
			SeedOnInit: v.GetBool("SEED_ON_INIT"),
		},
		Log: LogConfig{
			Level: v.GetString("LOG_LEVEL"),
		},
	}

	if err := cfg.Store.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Addr returns the host:port pair the server binds to.
func (s ServerConfig) Addr() string {
	return s.Host + ":" + s.Port
}
