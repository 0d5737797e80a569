// Package config handles loading and parsing application configuration.
// It supports three sources (in priority order):
//  1. An environment variable:  CONFIG_PATH=/path/to/config.yaml
//  2. A command-line flag:      --config=/path/to/config.yaml
//  3. No file at all — environment variables and defaults only, so the
//     server starts with zero setup and listens on :3000.
package config

import (
	"flag"
	"log"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config is the root configuration structure. Every field maps to a
// key in the YAML file AND can be overridden by the corresponding
// environment variable (env:"...").
type Config struct {
	// Env controls log format and verbosity.
	// Valid values: "dev", "staging", "prod"
	Env string `yaml:"env" env:"ENV" env-default:"dev"`

	// StorageDriver selects the persistence backend:
	// "jsonfile" (flat JSON array file) or "sqlite".
	StorageDriver string `yaml:"storage_driver" env:"STORAGE_DRIVER" env-default:"jsonfile"`

	// StoragePath is the filesystem path of the store file — the JSON
	// array for jsonfile, the .db file for sqlite.
	StoragePath string `yaml:"storage_path" env:"STORAGE_PATH" env-default:"students.json"`

	HTTPServer `yaml:"http_server"`
}

// HTTPServer holds settings specific to the HTTP server.
type HTTPServer struct {
	// Addr is the TCP address the server listens on.
	Addr string `yaml:"address" env:"HTTP_SERVER_ADDR" env-default:":3000"`
}

// MustLoad reads, validates, and returns the application config.
//
// "Must" follows the Go convention: this function exits the process on
// failure, so if it returns, the config is valid.
func MustLoad() *Config {
	configPath := os.Getenv("CONFIG_PATH")

	if configPath == "" {
		flags := flag.String("config", "", "Path to the configuration YAML file")
		flag.Parse()
		configPath = *flags
	}

	var cfg Config

	// No file given: env vars + defaults are a complete configuration.
	if configPath == "" {
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			log.Fatalf("cannot read config from environment: %s", err.Error())
		}
		return &cfg
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		log.Fatalf("config file does not exist: %s", configPath)
	}

	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		log.Fatalf("cannot read config: %s", err.Error())
	}

	return &cfg
}
