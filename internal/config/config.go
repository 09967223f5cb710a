package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config contains runtime configuration required by the service. None
// of it is part of the core contract; it all belongs to startup glue.
type Config struct {
	DBURL      string `yaml:"db_url"`
	ListenAddr string `yaml:"listen_addr"`
	AuditFile  string `yaml:"audit_file"`
	LogLevel   string `yaml:"log_level"`
}

// Load builds config from an optional YAML file named by CONFIG_FILE,
// then applies environment overrides (DB_URL, LISTEN_ADDR, AUDIT_FILE,
// LOG_LEVEL). Only the database URL has no default.
func Load() (Config, error) {
	cfg := Config{
		ListenAddr: ":8080",
		AuditFile:  "events.csv",
		LogLevel:   "info",
	}

	if path := os.Getenv("CONFIG_FILE"); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("config: read %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("config: decode %s: %w", path, err)
		}
	}

	override(&cfg.DBURL, "DB_URL")
	override(&cfg.ListenAddr, "LISTEN_ADDR")
	override(&cfg.AuditFile, "AUDIT_FILE")
	override(&cfg.LogLevel, "LOG_LEVEL")

	if strings.TrimSpace(cfg.DBURL) == "" {
		return Config{}, errors.New("config: DB_URL required")
	}
	return cfg, nil
}

func override(dst *string, key string) {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		*dst = v
	}
}
