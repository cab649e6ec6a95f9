package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Config defines server configuration.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	DB        DBConfig        `yaml:"db"`
	Log       LogConfig       `yaml:"log"`
	Transport TransportConfig `yaml:"transport"`
	Seed      SeedConfig      `yaml:"seed"`
	Session   SessionConfig   `yaml:"session"`
	Carousel  CarouselConfig  `yaml:"carousel"`
}

type ServerConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

type DBConfig struct {
	Path string `yaml:"path"`
}

type LogConfig struct {
	Level string `yaml:"level"`
	Path  string `yaml:"path"`
}

// TransportConfig selects how the MCP server is exposed: "http" mounts it
// next to the JSON API, "stdio" serves it on stdin/stdout only.
type TransportConfig struct {
	Mode string `yaml:"mode"`
}

// SeedConfig points at a catalog YAML file. Empty uses the bundled catalog.
type SeedConfig struct {
	Path string `yaml:"path"`
}

type SessionConfig struct {
	IdleTTL       time.Duration `yaml:"idle_ttl"`
	SweepInterval time.Duration `yaml:"sweep_interval"`
}

type CarouselConfig struct {
	Interval time.Duration `yaml:"interval"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Server: ServerConfig{
			Host: "0.0.0.0",
			Port: 8080,
		},
		DB: DBConfig{
			Path: "reel.db",
		},
		Log: LogConfig{
			Level: "info",
		},
		Transport: TransportConfig{
			Mode: "http",
		},
		Session: SessionConfig{
			IdleTTL:       30 * time.Minute,
			SweepInterval: time.Minute,
		},
		Carousel: CarouselConfig{
			Interval: 5 * time.Second,
		},
	}
}

// Load reads configuration from the YAML file named by REEL_CONFIG_PATH, if
// any, and environment variables.
func Load() (Config, error) {
	return LoadPath(os.Getenv("REEL_CONFIG_PATH"))
}

// LoadPath reads configuration from an optional YAML file and environment
// variables. Environment variables win over the file.
func LoadPath(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		if err := loadFromFile(path, &cfg); err != nil {
			return Config{}, err
		}
	}

	if host := os.Getenv("REEL_SERVER_HOST"); host != "" {
		cfg.Server.Host = host
	}
	if portStr := os.Getenv("REEL_SERVER_PORT"); portStr != "" {
		port, err := strconv.Atoi(portStr)
		if err != nil {
			return Config{}, fmt.Errorf("invalid REEL_SERVER_PORT: %w", err)
		}
		cfg.Server.Port = port
	}
	if dbPath := os.Getenv("REEL_DB_PATH"); dbPath != "" {
		cfg.DB.Path = dbPath
	}
	if level := os.Getenv("REEL_LOG_LEVEL"); level != "" {
		cfg.Log.Level = level
	}
	if logPath := os.Getenv("REEL_LOG_PATH"); logPath != "" {
		cfg.Log.Path = logPath
	}
	if mode := os.Getenv("REEL_TRANSPORT_MODE"); mode != "" {
		cfg.Transport.Mode = mode
	}
	if seedPath := os.Getenv("REEL_SEED_PATH"); seedPath != "" {
		cfg.Seed.Path = seedPath
	}

	durations := []struct {
		env string
		dst *time.Duration
	}{
		{"REEL_SESSION_IDLE_TTL", &cfg.Session.IdleTTL},
		{"REEL_SESSION_SWEEP_INTERVAL", &cfg.Session.SweepInterval},
		{"REEL_CAROUSEL_INTERVAL", &cfg.Carousel.Interval},
	}
	for _, d := range durations {
		raw := os.Getenv(d.env)
		if raw == "" {
			continue
		}
		v, err := time.ParseDuration(raw)
		if err != nil {
			return Config{}, fmt.Errorf("invalid %s: %w", d.env, err)
		}
		*d.dst = v
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks values that would otherwise fail later at startup.
func (c Config) Validate() error {
	switch c.Transport.Mode {
	case "http", "stdio":
	default:
		return fmt.Errorf("invalid transport mode %q: want http or stdio", c.Transport.Mode)
	}
	if c.Server.Port < 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port %d", c.Server.Port)
	}
	if c.Carousel.Interval < 0 {
		return fmt.Errorf("invalid carousel interval %s", c.Carousel.Interval)
	}
	return nil
}

func loadFromFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}
	return nil
}
