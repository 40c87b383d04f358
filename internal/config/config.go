package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Server  Server  `yaml:"server"`
	Backend Backend `yaml:"backend"`
	Session Session `yaml:"session"`
}

type Server struct {
	Addr string `yaml:"addr"`
}

type Backend struct {
	// BaseURL is the REST backend all data comes from.
	BaseURL string `yaml:"base_url"`
}

type Session struct {
	// Store selects the session persistence backend: "memory" or "redis".
	Store    string        `yaml:"store"`
	Lifetime time.Duration `yaml:"lifetime"`
	Redis    Redis         `yaml:"redis"`
}

type Redis struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

// Load reads the optional yaml config file at path, then applies
// environment overrides on top of it. A missing file is not an error.
func Load(path string) (*Config, error) {
	cfg := &Config{
		Server:  Server{Addr: ":3000"},
		Backend: Backend{BaseURL: "http://localhost:8080"},
		Session: Session{
			Store:    "memory",
			Lifetime: 168 * time.Hour,
			Redis:    Redis{Addr: "localhost:6379"},
		},
	}

	raw, err := os.ReadFile(path)
	if err == nil {
		if err := yaml.Unmarshal(raw, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, err
	}

	applyEnv(cfg)

	if cfg.Session.Store != "memory" && cfg.Session.Store != "redis" {
		return nil, fmt.Errorf("unrecognized session store %q", cfg.Session.Store)
	}

	return cfg, nil
}

func applyEnv(cfg *Config) {
	if v, ok := os.LookupEnv("STORYWEB_ADDR"); ok {
		cfg.Server.Addr = v
	}
	if v, ok := os.LookupEnv("STORYWEB_BACKEND_URL"); ok {
		cfg.Backend.BaseURL = v
	}
	if v, ok := os.LookupEnv("STORYWEB_SESSION_STORE"); ok {
		cfg.Session.Store = v
	}
	if v, ok := os.LookupEnv("STORYWEB_SESSION_LIFETIME"); ok {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.Session.Lifetime = d
		}
	}
	if v, ok := os.LookupEnv("STORYWEB_REDIS_ADDR"); ok {
		cfg.Session.Redis.Addr = v
	}
	if v, ok := os.LookupEnv("STORYWEB_REDIS_PASSWORD"); ok {
		cfg.Session.Redis.Password = v
	}
	if v, ok := os.LookupEnv("STORYWEB_REDIS_DB"); ok {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Session.Redis.DB = n
		}
	}
}
