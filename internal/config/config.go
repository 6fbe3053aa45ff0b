package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Load reads the YAML config at path, applies environment overrides and
// defaults. A missing file is not an error; env vars alone can configure
// the process.
func Load(path string) (*AppConfig, error) {
	var raw rawAppConfig

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	case errors.Is(err, os.ErrNotExist):
	default:
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	applyEnv(&raw)
	return normalize(&raw)
}

func applyEnv(raw *rawAppConfig) {
	if v := os.Getenv("PORT"); v != "" {
		if p, err := strconv.Atoi(v); err == nil {
			raw.Port = p
		}
	}
	if v := os.Getenv("ENV"); v != "" {
		raw.Env = v
	}
	if v := os.Getenv("MONGO_URL"); v != "" {
		raw.MongoURL = v
	}
	if v := os.Getenv("MONGO_DB"); v != "" {
		raw.MongoDB = v
	}
	if v := os.Getenv("REDIS_URL"); v != "" {
		raw.RedisURL = v
	}
	if v := os.Getenv("JWT_SECRET"); v != "" {
		raw.JWTSecret = v
	}
	if v := os.Getenv("ALLOWED_ORIGINS"); v != "" {
		raw.AllowedOrigins = splitList(v)
	}
	if v := os.Getenv("TOKEN_SWEEP_INTERVAL"); v != "" {
		raw.TokenSweepInterval = v
	}
}

func normalize(raw *rawAppConfig) (*AppConfig, error) {
	cfg := &AppConfig{
		Port:           raw.Port,
		Env:            strings.TrimSpace(raw.Env),
		MongoURL:       strings.TrimSpace(raw.MongoURL),
		MongoDB:        strings.TrimSpace(raw.MongoDB),
		RedisURL:       strings.TrimSpace(raw.RedisURL),
		JWTSecret:      strings.TrimSpace(raw.JWTSecret),
		AllowedOrigins: raw.AllowedOrigins,
	}

	if cfg.Env == "" {
		cfg.Env = strings.TrimSpace(raw.NodeEnv)
	}
	if cfg.JWTSecret == "" {
		cfg.JWTSecret = strings.TrimSpace(raw.JWTSecretLegacy)
	}

	if cfg.Port == 0 {
		cfg.Port = defaultPort
	}
	if cfg.Env == "" {
		cfg.Env = defaultEnv
	}
	if cfg.MongoURL == "" {
		cfg.MongoURL = defaultMongoURL
	}
	if cfg.MongoDB == "" {
		cfg.MongoDB = defaultMongoDB
	}

	if s := strings.TrimSpace(raw.TokenSweepInterval); s != "" {
		d, err := time.ParseDuration(s)
		if err != nil {
			return nil, fmt.Errorf("invalid token_sweep_interval %q: %w", s, err)
		}
		if d < 0 {
			return nil, fmt.Errorf("token_sweep_interval must not be negative")
		}
		cfg.TokenSweepInterval = d
	}

	return cfg, nil
}

func splitList(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
