package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"pets-api/internal/platform/ids"
	"pets-api/internal/platform/logger"
)

// Config agrupa todo lo que el proceso lee del entorno.
type Config struct {
	Server    ServerConfig
	Log       LogConfig
	Store     StoreConfig
	RateLimit RateLimitConfig
}

type ServerConfig struct {
	Addr         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

type LogConfig struct {
	Level  logger.Level
	Format logger.Format
	App    string
}

type StoreConfig struct {
	DSN         string // vacío = store en memoria
	IDStrategy  ids.Strategy
	SeedFile    string // vacío = fixture embebido
	SeedOnStart bool
}

type RateLimitConfig struct {
	RPS   float64 // 0 = deshabilitado
	Burst int
}

func (c RateLimitConfig) Enabled() bool { return c.RPS > 0 }

// Load carga un .env opcional (los valores del entorno tienen prioridad) y parsea la config.
func Load(envFiles ...string) (*Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("load %s: %w", f, err)
		}
	}
	return FromEnv()
}

// FromEnv parsea la config sin tocar archivos.
func FromEnv() (*Config, error) {
	var errs []error
	p := parser{errs: &errs}

	cfg := &Config{
		Server: ServerConfig{
			Addr:         p.addr("PORT", "8080"),
			ReadTimeout:  p.duration("HTTP_READ_TIMEOUT", 5*time.Second),
			WriteTimeout: p.duration("HTTP_WRITE_TIMEOUT", 10*time.Second),
		},
		Log: LogConfig{
			Level:  p.level("LOG_LEVEL"),
			Format: p.format("LOG_FORMAT"),
			App:    p.str("APP_NAME", "pets-api"),
		},
		Store: StoreConfig{
			DSN:         p.str("DB_DSN", ""),
			SeedFile:    p.str("SEED_FILE", ""),
			SeedOnStart: p.boolean("SEED_ON_START", true),
		},
		RateLimit: RateLimitConfig{
			RPS:   p.float("RATE_LIMIT_RPS", 0),
			Burst: p.integer("RATE_LIMIT_BURST", 20),
		},
	}

	strategy, err := ids.ParseStrategy(os.Getenv("ID_STRATEGY"))
	if err != nil {
		errs = append(errs, fmt.Errorf("ID_STRATEGY: %w", err))
	}
	cfg.Store.IDStrategy = strategy

	if cfg.RateLimit.RPS < 0 {
		errs = append(errs, errors.New("RATE_LIMIT_RPS must be >= 0"))
	}
	if cfg.RateLimit.Enabled() && cfg.RateLimit.Burst <= 0 {
		errs = append(errs, errors.New("RATE_LIMIT_BURST must be > 0 when rate limiting is enabled"))
	}

	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	return cfg, nil
}

type parser struct {
	errs *[]error
}

func (p parser) fail(key string, err error) {
	*p.errs = append(*p.errs, fmt.Errorf("%s: %w", key, err))
}

func (p parser) str(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

// addr acepta "8080", ":8080" o "127.0.0.1:8080".
func (p parser) addr(key, def string) string {
	v := p.str(key, def)
	if strings.Contains(v, " ") {
		p.fail(key, fmt.Errorf("invalid value %q", v))
		return ""
	}
	if strings.Contains(v, ":") {
		return v
	}
	return ":" + v
}

func (p parser) duration(key string, def time.Duration) time.Duration {
	v := p.str(key, "")
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		p.fail(key, fmt.Errorf("invalid duration %q", v))
		return def
	}
	return d
}

func (p parser) boolean(key string, def bool) bool {
	v := p.str(key, "")
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		p.fail(key, fmt.Errorf("invalid bool %q", v))
		return def
	}
	return b
}

func (p parser) float(key string, def float64) float64 {
	v := p.str(key, "")
	if v == "" {
		return def
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		p.fail(key, fmt.Errorf("invalid number %q", v))
		return def
	}
	return f
}

func (p parser) integer(key string, def int) int {
	v := p.str(key, "")
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		p.fail(key, fmt.Errorf("invalid integer %q", v))
		return def
	}
	return n
}

// level solo acepta los nombres que entiende logger.ParseLevel.
func (p parser) level(key string) logger.Level {
	v := strings.ToLower(p.str(key, "info"))
	switch v {
	case "debug", "info", "warn", "warning", "error":
		return logger.ParseLevel(v)
	}
	p.fail(key, fmt.Errorf("invalid level %q", v))
	return logger.Info
}

func (p parser) format(key string) logger.Format {
	v := strings.ToLower(p.str(key, "text"))
	switch v {
	case "text", "json":
		return logger.ParseFormat(v)
	}
	p.fail(key, fmt.Errorf("invalid format %q", v))
	return logger.FormatText
}
