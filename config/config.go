package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/v2"
)

const envPrefix = "MSITU_"

type AppConfig struct {
	HTTP  HTTPConfig  `koanf:"http"`
	DB    DBConfig    `koanf:"db"`
	Auth  AuthConfig  `koanf:"auth"`
	Redis RedisConfig `koanf:"redis"`
	Log   LogConfig   `koanf:"log"`
	CORS  CORSConfig  `koanf:"cors"`
}

type HTTPConfig struct {
	Port            string        `koanf:"port"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
}

type DBConfig struct {
	Driver string `koanf:"driver"` // sqlite|postgres
	Path   string `koanf:"path"`
	DSN    string `koanf:"dsn"`
}

type AuthConfig struct {
	JWTSecret   string        `koanf:"jwt_secret"`
	TokenTTL    time.Duration `koanf:"token_ttl"`
	LoginRate   int           `koanf:"login_rate"`
	LoginWindow time.Duration `koanf:"login_window"`
}

type RedisConfig struct {
	Addr     string `koanf:"addr"`
	Password string `koanf:"password"`
	DB       int    `koanf:"db"`
}

type LogConfig struct {
	Mode string `koanf:"mode"` // dev|prod
}

type CORSConfig struct {
	Origins []string `koanf:"origins"`
}

func Defaults() AppConfig {
	return AppConfig{
		HTTP: HTTPConfig{Port: "8080", ShutdownTimeout: 10 * time.Second},
		DB:   DBConfig{Driver: "sqlite", Path: "msitumum.db"},
		Auth: AuthConfig{
			JWTSecret:   "dev-secret-change-me",
			TokenTTL:    24 * time.Hour,
			LoginRate:   20,
			LoginWindow: time.Minute,
		},
		Log:  LogConfig{Mode: "dev"},
		CORS: CORSConfig{Origins: []string{"*"}},
	}
}

// Load reads configuration in increasing precedence: defaults, the YAML file at
// path (optional), MSITU_* environment variables, then the plain PORT,
// DATABASE_URL and JWT_SECRET variables that most hosting platforms set.
func Load(path string) (AppConfig, error) {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return AppConfig{}, fmt.Errorf("load .env: %w", err)
	}

	k := koanf.New(".")
	if path != "" {
		content, err := os.ReadFile(path)
		if err != nil && !errors.Is(err, os.ErrNotExist) {
			return AppConfig{}, fmt.Errorf("read config %s: %w", path, err)
		}
		if err == nil {
			if err := k.Load(rawbytes.Provider(content), yaml.Parser()); err != nil {
				return AppConfig{}, fmt.Errorf("parse config %s: %w", path, err)
			}
		}
	}

	// MSITU_AUTH_JWT_SECRET -> auth.jwt_secret
	if err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		parts := strings.SplitN(strings.ToLower(strings.TrimPrefix(s, envPrefix)), "_", 2)
		if len(parts) == 1 {
			return parts[0]
		}
		return parts[0] + "." + parts[1]
	}), nil); err != nil {
		return AppConfig{}, fmt.Errorf("load env: %w", err)
	}

	cfg := Defaults()
	if err := k.Unmarshal("", &cfg); err != nil {
		return AppConfig{}, fmt.Errorf("unmarshal config: %w", err)
	}

	get := func(k, def string) string {
		if v := os.Getenv(k); v != "" {
			return v
		}
		return def
	}
	cfg.HTTP.Port = get("PORT", cfg.HTTP.Port)
	cfg.Auth.JWTSecret = get("JWT_SECRET", cfg.Auth.JWTSecret)
	if dsn := get("DATABASE_URL", ""); dsn != "" {
		cfg.DB.Driver = "postgres"
		cfg.DB.DSN = dsn
	}

	if err := cfg.Validate(); err != nil {
		return AppConfig{}, err
	}
	return cfg, nil
}

func (c AppConfig) Validate() error {
	switch c.DB.Driver {
	case "sqlite":
		if c.DB.Path == "" {
			return errors.New("db.path is required for sqlite")
		}
	case "postgres":
		if c.DB.DSN == "" {
			return errors.New("db.dsn is required for postgres")
		}
	default:
		return fmt.Errorf("unsupported db.driver %q", c.DB.Driver)
	}
	if c.Auth.TokenTTL <= 0 {
		return errors.New("auth.token_ttl must be positive")
	}
	if c.Log.Mode == "prod" && (c.Auth.JWTSecret == "" || c.Auth.JWTSecret == Defaults().Auth.JWTSecret) {
		return errors.New("auth.jwt_secret must be set in prod mode")
	}
	return nil
}
