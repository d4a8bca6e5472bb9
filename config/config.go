// Package config reads runtime settings from the environment, after an
// optional .env file.
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/amandhingra1/charzdev-ev/auth"
	"github.com/amandhingra1/charzdev-ev/whatsapp"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
)

type Config struct {
	Port           string
	GinMode        string
	AdminUsername  string
	AdminPassword  string
	SessionSecret  []byte
	SecureCookies  bool
	SessionTTL     time.Duration
	LoginDelay     time.Duration
	WhatsAppNumber string
	SeedFile       string
	CORSOrigins    []string

	// GeneratedSecret is set when SESSION_SECRET was empty and a random one
	// was made up for this process.
	GeneratedSecret bool
}

// Load reads .env if present, then the environment.
func Load() (Config, error) {
	_ = godotenv.Load()
	return FromEnv(os.Getenv)
}

// FromEnv builds a Config from getenv, applying defaults for empty values.
func FromEnv(getenv func(string) string) (Config, error) {
	cfg := Config{
		Port:           orDefault(getenv("PORT"), "8080"),
		GinMode:        getenv("GIN_MODE"),
		AdminUsername:  orDefault(getenv("ADMIN_USERNAME"), auth.DefaultUsername),
		AdminPassword:  orDefault(getenv("ADMIN_PASSWORD"), auth.DefaultPassword),
		SecureCookies:  strings.EqualFold(getenv("SECURE_COOKIES"), "true"),
		WhatsAppNumber: orDefault(getenv("WHATSAPP_NUMBER"), whatsapp.DefaultNumber),
		SeedFile:       getenv("SEED_FILE"),
		CORSOrigins:    splitList(orDefault(getenv("CORS_ORIGINS"), "*")),
	}

	var err error
	if cfg.SessionTTL, err = duration(getenv, "SESSION_TTL", auth.DefaultSessionTTL); err != nil {
		return Config{}, err
	}
	if cfg.LoginDelay, err = duration(getenv, "LOGIN_DELAY", auth.DefaultLoginDelay); err != nil {
		return Config{}, err
	}

	if secret := getenv("SESSION_SECRET"); secret != "" {
		cfg.SessionSecret = []byte(secret)
	} else {
		cfg.SessionSecret = []byte(uuid.NewString() + uuid.NewString())
		cfg.GeneratedSecret = true
	}
	return cfg, nil
}

func (c Config) Addr() string {
	return ":" + c.Port
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}

func duration(getenv func(string) string, key string, def time.Duration) (time.Duration, error) {
	v := getenv(key)
	if v == "" {
		return def, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	if d < 0 {
		return 0, fmt.Errorf("%s: must not be negative", key)
	}
	return d, nil
}

func splitList(v string) []string {
	var out []string
	for _, part := range strings.Split(v, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
