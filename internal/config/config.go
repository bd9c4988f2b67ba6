// Package config reads HobbyHub settings from the environment, after loading
// a .env file when one is present.
package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Addr          string
	TemplatesDir  string
	StaticDir     string
	SiteTitle     string
	SessionTTL    time.Duration
	PruneInterval time.Duration
}

// Load reads the given .env files (".env" when none are named) and then the
// environment. Missing files are not an error.
func Load(files ...string) (Config, error) {
	if err := godotenv.Load(files...); err != nil {
		log.Println("no .env file loaded, using environment:", err)
	}
	return FromEnv()
}

func FromEnv() (Config, error) {
	cfg := Config{
		Addr:         getEnv("HOBBYHUB_ADDR", ":8080"),
		TemplatesDir: getEnv("HOBBYHUB_TEMPLATES", "templates"),
		StaticDir:    getEnv("HOBBYHUB_STATIC", "static"),
		SiteTitle:    getEnv("HOBBYHUB_TITLE", "HobbyHub - Video Game Hub"),
	}

	var err error
	if cfg.SessionTTL, err = getDuration("HOBBYHUB_SESSION_TTL", 24*time.Hour); err != nil {
		return Config{}, err
	}
	if cfg.PruneInterval, err = getDuration("HOBBYHUB_PRUNE_INTERVAL", 10*time.Minute); err != nil {
		return Config{}, err
	}
	if cfg.Addr == "" {
		return Config{}, errors.New("HOBBYHUB_ADDR must not be empty")
	}
	return cfg, nil
}

func getEnv(key, def string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return def
}

func getDuration(key string, def time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("parse %s: %w", key, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("%s must be positive, got %s", key, v)
	}
	return d, nil
}
