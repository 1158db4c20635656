package config

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	defaultBindAddress = "127.0.0.1"
	defaultPort        = "8765"
	defaultInterval    = "1h"
	defaultRateLimit   = "600-M"
	defaultCORSOrigins = "http://localhost:5173"
	defaultTokenTTL    = "720h"
)

// Config holds application configuration.
type Config struct {
	DataDir            string
	BindAddress        string
	Port               string
	IsProduction       bool
	JWTSecret          string // empty disables API auth
	JWTExpiryDuration  time.Duration
	AutomationInterval time.Duration // 0 runs automation at startup only
	RateLimit          string        // ulule/limiter format, e.g. "600-M"
	CORSAllowedOrigins []string
}

// Addr is the host:port the HTTP server listens on.
func (c *Config) Addr() string {
	return c.BindAddress + ":" + c.Port
}

// AuthEnabled reports whether bearer tokens are required on the API.
func (c *Config) AuthEnabled() bool {
	return c.JWTSecret != ""
}

// DefaultDataDir is ~/Documents/MTrack, or ./MTrack when the home directory is unknown.
func DefaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return "MTrack"
	}
	return filepath.Join(home, "Documents", "MTrack")
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	v := viper.New()
	v.SetDefault("MTRACK_DATA_DIR", DefaultDataDir())
	v.SetDefault("BIND_ADDRESS", defaultBindAddress)
	v.SetDefault("PORT", defaultPort)
	v.SetDefault("IS_PRODUCTION", false)
	v.SetDefault("JWT_SECRET", "")
	v.SetDefault("JWT_EXPIRY_DURATION", defaultTokenTTL)
	v.SetDefault("AUTOMATION_INTERVAL", defaultInterval)
	v.SetDefault("RATE_LIMIT", defaultRateLimit)
	v.SetDefault("CORS_ALLOWED_ORIGINS", defaultCORSOrigins)
	v.AutomaticEnv()

	cfg := &Config{
		DataDir:      expandHome(v.GetString("MTRACK_DATA_DIR")),
		BindAddress:  v.GetString("BIND_ADDRESS"),
		Port:         v.GetString("PORT"),
		IsProduction: v.GetBool("IS_PRODUCTION"),
		JWTSecret:    v.GetString("JWT_SECRET"),
		RateLimit:    v.GetString("RATE_LIMIT"),
	}

	if cfg.DataDir == "" {
		return nil, fmt.Errorf("MTRACK_DATA_DIR must not be empty")
	}
	if cfg.BindAddress == "" {
		cfg.BindAddress = defaultBindAddress
	}
	if cfg.Port == "" {
		cfg.Port = defaultPort
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}

	interval, err := time.ParseDuration(v.GetString("AUTOMATION_INTERVAL"))
	if err != nil {
		return nil, fmt.Errorf("invalid AUTOMATION_INTERVAL %q: %w", v.GetString("AUTOMATION_INTERVAL"), err)
	}
	if interval < 0 {
		return nil, fmt.Errorf("AUTOMATION_INTERVAL must not be negative")
	}
	cfg.AutomationInterval = interval

	jwtExpiryStr := v.GetString("JWT_EXPIRY_DURATION")
	cfg.JWTExpiryDuration, err = time.ParseDuration(jwtExpiryStr)
	if err != nil {
		cfg.JWTExpiryDuration, _ = time.ParseDuration(defaultTokenTTL)
		log.Printf("Warning: Invalid value for JWT_EXPIRY_DURATION ('%s'). Defaulting to %s.\n", jwtExpiryStr, cfg.JWTExpiryDuration)
	}

	for _, origin := range strings.Split(v.GetString("CORS_ALLOWED_ORIGINS"), ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			cfg.CORSAllowedOrigins = append(cfg.CORSAllowedOrigins, origin)
		}
	}

	if cfg.IsProduction && !cfg.AuthEnabled() && cfg.BindAddress != defaultBindAddress {
		log.Println("Warning: JWT_SECRET not set while listening beyond localhost. The API is unauthenticated.")
	}

	return cfg, nil
}

func expandHome(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, strings.TrimPrefix(path, "~"))
		}
	}
	return path
}
