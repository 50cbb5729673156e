package utils

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds the service settings read from the environment (and .env).
type Config struct {
	DatabaseURL     string
	Port            string
	AllowedOrigins  string
	OperatorToken   string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration

	TournamentName   string
	SnapshotInterval time.Duration
	R2               R2Config
}

// R2Config carries the Cloudflare R2 credentials used for snapshot publishing.
type R2Config struct {
	AccountID       string
	AccessKeyID     string
	AccessKeySecret string
	Bucket          string
}

// Enabled reports whether enough settings are present to talk to R2.
func (c R2Config) Enabled() bool {
	return c.AccountID != "" && c.AccessKeyID != "" && c.AccessKeySecret != "" && c.Bucket != ""
}

// LoadConfig reads the configuration from environment variables.
// godotenv.Load is expected to have run first.
func LoadConfig() (*Config, error) {
	cfg := &Config{
		DatabaseURL:    os.Getenv("DATABASE_URL"),
		Port:           envOr("PORT", "5300"),
		OperatorToken:  os.Getenv("OPERATOR_TOKEN"),
		TournamentName: envOr("TOURNAMENT_NAME", "swiss"),
		R2: R2Config{
			AccountID:       os.Getenv("CLOUDFLARE_ACCOUNT_ID"),
			AccessKeyID:     os.Getenv("R2_ACCESS_KEY_ID"),
			AccessKeySecret: os.Getenv("R2_ACCESS_KEY_SECRET"),
			Bucket:          os.Getenv("R2_BUCKET_NAME"),
		},
	}
	if cfg.DatabaseURL == "" {
		log.Println("⚠️  DATABASE_URL environment variable not set, players and matches are kept in memory")
	}

	allowedOriginsEnv := os.Getenv("ALLOWED_ORIGINS")
	if allowedOriginsEnv == "" {
		log.Println("⚠️  ALLOWED_ORIGINS environment variable not set, using default: http://localhost:3000")
		allowedOriginsEnv = "http://localhost:3000"
	}
	origins := strings.Split(allowedOriginsEnv, ",")
	for i, origin := range origins {
		origins[i] = strings.TrimSpace(origin)
	}
	cfg.AllowedOrigins = strings.Join(origins, ",")

	var err error
	if cfg.MaxOpenConns, err = envInt("DB_MAX_OPEN_CONNS", 10); err != nil {
		return nil, err
	}
	if cfg.MaxIdleConns, err = envInt("DB_MAX_IDLE_CONNS", 5); err != nil {
		return nil, err
	}
	if cfg.ConnMaxLifetime, err = envDuration("DB_CONN_MAX_LIFETIME", 30*time.Minute); err != nil {
		return nil, err
	}
	if cfg.SnapshotInterval, err = envDuration("SNAPSHOT_INTERVAL", 5*time.Minute); err != nil {
		return nil, err
	}
	if cfg.SnapshotInterval <= 0 {
		return nil, fmt.Errorf("SNAPSHOT_INTERVAL must be positive, got %s", cfg.SnapshotInterval)
	}
	return cfg, nil
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envInt(key string, def int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("invalid %s %q: must be a non-negative integer", key, v)
	}
	return n, nil
}

func envDuration(key string, def time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, v, err)
	}
	return d, nil
}
