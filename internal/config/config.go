package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds runtime configuration for the recap service.
type Config struct {
	Port         string
	RiotAPIKey   string
	RedisURL     string
	RedisQueue   string
	DBURL        string // empty disables the recap archive
	BedrockModel string // empty disables the model and uses the local generator
	RecapTTL     time.Duration
	WorkerCount  int
	JobBuffer    int
}

// Load builds a Config from environment variables.
func Load() (*Config, error) {
	cfg := &Config{
		Port:         os.Getenv("PORT"),
		RiotAPIKey:   os.Getenv("RIOT_API_KEY"),
		RedisURL:     os.Getenv("REDIS_URL"),
		RedisQueue:   os.Getenv("REDIS_QUEUE"),
		DBURL:        os.Getenv("DATABASE_URL"),
		BedrockModel: os.Getenv("BEDROCK_MODEL_ID"),
	}

	if cfg.RiotAPIKey == "" {
		return nil, fmt.Errorf("RIOT_API_KEY is required")
	}

	if cfg.RedisURL == "" {
		return nil, fmt.Errorf("REDIS_URL is required")
	}

	if cfg.Port == "" {
		cfg.Port = "8080"
	}

	if cfg.RedisQueue == "" {
		cfg.RedisQueue = "recap_jobs"
	}

	cfg.RecapTTL = 24 * time.Hour
	if raw := os.Getenv("RECAP_TTL_HOURS"); raw != "" {
		hours, err := strconv.Atoi(raw)
		if err != nil || hours <= 0 {
			return nil, fmt.Errorf("invalid RECAP_TTL_HOURS %q", raw)
		}
		cfg.RecapTTL = time.Duration(hours) * time.Hour
	}

	var err error
	if cfg.WorkerCount, err = intEnv("WORKER_COUNT", 4); err != nil {
		return nil, err
	}
	if cfg.JobBuffer, err = intEnv("JOB_BUFFER_SIZE", 16); err != nil {
		return nil, err
	}

	return cfg, nil
}

func intEnv(name string, fallback int) (int, error) {
	raw := os.Getenv(name)
	if raw == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return 0, fmt.Errorf("invalid %s %q", name, raw)
	}
	return n, nil
}
