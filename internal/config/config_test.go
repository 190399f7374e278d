package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("RIOT_API_KEY", "RGAPI-test")
	t.Setenv("REDIS_URL", "redis://localhost:6379")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Port != "8080" {
		t.Errorf("Port = %q, want 8080", cfg.Port)
	}
	if cfg.RedisQueue != "recap_jobs" {
		t.Errorf("RedisQueue = %q, want recap_jobs", cfg.RedisQueue)
	}
	if cfg.RecapTTL != 24*time.Hour {
		t.Errorf("RecapTTL = %v, want 24h", cfg.RecapTTL)
	}
	if cfg.WorkerCount != 4 || cfg.JobBuffer != 16 {
		t.Errorf("worker settings = %d/%d, want 4/16", cfg.WorkerCount, cfg.JobBuffer)
	}
}

func TestLoadRequiredFields(t *testing.T) {
	t.Setenv("RIOT_API_KEY", "")
	t.Setenv("REDIS_URL", "redis://localhost:6379")
	if _, err := Load(); err == nil {
		t.Error("expected error without RIOT_API_KEY")
	}

	t.Setenv("RIOT_API_KEY", "RGAPI-test")
	t.Setenv("REDIS_URL", "")
	if _, err := Load(); err == nil {
		t.Error("expected error without REDIS_URL")
	}
}

func TestLoadTTLValidation(t *testing.T) {
	t.Setenv("RIOT_API_KEY", "RGAPI-test")
	t.Setenv("REDIS_URL", "redis://localhost:6379")
	t.Setenv("RECAP_TTL_HOURS", "72")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.RecapTTL != 72*time.Hour {
		t.Errorf("RecapTTL = %v, want 72h", cfg.RecapTTL)
	}

	t.Setenv("RECAP_TTL_HOURS", "zero")
	if _, err := Load(); err == nil {
		t.Error("expected error for unparseable RECAP_TTL_HOURS")
	}
}

func TestLoadWorkerValidation(t *testing.T) {
	t.Setenv("RIOT_API_KEY", "RGAPI-test")
	t.Setenv("REDIS_URL", "redis://localhost:6379")
	t.Setenv("WORKER_COUNT", "8")
	t.Setenv("JOB_BUFFER_SIZE", "32")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.WorkerCount != 8 || cfg.JobBuffer != 32 {
		t.Errorf("worker settings = %d/%d, want 8/32", cfg.WorkerCount, cfg.JobBuffer)
	}

	for _, bad := range []string{"many", "0", "-2"} {
		t.Setenv("WORKER_COUNT", bad)
		if _, err := Load(); err == nil {
			t.Errorf("expected error for WORKER_COUNT=%q", bad)
		}
	}

	t.Setenv("WORKER_COUNT", "8")
	t.Setenv("JOB_BUFFER_SIZE", "lots")
	if _, err := Load(); err == nil {
		t.Error("expected error for unparseable JOB_BUFFER_SIZE")
	}
}
