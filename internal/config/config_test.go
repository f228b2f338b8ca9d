package config

import (
	"context"
	"strings"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("KAFKA_BROKERS", "")
	t.Setenv("REDIS_ADDR", "")

	cfg, _, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Port != "5000" {
		t.Fatalf("expected default port 5000, got %q", cfg.Port)
	}
	if cfg.DB.ConnectRetries != 10 {
		t.Fatalf("expected 10 connect retries, got %d", cfg.DB.ConnectRetries)
	}
	if cfg.DB.ConnMaxLifetime != 30*time.Minute {
		t.Fatalf("expected 30m lifetime, got %s", cfg.DB.ConnMaxLifetime)
	}
	if cfg.KafkaEnabled() || cfg.RedisEnabled() {
		t.Fatalf("optional backends should be disabled by default")
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "8085")
	t.Setenv("DB_HOST", "mysql")
	t.Setenv("DB_NAME", "feed")
	t.Setenv("KAFKA_BROKERS", "k1:9092,k2:9092")
	t.Setenv("REDIS_ADDR", "redis:6379")
	t.Setenv("SEED_ON_START", "true")

	cfg, _, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Addr() != ":8085" {
		t.Fatalf("unexpected addr %q", cfg.Addr())
	}
	if len(cfg.KafkaBrokers) != 2 || cfg.KafkaBrokers[1] != "k2:9092" {
		t.Fatalf("unexpected brokers %v", cfg.KafkaBrokers)
	}
	if !cfg.RedisEnabled() || !cfg.SeedOnStart {
		t.Fatalf("expected redis and seeding enabled")
	}
	if cfg.DB.Host != "mysql" || cfg.DB.Name != "feed" {
		t.Fatalf("unexpected db config %+v", cfg.DB)
	}
}

func TestLoadRejectsBadInt(t *testing.T) {
	t.Setenv("DB_CONNECT_RETRIES", "many")

	if _, _, err := Load(); err == nil {
		t.Fatalf("expected parse error")
	}
}

func TestDSN(t *testing.T) {
	dsn := DBConfig{Host: "db", Port: "3307", User: "app", Pass: "pw", Name: "feed"}.DSN()

	if !strings.HasPrefix(dsn, "app:pw@tcp(db:3307)/feed?") {
		t.Fatalf("unexpected dsn %q", dsn)
	}
	if !strings.Contains(dsn, "parseTime=true") {
		t.Fatalf("dsn must enable parseTime: %q", dsn)
	}
}

func TestOpenDBGivesUpAfterRetries(t *testing.T) {
	cfg := DBConfig{
		Host:           "127.0.0.1",
		Port:           "1",
		User:           "root",
		Name:           "feed",
		ConnectRetries: 2,
		RetryInterval:  time.Millisecond,
	}

	db, err := OpenDB(context.Background(), cfg)
	if err == nil {
		db.Close()
		t.Fatalf("expected connection error")
	}
	if !strings.Contains(err.Error(), "after retries") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestOpenDBStopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	cfg := DBConfig{Host: "127.0.0.1", Port: "1", Name: "feed", ConnectRetries: 5, RetryInterval: time.Hour}
	if _, err := OpenDB(ctx, cfg); err == nil {
		t.Fatalf("expected error for cancelled context")
	}
}
