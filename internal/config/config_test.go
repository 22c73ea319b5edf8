package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	// Pin every variable Load reads so the ambient environment cannot
	// leak into the defaults being asserted.
	for _, k := range []string{
		"QUIZZINE_DB", "MONGO_URI", "MONGO_DATABASE",
		"RABBITMQ_URI", "RABBITMQ_EXCHANGE", "OUTBOX_INTERVAL",
	} {
		t.Setenv(k, "")
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.MongoDatabase != "quizzine" {
		t.Errorf("mongo database = %q, want quizzine", cfg.MongoDatabase)
	}
	if cfg.OutboxInterval != 2*time.Minute {
		t.Errorf("outbox interval = %v, want 2m", cfg.OutboxInterval)
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("QUIZZINE_DB", "/tmp/engine-test.db")
	t.Setenv("MONGO_URI", "mongodb://localhost:27017")
	t.Setenv("OUTBOX_INTERVAL", "45s")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.DBPath != "/tmp/engine-test.db" {
		t.Errorf("db path = %q", cfg.DBPath)
	}
	if cfg.MongoURI != "mongodb://localhost:27017" {
		t.Errorf("mongo uri = %q", cfg.MongoURI)
	}
	if cfg.OutboxInterval != 45*time.Second {
		t.Errorf("outbox interval = %v, want 45s", cfg.OutboxInterval)
	}
}

func TestLoadRejectsBadInterval(t *testing.T) {
	t.Setenv("OUTBOX_INTERVAL", "soon")
	if _, err := Load(); err == nil {
		t.Fatal("expected error for unparsable interval")
	}
}
