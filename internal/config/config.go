// Package config resolves engine settings from the environment, with an
// optional .env file for development setups.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Config holds everything needed to wire the engine.
type Config struct {
	// DBPath is the SQLite file for the local durable cache.
	// Empty means store.DefaultDBPath.
	DBPath string

	// MongoURI and MongoDatabase locate the remote backing store.
	MongoURI      string
	MongoDatabase string

	// AMQPURI and AMQPExchange configure session event publication.
	// Empty AMQPURI disables publishing.
	AMQPURI      string
	AMQPExchange string

	// OutboxInterval is the periodic replay interval for the reconciler.
	OutboxInterval time.Duration
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() Config {
	return Config{
		MongoDatabase:  "quizzine",
		AMQPExchange:   "quizzine.sessions",
		OutboxInterval: 2 * time.Minute,
	}
}

// Load reads configuration from the environment on top of the defaults.
// A .env file in the working directory is honored when present.
func Load() (Config, error) {
	_ = godotenv.Load() // missing .env is fine

	cfg := DefaultConfig()
	if v := os.Getenv("QUIZZINE_DB"); v != "" {
		cfg.DBPath = v
	}
	if v := os.Getenv("MONGO_URI"); v != "" {
		cfg.MongoURI = v
	}
	if v := os.Getenv("MONGO_DATABASE"); v != "" {
		cfg.MongoDatabase = v
	}
	if v := os.Getenv("RABBITMQ_URI"); v != "" {
		cfg.AMQPURI = v
	}
	if v := os.Getenv("RABBITMQ_EXCHANGE"); v != "" {
		cfg.AMQPExchange = v
	}
	if v := os.Getenv("OUTBOX_INTERVAL"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return Config{}, fmt.Errorf("parse OUTBOX_INTERVAL: %w", err)
		}
		cfg.OutboxInterval = d
	}
	return cfg, nil
}
