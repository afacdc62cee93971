// Package config reads the optional boundary configuration from the
// environment. The engine itself takes no configuration; these settings only
// select the observers wired around it.
package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
)

const defaultKafkaTopic = "transaction_events"

type Config struct {
	KafkaBrokers []string // empty means events are discarded
	KafkaTopic   string
	DatabaseURL  string // empty means no snapshot export
}

// Load reads a .env file when present, then the environment. Missing values
// are not errors; every collaborator is optional.
func Load() Config {
	_ = godotenv.Load()

	cfg := Config{
		KafkaTopic:  defaultKafkaTopic,
		DatabaseURL: os.Getenv("DATABASE_URL"),
	}
	if v := os.Getenv("KAFKA_BROKERS"); v != "" {
		for _, broker := range strings.Split(v, ",") {
			if broker = strings.TrimSpace(broker); broker != "" {
				cfg.KafkaBrokers = append(cfg.KafkaBrokers, broker)
			}
		}
	}
	if v := os.Getenv("KAFKA_TOPIC"); v != "" {
		cfg.KafkaTopic = v
	}
	return cfg
}
