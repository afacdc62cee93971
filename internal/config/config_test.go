package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("KAFKA_BROKERS", "")
	t.Setenv("KAFKA_TOPIC", "")
	t.Setenv("DATABASE_URL", "")

	cfg := Load()
	assert.Empty(t, cfg.KafkaBrokers)
	assert.Equal(t, "transaction_events", cfg.KafkaTopic)
	assert.Empty(t, cfg.DatabaseURL)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("KAFKA_BROKERS", "broker-1:9092, broker-2:9092,")
	t.Setenv("KAFKA_TOPIC", "settlement_events")
	t.Setenv("DATABASE_URL", "postgres://localhost/engine")

	cfg := Load()
	assert.Equal(t, []string{"broker-1:9092", "broker-2:9092"}, cfg.KafkaBrokers)
	assert.Equal(t, "settlement_events", cfg.KafkaTopic)
	assert.Equal(t, "postgres://localhost/engine", cfg.DatabaseURL)
}
