package main

import (
	"context"
	"database/sql"
	"log"
	"os"

	_ "github.com/lib/pq"

	"github.com/sheikh-saqib/payments-engine/internal/config"
	"github.com/sheikh-saqib/payments-engine/internal/engine"
	"github.com/sheikh-saqib/payments-engine/internal/events"
	"github.com/sheikh-saqib/payments-engine/internal/events/kafka"
	"github.com/sheikh-saqib/payments-engine/internal/interfaces"
	"github.com/sheikh-saqib/payments-engine/internal/ledger"
	"github.com/sheikh-saqib/payments-engine/internal/session"
	"github.com/sheikh-saqib/payments-engine/internal/storage/memory"
	"github.com/sheikh-saqib/payments-engine/internal/storage/postgres"
)

// engine <input.csv> reads a transaction feed and writes the final account
// report to stdout. The process fails only on structural errors; domain
// anomalies in the feed are dropped silently.
func main() {
	if len(os.Args) != 2 {
		log.Fatalf("usage: %s <input.csv>", os.Args[0])
	}

	cfg := config.Load()

	store := memory.NewMemoryEntryStore()
	eng := engine.New(ledger.NewLedger(store))

	var publisher interfaces.EventPublisher = events.NoopPublisher{}
	if len(cfg.KafkaBrokers) > 0 {
		kp := kafka.NewPublisher(cfg.KafkaBrokers, cfg.KafkaTopic)
		defer kp.Close()
		publisher = kp
	}

	opts := []session.Option{session.WithPublisher(publisher)}
	if cfg.DatabaseURL != "" {
		db, err := sql.Open("postgres", cfg.DatabaseURL)
		if err != nil {
			log.Fatalf("open database: %v", err)
		}
		defer db.Close()
		opts = append(opts, session.WithSnapshotStore(postgres.NewPostgresSnapshotStore(db)))
	}

	in, err := os.Open(os.Args[1])
	if err != nil {
		log.Fatalf("open input: %v", err)
	}
	defer in.Close()

	sess := session.New(eng, opts...)
	if err := sess.Run(context.Background(), in, os.Stdout); err != nil {
		log.Fatal(err)
	}
}
