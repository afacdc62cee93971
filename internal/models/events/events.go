// Package events defines the payloads published at the processing boundary.
// They observe what the engine did with each record; publishing them never
// changes engine semantics.
package events

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/sheikh-saqib/payments-engine/internal/models"
)

// TransactionAccepted is emitted for every deposit or withdrawal the engine
// recorded in the ledger.
type TransactionAccepted struct {
	EventID    string          `json:"event_id"`
	Type       string          `json:"type"`
	Client     uint16          `json:"client"`
	Tx         uint32          `json:"tx"`
	Amount     decimal.Decimal `json:"amount"`
	OccurredAt time.Time       `json:"occurred_at"`
}

// RecordDropped is emitted for every record the engine rejected as a policy
// no-op, with the reason it was dropped.
type RecordDropped struct {
	EventID    string    `json:"event_id"`
	Type       string    `json:"type"`
	Client     uint16    `json:"client"`
	Tx         uint32    `json:"tx"`
	Reason     string    `json:"reason"`
	OccurredAt time.Time `json:"occurred_at"`
}

// AccountLocked is emitted when a chargeback freezes a client account.
type AccountLocked struct {
	EventID    string    `json:"event_id"`
	Client     uint16    `json:"client"`
	Tx         uint32    `json:"tx"`
	OccurredAt time.Time `json:"occurred_at"`
}

func NewTransactionAccepted(rec models.Record) TransactionAccepted {
	return TransactionAccepted{
		EventID:    uuid.New().String(),
		Type:       string(rec.Type),
		Client:     rec.Client,
		Tx:         rec.Tx,
		Amount:     rec.Amount,
		OccurredAt: time.Now().UTC(),
	}
}

func NewRecordDropped(rec models.Record, reason string) RecordDropped {
	return RecordDropped{
		EventID:    uuid.New().String(),
		Type:       string(rec.Type),
		Client:     rec.Client,
		Tx:         rec.Tx,
		Reason:     reason,
		OccurredAt: time.Now().UTC(),
	}
}

func NewAccountLocked(rec models.Record) AccountLocked {
	return AccountLocked{
		EventID:    uuid.New().String(),
		Client:     rec.Client,
		Tx:         rec.Tx,
		OccurredAt: time.Now().UTC(),
	}
}
