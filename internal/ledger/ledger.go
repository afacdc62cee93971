package ledger

import (
	"fmt"

	interfaces "github.com/sheikh-saqib/payments-engine/internal/interfaces"
	"github.com/sheikh-saqib/payments-engine/internal/models"
	"github.com/shopspring/decimal"
)

// Ledger is the append-only record of accepted monetary transactions,
// keyed by transaction id. Later dispute, resolve and chargeback records
// are validated against it. It holds a reference to the storage layer.
type Ledger struct {
	store interfaces.EntryStore // Interface to save ledger entries, can be any storage implementation
}

// NewLedger is a constructor function that creates a new Ledger instance
// We pass in a storage implementation (MemoryEntryStore, etc.)
func NewLedger(store interfaces.EntryStore) *Ledger {
	return &Ledger{
		store: store,
	}
}

// Record inserts a new entry for a deposit or withdrawal. It returns false
// when the transaction id is already taken; the existing entry is left
// untouched so the first monetary record with a given id always wins.
func (l *Ledger) Record(tx uint32, client uint16, amount decimal.Decimal) (bool, error) {
	_, exists, err := l.store.Get(tx)
	if err != nil {
		return false, fmt.Errorf("lookup tx %d: %w", tx, err)
	}
	if exists {
		return false, nil
	}

	entry := models.LedgerEntry{
		Tx:     tx,
		Client: client,
		Amount: amount,
	}
	if err := l.store.Save(entry); err != nil {
		return false, fmt.Errorf("save tx %d: %w", tx, err)
	}
	return true, nil
}

// Lookup returns the entry for the transaction id, and whether it exists.
func (l *Ledger) Lookup(tx uint32) (models.LedgerEntry, bool, error) {
	return l.store.Get(tx)
}

// MarkDisputed sets the disputed flag of an existing entry. Callers verify
// existence and the current flag state via Lookup first.
func (l *Ledger) MarkDisputed(tx uint32, disputed bool) error {
	if err := l.store.SetDisputed(tx, disputed); err != nil {
		return fmt.Errorf("mark tx %d disputed=%t: %w", tx, disputed, err)
	}
	return nil
}
