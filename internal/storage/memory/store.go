package memory

import (
	"fmt"

	interfaces "github.com/sheikh-saqib/payments-engine/internal/interfaces" // interface EntryStore
	"github.com/sheikh-saqib/payments-engine/internal/models"                // domain models: LedgerEntry
)

// MemoryEntryStore is an in-memory implementation of interfaces.EntryStore.
// It holds the accepted monetary transactions of one processing run, keyed by
// transaction id. The run is single-threaded by contract, so no locking is
// needed here.
type MemoryEntryStore struct {
	entries map[uint32]models.LedgerEntry
}

// NewMemoryEntryStore creates and returns a new MemoryEntryStore instance
func NewMemoryEntryStore() *MemoryEntryStore {
	return &MemoryEntryStore{
		entries: make(map[uint32]models.LedgerEntry),
	}
}

// Save inserts a new LedgerEntry. A duplicate transaction id is a caller bug:
// the ledger checks existence before saving.
func (m *MemoryEntryStore) Save(entry models.LedgerEntry) error {
	if _, exists := m.entries[entry.Tx]; exists {
		return fmt.Errorf("entry for tx %d already exists", entry.Tx)
	}
	m.entries[entry.Tx] = entry
	return nil
}

// Get returns the entry for the transaction id, and whether it exists.
func (m *MemoryEntryStore) Get(tx uint32) (models.LedgerEntry, bool, error) {
	entry, exists := m.entries[tx]
	return entry, exists, nil
}

// SetDisputed updates the disputed flag of an existing entry.
func (m *MemoryEntryStore) SetDisputed(tx uint32, disputed bool) error {
	entry, exists := m.entries[tx]
	if !exists {
		return fmt.Errorf("no entry for tx %d", tx)
	}
	entry.Disputed = disputed
	m.entries[tx] = entry
	return nil
}

// Compile-time check: ensure MemoryEntryStore implements EntryStore interface
var _ interfaces.EntryStore = (*MemoryEntryStore)(nil)
