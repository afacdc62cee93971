package interfaces

import (
	"github.com/sheikh-saqib/payments-engine/internal/models"
)

// EntryStore persists accepted monetary transactions keyed by transaction id.
// A processing run is single-threaded by contract, so implementations are not
// required to be safe for concurrent use.
type EntryStore interface {
	// Save inserts a new entry. It fails if the transaction id is already
	// present; callers check with Get first.
	Save(entry models.LedgerEntry) error
	// Get returns the entry for the transaction id, and whether it exists.
	Get(tx uint32) (models.LedgerEntry, bool, error)
	// SetDisputed updates the disputed flag of an existing entry.
	SetDisputed(tx uint32, disputed bool) error
}
