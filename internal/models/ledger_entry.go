package models

import "github.com/shopspring/decimal"

// LedgerEntry represents one accepted monetary transaction (deposit or
// withdrawal), keyed by its globally unique transaction id
type LedgerEntry struct {
	Tx       uint32          // unique transaction id
	Client   uint16          // owning client
	Amount   decimal.Decimal // magnitude of the original transaction, always positive
	Disputed bool            // true while an open dispute exists on this transaction
}
