package models

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Kind identifies the transaction kind carried by an input record.
type Kind string

const (
	KindDeposit    Kind = "deposit"
	KindWithdrawal Kind = "withdrawal"
	KindDispute    Kind = "dispute"
	KindResolve    Kind = "resolve"
	KindChargeback Kind = "chargeback"
)

// ParseKind maps the raw type column of an input row to a Kind.
func ParseKind(s string) (Kind, error) {
	switch Kind(s) {
	case KindDeposit, KindWithdrawal, KindDispute, KindResolve, KindChargeback:
		return Kind(s), nil
	default:
		return "", fmt.Errorf("invalid transaction type %q", s)
	}
}

// Monetary reports whether records of this kind carry an amount and are
// recorded in the ledger. Dispute, resolve and chargeback only reference a
// previously recorded transaction.
func (k Kind) Monetary() bool {
	return k == KindDeposit || k == KindWithdrawal
}

// Record is one parsed input row. Amount is meaningful only when
// Type.Monetary() is true; the engine never reads it for reference kinds.
type Record struct {
	Type   Kind
	Client uint16
	Tx     uint32
	Amount decimal.Decimal
}
