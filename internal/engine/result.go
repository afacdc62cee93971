package engine

// DropReason says why a record was rejected as a policy no-op. Reasons are
// informational: the boundary may publish or log them, the core never acts
// on them.
type DropReason string

const (
	DropAccountLocked     DropReason = "account_locked"
	DropNegativeAmount    DropReason = "negative_amount"
	DropDuplicateTx       DropReason = "duplicate_tx"
	DropInsufficientFunds DropReason = "insufficient_funds"
	DropUnknownTx         DropReason = "unknown_tx"
	DropClientMismatch    DropReason = "client_mismatch"
	DropAlreadyDisputed   DropReason = "already_disputed"
	DropNotDisputed       DropReason = "not_disputed"
	DropExceedsAvailable  DropReason = "dispute_exceeds_available"
)

// Result is the outcome of processing one record.
type Result struct {
	Applied       bool       // record took effect
	Reason        DropReason // set when Applied is false
	LockedAccount bool       // this record locked the account (chargeback)
}

func applied() Result {
	return Result{Applied: true}
}

func dropped(reason DropReason) Result {
	return Result{Reason: reason}
}
