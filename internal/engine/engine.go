// Package engine applies client transaction records to per-client account
// state. It interprets the five transaction kinds, enforces their
// preconditions against the ledger, and mutates balances in strict input
// order. Records that violate a domain precondition are dropped silently;
// only storage failures surface as errors.
package engine

import (
	"fmt"
	"sort"

	"github.com/sheikh-saqib/payments-engine/internal/ledger"
	"github.com/sheikh-saqib/payments-engine/internal/models"
	"github.com/shopspring/decimal"
)

// Engine routes records to the account of the named client, creating the
// account lazily on first reference. One Engine instance covers one run.
type Engine struct {
	ledger   *ledger.Ledger
	accounts map[uint16]*models.Account
}

// New creates an Engine over the given ledger.
func New(l *ledger.Ledger) *Engine {
	return &Engine{
		ledger:   l,
		accounts: make(map[uint16]*models.Account),
	}
}

// Process applies a single record. The returned Result reports whether the
// record took effect or why it was dropped; neither outcome is an error.
// The error return is reserved for storage failures.
func (e *Engine) Process(rec models.Record) (Result, error) {
	switch rec.Type {
	case models.KindDeposit:
		return e.Deposit(rec.Client, rec.Tx, rec.Amount)
	case models.KindWithdrawal:
		return e.Withdraw(rec.Client, rec.Tx, rec.Amount)
	case models.KindDispute:
		return e.Dispute(rec.Client, rec.Tx)
	case models.KindResolve:
		return e.Resolve(rec.Client, rec.Tx)
	case models.KindChargeback:
		return e.Chargeback(rec.Client, rec.Tx)
	default:
		return Result{}, fmt.Errorf("unknown transaction type %q", rec.Type)
	}
}

// Deposit credits the client's available funds and records the transaction
// in the ledger.
func (e *Engine) Deposit(client uint16, tx uint32, amount decimal.Decimal) (Result, error) {
	acct := e.account(client)
	if acct.Locked {
		return dropped(DropAccountLocked), nil
	}
	if amount.IsNegative() {
		return dropped(DropNegativeAmount), nil
	}

	accepted, err := e.ledger.Record(tx, client, amount)
	if err != nil {
		return Result{}, err
	}
	if !accepted {
		return dropped(DropDuplicateTx), nil
	}

	acct.Available = acct.Available.Add(amount)
	return applied(), nil
}

// Withdraw debits the client's available funds and records the transaction
// in the ledger. A withdrawal exceeding available funds is dropped, leaving
// the account and ledger untouched.
func (e *Engine) Withdraw(client uint16, tx uint32, amount decimal.Decimal) (Result, error) {
	acct := e.account(client)
	if acct.Locked {
		return dropped(DropAccountLocked), nil
	}
	if amount.IsNegative() {
		return dropped(DropNegativeAmount), nil
	}

	// Duplicate ids are checked before funds so a replayed withdrawal is
	// reported as a duplicate, not as insufficient funds.
	if _, exists, err := e.ledger.Lookup(tx); err != nil {
		return Result{}, err
	} else if exists {
		return dropped(DropDuplicateTx), nil
	}
	if amount.GreaterThan(acct.Available) {
		return dropped(DropInsufficientFunds), nil
	}

	// The entry keeps the withdrawn magnitude so a later dispute holds the
	// same amount the withdrawal moved.
	if _, err := e.ledger.Record(tx, client, amount); err != nil {
		return Result{}, err
	}

	acct.Available = acct.Available.Sub(amount)
	return applied(), nil
}

// Dispute opens a dispute on a previously accepted monetary transaction,
// moving its amount from available to held funds.
func (e *Engine) Dispute(client uint16, tx uint32) (Result, error) {
	acct := e.account(client)
	if acct.Locked {
		return dropped(DropAccountLocked), nil
	}

	entry, reason, err := e.referenced(client, tx)
	if err != nil {
		return Result{}, err
	}
	if reason != "" {
		return dropped(reason), nil
	}
	if entry.Disputed {
		return dropped(DropAlreadyDisputed), nil
	}
	// Holding more than is available would drive the available balance
	// negative; such disputes are dropped like any other precondition miss.
	if entry.Amount.GreaterThan(acct.Available) {
		return dropped(DropExceedsAvailable), nil
	}

	if err := e.ledger.MarkDisputed(tx, true); err != nil {
		return Result{}, err
	}
	acct.Available = acct.Available.Sub(entry.Amount)
	acct.Held = acct.Held.Add(entry.Amount)
	return applied(), nil
}

// Resolve closes a dispute in the client's favor, releasing the held amount
// back to available funds.
func (e *Engine) Resolve(client uint16, tx uint32) (Result, error) {
	acct := e.account(client)
	if acct.Locked {
		return dropped(DropAccountLocked), nil
	}

	entry, reason, err := e.referenced(client, tx)
	if err != nil {
		return Result{}, err
	}
	if reason != "" {
		return dropped(reason), nil
	}
	if !entry.Disputed {
		return dropped(DropNotDisputed), nil
	}

	if err := e.ledger.MarkDisputed(tx, false); err != nil {
		return Result{}, err
	}
	acct.Held = acct.Held.Sub(entry.Amount)
	acct.Available = acct.Available.Add(entry.Amount)
	return applied(), nil
}

// Chargeback closes a dispute against the client: the held amount leaves the
// account entirely and the account is locked. The lock is terminal; every
// later record for this client is dropped.
func (e *Engine) Chargeback(client uint16, tx uint32) (Result, error) {
	acct := e.account(client)
	if acct.Locked {
		return dropped(DropAccountLocked), nil
	}

	entry, reason, err := e.referenced(client, tx)
	if err != nil {
		return Result{}, err
	}
	if reason != "" {
		return dropped(reason), nil
	}
	if !entry.Disputed {
		return dropped(DropNotDisputed), nil
	}

	if err := e.ledger.MarkDisputed(tx, false); err != nil {
		return Result{}, err
	}
	acct.Held = acct.Held.Sub(entry.Amount)
	acct.Locked = true
	return Result{Applied: true, LockedAccount: true}, nil
}

// Accounts returns the final state of every account referenced during the
// run, sorted by client id for deterministic output.
func (e *Engine) Accounts() []models.Account {
	accounts := make([]models.Account, 0, len(e.accounts))
	for _, acct := range e.accounts {
		accounts = append(accounts, *acct)
	}
	sort.Slice(accounts, func(i, j int) bool {
		return accounts[i].Client < accounts[j].Client
	})
	return accounts
}

// account returns the client's account, creating a zero-balance one on
// first reference.
func (e *Engine) account(client uint16) *models.Account {
	acct, exists := e.accounts[client]
	if !exists {
		acct = &models.Account{Client: client}
		e.accounts[client] = acct
	}
	return acct
}

// referenced resolves the ledger entry a dispute-lifecycle record points at.
// It returns a drop reason when the entry is missing or owned by another
// client; the disputed-flag check differs per operation and stays with the
// caller.
func (e *Engine) referenced(client uint16, tx uint32) (models.LedgerEntry, DropReason, error) {
	entry, exists, err := e.ledger.Lookup(tx)
	if err != nil {
		return models.LedgerEntry{}, "", err
	}
	if !exists {
		return models.LedgerEntry{}, DropUnknownTx, nil
	}
	if entry.Client != client {
		return models.LedgerEntry{}, DropClientMismatch, nil
	}
	return entry, "", nil
}
