package models

import "github.com/shopspring/decimal"

// Account holds the balance state for a single client. Accounts are created
// lazily the first time a record references the client id.
type Account struct {
	Client    uint16
	Available decimal.Decimal // funds free to withdraw
	Held      decimal.Decimal // funds held by open disputes
	Locked    bool            // set by chargeback, never cleared
}

// Total is the sum of available and held funds. It is derived rather than
// stored so the two balance fields can never drift apart from it.
func (a Account) Total() decimal.Decimal {
	return a.Available.Add(a.Held)
}
