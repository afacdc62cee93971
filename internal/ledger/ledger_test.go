package ledger

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sheikh-saqib/payments-engine/internal/storage/memory"
)

func TestRecordAcceptsNewTransaction(t *testing.T) {
	l := NewLedger(memory.NewMemoryEntryStore())

	accepted, err := l.Record(7, 1, decimal.RequireFromString("2.5"))
	require.NoError(t, err)
	assert.True(t, accepted)

	entry, exists, err := l.Lookup(7)
	require.NoError(t, err)
	require.True(t, exists)
	assert.Equal(t, uint32(7), entry.Tx)
	assert.Equal(t, uint16(1), entry.Client)
	assert.True(t, entry.Amount.Equal(decimal.RequireFromString("2.5")))
	assert.False(t, entry.Disputed)
}

func TestRecordRejectsDuplicateTxAndKeepsFirst(t *testing.T) {
	l := NewLedger(memory.NewMemoryEntryStore())

	accepted, err := l.Record(7, 1, decimal.RequireFromString("2.5"))
	require.NoError(t, err)
	require.True(t, accepted)

	// Same id again, different client and amount: rejected without touching
	// the original entry.
	accepted, err = l.Record(7, 2, decimal.RequireFromString("9.0"))
	require.NoError(t, err)
	assert.False(t, accepted)

	entry, exists, err := l.Lookup(7)
	require.NoError(t, err)
	require.True(t, exists)
	assert.Equal(t, uint16(1), entry.Client)
	assert.True(t, entry.Amount.Equal(decimal.RequireFromString("2.5")))
}

func TestLookupMissingTx(t *testing.T) {
	l := NewLedger(memory.NewMemoryEntryStore())

	_, exists, err := l.Lookup(42)
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestMarkDisputedTogglesFlag(t *testing.T) {
	l := NewLedger(memory.NewMemoryEntryStore())

	_, err := l.Record(7, 1, decimal.RequireFromString("2.5"))
	require.NoError(t, err)

	require.NoError(t, l.MarkDisputed(7, true))
	entry, _, err := l.Lookup(7)
	require.NoError(t, err)
	assert.True(t, entry.Disputed)

	require.NoError(t, l.MarkDisputed(7, false))
	entry, _, err = l.Lookup(7)
	require.NoError(t, err)
	assert.False(t, entry.Disputed)
}

func TestMarkDisputedMissingTx(t *testing.T) {
	l := NewLedger(memory.NewMemoryEntryStore())

	assert.Error(t, l.MarkDisputed(42, true))
}
