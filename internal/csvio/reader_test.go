package csvio

import (
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sheikh-saqib/payments-engine/internal/models"
)

// readAll drains the reader, collecting parsed records and skipping row
// errors the way a session does.
func readAll(t *testing.T, input string) ([]models.Record, int) {
	t.Helper()
	r := NewReader(strings.NewReader(input))

	var records []models.Record
	var skipped int
	for {
		rec, err := r.Read()
		if errors.Is(err, io.EOF) {
			return records, skipped
		}
		var rowErr *RowError
		if errors.As(err, &rowErr) {
			skipped++
			continue
		}
		require.NoError(t, err)
		records = append(records, rec)
	}
}

func TestReadBasicRecords(t *testing.T) {
	input := "type,client,tx,amount\n" +
		"deposit,1,1,1.0\n" +
		"withdrawal,1,2,0.5\n" +
		"dispute,1,1,\n" +
		"resolve,1,1,\n" +
		"chargeback,1,1,\n"

	records, skipped := readAll(t, input)
	assert.Zero(t, skipped)
	require.Len(t, records, 5)

	assert.Equal(t, models.KindDeposit, records[0].Type)
	assert.Equal(t, uint16(1), records[0].Client)
	assert.Equal(t, uint32(1), records[0].Tx)
	assert.Equal(t, "1.0000", records[0].Amount.StringFixed(4))

	assert.Equal(t, models.KindWithdrawal, records[1].Type)
	assert.Equal(t, "0.5000", records[1].Amount.StringFixed(4))

	for _, rec := range records[2:] {
		assert.Equal(t, "0.0000", rec.Amount.StringFixed(4))
	}
}

func TestReadTrimsWhitespace(t *testing.T) {
	input := "type, client, tx, amount\n" +
		" deposit , 1 , 1 , 1.5 \n" +
		"dispute,  1,  1\n"

	records, skipped := readAll(t, input)
	assert.Zero(t, skipped)
	require.Len(t, records, 2)
	assert.Equal(t, models.KindDeposit, records[0].Type)
	assert.Equal(t, "1.5000", records[0].Amount.StringFixed(4))
	assert.Equal(t, models.KindDispute, records[1].Type)
}

func TestReadSkipsMalformedRows(t *testing.T) {
	input := "type,client,tx,amount\n" +
		"transfer,1,1,1.0\n" + // unknown kind
		"deposit,notanumber,2,1.0\n" + // bad client id
		"deposit,1,notanumber,1.0\n" + // bad tx id
		"deposit,70000,3,1.0\n" + // client id out of u16 range
		"deposit,1,4\n" + // missing amount
		"deposit,1,5,\n" + // empty amount
		"deposit,1,6,abc\n" + // unparseable amount
		"garbage\n" + // too few fields
		"deposit,2,7,2.0\n"

	records, skipped := readAll(t, input)
	assert.Equal(t, 8, skipped)
	require.Len(t, records, 1)
	assert.Equal(t, uint16(2), records[0].Client)
	assert.Equal(t, uint32(7), records[0].Tx)
}

func TestReadAmountPrecision(t *testing.T) {
	input := "type,client,tx,amount\n" +
		"deposit,1,1,1.2345\n" + // four digits: fine
		"deposit,1,2,1.23456\n" + // five significant digits: rejected
		"deposit,1,3,1.50000\n" // trailing zeros beyond four: still exact

	records, skipped := readAll(t, input)
	assert.Equal(t, 1, skipped)
	require.Len(t, records, 2)
	assert.Equal(t, "1.2345", records[0].Amount.StringFixed(4))
	assert.Equal(t, "1.5000", records[1].Amount.StringFixed(4))
}

func TestReadNegativeAmountIsParsedNotRejected(t *testing.T) {
	// Negative amounts are syntactically valid; dropping them is the
	// engine's policy decision, not a parse failure.
	records, skipped := readAll(t, "type,client,tx,amount\ndeposit,1,1,-2.0\n")
	assert.Zero(t, skipped)
	require.Len(t, records, 1)
	assert.True(t, records[0].Amount.IsNegative())
}

func TestReadEmptyInput(t *testing.T) {
	records, skipped := readAll(t, "")
	assert.Zero(t, skipped)
	assert.Empty(t, records)

	records, skipped = readAll(t, "type,client,tx,amount\n")
	assert.Zero(t, skipped)
	assert.Empty(t, records)
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) {
	return 0, errors.New("disk on fire")
}

func TestReadPropagatesIOError(t *testing.T) {
	r := NewReader(failingReader{})

	_, err := r.Read()
	require.Error(t, err)
	var rowErr *RowError
	assert.False(t, errors.As(err, &rowErr), "I/O failure must not be skippable")
}
