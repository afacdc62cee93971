// Package csvio reads transaction records from CSV input and writes the
// final account report. The engine itself never sees raw rows.
package csvio

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/sheikh-saqib/payments-engine/internal/models"
)

// RowError marks a single row that could not be parsed. Callers skip the row
// and keep reading; any other error from Reader.Read is an input failure and
// aborts the run.
type RowError struct {
	Line int
	Err  error
}

func (e *RowError) Error() string {
	return fmt.Sprintf("row %d: %v", e.Line, e.Err)
}

func (e *RowError) Unwrap() error {
	return e.Err
}

// Reader streams records from CSV input with a header row. Whitespace around
// fields is tolerated.
type Reader struct {
	csv        *csv.Reader
	line       int
	headerRead bool
}

func NewReader(r io.Reader) *Reader {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	cr.FieldsPerRecord = -1
	cr.ReuseRecord = true
	return &Reader{csv: cr}
}

// Read returns the next record. It returns io.EOF at end of input and
// *RowError for rows that fail to parse.
func (r *Reader) Read() (models.Record, error) {
	if !r.headerRead {
		r.headerRead = true
		r.line++
		if _, err := r.csv.Read(); err != nil {
			if err == io.EOF {
				return models.Record{}, io.EOF
			}
			return models.Record{}, r.rowOrFatal(err)
		}
	}

	fields, err := r.csv.Read()
	if err != nil {
		if err == io.EOF {
			return models.Record{}, io.EOF
		}
		return models.Record{}, r.rowOrFatal(err)
	}
	r.line++

	rec, err := parseRecord(fields)
	if err != nil {
		return models.Record{}, &RowError{Line: r.line, Err: err}
	}
	return rec, nil
}

// rowOrFatal classifies a csv.Reader error: malformed-row errors become
// skippable RowErrors, everything else (an underlying read failure) is
// returned as-is and aborts the run.
func (r *Reader) rowOrFatal(err error) error {
	var parseErr *csv.ParseError
	if errors.As(err, &parseErr) {
		return &RowError{Line: parseErr.Line, Err: err}
	}
	return err
}

func parseRecord(fields []string) (models.Record, error) {
	if len(fields) < 3 {
		return models.Record{}, fmt.Errorf("expected at least 3 fields, got %d", len(fields))
	}
	for i := range fields {
		fields[i] = strings.TrimSpace(fields[i])
	}

	kind, err := models.ParseKind(fields[0])
	if err != nil {
		return models.Record{}, err
	}

	client, err := strconv.ParseUint(fields[1], 10, 16)
	if err != nil {
		return models.Record{}, fmt.Errorf("invalid client id %q: %w", fields[1], err)
	}

	tx, err := strconv.ParseUint(fields[2], 10, 32)
	if err != nil {
		return models.Record{}, fmt.Errorf("invalid transaction id %q: %w", fields[2], err)
	}

	rec := models.Record{
		Type:   kind,
		Client: uint16(client),
		Tx:     uint32(tx),
	}

	// The amount column only exists for deposits and withdrawals; a stray
	// value on a reference kind is ignored, matching the trust boundary of
	// the engine which never reads it.
	if kind.Monetary() {
		if len(fields) < 4 || fields[3] == "" {
			return models.Record{}, fmt.Errorf("%s requires an amount", kind)
		}
		amount, err := parseAmount(fields[3])
		if err != nil {
			return models.Record{}, err
		}
		rec.Amount = amount
	}

	return rec, nil
}

// parseAmount parses a decimal amount and rejects values that are not exact
// at four fractional digits. Truncating would fabricate an amount the
// counterparty never sent.
func parseAmount(s string) (decimal.Decimal, error) {
	amount, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("invalid amount %q: %w", s, err)
	}
	if !amount.Equal(amount.Truncate(4)) {
		return decimal.Decimal{}, fmt.Errorf("amount %q exceeds four fractional digits", s)
	}
	return amount, nil
}
