package csvio

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/sheikh-saqib/payments-engine/internal/models"
)

// WriteAccounts writes the final account report. Every balance renders with
// exactly four fractional digits regardless of trailing zeros.
func WriteAccounts(w io.Writer, accounts []models.Account) error {
	cw := csv.NewWriter(w)

	if err := cw.Write([]string{"client", "available", "held", "total", "locked"}); err != nil {
		return err
	}
	for _, acct := range accounts {
		row := []string{
			strconv.FormatUint(uint64(acct.Client), 10),
			acct.Available.StringFixed(4),
			acct.Held.StringFixed(4),
			acct.Total().StringFixed(4),
			strconv.FormatBool(acct.Locked),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}
