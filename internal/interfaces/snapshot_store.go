package interfaces

import (
	"context"

	"github.com/sheikh-saqib/payments-engine/internal/models"
)

// SnapshotStore exports the final per-client account states of a run to an
// external sink for downstream reconciliation. The engine never reads
// snapshots back; each run starts from an empty ledger.
type SnapshotStore interface {
	SaveSnapshots(ctx context.Context, accounts []models.Account) error
}
