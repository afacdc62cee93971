package postgres

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"

	interfaces "github.com/sheikh-saqib/payments-engine/internal/interfaces" // interface SnapshotStore
	"github.com/sheikh-saqib/payments-engine/internal/models"
)

// PostgresSnapshotStore exports final account states to a postgres table for
// downstream reconciliation. Each run writes its rows under a fresh run id;
// the engine never reads them back.
type PostgresSnapshotStore struct {
	db *sql.DB
}

func NewPostgresSnapshotStore(db *sql.DB) *PostgresSnapshotStore {
	return &PostgresSnapshotStore{
		db: db,
	}
}

func (p *PostgresSnapshotStore) SaveSnapshots(ctx context.Context, accounts []models.Account) error {
	const query = `INSERT INTO account_snapshots(run_id, client_id, available, held, total, locked, created_at)
	VALUES ($1,$2,$3,$4,$5,$6,$7)`

	runID := uuid.New().String()
	createdAt := time.Now().UTC()

	dbTx, err := p.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	defer func() {
		if err != nil {
			dbTx.Rollback()
		}
	}()

	for _, acct := range accounts {
		_, err = dbTx.ExecContext(ctx, query,
			runID,
			int64(acct.Client),
			acct.Available,
			acct.Held,
			acct.Total(),
			acct.Locked,
			createdAt,
		)
		if err != nil {
			return err
		}
	}

	return dbTx.Commit()
}

var _ interfaces.SnapshotStore = (*PostgresSnapshotStore)(nil)
