package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/api-sage/payment-engine/internal/domain"
	"github.com/api-sage/payment-engine/internal/logger"
)

// SnapshotRepository persists the final account snapshot of one
// processing run. Each run is stored under its own run id so repeated
// exports never collide; this is an end-of-run export, not a
// checkpoint.
type SnapshotRepository struct {
	db *sql.DB
}

func NewSnapshotRepository(db *sql.DB) *SnapshotRepository {
	return &SnapshotRepository{db: db}
}

func (r *SnapshotRepository) Save(ctx context.Context, runID string, snapshots []domain.AccountSnapshot) error {
	logger.Info("snapshot repository save", logger.Fields{
		"runId":    runID,
		"accounts": len(snapshots),
	})

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin snapshot tx: %w", err)
	}
	defer tx.Rollback()

	const query = `
INSERT INTO account_snapshots (
	run_id,
	client_id,
	available,
	held,
	total,
	locked,
	exported_at
) VALUES ($1, $2, $3, $4, $5, $6, $7)`

	exportedAt := time.Now().UTC()
	for _, s := range snapshots {
		if _, err := tx.ExecContext(
			ctx,
			query,
			runID,
			int64(s.ClientID),
			s.Available.String(),
			s.Held.String(),
			s.Total.String(),
			s.Locked,
			exportedAt,
		); err != nil {
			logger.Error("snapshot repository save failed", err, logger.Fields{
				"runId":    runID,
				"clientId": s.ClientID,
			})
			return fmt.Errorf("insert snapshot for client %d: %w", s.ClientID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit snapshot tx: %w", err)
	}

	logger.Info("snapshot repository save success", logger.Fields{
		"runId": runID,
	})

	return nil
}
