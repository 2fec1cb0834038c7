package main

import (
	"bufio"
	"context"
	"io"
	"log"
	"os"
	"time"

	enginecsv "github.com/api-sage/payment-engine/internal/adapter/csv"
	"github.com/api-sage/payment-engine/internal/adapter/repository/postgres"
	"github.com/api-sage/payment-engine/internal/config"
	"github.com/api-sage/payment-engine/internal/domain"
	"github.com/api-sage/payment-engine/internal/logger"
	"github.com/api-sage/payment-engine/internal/usecase"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	if len(os.Args) < 2 {
		log.Fatalf("input file missing! call: engine [FILE].csv")
	}

	file, err := os.Open(os.Args[1])
	if err != nil {
		log.Fatalf("open input file: %v", err)
	}
	defer file.Close()

	engine := usecase.NewEngine(usecase.NewLedger(), usecase.NewDisputeTracker())

	reader := enginecsv.NewReader(bufio.NewReader(file))
	for {
		tx, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			if cfg.LogRejected {
				logger.Warn("skipping unparseable record", logger.Fields{
					"reason": err.Error(),
				})
			}
			continue
		}

		if err := engine.Process(tx); err != nil && cfg.LogRejected {
			logger.Warn("transaction rejected", logger.Fields{
				"type":     string(tx.Type),
				"clientId": tx.ClientID,
				"txId":     tx.TransactionID,
				"reason":   err.Error(),
			})
		}
	}

	snapshots := engine.Snapshot()

	if err := enginecsv.WriteSnapshot(os.Stdout, snapshots); err != nil {
		log.Fatalf("write snapshot: %v", err)
	}

	if cfg.SnapshotDSN != "" {
		if err := exportSnapshot(cfg, snapshots); err != nil {
			log.Fatalf("export snapshot: %v", err)
		}
	}
}

func exportSnapshot(cfg config.Config, snapshots []domain.AccountSnapshot) error {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	db, err := postgres.Open(ctx, cfg.SnapshotDSN)
	if err != nil {
		return err
	}
	defer db.Close()

	if err := postgres.RunMigrations(ctx, db, cfg.MigrationsDir); err != nil {
		return err
	}

	runID := time.Now().UTC().Format("20060102T150405.000000000")
	if err := postgres.NewSnapshotRepository(db).Save(ctx, runID, snapshots); err != nil {
		return err
	}

	logger.Info("snapshot exported", logger.Fields{
		"runId":    runID,
		"accounts": len(snapshots),
	})

	return nil
}
