package db

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"vending-server/internal/infra/query"
	"vending-server/internal/pkg/errs"
)

var (
	ErrTransactionBegin   = errs.New("failed to begin transaction")
	ErrTransactionCommit  = errs.New("failed to commit transaction")
	ErrMaxRetriesExceeded = errs.New("transaction failed after max retries")
)

// Beginner is satisfied by *pgxpool.Pool and by pgx.Tx (nested savepoint).
type Beginner interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}

var _ Beginner = (*pgxpool.Pool)(nil)

func RunInTx(ctx context.Context, db Beginner, fn func(tx query.DBTX) error) error {
	tx, err := db.Begin(ctx)
	if err != nil {
		return errs.Mark(err, ErrTransactionBegin)
	}

	defer func() {
		if rollbackErr := tx.Rollback(ctx); rollbackErr != nil {
			// Only log rollback errors for uncommitted transactions
			if !errors.Is(rollbackErr, pgx.ErrTxClosed) {
				slog.Warn("failed to rollback transaction", "error", rollbackErr)
			}
		}
	}()

	if err := fn(tx); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return errs.Mark(err, ErrTransactionCommit)
	}
	return nil
}

func RunInTxWithRetry(ctx context.Context, db Beginner, maxRetries int, fn func(tx query.DBTX) error) error {
	for attempt := 0; attempt <= maxRetries; attempt++ {
		err := RunInTx(ctx, db, fn)
		if err == nil {
			return nil
		}

		if !isRetryableError(err) {
			return err
		}

		if attempt == maxRetries {
			slog.Error("transaction failed after max retries",
				"attempts", attempt+1,
				"error", err)
			return errs.Mark(err, ErrMaxRetriesExceeded)
		}

		waitTime := time.Duration(attempt+1) * 100 * time.Millisecond
		slog.Warn("retrying transaction due to retryable error",
			"attempt", attempt+1,
			"wait_time", waitTime,
			"error", err)

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(waitTime):
		}
	}
	return ErrMaxRetriesExceeded
}

func isRetryableError(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}

	// 40001: serialization_failure
	// 40P01: deadlock_detected
	switch pgErr.Code {
	case "40001", "40P01":
		return true
	default:
		return false
	}
}
