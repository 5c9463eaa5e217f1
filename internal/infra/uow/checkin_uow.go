// Package uow wraps the write pairs that must land atomically in one
// postgres transaction.
package uow

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/MAGNO9/SchoolTrack/internal/infra/repository"
	"github.com/MAGNO9/SchoolTrack/internal/pkg/errs"
	"github.com/MAGNO9/SchoolTrack/internal/usecase/commands"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	pgErrCodeSerializationFailure = "40001"
	pgErrCodeDeadlockDetected     = "40P01"

	maxTxRetries = 3
	retryBackoff = 100 * time.Millisecond
)

type CheckinUoW struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

func NewCheckinUoW(pool *pgxpool.Pool, logger *slog.Logger) *CheckinUoW {
	return &CheckinUoW{pool: pool, logger: logger}
}

// Within runs fn in a read-committed transaction. Serialization failures
// and deadlocks are retried a bounded number of times; any other failure
// rolls back and surfaces as-is.
func (u *CheckinUoW) Within(ctx context.Context, fn func(ctx context.Context, tx commands.CheckinTx) error) error {
	var err error
	for attempt := 0; attempt <= maxTxRetries; attempt++ {
		err = u.runInTx(ctx, fn)
		if err == nil || !retryable(err) || attempt == maxTxRetries {
			return err
		}

		wait := retryBackoff << attempt
		u.logger.Warn("retrying check-in transaction",
			"attempt", attempt+1, "wait_ms", wait.Milliseconds(), "error", err)

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(wait):
		}
	}
	return err
}

func (u *CheckinUoW) runInTx(ctx context.Context, fn func(ctx context.Context, tx commands.CheckinTx) error) error {
	pgxTx, err := u.pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted})
	if err != nil {
		return errs.Mark(errs.Wrap(err, "failed to begin transaction"), errs.ErrPersistence)
	}

	err = fn(ctx, &checkinTx{
		StudentRepository: repository.NewStudentRepository(pgxTx),
		CheckinRepository: repository.NewCheckinRepository(pgxTx),
	})
	if err == nil {
		if err = pgxTx.Commit(ctx); err == nil {
			return nil
		}
		err = errs.Mark(errs.Wrap(err, "failed to commit transaction"), errs.ErrPersistence)
	}

	if rollbackErr := pgxTx.Rollback(ctx); rollbackErr != nil && !errors.Is(rollbackErr, pgx.ErrTxClosed) {
		u.logger.Warn("rollback failed", "error", rollbackErr)
	}
	return err
}

func retryable(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}
	switch pgErr.Code {
	case pgErrCodeSerializationFailure, pgErrCodeDeadlockDetected:
		return true
	default:
		return false
	}
}

type checkinTx struct {
	*repository.StudentRepository
	*repository.CheckinRepository
}
