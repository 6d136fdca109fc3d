package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-retry"

	"github.com/heartmarshall/outcomes-backend/internal/config"
)

// TxManager manages database transactions using the context pattern.
//
// A RunInTx call made inside another RunInTx callback joins the outer
// transaction: fn runs on the outer tx and commit/rollback stay with the
// outermost call. Only the outermost call retries.
type TxManager struct {
	db          DB
	maxAttempts uint64
	baseDelay   time.Duration
	maxDelay    time.Duration
}

// NewTxManager creates a new TxManager that retries transient failures
// according to cfg. A zero cfg disables retries.
func NewTxManager(db DB, cfg config.RetryConfig) *TxManager {
	m := &TxManager{
		db:          db,
		maxAttempts: cfg.MaxAttempts,
		baseDelay:   cfg.BaseDelay,
		maxDelay:    cfg.MaxDelay,
	}
	if m.maxAttempts == 0 {
		m.maxAttempts = 1
	}
	if m.baseDelay <= 0 {
		m.baseDelay = 10 * time.Millisecond
	}
	if m.maxDelay < m.baseDelay {
		m.maxDelay = m.baseDelay
	}
	return m
}

// RunInTx executes fn within a database transaction.
// Isolation level: Read Committed (PostgreSQL default).
// On success: commits.
// On error from fn: rolls back and returns the error. Transient errors
// (see IsTransient) roll back and re-run fn in a fresh transaction, up to
// the configured attempt count.
// On panic from fn: rolls back and re-panics.
func (m *TxManager) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if InTx(ctx) {
		return fn(ctx)
	}

	backoff := retry.WithMaxRetries(m.maxAttempts-1,
		retry.WithCappedDuration(m.maxDelay, retry.NewExponential(m.baseDelay)))

	return retry.Do(ctx, backoff, func(ctx context.Context) error {
		err := m.runOnce(ctx, fn)
		if IsTransient(err) {
			return retry.RetryableError(err)
		}
		return err
	})
}

func (m *TxManager) runOnce(ctx context.Context, fn func(ctx context.Context) error) (err error) {
	tx, err := m.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}

	defer func() {
		if r := recover(); r != nil {
			_ = tx.Rollback(ctx)
			panic(r)
		}
	}()

	txCtx := withTx(ctx, tx)

	if err := fn(txCtx); err != nil {
		if rbErr := tx.Rollback(ctx); rbErr != nil {
			return fmt.Errorf("rollback failed: %w (original error: %w)", rbErr, err)
		}
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}

	return nil
}
