package txmanager

import (
	"context"

	"gorm.io/gorm"
)

type contextKey string

const txKey contextKey = "gorm_tx"

// txState travels with the transaction context: the live tx plus the
// hooks registered to run once the outermost transaction commits.
type txState struct {
	tx    *gorm.DB
	hooks *[]func()
}

// TransactionManager manages database transactions via context injection.
type TransactionManager interface {
	RunInTx(ctx context.Context, fn func(txCtx context.Context) error) error
}

type transactionManager struct {
	db *gorm.DB
}

func NewTransactionManager(db *gorm.DB) TransactionManager {
	return &transactionManager{db: db}
}

func (t *transactionManager) RunInTx(ctx context.Context, fn func(txCtx context.Context) error) error {
	// Joining an ambient transaction keeps nested service calls on the
	// caller's commit/rollback boundary.
	if _, ok := ctx.Value(txKey).(*txState); ok {
		return fn(ctx)
	}

	var hooks []func()
	err := t.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		txCtx := context.WithValue(ctx, txKey, &txState{tx: tx, hooks: &hooks})
		return fn(txCtx)
	})
	if err != nil {
		return err
	}

	// A rolled-back transaction never reaches this point, so hooks only
	// run for committed work.
	for _, hook := range hooks {
		hook()
	}
	return nil
}

// AfterCommit schedules fn to run once the outermost transaction has
// committed. Without an ambient transaction fn runs immediately.
func AfterCommit(ctx context.Context, fn func()) {
	if state, ok := ctx.Value(txKey).(*txState); ok {
		*state.hooks = append(*state.hooks, fn)
		return
	}
	fn()
}

// GetDB extracts the transaction DB from context if present, otherwise returns root DB.
func GetDB(ctx context.Context, rootDB *gorm.DB) *gorm.DB {
	if state, ok := ctx.Value(txKey).(*txState); ok {
		return state.tx.WithContext(ctx)
	}
	return rootDB.WithContext(ctx)
}
