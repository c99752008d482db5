package dbmetrics

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type fakeTx struct {
	DBExecutor
}

func (fakeTx) Commit() error   { return nil }
func (fakeTx) Rollback() error { return nil }

type fakeDB struct {
	DBExecutor
}

func TestGetExecutor(t *testing.T) {
	db := &fakeDB{}
	tx := &fakeTx{}

	ctx := context.Background()
	assert.Same(t, db, GetExecutor(ctx, db))
	assert.False(t, IsInTransaction(ctx))

	txCtx := WithTx(ctx, tx)
	assert.Same(t, tx, GetExecutor(txCtx, db))
	assert.True(t, IsInTransaction(txCtx))
}

func TestOperationName(t *testing.T) {
	assert.Equal(t, "SELECT", operationName("select id FROM staff"))
	assert.Equal(t, "INSERT", operationName("  INSERT INTO assigned_staff"))
	assert.Equal(t, "UNKNOWN", operationName(""))
}

func TestObserveWithoutCollector(t *testing.T) {
	d := Wrap(nil, nil, "staffing")
	assert.NotPanics(t, func() {
		d.observe("SELECT 1", time.Now(), sql.ErrConnDone)
		d.observeTx("commit", nil)
	})
}
