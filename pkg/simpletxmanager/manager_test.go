package simpletxmanager

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-VisitService/pkg/dbmetrics"
)

// fakeTx исполнитель транзакции с настраиваемой ошибкой фиксации
type fakeTx struct {
	commitErr error
	commits   int
	rollbacks int
}

func (t *fakeTx) ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error) {
	return nil, nil
}

func (t *fakeTx) QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error) {
	return nil, nil
}

func (t *fakeTx) QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row {
	return nil
}

func (t *fakeTx) Commit() error {
	t.commits++
	return t.commitErr
}

func (t *fakeTx) Rollback() error {
	t.rollbacks++
	return nil
}

// fakeBeginner считает попытки начала транзакции и выдает подготовленные tx по очереди
type fakeBeginner struct {
	beginErr error
	txs      []*fakeTx
	attempts int
	lastOpts *sql.TxOptions
}

func (b *fakeBeginner) BeginTx(ctx context.Context, opts *sql.TxOptions) (dbmetrics.TxExecutor, error) {
	b.attempts++
	b.lastOpts = opts
	if b.beginErr != nil {
		return nil, b.beginErr
	}
	idx := b.attempts - 1
	if idx >= len(b.txs) {
		idx = len(b.txs) - 1
	}
	return b.txs[idx], nil
}

func noopFn(ctx context.Context) error { return nil }

func TestDoSerializable_RetriesCommitConflictUntilExhausted(t *testing.T) {
	txs := []*fakeTx{
		{commitErr: &pq.Error{Code: "40001"}},
		{commitErr: &pq.Error{Code: "40001"}},
		{commitErr: &pq.Error{Code: "40001"}},
	}
	db := &fakeBeginner{txs: txs}
	m := &TransactionManager{db: db}

	err := m.DoSerializable(context.Background(), noopFn)

	assert.ErrorIs(t, err, ErrTxRetriesExhausted)
	assert.Equal(t, maxSerializableRetries, db.attempts)
	for _, tx := range txs {
		assert.Equal(t, 1, tx.commits)
	}
}

func TestDoSerializable_SucceedsAfterCommitConflict(t *testing.T) {
	txs := []*fakeTx{
		{commitErr: &pq.Error{Code: "40001"}},
		{},
	}
	db := &fakeBeginner{txs: txs}
	m := &TransactionManager{db: db}

	err := m.DoSerializable(context.Background(), noopFn)

	assert.NoError(t, err)
	assert.Equal(t, 2, db.attempts)
}

func TestDoSerializable_RetriesDeadlockFromQuery(t *testing.T) {
	txs := []*fakeTx{{}, {}, {}}
	db := &fakeBeginner{txs: txs}
	m := &TransactionManager{db: db}

	err := m.DoSerializable(context.Background(), func(ctx context.Context) error {
		return fmt.Errorf("booking repo: %w", &pq.Error{Code: "40P01"})
	})

	assert.ErrorIs(t, err, ErrTxRetriesExhausted)
	assert.Equal(t, maxSerializableRetries, db.attempts)
	for _, tx := range txs {
		assert.Equal(t, 1, tx.rollbacks)
		assert.Equal(t, 0, tx.commits)
	}
}

func TestDoSerializable_NonRetryableCommitErrorReturnedImmediately(t *testing.T) {
	db := &fakeBeginner{txs: []*fakeTx{{commitErr: errors.New("connection closed")}}}
	m := &TransactionManager{db: db}

	err := m.DoSerializable(context.Background(), noopFn)

	assert.ErrorIs(t, err, ErrTxCommit)
	assert.NotErrorIs(t, err, ErrTxRetriesExhausted)
	assert.Equal(t, 1, db.attempts)
}

func TestDoSerializable_FnErrorRollsBackWithoutRetry(t *testing.T) {
	tx := &fakeTx{}
	db := &fakeBeginner{txs: []*fakeTx{tx}}
	m := &TransactionManager{db: db}

	wantErr := errors.New("business rule violated")
	err := m.DoSerializable(context.Background(), func(ctx context.Context) error {
		return wantErr
	})

	assert.ErrorIs(t, err, wantErr)
	assert.Equal(t, 1, db.attempts)
	assert.Equal(t, 1, tx.rollbacks)
	assert.Equal(t, 0, tx.commits)
}

func TestDoSerializable_ContextCancellationStopsRetries(t *testing.T) {
	db := &fakeBeginner{txs: []*fakeTx{{}}}
	m := &TransactionManager{db: db}

	ctx, cancel := context.WithCancel(context.Background())
	err := m.DoSerializable(ctx, func(ctx context.Context) error {
		cancel()
		return fmt.Errorf("booking repo: %w", &pq.Error{Code: "40001"})
	})

	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 1, db.attempts)
}

func TestDoSerializable_UsesSerializableIsolation(t *testing.T) {
	db := &fakeBeginner{txs: []*fakeTx{{}}}
	m := &TransactionManager{db: db}

	err := m.DoSerializable(context.Background(), noopFn)

	assert.NoError(t, err)
	assert.Equal(t, sql.LevelSerializable, db.lastOpts.Isolation)
}

func TestDo_PutsExecutorIntoContext(t *testing.T) {
	tx := &fakeTx{}
	db := &fakeBeginner{txs: []*fakeTx{tx}}
	m := &TransactionManager{db: db}

	err := m.Do(context.Background(), func(ctx context.Context) error {
		assert.True(t, dbmetrics.IsInTransaction(ctx))
		return nil
	})

	assert.NoError(t, err)
	assert.Equal(t, 1, tx.commits)
}

func TestDo_BeginError(t *testing.T) {
	db := &fakeBeginner{beginErr: errors.New("too many connections")}
	m := &TransactionManager{db: db}

	err := m.Do(context.Background(), noopFn)

	assert.ErrorIs(t, err, ErrTxBegin)
}
