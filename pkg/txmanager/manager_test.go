package txmanager

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SalonBookingService/pkg/dbmetrics"
)

// fakeTx транзакция с настраиваемой ошибкой коммита
type fakeTx struct {
	commitErrs []error
	commits    int
	rollbacks  int
}

func (t *fakeTx) ExecContext(context.Context, string, ...interface{}) (sql.Result, error) {
	return nil, nil
}

func (t *fakeTx) QueryContext(context.Context, string, ...interface{}) (*sql.Rows, error) {
	return nil, nil
}

func (t *fakeTx) QueryRowContext(context.Context, string, ...interface{}) *sql.Row {
	return nil
}

func (t *fakeTx) Commit() error {
	err := error(nil)
	if t.commits < len(t.commitErrs) {
		err = t.commitErrs[t.commits]
	}
	t.commits++
	return err
}

func (t *fakeTx) Rollback() error {
	t.rollbacks++
	return nil
}

type fakeBeginner struct {
	tx     *fakeTx
	begins int
}

func (b *fakeBeginner) BeginTx(context.Context, *sql.TxOptions) (dbmetrics.TxExecutor, error) {
	b.begins++
	return b.tx, nil
}

func serializationErr() error {
	return &pq.Error{Code: "40001"}
}

// Ошибка 40001 в том виде, в каком она доходит из репозитория:
// завернута через %w с контекстом операции
func wrappedSerializationErr() error {
	return fmt.Errorf("GetByID - serialization conflict: %w", serializationErr())
}

func TestDoSerializable_RetriesWrappedConflict(t *testing.T) {
	beginner := &fakeBeginner{tx: &fakeTx{}}
	m := NewTransactionManager(beginner)

	attempts := 0
	err := m.DoSerializable(context.Background(), func(ctx context.Context) error {
		attempts++
		if attempts < 2 {
			return wrappedSerializationErr()
		}
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, 2, attempts)
	assert.Equal(t, 2, beginner.begins)
}

func TestDoSerializable_GivesUpAfterMaxRetries(t *testing.T) {
	beginner := &fakeBeginner{tx: &fakeTx{}}
	m := NewTransactionManager(beginner)

	attempts := 0
	err := m.DoSerializable(context.Background(), func(ctx context.Context) error {
		attempts++
		return wrappedSerializationErr()
	})

	require.Error(t, err)
	assert.Equal(t, maxRetries, attempts)

	var pqErr *pq.Error
	assert.True(t, errors.As(err, &pqErr))
}

func TestDoSerializable_CommitConflictRetried(t *testing.T) {
	// Под SERIALIZABLE конфликт часто всплывает только на коммите
	tx := &fakeTx{commitErrs: []error{serializationErr(), nil}}
	beginner := &fakeBeginner{tx: tx}
	m := NewTransactionManager(beginner)

	attempts := 0
	err := m.DoSerializable(context.Background(), func(ctx context.Context) error {
		attempts++
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, 2, attempts)
	assert.Equal(t, 2, tx.commits)
}

func TestDoSerializable_OtherErrorNotRetried(t *testing.T) {
	beginner := &fakeBeginner{tx: &fakeTx{}}
	m := NewTransactionManager(beginner)

	boom := errors.New("boom")
	attempts := 0
	err := m.DoSerializable(context.Background(), func(ctx context.Context) error {
		attempts++
		return boom
	})

	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 1, attempts)
	assert.Equal(t, 1, beginner.tx.rollbacks)
}
