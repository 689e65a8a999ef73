package database

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
)

// fakeTx only implements what WithTransaction calls.
type fakeTx struct {
	pgx.Tx
	committed, rolledBack bool
	commitErr             error
}

func (t *fakeTx) Commit(context.Context) error {
	t.committed = true
	return t.commitErr
}

func (t *fakeTx) Rollback(context.Context) error {
	t.rolledBack = true
	return nil
}

type fakeBeginner struct{ tx *fakeTx }

func (b fakeBeginner) Begin(context.Context) (pgx.Tx, error) { return b.tx, nil }

func TestWithTransaction(t *testing.T) {
	boom := errors.New("boom")
	tests := []struct {
		name         string
		fnErr        error
		commitErr    error
		wantErr      bool
		wantCommit   bool
		wantRollback bool
	}{
		{"commit on success", nil, nil, false, true, false},
		{"rollback on error", boom, nil, true, false, true},
		{"rollback when commit fails", nil, boom, true, true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tx := &fakeTx{commitErr: tt.commitErr}
			err := WithTransaction(context.Background(), fakeBeginner{tx}, func(pgx.Tx) error { return tt.fnErr })

			assert.Equal(t, tt.wantErr, err != nil)
			assert.Equal(t, tt.wantCommit, tx.committed)
			assert.Equal(t, tt.wantRollback, tx.rolledBack)
		})
	}
}

func TestWithTransaction_PanicRollsBack(t *testing.T) {
	tx := &fakeTx{}
	assert.Panics(t, func() {
		_ = WithTransaction(context.Background(), fakeBeginner{tx}, func(pgx.Tx) error { panic("boom") })
	})
	assert.True(t, tx.rolledBack)
	assert.False(t, tx.committed)
}
