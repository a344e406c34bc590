//go:build unit

package repository_test

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// mockDBTX satisfies repository.TxDB. Statements go through the mocked
// queries, so the connection itself is never asked to run SQL.
type mockDBTX struct {
	beginErr error
	txs      []*mockTx
}

func (m *mockDBTX) Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error) {
	return pgconn.CommandTag{}, nil
}

func (m *mockDBTX) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return nil, nil
}

func (m *mockDBTX) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	panic("mockDBTX.QueryRow was called unexpectedly. Use the query mock instead.")
}

func (m *mockDBTX) Begin(ctx context.Context) (pgx.Tx, error) {
	if m.beginErr != nil {
		return nil, m.beginErr
	}
	tx := &mockTx{}
	m.txs = append(m.txs, tx)
	return tx, nil
}

func (m *mockDBTX) committed() int {
	n := 0
	for _, tx := range m.txs {
		if tx.committed {
			n++
		}
	}
	return n
}

type mockTx struct {
	pgx.Tx
	committed  bool
	rolledBack bool
}

func (t *mockTx) Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error) {
	return pgconn.CommandTag{}, nil
}

func (t *mockTx) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return nil, nil
}

func (t *mockTx) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	panic("mockTx.QueryRow was called unexpectedly. Use the query mock instead.")
}

func (t *mockTx) Commit(ctx context.Context) error {
	t.committed = true
	return nil
}

func (t *mockTx) Rollback(ctx context.Context) error {
	if t.committed {
		return pgx.ErrTxClosed
	}
	t.rolledBack = true
	return nil
}
