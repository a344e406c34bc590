//go:build e2e || integration

package dbtest

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"

	"vending-server/internal/domain/character"
)

// CreateCharacter stores a character the way the character store expects
// to find it on login.
func CreateCharacter(t *testing.T, db DBLike, snap character.Snapshot) {
	t.Helper()

	data, err := json.Marshal(snap)
	require.NoError(t, err)

	_, err = db.Exec(context.Background(), `
		INSERT INTO characters (char_id, account_id, name, data)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (char_id) DO UPDATE SET data = EXCLUDED.data`,
		snap.ID.CharID, snap.ID.AccountID, snap.Name, data)
	require.NoError(t, err)
}

func CountShops(t *testing.T, db DBLike) (shops, lines int) {
	t.Helper()

	ctx := context.Background()
	require.NoError(t, db.QueryRow(ctx, "SELECT count(*) FROM vendings").Scan(&shops))
	require.NoError(t, db.QueryRow(ctx, "SELECT count(*) FROM vending_items").Scan(&lines))
	return shops, lines
}

func LineAmount(t *testing.T, db DBLike, shopID int32, cartRowID int64) int {
	t.Helper()

	var amount int
	err := db.QueryRow(context.Background(),
		"SELECT amount FROM vending_items WHERE vending_id = $1 AND cartinventory_id = $2",
		shopID, cartRowID).Scan(&amount)
	require.NoError(t, err)
	return amount
}

// ResetDB empties every table.
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	_, err := pool.Exec(ctx, "TRUNCATE vending_items, vendings, characters")
	return err
}
