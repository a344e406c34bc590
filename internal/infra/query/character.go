package query

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"
)

type Character struct {
	CharID    int32
	AccountID int32
	Name      string
	Data      []byte
	UpdatedAt pgtype.Timestamptz
}

const findCharacter = `
SELECT char_id, account_id, name, data, updated_at
FROM characters
WHERE char_id = $1 AND account_id = $2`

func (q *Queries) FindCharacter(ctx context.Context, db DBTX, charID, accountID int32) (Character, error) {
	var c Character
	err := db.QueryRow(ctx, findCharacter, charID, accountID).
		Scan(&c.CharID, &c.AccountID, &c.Name, &c.Data, &c.UpdatedAt)
	return c, err
}

const upsertCharacter = `
INSERT INTO characters (char_id, account_id, name, data, updated_at)
VALUES ($1, $2, $3, $4, now())
ON CONFLICT (char_id) DO UPDATE
SET account_id = EXCLUDED.account_id,
    name = EXCLUDED.name,
    data = EXCLUDED.data,
    updated_at = now()`

func (q *Queries) UpsertCharacter(ctx context.Context, db DBTX, charID, accountID int32, name string, data []byte) error {
	_, err := db.Exec(ctx, upsertCharacter, charID, accountID, name, data)
	return err
}
