package query

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"

	"vending-server/internal/pkg/pgconv"
)

type Vending struct {
	ID            int32
	AccountID     int32
	CharID        int32
	Sex           string
	Map           string
	X             int16
	Y             int16
	Title         string
	Autotrade     bool
	BodyDirection int16
	HeadDirection int16
	Sit           bool
}

type VendingItem struct {
	VendingID       int32
	Idx             int16
	CartinventoryID int64
	Amount          int32
	Price           int64
}

const insertVending = `
INSERT INTO vendings (id, account_id, char_id, sex, map, x, y, title, autotrade, body_direction, head_direction, sit)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`

func (q *Queries) InsertVending(ctx context.Context, db DBTX, arg Vending) error {
	_, err := db.Exec(ctx, insertVending,
		arg.ID, arg.AccountID, arg.CharID, arg.Sex, arg.Map, arg.X, arg.Y,
		arg.Title, arg.Autotrade, arg.BodyDirection, arg.HeadDirection, arg.Sit)
	return err
}

const insertVendingItem = `
INSERT INTO vending_items (vending_id, idx, cartinventory_id, amount, price)
VALUES ($1, $2, $3, $4, $5)`

func (q *Queries) InsertVendingItem(ctx context.Context, db DBTX, arg VendingItem) error {
	_, err := db.Exec(ctx, insertVendingItem, arg.VendingID, arg.Idx, arg.CartinventoryID, arg.Amount, arg.Price)
	return err
}

const updateVendingItemAmount = `
UPDATE vending_items SET amount = $3 WHERE vending_id = $1 AND cartinventory_id = $2`

func (q *Queries) UpdateVendingItemAmount(ctx context.Context, db DBTX, vendingID int32, cartRowID int64, amount int32) (int64, error) {
	tag, err := db.Exec(ctx, updateVendingItemAmount, vendingID, cartRowID, amount)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

const deleteVendingItem = `
DELETE FROM vending_items WHERE vending_id = $1 AND cartinventory_id = $2`

func (q *Queries) DeleteVendingItem(ctx context.Context, db DBTX, vendingID int32, cartRowID int64) error {
	_, err := db.Exec(ctx, deleteVendingItem, vendingID, cartRowID)
	return err
}

const deleteVendingItems = `DELETE FROM vending_items WHERE vending_id = $1`

func (q *Queries) DeleteVendingItems(ctx context.Context, db DBTX, vendingID int32) error {
	_, err := db.Exec(ctx, deleteVendingItems, vendingID)
	return err
}

const deleteVending = `DELETE FROM vendings WHERE id = $1`

func (q *Queries) DeleteVending(ctx context.Context, db DBTX, vendingID int32) error {
	_, err := db.Exec(ctx, deleteVending, vendingID)
	return err
}

const updateVendingAutotrade = `
UPDATE vendings SET autotrade = TRUE, body_direction = $2, head_direction = $3, sit = $4 WHERE id = $1`

func (q *Queries) UpdateVendingAutotrade(ctx context.Context, db DBTX, vendingID int32, body, head int16, sit bool) error {
	_, err := db.Exec(ctx, updateVendingAutotrade, vendingID, body, head, sit)
	return err
}

const listAutotradeVendings = `
SELECT v.id, v.account_id, v.char_id, v.sex, v.map, v.x, v.y, v.title,
       v.autotrade, v.body_direction, v.head_direction, v.sit
FROM vendings v
WHERE v.autotrade = TRUE
  AND EXISTS (SELECT 1 FROM vending_items i WHERE i.vending_id = v.id)
ORDER BY v.id`

func (q *Queries) ListAutotradeVendings(ctx context.Context, db DBTX) ([]Vending, error) {
	rows, err := db.Query(ctx, listAutotradeVendings)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []Vending
	for rows.Next() {
		var (
			v   Vending
			sex pgtype.Text
		)
		if err := rows.Scan(&v.ID, &v.AccountID, &v.CharID, &sex, &v.Map, &v.X, &v.Y, &v.Title,
			&v.Autotrade, &v.BodyDirection, &v.HeadDirection, &v.Sit); err != nil {
			return nil, err
		}
		v.Sex = pgconv.TextOr(sex, "M")
		items = append(items, v)
	}
	return items, rows.Err()
}

const listVendingItems = `
SELECT vending_id, idx, cartinventory_id, amount, price
FROM vending_items
WHERE vending_id = $1
ORDER BY idx ASC`

func (q *Queries) ListVendingItems(ctx context.Context, db DBTX, vendingID int32) ([]VendingItem, error) {
	rows, err := db.Query(ctx, listVendingItems, vendingID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []VendingItem
	for rows.Next() {
		var i VendingItem
		if err := rows.Scan(&i.VendingID, &i.Idx, &i.CartinventoryID, &i.Amount, &i.Price); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	return items, rows.Err()
}

const maxVendingID = `SELECT COALESCE(MAX(id), 0)::int4 FROM vendings`

func (q *Queries) MaxVendingID(ctx context.Context, db DBTX) (int32, error) {
	var id int32
	err := db.QueryRow(ctx, maxVendingID).Scan(&id)
	return id, err
}

func (q *Queries) PurgeVendings(ctx context.Context, db DBTX) error {
	if _, err := db.Exec(ctx, `DELETE FROM vending_items`); err != nil {
		return err
	}
	_, err := db.Exec(ctx, `DELETE FROM vendings`)
	return err
}
