package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"vending-server/internal/domain/character"
	"vending-server/internal/domain/vending"
	"vending-server/internal/infra"
	"vending-server/internal/infra/db"
	"vending-server/internal/infra/query"
	"vending-server/internal/pkg/pgconv"
)

//go:generate mockgen -source=vending.go -destination=../../../tests/mock/repository/vending.go -package=repositorymock

type VendingQueries interface {
	InsertVending(ctx context.Context, db query.DBTX, arg query.Vending) error
	InsertVendingItem(ctx context.Context, db query.DBTX, arg query.VendingItem) error
	UpdateVendingItemAmount(ctx context.Context, db query.DBTX, vendingID int32, cartRowID int64, amount int32) (int64, error)
	DeleteVendingItem(ctx context.Context, db query.DBTX, vendingID int32, cartRowID int64) error
	DeleteVendingItems(ctx context.Context, db query.DBTX, vendingID int32) error
	DeleteVending(ctx context.Context, db query.DBTX, vendingID int32) error
	UpdateVendingAutotrade(ctx context.Context, db query.DBTX, vendingID int32, body, head int16, sit bool) error
	ListAutotradeVendings(ctx context.Context, db query.DBTX) ([]query.Vending, error)
	ListVendingItems(ctx context.Context, db query.DBTX, vendingID int32) ([]query.VendingItem, error)
	PurgeVendings(ctx context.Context, db query.DBTX) error
	MaxVendingID(ctx context.Context, db query.DBTX) (int32, error)
}

// TxDB is a connection that can also open transactions.
type TxDB interface {
	query.DBTX
	db.Beginner
}

var _ TxDB = (*pgxpool.Pool)(nil)

const purgeRetries = 2

type VendingRepository struct {
	queries VendingQueries
	db      TxDB
}

func NewVendingRepository(queries VendingQueries, db TxDB) *VendingRepository {
	return &VendingRepository{
		queries: queries,
		db:      db,
	}
}

func (r *VendingRepository) InsertShop(ctx context.Context, h vending.ShopHeader) error {
	err := r.queries.InsertVending(ctx, r.db, query.Vending{
		ID:            int32(h.ShopID),
		AccountID:     h.Seller.AccountID,
		CharID:        h.Seller.CharID,
		Sex:           h.Sex.Letter(),
		Map:           h.Position.Map,
		X:             pgconv.Int2FromInt(h.Position.X),
		Y:             pgconv.Int2FromInt(h.Position.Y),
		Title:         h.Title,
		Autotrade:     h.Autotrade,
		BodyDirection: int16(h.Display.Facing.Body),
		HeadDirection: int16(h.Display.Facing.Head),
		Sit:           h.Display.Sitting,
	})
	if err != nil {
		return infra.WrapRepoErr("failed to insert vending", err)
	}
	return nil
}

func (r *VendingRepository) InsertLines(ctx context.Context, shopID vending.ShopID, lines []vending.LineRecord) error {
	err := db.RunInTx(ctx, r.db, func(tx query.DBTX) error {
		for _, l := range lines {
			if err := r.queries.InsertVendingItem(ctx, tx, query.VendingItem{
				VendingID:       int32(shopID),
				Idx:             pgconv.Int2FromInt(l.Index),
				CartinventoryID: l.CartRowID,
				Amount:          int32(l.Amount),
				Price:           l.Price,
			}); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return infra.WrapRepoErr("failed to insert vending items", err)
	}
	return nil
}

func (r *VendingRepository) UpdateLineQuantity(ctx context.Context, shopID vending.ShopID, cartRowID int64, amount int) error {
	n, err := r.queries.UpdateVendingItemAmount(ctx, r.db, int32(shopID), cartRowID, int32(amount))
	if err != nil {
		return infra.WrapRepoErr("failed to update vending item amount", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("vending item not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *VendingRepository) DeleteLine(ctx context.Context, shopID vending.ShopID, cartRowID int64) error {
	if err := r.queries.DeleteVendingItem(ctx, r.db, int32(shopID), cartRowID); err != nil {
		return infra.WrapRepoErr("failed to delete vending item", err)
	}
	return nil
}

func (r *VendingRepository) DeleteShop(ctx context.Context, shopID vending.ShopID) error {
	err := db.RunInTx(ctx, r.db, func(tx query.DBTX) error {
		if err := r.queries.DeleteVendingItems(ctx, tx, int32(shopID)); err != nil {
			return err
		}
		return r.queries.DeleteVending(ctx, tx, int32(shopID))
	})
	if err != nil {
		return infra.WrapRepoErr("failed to delete vending", err)
	}
	return nil
}

func (r *VendingRepository) SetAutotrade(ctx context.Context, shopID vending.ShopID, d vending.Display) error {
	err := r.queries.UpdateVendingAutotrade(ctx, r.db, int32(shopID),
		int16(d.Facing.Body), int16(d.Facing.Head), d.Sitting)
	if err != nil {
		return infra.WrapRepoErr("failed to flag vending as autotrade", err)
	}
	return nil
}

// LoadUnattendedShops reads every autotrade shop that still has lines. The
// whole load fails on the first error so no partial batch is returned.
func (r *VendingRepository) LoadUnattendedShops(ctx context.Context) ([]vending.AutotradeRecord, error) {
	rows, err := r.queries.ListAutotradeVendings(ctx, r.db)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list autotrade vendings", err)
	}

	records := make([]vending.AutotradeRecord, 0, len(rows))
	for _, row := range rows {
		items, err := r.queries.ListVendingItems(ctx, r.db, row.ID)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to list vending items", err)
		}
		if len(items) == 0 {
			continue
		}
		records = append(records, toAutotradeRecord(row, items))
	}
	return records, nil
}

// MaxShopID is the highest shop id with a persisted row, 0 when the
// tables are empty.
func (r *VendingRepository) MaxShopID(ctx context.Context) (vending.ShopID, error) {
	id, err := r.queries.MaxVendingID(ctx, r.db)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to read max vending id", err)
	}
	return vending.ShopID(id), nil
}

// PurgeAllShops runs at boot while nothing else writes the tables; a
// serialization failure there is retried.
func (r *VendingRepository) PurgeAllShops(ctx context.Context) error {
	err := db.RunInTxWithRetry(ctx, r.db, purgeRetries, func(tx query.DBTX) error {
		return r.queries.PurgeVendings(ctx, tx)
	})
	if err != nil {
		return infra.WrapRepoErr("failed to purge vendings", err)
	}
	return nil
}

func toAutotradeRecord(row query.Vending, items []query.VendingItem) vending.AutotradeRecord {
	rec := vending.AutotradeRecord{
		Header: vending.ShopHeader{
			ShopID:    vending.ShopID(row.ID),
			Seller:    character.ID{AccountID: row.AccountID, CharID: row.CharID},
			Sex:       character.ParseSex(row.Sex),
			Position:  character.Position{Map: row.Map, X: int(row.X), Y: int(row.Y)},
			Title:     row.Title,
			Autotrade: row.Autotrade,
			Display: vending.Display{
				Facing:  character.Facing{Body: pgconv.Uint8FromInt2(row.BodyDirection), Head: pgconv.Uint8FromInt2(row.HeadDirection)},
				Sitting: row.Sit,
			},
		},
		Entries: make([]vending.AutotradeEntry, 0, len(items)),
	}
	for _, it := range items {
		rec.Entries = append(rec.Entries, vending.AutotradeEntry{
			CartRowID: it.CartinventoryID,
			Amount:    int(it.Amount),
			Price:     it.Price,
		})
	}
	return rec
}
