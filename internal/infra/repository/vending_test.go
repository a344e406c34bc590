//go:build unit

package repository_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"vending-server/internal/domain/character"
	"vending-server/internal/domain/vending"
	"vending-server/internal/infra"
	"vending-server/internal/infra/query"
	"vending-server/internal/infra/repository"
	"vending-server/internal/pkg/errs"
	repositorymock "vending-server/tests/mock/repository"
)

func newVendingRepo(t *testing.T) (*repository.VendingRepository, *repositorymock.MockVendingQueries, *mockDBTX) {
	t.Helper()
	ctrl := gomock.NewController(t)
	mockQueries := repositorymock.NewMockVendingQueries(ctrl)
	mockDB := &mockDBTX{}
	return repository.NewVendingRepository(mockQueries, mockDB), mockQueries, mockDB
}

// =============================================================================
// Shop rows
// =============================================================================

func TestVendingRepository_InsertShop(t *testing.T) {
	ctx := context.Background()
	repo, mockQueries, mockDB := newVendingRepo(t)

	header := vending.ShopHeader{
		ShopID:   3,
		Seller:   character.ID{AccountID: 2000001, CharID: 150001},
		Sex:      character.SexFemale,
		Position: character.Position{Map: "prontera", X: 150, Y: 160},
		Title:    "cheap pots",
		Display:  vending.Display{Facing: character.Facing{Body: 4, Head: 1}, Sitting: true},
	}
	mockQueries.EXPECT().InsertVending(ctx, mockDB, query.Vending{
		ID:            3,
		AccountID:     2000001,
		CharID:        150001,
		Sex:           "F",
		Map:           "prontera",
		X:             150,
		Y:             160,
		Title:         "cheap pots",
		BodyDirection: 4,
		HeadDirection: 1,
		Sit:           true,
	}).Return(nil)

	require.NoError(t, repo.InsertShop(ctx, header))

	t.Run("success: coordinates outside smallint are clamped", func(t *testing.T) {
		repo, mockQueries, mockDB := newVendingRepo(t)
		far := header
		far.Position = character.Position{Map: "prontera", X: 70000, Y: -70000}
		mockQueries.EXPECT().InsertVending(ctx, mockDB, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ query.DBTX, arg query.Vending) error {
				assert.Equal(t, int16(32767), arg.X)
				assert.Equal(t, int16(-32768), arg.Y)
				return nil
			})

		require.NoError(t, repo.InsertShop(ctx, far))
	})
}

func TestVendingRepository_MaxShopID(t *testing.T) {
	ctx := context.Background()

	t.Run("success: highest persisted id", func(t *testing.T) {
		repo, mockQueries, mockDB := newVendingRepo(t)
		mockQueries.EXPECT().MaxVendingID(ctx, mockDB).Return(int32(57), nil)

		id, err := repo.MaxShopID(ctx)
		require.NoError(t, err)
		assert.Equal(t, vending.ShopID(57), id)
	})

	t.Run("error: query failure is a persistence error", func(t *testing.T) {
		repo, mockQueries, mockDB := newVendingRepo(t)
		mockQueries.EXPECT().MaxVendingID(ctx, mockDB).Return(int32(0), errors.New("connection refused"))

		_, err := repo.MaxShopID(ctx)
		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
		assert.True(t, errs.Is(err, errs.ErrPersistence))
	})
}

func TestVendingRepository_InsertLines(t *testing.T) {
	ctx := context.Background()
	lines := []vending.LineRecord{
		{ShopID: 3, Index: 0, CartRowID: 11, Amount: 5, Price: 100},
		{ShopID: 3, Index: 1, CartRowID: 12, Amount: 1, Price: 9000},
	}

	testCases := []struct {
		name          string
		setupMock     func(*repositorymock.MockVendingQueries)
		expectedError bool
		expectKind    infra.RepositoryErrorKind
	}{
		{
			name: "success: all lines written in one transaction",
			setupMock: func(mock *repositorymock.MockVendingQueries) {
				mock.EXPECT().InsertVendingItem(ctx, gomock.Any(), query.VendingItem{VendingID: 3, Idx: 0, CartinventoryID: 11, Amount: 5, Price: 100}).Return(nil)
				mock.EXPECT().InsertVendingItem(ctx, gomock.Any(), query.VendingItem{VendingID: 3, Idx: 1, CartinventoryID: 12, Amount: 1, Price: 9000}).Return(nil)
			},
		},
		{
			name: "error: duplicate line rolls back",
			setupMock: func(mock *repositorymock.MockVendingQueries) {
				dup := &pgconn.PgError{Code: "23505", Message: "duplicate key value violates unique constraint"}
				mock.EXPECT().InsertVendingItem(ctx, gomock.Any(), gomock.Any()).Return(nil)
				mock.EXPECT().InsertVendingItem(ctx, gomock.Any(), gomock.Any()).Return(dup)
			},
			expectedError: true,
			expectKind:    infra.KindDuplicateKey,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo, mockQueries, mockDB := newVendingRepo(t)
			tc.setupMock(mockQueries)

			err := repo.InsertLines(ctx, 3, lines)

			require.Len(t, mockDB.txs, 1)
			if tc.expectedError {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, tc.expectKind), "expected kind [%v] but got [%T] (%v)", tc.expectKind, err, err)
				assert.True(t, mockDB.txs[0].rolledBack)
				assert.Equal(t, 0, mockDB.committed())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, 1, mockDB.committed())
		})
	}
}

func TestVendingRepository_UpdateLineQuantity(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name          string
		affected      int64
		dbErr         error
		expectedError bool
		expectKind    infra.RepositoryErrorKind
	}{
		{name: "success: line updated", affected: 1},
		{name: "error: line not found", affected: 0, expectedError: true, expectKind: infra.KindNotFound},
		{name: "error: database error occurs", dbErr: errors.New("connection reset"), expectedError: true, expectKind: infra.KindDBFailure},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo, mockQueries, mockDB := newVendingRepo(t)
			mockQueries.EXPECT().UpdateVendingItemAmount(ctx, mockDB, int32(3), int64(11), int32(2)).Return(tc.affected, tc.dbErr)

			err := repo.UpdateLineQuantity(ctx, 3, 11, 2)

			if tc.expectedError {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, tc.expectKind), "expected kind [%v] but got [%T] (%v)", tc.expectKind, err, err)
				assert.True(t, errs.Is(err, errs.ErrPersistence))
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestVendingRepository_DeleteShop(t *testing.T) {
	ctx := context.Background()
	repo, mockQueries, mockDB := newVendingRepo(t)

	gomock.InOrder(
		mockQueries.EXPECT().DeleteVendingItems(ctx, gomock.Any(), int32(3)).Return(nil),
		mockQueries.EXPECT().DeleteVending(ctx, gomock.Any(), int32(3)).Return(nil),
	)

	require.NoError(t, repo.DeleteShop(ctx, 3))
	assert.Equal(t, 1, mockDB.committed())
}

func TestVendingRepository_SetAutotrade(t *testing.T) {
	ctx := context.Background()
	repo, mockQueries, mockDB := newVendingRepo(t)

	mockQueries.EXPECT().UpdateVendingAutotrade(ctx, mockDB, int32(3), int16(6), int16(2), true).Return(nil)

	require.NoError(t, repo.SetAutotrade(ctx, 3, vending.Display{Facing: character.Facing{Body: 6, Head: 2}, Sitting: true}))
}

// =============================================================================
// Boot load
// =============================================================================

func TestVendingRepository_LoadUnattendedShops(t *testing.T) {
	ctx := context.Background()

	t.Run("success: rows mapped, empty shops skipped", func(t *testing.T) {
		repo, mockQueries, mockDB := newVendingRepo(t)
		mockQueries.EXPECT().ListAutotradeVendings(ctx, mockDB).Return([]query.Vending{
			{ID: 7, AccountID: 2000001, CharID: 150001, Sex: "M", Map: "payon", X: 10, Y: 20, Title: "t", Autotrade: true, BodyDirection: 4, Sit: true},
			{ID: 8, AccountID: 2000002, CharID: 150002, Sex: "F", Autotrade: true},
		}, nil)
		mockQueries.EXPECT().ListVendingItems(ctx, mockDB, int32(7)).Return([]query.VendingItem{
			{VendingID: 7, Idx: 0, CartinventoryID: 11, Amount: 5, Price: 100},
			{VendingID: 7, Idx: 1, CartinventoryID: 12, Amount: 1, Price: 300},
		}, nil)
		mockQueries.EXPECT().ListVendingItems(ctx, mockDB, int32(8)).Return(nil, nil)

		records, err := repo.LoadUnattendedShops(ctx)
		require.NoError(t, err)

		want := []vending.AutotradeRecord{{
			Header: vending.ShopHeader{
				ShopID:    7,
				Seller:    character.ID{AccountID: 2000001, CharID: 150001},
				Sex:       character.SexMale,
				Position:  character.Position{Map: "payon", X: 10, Y: 20},
				Title:     "t",
				Autotrade: true,
				Display:   vending.Display{Facing: character.Facing{Body: 4}, Sitting: true},
			},
			Entries: []vending.AutotradeEntry{
				{CartRowID: 11, Amount: 5, Price: 100},
				{CartRowID: 12, Amount: 1, Price: 300},
			},
		}}
		if diff := cmp.Diff(want, records); diff != "" {
			t.Errorf("records mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("error: item query fails the whole load", func(t *testing.T) {
		repo, mockQueries, mockDB := newVendingRepo(t)
		mockQueries.EXPECT().ListAutotradeVendings(ctx, mockDB).Return([]query.Vending{{ID: 7}}, nil)
		mockQueries.EXPECT().ListVendingItems(ctx, mockDB, int32(7)).Return(nil, errors.New("timeout"))

		records, err := repo.LoadUnattendedShops(ctx)
		require.Error(t, err)
		assert.Nil(t, records)
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})
}

func TestVendingRepository_PurgeAllShops(t *testing.T) {
	ctx := context.Background()

	t.Run("success: serialization failure retried", func(t *testing.T) {
		repo, mockQueries, mockDB := newVendingRepo(t)
		gomock.InOrder(
			mockQueries.EXPECT().PurgeVendings(ctx, gomock.Any()).Return(&pgconn.PgError{Code: "40001"}),
			mockQueries.EXPECT().PurgeVendings(ctx, gomock.Any()).Return(nil),
		)

		require.NoError(t, repo.PurgeAllShops(ctx))
		assert.Len(t, mockDB.txs, 2)
		assert.Equal(t, 1, mockDB.committed())
	})

	t.Run("error: begin fails", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockDB := &mockDBTX{beginErr: errors.New("pool closed")}
		repo := repository.NewVendingRepository(repositorymock.NewMockVendingQueries(ctrl), mockDB)

		err := repo.PurgeAllShops(ctx)
		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})
}
