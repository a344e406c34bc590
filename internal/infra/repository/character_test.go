//go:build unit

package repository_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"vending-server/internal/domain/character"
	"vending-server/internal/infra"
	"vending-server/internal/infra/query"
	"vending-server/internal/infra/repository"
	"vending-server/tests/common/builder"
	repositorymock "vending-server/tests/mock/repository"
)

func TestCharacterRepository_Load(t *testing.T) {
	ctx := context.Background()
	id := character.ID{AccountID: 2000001, CharID: 150001}
	stored := builder.NewCharacterBuilder().
		WithZeny(1234).
		WithCart(builder.Stack(1, builder.RedPotion, 3)).
		BuildSnapshot()
	data, err := json.Marshal(stored)
	require.NoError(t, err)

	testCases := []struct {
		name       string
		row        query.Character
		dbErr      error
		expectKind infra.RepositoryErrorKind
	}{
		{name: "success: snapshot decoded", row: query.Character{CharID: 150001, AccountID: 2000001, Name: "Renamed", Data: data}},
		{name: "error: character not found", dbErr: pgx.ErrNoRows, expectKind: infra.KindNotFound},
		{name: "error: corrupt data", row: query.Character{Data: []byte("{")}, expectKind: infra.KindDBFailure},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockQueries := repositorymock.NewMockCharacterQueries(ctrl)
			mockDB := &mockDBTX{}
			repo := repository.NewCharacterRepository(mockQueries, mockDB)
			mockQueries.EXPECT().FindCharacter(ctx, mockDB, int32(150001), int32(2000001)).Return(tc.row, tc.dbErr)

			snap, err := repo.Load(ctx, id)

			if tc.expectKind != "" {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, tc.expectKind), "expected kind [%v] but got [%T] (%v)", tc.expectKind, err, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, id, snap.ID)
			assert.Equal(t, "Renamed", snap.Name, "the name column wins over the blob")
			assert.Equal(t, int64(1234), snap.Zeny)
			assert.Equal(t, stored.Cart, snap.Cart)
		})
	}
}

func TestCharacterRepository_Save(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	mockQueries := repositorymock.NewMockCharacterQueries(ctrl)
	mockDB := &mockDBTX{}
	repo := repository.NewCharacterRepository(mockQueries, mockDB)
	snap := builder.NewCharacterBuilder().WithZeny(99).BuildSnapshot()

	mockQueries.EXPECT().
		UpsertCharacter(ctx, mockDB, int32(150001), int32(2000001), "Merchant", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ query.DBTX, _, _ int32, _ string, data []byte) error {
			var got character.Snapshot
			require.NoError(t, json.Unmarshal(data, &got))
			assert.Equal(t, int64(99), got.Zeny)
			return nil
		})

	require.NoError(t, repo.Save(ctx, snap))
}
