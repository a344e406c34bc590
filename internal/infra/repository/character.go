package repository

import (
	"context"
	"encoding/json"

	"vending-server/internal/domain/character"
	"vending-server/internal/infra"
	"vending-server/internal/infra/query"
)

//go:generate mockgen -source=character.go -destination=../../../tests/mock/repository/character.go -package=repositorymock

type CharacterQueries interface {
	FindCharacter(ctx context.Context, db query.DBTX, charID, accountID int32) (query.Character, error)
	UpsertCharacter(ctx context.Context, db query.DBTX, charID, accountID int32, name string, data []byte) error
}

type CharacterRepository struct {
	queries CharacterQueries
	db      query.DBTX
}

func NewCharacterRepository(queries CharacterQueries, db query.DBTX) *CharacterRepository {
	return &CharacterRepository{
		queries: queries,
		db:      db,
	}
}

func (r *CharacterRepository) Load(ctx context.Context, id character.ID) (character.Snapshot, error) {
	row, err := r.queries.FindCharacter(ctx, r.db, id.CharID, id.AccountID)
	if err != nil {
		return character.Snapshot{}, infra.WrapRepoErr("failed to find character", err)
	}

	var snap character.Snapshot
	if err := json.Unmarshal(row.Data, &snap); err != nil {
		return character.Snapshot{}, infra.WrapRepoErr("failed to decode character data", err, infra.KindDBFailure)
	}
	snap.ID = id
	snap.Name = row.Name
	return snap, nil
}

func (r *CharacterRepository) Save(ctx context.Context, snap character.Snapshot) error {
	data, err := json.Marshal(snap)
	if err != nil {
		return infra.WrapRepoErr("failed to encode character data", err, infra.KindDBFailure)
	}
	if err := r.queries.UpsertCharacter(ctx, r.db, snap.ID.CharID, snap.ID.AccountID, snap.Name, data); err != nil {
		return infra.WrapRepoErr("failed to save character", err)
	}
	return nil
}
