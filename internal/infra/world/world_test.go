//go:build unit

package world_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vending-server/internal/infra/world"
	"vending-server/internal/usecase/shared"
	"vending-server/tests/common/builder"
)

func TestWorld(t *testing.T) {
	w := world.New()
	merchant := builder.NewCharacterBuilder().Build()
	buyer := builder.NewBuyerBuilder().Build()

	require.NoError(t, w.Attach(buyer))
	require.NoError(t, w.Attach(merchant))

	t.Run("one resident per character and account", func(t *testing.T) {
		assert.ErrorIs(t, w.Attach(builder.NewCharacterBuilder().Build()), shared.ErrAlreadyOnline)
		sameAccount := builder.NewCharacterBuilder().WithID(2000001, 150099).Build()
		assert.ErrorIs(t, w.Attach(sameAccount), shared.ErrAlreadyOnline)
		assert.Equal(t, 2, w.Len())
	})

	t.Run("lookups", func(t *testing.T) {
		got, ok := w.ByAccountID(2000001)
		require.True(t, ok)
		assert.Same(t, merchant, got)
		got, ok = w.ByCharID(150002)
		require.True(t, ok)
		assert.Same(t, buyer, got)
	})

	t.Run("all is ordered by character id", func(t *testing.T) {
		all := w.All()
		require.Len(t, all, 2)
		assert.Same(t, merchant, all[0])
		assert.Same(t, buyer, all[1])
	})

	t.Run("detach", func(t *testing.T) {
		got, ok := w.Detach(150001)
		require.True(t, ok)
		assert.Same(t, merchant, got)
		_, ok = w.ByAccountID(2000001)
		assert.False(t, ok)
		_, ok = w.Detach(150001)
		assert.False(t, ok)
	})
}
