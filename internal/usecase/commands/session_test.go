//go:build unit

package commands_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vending-server/internal/domain/character"
	"vending-server/internal/usecase/shared"
	"vending-server/tests/common/builder"
)

func TestSessionCommands_Connect(t *testing.T) {
	ctx := context.Background()

	t.Run("success: character loaded and attached", func(t *testing.T) {
		h := newHarness(t)
		snap := merchantCart().WithZeny(500).BuildSnapshot()
		require.NoError(t, h.chars.Save(ctx, snap))

		c, err := h.session.Connect(ctx, snap.ID)
		require.NoError(t, err)

		assert.Equal(t, character.KindPlayer, c.Kind())
		assert.Equal(t, int64(500), c.Zeny())
		got, ok := h.world.ByAccountID(snap.ID.AccountID)
		require.True(t, ok)
		assert.Same(t, c, got)
	})

	t.Run("error: already online", func(t *testing.T) {
		h := newHarness(t)
		snap := merchantCart().BuildSnapshot()
		require.NoError(t, h.chars.Save(ctx, snap))
		_, err := h.session.Connect(ctx, snap.ID)
		require.NoError(t, err)

		_, err = h.session.Connect(ctx, snap.ID)
		assert.ErrorIs(t, err, shared.ErrAlreadyOnline)
	})

	t.Run("error: unknown character", func(t *testing.T) {
		h := newHarness(t)
		_, err := h.session.Connect(ctx, character.ID{AccountID: 1, CharID: 1})
		require.Error(t, err)
		assert.Equal(t, 0, h.world.Len())
	})

	t.Run("success: login replaces a resident autotrader", func(t *testing.T) {
		h := newHarness(t)
		auto := h.online(t, merchantCart().BuildAutotrader())
		id := h.open(t, auto, standardLines()...)
		require.NoError(t, h.chars.Save(ctx, auto.Snapshot()))

		c, err := h.session.Connect(ctx, auto.ID())
		require.NoError(t, err)

		assert.NotSame(t, auto, c)
		assert.False(t, c.IsAutotrader())
		assert.False(t, c.IsVending())
		assert.Equal(t, 0, h.registry.Len())
		_, ok := h.gateway.header(id)
		assert.False(t, ok)
	})
}

func TestSessionCommands_Disconnect(t *testing.T) {
	ctx := context.Background()

	t.Run("success: live seller closes and leaves", func(t *testing.T) {
		h := newHarness(t)
		seller := h.online(t, merchantCart().Build())
		id := h.open(t, seller, standardLines()...)

		require.NoError(t, h.session.Disconnect(ctx, seller.ID().CharID))

		assert.Equal(t, 0, h.world.Len())
		assert.Equal(t, 0, h.registry.Len())
		_, ok := h.gateway.header(id)
		assert.False(t, ok)
		_, saved := h.chars.saved(seller.ID().CharID)
		assert.True(t, saved)
	})

	t.Run("error: autotraders have no connection", func(t *testing.T) {
		h := newHarness(t)
		auto := h.online(t, merchantCart().BuildAutotrader())

		assert.ErrorIs(t, h.session.Disconnect(ctx, auto.ID().CharID), shared.ErrCharacterOffline)
		assert.Equal(t, 1, h.world.Len())
	})

	t.Run("error: offline", func(t *testing.T) {
		h := newHarness(t)
		assert.ErrorIs(t, h.session.Disconnect(ctx, 5), shared.ErrCharacterOffline)
	})
}

func TestSessionCommands_DisconnectAll(t *testing.T) {
	ctx := context.Background()
	h := newHarness(t)

	live := h.online(t, merchantCart().Build())
	auto := h.online(t, merchantCart().WithID(2000005, 150005).BuildAutotrader())
	idle := h.online(t, builder.NewBuyerBuilder().Build())
	liveShop := h.open(t, live, standardLines()...)
	autoShop := h.open(t, auto, standardLines()...)

	n := h.session.DisconnectAll(ctx)

	assert.Equal(t, 3, n)
	assert.Equal(t, 0, h.world.Len())
	assert.Equal(t, 0, h.registry.Len())
	_, ok := h.gateway.header(liveShop)
	assert.False(t, ok, "live shops are purged")
	_, ok = h.gateway.header(autoShop)
	assert.True(t, ok, "autotrader rows survive for the next boot")
	_, saved := h.chars.saved(idle.ID().CharID)
	assert.True(t, saved)
}
