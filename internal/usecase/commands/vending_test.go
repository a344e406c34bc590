//go:build unit

package commands_test

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"vending-server/internal/domain/character"
	"vending-server/internal/domain/vending"
	"vending-server/internal/pkg/config"
	"vending-server/internal/usecase/shared"
	"vending-server/tests/common/builder"
	sharedmock "vending-server/tests/mock/shared"
)

// =============================================================================
// Prepare / Open
// =============================================================================

func TestVendingCommands_PrepareVending(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name    string
		seller  func(*builder.CharacterBuilder)
		attach  bool
		wantErr error
	}{
		{name: "success: merchant with cart", attach: true},
		{name: "error: character offline", wantErr: shared.ErrCharacterOffline},
		{
			name:    "error: no cart",
			seller:  func(b *builder.CharacterBuilder) { b.Snapshot.CartOn = false },
			attach:  true,
			wantErr: vending.ErrNoCart,
		},
		{
			name:    "error: skill not learned",
			seller:  func(b *builder.CharacterBuilder) { b.Snapshot.VendingSkill = 0 },
			attach:  true,
			wantErr: vending.ErrNoCart,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			h := newHarness(t)
			b := merchantCart()
			if tc.seller != nil {
				b.With(tc.seller)
			}
			seller := b.Build()
			if tc.attach {
				h.online(t, seller)
			}

			err := h.vending.PrepareVending(ctx, seller.ID().CharID)

			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				assert.False(t, seller.IsPreVending())
				return
			}
			require.NoError(t, err)
			assert.True(t, seller.IsPreVending())
		})
	}
}

func TestVendingCommands_OpenShop(t *testing.T) {
	ctx := context.Background()

	t.Run("success: shop registered and persisted", func(t *testing.T) {
		h := newHarness(t)
		seller := h.online(t, merchantCart().Build())

		id := h.open(t, seller, standardLines()...)

		assert.Equal(t, vending.ShopID(1), id)
		assert.True(t, seller.IsVending())
		assert.False(t, seller.IsPreVending())
		assert.Equal(t, int32(id), seller.ShopID())

		shop, ok := h.registry.Lookup(seller.ID().CharID)
		require.True(t, ok)
		assert.Equal(t, []vending.Line{
			{CartIndex: 0, Amount: 5, Price: 100},
			{CartIndex: 1, Amount: 3, Price: 50},
		}, shop.Lines())

		header, ok := h.gateway.header(id)
		require.True(t, ok)
		assert.Equal(t, seller.ID(), header.Seller)
		assert.Equal(t, "bargains", header.Title)
		assert.False(t, header.Autotrade)
		line, ok := h.gateway.line(id, 2)
		require.True(t, ok)
		assert.Equal(t, vending.LineRecord{ShopID: id, Index: 1, CartRowID: 2, Amount: 3, Price: 50}, line)

		assert.Equal(t, []vending.EventKind{vending.EventShopOpened}, h.drainKinds(seller.ID().CharID))
		assert.Equal(t, 1.0, testutil.ToFloat64(h.metrics.ShopsOpened.WithLabelValues("player")))
		assert.Equal(t, 1.0, testutil.ToFloat64(h.metrics.OpenShops))
	})

	t.Run("success: untradeable line dropped, valid line kept", func(t *testing.T) {
		h := newHarness(t)
		seller := h.online(t, builder.NewCharacterBuilder().WithCart(
			builder.Stack(1, builder.RedPotion, 10),
			builder.Stack(2, builder.TCGCard, 1),
		).Build())

		id := h.open(t, seller,
			vending.RequestedLine{CartIndex: 1, Amount: 1, Price: 1000},
			vending.RequestedLine{CartIndex: 0, Amount: 10, Price: 10},
		)

		shop, ok := h.registry.Lookup(seller.ID().CharID)
		require.True(t, ok)
		assert.Equal(t, []vending.Line{{CartIndex: 0, Amount: 10, Price: 10}}, shop.Lines())
		assert.Equal(t, id, shop.ID())

		events := h.mailbox.Drain(seller.ID().CharID)
		require.Len(t, events, 2)
		assert.Equal(t, vending.EventItemsRemoved, events[0].Kind)
		assert.Equal(t, 1, events[0].Amount)
		assert.Equal(t, fixedNow, events[0].At)
	})

	t.Run("success: title truncated", func(t *testing.T) {
		h := newHarness(t, func(c *config.Config) { c.Vending.TitleMax = 8 })
		seller := h.online(t, merchantCart().Build())
		require.NoError(t, h.vending.PrepareVending(ctx, seller.ID().CharID))

		_, err := h.vending.OpenShop(ctx, seller.ID().CharID, strings.Repeat("x", 20), standardLines())
		require.NoError(t, err)

		shop, _ := h.registry.Lookup(seller.ID().CharID)
		assert.Equal(t, "xxxxxxxx", shop.Title())
	})

	testCases := []struct {
		name    string
		seller  func(*builder.CharacterBuilder)
		prepare bool
		lines   []vending.RequestedLine
		wantErr error
	}{
		{
			name:    "error: not in pre-vend state",
			lines:   standardLines(),
			wantErr: vending.ErrCannotOpen,
		},
		{
			name:    "error: more lines than the skill allows",
			seller:  func(b *builder.CharacterBuilder) { b.Snapshot.VendingSkill = 1 },
			prepare: true,
			lines: []vending.RequestedLine{
				{CartIndex: 0, Amount: 1, Price: 1},
				{CartIndex: 0, Amount: 1, Price: 1},
				{CartIndex: 1, Amount: 1, Price: 1},
				{CartIndex: 1, Amount: 1, Price: 1},
			},
			wantErr: vending.ErrInvalidItemCount,
		},
		{
			name:    "error: no lines",
			prepare: true,
			lines:   nil,
			wantErr: vending.ErrInvalidItemCount,
		},
		{
			name:    "error: zero valid items",
			prepare: true,
			lines:   []vending.RequestedLine{{CartIndex: 5, Amount: 1, Price: 1}},
			wantErr: vending.ErrNoValidItems,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			h := newHarness(t)
			b := merchantCart()
			if tc.seller != nil {
				b.With(tc.seller)
			}
			seller := h.online(t, b.Build())
			if tc.prepare {
				require.NoError(t, h.vending.PrepareVending(ctx, seller.ID().CharID))
			}

			_, err := h.vending.OpenShop(ctx, seller.ID().CharID, "bargains", tc.lines)

			assert.ErrorIs(t, err, tc.wantErr)
			assert.False(t, seller.IsVending())
			assert.Equal(t, 0, h.registry.Len())
			assert.Equal(t, 0, h.gateway.opCount())
		})
	}

	t.Run("error: already vending", func(t *testing.T) {
		h := newHarness(t)
		seller := h.online(t, merchantCart().Build())
		h.open(t, seller, standardLines()...)

		_, err := h.vending.OpenShop(ctx, seller.ID().CharID, "again", standardLines())
		assert.ErrorIs(t, err, vending.ErrAlreadyVending)
		assert.Equal(t, 1, h.registry.Len())
	})

	t.Run("error: character offline", func(t *testing.T) {
		h := newHarness(t)
		_, err := h.vending.OpenShop(ctx, 42, "bargains", standardLines())
		assert.ErrorIs(t, err, shared.ErrCharacterOffline)
	})
}

func TestVendingCommands_OpenShop_PersistenceFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h := newHarness(t)
	gateway := sharedmock.NewMockShopGateway(ctrl)
	gateway.EXPECT().InsertShop(gomock.Any(), gomock.Any()).Return(errors.New("connection refused"))
	cmds, _ := h.build(config.NewTestConfig(), gateway)

	seller := h.online(t, merchantCart().Build())
	require.NoError(t, cmds.PrepareVending(context.Background(), seller.ID().CharID))

	id, err := cmds.OpenShop(context.Background(), seller.ID().CharID, "bargains", standardLines())

	require.NoError(t, err, "the in-memory shop stays open when the write fails")
	assert.Equal(t, vending.ShopID(1), id)
	assert.True(t, seller.IsVending())
	assert.Equal(t, 1.0, testutil.ToFloat64(h.metrics.PersistenceFailure.WithLabelValues("insert_shop")))
}

// =============================================================================
// Close / Autotrade
// =============================================================================

func TestVendingCommands_CloseShop(t *testing.T) {
	ctx := context.Background()

	t.Run("success: shop removed and purged", func(t *testing.T) {
		h := newHarness(t)
		seller := h.online(t, merchantCart().Build())
		buyer := h.online(t, builder.NewBuyerBuilder().Build())
		id := h.open(t, seller, standardLines()...)
		buyer.SetViewedShop(int32(id))
		h.mailbox.Drain(seller.ID().CharID)

		require.NoError(t, h.vending.CloseShop(ctx, seller.ID().CharID))

		assert.False(t, seller.IsVending())
		assert.Equal(t, 0, h.registry.Len())
		assert.Equal(t, int32(0), buyer.ViewedShopID())
		_, ok := h.gateway.header(id)
		assert.False(t, ok)
		assert.Equal(t, []vending.EventKind{vending.EventShopClosed}, h.drainKinds(seller.ID().CharID))
	})

	t.Run("success: closing a seller that is not vending is a no-op", func(t *testing.T) {
		h := newHarness(t)
		seller := h.online(t, merchantCart().Build())

		require.NoError(t, h.vending.CloseShop(ctx, seller.ID().CharID))
		require.NoError(t, h.vending.CloseShop(ctx, 999))

		assert.Equal(t, 0, h.gateway.opCount())
		assert.Empty(t, h.mailbox.Drain(seller.ID().CharID))
		assert.Equal(t, 0.0, testutil.ToFloat64(h.metrics.ShopsClosed.WithLabelValues("player")))
	})

	t.Run("success: close clears a vending flag left without a shop", func(t *testing.T) {
		h := newHarness(t)
		seller := h.online(t, merchantCart().Build())
		seller.BeginVending(99)

		require.NoError(t, h.vending.CloseShop(ctx, seller.ID().CharID))

		assert.False(t, seller.IsVending())
		assert.Equal(t, int32(0), seller.ShopID())
		h.open(t, seller, standardLines()...)
		assert.True(t, seller.IsVending())
	})

	t.Run("success: racing open and close leave flag and registry in agreement", func(t *testing.T) {
		h := newHarness(t)
		seller := h.online(t, merchantCart().Build())
		charID := seller.ID().CharID

		for range 200 {
			require.NoError(t, h.vending.PrepareVending(ctx, charID))
			var wg sync.WaitGroup
			wg.Add(2)
			go func() {
				defer wg.Done()
				_, _ = h.vending.OpenShop(ctx, charID, "bargains", standardLines())
			}()
			go func() {
				defer wg.Done()
				_ = h.vending.CloseShop(ctx, charID)
			}()
			wg.Wait()

			_, registered := h.registry.Lookup(charID)
			require.Equal(t, registered, seller.IsVending())
			require.NoError(t, h.vending.CloseShop(ctx, charID))
			require.False(t, seller.IsVending())
		}
	})
}

func TestVendingCommands_Autotrade(t *testing.T) {
	ctx := context.Background()

	t.Run("success: seller detached and flagged", func(t *testing.T) {
		h := newHarness(t)
		seller := h.online(t, merchantCart().Build())
		seller.SetSitting(true)
		id := h.open(t, seller, standardLines()...)

		require.NoError(t, h.vending.Autotrade(ctx, seller.ID().CharID))

		assert.True(t, seller.IsAutotrader())
		assert.True(t, seller.IsVending())
		header, ok := h.gateway.header(id)
		require.True(t, ok)
		assert.True(t, header.Autotrade)
		assert.True(t, header.Display.Sitting)
		_, saved := h.chars.saved(seller.ID().CharID)
		assert.True(t, saved)
	})

	t.Run("error: not vending", func(t *testing.T) {
		h := newHarness(t)
		seller := h.online(t, merchantCart().Build())

		assert.ErrorIs(t, h.vending.Autotrade(ctx, seller.ID().CharID), vending.ErrNotVending)
		assert.False(t, seller.IsAutotrader())
	})

	t.Run("error: offline", func(t *testing.T) {
		h := newHarness(t)
		assert.ErrorIs(t, h.vending.Autotrade(ctx, 1), shared.ErrCharacterOffline)
	})
}

func TestVendingCommands_OpenShopAs_Autotrader(t *testing.T) {
	h := newHarness(t)
	seller := h.online(t, merchantCart().BuildAutotrader())
	seller.SetPreVending(true)

	id, err := h.vending.OpenShopAs(context.Background(), seller, "restored", standardLines())
	require.NoError(t, err)

	d := vending.Display{Facing: character.Facing{Body: 2, Head: 1}, Sitting: true}
	require.NoError(t, h.vending.RestoreDisplay(context.Background(), seller, d))

	shop, ok := h.registry.Lookup(seller.ID().CharID)
	require.True(t, ok)
	assert.True(t, shop.IsAutotrade())
	assert.Equal(t, d, shop.Display())
	assert.True(t, seller.IsSitting())
	header, _ := h.gateway.header(id)
	assert.Equal(t, d, header.Display)
	assert.Equal(t, 1.0, testutil.ToFloat64(h.metrics.ShopsOpened.WithLabelValues("autotrader")))
}
