//go:build unit

package notify_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"vending-server/internal/domain/vending"
	"vending-server/internal/infra/notify"
)

func TestMailbox(t *testing.T) {
	m := notify.NewMailbox(2)

	m.Notify(1, vending.Event{Kind: vending.EventShopOpened, ShopID: 1})
	m.Notify(1, vending.Event{Kind: vending.EventStockReport, ShopID: 1})
	m.Notify(1, vending.Event{Kind: vending.EventShopClosed, ShopID: 1})
	m.Notify(2, vending.Event{Kind: vending.EventPurchaseOK, ShopID: 1})

	got := m.Drain(1)
	assert.Equal(t, []vending.Event{
		{Kind: vending.EventStockReport, ShopID: 1},
		{Kind: vending.EventShopClosed, ShopID: 1},
	}, got, "the oldest event is dropped when the box is full")
	assert.Empty(t, m.Drain(1))
	assert.Len(t, m.Drain(2), 1)
}
