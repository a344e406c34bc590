package vending

import (
	"math"
	"slices"

	"vending-server/internal/domain/character"
	"vending-server/internal/domain/item"
)

// PurchaseLine is one (cart index, amount) pair a buyer asks for.
type PurchaseLine struct {
	CartIndex int `json:"cart_index"`
	Amount    int `json:"amount"`
}

// Buyer is what the reconciler reads from the buyer's live state.
type Buyer interface {
	Zeny() int64
	Weight() (current, limit int)
	InventoryFreeSlots() int
	CheckAddItem(s item.Stack, amount int, stackable bool) item.AddCheck
}

type PurchasePolicy struct {
	MaxZeny  int64
	MaxItems int
	// OverMax lets a sale go through even when it pushes the seller past
	// MaxZeny; the surplus is then lost.
	OverMax bool
}

// PlannedItem is one validated transfer of a purchase.
type PlannedItem struct {
	LineIndex int
	CartIndex int
	Amount    int
	Price     int64
	Item      item.Stack
	Def       item.Definition
}

// Plan is the fully validated outcome of a purchase request, computed
// against a private copy of the shop lines.
type Plan struct {
	Total int64
	Items []PlannedItem
}

// PurchaseInput groups the state a plan is computed from. Lines must be a
// snapshot taken under the shop lock; it is modified in place. SoldOut holds
// the cart indexes of lines that were listed and have since sold out.
type PurchaseInput struct {
	Lines      []Line
	SoldOut    []int
	Cart       CartView
	Catalog    item.Catalog
	Buyer      Buyer
	SellerZeny int64
	Requests   []PurchaseLine
}

// CartView reads one seller cart slot.
type CartView interface {
	CartItem(index int) (item.Stack, bool)
}

// PlanPurchase validates a multi-line request and returns the transfers
// to apply. No state outside in.Lines is touched.
func PlanPurchase(in PurchaseInput, policy PurchasePolicy) (Plan, error) {
	if n := len(in.Requests); n < 1 || n > policy.MaxItems || n > len(in.Lines)+len(in.SoldOut) {
		return Plan{}, Reject(ReasonInvalidRequest)
	}

	curWeight, maxWeight := in.Buyer.Weight()
	blank := in.Buyer.InventoryFreeSlots()

	var (
		total   int64
		weight  int
		newStks int
		pending = make(map[item.Stack]int, len(in.Requests))
		items   = make([]PlannedItem, 0, len(in.Requests))
	)
	for _, req := range in.Requests {
		if req.Amount <= 0 || req.CartIndex < 0 || req.CartIndex >= character.MaxCart {
			return Plan{}, Reject(ReasonInvalidRequest)
		}
		j := indexOfCart(in.Lines, req.CartIndex)
		if j < 0 {
			if slices.Contains(in.SoldOut, req.CartIndex) {
				return Plan{}, newPurchaseError(ReasonInsufficientStock, req.CartIndex, 0)
			}
			return Plan{}, newPurchaseError(ReasonItemNotListed, req.CartIndex, req.Amount)
		}
		line := &in.Lines[j]

		cost, ok := mulAdd(total, line.Price, int64(req.Amount))
		if !ok || cost > policy.MaxZeny {
			return Plan{}, newPurchaseError(ReasonCurrencyOverflow, req.CartIndex, req.Amount)
		}
		total = cost
		if !policy.OverMax && in.SellerZeny > policy.MaxZeny-total {
			return Plan{}, newPurchaseError(ReasonCurrencyOverflow, req.CartIndex, line.Amount)
		}

		stack, ok := in.Cart.CartItem(req.CartIndex)
		if !ok {
			return Plan{}, newPurchaseError(ReasonInsufficientStock, req.CartIndex, 0)
		}
		def, ok := in.Catalog.Lookup(stack.NameID)
		if !ok {
			return Plan{}, newPurchaseError(ReasonItemNotListed, req.CartIndex, req.Amount)
		}
		weight += def.Weight * req.Amount
		if curWeight+weight > maxWeight {
			return Plan{}, newPurchaseError(ReasonOverweight, req.CartIndex, req.Amount)
		}

		// The listing may be ahead of the cart; sell only what is there.
		if line.Amount > stack.Amount {
			line.Amount = stack.Amount
		}
		if line.Amount < req.Amount {
			return Plan{}, newPurchaseError(ReasonInsufficientStock, req.CartIndex, line.Amount)
		}
		line.Amount -= req.Amount

		// Lines of the same kind land in the same buyer stack, so the check
		// runs against what this request already added.
		kind := kindOf(stack)
		prior := pending[kind]
		pending[kind] = prior + req.Amount
		switch in.Buyer.CheckAddItem(stack, prior+req.Amount, def.Stackable) {
		case item.AddNewStack:
			if def.Stackable && prior > 0 {
				break
			}
			newStks++
			if newStks > blank {
				return Plan{}, newPurchaseError(ReasonInventoryFull, req.CartIndex, req.Amount)
			}
		case item.AddOverAmount:
			return Plan{}, newPurchaseError(ReasonTooManyItems, req.CartIndex, req.Amount)
		}

		items = append(items, PlannedItem{
			LineIndex: j,
			CartIndex: req.CartIndex,
			Amount:    req.Amount,
			Price:     line.Price,
			Item:      stack,
			Def:       def,
		})
	}

	if total > in.Buyer.Zeny() {
		return Plan{}, newPurchaseError(ReasonInsufficientFunds, -1, 0)
	}
	return Plan{Total: total, Items: items}, nil
}

// TotalOf sums the cost of items. For any subset of a plan's items it is
// bounded by the plan total and cannot overflow.
func TotalOf(items []PlannedItem) int64 {
	var total int64
	for _, it := range items {
		total += it.Price * int64(it.Amount)
	}
	return total
}

func kindOf(s item.Stack) item.Stack {
	s.RowID = 0
	s.Amount = 0
	return s
}

func indexOfCart(lines []Line, cartIndex int) int {
	for i, l := range lines {
		if l.CartIndex == cartIndex {
			return i
		}
	}
	return -1
}

// mulAdd returns acc + price*amount, false on int64 overflow.
func mulAdd(acc, price, amount int64) (int64, bool) {
	if price < 0 || amount < 0 {
		return 0, false
	}
	if price != 0 && amount > (math.MaxInt64-acc)/price {
		return 0, false
	}
	return acc + price*amount, true
}

// NetOfTax is what the seller receives for a sale of total with a tax
// rate in basis points (100 = 1%).
func NetOfTax(total, basisPoints int64) int64 {
	if basisPoints <= 0 {
		return total
	}
	if basisPoints >= 10000 {
		return 0
	}
	tax := total/10000*basisPoints + (total%10000)*basisPoints/10000
	return total - tax
}
