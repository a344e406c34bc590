package vending

import (
	"fmt"

	"vending-server/internal/pkg/errs"
)

// Shop lifecycle errors.
var (
	ErrCannotOpen       = errs.NewKind("cannot open shop in current state", errs.ErrStateConflict)
	ErrAlreadyVending   = errs.NewKind("seller is already vending", errs.ErrStateConflict)
	ErrNoCart           = errs.NewKind("vending skill or cart missing", errs.ErrValidation)
	ErrInvalidItemCount = errs.NewKind("invalid number of shop items", errs.ErrValidation)
	ErrNoValidItems     = errs.NewKind("no valid items to vend", errs.ErrValidation)
	ErrNotVending       = errs.NewKind("seller is not vending", errs.ErrStateConflict)
	ErrTradeForbidden   = errs.NewKind("trading is not permitted for this character", errs.ErrValidation)
)

// Reason is the client-facing outcome code of a purchase attempt.
type Reason uint8

const (
	ReasonOK Reason = iota
	ReasonShopNotFound
	ReasonShopChanged
	ReasonOutOfRange
	ReasonInvalidRequest
	ReasonItemNotListed
	ReasonInsufficientFunds
	ReasonCurrencyOverflow
	ReasonOverweight
	ReasonInsufficientStock
	ReasonInventoryFull
	ReasonTooManyItems
)

var reasonNames = map[Reason]string{
	ReasonOK:                "ok",
	ReasonShopNotFound:      "shop_not_found",
	ReasonShopChanged:       "shop_changed",
	ReasonOutOfRange:        "out_of_range",
	ReasonInvalidRequest:    "invalid_request",
	ReasonItemNotListed:     "item_not_listed",
	ReasonInsufficientFunds: "insufficient_funds",
	ReasonCurrencyOverflow:  "currency_overflow",
	ReasonOverweight:        "overweight",
	ReasonInsufficientStock: "insufficient_stock",
	ReasonInventoryFull:     "inventory_full",
	ReasonTooManyItems:      "too_many_items",
}

func (r Reason) String() string {
	if s, ok := reasonNames[r]; ok {
		return s
	}
	return fmt.Sprintf("reason(%d)", uint8(r))
}

// Purchase outcome sentinels; PurchaseError unwraps to one of these.
var (
	ErrShopNotFound      = errs.NewKind("shop not found", errs.ErrStateConflict)
	ErrShopChanged       = errs.NewKind("shop has changed", errs.ErrStateConflict)
	ErrOutOfRange        = errs.NewKind("shop out of range", errs.ErrValidation)
	ErrInvalidRequest    = errs.NewKind("invalid purchase request", errs.ErrValidation)
	ErrItemNotListed     = errs.NewKind("item not listed in shop", errs.ErrValidation)
	ErrInsufficientFunds = errs.NewKind("insufficient funds", errs.ErrResourceLimit)
	ErrCurrencyOverflow  = errs.NewKind("currency overflow", errs.ErrResourceLimit)
	ErrOverweight        = errs.NewKind("overweight", errs.ErrResourceLimit)
	ErrInsufficientStock = errs.NewKind("insufficient stock", errs.ErrStateConflict)
	ErrInventoryFull     = errs.NewKind("inventory full", errs.ErrResourceLimit)
	ErrTooManyItems      = errs.NewKind("too many items of one kind", errs.ErrResourceLimit)
)

var reasonErrors = map[Reason]error{
	ReasonShopNotFound:      ErrShopNotFound,
	ReasonShopChanged:       ErrShopChanged,
	ReasonOutOfRange:        ErrOutOfRange,
	ReasonInvalidRequest:    ErrInvalidRequest,
	ReasonItemNotListed:     ErrItemNotListed,
	ReasonInsufficientFunds: ErrInsufficientFunds,
	ReasonCurrencyOverflow:  ErrCurrencyOverflow,
	ReasonOverweight:        ErrOverweight,
	ReasonInsufficientStock: ErrInsufficientStock,
	ReasonInventoryFull:     ErrInventoryFull,
	ReasonTooManyItems:      ErrTooManyItems,
}

// PurchaseError reports a rejected purchase together with the line that
// hit the limit when one is known (CartIndex is -1 otherwise).
type PurchaseError struct {
	Reason    Reason
	CartIndex int
	Amount    int
}

func newPurchaseError(r Reason, cartIndex, amount int) *PurchaseError {
	return &PurchaseError{Reason: r, CartIndex: cartIndex, Amount: amount}
}

// Reject builds a PurchaseError that is not tied to a specific line.
func Reject(r Reason) *PurchaseError {
	return newPurchaseError(r, -1, 0)
}

func (e *PurchaseError) Error() string {
	if e.CartIndex < 0 {
		return "purchase rejected: " + e.Reason.String()
	}
	return fmt.Sprintf("purchase rejected: %s (cart index %d, amount %d)", e.Reason, e.CartIndex, e.Amount)
}

func (e *PurchaseError) Unwrap() error {
	return reasonErrors[e.Reason]
}

// ReasonOf extracts the purchase reason from err, ReasonOK when err is nil.
func ReasonOf(err error) (Reason, bool) {
	if err == nil {
		return ReasonOK, true
	}
	for r, sentinel := range reasonErrors {
		if errs.Is(err, sentinel) {
			return r, true
		}
	}
	return 0, false
}
