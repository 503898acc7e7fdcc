package logic

import "errors"

var (
	// ErrEmptyCart is returned when checking out a cart with no items.
	ErrEmptyCart = errors.New("cart is empty")
	// ErrInvalidDiscount is returned for discount percentages outside [0,100].
	ErrInvalidDiscount = errors.New("discount must be between 0 and 100 percent")
	// ErrInsufficientStock is returned when removing more units than are held.
	ErrInsufficientStock = errors.New("insufficient stock")
	// ErrNegativeUnits is returned when a stock change is given a negative count.
	ErrNegativeUnits = errors.New("units must not be negative")
	// ErrRetriesExhausted is returned when every retry attempt failed.
	ErrRetriesExhausted = errors.New("retries exhausted")
)
