package logic

import (
	"fmt"

	"github.com/patrickwarner/gitdrills/internal/models"
)

// CheckoutCart returns the cart total, or ErrEmptyCart.
func CheckoutCart(cart models.Cart) (float64, error) {
	if len(cart) == 0 {
		return 0, ErrEmptyCart
	}
	return cart.Total(), nil
}

// ApplyDiscount takes percent off total and rounds the result to cents.
func ApplyDiscount(total, percent float64) (float64, error) {
	if percent < 0 || percent > 100 {
		return 0, fmt.Errorf("%w: got %v", ErrInvalidDiscount, percent)
	}
	return models.RoundCents(total * (1 - percent/100)), nil
}
