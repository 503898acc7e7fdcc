package models

import "math"

// CartItem is one line of a shopping cart.
type CartItem struct {
	ProductID string  `json:"product_id"`
	Name      string  `json:"name"`
	Qty       int     `json:"qty"`
	Price     float64 `json:"price"`
}

// Cart is an ordered list of items.
type Cart []CartItem

// Total sums price times quantity, rounded to cents.
func (c Cart) Total() float64 {
	var total float64
	for _, item := range c {
		total += item.Price * float64(item.Qty)
	}
	return RoundCents(total)
}

// RoundCents rounds an amount to two decimal places.
func RoundCents(v float64) float64 {
	return math.Round(v*100) / 100
}

// OrderRequest is the payload for creating an order.
type OrderRequest struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
	UserID    string `json:"user_id"`
}

// Order status values.
const (
	OrderPending   = "pending"
	OrderCancelled = "cancelled"
)

// Order is a placed order.
type Order struct {
	ID     string  `json:"id"`
	Status string  `json:"status"`
	Total  float64 `json:"total"`
}

// CardPayment is a credit card charge request.
type CardPayment struct {
	CardNumber string  `json:"card_number"`
	Expiry     string  `json:"expiry"`
	CVV        string  `json:"cvv"`
	Amount     float64 `json:"amount"`
}
