package logic

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/patrickwarner/gitdrills/internal/models"
)

func TestValidation(t *testing.T) {
	assert.False(t, ValidUsername("ab"))
	assert.True(t, ValidUsername("abc"))
	assert.True(t, ValidUsername("aaaaaaaaaaaaaaaaaaaa"))
	assert.False(t, ValidUsername("aaaaaaaaaaaaaaaaaaaaa"))

	assert.True(t, ValidEmail("user@example.com"))
	assert.False(t, ValidEmail("user.example.com"))
	assert.False(t, ValidEmail("user@example"))

	assert.True(t, ValidPassword("Pass123!"))
	assert.False(t, ValidPassword("Pass123"))
}

func TestCheckoutCart(t *testing.T) {
	_, err := CheckoutCart(nil)
	assert.ErrorIs(t, err, ErrEmptyCart)

	total, err := CheckoutCart(models.Cart{
		{ProductID: "PROD001", Name: "Laptop", Qty: 1, Price: 999.99},
		{ProductID: "PROD002", Name: "Mouse", Qty: 2, Price: 29.99},
	})
	require.NoError(t, err)
	assert.Equal(t, 1059.97, total)
}

func TestApplyDiscount(t *testing.T) {
	got, err := ApplyDiscount(1059.97, 10)
	require.NoError(t, err)
	assert.Equal(t, 953.97, got)

	got, err = ApplyDiscount(50, 0)
	require.NoError(t, err)
	assert.Equal(t, 50.0, got)

	_, err = ApplyDiscount(50, 101)
	assert.ErrorIs(t, err, ErrInvalidDiscount)
	_, err = ApplyDiscount(50, -1)
	assert.ErrorIs(t, err, ErrInvalidDiscount)
}

func TestStock(t *testing.T) {
	s := &Stock{Units: 100}
	level, err := s.Add(50)
	require.NoError(t, err)
	assert.Equal(t, 150, level)

	left, err := s.Remove(80)
	require.NoError(t, err)
	assert.Equal(t, 70, left)

	left, err = s.Remove(71)
	assert.ErrorIs(t, err, ErrInsufficientStock)
	assert.Equal(t, 70, left)
	assert.False(t, s.OutOfStock())

	_, err = s.Remove(70)
	require.NoError(t, err)
	assert.True(t, s.OutOfStock())
}

func TestStockRejectsNegativeUnits(t *testing.T) {
	s := &Stock{Units: 10}

	level, err := s.Add(-5)
	assert.ErrorIs(t, err, ErrNegativeUnits)
	assert.Equal(t, 10, level)

	level, err = s.Remove(-5)
	assert.ErrorIs(t, err, ErrNegativeUnits)
	assert.Equal(t, 10, level)
	assert.Equal(t, 10, s.Units)
}

func TestRetrySucceedsOnSecondAttempt(t *testing.T) {
	errNetwork := errors.New("network error")
	attempts, err := Retry(context.Background(), 3, func(attempt int) error {
		if attempt >= 1 {
			return nil
		}
		return errNetwork
	})
	require.NoError(t, err)
	assert.Equal(t, 2, attempts)
}

func TestRetryExhausted(t *testing.T) {
	errNetwork := errors.New("network error")
	attempts, err := Retry(context.Background(), 3, func(int) error { return errNetwork })
	assert.Equal(t, 3, attempts)
	assert.ErrorIs(t, err, ErrRetriesExhausted)
	assert.ErrorIs(t, err, errNetwork)
}

func TestRetryZeroAttempts(t *testing.T) {
	attempts, err := Retry(context.Background(), 0, func(int) error { return nil })
	assert.Equal(t, 0, attempts)
	assert.ErrorIs(t, err, ErrRetriesExhausted)
}

func TestRetryStopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	attempts, err := Retry(ctx, 5, func(int) error {
		cancel()
		return errors.New("boom")
	})
	assert.Equal(t, 1, attempts)
	assert.ErrorIs(t, err, context.Canceled)
}
