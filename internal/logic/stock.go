package logic

import "fmt"

// Stock is a single product's unit count.
type Stock struct {
	Units int
}

// Add increases the stock level and returns the new level.
func (s *Stock) Add(units int) (int, error) {
	if units < 0 {
		return s.Units, fmt.Errorf("%w: add %d", ErrNegativeUnits, units)
	}
	s.Units += units
	return s.Units, nil
}

// Remove decreases the stock level. It fails without changing the level
// when units is negative or more than are held.
func (s *Stock) Remove(units int) (int, error) {
	if units < 0 {
		return s.Units, fmt.Errorf("%w: remove %d", ErrNegativeUnits, units)
	}
	if units > s.Units {
		return s.Units, fmt.Errorf("%w: have %d, want %d", ErrInsufficientStock, s.Units, units)
	}
	s.Units -= units
	return s.Units, nil
}

// OutOfStock reports whether no units remain.
func (s *Stock) OutOfStock() bool {
	return s.Units <= 0
}
