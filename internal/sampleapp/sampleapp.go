// Package sampleapp holds the small arithmetic and string helpers that the
// git basics drills edit, diff and stage.
package sampleapp

import (
	"errors"
	"strings"
)

// ErrDivideByZero is returned by Divide when the divisor is zero.
var ErrDivideByZero = errors.New("cannot divide by zero")

// Add returns the sum of two numbers.
func Add(a, b int) int {
	return a + b
}

// Subtract returns the difference of two numbers.
func Subtract(a, b int) int {
	return a - b
}

// Multiply returns the product of two numbers.
func Multiply(a, b int) int {
	return a * b
}

// Divide returns the quotient of two numbers. It returns ErrDivideByZero if b is 0.
func Divide(a, b float64) (float64, error) {
	if b == 0 {
		return 0, ErrDivideByZero
	}
	return a / b, nil
}

// Greet returns a greeting message.
func Greet(name string) string {
	return "Hello, " + name + "!"
}

// IsPalindrome reports whether text reads the same backwards, ignoring case
// and spaces.
func IsPalindrome(text string) bool {
	cleaned := []rune(strings.ReplaceAll(strings.ToLower(text), " ", ""))
	for i, j := 0, len(cleaned)-1; i < j; i, j = i+1, j-1 {
		if cleaned[i] != cleaned[j] {
			return false
		}
	}
	return true
}
