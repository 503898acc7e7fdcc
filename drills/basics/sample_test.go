package basics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/patrickwarner/gitdrills/internal/sampleapp"
)

func TestArithmetic(t *testing.T) {
	t.Run("add", func(t *testing.T) {
		assert.Equal(t, 5, sampleapp.Add(2, 3))
	})

	t.Run("add negatives", func(t *testing.T) {
		assert.Equal(t, -2, sampleapp.Add(-1, -1))
	})

	t.Run("subtract", func(t *testing.T) {
		assert.Equal(t, 6, sampleapp.Subtract(10, 4))
	})

	t.Run("multiply", func(t *testing.T) {
		assert.Equal(t, 21, sampleapp.Multiply(3, 7))
	})

	t.Run("divide", func(t *testing.T) {
		got, err := sampleapp.Divide(10, 2)
		require.NoError(t, err)
		assert.Equal(t, 5.0, got)
	})

	t.Run("divide by zero", func(t *testing.T) {
		_, err := sampleapp.Divide(5, 0)
		assert.ErrorIs(t, err, sampleapp.ErrDivideByZero)
	})
}

func TestHelpers(t *testing.T) {
	t.Run("greet", func(t *testing.T) {
		assert.Equal(t, "Hello, Alice!", sampleapp.Greet("Alice"))
	})

	t.Run("palindrome", func(t *testing.T) {
		assert.True(t, sampleapp.IsPalindrome("racecar"))
	})

	t.Run("palindrome with spaces", func(t *testing.T) {
		assert.True(t, sampleapp.IsPalindrome("A man a plan a canal Panama"))
	})

	t.Run("not a palindrome", func(t *testing.T) {
		assert.False(t, sampleapp.IsPalindrome("hello"))
	})
}
