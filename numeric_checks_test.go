package checkchain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/checkchain"
)

type order struct {
	Quantity int
	Price    float64
}

func TestRequiredNum(t *testing.T) {
	get := func(o order) int { return o.Quantity }

	t.Run("passes for non-zero value", func(t *testing.T) {
		check := checkchain.RequiredNum("Quantity", get)
		assert.True(t, check.Eval(order{Quantity: 1}))
		assert.Equal(t, "Quantity", check.Property)
		assert.Equal(t, "field is required", check.Message)
	})

	t.Run("fails for zero value", func(t *testing.T) {
		check := checkchain.RequiredNum("Quantity", get)
		assert.False(t, check.Eval(order{}))
	})

	t.Run("passes for negative value", func(t *testing.T) {
		check := checkchain.RequiredNum("Quantity", get)
		assert.True(t, check.Eval(order{Quantity: -1}))
	})
}

func TestMinNum(t *testing.T) {
	get := func(o order) int { return o.Quantity }

	t.Run("passes at the boundary", func(t *testing.T) {
		check := checkchain.MinNum("Quantity", get, 18)
		assert.True(t, check.Eval(order{Quantity: 18}))
		assert.Equal(t, "must be at least 18", check.Message)
	})

	t.Run("passes above the boundary", func(t *testing.T) {
		check := checkchain.MinNum("Quantity", get, 18)
		assert.True(t, check.Eval(order{Quantity: 30}))
	})

	t.Run("fails below the boundary", func(t *testing.T) {
		check := checkchain.MinNum("Quantity", get, 18)
		assert.False(t, check.Eval(order{Quantity: 17}))
	})

	t.Run("works with floats", func(t *testing.T) {
		check := checkchain.MinNum("Price", func(o order) float64 { return o.Price }, 0.01)
		assert.True(t, check.Eval(order{Price: 0.01}))
		assert.False(t, check.Eval(order{Price: 0.009}))
	})
}

func TestMaxNum(t *testing.T) {
	get := func(o order) int { return o.Quantity }

	t.Run("passes at the boundary", func(t *testing.T) {
		check := checkchain.MaxNum("Quantity", get, 100)
		assert.True(t, check.Eval(order{Quantity: 100}))
		assert.Equal(t, "must be at most 100", check.Message)
	})

	t.Run("fails above the boundary", func(t *testing.T) {
		check := checkchain.MaxNum("Quantity", get, 100)
		assert.False(t, check.Eval(order{Quantity: 101}))
	})
}

func TestBetweenNum(t *testing.T) {
	get := func(o order) int { return o.Quantity }

	t.Run("passes inside and on the bounds", func(t *testing.T) {
		check := checkchain.BetweenNum("Quantity", get, 1, 10)
		assert.True(t, check.Eval(order{Quantity: 1}))
		assert.True(t, check.Eval(order{Quantity: 5}))
		assert.True(t, check.Eval(order{Quantity: 10}))
		assert.Equal(t, "must be between 1 and 10", check.Message)
	})

	t.Run("fails outside the bounds", func(t *testing.T) {
		check := checkchain.BetweenNum("Quantity", get, 1, 10)
		assert.False(t, check.Eval(order{Quantity: 0}))
		assert.False(t, check.Eval(order{Quantity: 11}))
	})
}
