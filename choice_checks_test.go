package checkchain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/checkchain"
)

type subscription struct {
	Plan string
	Seat int
}

func TestInList(t *testing.T) {
	get := func(s subscription) string { return s.Plan }
	plans := []string{"free", "pro", "enterprise"}

	t.Run("passes for allowed value", func(t *testing.T) {
		check := checkchain.InList("Plan", get, plans)
		assert.True(t, check.Eval(subscription{Plan: "pro"}))
		assert.Equal(t, "must be one of: [free pro enterprise]", check.Message)
	})

	t.Run("fails for value outside the list", func(t *testing.T) {
		check := checkchain.InList("Plan", get, plans)
		assert.False(t, check.Eval(subscription{Plan: "premium"}))
	})

	t.Run("works with numeric lists", func(t *testing.T) {
		check := checkchain.InList("Seat", func(s subscription) int { return s.Seat }, []int{1, 5, 10})
		assert.True(t, check.Eval(subscription{Seat: 5}))
		assert.False(t, check.Eval(subscription{Seat: 3}))
	})
}

func TestNotInList(t *testing.T) {
	get := func(s subscription) string { return s.Plan }
	reserved := []string{"admin", "root"}

	t.Run("passes for value outside the list", func(t *testing.T) {
		check := checkchain.NotInList("Plan", get, reserved)
		assert.True(t, check.Eval(subscription{Plan: "pro"}))
	})

	t.Run("fails for forbidden value", func(t *testing.T) {
		check := checkchain.NotInList("Plan", get, reserved)
		assert.False(t, check.Eval(subscription{Plan: "admin"}))
	})
}
