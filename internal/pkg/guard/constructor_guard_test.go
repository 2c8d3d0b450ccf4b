package guard_test

import (
	"errors"
	"testing"

	"agrilease/internal/pkg/guard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstructorGuard_Validate(t *testing.T) {
	t.Run("constructed_guard_returns_nil", func(t *testing.T) {
		g := guard.NewConstructorGuard()

		require.NoError(t, g.Validate(errors.New("not constructed")))
		require.NoError(t, g.Validate(nil))
	})

	t.Run("zero_value_guard_returns_custom_error", func(t *testing.T) {
		var g guard.ConstructorGuard
		expected := errors.New("entity not constructed")

		err := g.Validate(expected)

		require.Error(t, err)
		assert.Equal(t, expected, err)
	})

	t.Run("zero_value_guard_returns_default_error_when_nil", func(t *testing.T) {
		var g guard.ConstructorGuard

		err := g.Validate(nil)

		require.Error(t, err)
		assert.Equal(t, guard.ErrDefaultConstructorGuard, err)
	})
}

// TestConstructorGuardUsage demonstrates the intended embedding pattern.
func TestConstructorGuardUsage(t *testing.T) {
	type commitment struct {
		quantity int
		guard    guard.ConstructorGuard
	}

	errNotConstructed := errors.New("commitment must be created via newCommitment")

	newCommitment := func(quantity int) (commitment, error) {
		if quantity <= 0 {
			return commitment{}, errors.New("quantity must be positive")
		}
		return commitment{quantity: quantity, guard: guard.NewConstructorGuard()}, nil
	}

	t.Run("constructed_instance_validates", func(t *testing.T) {
		c, err := newCommitment(40)
		require.NoError(t, err)
		require.NoError(t, c.guard.Validate(errNotConstructed))
	})

	t.Run("zero_value_fails_validation", func(t *testing.T) {
		var c commitment
		err := c.guard.Validate(errNotConstructed)
		require.Error(t, err)
		assert.Equal(t, errNotConstructed, err)
	})
}

func TestConstructorGuard_PassedByValue(t *testing.T) {
	g := guard.NewConstructorGuard()
	copied := g

	require.NoError(t, g.Validate(errors.New("boom")))
	require.NoError(t, copied.Validate(errors.New("boom")))
}
