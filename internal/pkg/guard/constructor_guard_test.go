package guard_test

import (
	"errors"
	"testing"

	"foodjourney/internal/pkg/guard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConstructorGuard(t *testing.T) {
	t.Run("creates_properly_constructed_guard", func(t *testing.T) {
		// When
		g := guard.NewConstructorGuard()

		// Then
		require.NoError(t, g.Validate(errors.New("journey not constructed")))
		require.NoError(t, g.Validate(nil))
	})
}

func TestConstructorGuard_Validate(t *testing.T) {
	t.Run("zero_value_guard_returns_custom_error", func(t *testing.T) {
		// Given
		var g guard.ConstructorGuard
		expectedError := errors.New("entity not constructed")

		// When
		err := g.Validate(expectedError)

		// Then
		require.Error(t, err)
		assert.Equal(t, expectedError, err)
	})

	t.Run("zero_value_guard_returns_default_error_when_nil", func(t *testing.T) {
		// Given
		var g guard.ConstructorGuard

		// When
		err := g.Validate(nil)

		// Then
		require.ErrorIs(t, err, guard.ErrDefaultConstructorGuard)
	})
}

// TestConstructorGuardUsageExample shows the guard embedded in a seed-like value.
func TestConstructorGuardUsageExample(t *testing.T) {
	type seed struct {
		names []string
		guard guard.ConstructorGuard
	}

	errSeedNotConstructed := errors.New("seed must be created via newSeed")

	newSeed := func(names ...string) (seed, error) {
		if len(names) == 0 {
			return seed{}, errors.New("at least one name is required")
		}
		return seed{names: names, guard: guard.NewConstructorGuard()}, nil
	}

	t.Run("valid_construction_through_constructor", func(t *testing.T) {
		s, err := newSeed("Anand Hotel", "Punjabi Rasoi")

		require.NoError(t, err)
		require.NoError(t, s.guard.Validate(errSeedNotConstructed))
		assert.Len(t, s.names, 2)
	})

	t.Run("struct_literal_fails_validation", func(t *testing.T) {
		s := seed{names: []string{"Anand Hotel"}}

		require.ErrorIs(t, s.guard.Validate(errSeedNotConstructed), errSeedNotConstructed)
	})
}
