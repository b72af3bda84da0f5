package guard_test

import (
	"errors"
	"sync"
	"testing"

	"stockyard/internal/pkg/guard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstructorGuard_Validate(t *testing.T) {
	t.Run("constructed_guard_returns_nil", func(t *testing.T) {
		g := guard.NewConstructorGuard()

		require.NoError(t, g.Validate(errors.New("not constructed")))
		require.NoError(t, g.Validate(nil))
	})

	t.Run("zero_value_guard_returns_given_error", func(t *testing.T) {
		var g guard.ConstructorGuard
		expected := errors.New("ticket must be created via NewTicket")

		err := g.Validate(expected)

		require.Error(t, err)
		assert.Equal(t, expected, err)
	})

	t.Run("zero_value_guard_falls_back_to_default_error", func(t *testing.T) {
		var g guard.ConstructorGuard

		err := g.Validate(nil)

		assert.Equal(t, guard.ErrDefaultConstructorGuard, err)
		assert.Equal(t, "object must be created via its constructor", err.Error())
	})
}

// TestConstructorGuard_EmbeddedInValueObject mirrors how commands embed the guard.
func TestConstructorGuard_EmbeddedInValueObject(t *testing.T) {
	type weighIn struct {
		loadedKg float64
		guard    guard.ConstructorGuard
	}
	errNotConstructed := errors.New("weighIn must be created via newWeighIn")

	newWeighIn := func(kg float64) (weighIn, error) {
		if kg <= 0 {
			return weighIn{}, errors.New("loaded weight must be positive")
		}
		return weighIn{loadedKg: kg, guard: guard.NewConstructorGuard()}, nil
	}

	w, err := newWeighIn(2850)
	require.NoError(t, err)
	require.NoError(t, w.guard.Validate(errNotConstructed))

	var zero weighIn
	assert.Equal(t, errNotConstructed, zero.guard.Validate(errNotConstructed))

	_, err = newWeighIn(0)
	require.Error(t, err)
}

func TestConstructorGuard_ConcurrentValidate(t *testing.T) {
	g := guard.NewConstructorGuard()
	copied := g

	var wg sync.WaitGroup
	for range 50 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 100 {
				assert.NoError(t, copied.Validate(nil))
			}
		}()
	}
	wg.Wait()
}

func BenchmarkConstructorGuard_Validate(b *testing.B) {
	g := guard.NewConstructorGuard()
	err := errors.New("not constructed")
	b.ResetTimer()
	for range b.N {
		_ = g.Validate(err)
	}
}
