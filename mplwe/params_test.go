package mplwe

import (
	"errors"
	"fmt"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
	"github.com/tuneinsight/lattigo/v5/ring"
)

func TestParametersDerivation(t *testing.T) {
	params, err := NewParametersFromSecurity(16)
	require.NoError(t, err)

	require.Equal(t, 16, params.Lambda())
	require.Equal(t, 16, params.N())
	require.Equal(t, uint64(6823), params.Q())
	require.Equal(t, 3, params.T())
	require.Equal(t, 0.001, params.Alpha())
	require.Equal(t, 8, params.MessageLength())
	require.InDelta(t, 6.823, params.Sigma(), 1e-9)
	require.Equal(t, params.Q(), params.RingQ().Modulus)
}

func TestParametersOddLambdaRoundsUp(t *testing.T) {
	p15, err := NewParametersFromSecurity(15)
	require.NoError(t, err)
	p16, err := NewParametersFromSecurity(16)
	require.NoError(t, err)

	require.Equal(t, 16, p15.N())
	require.Equal(t, p16.Q(), p15.Q())
	require.Equal(t, p16.T(), p15.T())
}

func TestParametersDeterminism(t *testing.T) {
	cache := NewParameterCache()

	a, err := cache.Get(24)
	require.NoError(t, err)
	b, err := cache.Get(24)
	require.NoError(t, err)
	require.Empty(t, cmp.Diff(a, b))

	// a fresh derivation after Reset yields the identical tuple
	cache.Reset()
	c, err := cache.Get(24)
	require.NoError(t, err)
	require.Empty(t, cmp.Diff(a, c))

	// and so does an independent cache
	d, err := NewParameterCache().Get(24)
	require.NoError(t, err)
	require.True(t, a.Equal(d))
}

func TestParametersModulus(t *testing.T) {
	for lambda := MinSecurity; lambda <= 64; lambda++ {
		t.Run(fmt.Sprintf("lambda=%d", lambda), func(t *testing.T) {
			params, err := NewParametersFromSecurity(lambda)
			require.NoError(t, err)

			n := float64(params.N())
			target := uint64(math.Round(n * n * n * math.Sqrt(math.Log(n))))

			require.True(t, ring.IsPrime(params.Q()), "q = %d is not prime", params.Q())
			require.GreaterOrEqual(t, params.Q(), target)
			require.Zero(t, params.N()&1, "n must be even")
			require.Equal(t, int(math.Round(math.Log(n))), params.T())
		})
	}
}

func TestParametersRejectOutOfRange(t *testing.T) {
	for _, lambda := range []int{-4, 0, 1, 2, 3, MaxSecurity + 1} {
		_, err := NewParametersFromSecurity(lambda)
		require.Error(t, err)

		var confErr *ConfigurationError
		require.True(t, errors.As(err, &confErr), "expected ConfigurationError for lambda=%d, got %v", lambda, err)
	}
}
