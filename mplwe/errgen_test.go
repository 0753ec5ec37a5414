package mplwe

import (
	"testing"

	"github.com/montanaflynn/stats"
	"github.com/stretchr/testify/require"
	"github.com/tuneinsight/lattigo/v5/utils/sampling"
)

func testPRNG(t testing.TB, key string) sampling.PRNG {
	prng, err := sampling.NewKeyedPRNG([]byte(key))
	require.NoError(t, err)
	return prng
}

func TestUniformSampler(t *testing.T) {
	params, err := NewParametersFromSecurity(16)
	require.NoError(t, err)

	s := NewUniformSampler(testPRNG(t, "uniform"), params.RingQ())
	p := s.ReadNew(1024)
	require.Len(t, p.Coeffs, 1024)
	require.Equal(t, params.Q(), p.Modulus)
	for _, c := range p.Coeffs {
		require.Less(t, c, params.Q())
	}

	// same seed, same polynomial
	p2 := NewUniformSampler(testPRNG(t, "uniform"), params.RingQ()).ReadNew(1024)
	require.Equal(t, p.Coeffs, p2.Coeffs)
}

func TestBinarySampler(t *testing.T) {
	params, err := NewParametersFromSecurity(16)
	require.NoError(t, err)

	p := NewBinarySampler(testPRNG(t, "binary"), params.RingQ()).ReadNew(512)
	require.Len(t, p.Coeffs, 512)

	var ones int
	for _, c := range p.Coeffs {
		require.LessOrEqual(t, c, uint64(1))
		ones += int(c)
	}
	// crude balance check, far looser than any plausible deviation
	require.Greater(t, ones, 128)
	require.Less(t, ones, 384)
}

func TestErrGen(t *testing.T) {
	params, err := NewParametersFromSecurity(16)
	require.NoError(t, err)
	sigma := params.Sigma()

	erg := NewErrorGenerator(testPRNG(t, "gaussian"), sigma)
	bound := int64(41) // ceil(6 * 6.823)

	samples := make([]float64, 20000)
	for i := range samples {
		e := erg.GenErr()
		require.GreaterOrEqual(t, e, -bound)
		require.LessOrEqual(t, e, bound)
		samples[i] = float64(e)
	}

	mean, err := stats.Mean(samples)
	require.NoError(t, err)
	require.InDelta(t, 0, mean, 0.25)

	stdev, err := stats.StandardDeviation(samples)
	require.NoError(t, err)
	require.InDelta(t, sigma, stdev, 0.1*sigma)
}

func TestErrGenVecLength(t *testing.T) {
	erg := NewErrorGenerator(testPRNG(t, "gaussian-vec"), 3.2)
	require.Len(t, erg.GenErrVec(17), 17)
}
