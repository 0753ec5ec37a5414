package mplwe

import (
	"fmt"

	"github.com/tuneinsight/lattigo/v5/utils/sampling"
)

// KeyGenerator samples secret/public key pairs for a parameter set.
type KeyGenerator struct {
	params         Parameters
	uniformSampler *UniformSampler
	errGen         *ErrGen
}

// NewKeyGenerator creates a KeyGenerator backed by a fresh
// cryptographically secure PRNG.
func NewKeyGenerator(params Parameters) *KeyGenerator {
	prng, err := sampling.NewPRNG()
	if err != nil {
		// Sanity check, this error should not happen.
		panic(err)
	}
	return NewKeyGeneratorFromPRNG(params, prng)
}

// NewKeyGeneratorFromPRNG creates a KeyGenerator reading all randomness
// from prng. Use a keyed PRNG for reproducible key generation.
func NewKeyGeneratorFromPRNG(params Parameters, prng sampling.PRNG) *KeyGenerator {
	return &KeyGenerator{
		params:         params,
		uniformSampler: NewUniformSampler(prng, params.RingQ()),
		errGen:         NewErrorGenerator(prng, params.Sigma()),
	}
}

// GenSecretKeyNew samples a uniform secret key with 2n-1 coefficients.
func (kgen *KeyGenerator) GenSecretKeyNew() *SecretKey {
	return &SecretKey{Value: kgen.uniformSampler.ReadNew(2*kgen.params.N() - 1)}
}

// GenKeyPairNew samples a secret key and the t public samples
// (a_i, b_i = MP(a_i, s) + 2e_i).
func (kgen *KeyGenerator) GenKeyPairNew() (*SecretKey, *PublicKey, error) {
	ringQ := kgen.params.RingQ()
	n := kgen.params.N()

	sk := kgen.GenSecretKeyNew()

	samples := make([]PKSample, kgen.params.T())
	for i := range samples {
		a := kgen.uniformSampler.ReadNew(n - 1)

		m, err := ringQ.MiddleProduct(a, sk.Value, n, n-1)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot GenKeyPairNew: %w", err)
		}

		e := kgen.errGen.GenErrVec(n)
		if len(e) != len(m.Coeffs) {
			return nil, nil, &InternalInvariantError{
				Msg: fmt.Sprintf("error vector length %d does not match middle-product width %d", len(e), len(m.Coeffs)),
			}
		}
		for j := range e {
			e[j] *= 2
		}

		b, err := ringQ.AddNew(m, ringQ.NewPoly(e))
		if err != nil {
			return nil, nil, fmt.Errorf("cannot GenKeyPairNew: %w", err)
		}

		samples[i] = PKSample{A: a, B: b}
	}

	return sk, &PublicKey{Samples: samples}, nil
}
