package mplwe

import "github.com/KatinkaBou/Middle-Product-LWE-PKE-Scheme/core/modpoly"

// SecretKey is a uniformly random polynomial with 2n-1 coefficients
// (degree <= 2n-2). It is never mutated after generation.
type SecretKey struct {
	Value modpoly.Poly
}

// PKSample is one noisy middle-product sample (a, b = MP(a, s) + 2e).
type PKSample struct {
	A modpoly.Poly // uniform, n-1 coefficients
	B modpoly.Poly // noisy middle product, n coefficients
}

// PublicKey holds the t samples published alongside a secret key.
type PublicKey struct {
	Samples []PKSample
}

// Ciphertext is the pair (c1, c2) produced by one Encrypt call.
type Ciphertext struct {
	C1 modpoly.Poly
	C2 modpoly.Poly
}
