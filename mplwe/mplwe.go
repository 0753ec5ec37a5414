// Package mplwe implements a public-key bit-string encryption scheme
// whose security rests on the middle-product learning-with-errors
// (MP-LWE) hardness assumption.
//
// All quantities are governed by a parameter set (n, q, t, alpha)
// derived deterministically from a security parameter lambda and
// memoized process-wide, so that key generation, encryption and
// decryption interoperate whenever they are given the same lambda.
// Messages are n/2-bit strings. The underlying polynomial arithmetic
// lives in core/modpoly.
package mplwe

// GenKeyPair samples a key pair under the parameters derived from
// lambda, using a cryptographically secure randomness source.
func GenKeyPair(lambda int) (*SecretKey, *PublicKey, error) {
	params, err := NewParametersFromSecurity(lambda)
	if err != nil {
		return nil, nil, err
	}
	return NewKeyGenerator(params).GenKeyPairNew()
}

// Encrypt encrypts msg, a slice of n/2 bits, under pk and the
// parameters derived from lambda.
func Encrypt(pk *PublicKey, msg []uint64, lambda int) (*Ciphertext, error) {
	params, err := NewParametersFromSecurity(lambda)
	if err != nil {
		return nil, err
	}
	return NewEncryptor(params).EncryptNew(pk, msg)
}

// Decrypt recovers the n/2 message bits of ct under sk and the
// parameters derived from lambda.
func Decrypt(ct *Ciphertext, sk *SecretKey, lambda int) ([]uint64, error) {
	params, err := NewParametersFromSecurity(lambda)
	if err != nil {
		return nil, err
	}
	return NewDecryptor(params).DecryptNew(ct, sk)
}
