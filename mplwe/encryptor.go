package mplwe

import (
	"fmt"

	"github.com/tuneinsight/lattigo/v5/utils/sampling"
)

// Encryptor builds ciphertexts from a public key and an n/2-bit
// message.
type Encryptor struct {
	params        Parameters
	binarySampler *BinarySampler
}

// NewEncryptor creates an Encryptor backed by a fresh cryptographically
// secure PRNG.
func NewEncryptor(params Parameters) *Encryptor {
	prng, err := sampling.NewPRNG()
	if err != nil {
		// Sanity check, this error should not happen.
		panic(err)
	}
	return NewEncryptorFromPRNG(params, prng)
}

// NewEncryptorFromPRNG creates an Encryptor reading all randomness from
// prng.
func NewEncryptorFromPRNG(params Parameters, prng sampling.PRNG) *Encryptor {
	return &Encryptor{
		params:        params,
		binarySampler: NewBinarySampler(prng, params.RingQ()),
	}
}

// EncryptNew encrypts msg, a slice of n/2 bits, under pk. The t sample
// contributions are accumulated additively, so their order cannot
// change the result.
func (enc *Encryptor) EncryptNew(pk *PublicKey, msg []uint64) (*Ciphertext, error) {
	ringQ := enc.params.RingQ()
	half := enc.params.MessageLength()

	if len(msg) != half {
		return nil, &ConfigurationError{
			Msg: fmt.Sprintf("message length %d does not match n/2 = %d", len(msg), half),
		}
	}
	bits := make([]int64, half)
	for i, b := range msg {
		if b > 1 {
			return nil, &ConfigurationError{
				Msg: fmt.Sprintf("message coefficient %d at index %d is not a bit", b, i),
			}
		}
		bits[i] = int64(b)
	}
	if len(pk.Samples) != enc.params.T() {
		return nil, &ConfigurationError{
			Msg: fmt.Sprintf("public key carries %d samples, parameters require t = %d", len(pk.Samples), enc.params.T()),
		}
	}

	c1 := ringQ.NewPoly(nil)
	c2 := ringQ.NewPoly(bits)

	for _, sample := range pk.Samples {
		r := enc.binarySampler.ReadNew(half + 1)

		ra, err := ringQ.MulNew(r, sample.A)
		if err != nil {
			return nil, &ConfigurationError{Msg: "public key sample incompatible with parameters", Err: err}
		}
		if c1, err = ringQ.AddNew(c1, ra); err != nil {
			return nil, &ConfigurationError{Msg: "public key sample incompatible with parameters", Err: err}
		}

		rb, err := ringQ.MiddleProduct(r, sample.B, half, half)
		if err != nil {
			return nil, &ConfigurationError{Msg: "public key sample incompatible with parameters", Err: err}
		}
		if c2, err = ringQ.AddNew(c2, rb); err != nil {
			return nil, &ConfigurationError{Msg: "public key sample incompatible with parameters", Err: err}
		}
	}

	return &Ciphertext{C1: c1, C2: c2}, nil
}
