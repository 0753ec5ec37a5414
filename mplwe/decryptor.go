package mplwe

import "fmt"

// Decryptor inverts ciphertexts under a secret key. Decryption is
// deterministic and consumes no randomness.
type Decryptor struct {
	params Parameters
}

// NewDecryptor creates a Decryptor for the parameter set.
func NewDecryptor(params Parameters) *Decryptor {
	return &Decryptor{params: params}
}

// DecryptNew recovers the n/2 message bits from ct: it computes
// c2 - MP(c1, sk) with width n/2 and offset (3n/2)-1, lifts every
// coefficient to its centered representative in (-q/2, q/2] and reduces
// it mod 2.
func (dec *Decryptor) DecryptNew(ct *Ciphertext, sk *SecretKey) ([]uint64, error) {
	ringQ := dec.params.RingQ()
	n := dec.params.N()
	half := dec.params.MessageLength()

	if got := len(sk.Value.Coeffs); got != 2*n-1 {
		return nil, &ConfigurationError{
			Msg: fmt.Sprintf("secret key carries %d coefficients, parameters require 2n-1 = %d", got, 2*n-1),
		}
	}
	if deg := ct.C2.Degree(); deg >= half {
		return nil, &ConfigurationError{
			Msg: fmt.Sprintf("ciphertext c2 has degree %d, parameters require degree < n/2 = %d", deg, half),
		}
	}

	mp, err := ringQ.MiddleProduct(ct.C1, sk.Value, half, 3*n/2-1)
	if err != nil {
		return nil, &ConfigurationError{Msg: "ciphertext incompatible with parameters", Err: err}
	}

	result, err := ringQ.SubNew(ct.C2, mp)
	if err != nil {
		return nil, &ConfigurationError{Msg: "ciphertext incompatible with parameters", Err: err}
	}

	centered := result.Centered()
	msg := make([]uint64, half)
	for i := range msg {
		var c int64
		if i < len(centered) {
			c = centered[i]
		}
		msg[i] = uint64(((c % 2) + 2) % 2)
	}
	return msg, nil
}
