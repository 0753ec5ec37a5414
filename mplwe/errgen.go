package mplwe

import (
	"encoding/binary"
	"math"

	"github.com/tuneinsight/lattigo/v5/utils/sampling"

	"github.com/KatinkaBou/Middle-Product-LWE-PKE-Scheme/core/modpoly"
)

const randomBufferLen = 1024

// randomBuffer refills a byte buffer from a PRNG and hands out 64-bit
// words.
type randomBuffer struct {
	prng sampling.PRNG
	buff []byte
	ptr  int
}

func newRandomBuffer(prng sampling.PRNG) *randomBuffer {
	return &randomBuffer{prng: prng, buff: make([]byte, randomBufferLen), ptr: randomBufferLen}
}

func (rb *randomBuffer) nextUint64() uint64 {
	if rb.ptr == len(rb.buff) {
		if _, err := rb.prng.Read(rb.buff); err != nil {
			// Sanity check, this error should not happen.
			panic(err)
		}
		rb.ptr = 0
	}
	v := binary.BigEndian.Uint64(rb.buff[rb.ptr : rb.ptr+8])
	rb.ptr += 8
	return v
}

// UniformSampler draws polynomials with coefficients uniform in [0, q),
// by masking random 64-bit words to the bit-length of q and rejecting
// values >= q.
type UniformSampler struct {
	*randomBuffer
	ringQ *modpoly.Ring
}

// NewUniformSampler creates a UniformSampler over ringQ reading from
// prng.
func NewUniformSampler(prng sampling.PRNG, ringQ *modpoly.Ring) *UniformSampler {
	return &UniformSampler{randomBuffer: newRandomBuffer(prng), ringQ: ringQ}
}

// ReadNew samples a polynomial with numCoeffs uniform coefficients.
func (s *UniformSampler) ReadNew(numCoeffs int) modpoly.Poly {
	q, mask := s.ringQ.Modulus, s.ringQ.Mask
	coeffs := make([]uint64, numCoeffs)
	for i := range coeffs {
		for {
			if c := s.nextUint64() & mask; c < q {
				coeffs[i] = c
				break
			}
		}
	}
	return modpoly.Poly{Coeffs: coeffs, Modulus: q}
}

// BinarySampler draws polynomials with coefficients uniform in {0, 1},
// one PRNG bit per coefficient.
type BinarySampler struct {
	*randomBuffer
	ringQ *modpoly.Ring
}

// NewBinarySampler creates a BinarySampler over ringQ reading from
// prng.
func NewBinarySampler(prng sampling.PRNG, ringQ *modpoly.Ring) *BinarySampler {
	return &BinarySampler{randomBuffer: newRandomBuffer(prng), ringQ: ringQ}
}

// ReadNew samples a polynomial with numCoeffs binary coefficients.
func (s *BinarySampler) ReadNew(numCoeffs int) modpoly.Poly {
	coeffs := make([]uint64, numCoeffs)
	var word uint64
	for i := range coeffs {
		if i&63 == 0 {
			word = s.nextUint64()
		}
		coeffs[i] = word & 1
		word >>= 1
	}
	return modpoly.Poly{Coeffs: coeffs, Modulus: s.ringQ.Modulus}
}

// ErrGen draws integers from a discrete Gaussian-like distribution of
// width sigma centered at 0, truncated at ceil(6*sigma). Continuous
// normal values come from a Box-Muller transform over PRNG-derived
// uniforms and are rounded to the nearest integer.
type ErrGen struct {
	*randomBuffer
	sigma float64
	bound int64

	spare    float64
	hasSpare bool
}

// NewErrorGenerator creates an ErrGen of width sigma reading from prng.
func NewErrorGenerator(prng sampling.PRNG, sigma float64) *ErrGen {
	return &ErrGen{
		randomBuffer: newRandomBuffer(prng),
		sigma:        sigma,
		bound:        int64(math.Ceil(6 * sigma)),
	}
}

// GenErr samples a single error value.
func (erg *ErrGen) GenErr() int64 {
	for {
		e := int64(math.Round(erg.normFloat64() * erg.sigma))
		if e >= -erg.bound && e <= erg.bound {
			return e
		}
	}
}

// GenErrVec samples n independent error values.
func (erg *ErrGen) GenErrVec(n int) []int64 {
	e := make([]int64, n)
	for i := range e {
		e[i] = erg.GenErr()
	}
	return e
}

func (erg *ErrGen) normFloat64() float64 {
	if erg.hasSpare {
		erg.hasSpare = false
		return erg.spare
	}
	// uniforms in (0, 1]; the +1 keeps u1 away from log(0)
	u1 := float64(erg.nextUint64()>>11+1) / (1 << 53)
	u2 := float64(erg.nextUint64()>>11) / (1 << 53)
	r := math.Sqrt(-2 * math.Log(u1))
	theta := 2 * math.Pi * u2
	erg.spare = r * math.Sin(theta)
	erg.hasSpare = true
	return r * math.Cos(theta)
}
