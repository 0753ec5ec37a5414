// Package modpoly implements polynomial arithmetic over Z_q[x] for an
// arbitrary modulus q, together with the middle-product operator used by
// the MP-LWE encryption scheme. Coefficients are kept as canonical
// representatives in [0, q) and every arithmetic step reduces with the
// Barrett helpers of lattigo's ring package.
package modpoly

import (
	"errors"
	"fmt"
	"math/bits"

	"github.com/tuneinsight/lattigo/v5/ring"
)

// MaxModulusBits is the largest supported bit-size for a modulus,
// inherited from the validity range of the Barrett reduction constants.
const MaxModulusBits = 61

// ErrRingMismatch is returned when the operands of a binary operation
// were constructed under different moduli.
var ErrRingMismatch = errors.New("modpoly: operands belong to different moduli")

// Ring stores the modulus together with its precomputed reduction
// constants. A Ring is immutable once created and safe for concurrent
// use.
type Ring struct {
	Modulus uint64

	// Fast reduction constants
	BRedConstant []uint64

	// 2^bit_length(Modulus-1) - 1
	Mask uint64
}

// NewRing creates a Ring for the modulus q.
func NewRing(q uint64) (*Ring, error) {
	if q < 2 {
		return nil, fmt.Errorf("modpoly: invalid modulus %d: must be at least 2", q)
	}
	if bits.Len64(q) > MaxModulusBits {
		return nil, fmt.Errorf("modpoly: invalid modulus %d: exceeds %d bits", q, MaxModulusBits)
	}
	return &Ring{
		Modulus:      q,
		BRedConstant: ring.BRedConstant(q),
		Mask:         (1 << uint64(bits.Len64(q-1))) - 1,
	}, nil
}

// Poly represents a polynomial over Z_q[x]. Coeffs[i] is the coefficient
// of degree i, in [0, q). Trailing zero coefficients may be present;
// Equal and Degree ignore them.
type Poly struct {
	Coeffs  []uint64
	Modulus uint64
}

// NewPoly builds a polynomial from signed coefficients, reducing each
// one into [0, q).
func (r *Ring) NewPoly(coeffs []int64) Poly {
	q := int64(r.Modulus)
	out := make([]uint64, len(coeffs))
	for i, c := range coeffs {
		out[i] = uint64(((c % q) + q) % q)
	}
	return Poly{Coeffs: out, Modulus: r.Modulus}
}

// Degree returns the highest index with a nonzero coefficient, or -1
// for the zero polynomial.
func (p Poly) Degree() (deg int) {
	deg = -1
	for i := len(p.Coeffs) - 1; i >= 0; i-- {
		if p.Coeffs[i] != 0 {
			deg = i
			break
		}
	}
	return
}

// Equal reports whether p and other represent the same ring element,
// ignoring trailing zero coefficients.
func (p Poly) Equal(other Poly) bool {
	if p.Modulus != other.Modulus {
		return false
	}
	short, long := p.Coeffs, other.Coeffs
	if len(short) > len(long) {
		short, long = long, short
	}
	for i, c := range short {
		if c != long[i] {
			return false
		}
	}
	for _, c := range long[len(short):] {
		if c != 0 {
			return false
		}
	}
	return true
}

// Centered lifts every coefficient to its representative in (-q/2, q/2].
func (p Poly) Centered() []int64 {
	q := p.Modulus
	out := make([]int64, len(p.Coeffs))
	for i, c := range p.Coeffs {
		if c > q/2 {
			out[i] = int64(c) - int64(q)
		} else {
			out[i] = int64(c)
		}
	}
	return out
}

func (r *Ring) check(ps ...Poly) error {
	for _, p := range ps {
		if p.Modulus != r.Modulus {
			return fmt.Errorf("%w: %d and %d", ErrRingMismatch, r.Modulus, p.Modulus)
		}
	}
	return nil
}

// MulNew returns the full convolution product a*b with coefficients
// reduced mod q. No degree truncation is applied.
func (r *Ring) MulNew(a, b Poly) (Poly, error) {
	if err := r.check(a, b); err != nil {
		return Poly{}, err
	}
	if len(a.Coeffs) == 0 || len(b.Coeffs) == 0 {
		return Poly{Modulus: r.Modulus}, nil
	}
	q := r.Modulus
	bred := r.BRedConstant
	out := make([]uint64, len(a.Coeffs)+len(b.Coeffs)-1)
	for i, x := range a.Coeffs {
		if x == 0 {
			continue
		}
		for j, y := range b.Coeffs {
			out[i+j] = ring.CRed(out[i+j]+ring.BRed(x, y, q, bred), q)
		}
	}
	return Poly{Coeffs: out, Modulus: q}, nil
}

// AddNew returns a+b, zero-padding the shorter operand.
func (r *Ring) AddNew(a, b Poly) (Poly, error) {
	if err := r.check(a, b); err != nil {
		return Poly{}, err
	}
	q := r.Modulus
	out := make([]uint64, max(len(a.Coeffs), len(b.Coeffs)))
	for i := range out {
		var x, y uint64
		if i < len(a.Coeffs) {
			x = a.Coeffs[i]
		}
		if i < len(b.Coeffs) {
			y = b.Coeffs[i]
		}
		out[i] = ring.CRed(x+y, q)
	}
	return Poly{Coeffs: out, Modulus: q}, nil
}

// SubNew returns a-b, zero-padding the shorter operand.
func (r *Ring) SubNew(a, b Poly) (Poly, error) {
	if err := r.check(a, b); err != nil {
		return Poly{}, err
	}
	q := r.Modulus
	out := make([]uint64, max(len(a.Coeffs), len(b.Coeffs)))
	for i := range out {
		var x, y uint64
		if i < len(a.Coeffs) {
			x = a.Coeffs[i]
		}
		if i < len(b.Coeffs) {
			y = b.Coeffs[i]
		}
		out[i] = ring.CRed(x+q-y, q)
	}
	return Poly{Coeffs: out, Modulus: q}, nil
}

// TruncateLow removes the k lowest-degree coefficients, shifting the
// remaining ones down by k positions (floor division by x^k). A
// negative k is treated as 0.
func TruncateLow(p Poly, k int) Poly {
	if k < 0 {
		k = 0
	}
	if k >= len(p.Coeffs) {
		return Poly{Modulus: p.Modulus}
	}
	out := make([]uint64, len(p.Coeffs)-k)
	copy(out, p.Coeffs[k:])
	return Poly{Coeffs: out, Modulus: p.Modulus}
}

// TruncateModPower reduces p modulo x^k, keeping only the coefficients
// of degree < k. A negative k is treated as 0.
func TruncateModPower(p Poly, k int) Poly {
	if k < 0 {
		k = 0
	}
	if k > len(p.Coeffs) {
		k = len(p.Coeffs)
	}
	out := make([]uint64, k)
	copy(out, p.Coeffs[:k])
	return Poly{Coeffs: out, Modulus: p.Modulus}
}
