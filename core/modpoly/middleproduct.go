package modpoly

import "fmt"

// MiddleProduct computes the width-d, offset-k middle product of a and
// b: the full convolution is reduced modulo x^(k+d), then the k
// lowest-degree coefficients are discarded. The result always carries
// exactly d coefficients; positions past the degree of the truncated
// product are zero.
func (r *Ring) MiddleProduct(a, b Poly, d, k int) (Poly, error) {
	if d < 0 || k < 0 {
		return Poly{}, fmt.Errorf("modpoly: invalid middle-product window (d=%d, k=%d)", d, k)
	}
	m, err := r.MulNew(a, b)
	if err != nil {
		return Poly{}, err
	}
	m = TruncateLow(TruncateModPower(m, k+d), k)
	if len(m.Coeffs) < d {
		padded := make([]uint64, d)
		copy(padded, m.Coeffs)
		m.Coeffs = padded
	}
	return m, nil
}
