package mplwe

import (
	"fmt"
	"math"
	"sync"

	"github.com/tuneinsight/lattigo/v5/ring"

	"github.com/KatinkaBou/Middle-Product-LWE-PKE-Scheme/core/modpoly"
)

const (
	// MinSecurity is the smallest accepted security parameter. Below
	// it the derived dimension and sample count degenerate.
	MinSecurity = 4

	// MaxSecurity is the largest accepted security parameter. It keeps
	// the derived modulus within the reduction bound of modpoly.
	MaxSecurity = 4096

	// Alpha is the noise width as a fraction of the modulus.
	Alpha = 0.001
)

// Parameters holds the tuple (n, q, t, alpha) derived from a security
// parameter lambda:
//
//	n     = lambda rounded up to even
//	q     = smallest prime >= round(n^3 * sqrt(ln n))
//	t     = round(ln n)
//	alpha = 0.001
//
// Parameters is immutable; all three scheme operations must run under
// the same derived tuple to interoperate.
type Parameters struct {
	lambda int
	n      int
	q      uint64
	t      int
	alpha  float64
	ringQ  *modpoly.Ring
}

func newParameters(lambda int) (Parameters, error) {
	if lambda < MinSecurity || lambda > MaxSecurity {
		return Parameters{}, &ConfigurationError{
			Msg: fmt.Sprintf("security parameter %d outside supported range [%d, %d]", lambda, MinSecurity, MaxSecurity),
		}
	}

	n := lambda
	if n&1 == 1 {
		n++
	}

	nf := float64(n)
	q := nextPrime(uint64(math.Round(nf * nf * nf * math.Sqrt(math.Log(nf)))))

	ringQ, err := modpoly.NewRing(q)
	if err != nil {
		// Sanity check, MaxSecurity keeps q well below the ring bound.
		panic(err)
	}

	return Parameters{
		lambda: lambda,
		n:      n,
		q:      q,
		t:      int(math.Round(math.Log(nf))),
		alpha:  Alpha,
		ringQ:  ringQ,
	}, nil
}

// nextPrime returns the smallest prime >= x.
func nextPrime(x uint64) uint64 {
	if x <= 2 {
		return 2
	}
	if x&1 == 0 {
		x++
	}
	for !ring.IsPrime(x) {
		x += 2
	}
	return x
}

// Lambda returns the security parameter the set was derived from.
func (p Parameters) Lambda() int {
	return p.lambda
}

// N returns the even dimension n.
func (p Parameters) N() int {
	return p.n
}

// Q returns the prime ciphertext modulus.
func (p Parameters) Q() uint64 {
	return p.q
}

// T returns the number of public-key samples.
func (p Parameters) T() int {
	return p.t
}

// Alpha returns the noise-width fraction of q.
func (p Parameters) Alpha() float64 {
	return p.alpha
}

// Sigma returns the Gaussian noise width alpha*q.
func (p Parameters) Sigma() float64 {
	return p.alpha * float64(p.q)
}

// MessageLength returns the number of plaintext bits, n/2.
func (p Parameters) MessageLength() int {
	return p.n / 2
}

// RingQ returns the polynomial ring Z_q[x] shared by all operations
// under this parameter set.
func (p Parameters) RingQ() *modpoly.Ring {
	return p.ringQ
}

// Equal reports whether both parameter sets carry the identical tuple.
func (p Parameters) Equal(other Parameters) bool {
	return p.lambda == other.lambda && p.n == other.n && p.q == other.q && p.t == other.t && p.alpha == other.alpha
}

// ParameterCache memoizes parameter derivation per security parameter,
// so that repeated calls return the identical tuple and the primality
// search runs once. The zero value is not usable; use
// NewParameterCache.
type ParameterCache struct {
	mu     sync.Mutex
	params map[int]Parameters
}

// NewParameterCache returns an empty cache.
func NewParameterCache() *ParameterCache {
	return &ParameterCache{params: make(map[int]Parameters)}
}

// Get returns the parameters for lambda, deriving and storing them on
// first use.
func (c *ParameterCache) Get(lambda int) (Parameters, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if p, ok := c.params[lambda]; ok {
		return p, nil
	}
	p, err := newParameters(lambda)
	if err != nil {
		return Parameters{}, err
	}
	c.params[lambda] = p
	return p, nil
}

// Reset drops all memoized entries.
func (c *ParameterCache) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.params = make(map[int]Parameters)
}

var defaultCache = NewParameterCache()

// NewParametersFromSecurity derives the parameter set for lambda,
// memoized process-wide.
func NewParametersFromSecurity(lambda int) (Parameters, error) {
	return defaultCache.Get(lambda)
}
