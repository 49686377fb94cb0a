package sampling

import (
	"math"
	"math/big"

	"github.com/tuneinsight/ckkscore/ring"
)

// Sampler produces the three families of randomness the scheme needs:
// uniform (encryption randomness and fresh keys), discrete Gaussian
// (RLWE error terms), and ternary / Hamming-weight constrained (the
// sparse secret key and the `v` polynomial of an RLWE instance).
type Sampler interface {
	SampleUniform(N int, q *big.Int) *ring.Poly
	SampleGauss(N int, sigma float64) *ring.Poly
	SampleZO(N int, rho float64) *ring.Poly
	SampleHWT(N, h int) *ring.Poly
}

// DefaultSampler is the Sampler backed by a PRNG.
type DefaultSampler struct {
	prng PRNG
}

// NewDefaultSampler returns a Sampler drawing its randomness from prng.
func NewDefaultSampler(prng PRNG) *DefaultSampler {
	return &DefaultSampler{prng: prng}
}

// SampleUniform returns a polynomial with N coefficients drawn uniformly
// from [0, q), centred into (-q/2, q/2].
func (s *DefaultSampler) SampleUniform(N int, q *big.Int) *ring.Poly {
	p := ring.NewPoly(N)
	half := new(big.Int).Rsh(q, 1)
	for i := 0; i < N; i++ {
		v := RandInt(s.prng, q)
		if v.Cmp(half) > 0 {
			v.Sub(v, q)
		}
		p.Coeffs[i].Set(v)
	}
	return p
}

// SampleZO returns a polynomial with N coefficients in {-1,0,+1}: each
// coefficient is zero with probability 1-rho and otherwise +1/-1 with equal
// probability.
func (s *DefaultSampler) SampleZO(N int, rho float64) *ring.Poly {
	p := ring.NewPoly(N)
	for i := 0; i < N; i++ {
		u := s.uniformFloat()
		switch {
		case u < rho/2:
			p.Coeffs[i].SetInt64(-1)
		case u < rho:
			p.Coeffs[i].SetInt64(1)
		default:
			// zero
		}
	}
	return p
}

// SampleHWT returns a ternary polynomial of N coefficients with exactly h
// non-zero entries (each +1 or -1 with equal probability), used for the
// sparse secret key.
func (s *DefaultSampler) SampleHWT(N, h int) *ring.Poly {
	if h > N {
		panic("sampling: SampleHWT: h exceeds N")
	}
	p := ring.NewPoly(N)
	placed := 0
	for placed < h {
		idx := int(RandUint64(s.prng) % uint64(N))
		if p.Coeffs[idx].Sign() != 0 {
			continue
		}
		if s.uniformFloat() < 0.5 {
			p.Coeffs[idx].SetInt64(1)
		} else {
			p.Coeffs[idx].SetInt64(-1)
		}
		placed++
	}
	return p
}

// SampleGauss returns a polynomial with N coefficients independently drawn
// from a discrete Gaussian of standard deviation sigma, via Box-Muller
// transform rounded to the nearest integer.
func (s *DefaultSampler) SampleGauss(N int, sigma float64) *ring.Poly {
	p := ring.NewPoly(N)
	for i := 0; i < N; i += 2 {
		u1 := s.uniformFloat()
		u2 := s.uniformFloat()
		if u1 <= 0 {
			u1 = 1e-300
		}
		r := sigma * math.Sqrt(-2*math.Log(u1))
		z0 := r * math.Cos(2*math.Pi*u2)
		p.Coeffs[i].SetInt64(int64(math.Round(z0)))
		if i+1 < N {
			z1 := r * math.Sin(2*math.Pi*u2)
			p.Coeffs[i+1].SetInt64(int64(math.Round(z1)))
		}
	}
	return p
}

// uniformFloat draws a uniform float64 in [0,1) from the sampler's PRNG.
func (s *DefaultSampler) uniformFloat() float64 {
	return float64(RandUint64(s.prng)>>11) / (1 << 53)
}
