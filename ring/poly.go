// Package ring implements polynomial arithmetic over the cyclotomic ring
// Z_q[X]/(X^N+1) with multi-precision coefficients.
//
// The rest of this module (sampling, rlwe, ckks) consumes it through plain
// function calls rather than an interface, since there is exactly one
// implementation and no call site needs to swap it out.
package ring

import (
	"fmt"
	"math/big"

	"golang.org/x/exp/slices"
)

// Poly is an ordered sequence of N multi-precision coefficients, index i
// holding the coefficient of X^i. All arithmetic below reduces modulo
// X^N+1 and a caller-supplied integer modulus q.
type Poly struct {
	Coeffs []*big.Int
}

// NewPoly returns a zero-valued polynomial of degree < N.
func NewPoly(N int) *Poly {
	c := make([]*big.Int, N)
	for i := range c {
		c[i] = new(big.Int)
	}
	return &Poly{Coeffs: c}
}

// N returns the ring degree of the polynomial.
func (p *Poly) N() int {
	return len(p.Coeffs)
}

// Copy returns a deep copy of p.
func (p *Poly) Copy() *Poly {
	out := NewPoly(p.N())
	for i, c := range p.Coeffs {
		out.Coeffs[i].Set(c)
	}
	return out
}

// CopyFrom copies the coefficients of x into p in place. p and x must share
// the same degree.
func (p *Poly) CopyFrom(x *Poly) {
	if p.N() != x.N() {
		panic(fmt.Errorf("ring: CopyFrom: degree mismatch %d != %d", p.N(), x.N()))
	}
	for i, c := range x.Coeffs {
		p.Coeffs[i].Set(c)
	}
}

// Zero sets every coefficient of p to zero.
func (p *Poly) Zero() {
	for _, c := range p.Coeffs {
		c.SetInt64(0)
	}
}

// Equals reports whether p and x have identical coefficients.
func (p *Poly) Equals(x *Poly) bool {
	if p.N() != x.N() {
		return false
	}
	for i := range p.Coeffs {
		if p.Coeffs[i].Cmp(x.Coeffs[i]) != 0 {
			return false
		}
	}
	return true
}

// CloneCoeffs returns a copy of the polynomial's coefficient slice, sharing
// no storage with p.
func (p *Poly) CloneCoeffs() []*big.Int {
	out := slices.Clone(p.Coeffs)
	for i, c := range out {
		out[i] = new(big.Int).Set(c)
	}
	return out
}

// centre reduces x modulo q into the centred representative range
// (-q/2, q/2], writing the result into x.
func centre(x, q *big.Int) *big.Int {
	x.Mod(x, q)
	half := new(big.Int).Rsh(q, 1)
	if x.Cmp(half) > 0 {
		x.Sub(x, q)
	}
	return x
}

// Reduce centres every coefficient of p modulo q.
func (p *Poly) Reduce(q *big.Int) {
	for _, c := range p.Coeffs {
		centre(c, q)
	}
}
