package ckks

import "math/big"

// CZZ is a Gaussian integer with arbitrary-precision components.
type CZZ struct {
	R *big.Int
	I *big.Int
}

// NewCZZ returns the Gaussian integer r + i*sqrt(-1).
func NewCZZ(r, i *big.Int) *CZZ {
	return &CZZ{R: r, I: i}
}

// trueValue centres m's components into the representative range (-q/2, q/2]
// of modulus q.
func trueValue(m *CZZ, q *big.Int) *CZZ {
	return &CZZ{R: centre(m.R, q), I: centre(m.I, q)}
}

// centre returns the representative of x in (-q/2, q/2] modulo q, leaving x
// untouched.
func centre(x, q *big.Int) *big.Int {
	r := new(big.Int).Mod(x, q)
	half := new(big.Int).Rsh(q, 1)
	if r.Cmp(half) > 0 {
		r.Sub(r, q)
	}
	return r
}
