package ckks

import (
	"fmt"
	"math/big"

	"github.com/tuneinsight/ckkscore/ring"
	"github.com/tuneinsight/ckkscore/rlwe"
)

// Evaluator implements the homomorphic operators: add/sub/addConst,
// mult/square, conjugate, and the rotation family. It holds the
// switching-key material every non-linear operator needs alongside the
// linear ones defined here.
type Evaluator struct {
	params  rlwe.Parameters
	evk     *rlwe.EvaluationKey
	conjKey *rlwe.ConjugationKey
	rotKeys *rlwe.RotationKeySet
}

// NewEvaluator returns an Evaluator over params, with the given
// relinearization, conjugation and rotation key material. Any of evk,
// conjKey, rotKeys may be nil if the corresponding operator is never
// called.
func NewEvaluator(params rlwe.Parameters, evk *rlwe.EvaluationKey, conjKey *rlwe.ConjugationKey, rotKeys *rlwe.RotationKeySet) *Evaluator {
	return &Evaluator{params: params, evk: evk, conjKey: conjKey, rotKeys: rotKeys}
}

// checkLevels enforces that two-input operators require both ciphertexts
// at the same level, and returns the shared modulus.
func (ev *Evaluator) checkLevels(c1, c2 *Ciphertext) *big.Int {
	if c1.Level != c2.Level {
		panic(fmt.Errorf("ckks: mismatched levels %d != %d", c1.Level, c2.Level))
	}
	return ev.params.QAt(c1.Level)
}

// Add returns c1 + c2.
func (ev *Evaluator) Add(c1, c2 *Ciphertext) *Ciphertext {
	q := ev.checkLevels(c1, c2)
	N := ev.params.N()
	ax := ring.Add(ring.NewPoly(N), c1.Ax, c2.Ax, q)
	bx := ring.Add(ring.NewPoly(N), c1.Bx, c2.Bx, q)
	return NewCiphertext(ax, bx, c1.Slots, c1.Level)
}

// AddAssign sets c1 = c1 + c2.
func (ev *Evaluator) AddAssign(c1, c2 *Ciphertext) {
	q := ev.checkLevels(c1, c2)
	ring.AddAssign(c1.Ax, c2.Ax, q)
	ring.AddAssign(c1.Bx, c2.Bx, q)
}

// Sub returns c1 - c2.
func (ev *Evaluator) Sub(c1, c2 *Ciphertext) *Ciphertext {
	q := ev.checkLevels(c1, c2)
	N := ev.params.N()
	ax := ring.Sub(ring.NewPoly(N), c1.Ax, c2.Ax, q)
	bx := ring.Sub(ring.NewPoly(N), c1.Bx, c2.Bx, q)
	return NewCiphertext(ax, bx, c1.Slots, c1.Level)
}

// SubAssign sets c1 = c1 - c2.
func (ev *Evaluator) SubAssign(c1, c2 *Ciphertext) {
	q := ev.checkLevels(c1, c2)
	ring.SubAssign(c1.Ax, c2.Ax, q)
	ring.SubAssign(c1.Bx, c2.Bx, q)
}

// AddConst adds k, an already Delta-scaled plaintext coefficient, to bx[0].
func (ev *Evaluator) AddConst(c *Ciphertext, k *big.Int) *Ciphertext {
	out := c.Copy()
	ev.AddConstAssign(out, k)
	return out
}

// AddConstAssign adds k to c.bx[0] in place.
func (ev *Evaluator) AddConstAssign(c *Ciphertext, k *big.Int) {
	q := ev.params.QAt(c.Level)
	c.Bx.Coeffs[0].Add(c.Bx.Coeffs[0], k)
	c.Bx.Reduce(q)
}

// MultByConst scales both polynomials of c by the integer k mod q_level.
func (ev *Evaluator) MultByConst(c *Ciphertext, k *big.Int) *Ciphertext {
	q := ev.params.QAt(c.Level)
	N := ev.params.N()
	ax := ring.MultByConst(ring.NewPoly(N), c.Ax, k, q)
	bx := ring.MultByConst(ring.NewPoly(N), c.Bx, k, q)
	return NewCiphertext(ax, bx, c.Slots, c.Level)
}

// MultByConstAssign scales c in place by k mod q_level.
func (ev *Evaluator) MultByConstAssign(c *Ciphertext, k *big.Int) {
	q := ev.params.QAt(c.Level)
	ring.MultByConstAssign(c.Ax, k, q)
	ring.MultByConstAssign(c.Bx, k, q)
}

// MultByMonomial multiplies both polynomials of c by X^d.
func (ev *Evaluator) MultByMonomial(c *Ciphertext, d int) *Ciphertext {
	N := ev.params.N()
	ax := ring.MultByMonomial(ring.NewPoly(N), c.Ax, d)
	bx := ring.MultByMonomial(ring.NewPoly(N), c.Bx, d)
	ax.Reduce(ev.params.QAt(c.Level))
	bx.Reduce(ev.params.QAt(c.Level))
	return NewCiphertext(ax, bx, c.Slots, c.Level)
}

// MultByMonomialAssign multiplies c in place by X^d.
func (ev *Evaluator) MultByMonomialAssign(c *Ciphertext, d int) {
	ring.MultByMonomialAssign(c.Ax, d)
	ring.MultByMonomialAssign(c.Bx, d)
	c.Ax.Reduce(ev.params.QAt(c.Level))
	c.Bx.Reduce(ev.params.QAt(c.Level))
}

// MultByI multiplies c's plaintext by the imaginary unit, i.e. by X^Nh,
// supplementing the monomial multiplication with the standard CKKS
// "rotate the real/imaginary parts" shortcut.
func (ev *Evaluator) MultByI(c *Ciphertext) *Ciphertext {
	return ev.MultByMonomial(c, ev.params.Nh())
}

// MultByIAssign multiplies c in place by the imaginary unit.
func (ev *Evaluator) MultByIAssign(c *Ciphertext) {
	ev.MultByMonomialAssign(c, ev.params.Nh())
}

// LeftShift multiplies both polynomials of c by 2^bits mod q_level.
func (ev *Evaluator) LeftShift(c *Ciphertext, bits int) *Ciphertext {
	q := ev.params.QAt(c.Level)
	N := ev.params.N()
	ax := ring.LeftShift(ring.NewPoly(N), c.Ax, bits, q)
	bx := ring.LeftShift(ring.NewPoly(N), c.Bx, bits, q)
	return NewCiphertext(ax, bx, c.Slots, c.Level)
}

// LeftShiftAssign multiplies c in place by 2^bits mod q_level.
func (ev *Evaluator) LeftShiftAssign(c *Ciphertext, bits int) {
	q := ev.params.QAt(c.Level)
	ring.LeftShiftAssign(c.Ax, bits, q)
	ring.LeftShiftAssign(c.Bx, bits, q)
}

// DoubleAssign doubles c in place mod q_level.
func (ev *Evaluator) DoubleAssign(c *Ciphertext) {
	q := ev.params.QAt(c.Level)
	ring.DoubleAssign(c.Ax, q)
	ring.DoubleAssign(c.Bx, q)
}
