package ckks

import (
	"github.com/tuneinsight/ckkscore/ring"
	"github.com/tuneinsight/ckkscore/rlwe"
)

// relinearize brings the quadratic tensor component d2 (valid mod q_level)
// back to an RLWE pair under the original secret, via the evaluation key.
func (ev *Evaluator) relinearize(d2 *ring.Poly, level int) (*ring.Poly, *ring.Poly) {
	return ev.keySwitch(d2, ev.evk.Key, level)
}

// keySwitch lifts x to the extended modulus P*q_level, multiplies it
// against a switching key encrypting P*target, and divides back down by P.
// This one routine implements the shared arithmetic behind relinearization,
// conjugation and rotation key-switching.
func (ev *Evaluator) keySwitch(x *ring.Poly, key *rlwe.SwitchingKey, level int) (*ring.Poly, *ring.Poly) {
	N := ev.params.N()
	pq := ev.params.PQAt(level)

	keyAx := key.Ax.Copy()
	keyAx.Reduce(pq)
	keyBx := key.Bx.Copy()
	keyBx.Reduce(pq)

	ta := ring.Mult(ring.NewPoly(N), x, keyAx, pq)
	tb := ring.Mult(ring.NewPoly(N), x, keyBx, pq)

	ring.RightShiftAssign(ta, ev.params.LogP())
	ring.RightShiftAssign(tb, ev.params.LogP())

	q := ev.params.QAt(level)
	ta.Reduce(q)
	tb.Reduce(q)
	return ta, tb
}

// Mult computes the tensor product of c1 and c2 and relinearizes the
// quadratic term. The result stays at the input level with the plaintext
// scale grown by Delta; callers normally follow with ModSwitchOne to
// rescale.
func (ev *Evaluator) Mult(c1, c2 *Ciphertext) *Ciphertext {
	q := ev.checkLevels(c1, c2)
	N := ev.params.N()

	d0 := ring.Mult(ring.NewPoly(N), c1.Bx, c2.Bx, q)
	d2 := ring.Mult(ring.NewPoly(N), c1.Ax, c2.Ax, q)

	s1 := ring.Add(ring.NewPoly(N), c1.Ax, c1.Bx, q)
	s2 := ring.Add(ring.NewPoly(N), c2.Ax, c2.Bx, q)
	d1 := ring.Mult(ring.NewPoly(N), s1, s2, q)
	ring.SubAssign(d1, d0, q)
	ring.SubAssign(d1, d2, q)

	ta, tb := ev.relinearize(d2, c1.Level)

	a := ring.Add(ring.NewPoly(N), ta, d1, q)
	b := ring.Add(ring.NewPoly(N), tb, d0, q)

	return NewCiphertext(a, b, c1.Slots, c1.Level)
}

// MultAssign sets c1 = c1 * c2.
func (ev *Evaluator) MultAssign(c1, c2 *Ciphertext) {
	result := ev.Mult(c1, c2)
	c1.Ax, c1.Bx = result.Ax, result.Bx
}

// Square computes c*c with the doubled cross-term shortcut.
func (ev *Evaluator) Square(c *Ciphertext) *Ciphertext {
	q := ev.params.QAt(c.Level)
	N := ev.params.N()

	b2 := ring.Square(ring.NewPoly(N), c.Bx, q)
	a2 := ring.Square(ring.NewPoly(N), c.Ax, q)
	ab := ring.Mult(ring.NewPoly(N), c.Ax, c.Bx, q)
	d1 := ring.LeftShift(ring.NewPoly(N), ab, 1, q)

	ta, tb := ev.relinearize(a2, c.Level)

	a := ring.Add(ring.NewPoly(N), ta, d1, q)
	b := ring.Add(ring.NewPoly(N), tb, b2, q)

	return NewCiphertext(a, b, c.Slots, c.Level)
}

// SquareAssign sets c = c*c.
func (ev *Evaluator) SquareAssign(c *Ciphertext) {
	result := ev.Square(c)
	c.Ax, c.Bx = result.Ax, result.Bx
}
