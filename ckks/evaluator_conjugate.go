package ckks

import "github.com/tuneinsight/ckkscore/ring"

// conjugationExponent is the ring automorphism X -> X^t implementing
// complex conjugation on the encoded slots: t = 2N-1, i.e. X -> X^-1, the
// automorphism fixing a real-coefficient polynomial's conjugate-symmetric
// evaluation for general N.
func conjugationExponent(N int) int {
	return 2*N - 1
}

// Conjugate returns the ciphertext decrypting to the component-wise
// conjugate of c's plaintext.
func (ev *Evaluator) Conjugate(c *Ciphertext) *Ciphertext {
	N := ev.params.N()
	q := ev.params.QAt(c.Level)
	t := conjugationExponent(N)

	aPerm := ring.InPower(ring.NewPoly(N), c.Ax, t, q)
	bPerm := ring.InPower(ring.NewPoly(N), c.Bx, t, q)

	ta, tb := ev.keySwitch(aPerm, ev.conjKey.Key, c.Level)

	b := ring.Add(ring.NewPoly(N), tb, bPerm, q)
	return NewCiphertext(ta, b, c.Slots, c.Level)
}

// ConjugateAssign conjugates c in place.
func (ev *Evaluator) ConjugateAssign(c *Ciphertext) {
	result := ev.Conjugate(c)
	c.Ax, c.Bx = result.Ax, result.Bx
}
