package ckks

import (
	"fmt"

	"github.com/tuneinsight/ckkscore/ring"
)

// LeftRotateByPo2 rotates c's slots left by 2^k, via the automorphism
// X -> X^(rotGroup[logNh][2^k]) and a key-switch under rotKeys[k]. k must
// be in [0, logNh).
func (ev *Evaluator) LeftRotateByPo2(c *Ciphertext, k int) *Ciphertext {
	if k < 0 || k >= ev.params.LogNh() {
		panic(fmt.Errorf("ckks: LeftRotateByPo2: k=%d out of range [0,%d)", k, ev.params.LogNh()))
	}
	key, ok := ev.rotKeys.Get(k)
	if !ok {
		panic(fmt.Errorf("ckks: LeftRotateByPo2: no rotation key for k=%d", k))
	}

	N := ev.params.N()
	q := ev.params.QAt(c.Level)
	t := ev.params.RotationExponent(k)

	aPerm := ring.InPower(ring.NewPoly(N), c.Ax, t, q)
	bPerm := ring.InPower(ring.NewPoly(N), c.Bx, t, q)

	ta, tb := ev.keySwitch(aPerm, key, c.Level)
	b := ring.Add(ring.NewPoly(N), tb, bPerm, q)

	return NewCiphertext(ta, b, c.Slots, c.Level)
}

// LeftRotateByPo2Assign rotates c in place left by 2^k.
func (ev *Evaluator) LeftRotateByPo2Assign(c *Ciphertext, k int) {
	result := ev.LeftRotateByPo2(c, k)
	c.Ax, c.Bx = result.Ax, result.Bx
}

// LeftRotate rotates c's slots left by steps, decomposing steps into
// powers of two (ascending bit order, since the underlying automorphisms
// commute) and applying LeftRotateByPo2 for each set bit. steps=0 is a
// special case returning a copy unchanged.
func (ev *Evaluator) LeftRotate(c *Ciphertext, steps int) *Ciphertext {
	Nh := ev.params.Nh()
	steps = ((steps % Nh) + Nh) % Nh
	if steps == 0 {
		return c.Copy()
	}

	result := c
	first := true
	for i := 0; i < ev.params.LogNh(); i++ {
		if steps&(1<<i) == 0 {
			continue
		}
		if first {
			result = ev.LeftRotateByPo2(c, i)
			first = false
		} else {
			result = ev.LeftRotateByPo2(result, i)
		}
	}
	return result
}

// LeftRotateAssign rotates c in place left by steps.
func (ev *Evaluator) LeftRotateAssign(c *Ciphertext, steps int) {
	result := ev.LeftRotate(c, steps)
	c.Ax, c.Bx = result.Ax, result.Bx
}

// RightRotate rotates c's slots right by steps: the mirror of LeftRotate
// (right-rotate-by-s == left-rotate by Nh-s).
func (ev *Evaluator) RightRotate(c *Ciphertext, steps int) *Ciphertext {
	Nh := ev.params.Nh()
	steps = ((steps % Nh) + Nh) % Nh
	return ev.LeftRotate(c, Nh-steps)
}

// RightRotateAssign rotates c in place right by steps.
func (ev *Evaluator) RightRotateAssign(c *Ciphertext, steps int) {
	result := ev.RightRotate(c, steps)
	c.Ax, c.Bx = result.Ax, result.Bx
}
