package ckks

import "github.com/tuneinsight/ckkscore/ring"

// Ciphertext is an RLWE-style pair (ax, bx) that decrypts to
// bx + ax*s mod q_level ~= Delta*plaintext.
//
// Invariants maintained by every method in this package that returns or
// mutates a Ciphertext:
//   - Slots is never changed by an operator.
//   - Level is unchanged except by ModSwitch/ModSwitchOne/ModEmbed.
//   - two-input operators require both inputs at the same level.
//   - Ax, Bx coefficients are reduced mod q_Level.
type Ciphertext struct {
	Ax    *ring.Poly
	Bx    *ring.Poly
	Slots int
	Level int
}

// NewCiphertext wraps (ax, bx) at the given slot count and level.
func NewCiphertext(ax, bx *ring.Poly, slots, level int) *Ciphertext {
	return &Ciphertext{Ax: ax, Bx: bx, Slots: slots, Level: level}
}

// Copy returns a deep copy of c.
func (c *Ciphertext) Copy() *Ciphertext {
	return &Ciphertext{Ax: c.Ax.Copy(), Bx: c.Bx.Copy(), Slots: c.Slots, Level: c.Level}
}
