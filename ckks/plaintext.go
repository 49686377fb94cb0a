package ckks

import "github.com/tuneinsight/ckkscore/ring"

// Message is a plaintext: a degree-<N polynomial together with the slot
// count it was encoded for and the level (ciphertext-modulus index) it is
// valid at.
type Message struct {
	Mx    *ring.Poly
	Slots int
	Level int
}

// NewMessage wraps mx as a Message at the given slot count and level.
func NewMessage(mx *ring.Poly, slots, level int) *Message {
	return &Message{Mx: mx, Slots: slots, Level: level}
}
