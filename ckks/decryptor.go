package ckks

import (
	"github.com/tuneinsight/ckkscore/bignum"
	"github.com/tuneinsight/ckkscore/ring"
	"github.com/tuneinsight/ckkscore/rlwe"
)

// Decryptor recovers plaintexts from ciphertexts under a secret key.
type Decryptor struct {
	params  rlwe.Parameters
	sk      *rlwe.SecretKey
	encoder *Encoder
}

// NewDecryptor returns a Decryptor using sk.
func NewDecryptor(params rlwe.Parameters, sk *rlwe.SecretKey) *Decryptor {
	return &Decryptor{params: params, sk: sk, encoder: NewEncoder(params)}
}

// DecryptMsg computes mx = c.ax*sk.sx + c.bx mod q_level and returns it as
// a Message, without decoding to slots.
func (dec *Decryptor) DecryptMsg(c *Ciphertext) *Message {
	q := dec.params.QAt(c.Level)
	mx := ring.Mult(ring.NewPoly(dec.params.N()), c.Ax, dec.sk.Sx, q)
	ring.AddAssign(mx, c.Bx, q)
	return NewMessage(mx, c.Slots, c.Level)
}

// Decrypt decrypts and decodes c into its slot vector.
func (dec *Decryptor) Decrypt(c *Ciphertext) []*bignum.Complex {
	return dec.encoder.DecodeSlots(dec.DecryptMsg(c))
}

// DecryptSingle decrypts a one-slot ciphertext to its single value.
func (dec *Decryptor) DecryptSingle(c *Ciphertext) *bignum.Complex {
	return dec.Decrypt(c)[0]
}
