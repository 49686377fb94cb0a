package ckks

import (
	"fmt"
	"math/big"

	"github.com/tuneinsight/ckkscore/bignum"
	"github.com/tuneinsight/ckkscore/ring"
	"github.com/tuneinsight/ckkscore/rlwe"
	"github.com/tuneinsight/ckkscore/sampling"
)

// Encryptor turns slot vectors into ciphertexts.
type Encryptor struct {
	params  rlwe.Parameters
	pk      *rlwe.PublicKey
	encoder *Encoder
	sampler sampling.Sampler
	sigma   float64
}

// NewEncryptor returns an Encryptor that encrypts under pk.
func NewEncryptor(params rlwe.Parameters, pk *rlwe.PublicKey, sampler sampling.Sampler) *Encryptor {
	return &Encryptor{params: params, pk: pk, encoder: NewEncoder(params), sampler: sampler, sigma: rlwe.DefaultSigma}
}

// rlweInstance draws a fresh RLWE sample under the encryptor's public key:
// a = v*pk.ax + e1, b = v*pk.bx + e0, mod q.
func (enc *Encryptor) rlweInstance(q *big.Int) (*ring.Poly, *ring.Poly) {
	N := enc.params.N()
	v := enc.sampler.SampleZO(N, 0.5)
	e0 := enc.sampler.SampleGauss(N, enc.sigma)
	e1 := enc.sampler.SampleGauss(N, enc.sigma)

	a := ring.Mult(ring.NewPoly(N), v, enc.pk.Ax, q)
	ring.AddAssign(a, e1, q)

	b := ring.Mult(ring.NewPoly(N), v, enc.pk.Bx, q)
	ring.AddAssign(b, e0, q)

	return a, b
}

// EncryptMsg encrypts an already-encoded Message.
func (enc *Encryptor) EncryptMsg(msg *Message) *Ciphertext {
	q := enc.params.QAt(msg.Level)
	a, b := enc.rlweInstance(q)
	ring.AddAssign(b, msg.Mx, q)
	return NewCiphertext(a, b, msg.Slots, msg.Level)
}

// Encrypt encodes vals at the given level and encrypts the result. len(vals)
// must be a power of two no larger than Nh.
func (enc *Encryptor) Encrypt(vals []*bignum.Complex, level int) *Ciphertext {
	if len(vals) > enc.params.Nh() {
		panic(fmt.Errorf("ckks: Encrypt: %d slots exceeds Nh=%d", len(vals), enc.params.Nh()))
	}
	msg := enc.encoder.EncodeSlots(vals, level)
	return enc.EncryptMsg(msg)
}

// EncryptSingle encrypts a single complex value as a one-slot ciphertext.
func (enc *Encryptor) EncryptSingle(val *bignum.Complex, level int) *Ciphertext {
	return enc.Encrypt([]*bignum.Complex{val}, level)
}

// EncryptWithSecretKey encrypts directly under sk, bypassing the public
// key: ax uniform, bx = e - ax*s + msg.mx mod q.
func EncryptWithSecretKey(params rlwe.Parameters, sk *rlwe.SecretKey, sampler sampling.Sampler, vals []*bignum.Complex, level int) *Ciphertext {
	if len(vals) > params.Nh() {
		panic(fmt.Errorf("ckks: EncryptWithSecretKey: %d slots exceeds Nh=%d", len(vals), params.Nh()))
	}
	encoder := NewEncoder(params)
	msg := encoder.EncodeSlots(vals, level)

	N := params.N()
	q := params.QAt(level)
	ax := sampler.SampleUniform(N, q)
	e := sampler.SampleGauss(N, rlwe.DefaultSigma)

	axs := ring.Mult(ring.NewPoly(N), ax, sk.Sx, q)
	bx := ring.Sub(ring.NewPoly(N), e, axs, q)
	ring.AddAssign(bx, msg.Mx, q)

	return NewCiphertext(ax, bx, msg.Slots, msg.Level)
}
