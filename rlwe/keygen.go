package rlwe

import (
	"github.com/tuneinsight/ckkscore/ring"
	"github.com/tuneinsight/ckkscore/sampling"
)

// DefaultSigma is the default RLWE error standard deviation.
const DefaultSigma = 3.2

// KeyGenerator produces secret, public and switching key material for a
// fixed Parameters value.
type KeyGenerator struct {
	params  Parameters
	sampler sampling.Sampler
	sigma   float64
}

// NewKeyGenerator returns a KeyGenerator drawing randomness from sampler,
// using DefaultSigma for every Gaussian error term.
func NewKeyGenerator(params Parameters, sampler sampling.Sampler) *KeyGenerator {
	return &KeyGenerator{params: params, sampler: sampler, sigma: DefaultSigma}
}

// GenSecretKey draws a Hamming-weight-h ternary secret key.
func (kg *KeyGenerator) GenSecretKey(h int) *SecretKey {
	return &SecretKey{Sx: kg.sampler.SampleHWT(kg.params.N(), h)}
}

// GenPublicKey encrypts zero under sk at the top-level modulus: an RLWE
// instance (ax, bx) with bx = e - ax*s mod Q.
func (kg *KeyGenerator) GenPublicKey(sk *SecretKey) *PublicKey {
	N := kg.params.N()
	q := kg.params.QAt(1)

	ax := kg.sampler.SampleUniform(N, q)
	e := kg.sampler.SampleGauss(N, kg.sigma)

	axs := ring.Mult(ring.NewPoly(N), ax, sk.Sx, q)
	bx := ring.Sub(ring.NewPoly(N), e, axs, q)

	return &PublicKey{Ax: ax, Bx: bx}
}

// switchingKeyFor builds an RLWE encryption of P*target under sk, at the
// extended modulus P*Q(top level): the shared shape behind every
// relinearization, conjugation and rotation key.
func (kg *KeyGenerator) switchingKeyFor(sk *SecretKey, target *ring.Poly) *SwitchingKey {
	N := kg.params.N()
	pq := kg.params.PQAt(1)

	scaled := ring.MultByConst(ring.NewPoly(N), target, kg.params.P(), pq)
	ax := kg.sampler.SampleUniform(N, pq)
	e := kg.sampler.SampleGauss(N, kg.sigma)

	axs := ring.Mult(ring.NewPoly(N), ax, sk.Sx, pq)
	bx := ring.Add(ring.NewPoly(N), scaled, e, pq)
	ring.SubAssign(bx, axs, pq)

	return &SwitchingKey{Ax: ax, Bx: bx}
}

// GenEvaluationKey builds the relinearization key encrypting P*s^2, needed
// to bring a degree-2 tensor product back to an RLWE pair after multiplication.
func (kg *KeyGenerator) GenEvaluationKey(sk *SecretKey) *EvaluationKey {
	pq := kg.params.PQAt(1)
	s2 := ring.Mult(ring.NewPoly(kg.params.N()), sk.Sx, sk.Sx, pq)
	return &EvaluationKey{Key: kg.switchingKeyFor(sk, s2)}
}

// GenConjugationKey builds the key encrypting P*sigma(s), sigma the
// conjugation automorphism X -> X^(2N-1).
func (kg *KeyGenerator) GenConjugationKey(sk *SecretKey) *ConjugationKey {
	N := kg.params.N()
	pq := kg.params.PQAt(1)
	sigmaS := ring.InPower(ring.NewPoly(N), sk.Sx, 2*N-1, pq)
	return &ConjugationKey{Key: kg.switchingKeyFor(sk, sigmaS)}
}

// GenRotationKey builds the switching key for rotate-by-2^k, encrypting
// P*tau_{g^(2^k)}(s).
func (kg *KeyGenerator) GenRotationKey(sk *SecretKey, k int) *SwitchingKey {
	pq := kg.params.PQAt(1)
	t := kg.params.RotationExponent(k)
	tauS := ring.InPower(ring.NewPoly(kg.params.N()), sk.Sx, t, pq)
	return kg.switchingKeyFor(sk, tauS)
}

// GenRotationKeys builds a full RotationKeySet for every k in ks.
func (kg *KeyGenerator) GenRotationKeys(sk *SecretKey, ks []int) *RotationKeySet {
	set := NewRotationKeySet()
	for _, k := range ks {
		set.Keys[k] = kg.GenRotationKey(sk, k)
	}
	return set
}

// GenAllRotationKeys builds a RotationKeySet covering every valid rotation
// step exponent k = 0..LogNh-1, enough to support any leftRotate(steps)
// via its binary decomposition.
func (kg *KeyGenerator) GenAllRotationKeys(sk *SecretKey) *RotationKeySet {
	ks := make([]int, kg.params.LogNh())
	for i := range ks {
		ks[i] = i
	}
	return kg.GenRotationKeys(sk, ks)
}
