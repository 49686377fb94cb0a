package rlwe

import "github.com/tuneinsight/ckkscore/ring"

// SecretKey holds the sparse ternary polynomial s used both to decrypt and,
// under the special-modulus trick, to build every switching key.
type SecretKey struct {
	Sx *ring.Poly
}

// PublicKey is an RLWE encryption of zero under Sx, usable to encrypt
// without access to the secret key.
type PublicKey struct {
	Ax *ring.Poly
	Bx *ring.Poly
}

// SwitchingKey is an RLWE encryption of P*target under the secret key, at
// the extended modulus P*Q. Relinearization, conjugation and rotation keys
// all share this shape; only what "target" encrypts differs.
type SwitchingKey struct {
	Ax *ring.Poly
	Bx *ring.Poly
}

// EvaluationKey is the relinearization key: a SwitchingKey encrypting P*s^2.
type EvaluationKey struct {
	Key *SwitchingKey
}

// ConjugationKey is the SwitchingKey encrypting P*sigma(s), sigma the
// conjugation automorphism X -> X^(2N-1).
type ConjugationKey struct {
	Key *SwitchingKey
}

// RotationKeySet holds one SwitchingKey per rotate-by-2^k automorphism,
// keyed by k = 0..LogNh-1.
type RotationKeySet struct {
	Keys map[int]*SwitchingKey
}

// NewRotationKeySet returns an empty set ready to be filled by a KeyGenerator.
func NewRotationKeySet() *RotationKeySet {
	return &RotationKeySet{Keys: make(map[int]*SwitchingKey)}
}

// Get returns the switching key for rotate-by-2^k, and whether it exists.
func (r *RotationKeySet) Get(k int) (*SwitchingKey, bool) {
	key, ok := r.Keys[k]
	return key, ok
}
