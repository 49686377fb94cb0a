// Package sampling implements the polynomial-sampling primitives an RLWE
// scheme needs: uniform, discrete Gaussian, ternary (sampleZO) and
// Hamming-weight-constrained (sampleHWT) distributions.
package sampling

import (
	"crypto/rand"
	"encoding/binary"
	"io"
	"math/big"

	"github.com/zeebo/blake3"
)

// PRNG is a source of random bytes. ThreadSafePRNG draws from crypto/rand;
// KeyedPRNG reproduces a deterministic sequence from a seed via a
// blake3-keyed extendable output function.
type PRNG interface {
	io.Reader
}

// ThreadSafePRNG draws bytes from the operating system's CSPRNG.
type ThreadSafePRNG struct{}

// NewPRNG returns a PRNG safe for concurrent use by independent samplers.
func NewPRNG() *ThreadSafePRNG { return &ThreadSafePRNG{} }

// Read implements io.Reader.
func (p *ThreadSafePRNG) Read(b []byte) (int, error) { return rand.Read(b) }

// KeyedPRNG deterministically reproduces the same byte sequence for the
// same seed, via a blake3 extendable-output stream. NOT safe for concurrent
// use: each Read advances the shared digest.
type KeyedPRNG struct {
	digest *blake3.Hasher
	out    io.Reader
}

// NewKeyedPRNG seeds a deterministic PRNG from seed. A nil or empty seed is
// insecure and should only be used in tests.
func NewKeyedPRNG(seed []byte) (*KeyedPRNG, error) {
	h := blake3.New()
	if _, err := h.Write(seed); err != nil {
		return nil, err
	}
	return &KeyedPRNG{digest: h, out: h.Digest()}, nil
}

// Read implements io.Reader.
func (p *KeyedPRNG) Read(b []byte) (int, error) { return p.out.Read(b) }

// RandUint64 returns a uniformly random uint64 drawn from prng.
func RandUint64(prng PRNG) uint64 {
	var b [8]byte
	if _, err := io.ReadFull(prng, b[:]); err != nil {
		panic(err)
	}
	return binary.LittleEndian.Uint64(b[:])
}

// RandInt returns a uniformly random value in [0, max) drawn from prng.
func RandInt(prng PRNG, max *big.Int) *big.Int {
	n, err := rand.Int(readerOf(prng), max)
	if err != nil {
		panic(err)
	}
	return n
}

// readerOf adapts a PRNG to the io.Reader that crypto/rand.Int expects,
// which is exactly what PRNG already is.
func readerOf(prng PRNG) io.Reader { return prng }
