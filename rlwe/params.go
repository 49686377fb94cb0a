// Package rlwe holds the scheme-independent RLWE machinery: parameter
// validation, key material and key generation. The homomorphic scheme
// itself (encoding, encryption, evaluation) lives in package ckks; this
// package is its foundation.
package rlwe

import (
	"fmt"
	"math/big"

	"github.com/tuneinsight/ckkscore/bignum"
)

// GaloisGen is the generator of the index-2 subgroup of (Z/2NZ)* used to
// order plaintext slots under the canonical embedding. 5 generates this
// subgroup for every power-of-two N.
const GaloisGen = 5

// MinLogN and MaxLogN bound the supported ring degrees.
const (
	MinLogN = 3
	MaxLogN = 16
)

// ksiPrecision is the bit precision used to build the root-of-unity table.
// It comfortably exceeds logq+logP for every parameter set this module's
// test scenarios exercise.
const ksiPrecision = 192

// ParametersLiteral is the user-facing, unvalidated description of a
// parameter set: what the caller asks for. NewParametersFromLiteral turns
// it into a validated, immutable Parameters value with every derived table
// computed and frozen.
type ParametersLiteral struct {
	LogN     int // ring degree exponent: N = 1<<LogN
	LogScale int // base precision: rescaling divides by 2^LogScale each level
	LogQ     int // top-level (freshest) ciphertext modulus exponent
	LogP     int // special-modulus exponent used for key-switching
	L        int // number of levels in the modulus chain
}

// Parameters is the immutable, validated configuration shared by every
// key, ciphertext and evaluator operation. Build one with
// NewParametersFromLiteral; there is no exported mutator.
type Parameters struct {
	n        int
	logN     int
	logNh    int
	logScale int
	logQ     int
	logP     int
	l        int

	p   *big.Int
	qi  []*big.Int // qi[j] = 2^(logQ - logScale*j), j = 0..L-1
	pqi []*big.Int // pqi[j] = P * qi[j]

	rotGroup    [][]int // rotGroup[s][i], s = 0..logNh, i = 0..(1<<s)-1
	rotGroupInv [][]int

	ksiPows []*bignum.Complex // length 2N+1, ksiPows[j] = e^{i*pi*j/N}
}

// NewParametersFromLiteral validates lit and derives every table the
// scheme needs. It is the only constructor: every Parameters value in
// this module is therefore well-formed by construction.
func NewParametersFromLiteral(lit ParametersLiteral) (Parameters, error) {
	if lit.LogN < MinLogN || lit.LogN > MaxLogN {
		return Parameters{}, fmt.Errorf("rlwe: LogN=%d out of supported range [%d,%d]", lit.LogN, MinLogN, MaxLogN)
	}
	if lit.L < 1 {
		return Parameters{}, fmt.Errorf("rlwe: L must be >= 1, got %d", lit.L)
	}
	if lit.LogScale <= 0 {
		return Parameters{}, fmt.Errorf("rlwe: LogScale must be positive, got %d", lit.LogScale)
	}
	if lit.LogQ < lit.LogScale*(lit.L-1)+1 {
		return Parameters{}, fmt.Errorf("rlwe: LogQ=%d too small for LogScale=%d over L=%d levels", lit.LogQ, lit.LogScale, lit.L)
	}
	if lit.LogP <= 0 {
		return Parameters{}, fmt.Errorf("rlwe: LogP must be positive, got %d", lit.LogP)
	}

	n := 1 << lit.LogN
	logNh := lit.LogN - 1

	p := new(big.Int).Lsh(big.NewInt(1), uint(lit.LogP))

	qi := make([]*big.Int, lit.L)
	pqi := make([]*big.Int, lit.L)
	for j := 0; j < lit.L; j++ {
		exp := lit.LogQ - lit.LogScale*j
		if exp <= 0 {
			return Parameters{}, fmt.Errorf("rlwe: modulus chain exhausted before level %d (exponent %d)", j+1, exp)
		}
		qi[j] = new(big.Int).Lsh(big.NewInt(1), uint(exp))
		pqi[j] = new(big.Int).Mul(p, qi[j])
	}

	rotGroup, rotGroupInv := buildRotGroups(logNh)
	ksiPows := buildKsiPows(n)

	return Parameters{
		n:           n,
		logN:        lit.LogN,
		logNh:       logNh,
		logScale:    lit.LogScale,
		logQ:        lit.LogQ,
		logP:        lit.LogP,
		l:           lit.L,
		p:           p,
		qi:          qi,
		pqi:         pqi,
		rotGroup:    rotGroup,
		rotGroupInv: rotGroupInv,
		ksiPows:     ksiPows,
	}, nil
}

// buildRotGroups computes, for every slot count 1<<s with s = 0..logNh,
// the generator-power table used by the encoder's group/degroup indexing
// to place a slot's value (and its conjugate) at the frequency position
// that the rotation automorphism X -> X^(5^t) moves predictably. Row
// logNh doubles as the exponent table for rotate-by-power-of-two, since
// for s=logNh the modulus 4*slots equals 2N, the ring's own automorphism
// modulus.
func buildRotGroups(logNh int) ([][]int, [][]int) {
	rotGroup := make([][]int, logNh+1)
	rotGroupInv := make([][]int, logNh+1)
	for s := 0; s <= logNh; s++ {
		slots := 1 << s
		mod := 4 * slots
		row := make([]int, slots)
		rowInv := make([]int, slots)
		pow := 1
		for i := 0; i < slots; i++ {
			row[i] = pow
			rowInv[i] = (mod - pow) % mod
			pow = (pow * GaloisGen) % mod
		}
		rotGroup[s] = row
		rotGroupInv[s] = rowInv
	}
	return rotGroup, rotGroupInv
}

// buildKsiPows precomputes the 2N-th roots of unity e^{i*pi*j/N}, for
// j = 0..2N, at ksiPrecision bits via bignum's arbitrary-precision
// trigonometric routines. Every slot count's FFT indexes into this one
// table through a gap multiplier, so it is built once, at the module's
// top resolution.
func buildKsiPows(N int) []*bignum.Complex {
	M := 2 * N
	out := make([]*bignum.Complex, M+1)
	for j := 0; j <= M; j++ {
		angle := bignum.NewFloat(j, ksiPrecision)
		angle.Mul(angle, bignum.Pi(ksiPrecision))
		angle.Quo(angle, bignum.NewFloat(N, ksiPrecision))
		out[j] = &bignum.Complex{bignum.Cos(angle), bignum.Sin(angle)}
	}
	return out
}

// N returns the ring degree.
func (p Parameters) N() int { return p.n }

// Nh returns the maximum slot count, N/2.
func (p Parameters) Nh() int { return p.n / 2 }

// LogN returns log2(N).
func (p Parameters) LogN() int { return p.logN }

// LogNh returns log2(N/2).
func (p Parameters) LogNh() int { return p.logNh }

// LogScale returns the base-precision exponent: rescaling divides the
// ciphertext modulus by 2^LogScale each level.
func (p Parameters) LogScale() int { return p.logScale }

// LogQ returns the top-level modulus exponent.
func (p Parameters) LogQ() int { return p.logQ }

// LogP returns the special-modulus exponent.
func (p Parameters) LogP() int { return p.logP }

// L returns the number of levels in the modulus chain.
func (p Parameters) L() int { return p.l }

// P returns the special modulus 2^LogP used for key-switching.
func (p Parameters) P() *big.Int { return p.p }

// Qi returns the modulus at level-1 index j (level = j+1): 2^(logQ - logScale*j).
func (p Parameters) Qi(j int) *big.Int { return p.qi[j] }

// PQi returns P * Qi(j).
func (p Parameters) PQi(j int) *big.Int { return p.pqi[j] }

// QAt returns the ciphertext modulus for the given level, level in [1, L].
func (p Parameters) QAt(level int) *big.Int {
	if level < 1 || level > p.l {
		panic(fmt.Errorf("rlwe: level %d out of range [1,%d]", level, p.l))
	}
	return p.qi[level-1]
}

// PQAt returns P * QAt(level).
func (p Parameters) PQAt(level int) *big.Int {
	if level < 1 || level > p.l {
		panic(fmt.Errorf("rlwe: level %d out of range [1,%d]", level, p.l))
	}
	return p.pqi[level-1]
}

// RotGroup returns the generator-power table for a given slot count's log2.
func (p Parameters) RotGroup(logSlots int) []int { return p.rotGroup[logSlots] }

// RotGroupInv returns the conjugate-partner table for a given slot count's log2.
func (p Parameters) RotGroupInv(logSlots int) []int { return p.rotGroupInv[logSlots] }

// RotationExponent returns the automorphism exponent X -> X^t for rotating
// by 2^k slots.
func (p Parameters) RotationExponent(k int) int {
	if k < 0 || k >= p.logNh {
		panic(fmt.Errorf("rlwe: rotation step exponent k=%d out of range [0,%d)", k, p.logNh))
	}
	return p.rotGroup[p.logNh][1<<k]
}

// KsiPow returns the j-th entry of the global 2N-th root-of-unity table,
// j taken modulo 2N+... callers pass j already reduced into [0, 2N].
func (p Parameters) KsiPow(j int) *bignum.Complex { return p.ksiPows[j] }

// KsiPrecision returns the bit precision the root-of-unity table was built at.
func (p Parameters) KsiPrecision() uint { return ksiPrecision }
