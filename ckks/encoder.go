package ckks

import (
	"fmt"
	"math/big"
	"math/bits"

	"github.com/tuneinsight/ckkscore/bignum"
	"github.com/tuneinsight/ckkscore/ring"
	"github.com/tuneinsight/ckkscore/rlwe"
)

// Encoder implements the canonical-embedding map between slot vectors and
// plaintext polynomials, via a direct O(size^2) evaluation of the
// specialised FFT rather than a butterfly network.
type Encoder struct {
	params rlwe.Parameters
}

// NewEncoder returns an Encoder for params.
func NewEncoder(params rlwe.Parameters) *Encoder {
	return &Encoder{params: params}
}

func ilog2(slots int) int {
	if slots <= 0 || slots&(slots-1) != 0 {
		panic(fmt.Errorf("ckks: slot count %d is not a power of two", slots))
	}
	return bits.TrailingZeros(uint(slots))
}

// GroupIndex places vals[i] and its conjugate at the frequency positions
// the rotGroup/rotGroupInv tables designate, so that a rotation of the
// slot view later corresponds to a ring automorphism.
func (e *Encoder) GroupIndex(vals []*bignum.Complex) []*bignum.Complex {
	slots := len(vals)
	logSlots := ilog2(slots)
	rotGroup := e.params.RotGroup(logSlots)
	rotGroupInv := e.params.RotGroupInv(logSlots)

	prec := e.params.KsiPrecision()
	g := make([]*bignum.Complex, 2*slots)
	for i := range g {
		g[i] = bignum.NewComplex(prec)
	}
	for i := 0; i < slots; i++ {
		pos := (rotGroup[i] - 1) / 2
		posConj := (rotGroupInv[i] - 1) / 2
		g[pos].Set(vals[i])
		g[posConj].Conjugate(vals[i])
	}
	return g
}

// DegroupIndex recovers the ell user-visible slots from a 2*ell grouped
// vector, the inverse of GroupIndex.
func (e *Encoder) DegroupIndex(g []*bignum.Complex) []*bignum.Complex {
	slots := len(g) / 2
	logSlots := ilog2(slots)
	rotGroup := e.params.RotGroup(logSlots)

	vals := make([]*bignum.Complex, slots)
	for i := 0; i < slots; i++ {
		pos := (rotGroup[i] - 1) / 2
		vals[i] = g[pos]
	}
	return vals
}

// Encode computes fftSpecialInv(g, ...) and writes its rounded, Delta-scaled
// real parts into the gap-strided coefficients of a fresh Message at level.
func (e *Encoder) Encode(g []*bignum.Complex, level int) *Message {
	doubleslots := len(g)
	N := e.params.N()
	gap := N / doubleslots

	coeffs := e.fftSpecialInv(g, doubleslots)

	mx := ring.NewPoly(N)
	for i := 0; i < doubleslots; i++ {
		mx.Coeffs[i*gap].Set(coeffs[i])
	}
	return NewMessage(mx, doubleslots/2, level)
}

// Decode reads msg's gap-strided coefficients, centres them modulo
// q_level, and applies fftSpecial to recover the 2*slots grouped vector.
func (e *Encoder) Decode(msg *Message) []*bignum.Complex {
	slots := msg.Slots
	doubleslots := 2 * slots
	N := e.params.N()
	gap := N / doubleslots
	q := e.params.QAt(msg.Level)
	scale := new(big.Float).SetPrec(e.params.KsiPrecision()).SetInt(
		new(big.Int).Lsh(big.NewInt(1), uint(e.params.LogScale())),
	)

	prec := e.params.KsiPrecision()
	fftin := make([]*bignum.Complex, doubleslots)
	for i := 0; i < doubleslots; i++ {
		c := trueValue(NewCZZ(msg.Mx.Coeffs[i*gap], new(big.Int)), q)
		re := new(big.Float).SetPrec(prec).SetInt(c.R)
		re.Quo(re, scale)
		im := new(big.Float).SetPrec(prec).SetInt(c.I)
		im.Quo(im, scale)
		fftin[i] = &bignum.Complex{re, im}
	}
	return e.fftSpecial(fftin, doubleslots)
}

// EncodeSlots composes GroupIndex and Encode: the entry point an Encryptor
// uses to turn a user-facing slot vector into a Message.
func (e *Encoder) EncodeSlots(vals []*bignum.Complex, level int) *Message {
	return e.Encode(e.GroupIndex(vals), level)
}

// DecodeSlots composes Decode and DegroupIndex: the entry point a
// Decryptor uses to turn a Message back into a slot vector.
func (e *Encoder) DecodeSlots(msg *Message) []*bignum.Complex {
	return e.DegroupIndex(e.Decode(msg))
}

// fftSpecialInv is the specialised inverse FFT: it evaluates the inverse of
// fftSpecial against the global 2N-th root-of-unity table and scales the
// result by Delta = 2^logScale, rounding to integers.
func (e *Encoder) fftSpecialInv(vals []*bignum.Complex, size int) []*big.Int {
	N := e.params.N()
	M := 2 * N
	gap := N / size
	prec := e.params.KsiPrecision()

	scale := new(big.Float).SetPrec(prec).SetInt(
		new(big.Int).Lsh(big.NewInt(1), uint(e.params.LogScale())),
	)
	factor := new(big.Float).SetPrec(prec).Quo(scale, bignum.NewFloat(size, prec))

	out := make([]*big.Int, size)
	for i := 0; i < size; i++ {
		acc := bignum.NewComplex(prec)
		term := bignum.NewComplex(prec)
		conjRoot := bignum.NewComplex(prec)
		for k := 0; k < size; k++ {
			exp := ((2*k + 1) * i * gap) % M
			conjRoot.Conjugate(e.params.KsiPow(exp))
			term.Mul(vals[k], conjRoot)
			acc.Add(acc, term)
		}
		acc[0].Mul(acc[0], factor)
		out[i] = bignum.RoundToInt(acc[0])
	}
	return out
}

// fftSpecial is the specialised forward FFT: it evaluates the
// Delta-descaled coefficients vals at the odd-indexed 2N-th roots of unity
// that the slot grouping of size `size` designates.
func (e *Encoder) fftSpecial(vals []*bignum.Complex, size int) []*bignum.Complex {
	N := e.params.N()
	M := 2 * N
	gap := N / size
	prec := e.params.KsiPrecision()

	out := make([]*bignum.Complex, size)
	for k := 0; k < size; k++ {
		acc := bignum.NewComplex(prec)
		term := bignum.NewComplex(prec)
		for i := 0; i < size; i++ {
			exp := ((2*k + 1) * i * gap) % M
			term.Mul(vals[i], e.params.KsiPow(exp))
			acc.Add(acc, term)
		}
		out[k] = acc
	}
	return out
}
