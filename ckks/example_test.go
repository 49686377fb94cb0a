package ckks_test

import (
	"math"
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tuneinsight/ckkscore/bignum"
	"github.com/tuneinsight/ckkscore/ckks"
	"github.com/tuneinsight/ckkscore/rlwe"
	"github.com/tuneinsight/ckkscore/sampling"
)

// testScheme bundles everything an end-to-end scenario needs. Parameters
// are kept small since the ring arithmetic here is schoolbook big.Int
// arithmetic and the encoder a direct O(size^2) FFT, so a small ring keeps
// the test suite fast while exercising the same relations a production
// parameter set would.
type testScheme struct {
	params rlwe.Parameters
	sk     *rlwe.SecretKey
	enc    *ckks.Encryptor
	dec    *ckks.Decryptor
	ev     *ckks.Evaluator
}

func newTestScheme(t *testing.T) *testScheme {
	t.Helper()

	params, err := rlwe.NewParametersFromLiteral(rlwe.ParametersLiteral{
		LogN:     4,
		LogScale: 20,
		LogQ:     80,
		LogP:     40,
		L:        4,
	})
	require.NoError(t, err)

	sampler := sampling.NewDefaultSampler(sampling.NewPRNG())
	kg := rlwe.NewKeyGenerator(params, sampler)

	sk := kg.GenSecretKey(8)
	pk := kg.GenPublicKey(sk)
	evk := kg.GenEvaluationKey(sk)
	conjKey := kg.GenConjugationKey(sk)
	rotKeys := kg.GenAllRotationKeys(sk)

	return &testScheme{
		params: params,
		sk:     sk,
		enc:    ckks.NewEncryptor(params, pk, sampler),
		dec:    ckks.NewDecryptor(params, sk),
		ev:     ckks.NewEvaluator(params, evk, conjKey, rotKeys),
	}
}

func cplx(vals []complex128, prec uint) []*bignum.Complex {
	out := make([]*bignum.Complex, len(vals))
	for i, v := range vals {
		out[i] = bignum.FromComplex128(v, prec)
	}
	return out
}

func requireApprox(t *testing.T, want []complex128, got []*bignum.Complex, tol float64) {
	t.Helper()
	require.Len(t, got, len(want))

	stats, err := ckks.ComputePrecisionStats(cplx(want, got[0].Prec()), got)
	require.NoError(t, err)
	require.LessOrEqualf(t, stats.MaxAbsoluteError, tol, "max absolute error %v exceeds tolerance %v (mean %v)", stats.MaxAbsoluteError, tol, stats.MeanAbsoluteError)
}

func TestAddThenDecrypt(t *testing.T) {
	s := newTestScheme(t)
	prec := s.params.KsiPrecision()

	vals1 := cplx([]complex128{1, 2}, prec)
	vals2 := cplx([]complex128{3 + 4i, -1 + 1i}, prec)

	c1 := s.enc.Encrypt(vals1, 1)
	c2 := s.enc.Encrypt(vals2, 1)
	sum := s.ev.Add(c1, c2)

	got := s.dec.Decrypt(sum)
	requireApprox(t, []complex128{4 + 4i, 1 + 1i}, got, math.Pow(2, -10))
}

func TestMultiplyThenRescale(t *testing.T) {
	s := newTestScheme(t)
	prec := s.params.KsiPrecision()

	vals1 := cplx([]complex128{1 + 1i, 2}, prec)
	vals2 := cplx([]complex128{1 - 1i, 0.5}, prec)

	c1 := s.enc.Encrypt(vals1, 1)
	c2 := s.enc.Encrypt(vals2, 1)
	prod := s.ev.Mult(c1, c2)
	rescaled := s.ev.ModSwitchOne(prod)

	require.Equal(t, 2, rescaled.Level)
	got := s.dec.Decrypt(rescaled)
	requireApprox(t, []complex128{2, 1}, got, math.Pow(2, -8))
}

func TestDepthTwoSquareCircuit(t *testing.T) {
	s := newTestScheme(t)
	prec := s.params.KsiPrecision()

	x := s.enc.EncryptSingle(bignum.FromComplex128(0.5, prec), 1)

	y := s.ev.Square(x)
	y = s.ev.ModSwitchOne(y)

	z := s.ev.Square(y)
	z = s.ev.ModSwitchOne(z)

	require.Equal(t, 3, z.Level)
	got := s.dec.DecryptSingle(z)
	require.InDelta(t, 0.0625, real(got.ToComplex128()), math.Pow(2, -6))
}

func TestRotation(t *testing.T) {
	s := newTestScheme(t)
	prec := s.params.KsiPrecision()

	vals := cplx([]complex128{1, 2, 3, 4, 5, 6, 7, 8}, prec)
	c := s.enc.Encrypt(vals, 1)
	rotated := s.ev.LeftRotate(c, 3)

	got := s.dec.Decrypt(rotated)
	requireApprox(t, []complex128{4, 5, 6, 7, 8, 1, 2, 3}, got, math.Pow(2, -8))
}

func TestConjugate(t *testing.T) {
	s := newTestScheme(t)
	prec := s.params.KsiPrecision()

	vals := cplx([]complex128{1 + 2i, 3 - 1i}, prec)
	c := s.enc.Encrypt(vals, 1)
	conj := s.ev.Conjugate(c)

	got := s.dec.Decrypt(conj)
	requireApprox(t, []complex128{1 - 2i, 3 + 1i}, got, math.Pow(2, -8))
}

func TestConstantAdd(t *testing.T) {
	s := newTestScheme(t)
	prec := s.params.KsiPrecision()

	vals := cplx([]complex128{5, 7}, prec)
	c := s.enc.Encrypt(vals, 1)

	delta := new(big.Int).Lsh(big.NewInt(1), uint(s.params.LogScale()))
	k := new(big.Int).Mul(big.NewInt(2), delta)
	added := s.ev.AddConst(c, k)

	got := s.dec.Decrypt(added)
	requireApprox(t, []complex128{7, 9}, got, math.Pow(2, -8))
}
