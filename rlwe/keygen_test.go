package rlwe

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tuneinsight/ckkscore/ring"
	"github.com/tuneinsight/ckkscore/sampling"
)

func testSampler() sampling.Sampler {
	return sampling.NewDefaultSampler(sampling.NewPRNG())
}

// noiseBound gives a generous noise ceiling for a test's tolerance check:
// a Gaussian error term of standard deviation sigma essentially never
// exceeds sigma*6 in absolute value, times a small safety factor for the
// polynomial's N-term inner products.
func noiseBound(N int, sigma float64) *big.Int {
	bound := int64(sigma*6) * int64(N)
	return big.NewInt(bound)
}

func TestGenPublicKeyEncryptsZero(t *testing.T) {
	params, err := NewParametersFromLiteral(testLiteral())
	require.NoError(t, err)

	kg := NewKeyGenerator(params, testSampler())
	sk := kg.GenSecretKey(4)
	pk := kg.GenPublicKey(sk)

	q := params.QAt(1)
	axs := ring.Mult(ring.NewPoly(params.N()), pk.Ax, sk.Sx, q)
	noise := ring.Add(ring.NewPoly(params.N()), pk.Bx, axs, q)

	bound := noiseBound(params.N(), kg.sigma)
	for _, c := range noise.Coeffs {
		require.True(t, new(big.Int).Abs(c).Cmp(bound) <= 0, "public key noise term out of bound: %v", c)
	}
}

func TestGenEvaluationKeyEncryptsPTimesSSquared(t *testing.T) {
	params, err := NewParametersFromLiteral(testLiteral())
	require.NoError(t, err)

	kg := NewKeyGenerator(params, testSampler())
	sk := kg.GenSecretKey(4)
	evk := kg.GenEvaluationKey(sk)

	pq := params.PQAt(1)
	s2 := ring.Mult(ring.NewPoly(params.N()), sk.Sx, sk.Sx, pq)
	want := ring.MultByConst(ring.NewPoly(params.N()), s2, params.P(), pq)

	axs := ring.Mult(ring.NewPoly(params.N()), evk.Key.Ax, sk.Sx, pq)
	got := ring.Add(ring.NewPoly(params.N()), evk.Key.Bx, axs, pq)

	diff := ring.Sub(ring.NewPoly(params.N()), got, want, pq)
	bound := noiseBound(params.N(), kg.sigma)
	for _, c := range diff.Coeffs {
		require.True(t, new(big.Int).Abs(c).Cmp(bound) <= 0, "evaluation key noise term out of bound: %v", c)
	}
}

func TestGenAllRotationKeysCoversEveryStep(t *testing.T) {
	params, err := NewParametersFromLiteral(testLiteral())
	require.NoError(t, err)

	kg := NewKeyGenerator(params, testSampler())
	sk := kg.GenSecretKey(4)
	set := kg.GenAllRotationKeys(sk)

	for k := 0; k < params.LogNh(); k++ {
		_, ok := set.Get(k)
		require.True(t, ok, "missing rotation key for k=%d", k)
	}
}
