package ring

import (
	"math/big"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func bi(v int64) *big.Int { return big.NewInt(v) }

func coeffsOf(p *Poly) []int64 {
	out := make([]int64, p.N())
	for i, c := range p.Coeffs {
		out[i] = c.Int64()
	}
	return out
}

func TestAddSub(t *testing.T) {
	q := bi(97)
	N := 4
	x := NewPoly(N)
	y := NewPoly(N)
	x.Coeffs[0].SetInt64(10)
	x.Coeffs[1].SetInt64(20)
	y.Coeffs[0].SetInt64(5)
	y.Coeffs[2].SetInt64(3)

	sum := NewPoly(N)
	Add(sum, x, y, q)
	require.Equal(t, []int64{15, 20, 3, 0}, coeffsOf(sum))

	diff := NewPoly(N)
	Sub(diff, x, y, q)
	require.Equal(t, []int64{5, 20, -3, 0}, coeffsOf(diff))
}

func TestMultNegacyclicWrap(t *testing.T) {
	q := bi(1000)
	N := 4
	x := NewPoly(N) // X
	x.Coeffs[1].SetInt64(1)
	y := NewPoly(N) // X^3
	y.Coeffs[3].SetInt64(1)

	out := NewPoly(N)
	Mult(out, x, y, q)
	// X * X^3 = X^4 = -1 mod X^4+1
	if diff := cmp.Diff([]int64{-1, 0, 0, 0}, coeffsOf(out)); diff != "" {
		t.Fatalf("unexpected product (-want +got):\n%s", diff)
	}
}

func TestMultByMonomialWrap(t *testing.T) {
	N := 4
	x := NewPoly(N)
	x.Coeffs[0].SetInt64(1)
	x.Coeffs[3].SetInt64(2)

	out := NewPoly(N)
	MultByMonomial(out, x, 1)
	// 1 -> X, 2X^3 -> 2X^4 = -2
	require.Equal(t, []int64{-2, 1, 0, 0}, coeffsOf(out))
}

func TestConjugateIsSelfInverse(t *testing.T) {
	N := 8
	x := NewPoly(N)
	for i := 0; i < N; i++ {
		x.Coeffs[i].SetInt64(int64(i + 1))
	}
	once := NewPoly(N)
	Conjugate(once, x)
	twice := NewPoly(N)
	Conjugate(twice, once)
	require.True(t, x.Equals(twice))
}

func TestInPowerConjugateMatchesConjugate(t *testing.T) {
	q := bi(10007)
	N := 8
	x := NewPoly(N)
	for i := 0; i < N; i++ {
		x.Coeffs[i].SetInt64(int64(i + 1))
	}

	want := NewPoly(N)
	Conjugate(want, x)
	want.Reduce(q)

	got := NewPoly(N)
	InPower(got, x, 2*N-1, q)

	require.True(t, want.Equals(got))
}

func TestRightShiftRounds(t *testing.T) {
	N := 2
	x := NewPoly(N)
	x.Coeffs[0].SetInt64(7)
	x.Coeffs[1].SetInt64(-7)

	out := NewPoly(N)
	RightShift(out, x, 1)
	require.Equal(t, []int64{4, -4}, coeffsOf(out))
}

func TestTruncateCentres(t *testing.T) {
	N := 2
	x := NewPoly(N)
	x.Coeffs[0].SetInt64(100)
	out := NewPoly(N)
	Truncate(out, x, 6) // mod 64: 100 mod 64 = 36 -> centred -28
	require.Equal(t, int64(-28), out.Coeffs[0].Int64())
}
