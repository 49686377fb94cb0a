package ring

import (
	"fmt"
	"math/big"
)

func sameDegree(a, b *Poly) int {
	if a.N() != b.N() {
		panic(fmt.Errorf("ring: degree mismatch %d != %d", a.N(), b.N()))
	}
	return a.N()
}

// Add sets out = x + y mod q and returns out.
func Add(out, x, y *Poly, q *big.Int) *Poly {
	N := sameDegree(x, y)
	for i := 0; i < N; i++ {
		out.Coeffs[i].Add(x.Coeffs[i], y.Coeffs[i])
		centre(out.Coeffs[i], q)
	}
	return out
}

// AddAssign sets x = x + y mod q.
func AddAssign(x, y *Poly, q *big.Int) {
	Add(x, x, y, q)
}

// Sub sets out = x - y mod q and returns out.
func Sub(out, x, y *Poly, q *big.Int) *Poly {
	N := sameDegree(x, y)
	for i := 0; i < N; i++ {
		out.Coeffs[i].Sub(x.Coeffs[i], y.Coeffs[i])
		centre(out.Coeffs[i], q)
	}
	return out
}

// SubAssign sets x = x - y mod q.
func SubAssign(x, y *Poly, q *big.Int) {
	Sub(x, x, y, q)
}

// Mult sets out to the negacyclic convolution x*y mod (X^N+1) mod q.
func Mult(out, x, y *Poly, q *big.Int) *Poly {
	N := sameDegree(x, y)
	acc := make([]*big.Int, N)
	for i := range acc {
		acc[i] = new(big.Int)
	}
	tmp := new(big.Int)
	for i := 0; i < N; i++ {
		if x.Coeffs[i].Sign() == 0 {
			continue
		}
		for j := 0; j < N; j++ {
			if y.Coeffs[j].Sign() == 0 {
				continue
			}
			tmp.Mul(x.Coeffs[i], y.Coeffs[j])
			k := i + j
			if k < N {
				acc[k].Add(acc[k], tmp)
			} else {
				acc[k-N].Sub(acc[k-N], tmp)
			}
		}
	}
	for i := 0; i < N; i++ {
		out.Coeffs[i].Set(acc[i])
		centre(out.Coeffs[i], q)
	}
	return out
}

// MultAssign sets x = x*y mod (X^N+1) mod q.
func MultAssign(x, y *Poly, q *big.Int) {
	Mult(x, x, y, q)
}

// Square sets out = x*x mod (X^N+1) mod q.
func Square(out, x *Poly, q *big.Int) *Poly {
	return Mult(out, x, x, q)
}

// MultByConst sets out = k*x mod q.
func MultByConst(out, x *Poly, k, q *big.Int) *Poly {
	for i, c := range x.Coeffs {
		out.Coeffs[i].Mul(c, k)
		centre(out.Coeffs[i], q)
	}
	return out
}

// MultByConstAssign sets x = k*x mod q.
func MultByConstAssign(x *Poly, k, q *big.Int) {
	MultByConst(x, x, k, q)
}

// MultByMonomial sets out = x * X^d, reducing mod X^N+1 (sign-flip on
// negacyclic wraparound). d may be negative.
func MultByMonomial(out, x *Poly, d int) *Poly {
	N := x.N()
	d = ((d % (2 * N)) + 2*N) % (2 * N)
	res := make([]*big.Int, N)
	for i := range res {
		res[i] = new(big.Int)
	}
	for i := 0; i < N; i++ {
		k := i + d
		neg := (k / N) % 2
		k = k % N
		if neg == 0 {
			res[k].Add(res[k], x.Coeffs[i])
		} else {
			res[k].Sub(res[k], x.Coeffs[i])
		}
	}
	for i := 0; i < N; i++ {
		out.Coeffs[i].Set(res[i])
	}
	return out
}

// MultByMonomialAssign sets x = x * X^d.
func MultByMonomialAssign(x *Poly, d int) {
	MultByMonomial(x, x, d)
}

// Conjugate sets out to the permutation of x implementing the automorphism
// X -> X^-1 mod (X^N+1) (no modulus reduction; caller supplies one).
func Conjugate(out, x *Poly) *Poly {
	N := x.N()
	res := make([]*big.Int, N)
	for i := range res {
		res[i] = new(big.Int)
	}
	res[0].Set(x.Coeffs[0])
	for i := 1; i < N; i++ {
		res[N-i].Neg(x.Coeffs[i])
	}
	for i := 0; i < N; i++ {
		out.Coeffs[i].Set(res[i])
	}
	return out
}

// InPower sets out to the automorphism X -> X^t applied to x, reduced
// mod (X^N+1) and mod q. t is taken modulo 2N; odd t gives a ring
// automorphism. This implements both the rotation automorphism
// (t = rotGroup[...][2^k]) and, via t = 2N-1, the conjugation automorphism.
func InPower(out, x *Poly, t int, q *big.Int) *Poly {
	N := x.N()
	M := 2 * N
	t = ((t % M) + M) % M
	res := make([]*big.Int, N)
	for i := range res {
		res[i] = new(big.Int)
	}
	for i := 0; i < N; i++ {
		if x.Coeffs[i].Sign() == 0 {
			continue
		}
		e := (i * t) % M
		r := e % N
		neg := (e / N) % 2
		if neg == 0 {
			res[r].Add(res[r], x.Coeffs[i])
		} else {
			res[r].Sub(res[r], x.Coeffs[i])
		}
	}
	for i := 0; i < N; i++ {
		out.Coeffs[i].Set(res[i])
		centre(out.Coeffs[i], q)
	}
	return out
}

// RightShift sets out = round(x / 2^bits), rounding ties away from zero, and
// returns out. No modulus reduction is applied — the caller's modulus has
// itself shrunk by the same factor.
func RightShift(out, x *Poly, bits int) *Poly {
	if bits == 0 {
		out.CopyFrom(x)
		return out
	}
	half := new(big.Int).Lsh(big.NewInt(1), uint(bits-1))
	for i, c := range x.Coeffs {
		v := new(big.Int).Set(c)
		if v.Sign() >= 0 {
			v.Add(v, half)
			v.Rsh(v, uint(bits))
		} else {
			v.Neg(v)
			v.Add(v, half)
			v.Rsh(v, uint(bits))
			v.Neg(v)
		}
		out.Coeffs[i].Set(v)
	}
	return out
}

// RightShiftAssign sets x = round(x / 2^bits).
func RightShiftAssign(x *Poly, bits int) {
	RightShift(x, x, bits)
}

// Truncate centre-reduces every coefficient of x into the representative
// range of a modulus 2^logQNew, without dividing.
func Truncate(out, x *Poly, logQNew int) *Poly {
	qNew := new(big.Int).Lsh(big.NewInt(1), uint(logQNew))
	for i, c := range x.Coeffs {
		v := new(big.Int).Set(c)
		centre(v, qNew)
		out.Coeffs[i].Set(v)
	}
	return out
}

// TruncateAssign centre-reduces x into the representative range of 2^logQNew.
func TruncateAssign(x *Poly, logQNew int) {
	Truncate(x, x, logQNew)
}

// LeftShift sets out = x * 2^bits mod q.
func LeftShift(out, x *Poly, bits int, q *big.Int) *Poly {
	factor := new(big.Int).Lsh(big.NewInt(1), uint(bits))
	return MultByConst(out, x, factor, q)
}

// LeftShiftAssign sets x = x * 2^bits mod q.
func LeftShiftAssign(x *Poly, bits int, q *big.Int) {
	LeftShift(x, x, bits, q)
}

// DoubleAssign sets x = 2*x mod q.
func DoubleAssign(x *Poly, q *big.Int) {
	LeftShiftAssign(x, 1, q)
}
