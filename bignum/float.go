// Package bignum provides arbitrary-precision float and complex helpers used
// by the canonical-embedding encoder to build its root-of-unity table.
package bignum

import (
	"fmt"
	"math/big"

	"github.com/ALTree/bigfloat"
)

const piDigits = "3.1415926535897932384626433832795028841971693993751058209749445923078164062862089986280348253421170679821480865132823066470938446095505822317253594081284811174502841027019385211055596446229489549303819644288109756659334461284756482337867831652712019091456485669234603486104543266482133936072602491412737245870066063155881748815209209628292540917153643678925903600113305305488204665213841469519415116"

// Pi returns pi with prec bits of precision.
func Pi(prec uint) *big.Float {
	pi, _ := new(big.Float).SetPrec(prec).SetString(piDigits)
	return pi
}

// NewFloat creates a new big.Float with prec bits of precision from one of
// int, int64, uint64, float64, *big.Int or *big.Float.
func NewFloat(x interface{}, prec uint) *big.Float {
	y := new(big.Float).SetPrec(prec)

	switch x := x.(type) {
	case int:
		y.SetInt64(int64(x))
	case int64:
		y.SetInt64(x)
	case uint64:
		y.SetUint64(x)
	case float64:
		y.SetFloat64(x)
	case *big.Int:
		y.SetInt(x)
	case *big.Float:
		y.Set(x)
	default:
		panic(fmt.Errorf("bignum: NewFloat: unsupported type %T", x))
	}

	return y
}

// Round returns round(x), ties away from zero.
func Round(x *big.Float) *big.Float {
	r := new(big.Float).Set(x)
	if r.Sign() >= 0 {
		r.Add(r, NewFloat(0.5, x.Prec()))
	} else {
		r.Sub(r, NewFloat(0.5, x.Prec()))
	}
	i := new(big.Int)
	r.Int(i)
	return r.SetInt(i)
}

// RoundToInt rounds x to the nearest *big.Int, ties away from zero.
func RoundToInt(x *big.Float) *big.Int {
	i, _ := Round(x).Int(nil)
	return i
}

// Cos is an iterative arbitrary-precision computation of cos(x).
// ref: Johansson, B. Tomas, "An elementary algorithm to evaluate
// trigonometric functions to high precision", 2018.
func Cos(x *big.Float) *big.Float {
	tmp := new(big.Float)

	t := NewFloat(0.5, x.Prec())
	half := new(big.Float).Copy(t)

	for i := uint(1); i < (x.Prec()>>1)-1; i++ {
		t.Mul(t, half)
	}

	s := new(big.Float).Mul(x, t)
	s.Mul(s, x)
	s.Mul(s, t)

	four := NewFloat(4.0, x.Prec())

	for i := uint(1); i < x.Prec()>>1; i++ {
		tmp.Sub(four, s)
		s.Mul(s, tmp)
	}

	cosx := new(big.Float).Quo(s, NewFloat(2.0, x.Prec()))
	cosx.Sub(NewFloat(1.0, x.Prec()), cosx)
	return cosx
}

// Sin returns sin(x) at the precision of x.
func Sin(x *big.Float) *big.Float {
	halfPi := Pi(x.Prec())
	halfPi.Quo(halfPi, NewFloat(2, x.Prec()))
	return Cos(new(big.Float).Sub(x, halfPi))
}

// Log returns ln(x) at the precision of x.
func Log(x *big.Float) *big.Float {
	return bigfloat.Log(x)
}

// Exp returns exp(x) at the precision of x.
func Exp(x *big.Float) *big.Float {
	return bigfloat.Exp(x)
}

// Pow returns x^y.
func Pow(x, y *big.Float) *big.Float {
	return bigfloat.Pow(x, y)
}
