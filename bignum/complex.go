package bignum

import "math/big"

// Complex is an arbitrary-precision complex number: [real, imag].
type Complex [2]*big.Float

// NewComplex returns a zero-valued Complex with prec bits of precision.
func NewComplex(prec uint) *Complex {
	return &Complex{NewFloat(0, prec), NewFloat(0, prec)}
}

// Real returns the real part.
func (c *Complex) Real() *big.Float { return c[0] }

// Imag returns the imaginary part.
func (c *Complex) Imag() *big.Float { return c[1] }

// Prec returns the precision, in bits, of the most precise component.
func (c *Complex) Prec() uint {
	if c[0].Prec() > c[1].Prec() {
		return c[0].Prec()
	}
	return c[1].Prec()
}

// Set sets c to a and returns c.
func (c *Complex) Set(a *Complex) *Complex {
	c[0].Set(a[0])
	c[1].Set(a[1])
	return c
}

// Add sets c = a + b and returns c.
func (c *Complex) Add(a, b *Complex) *Complex {
	c[0].Add(a[0], b[0])
	c[1].Add(a[1], b[1])
	return c
}

// Sub sets c = a - b and returns c.
func (c *Complex) Sub(a, b *Complex) *Complex {
	c[0].Sub(a[0], b[0])
	c[1].Sub(a[1], b[1])
	return c
}

// Mul sets c = a * b and returns c.
func (c *Complex) Mul(a, b *Complex) *Complex {
	prec := a.Prec()
	ac := new(big.Float).SetPrec(prec).Mul(a[0], b[0])
	bd := new(big.Float).SetPrec(prec).Mul(a[1], b[1])
	ad := new(big.Float).SetPrec(prec).Mul(a[0], b[1])
	bc := new(big.Float).SetPrec(prec).Mul(a[1], b[0])

	re := new(big.Float).SetPrec(prec).Sub(ac, bd)
	im := new(big.Float).SetPrec(prec).Add(ad, bc)

	c[0].Set(re)
	c[1].Set(im)
	return c
}

// Conjugate sets c = conj(a) and returns c.
func (c *Complex) Conjugate(a *Complex) *Complex {
	c[0].Set(a[0])
	c[1].Neg(a[1])
	return c
}

// FromComplex128 sets c from a native complex128 at prec bits of precision.
func FromComplex128(x complex128, prec uint) *Complex {
	return &Complex{
		new(big.Float).SetPrec(prec).SetFloat64(real(x)),
		new(big.Float).SetPrec(prec).SetFloat64(imag(x)),
	}
}

// ToComplex128 returns the float64 approximation of c.
func (c *Complex) ToComplex128() complex128 {
	re, _ := c[0].Float64()
	im, _ := c[1].Float64()
	return complex(re, im)
}
