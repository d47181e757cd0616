package bn254

import (
	"errors"
	"fmt"
	"math/big"

	gnark "github.com/consensys/gnark-crypto/ecc/bn254"
	"github.com/consensys/gnark-crypto/ecc/bn254/fp"
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/f3rmion/ecc/curve"
)

var (
	// ErrOutOfRange is returned for integers outside [0, p).
	ErrOutOfRange = errors.New("bn254: value not in field range")

	// ErrDivisionByZero is returned when dividing by zero or raising zero
	// to a negative power.
	ErrDivisionByZero = errors.New("bn254: division by zero")
)

// Element is an element of the BN254 base field.
// It implements [curve.Coordinate] by wrapping gnark-crypto's fp.Element.
//
// Element is a value type; its methods never modify the receiver. The
// zero value is the field element 0.
type Element struct {
	inner fp.Element
}

// Modulus returns the field prime p.
func Modulus() *big.Int {
	return fp.Modulus()
}

// NewElement returns v as a field element.
// It fails with [ErrOutOfRange] unless 0 <= v < p.
func NewElement(v *big.Int) (Element, error) {
	if v.Sign() < 0 || v.Cmp(fp.Modulus()) >= 0 {
		return Element{}, fmt.Errorf("%w: %s", ErrOutOfRange, v)
	}
	var e Element
	e.inner.SetBigInt(v)
	return e, nil
}

// ElementFromUint64 returns v as a field element.
func ElementFromUint64(v uint64) Element {
	var e Element
	e.inner.SetUint64(v)
	return e
}

// BigInt returns the canonical value of e in [0, p).
func (e Element) BigInt() *big.Int {
	return e.inner.BigInt(new(big.Int))
}

// Add returns e + b. It never fails.
func (e Element) Add(b Element) (Element, error) {
	var r Element
	r.inner.Add(&e.inner, &b.inner)
	return r, nil
}

// Sub returns e - b. It never fails.
func (e Element) Sub(b Element) (Element, error) {
	var r Element
	r.inner.Sub(&e.inner, &b.inner)
	return r, nil
}

// Mul returns e * b. It never fails.
func (e Element) Mul(b Element) (Element, error) {
	var r Element
	r.inner.Mul(&e.inner, &b.inner)
	return r, nil
}

// Div returns e / b.
// Returns an error if b is zero, which gnark would silently map to zero.
func (e Element) Div(b Element) (Element, error) {
	if b.IsZero() {
		return Element{}, fmt.Errorf("%w: %s / 0", ErrDivisionByZero, e)
	}
	var r Element
	r.inner.Div(&e.inner, &b.inner)
	return r, nil
}

// Pow returns e^n. 0^0 is 1, and 0^n for negative n is an error.
func (e Element) Pow(n int64) (Element, error) {
	if n < 0 && e.IsZero() {
		return Element{}, fmt.Errorf("%w: 0^%d", ErrDivisionByZero, n)
	}
	var r Element
	r.inner.Exp(e.inner, big.NewInt(n))
	return r, nil
}

// Neg returns -e.
func (e Element) Neg() Element {
	var r Element
	r.inner.Neg(&e.inner)
	return r
}

// Equal reports whether e and b are the same field element.
func (e Element) Equal(b Element) bool {
	return e.inner.Equal(&b.inner)
}

// IsZero reports whether e is 0.
func (e Element) IsZero() bool {
	return e.inner.IsZero()
}

// String returns e in decimal.
func (e Element) String() string {
	return e.inner.String()
}

// Curve returns the BN254 G1 curve y^2 = x^3 + 3.
func Curve() curve.Curve[Element] {
	return curve.NewCurve(Element{}, ElementFromUint64(3))
}

// Generator returns the standard G1 generator (1, 2).
func Generator() curve.Point[Element] {
	_, _, g, _ := gnark.Generators()
	p, err := FromAffine(&g)
	if err != nil {
		panic(err)
	}
	return p
}

// Order returns the order of G1, the BN254 scalar field modulus.
func Order() *big.Int {
	return fr.Modulus()
}

// FromAffine converts a gnark-crypto G1 point. gnark encodes the point at
// infinity as (0, 0).
func FromAffine(a *gnark.G1Affine) (curve.Point[Element], error) {
	c := Curve()
	if a.IsInfinity() {
		return c.Infinity(), nil
	}
	return c.Point(Element{inner: a.X}, Element{inner: a.Y})
}

// ToAffine converts p to a gnark-crypto G1 point. It panics if p is not a
// point on [Curve].
func ToAffine(p curve.Point[Element]) gnark.G1Affine {
	if !p.Curve().Equal(Curve()) {
		panic("bn254: point is not on the BN254 G1 curve")
	}
	var a gnark.G1Affine
	x, y, ok := p.XY()
	if !ok {
		return a
	}
	a.X = x.inner
	a.Y = y.inner
	return a
}
