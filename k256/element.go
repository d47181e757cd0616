package k256

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
)

var (
	// ErrOutOfRange is returned for integers outside [0, p).
	ErrOutOfRange = errors.New("k256: value not in field range")

	// ErrDivisionByZero is returned when dividing by zero or raising zero
	// to a negative power.
	ErrDivisionByZero = errors.New("k256: division by zero")
)

// Element is an element of the secp256k1 base field.
// It implements [curve.Coordinate] on top of secp256k1.FieldVal.
//
// Element is a value type; its methods never modify the receiver. The
// zero value is the field element 0.
type Element struct {
	v secp256k1.FieldVal
}

// Modulus returns the field prime p.
func Modulus() *big.Int {
	return new(big.Int).Set(secp256k1.Params().P)
}

// NewElement returns v as a field element.
// It fails with [ErrOutOfRange] unless 0 <= v < p.
func NewElement(v *big.Int) (Element, error) {
	if v.Sign() < 0 || v.Cmp(secp256k1.Params().P) >= 0 {
		return Element{}, fmt.Errorf("%w: %s", ErrOutOfRange, v)
	}
	var e Element
	e.v.SetByteSlice(v.Bytes())
	return e, nil
}

// ElementFromUint16 returns v as a field element.
func ElementFromUint16(v uint16) Element {
	var e Element
	e.v.SetInt(v)
	return e
}

func fromFieldVal(f *secp256k1.FieldVal) Element {
	var e Element
	e.v.Set(f).Normalize()
	return e
}

// BigInt returns the canonical value of e in [0, p).
func (e Element) BigInt() *big.Int {
	return new(big.Int).SetBytes(e.v.Bytes()[:])
}

// Add returns e + b. It never fails.
func (e Element) Add(b Element) (Element, error) {
	var r Element
	r.v.Add2(&e.v, &b.v).Normalize()
	return r, nil
}

// Sub returns e - b. It never fails.
func (e Element) Sub(b Element) (Element, error) {
	var r Element
	r.v.NegateVal(&b.v, 1).Add(&e.v).Normalize()
	return r, nil
}

// Mul returns e * b. It never fails.
func (e Element) Mul(b Element) (Element, error) {
	var r Element
	r.v.Mul2(&e.v, &b.v).Normalize()
	return r, nil
}

// Div returns e / b.
func (e Element) Div(b Element) (Element, error) {
	if b.IsZero() {
		return Element{}, fmt.Errorf("%w: %s / 0", ErrDivisionByZero, e)
	}
	var inv secp256k1.FieldVal
	inv.Set(&b.v).Inverse()
	var r Element
	r.v.Mul2(&e.v, &inv).Normalize()
	return r, nil
}

// Pow returns e^n by square-and-multiply. 0^0 is 1, and 0^n for negative
// n is an error.
func (e Element) Pow(n int64) (Element, error) {
	var base secp256k1.FieldVal
	base.Set(&e.v)

	k := uint64(n)
	if n < 0 {
		if e.IsZero() {
			return Element{}, fmt.Errorf("%w: 0^%d", ErrDivisionByZero, n)
		}
		base.Inverse().Normalize()
		k = -k
	}

	var acc secp256k1.FieldVal
	acc.SetInt(1)
	for ; k > 0; k >>= 1 {
		if k&1 == 1 {
			acc.Mul(&base).Normalize()
		}
		base.Square().Normalize()
	}
	return fromFieldVal(&acc), nil
}

// Neg returns -e.
func (e Element) Neg() Element {
	var r Element
	r.v.NegateVal(&e.v, 1).Normalize()
	return r
}

// Equal reports whether e and b are the same field element.
func (e Element) Equal(b Element) bool {
	return e.v.Equals(&b.v)
}

// IsZero reports whether e is 0.
func (e Element) IsZero() bool {
	return e.v.IsZero()
}

// String returns e in decimal.
func (e Element) String() string {
	return e.BigInt().String()
}
