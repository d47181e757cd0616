package wei25519

import (
	"errors"
	"fmt"
	"math/big"
	"slices"

	"filippo.io/edwards25519/field"
)

var (
	// ErrOutOfRange is returned for integers outside [0, p).
	ErrOutOfRange = errors.New("wei25519: value not in field range")

	// ErrDivisionByZero is returned when dividing by zero or raising zero
	// to a negative power.
	ErrDivisionByZero = errors.New("wei25519: division by zero")
)

var modulus = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 255), big.NewInt(19))

// Element is an element of GF(2^255 - 19). The zero value is 0.
type Element struct {
	v field.Element
}

// Modulus returns the field prime 2^255 - 19.
func Modulus() *big.Int {
	return new(big.Int).Set(modulus)
}

// NewElement returns v as a field element.
// It fails with [ErrOutOfRange] unless 0 <= v < p.
func NewElement(v *big.Int) (Element, error) {
	if v.Sign() < 0 || v.Cmp(modulus) >= 0 {
		return Element{}, fmt.Errorf("%w: %s", ErrOutOfRange, v)
	}
	var buf [32]byte
	v.FillBytes(buf[:])
	slices.Reverse(buf[:])

	var e Element
	if _, err := e.v.SetBytes(buf[:]); err != nil {
		return Element{}, err
	}
	return e, nil
}

// ElementFromUint64 returns v as a field element.
func ElementFromUint64(v uint64) Element {
	e, _ := NewElement(new(big.Int).SetUint64(v))
	return e
}

func mustElement(s string) Element {
	v, ok := new(big.Int).SetString(s, 10)
	if !ok {
		panic("wei25519: bad constant " + s)
	}
	e, err := NewElement(v)
	if err != nil {
		panic(err)
	}
	return e
}

// BigInt returns the canonical value of e in [0, p).
func (e Element) BigInt() *big.Int {
	b := e.v.Bytes()
	slices.Reverse(b)
	return new(big.Int).SetBytes(b)
}

// Add returns e + b. It never fails.
func (e Element) Add(b Element) (Element, error) {
	var r Element
	r.v.Add(&e.v, &b.v)
	return r, nil
}

// Sub returns e - b. It never fails.
func (e Element) Sub(b Element) (Element, error) {
	var r Element
	r.v.Subtract(&e.v, &b.v)
	return r, nil
}

// Mul returns e * b. It never fails.
func (e Element) Mul(b Element) (Element, error) {
	var r Element
	r.v.Multiply(&e.v, &b.v)
	return r, nil
}

// Div returns e / b.
func (e Element) Div(b Element) (Element, error) {
	if b.IsZero() {
		return Element{}, fmt.Errorf("%w: %s / 0", ErrDivisionByZero, e)
	}
	var r Element
	r.v.Invert(&b.v)
	r.v.Multiply(&e.v, &r.v)
	return r, nil
}

// Pow returns e^n. 0^0 is 1, and 0^n for negative n is an error.
func (e Element) Pow(n int64) (Element, error) {
	var base field.Element
	base.Set(&e.v)

	k := uint64(n)
	if n < 0 {
		if e.IsZero() {
			return Element{}, fmt.Errorf("%w: 0^%d", ErrDivisionByZero, n)
		}
		base.Invert(&base)
		k = -k
	}

	var r Element
	r.v.One()
	for ; k > 0; k >>= 1 {
		if k&1 == 1 {
			r.v.Multiply(&r.v, &base)
		}
		base.Square(&base)
	}
	return r, nil
}

// Neg returns -e.
func (e Element) Neg() Element {
	var r Element
	r.v.Negate(&e.v)
	return r
}

// Equal reports whether e and b are the same field element.
func (e Element) Equal(b Element) bool {
	return e.v.Equal(&b.v) == 1
}

// IsZero reports whether e is 0.
func (e Element) IsZero() bool {
	var zero field.Element
	return e.v.Equal(&zero) == 1
}

// String returns e in decimal.
func (e Element) String() string {
	return e.BigInt().String()
}
