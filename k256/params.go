package k256

import (
	"errors"
	"math/big"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/f3rmion/ecc/curve"
	"github.com/f3rmion/ecc/field"
)

// ErrInfinity is returned when converting the point at infinity to a
// public key, which cannot represent it.
var ErrInfinity = errors.New("k256: point at infinity has no public key")

// Curve returns secp256k1, y^2 = x^3 + 7, over [Element].
func Curve() curve.Curve[Element] {
	return curve.NewCurve(Element{}, ElementFromUint16(7))
}

// Generator returns the secp256k1 base point G over [Element].
func Generator() curve.Point[Element] {
	params := secp256k1.Params()
	x, _ := NewElement(params.Gx)
	y, _ := NewElement(params.Gy)
	g, err := Curve().Point(x, y)
	if err != nil {
		panic(err)
	}
	return g
}

// Order returns the order n of the group generated by G.
func Order() *big.Int {
	return new(big.Int).Set(secp256k1.Params().N)
}

// FieldCurve returns secp256k1 over generic field.Element coordinates.
func FieldCurve() curve.Curve[field.Element] {
	p := secp256k1.Params().P
	a, _ := field.New(big.NewInt(0), p)
	b, _ := field.New(big.NewInt(7), p)
	return curve.NewCurve(a, b)
}

// FieldGenerator returns G over generic field.Element coordinates.
func FieldGenerator() curve.Point[field.Element] {
	params := secp256k1.Params()
	x, _ := field.New(params.Gx, params.P)
	y, _ := field.New(params.Gy, params.P)
	g, err := FieldCurve().Point(x, y)
	if err != nil {
		panic(err)
	}
	return g
}

// FromPublicKey returns the point of a decred public key. It fails with
// [curve.ErrNotOnCurve] if the key's coordinates are not on secp256k1.
func FromPublicKey(pk *secp256k1.PublicKey) (curve.Point[Element], error) {
	x, err := NewElement(pk.X())
	if err != nil {
		return curve.Point[Element]{}, err
	}
	y, err := NewElement(pk.Y())
	if err != nil {
		return curve.Point[Element]{}, err
	}
	return Curve().Point(x, y)
}

// ToPublicKey returns p as a decred public key. It fails with
// [ErrInfinity] for the point at infinity and with
// [curve.ErrCurveMismatch] for points on other curves.
func ToPublicKey(p curve.Point[Element]) (*secp256k1.PublicKey, error) {
	if !p.Curve().Equal(Curve()) {
		return nil, curve.ErrCurveMismatch
	}
	x, y, ok := p.XY()
	if !ok {
		return nil, ErrInfinity
	}
	return secp256k1.NewPublicKey(&x.v, &y.v), nil
}
