package wei25519

import (
	"math/big"

	"github.com/f3rmion/ecc/curve"
)

var (
	coeffA = mustElement("19298681539552699237261830834781317975544997444273427339909597334573241639236")
	coeffB = mustElement("55751746669818908907645289078257140818241103727901012315294400837956729358436")

	genX = mustElement("19298681539552699237261830834781317975544997444273427339909597334652188435546")
	genY = mustElement("14781619447589544791020593568409986887264606134616475288964881837755586237401")

	// A/3 mod p, the shift between Montgomery u and Weierstrass x.
	shift = mustElement("19298681539552699237261830834781317975544997444273427339909597334652188435537")

	order, _ = new(big.Int).SetString("7237005577332262213973186563042994240857116359379907606001950938285454250989", 10)
)

// Curve returns Wei25519.
func Curve() curve.Curve[Element] {
	return curve.NewCurve(coeffA, coeffB)
}

// Generator returns the image of the Curve25519 base point u = 9.
func Generator() curve.Point[Element] {
	g, err := Curve().Point(genX, genY)
	if err != nil {
		panic(err)
	}
	return g
}

// Order returns the prime order l of the subgroup generated by
// [Generator]. The full group has order 8*l.
func Order() *big.Int {
	return new(big.Int).Set(order)
}

// MontgomeryU returns the Curve25519 u-coordinate of p, u = x - A/3.
// The point at infinity maps to u = 0, as in X25519.
func MontgomeryU(p curve.Point[Element]) Element {
	x, _, ok := p.XY()
	if !ok {
		return Element{}
	}
	u, _ := x.Sub(shift)
	return u
}

// FromMontgomeryU returns the Weierstrass x-coordinate for u.
func FromMontgomeryU(u Element) Element {
	x, _ := u.Add(shift)
	return x
}
