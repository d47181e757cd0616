// Package curve implements the group law of short Weierstrass curves
//
//	y^2 = x^3 + a*x + b
//
// over any coordinate type that behaves like a field.
//
// The package is generic over a single capability interface:
//
//   - [Coordinate]: the field-like operations needed by the chord-and-tangent
//     rule (add, subtract, multiply, divide, power, negate, equality and a
//     zero test)
//
// and provides two value types built on it:
//
//   - [Curve]: a pair of coefficients (a, b) identifying one curve
//   - [Point]: an affine point on a Curve, or the point at infinity
//
// # Design Philosophy
//
// Points are immutable values. Every operation returns a new Point and
// leaves its operands untouched, so Points may be shared between
// goroutines without locking. Construction always checks the curve
// equation; a Point that exists is on its curve.
//
// All operations that can fail return errors rather than panicking. The
// errors of the coordinate type (division by zero, mismatched fields)
// are passed through wrapped, so errors.Is works across layers:
//
//	p, err := curve.NewPoint(x, y, a, b)
//	if errors.Is(err, curve.ErrNotOnCurve) {
//		// (x, y) does not satisfy the equation
//	}
//
// # Choosing a Coordinate Type
//
// The same Point code runs over several coordinate types:
//
//   - field.Element: any prime field, backed by math/big
//   - rational.Number: exact rationals, for toy curves over Q
//   - k256.Element, bn254.Element, wei25519.Element: fixed fields backed
//     by optimized third-party arithmetic
//
// To plug in a new type, implement [Coordinate] on a value type whose
// methods never modify the receiver, and make Equal an equivalence
// relation; the group law relies on both.
//
// # Limitations
//
// Scalar multiplication is plain double-and-add over [Point.Add]. Nothing
// here is constant-time and no attempt is made to check that the curve is
// non-singular.
package curve
