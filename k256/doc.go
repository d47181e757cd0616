// Package k256 provides the secp256k1 base field as a [curve.Coordinate]
// and the secp256k1 curve parameters in two coordinate representations.
//
// secp256k1 is the curve y^2 = x^3 + 7 over the prime
// p = 2^256 - 2^32 - 977, used by Bitcoin and Ethereum.
//
// [Element] wraps the field arithmetic of decred's secp256k1 package
// (FieldVal). Every Element is kept normalized, so equality and the zero
// test are exact.
//
// Two curve constructors are available:
//
//   - [Curve] and [Generator] use [Element] coordinates
//   - [FieldCurve] and [FieldGenerator] use generic field.Element
//     coordinates, backed by math/big
//
// Both give the same group; the second exists to exercise the generic
// field with real-world parameters.
//
// [FromPublicKey] and [ToPublicKey] convert to and from decred public keys.
package k256
