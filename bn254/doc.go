// Package bn254 provides the base field of the BN254 (alt_bn128) curve as a
// [curve.Coordinate], together with the parameters of its G1 group.
//
// BN254 G1 is the short Weierstrass curve
//
//	y^2 = x^3 + 3
//
// over the prime field of order
//
//	21888242871839275222246405745257275088696311157297611314358965024127651207583
//
// with generator (1, 2) and prime group order
//
//	21888242871839275222246405745257275088548364400416034343698204186575808495617
//
// This package wraps the field arithmetic from gnark-crypto, so the generic
// point code in package curve runs on gnark's Montgomery-form elements:
//
//	c := bn254.Curve()
//	g := bn254.Generator()
//	p, err := g.ScalarMul(k)
//
// [FromAffine] and [ToAffine] convert to and from gnark-crypto's own G1
// affine points.
//
// # Security
//
// Like the rest of this module, the group law here is not constant-time.
package bn254
