// Package wei25519 provides the field GF(2^255 - 19) as a
// [curve.Coordinate] and Wei25519, the short Weierstrass form of
// Curve25519.
//
// Curve25519 is usually written in Montgomery form, v^2 = u^3 + A*u^2 + u
// with A = 486662. Substituting x = u + A/3 gives the isomorphic curve
//
//	y^2 = x^3 + a*x + b
//
// with
//
//	a = 19298681539552699237261830834781317975544997444273427339909597334573241639236
//	b = 55751746669818908907645289078257140818241103727901012315294400837956729358436
//
// The base point u = 9 maps to [Generator], which generates a subgroup of
// prime order
//
//	l = 2^252 + 27742317777372353535851937790883648493
//
// [Element] wraps filippo.io/edwards25519/field, the same field
// implementation used by crypto/ed25519 and X25519. [MontgomeryU] maps a
// point back to its Montgomery u-coordinate, so results can be compared
// with X25519 outputs.
package wei25519
