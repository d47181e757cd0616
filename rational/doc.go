// Package rational provides exact rational numbers usable as curve
// coordinates.
//
// Curves over the rationals, such as y^2 = x^3 + 5x + 7 with the point
// (-1, -1), are handy for illustrating the group law with numbers small
// enough to check by hand. [Number] wraps [big.Rat] so that the curve
// equation and point comparisons hold exactly, which floating-point
// coordinates would not guarantee after a chord or tangent step.
package rational
