// Package field implements arithmetic in prime fields of arbitrary size.
//
// An [Element] is a residue modulo a prime p, always held in the range
// [0, p). Elements are immutable values: every operation returns a new
// Element and leaves its operands untouched, so they can be shared freely
// between goroutines.
//
// # Arithmetic
//
// Binary operations require both operands to belong to the same field.
// Mixing primes is a usage error and is reported as [ErrFieldMismatch]:
//
//	a := field.MustNewInt(7, 13)
//	b := field.MustNewInt(12, 13)
//	sum, err := a.Add(b) // F_13(6)
//
// Division multiplies by the Fermat inverse b^(p-2). Dividing by the zero
// element fails with [ErrDivisionByZero].
//
// # Exponentiation
//
// [Element.Pow] and [Element.Exp] reduce the exponent modulo p-1 before
// exponentiating, so negative exponents need no separate branch:
//
//	x.Pow(-3) == x.Pow(p-4)
//
// The reduction is only valid for nonzero bases. The zero element is
// handled separately: 0^0 is 1, 0^n is 0 for n > 0, and 0^n for n < 0
// fails with [ErrDivisionByZero].
//
// The modulus is assumed to be prime and is not tested for primality.
// Nothing in this package is constant-time.
package field
