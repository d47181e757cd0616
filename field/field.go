package field

import (
	"crypto/rand"
	"fmt"
	"io"
	"math/big"
)

var (
	zero = big.NewInt(0)
	one  = big.NewInt(1)
	two  = big.NewInt(2)
)

// Element is a residue modulo a prime.
//
// Element values are immutable. The zero value is not a valid element;
// create elements with [New], [NewInt] or [MustNewInt].
type Element struct {
	num   *big.Int
	prime *big.Int
}

// New returns num as an element of the field of order prime.
// It fails with [ErrOutOfRange] unless 0 <= num < prime.
func New(num, prime *big.Int) (Element, error) {
	if prime.Cmp(two) < 0 {
		return Element{}, fmt.Errorf("%w: got %s", ErrInvalidPrime, prime)
	}
	if num.Sign() < 0 || num.Cmp(prime) >= 0 {
		return Element{}, fmt.Errorf("%w: %s not in 0 to %s - 1", ErrOutOfRange, num, prime)
	}
	return Element{
		num:   new(big.Int).Set(num),
		prime: new(big.Int).Set(prime),
	}, nil
}

// NewInt is like [New] for small operands.
func NewInt(num, prime int64) (Element, error) {
	return New(big.NewInt(num), big.NewInt(prime))
}

// MustNewInt is like [NewInt] but panics on error. It is intended for
// constants known to be valid.
func MustNewInt(num, prime int64) Element {
	e, err := NewInt(num, prime)
	if err != nil {
		panic(err)
	}
	return e
}

// Random returns a uniformly random element of the field of order prime,
// reading entropy from r.
func Random(r io.Reader, prime *big.Int) (Element, error) {
	if prime.Cmp(two) < 0 {
		return Element{}, fmt.Errorf("%w: got %s", ErrInvalidPrime, prime)
	}
	n, err := rand.Int(r, prime)
	if err != nil {
		return Element{}, err
	}
	return Element{num: n, prime: new(big.Int).Set(prime)}, nil
}

// with returns an element of e's field holding n reduced modulo the prime.
// n is owned by the result.
func (e Element) with(n *big.Int) Element {
	return Element{num: n.Mod(n, e.prime), prime: e.prime}
}

func (e Element) sameField(o Element, op string) error {
	if e.prime.Cmp(o.prime) != 0 {
		return fmt.Errorf("%w: cannot %s F_%s and F_%s", ErrFieldMismatch, op, e.prime, o.prime)
	}
	return nil
}

// Num returns a copy of the element's value in [0, prime).
func (e Element) Num() *big.Int {
	return new(big.Int).Set(e.num)
}

// Prime returns a copy of the field modulus.
func (e Element) Prime() *big.Int {
	return new(big.Int).Set(e.prime)
}

// Add returns e + o.
func (e Element) Add(o Element) (Element, error) {
	if err := e.sameField(o, "add"); err != nil {
		return Element{}, err
	}
	return e.with(new(big.Int).Add(e.num, o.num)), nil
}

// Sub returns e - o.
func (e Element) Sub(o Element) (Element, error) {
	if err := e.sameField(o, "subtract"); err != nil {
		return Element{}, err
	}
	// big.Int.Mod is Euclidean, so negative differences land in [0, prime).
	return e.with(new(big.Int).Sub(e.num, o.num)), nil
}

// Mul returns e * o.
func (e Element) Mul(o Element) (Element, error) {
	if err := e.sameField(o, "multiply"); err != nil {
		return Element{}, err
	}
	return e.with(new(big.Int).Mul(e.num, o.num)), nil
}

// Div returns e / o, computed as e * o^(p-2).
// It fails with [ErrDivisionByZero] if o is zero.
func (e Element) Div(o Element) (Element, error) {
	if err := e.sameField(o, "divide"); err != nil {
		return Element{}, err
	}
	inv, err := o.Inv()
	if err != nil {
		return Element{}, err
	}
	return e.with(new(big.Int).Mul(e.num, inv.num)), nil
}

// Inv returns the multiplicative inverse e^(p-2).
// It fails with [ErrDivisionByZero] if e is zero.
func (e Element) Inv() (Element, error) {
	if e.IsZero() {
		return Element{}, fmt.Errorf("%w: F_%s(0) has no inverse", ErrDivisionByZero, e.prime)
	}
	exp := new(big.Int).Sub(e.prime, two)
	return Element{num: new(big.Int).Exp(e.num, exp, e.prime), prime: e.prime}, nil
}

// Neg returns -e.
func (e Element) Neg() Element {
	return e.with(new(big.Int).Neg(e.num))
}

// Pow returns e^n. See [Element.Exp].
func (e Element) Pow(n int64) (Element, error) {
	return e.Exp(big.NewInt(n))
}

// Exp returns e^n.
//
// For nonzero e the exponent is first reduced modulo p-1, which by
// Fermat's little theorem leaves the result unchanged and maps negative
// exponents onto positive ones. For e = 0 the result is 1 when n = 0 and
// 0 when n > 0; a negative n fails with [ErrDivisionByZero].
func (e Element) Exp(n *big.Int) (Element, error) {
	if e.IsZero() {
		switch n.Sign() {
		case 0:
			return Element{num: new(big.Int).Set(one), prime: e.prime}, nil
		case 1:
			return Element{num: new(big.Int), prime: e.prime}, nil
		default:
			return Element{}, fmt.Errorf("%w: F_%s(0) raised to %s", ErrDivisionByZero, e.prime, n)
		}
	}
	order := new(big.Int).Sub(e.prime, one)
	k := new(big.Int).Mod(n, order)
	return Element{num: new(big.Int).Exp(e.num, k, e.prime), prime: e.prime}, nil
}

// IsZero reports whether e is the additive identity.
func (e Element) IsZero() bool {
	return e.num.Sign() == 0
}

// Equal reports whether e and o have the same value and the same prime.
func (e Element) Equal(o Element) bool {
	if e.num == nil || o.num == nil {
		return e.num == nil && o.num == nil
	}
	return e.num.Cmp(o.num) == 0 && e.prime.Cmp(o.prime) == 0
}

// String returns the element as F_prime(num).
func (e Element) String() string {
	if e.num == nil {
		return "F_?(nil)"
	}
	return fmt.Sprintf("F_%s(%s)", e.prime, e.num)
}

// Zero returns the additive identity of the field of order prime.
func Zero(prime *big.Int) (Element, error) {
	return New(zero, prime)
}

// One returns the multiplicative identity of the field of order prime.
func One(prime *big.Int) (Element, error) {
	return New(one, prime)
}
