package rational

import (
	"errors"
	"fmt"
	"math/big"
)

// ErrDivisionByZero is returned when dividing by zero or raising zero to
// a negative power.
var ErrDivisionByZero = errors.New("rational: division by zero")

// Number is an immutable rational number. The zero value is 0.
type Number struct {
	r *big.Rat
}

// Int returns the integer n as a Number.
func Int(n int64) Number {
	return Number{r: new(big.Rat).SetInt64(n)}
}

// Frac returns num/den as a Number.
func Frac(num, den int64) (Number, error) {
	if den == 0 {
		return Number{}, fmt.Errorf("%w: %d/0", ErrDivisionByZero, num)
	}
	return Number{r: big.NewRat(num, den)}, nil
}

// FromRat returns a Number holding a copy of r.
func FromRat(r *big.Rat) Number {
	return Number{r: new(big.Rat).Set(r)}
}

func (n Number) rat() *big.Rat {
	if n.r == nil {
		return new(big.Rat)
	}
	return n.r
}

// Rat returns a copy of the underlying value.
func (n Number) Rat() *big.Rat {
	return new(big.Rat).Set(n.rat())
}

// Add returns n + o. It never fails.
func (n Number) Add(o Number) (Number, error) {
	return Number{r: new(big.Rat).Add(n.rat(), o.rat())}, nil
}

// Sub returns n - o. It never fails.
func (n Number) Sub(o Number) (Number, error) {
	return Number{r: new(big.Rat).Sub(n.rat(), o.rat())}, nil
}

// Mul returns n * o. It never fails.
func (n Number) Mul(o Number) (Number, error) {
	return Number{r: new(big.Rat).Mul(n.rat(), o.rat())}, nil
}

// Div returns n / o.
func (n Number) Div(o Number) (Number, error) {
	if o.IsZero() {
		return Number{}, fmt.Errorf("%w: %s / 0", ErrDivisionByZero, n)
	}
	return Number{r: new(big.Rat).Quo(n.rat(), o.rat())}, nil
}

// Pow returns n^k. Negative exponents invert n first; 0^0 is 1.
func (n Number) Pow(k int64) (Number, error) {
	base := n.rat()
	if k < 0 {
		if n.IsZero() {
			return Number{}, fmt.Errorf("%w: 0^%d", ErrDivisionByZero, k)
		}
		base = new(big.Rat).Inv(base)
		k = -k
	}
	e := big.NewInt(k)
	num := new(big.Int).Exp(base.Num(), e, nil)
	den := new(big.Int).Exp(base.Denom(), e, nil)
	return Number{r: new(big.Rat).SetFrac(num, den)}, nil
}

// Neg returns -n.
func (n Number) Neg() Number {
	return Number{r: new(big.Rat).Neg(n.rat())}
}

// IsZero reports whether n is 0.
func (n Number) IsZero() bool {
	return n.rat().Sign() == 0
}

// Equal reports whether n and o are the same number.
func (n Number) Equal(o Number) bool {
	return n.rat().Cmp(o.rat()) == 0
}

// String formats n as an integer when it is one, and as a/b otherwise.
func (n Number) String() string {
	r := n.rat()
	if r.IsInt() {
		return r.Num().String()
	}
	return r.String()
}
