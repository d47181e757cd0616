package curve

import "fmt"

// Curve identifies the short Weierstrass curve y^2 = x^3 + a*x + b.
// Two curves are the same curve exactly when their coefficients are equal.
type Curve[E Coordinate[E]] struct {
	a, b E
}

// NewCurve returns the curve with coefficients a and b.
func NewCurve[E Coordinate[E]](a, b E) Curve[E] {
	return Curve[E]{a: a, b: b}
}

// A returns the coefficient of x.
func (c Curve[E]) A() E {
	return c.a
}

// B returns the constant coefficient.
func (c Curve[E]) B() E {
	return c.b
}

// Equal reports whether c and o have identical coefficients.
func (c Curve[E]) Equal(o Curve[E]) bool {
	return c.a.Equal(o.a) && c.b.Equal(o.b)
}

// Contains reports whether (x, y) satisfies the curve equation. The error
// is that of the coordinate arithmetic, for example when x and y belong
// to a different field than the coefficients.
func (c Curve[E]) Contains(x, y E) (bool, error) {
	var ev eval[E]
	lhs := ev.pow(y, 2)
	rhs := ev.add(ev.add(ev.pow(x, 3), ev.mul(c.a, x)), c.b)
	if ev.err != nil {
		return false, ev.err
	}
	return lhs.Equal(rhs), nil
}

// Point returns the affine point (x, y) on c.
// It fails with [ErrNotOnCurve] if the coordinates do not satisfy the
// curve equation.
func (c Curve[E]) Point(x, y E) (Point[E], error) {
	ok, err := c.Contains(x, y)
	if err != nil {
		return Point[E]{}, fmt.Errorf("curve: checking (%s, %s): %w", x, y, err)
	}
	if !ok {
		return Point[E]{}, fmt.Errorf("%w: (%s, %s) on %s", ErrNotOnCurve, x, y, c)
	}
	return Point[E]{curve: c, x: x, y: y, finite: true}, nil
}

// Infinity returns the point at infinity of c, the identity of the group.
func (c Curve[E]) Infinity() Point[E] {
	return Point[E]{curve: c}
}

// String returns the curve equation.
func (c Curve[E]) String() string {
	return fmt.Sprintf("y^2 = x^3 + %s*x + %s", c.a, c.b)
}
