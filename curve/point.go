package curve

import (
	"fmt"
	"math/big"
)

// Point is an element of the group of a [Curve]: either an affine point
// (x, y) satisfying the curve equation, or the point at infinity.
//
// Points are immutable. Create them with [NewPoint], [Infinity] or the
// corresponding [Curve] methods; the zero value is not a valid point.
type Point[E Coordinate[E]] struct {
	curve  Curve[E]
	x, y   E
	finite bool
}

// NewPoint returns the point (x, y) on the curve y^2 = x^3 + a*x + b.
// It fails with [ErrNotOnCurve] if the coordinates do not satisfy the
// equation.
func NewPoint[E Coordinate[E]](x, y, a, b E) (Point[E], error) {
	return NewCurve(a, b).Point(x, y)
}

// Infinity returns the point at infinity of the curve with coefficients
// a and b.
func Infinity[E Coordinate[E]](a, b E) Point[E] {
	return NewCurve(a, b).Infinity()
}

// Curve returns the curve p lies on.
func (p Point[E]) Curve() Curve[E] {
	return p.curve
}

// IsInfinity reports whether p is the point at infinity.
func (p Point[E]) IsInfinity() bool {
	return !p.finite
}

// XY returns the affine coordinates of p. ok is false for the point at
// infinity, which has none.
func (p Point[E]) XY() (x, y E, ok bool) {
	return p.x, p.y, p.finite
}

// Equal reports whether p and q are the same point on the same curve.
func (p Point[E]) Equal(q Point[E]) bool {
	if !p.curve.Equal(q.curve) || p.finite != q.finite {
		return false
	}
	if !p.finite {
		return true
	}
	return p.x.Equal(q.x) && p.y.Equal(q.y)
}

// Add returns p + q using the chord-and-tangent rule.
// It fails with [ErrCurveMismatch] if p and q lie on different curves.
//
// The cases are tried in order:
//
//  1. either point is infinity: return the other one
//  2. same x, different y: p and q are inverses, return infinity
//  3. different x: chord through p and q
//  4. p == q with y = 0: vertical tangent, return infinity
//  5. p == q: tangent at p
func (p Point[E]) Add(q Point[E]) (Point[E], error) {
	if !p.curve.Equal(q.curve) {
		return Point[E]{}, fmt.Errorf("%w: %s and %s", ErrCurveMismatch, p.curve, q.curve)
	}

	if !p.finite {
		return q, nil
	}
	if !q.finite {
		return p, nil
	}

	sameX := p.x.Equal(q.x)
	if sameX && !p.y.Equal(q.y) {
		return p.curve.Infinity(), nil
	}

	if !sameX {
		var ev eval[E]
		m := ev.div(ev.sub(q.y, p.y), ev.sub(q.x, p.x))
		x3 := ev.sub(ev.sub(ev.pow(m, 2), p.x), q.x)
		y3 := ev.sub(ev.mul(m, ev.sub(p.x, x3)), p.y)
		if ev.err != nil {
			return Point[E]{}, fmt.Errorf("curve: adding %s and %s: %w", p, q, ev.err)
		}
		return p.curve.Point(x3, y3)
	}

	// Only p == q is left. Anything else means Equal is not transitive.
	if !p.Equal(q) {
		panic(fmt.Sprintf("curve: inconsistent coordinate equality adding %s and %s", p, q))
	}

	if p.y.IsZero() {
		return p.curve.Infinity(), nil
	}

	var ev eval[E]
	xx := ev.pow(p.x, 2)
	num := ev.add(ev.add(ev.add(xx, xx), xx), p.curve.a)
	m := ev.div(num, ev.add(p.y, p.y))
	x3 := ev.sub(ev.sub(ev.pow(m, 2), p.x), p.x)
	y3 := ev.sub(ev.mul(m, ev.sub(p.x, x3)), p.y)
	if ev.err != nil {
		return Point[E]{}, fmt.Errorf("curve: doubling %s: %w", p, ev.err)
	}
	return p.curve.Point(x3, y3)
}

// Double returns p + p.
func (p Point[E]) Double() (Point[E], error) {
	return p.Add(p)
}

// Neg returns -p, the reflection of p in the x axis.
func (p Point[E]) Neg() (Point[E], error) {
	if !p.finite {
		return p, nil
	}
	return p.curve.Point(p.x, p.y.Neg())
}

// Sub returns p - q.
func (p Point[E]) Sub(q Point[E]) (Point[E], error) {
	negQ, err := q.Neg()
	if err != nil {
		return Point[E]{}, err
	}
	return p.Add(negQ)
}

// ScalarMul returns k*p by binary double-and-add. Negative k multiplies
// -p by |k|; k = 0 yields the point at infinity.
func (p Point[E]) ScalarMul(k *big.Int) (Point[E], error) {
	if k.Sign() < 0 {
		negP, err := p.Neg()
		if err != nil {
			return Point[E]{}, err
		}
		return negP.ScalarMul(new(big.Int).Neg(k))
	}

	result := p.curve.Infinity()
	current := p
	var err error
	for i := 0; i < k.BitLen(); i++ {
		if k.Bit(i) == 1 {
			if result, err = result.Add(current); err != nil {
				return Point[E]{}, err
			}
		}
		if i == k.BitLen()-1 {
			break
		}
		if current, err = current.Double(); err != nil {
			return Point[E]{}, err
		}
	}
	return result, nil
}

// String returns Point(x, y)_a_b, or Point(infinity).
func (p Point[E]) String() string {
	if !p.finite {
		return "Point(infinity)"
	}
	return fmt.Sprintf("Point(%s, %s)_%s_%s", p.x, p.y, p.curve.a, p.curve.b)
}
