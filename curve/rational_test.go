package curve

import (
	"errors"
	"testing"

	"github.com/f3rmion/ecc/rational"
)

func num(n int64) rational.Number {
	return rational.Int(n)
}

func frac(t *testing.T, a, b int64) rational.Number {
	t.Helper()
	r, err := rational.Frac(a, b)
	if err != nil {
		t.Fatal(err)
	}
	return r
}

func ratPoint(t *testing.T, c Curve[rational.Number], x, y rational.Number) Point[rational.Number] {
	t.Helper()
	p, err := c.Point(x, y)
	if err != nil {
		t.Fatal(err)
	}
	return p
}

func TestRationalCurve(t *testing.T) {
	// y^2 = x^3 + 5x + 7 over Q.
	c := NewCurve(num(5), num(7))

	t.Run("Membership", func(t *testing.T) {
		for _, xy := range [][2]int64{{-1, -1}, {-1, 1}, {2, 5}, {3, -7}, {18, 77}} {
			if _, err := NewPoint(num(xy[0]), num(xy[1]), num(5), num(7)); err != nil {
				t.Errorf("(%d, %d): %v", xy[0], xy[1], err)
			}
		}
		if _, err := NewPoint(num(-1), num(-2), num(5), num(7)); !errors.Is(err, ErrNotOnCurve) {
			t.Errorf("(-1, -2): expected ErrNotOnCurve, got %v", err)
		}
	})

	t.Run("Inverse", func(t *testing.T) {
		sum, err := ratPoint(t, c, num(-1), num(-1)).Add(ratPoint(t, c, num(-1), num(1)))
		if err != nil {
			t.Fatal(err)
		}
		if !sum.IsInfinity() {
			t.Errorf("(-1,-1) + (-1,1) = %s", sum)
		}
	})

	t.Run("Chord", func(t *testing.T) {
		sum, err := ratPoint(t, c, num(2), num(5)).Add(ratPoint(t, c, num(-1), num(-1)))
		if err != nil {
			t.Fatal(err)
		}
		if want := ratPoint(t, c, num(3), num(-7)); !sum.Equal(want) {
			t.Errorf("(2,5) + (-1,-1) = %s, want %s", sum, want)
		}
	})

	t.Run("ChordFractional", func(t *testing.T) {
		sum, err := ratPoint(t, c, num(18), num(77)).Add(ratPoint(t, c, num(2), num(5)))
		if err != nil {
			t.Fatal(err)
		}
		if want := ratPoint(t, c, frac(t, 1, 4), frac(t, 23, 8)); !sum.Equal(want) {
			t.Errorf("(18,77) + (2,5) = %s, want %s", sum, want)
		}
	})

	t.Run("Tangent", func(t *testing.T) {
		p := ratPoint(t, c, num(-1), num(-1))
		d, err := p.Add(p)
		if err != nil {
			t.Fatal(err)
		}
		if want := ratPoint(t, c, num(18), num(77)); !d.Equal(want) {
			t.Errorf("2*(-1,-1) = %s, want %s", d, want)
		}

		d, err = ratPoint(t, c, num(2), num(5)).Double()
		if err != nil {
			t.Fatal(err)
		}
		if want := ratPoint(t, c, frac(t, -111, 100), frac(t, 287, 1000)); !d.Equal(want) {
			t.Errorf("2*(2,5) = %s, want %s", d, want)
		}
	})

	t.Run("VerticalTangent", func(t *testing.T) {
		// y^2 = x^3 - x has the three 2-torsion points (-1,0), (0,0), (1,0).
		c := NewCurve(num(-1), num(0))
		for _, x := range []int64{-1, 0, 1} {
			p, err := c.Point(num(x), num(0))
			if err != nil {
				t.Fatal(err)
			}
			d, err := p.Double()
			if err != nil {
				t.Fatal(err)
			}
			if !d.IsInfinity() {
				t.Errorf("2*%s = %s, want infinity", p, d)
			}
		}
	})

	t.Run("String", func(t *testing.T) {
		if s := ratPoint(t, c, num(2), num(5)).String(); s != "Point(2, 5)_5_7" {
			t.Errorf("got %q", s)
		}
	})
}
