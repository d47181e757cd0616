package rational

import (
	"errors"
	"math/big"
	"testing"
)

func mustFrac(t *testing.T, a, b int64) Number {
	t.Helper()
	n, err := Frac(a, b)
	if err != nil {
		t.Fatal(err)
	}
	return n
}

func TestArithmetic(t *testing.T) {
	half := mustFrac(t, 1, 2)
	third := mustFrac(t, 1, 3)

	t.Run("AddSub", func(t *testing.T) {
		sum, _ := half.Add(third)
		if !sum.Equal(mustFrac(t, 5, 6)) {
			t.Errorf("1/2 + 1/3 = %s", sum)
		}
		diff, _ := third.Sub(half)
		if !diff.Equal(mustFrac(t, -1, 6)) {
			t.Errorf("1/3 - 1/2 = %s", diff)
		}
	})

	t.Run("MulDiv", func(t *testing.T) {
		prod, _ := half.Mul(Int(6))
		if !prod.Equal(Int(3)) {
			t.Errorf("1/2 * 6 = %s", prod)
		}
		quo, err := half.Div(third)
		if err != nil {
			t.Fatal(err)
		}
		if !quo.Equal(mustFrac(t, 3, 2)) {
			t.Errorf("(1/2) / (1/3) = %s", quo)
		}
	})

	t.Run("DivideByZeroFails", func(t *testing.T) {
		if _, err := half.Div(Int(0)); !errors.Is(err, ErrDivisionByZero) {
			t.Errorf("expected ErrDivisionByZero, got %v", err)
		}
		if _, err := Frac(1, 0); !errors.Is(err, ErrDivisionByZero) {
			t.Errorf("expected ErrDivisionByZero, got %v", err)
		}
	})

	t.Run("Neg", func(t *testing.T) {
		if !half.Neg().Equal(mustFrac(t, -1, 2)) {
			t.Errorf("-(1/2) = %s", half.Neg())
		}
	})
}

func TestPow(t *testing.T) {
	tests := []struct {
		name string
		base Number
		k    int64
		want Number
	}{
		{"Square", Int(-3), 2, Int(9)},
		{"Cube", Int(-2), 3, Int(-8)},
		{"Fraction", mustFrac(t, 2, 3), 3, mustFrac(t, 8, 27)},
		{"ZeroExponent", Int(5), 0, Int(1)},
		{"ZeroToZero", Int(0), 0, Int(1)},
		{"ZeroBase", Int(0), 4, Int(0)},
		{"Negative", Int(2), -3, mustFrac(t, 1, 8)},
		{"NegativeBaseNegativeExponent", mustFrac(t, -2, 3), -1, mustFrac(t, -3, 2)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.base.Pow(tt.k)
			if err != nil {
				t.Fatal(err)
			}
			if !got.Equal(tt.want) {
				t.Errorf("%s^%d = %s, want %s", tt.base, tt.k, got, tt.want)
			}
		})
	}

	t.Run("ZeroNegativeExponentFails", func(t *testing.T) {
		if _, err := Int(0).Pow(-1); !errors.Is(err, ErrDivisionByZero) {
			t.Errorf("expected ErrDivisionByZero, got %v", err)
		}
	})
}

func TestZeroValue(t *testing.T) {
	var z Number
	if !z.IsZero() {
		t.Error("zero value is not 0")
	}
	sum, _ := z.Add(Int(4))
	if !sum.Equal(Int(4)) {
		t.Errorf("0 + 4 = %s", sum)
	}
	if z.String() != "0" {
		t.Errorf("got %q", z.String())
	}
}

func TestImmutable(t *testing.T) {
	r := big.NewRat(1, 2)
	n := FromRat(r)
	r.SetInt64(9)
	if !n.Equal(mustFrac(t, 1, 2)) {
		t.Errorf("FromRat did not copy: %s", n)
	}
	n.Rat().SetInt64(7)
	if !n.Equal(mustFrac(t, 1, 2)) {
		t.Errorf("Rat exposed internal state: %s", n)
	}
	_, _ = n.Add(Int(1))
	_, _ = n.Pow(-2)
	if !n.Equal(mustFrac(t, 1, 2)) {
		t.Errorf("operand mutated: %s", n)
	}
}

func TestString(t *testing.T) {
	if s := Int(-7).String(); s != "-7" {
		t.Errorf("got %q", s)
	}
	if s := mustFrac(t, 6, -8).String(); s != "-3/4" {
		t.Errorf("got %q", s)
	}
}
