package curve

// Coordinate is the set of field operations the group law is written
// against. E is the implementing type itself, so that
// field.Element satisfies Coordinate[field.Element].
//
// Implementations must be value types whose methods never modify the
// receiver or the argument.
type Coordinate[E any] interface {
	// Add returns the receiver plus b.
	Add(b E) (E, error)
	// Sub returns the receiver minus b.
	Sub(b E) (E, error)
	// Mul returns the receiver times b.
	Mul(b E) (E, error)
	// Div returns the receiver divided by b.
	// Returns an error if b is zero.
	Div(b E) (E, error)
	// Pow returns the receiver raised to n.
	Pow(n int64) (E, error)
	// Neg returns the additive inverse of the receiver.
	Neg() E
	// Equal reports whether the receiver equals b.
	Equal(b E) bool
	// IsZero reports whether the receiver is the additive identity.
	IsZero() bool
	// String returns a human-readable representation.
	String() string
}
