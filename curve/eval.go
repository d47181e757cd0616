package curve

// eval threads the first coordinate error through a formula so the
// group law can be written as straight-line code. Once err is set every
// further step is a no-op and the caller checks err once at the end.
type eval[E Coordinate[E]] struct {
	err error
}

func (ev *eval[E]) add(x, y E) E {
	if ev.err != nil {
		return x
	}
	r, err := x.Add(y)
	ev.err = err
	return r
}

func (ev *eval[E]) sub(x, y E) E {
	if ev.err != nil {
		return x
	}
	r, err := x.Sub(y)
	ev.err = err
	return r
}

func (ev *eval[E]) mul(x, y E) E {
	if ev.err != nil {
		return x
	}
	r, err := x.Mul(y)
	ev.err = err
	return r
}

func (ev *eval[E]) div(x, y E) E {
	if ev.err != nil {
		return x
	}
	r, err := x.Div(y)
	ev.err = err
	return r
}

func (ev *eval[E]) pow(x E, n int64) E {
	if ev.err != nil {
		return x
	}
	r, err := x.Pow(n)
	ev.err = err
	return r
}
