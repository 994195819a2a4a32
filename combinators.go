package sift

// Filter yields the elements of s for which pred holds.
func Filter[E any](s Seq[E], pred func(E) bool) Seq[E] {
	return func() (e E, ok bool, err error) {
		for {
			e, ok, err = s()
			if err != nil || !ok {
				return
			}
			if pred(e) {
				return
			}
		}
	}
}

// Project maps every element of s through fn.
func Project[E, R any](s Seq[E], fn func(E) R) Seq[R] {
	return func() (r R, ok bool, err error) {
		e, ok, err := s()
		if err != nil || !ok {
			return
		}
		r = fn(e)
		return
	}
}

// Take yields at most n leading elements.
func Take[E any](s Seq[E], n int) Seq[E] {
	taken := 0
	return func() (e E, ok bool, err error) {
		if taken >= n {
			return
		}
		e, ok, err = s()
		if err != nil || !ok {
			return
		}
		taken++
		return
	}
}

// Skip drops the first n elements.
func Skip[E any](s Seq[E], n int) Seq[E] {
	skipped := false
	return func() (e E, ok bool, err error) {
		if !skipped {
			skipped = true
			for i := 0; i < n; i++ {
				_, ok, err = s()
				if err != nil || !ok {
					ok = false
					return
				}
			}
		}
		return s()
	}
}

// Concat yields every element of a, then every element of b.
func Concat[E any](a, b Seq[E]) Seq[E] {
	first := true
	return func() (e E, ok bool, err error) {
		if first {
			e, ok, err = a()
			if err != nil || ok {
				return
			}
			first = false
		}
		return b()
	}
}
