package sift

// Distinct yields the first occurrence of every element, in order.
func Distinct[E comparable](s Seq[E]) Seq[E] {
	return DistinctBy(s, func(e E) E { return e })
}

// DistinctBy yields the first element of every key class, in order.
func DistinctBy[E any, K comparable](s Seq[E], key func(E) K) Seq[E] {
	seen := map[K]bool{}
	return func() (e E, ok bool, err error) {
		for {
			e, ok, err = s()
			if err != nil || !ok {
				return
			}
			k := key(e)
			if seen[k] {
				continue
			}
			seen[k] = true
			return
		}
	}
}

// Union yields the distinct elements of a followed by the distinct elements
// of b not already seen in a.
func Union[E comparable](a, b Seq[E]) Seq[E] {
	return Distinct(Concat(a, b))
}

// Intersect yields the distinct elements of a that also occur in b. The b
// cursor is drained on the first pull.
func Intersect[E comparable](a, b Seq[E]) Seq[E] {
	var inB map[E]bool
	return Distinct(Filter(a, func(e E) bool {
		return inB[e]
	})).withSetup(func() error {
		list, err := Collect(b)
		if err != nil {
			return err
		}
		inB = map[E]bool{}
		for _, e := range list {
			inB[e] = true
		}
		return nil
	})
}

// Except yields the distinct elements of a that do not occur in b. The b
// cursor is drained on the first pull.
func Except[E comparable](a, b Seq[E]) Seq[E] {
	var inB map[E]bool
	return Distinct(Filter(a, func(e E) bool {
		return !inB[e]
	})).withSetup(func() error {
		list, err := Collect(b)
		if err != nil {
			return err
		}
		inB = map[E]bool{}
		for _, e := range list {
			inB[e] = true
		}
		return nil
	})
}

// withSetup runs setup once before the first element is pulled. A setup
// error surfaces through the cursor.
func (s Seq[E]) withSetup(setup func() error) Seq[E] {
	done := false
	return func() (e E, ok bool, err error) {
		if !done {
			done = true
			if err = setup(); err != nil {
				return
			}
		}
		return s()
	}
}
