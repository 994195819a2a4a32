// Package sift is a query-style collection library: lazy sequence
// combinators over one-shot cursors, with a numeric aggregation engine in
// sift/stats and a sqlite-backed tabular store in sift/table.
package sift

// Seq is a one-shot pull cursor over elements of type E. Each call yields
// the next element; ok reports whether an element was produced. A Seq is
// consumed front to back exactly once and is not restartable.
type Seq[E any] func() (e E, ok bool, err error)

// Source hands out independent cursors over the same logical data. Two-pass
// algorithms draw a fresh cursor per pass.
type Source[E any] interface {
	Cursor() Seq[E]
}

type sliceSource[E any] struct {
	list []E
}

func (s *sliceSource[E]) Cursor() Seq[E] {
	idx := 0
	return func() (e E, ok bool, err error) {
		if idx >= len(s.list) {
			return
		}
		e = s.list[idx]
		idx++
		ok = true
		return
	}
}

// FromSlice wraps a slice as a restartable Source.
func FromSlice[E any](list []E) Source[E] {
	return &sliceSource[E]{list: list}
}

type funcSource[E any] struct {
	open func() Seq[E]
}

func (s *funcSource[E]) Cursor() Seq[E] {
	return s.open()
}

// SourceFunc lifts a cursor constructor into a Source.
func SourceFunc[E any](open func() Seq[E]) Source[E] {
	return &funcSource[E]{open: open}
}

// Collect drains the cursor into a slice.
func Collect[E any](s Seq[E]) (list []E, err error) {
	list = []E{}
	for {
		e, ok, nerr := s()
		if nerr != nil {
			err = nerr
			return
		}
		if !ok {
			return
		}
		list = append(list, e)
	}
}

// Count drains the cursor and reports how many elements it produced.
func Count[E any](s Seq[E]) (n int, err error) {
	for {
		_, ok, nerr := s()
		if nerr != nil {
			err = nerr
			return
		}
		if !ok {
			return
		}
		n++
	}
}
