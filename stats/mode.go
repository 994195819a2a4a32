package stats

import (
	"sift"
	"sift/number"
)

// modeKey is the equality class of a value: same kind, same canonical text.
type modeKey struct {
	kind number.Kind
	repr string
}

// Mode is the most frequent projected value. Ties go to the value whose
// group was encountered first. Absent for an empty sequence.
func Mode[E any](src sift.Source[E], proj Proj[E]) (v number.Value, err error) {
	groups, err := sift.GroupBy(numbers(src.Cursor(), proj), func(x number.Value) modeKey {
		return modeKey{kind: x.Kind(), repr: x.String()}
	})
	if err != nil {
		return
	}
	best := -1
	for _, g := range groups {
		if len(g.Items) > best {
			best = len(g.Items)
			v = g.Items[0]
		}
	}
	return
}
