package sift

// Group is one equality class produced by GroupBy.
type Group[K comparable, E any] struct {
	Key   K
	Items []E
}

// GroupBy drains the cursor and buckets elements by key. Groups appear in
// first-encounter order, and items keep sequence order inside their group.
func GroupBy[E any, K comparable](s Seq[E], key func(E) K) (groups []Group[K, E], err error) {
	groups = []Group[K, E]{}
	index := map[K]int{}
	for {
		e, ok, nerr := s()
		if nerr != nil {
			err = nerr
			return
		}
		if !ok {
			return
		}
		k := key(e)
		if i, found := index[k]; found {
			groups[i].Items = append(groups[i].Items, e)
			continue
		}
		index[k] = len(groups)
		groups = append(groups, Group[K, E]{Key: k, Items: []E{e}})
	}
}
