package stats

import (
	"sift/number"
)

// sortedAcc keeps pushed values in ascending order. It is built fresh per
// median computation, populated once, then only read. Insertion is stable:
// equal values stay in push order.
type sortedAcc struct {
	list []number.Value
}

func newSortedAcc() *sortedAcc {
	return &sortedAcc{list: []number.Value{}}
}

func (s *sortedAcc) push(v number.Value) {
	idx := len(s.list)
	for i, cur := range s.list {
		if number.Compare(v, cur) < 0 {
			idx = i
			break
		}
	}
	s.list = append(s.list, number.Value{})
	copy(s.list[idx+1:], s.list[idx:])
	s.list[idx] = v
}

func (s *sortedAcc) len() int {
	return len(s.list)
}

// at returns the i-th smallest value.
func (s *sortedAcc) at(i int) number.Value {
	return s.list[i]
}
