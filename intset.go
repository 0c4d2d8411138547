package sheetgrid

import "sort"

// IntSet is a set of 1-based row or column indices.
//
// A nil IntSet used as a restriction means "no restriction",
// which is different from an empty non-nil set that lets nothing pass.
type IntSet map[int]struct{}

// NewIntSet returns a non-nil set containing values.
func NewIntSet(values ...int) IntSet {
	set := make(IntSet, len(values))
	for _, v := range values {
		set[v] = struct{}{}
	}
	return set
}

// Has reports if v is in the set.
// A nil set contains nothing.
func (set IntSet) Has(v int) bool {
	_, ok := set[v]
	return ok
}

// Add inserts v into the set.
func (set IntSet) Add(v int) {
	set[v] = struct{}{}
}

// Sorted returns the values in increasing order.
func (set IntSet) Sorted() []int {
	if set == nil {
		return nil
	}
	values := make([]int, 0, len(set))
	for v := range set {
		values = append(values, v)
	}
	sort.Ints(values)
	return values
}
