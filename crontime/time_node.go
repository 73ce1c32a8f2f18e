package crontime

import "sort"

// nearestValue is the result of a nearest value search: the matched
// value and the number of times the search wrapped around the set
// boundary. A non-zero shift count carries into the next coarser
// field.
type nearestValue struct {
	value  int
	shifts int
}

// timeNode is an ordered set of the legal values of a single time
// field.
type timeNode struct {
	values []int
}

// newTimeNode returns a timeNode over the given values, which fails
// with ErrNoMatch if the value set is empty.
func newTimeNode(values []int) (*timeNode, error) {
	if len(values) == 0 {
		return nil, noMatchError("empty field value set")
	}
	sort.Ints(values)
	return &timeNode{values: values}, nil
}

// contains reports whether the value is in the set.
func (n *timeNode) contains(value int) bool {
	index := sort.SearchInts(n.values, value)
	return index < len(n.values) && n.values[index] == value
}

// nextValue returns the nearest value at or after the reference,
// wrapping around to the lowest value and incrementing the shift count
// when the reference is past the end of the set.
func (n *timeNode) nextValue(reference, shifts int) nearestValue {
	index := sort.SearchInts(n.values, reference)
	if index < len(n.values) {
		return nearestValue{value: n.values[index], shifts: shifts}
	}
	return nearestValue{value: n.values[0], shifts: shifts + 1}
}

// previousValue returns the nearest value at or before the reference,
// wrapping around to the highest value and incrementing the shift
// count when the reference precedes the start of the set.
func (n *timeNode) previousValue(reference, shifts int) nearestValue {
	index := sort.SearchInts(n.values, reference+1) - 1
	if index >= 0 {
		return nearestValue{value: n.values[index], shifts: shifts}
	}
	return nearestValue{value: n.values[len(n.values)-1], shifts: shifts + 1}
}

// lowest returns the smallest value in the set.
func (n *timeNode) lowest() int {
	return n.values[0]
}

// highest returns the largest value in the set.
func (n *timeNode) highest() int {
	return n.values[len(n.values)-1]
}
