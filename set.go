package chart

import "sort"

// -------------------------------------------------------------------------
// String Set

// StringSet is a set of strings which remembers the order in which
// elements were first added. The zero value is an empty set.
type StringSet struct {
	index map[string]int
	elems []string
}

// NewStringSetFrom returns the set of all strings in init.
func NewStringSetFrom(init []string) *StringSet {
	s := &StringSet{}
	for _, x := range init {
		s.Add(x)
	}
	return s
}

// Add adds x to s. Adding an existing element is a no-op.
func (s *StringSet) Add(x string) {
	if s.index == nil {
		s.index = make(map[string]int)
	}
	if _, ok := s.index[x]; ok {
		return
	}
	s.index[x] = len(s.elems)
	s.elems = append(s.elems, x)
}

// Contains reports membership of x in s.
func (s *StringSet) Contains(x string) bool {
	_, ok := s.index[x]
	return ok
}

// Index returns the insertion rank of x or -1.
func (s *StringSet) Index(x string) int {
	if i, ok := s.index[x]; ok {
		return i
	}
	return -1
}

// Len is the number of elements.
func (s *StringSet) Len() int { return len(s.elems) }

// Ordered returns the elements in first-seen order.
func (s *StringSet) Ordered() []string {
	return append([]string(nil), s.elems...)
}

// Elements returns the elements sorted.
func (s *StringSet) Elements() []string {
	elems := s.Ordered()
	sort.Strings(elems)
	return elems
}
