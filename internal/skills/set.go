package skills

// Set is a deduplicated collection of strings that remembers insertion order.
// The zero value is ready to use. A Set is not safe for concurrent mutation.
type Set struct {
	items []string
	index map[string]struct{}
}

// NewSet returns a Set holding values in first-seen order.
func NewSet(values ...string) *Set {
	s := &Set{}
	for _, v := range values {
		s.Add(v)
	}
	return s
}

// Add inserts v and reports whether it was not already present.
func (s *Set) Add(v string) bool {
	if s.index == nil {
		s.index = make(map[string]struct{})
	}
	if _, exists := s.index[v]; exists {
		return false
	}
	s.index[v] = struct{}{}
	s.items = append(s.items, v)
	return true
}

// Contains reports whether v is in the set.
func (s *Set) Contains(v string) bool {
	if s == nil {
		return false
	}
	_, ok := s.index[v]
	return ok
}

// Len returns the number of distinct values.
func (s *Set) Len() int {
	if s == nil {
		return 0
	}
	return len(s.items)
}

// Values returns a copy of the values in insertion order. Never nil.
func (s *Set) Values() []string {
	if s == nil {
		return []string{}
	}
	out := make([]string, len(s.items))
	copy(out, s.items)
	return out
}

// Intersect returns the values of s that are also in other, in s's order.
func (s *Set) Intersect(other *Set) []string {
	return s.filter(func(v string) bool { return other.Contains(v) })
}

// Difference returns the values of s that are not in other, in s's order.
func (s *Set) Difference(other *Set) []string {
	return s.filter(func(v string) bool { return !other.Contains(v) })
}

func (s *Set) filter(keep func(string) bool) []string {
	out := make([]string, 0, s.Len())
	if s == nil {
		return out
	}
	for _, v := range s.items {
		if keep(v) {
			out = append(out, v)
		}
	}
	return out
}
