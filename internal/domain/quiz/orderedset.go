package quiz

// OrderedSet is an insertion-ordered collection of distinct strings.
// Two strings are the same member when their keys are equal.
type OrderedSet struct {
	key   func(string) string
	items []string
	seen  map[string]struct{}
}

// NewOrderedSet returns a set keyed by exact string equality.
func NewOrderedSet(values ...string) *OrderedSet {
	return newOrderedSetBy(nil, values...)
}

// newOrderedSetBy returns a set keyed by key(value). A nil key means identity.
func newOrderedSetBy(key func(string) string, values ...string) *OrderedSet {
	s := &OrderedSet{key: key, seen: make(map[string]struct{})}
	for _, v := range values {
		s.Add(v)
	}
	return s
}

func (s *OrderedSet) keyOf(v string) string {
	if s.key == nil {
		return v
	}
	return s.key(v)
}

// Add appends v unless an equal member exists. It reports whether v was added.
func (s *OrderedSet) Add(v string) bool {
	k := s.keyOf(v)
	if _, ok := s.seen[k]; ok {
		return false
	}
	s.seen[k] = struct{}{}
	s.items = append(s.items, v)
	return true
}

// Contains reports whether a member equal to v exists.
func (s *OrderedSet) Contains(v string) bool {
	_, ok := s.seen[s.keyOf(v)]
	return ok
}

// Len returns the number of members.
func (s *OrderedSet) Len() int {
	return len(s.items)
}

// Values returns a copy of the members in insertion order.
func (s *OrderedSet) Values() []string {
	out := make([]string, len(s.items))
	copy(out, s.items)
	return out
}
