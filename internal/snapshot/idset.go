package snapshot

import "sort"

// IDSet is a set of satellite identifier strings.
type IDSet map[string]struct{}

// NewIDSet builds a set from the given identifiers.
func NewIDSet(ids ...string) IDSet {
	s := make(IDSet, len(ids))
	for _, id := range ids {
		s[id] = struct{}{}
	}
	return s
}

// Add inserts id into the set.
func (s IDSet) Add(id string) {
	s[id] = struct{}{}
}

// Has reports whether id is in the set.
func (s IDSet) Has(id string) bool {
	_, ok := s[id]
	return ok
}

// Merge inserts every identifier in ids and reports whether the set grew.
func (s IDSet) Merge(ids []string) bool {
	grew := false
	for _, id := range ids {
		if !s.Has(id) {
			s.Add(id)
			grew = true
		}
	}
	return grew
}

// Sorted returns the identifiers in sorted order.
func (s IDSet) Sorted() []string {
	ids := make([]string, 0, len(s))
	for id := range s {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
