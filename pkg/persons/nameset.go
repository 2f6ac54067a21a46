package persons

import "sort"

// NameSet is a set of attribute names.
type NameSet map[string]struct{}

// NewNameSet creates a set containing the given names.
func NewNameSet(names ...string) NameSet {
	s := make(NameSet, len(names))
	for _, name := range names {
		s.Add(name)
	}
	return s
}

// Add inserts a name into the set.
func (s NameSet) Add(name string) {
	s[name] = struct{}{}
}

// Contains reports whether the set holds the given name.
func (s NameSet) Contains(name string) bool {
	_, ok := s[name]
	return ok
}

// Union adds every name from other into s and returns s.
func (s NameSet) Union(other NameSet) NameSet {
	for name := range other {
		s[name] = struct{}{}
	}
	return s
}

// List returns the names in sorted order.
func (s NameSet) List() []string {
	names := make([]string, 0, len(s))
	for name := range s {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
