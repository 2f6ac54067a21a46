package persons

// Attributes maps an attribute name to its ordered list of values.
// A nil value slice is a legal entry: the attribute is known but carries
// no values for the identity.
type Attributes map[string][]any

// NewAttributes allocates an empty attribute map sized for the expected
// number of entries. Non-positive sizes get a minimal default capacity.
// Merge strategies that need a different map representation can wrap the
// result; the engine only depends on map semantics.
func NewAttributes(expected int) Attributes {
	if expected <= 0 {
		expected = 1
	}
	return make(Attributes, expected)
}

// CopyMutable returns an independent copy of src: a fresh map with a fresh
// value slice per entry, so in-place edits to the copy never reach src.
// Slice elements are shared, not cloned. Nil value slices stay nil.
func CopyMutable(src Attributes) Attributes {
	dst := NewAttributes(len(src))
	for name, values := range src {
		if values == nil {
			dst[name] = nil
			continue
		}
		copied := make([]any, len(values))
		copy(copied, values)
		dst[name] = copied
	}
	return dst
}

// Names returns the set of attribute names present in the map.
func (a Attributes) Names() NameSet {
	names := make(NameSet, len(a))
	for name := range a {
		names.Add(name)
	}
	return names
}
