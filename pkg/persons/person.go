// Package persons defines the person-attribute data model shared by every
// directory source and by the merge engine: a Person record, the Attributes
// map backing it, and the collection types the engine operates on.
package persons

// Person represents one identity's resolved attributes.
//
// Name is the canonical identity string. Raw records coming out of a
// backing source that does not report identity names carry an empty Name;
// the lookup layer backfills it before records reach callers.
type Person struct {
	Name       string     `json:"name,omitempty" yaml:"name,omitempty"`
	Attributes Attributes `json:"attributes,omitempty" yaml:"attributes,omitempty"`
}

// NewPerson creates an unnamed person record with the given attributes.
func NewPerson(attrs Attributes) Person {
	return Person{Attributes: attrs}
}

// NewNamedPerson creates a person record with an explicit identity name.
func NewNamedPerson(name string, attrs Attributes) Person {
	return Person{Name: name, Attributes: attrs}
}

// Named reports whether the record carries an identity name.
func (p Person) Named() bool {
	return p.Name != ""
}

// Value returns the first value for the named attribute, or nil when the
// attribute is absent or has no values.
func (p Person) Value(name string) any {
	values := p.Attributes[name]
	if len(values) == 0 {
		return nil
	}
	return values[0]
}

// Values returns the ordered value list for the named attribute, or nil
// when the attribute is absent.
func (p Person) Values(name string) []any {
	return p.Attributes[name]
}

// AttributeNames returns the set of attribute names present on the record.
func (p Person) AttributeNames() NameSet {
	names := make(NameSet, len(p.Attributes))
	for name := range p.Attributes {
		names.Add(name)
	}
	return names
}
