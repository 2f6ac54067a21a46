// Package memory provides an in-memory person-attribute source, used both
// as a standalone backing store and as the loaded form of the file-backed
// source. It answers seed queries by multivalued attribute containment.
package memory

import (
	"context"
	"reflect"
	"sync"

	"golang.org/x/text/cases"

	"github.com/agentstation/persondir/pkg/directory"
	"github.com/agentstation/persondir/pkg/persons"
)

// Directory is an in-memory person store. Unlike the transient collections
// the merge engine works on, the store is long-lived and shared, so reads
// and writes are guarded by a mutex.
type Directory struct {
	mu              sync.RWMutex
	people          []persons.Person
	name            string
	caseInsensitive bool
}

// Compile-time interface checks.
var (
	_ directory.Searcher  = (*Directory)(nil)
	_ directory.Describer = (*Directory)(nil)
	_ directory.Named     = (*Directory)(nil)
)

// Option is a function that configures a memory Directory.
type Option func(*Directory) error

// WithName sets the source name used in logs and errors.
func WithName(name string) Option {
	return func(d *Directory) error {
		d.name = name
		return nil
	}
}

// WithPeople seeds the store with person records.
func WithPeople(people ...persons.Person) Option {
	return func(d *Directory) error {
		d.people = append(d.people, people...)
		return nil
	}
}

// WithCaseInsensitiveNames makes attribute-name matching in seed queries
// case-insensitive, using Unicode case folding.
func WithCaseInsensitiveNames() Option {
	return func(d *Directory) error {
		d.caseInsensitive = true
		return nil
	}
}

// New creates an in-memory directory source.
func New(opts ...Option) (*Directory, error) {
	d := &Directory{
		name: "memory",
	}

	for _, opt := range opts {
		if err := opt(d); err != nil {
			return nil, err
		}
	}

	return d, nil
}

// Name returns the source name.
func (d *Directory) Name() string {
	return d.name
}

// Add appends a person record to the store.
func (d *Directory) Add(person persons.Person) {
	d.mu.Lock()
	d.people = append(d.people, person)
	d.mu.Unlock()
}

// Len returns the number of stored records.
func (d *Directory) Len() int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return len(d.people)
}

// PeopleWithAttributes returns the records matching every seed attribute.
// A record matches a seed entry when it carries the attribute and at least
// one of the seed values appears in the record's value list.
//
// Returned records carry independent attribute-map copies so callers (and
// the merge engine downstream) can never corrupt the store.
func (d *Directory) PeopleWithAttributes(_ context.Context, seed persons.Attributes) (*persons.Persons, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	result := persons.NewPersons()
	for _, person := range d.people {
		if d.matches(person, seed) {
			result.Add(persons.Person{
				Name:       person.Name,
				Attributes: persons.CopyMutable(person.Attributes),
			})
		}
	}
	return result, nil
}

// AvailableQueryAttributes returns every attribute name in the store; any
// stored attribute can appear in a seed.
func (d *Directory) AvailableQueryAttributes() persons.NameSet {
	return d.attributeNames()
}

// PossibleUserAttributeNames returns every attribute name in the store.
func (d *Directory) PossibleUserAttributeNames() persons.NameSet {
	return d.attributeNames()
}

func (d *Directory) attributeNames() persons.NameSet {
	d.mu.RLock()
	defer d.mu.RUnlock()

	names := persons.NewNameSet()
	for _, person := range d.people {
		for name := range person.Attributes {
			names.Add(name)
		}
	}
	return names
}

// matches reports whether every seed attribute is satisfied by the record.
func (d *Directory) matches(person persons.Person, seed persons.Attributes) bool {
	for name, seedValues := range seed {
		values, ok := d.lookup(person.Attributes, name)
		if !ok {
			return false
		}
		if !containsAny(values, seedValues) {
			return false
		}
	}
	return true
}

// lookup finds an attribute by name, folding case when configured.
func (d *Directory) lookup(attrs persons.Attributes, name string) ([]any, bool) {
	if values, ok := attrs[name]; ok {
		return values, true
	}
	if !d.caseInsensitive {
		return nil, false
	}

	folded := fold(name)
	for attrName, values := range attrs {
		if fold(attrName) == folded {
			return values, true
		}
	}
	return nil, false
}

// containsAny reports whether any wanted value appears in values.
func containsAny(values, wanted []any) bool {
	for _, w := range wanted {
		for _, v := range values {
			if reflect.DeepEqual(v, w) {
				return true
			}
		}
	}
	return false
}

// fold case-folds a string for comparison. A Caser carries internal state,
// so a fresh one is used per call.
func fold(s string) string {
	return cases.Fold().String(s)
}
