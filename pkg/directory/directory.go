// Package directory defines the lookup surface over person-attribute
// sources: the Searcher boundary every backing source implements, the
// single-identity Resolver adapter, and the Merging directory that folds
// several sources into one view through the merge engine.
package directory

import (
	"context"

	"github.com/agentstation/persondir/pkg/persons"
)

// Searcher is the multi-record lookup boundary implemented by every
// backing source. Given a seed of multivalued attributes it returns the
// matching person records. Well-formed sources return zero or one record
// for a seed built from a unique identifier.
type Searcher interface {
	// PeopleWithAttributes returns the records matching every seed attribute
	PeopleWithAttributes(ctx context.Context, seed persons.Attributes) (*persons.Persons, error)
}

// Describer reports the query shape of a source: which attribute names it
// can be queried by and which it can return. Sources implement it when the
// information is knowable; the Merging directory unions it across children.
type Describer interface {
	// AvailableQueryAttributes returns the attribute names usable in seeds
	AvailableQueryAttributes() persons.NameSet

	// PossibleUserAttributeNames returns the attribute names a source can return
	PossibleUserAttributeNames() persons.NameSet
}

// Named gives a source a stable name for logs and error messages.
type Named interface {
	// Name returns the source name
	Name() string
}

// Directory is the full lookup surface: seed queries plus single-identity
// resolution.
type Directory interface {
	Searcher

	// Person resolves a single identity by its identifier
	Person(ctx context.Context, uid string) (*persons.Person, error)
}
