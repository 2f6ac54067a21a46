package directory

import (
	"context"

	"github.com/agentstation/persondir/pkg/errors"
	"github.com/agentstation/persondir/pkg/logging"
	"github.com/agentstation/persondir/pkg/persons"
)

// Resolver adapts any Searcher into a single-identity lookup: it seeds a
// query from a bare identifier, enforces at-most-one match, and backfills
// the identity name when the source does not report one.
type Resolver struct {
	searcher Searcher
	username UsernameProvider
}

// ResolverOption configures a Resolver.
type ResolverOption func(*Resolver)

// WithUsernameProvider sets the provider for the seed attribute name.
func WithUsernameProvider(provider UsernameProvider) ResolverOption {
	return func(r *Resolver) {
		if provider != nil {
			r.username = provider
		}
	}
}

// WithUsernameAttribute sets a fixed seed attribute name.
func WithUsernameAttribute(attribute string) ResolverOption {
	return func(r *Resolver) {
		r.username = NewUsernameProvider(attribute)
	}
}

// NewResolver creates a single-identity lookup adapter over a Searcher.
// The default seed attribute is "username".
func NewResolver(searcher Searcher, opts ...ResolverOption) *Resolver {
	r := &Resolver{
		searcher: searcher,
		username: NewUsernameProvider(""),
	}

	for _, opt := range opts {
		opt(r)
	}

	return r
}

// Person resolves the identity behind uid.
//
// A missing identity is a normal outcome: the record pointer is nil and
// the error is nil. More than one match means the backing source data is
// inconsistent and yields an IncorrectResultSizeError. When the single
// match carries no identity name, a new record named uid is returned in
// its place so callers always receive a named result.
func (r *Resolver) Person(ctx context.Context, uid string) (*persons.Person, error) {
	if uid == "" {
		return nil, errors.NewValidationError("uid", uid, "cannot be empty")
	}

	seed := Seed(r.username, uid)
	logging.Ctx(ctx).Debug().
		Str("uid", uid).
		Str("username_attribute", r.username.UsernameAttribute()).
		Msg("Created seed for single-identity lookup")

	people, err := r.searcher.PeopleWithAttributes(ctx, seed)
	if err != nil {
		return nil, err
	}
	if people == nil || people.Len() == 0 {
		return nil, nil
	}
	if people.Len() > 1 {
		return nil, errors.NewIncorrectResultSizeError(1, people.Len())
	}

	person := people.List()[0]
	if !person.Named() {
		named := persons.NewNamedPerson(uid, person.Attributes)
		return &named, nil
	}
	return &person, nil
}
