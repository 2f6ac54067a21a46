package directory

import (
	"context"
	"fmt"

	"github.com/agentstation/persondir/pkg/errors"
	"github.com/agentstation/persondir/pkg/logging"
	"github.com/agentstation/persondir/pkg/merger"
	"github.com/agentstation/persondir/pkg/persons"
)

// Merging queries an ordered list of child sources with the same seed and
// folds the results left-to-right through the merge engine, yielding one
// unified record set. Children that fail are skipped with a warning by
// default, matching directories where some backing stores are flaky;
// fail-fast mode surfaces the first child error instead.
type Merging struct {
	sources  []Searcher
	engine   *merger.Merger
	resolver *Resolver
	recover  bool
}

// Compile-time interface checks.
var (
	_ Directory = (*Merging)(nil)
	_ Describer = (*Merging)(nil)
)

// MergingOption configures a Merging directory.
type MergingOption func(*Merging)

// WithStrategy sets the attribute merge strategy for overlapping records.
func WithStrategy(s merger.Strategy) MergingOption {
	return func(d *Merging) {
		if s != nil {
			d.engine = merger.New(merger.WithStrategy(s))
		}
	}
}

// WithFailFast makes the first failing child abort the whole query instead
// of being logged and skipped.
func WithFailFast() MergingOption {
	return func(d *Merging) {
		d.recover = false
	}
}

// WithResolverOptions forwards options to the embedded single-identity
// resolver, e.g. a custom username attribute.
func WithResolverOptions(opts ...ResolverOption) MergingOption {
	return func(d *Merging) {
		d.resolver = NewResolver(d, opts...)
	}
}

// NewMerging creates a merging directory over the given sources. Source
// order matters: earlier sources form the base the later ones merge into,
// so with a first-wins strategy the leftmost source has priority.
func NewMerging(sources []Searcher, opts ...MergingOption) *Merging {
	d := &Merging{
		sources: sources,
		engine:  merger.New(),
		recover: true,
	}
	d.resolver = NewResolver(d)

	for _, opt := range opts {
		opt(d)
	}

	return d
}

// Engine returns the merge engine the directory folds results through.
func (d *Merging) Engine() *merger.Merger {
	return d.engine
}

// PeopleWithAttributes queries every child with the seed and merges the
// results additively, in source order.
func (d *Merging) PeopleWithAttributes(ctx context.Context, seed persons.Attributes) (*persons.Persons, error) {
	var result *persons.Persons

	for i, source := range d.sources {
		name := sourceName(source, i)

		people, err := source.PeopleWithAttributes(ctx, seed)
		if err != nil {
			if !d.recover {
				return nil, errors.NewSourceError(name, "people_with_attributes", err)
			}
			logging.Ctx(ctx).Warn().
				Err(err).
				Str("source", name).
				Msg("Skipping failing source")
			continue
		}
		if people == nil {
			continue
		}

		if result == nil {
			// The first answering source's collection becomes the merge base.
			result = people
			continue
		}

		result, err = d.engine.MergeResults(result, people)
		if err != nil {
			return nil, err
		}
	}

	if result == nil {
		result = persons.NewPersons()
	}
	return result, nil
}

// Person resolves a single identity across all child sources.
func (d *Merging) Person(ctx context.Context, uid string) (*persons.Person, error) {
	return d.resolver.Person(ctx, uid)
}

// AvailableQueryAttributes unions the queryable attribute names of every
// child that reports them.
func (d *Merging) AvailableQueryAttributes() persons.NameSet {
	names := persons.NewNameSet()
	for _, source := range d.sources {
		if desc, ok := source.(Describer); ok {
			names = d.engine.MergeAvailableQueryAttributes(names, desc.AvailableQueryAttributes())
		}
	}
	return names
}

// PossibleUserAttributeNames unions the returnable attribute names of
// every child that reports them.
func (d *Merging) PossibleUserAttributeNames() persons.NameSet {
	names := persons.NewNameSet()
	for _, source := range d.sources {
		if desc, ok := source.(Describer); ok {
			names = d.engine.MergePossibleUserAttributeNames(names, desc.PossibleUserAttributeNames())
		}
	}
	return names
}

// sourceName returns the child's own name or a positional fallback.
func sourceName(source Searcher, i int) string {
	if named, ok := source.(Named); ok {
		return named.Name()
	}
	return fmt.Sprintf("source[%d]", i)
}
