// Package merger implements the additive person-attribute merge engine:
// it combines record sets from independent sources by identity name and
// delegates per-identity attribute combination to a pluggable Strategy.
//
// The engine itself owns identity matching, copy safety, and collection
// bookkeeping; strategies only decide how two attribute maps for one
// identity combine.
package merger

import (
	"github.com/agentstation/persondir/pkg/errors"
	"github.com/agentstation/persondir/pkg/logging"
	"github.com/agentstation/persondir/pkg/persons"
)

// Merger additively combines person record sets. Records present in only
// one set pass through unchanged; records matched by identity name are
// merged through the configured Strategy and replace both originals.
//
// A Merger is stateless apart from its strategy and safe for concurrent
// use as long as callers do not share a single toModify collection across
// concurrent calls.
type Merger struct {
	strategy Strategy
}

// New creates a merge engine. The default strategy keeps every value from
// every source (multivalued append).
func New(opts ...Option) *Merger {
	m := &Merger{
		strategy: NewMultivalued(),
	}

	for _, opt := range opts {
		opt(m)
	}

	return m
}

// Strategy returns the engine's attribute merge strategy.
func (m *Merger) Strategy() Strategy {
	return m.strategy
}

// MergeResults merges toConsider into toModify and returns toModify.
//
// toModify is indexed by identity name, then each toConsider record either
// passes through (no name match) or is merged: the matched record's
// attributes are copied with persons.CopyMutable, combined with the
// toConsider attributes via the strategy, and the resulting record replaces
// the original in the collection. Records are treated as immutable once
// constructed, hence remove-then-insert instead of in-place mutation.
//
// Unnamed records never match each other; they always pass through as
// distinct identities. toConsider is read-only and left untouched.
func (m *Merger) MergeResults(toModify, toConsider *persons.Persons) (*persons.Persons, error) {
	if toModify == nil {
		return nil, errors.NewValidationError("toModify", nil, "cannot be nil")
	}
	if toConsider == nil {
		return nil, errors.NewValidationError("toConsider", nil, "cannot be nil")
	}

	// Index the toModify records by name for lookups. Unnamed records are
	// never indexed, so they can never be merge targets. Last writer wins
	// on duplicate names, though callers should not produce those.
	index := make(map[string]persons.Person, toModify.Len())
	for _, person := range toModify.List() {
		if person.Named() {
			index[person.Name] = person
		}
	}

	for _, consider := range toConsider.List() {
		existing, ok := index[consider.Name]
		if consider.Name == "" || !ok {
			// No matching record, pass the new record through unchanged.
			toModify.Add(consider)
			continue
		}

		base := persons.CopyMutable(existing.Attributes)
		merged := m.strategy.MergeAttributes(base, consider.Attributes)
		mergedPerson := persons.NewNamedPerson(consider.Name, merged)

		// Remove then re-add so the merged record replaces the original.
		toModify.Remove(consider.Name)
		toModify.Add(mergedPerson)
	}

	logging.Debug().
		Str("strategy", m.strategy.Type().String()).
		Int("merged_len", toModify.Len()).
		Msg("Merged person record sets")

	return toModify, nil
}

// MergeAttributes combines two raw attribute maps for a single identity,
// bypassing the record wrapper. Unlike MergeResults, no defensive copy is
// made: toModify must already be safely mutable.
func (m *Merger) MergeAttributes(toModify, toConsider persons.Attributes) persons.Attributes {
	return m.strategy.MergeAttributes(toModify, toConsider)
}

// MergeAvailableQueryAttributes unions the attribute names two sources can
// be queried by, mutating and returning toModify.
func (m *Merger) MergeAvailableQueryAttributes(toModify, toConsider persons.NameSet) persons.NameSet {
	return toModify.Union(toConsider)
}

// MergePossibleUserAttributeNames unions the attribute names two sources
// can return, mutating and returning toModify.
func (m *Merger) MergePossibleUserAttributeNames(toModify, toConsider persons.NameSet) persons.NameSet {
	return toModify.Union(toConsider)
}
