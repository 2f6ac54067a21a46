package merger

import (
	"strings"

	"github.com/agentstation/persondir/pkg/persons"
)

// StrategyType represents the type of attribute merge strategy.
type StrategyType string

// String returns the string representation of a strategy type.
func (s StrategyType) String() string {
	return string(s)
}

// Name returns a human-readable name for the strategy type.
func (s StrategyType) Name() string {
	words := strings.Split(s.String(), "-")
	for i, word := range words {
		if len(word) > 0 {
			words[i] = strings.ToUpper(word[:1]) + word[1:]
		}
	}
	return strings.Join(words, " ")
}

const (
	// StrategyTypeMultivalued concatenates value lists for colliding attributes.
	StrategyTypeMultivalued StrategyType = "multivalued-append"
	// StrategyTypeNoncolliding only adds attributes the base map lacks.
	StrategyTypeNoncolliding StrategyType = "noncolliding-add"
	// StrategyTypeReplacing overwrites colliding attributes with the newer values.
	StrategyTypeReplacing StrategyType = "replacing-overwrite"
)

// Strategy defines how two attribute maps for the same identity combine.
// It is the single required extension point of the merge engine.
//
// MergeAttributes may mutate and return toModify, or return a fresh map.
// The engine guarantees toModify is an independent mutable copy before the
// call. Implementations must never mutate toConsider or adopt its value
// slices by reference.
type Strategy interface {
	// Type returns the strategy type
	Type() StrategyType

	// Description returns a human-readable description
	Description() string

	// MergeAttributes combines toConsider into toModify and returns the result
	MergeAttributes(toModify, toConsider persons.Attributes) persons.Attributes
}

// baseStrategy provides common strategy functionality.
type baseStrategy struct {
	typ         StrategyType
	description string
}

// Type returns the strategy type.
func (s *baseStrategy) Type() StrategyType {
	return s.typ
}

// Description returns a human-readable description.
func (s *baseStrategy) Description() string {
	return s.description
}

// copyValues returns an independent copy of a value slice so merged maps
// never alias the toConsider side. Nil stays nil.
func copyValues(values []any) []any {
	if values == nil {
		return nil
	}
	copied := make([]any, len(values))
	copy(copied, values)
	return copied
}

// MultivaluedStrategy keeps every value from both sides: attributes unique
// to either map pass through, colliding attributes get the base values
// followed by the newer values.
type MultivaluedStrategy struct {
	baseStrategy
}

// NewMultivalued creates a strategy that appends colliding value lists.
func NewMultivalued() Strategy {
	return &MultivaluedStrategy{
		baseStrategy: baseStrategy{
			typ:         StrategyTypeMultivalued,
			description: "Concatenates value lists when both sources define an attribute",
		},
	}
}

// MergeAttributes combines toConsider into toModify and returns toModify.
func (s *MultivaluedStrategy) MergeAttributes(toModify, toConsider persons.Attributes) persons.Attributes {
	for name, values := range toConsider {
		existing, ok := toModify[name]
		if !ok {
			toModify[name] = copyValues(values)
			continue
		}
		toModify[name] = append(existing, values...)
	}
	return toModify
}

// NoncollidingStrategy only adds attributes missing from the base map, so
// the first source to supply an attribute wins.
type NoncollidingStrategy struct {
	baseStrategy
}

// NewNoncolliding creates a strategy where the base map's attributes win.
func NewNoncolliding() Strategy {
	return &NoncollidingStrategy{
		baseStrategy: baseStrategy{
			typ:         StrategyTypeNoncolliding,
			description: "Adds only attributes the base map does not already define",
		},
	}
}

// MergeAttributes combines toConsider into toModify and returns toModify.
func (s *NoncollidingStrategy) MergeAttributes(toModify, toConsider persons.Attributes) persons.Attributes {
	for name, values := range toConsider {
		if _, ok := toModify[name]; ok {
			continue
		}
		toModify[name] = copyValues(values)
	}
	return toModify
}

// ReplacingStrategy overwrites colliding attributes, so the newest source
// to supply an attribute wins.
type ReplacingStrategy struct {
	baseStrategy
}

// NewReplacing creates a strategy where the newer map's attributes win.
func NewReplacing() Strategy {
	return &ReplacingStrategy{
		baseStrategy: baseStrategy{
			typ:         StrategyTypeReplacing,
			description: "Overwrites colliding attributes with the newer values",
		},
	}
}

// MergeAttributes combines toConsider into toModify and returns toModify.
func (s *ReplacingStrategy) MergeAttributes(toModify, toConsider persons.Attributes) persons.Attributes {
	for name, values := range toConsider {
		toModify[name] = copyValues(values)
	}
	return toModify
}
