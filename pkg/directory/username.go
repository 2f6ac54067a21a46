package directory

import (
	"github.com/agentstation/persondir/pkg/constants"
	"github.com/agentstation/persondir/pkg/persons"
)

// UsernameProvider supplies the attribute name a bare identifier is
// queried by when building a seed for a single-identity lookup.
type UsernameProvider interface {
	// UsernameAttribute returns the seed attribute name
	UsernameAttribute() string
}

// SimpleUsernameProvider is a fixed-attribute UsernameProvider.
type SimpleUsernameProvider struct {
	attribute string
}

// NewUsernameProvider creates a provider for the given attribute name,
// falling back to the default ("username") when empty.
func NewUsernameProvider(attribute string) *SimpleUsernameProvider {
	if attribute == "" {
		attribute = constants.DefaultUsernameAttribute
	}
	return &SimpleUsernameProvider{attribute: attribute}
}

// UsernameAttribute returns the seed attribute name.
func (p *SimpleUsernameProvider) UsernameAttribute() string {
	return p.attribute
}

// Seed builds the one-entry seed map for an identifier.
func Seed(provider UsernameProvider, uid string) persons.Attributes {
	seed := persons.NewAttributes(1)
	seed[provider.UsernameAttribute()] = []any{uid}
	return seed
}
