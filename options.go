package persondir

import (
	"github.com/agentstation/persondir/pkg/directory"
	"github.com/agentstation/persondir/pkg/errors"
	"github.com/agentstation/persondir/pkg/merger"
)

// Option is a function that configures a persondir client.
type Option func(*config) error

// config holds the client configuration assembled from options.
type config struct {
	sources           []directory.Searcher
	strategy          merger.Strategy
	usernameAttribute string
	failFast          bool
}

// WithSource appends a backing source. Source order matters: earlier
// sources form the base that later ones merge into.
func WithSource(source directory.Searcher) Option {
	return func(c *config) error {
		if source == nil {
			return errors.NewConfigError("persondir", "source cannot be nil", nil)
		}
		c.sources = append(c.sources, source)
		return nil
	}
}

// WithSources appends several backing sources in order.
func WithSources(sources ...directory.Searcher) Option {
	return func(c *config) error {
		for _, source := range sources {
			if source == nil {
				return errors.NewConfigError("persondir", "source cannot be nil", nil)
			}
			c.sources = append(c.sources, source)
		}
		return nil
	}
}

// WithStrategy sets the attribute merge strategy for records that appear
// in more than one source. The default keeps every value from every source.
func WithStrategy(s merger.Strategy) Option {
	return func(c *config) error {
		c.strategy = s
		return nil
	}
}

// WithUsernameAttribute sets the seed attribute name used by Person
// lookups. Defaults to "username".
func WithUsernameAttribute(attribute string) Option {
	return func(c *config) error {
		c.usernameAttribute = attribute
		return nil
	}
}

// WithFailFast aborts a query on the first failing source instead of
// logging and skipping it.
func WithFailFast(enabled bool) Option {
	return func(c *config) error {
		c.failFast = enabled
		return nil
	}
}
