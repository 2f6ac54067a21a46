// Package persondir resolves and combines per-user attribute records from
// multiple independent sources (directories, databases, flat files) into a
// single consistent view.
//
// The heart of the system is the additive merge engine in pkg/merger: it
// combines record sets keyed by identity name and delegates per-identity
// attribute combination to a pluggable strategy. This package wires that
// engine, the lookup layer, and the configured sources into one client.
//
// Example usage:
//
//	hr, _ := files.New("./testdata/hr")
//	ldap, _ := memory.New(memory.WithPeople(people...))
//
//	pd, err := persondir.New(
//	    persondir.WithSource(hr),
//	    persondir.WithSource(ldap),
//	    persondir.WithStrategy(merger.NewNoncolliding()),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	person, err := pd.Person(ctx, "alice")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(person.Value("dept"))
package persondir

import (
	"github.com/agentstation/persondir/pkg/directory"
	"github.com/agentstation/persondir/pkg/errors"
)

// Client is the top-level lookup surface over all configured sources.
type Client interface {
	directory.Directory
	directory.Describer
}

// Compile-time interface check to ensure proper implementation.
var _ Client = (*client)(nil)

// client wires the configured sources into a merging directory.
type client struct {
	*directory.Merging
}

// New creates a persondir client from the given options. At least one
// source is required.
func New(opts ...Option) (Client, error) {
	cfg := &config{}
	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}

	if len(cfg.sources) == 0 {
		return nil, errors.NewConfigError("persondir", "at least one source is required", nil)
	}

	var mergingOpts []directory.MergingOption
	if cfg.strategy != nil {
		mergingOpts = append(mergingOpts, directory.WithStrategy(cfg.strategy))
	}
	if cfg.failFast {
		mergingOpts = append(mergingOpts, directory.WithFailFast())
	}
	if cfg.usernameAttribute != "" {
		mergingOpts = append(mergingOpts,
			directory.WithResolverOptions(directory.WithUsernameAttribute(cfg.usernameAttribute)))
	}

	return &client{
		Merging: directory.NewMerging(cfg.sources, mergingOpts...),
	}, nil
}
