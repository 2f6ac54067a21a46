// Package files provides a YAML-file-backed person-attribute source.
// Records are loaded into an in-memory directory at construction time;
// the files themselves are never written back.
//
// Document format:
//
//	people:
//	  - name: alice
//	    attributes:
//	      role: [admin]
//	      dept: [eng]
package files

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-yaml"

	"github.com/agentstation/persondir/pkg/directory/memory"
	"github.com/agentstation/persondir/pkg/errors"
	"github.com/agentstation/persondir/pkg/logging"
	"github.com/agentstation/persondir/pkg/persons"
)

// Directory is a read-only source backed by YAML files. Queries are served
// from the loaded in-memory directory.
type Directory struct {
	*memory.Directory
	path string
}

// Option is a function that configures a files Directory.
type Option func(*config) error

// WithName sets the source name used in logs and errors.
func WithName(name string) Option {
	return func(cfg *config) error {
		cfg.name = name
		return nil
	}
}

// WithCaseInsensitiveNames makes attribute-name matching case-insensitive.
func WithCaseInsensitiveNames() Option {
	return func(cfg *config) error {
		cfg.caseInsensitive = true
		return nil
	}
}

// config is the configuration for a files Directory.
type config struct {
	name            string
	caseInsensitive bool
}

// document is the YAML file layout.
type document struct {
	People []persons.Person `yaml:"people"`
}

// New creates a file-backed directory source. path is either a single YAML
// file or a directory whose *.yaml / *.yml files are all loaded.
func New(path string, opts ...Option) (*Directory, error) {
	if path == "" {
		return nil, errors.NewConfigError("files", "path is required", nil)
	}

	cfg := &config{
		name: "files:" + filepath.Base(path),
	}
	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, errors.NewConfigError("files", "applying option", err)
		}
	}

	people, err := load(path)
	if err != nil {
		return nil, err
	}

	memOpts := []memory.Option{
		memory.WithName(cfg.name),
		memory.WithPeople(people...),
	}
	if cfg.caseInsensitive {
		memOpts = append(memOpts, memory.WithCaseInsensitiveNames())
	}

	store, err := memory.New(memOpts...)
	if err != nil {
		return nil, err
	}

	logging.Debug().
		Str("path", path).
		Int("people", len(people)).
		Msg("Loaded file-backed directory source")

	return &Directory{Directory: store, path: path}, nil
}

// Path returns the file or directory the source was loaded from.
func (d *Directory) Path() string {
	return d.path
}

// load reads person records from a YAML file or directory of YAML files.
func load(path string) ([]persons.Person, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, errors.NewSourceError("files", "stat", err)
	}

	if !info.IsDir() {
		return loadFile(path)
	}

	entries, err := os.ReadDir(path)
	if err != nil {
		return nil, errors.NewSourceError("files", "read_dir", err)
	}

	var people []persons.Person
	for _, entry := range entries {
		if entry.IsDir() || !isYAML(entry.Name()) {
			continue
		}
		loaded, err := loadFile(filepath.Join(path, entry.Name()))
		if err != nil {
			return nil, err
		}
		people = append(people, loaded...)
	}
	return people, nil
}

// loadFile parses one YAML document of person records.
func loadFile(path string) ([]persons.Person, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.NewSourceError("files", "read_file", err)
	}

	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, &errors.ParseError{Format: "yaml", File: path, Err: err}
	}
	return doc.People, nil
}

// isYAML reports whether a filename has a YAML extension.
func isYAML(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	return ext == ".yaml" || ext == ".yml"
}
