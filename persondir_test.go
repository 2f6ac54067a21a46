package persondir

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/persondir/pkg/directory/memory"
	"github.com/agentstation/persondir/pkg/errors"
	"github.com/agentstation/persondir/pkg/merger"
	"github.com/agentstation/persondir/pkg/persons"
)

func newSource(t *testing.T, name string, people ...persons.Person) *memory.Directory {
	t.Helper()
	d, err := memory.New(memory.WithName(name), memory.WithPeople(people...))
	require.NoError(t, err)
	return d
}

func TestNewRequiresSources(t *testing.T) {
	_, err := New()
	require.Error(t, err)

	_, err = New(WithSource(nil))
	require.Error(t, err)
}

func TestPersonAcrossSources(t *testing.T) {
	hr := newSource(t, "hr",
		persons.NewNamedPerson("alice", persons.Attributes{
			"username": {"alice"},
			"dept":     {"eng"},
		}))
	ldap := newSource(t, "ldap",
		persons.NewNamedPerson("alice", persons.Attributes{
			"username": {"alice"},
			"title":    {"dev"},
		}))

	pd, err := New(WithSources(hr, ldap))
	require.NoError(t, err)

	person, err := pd.Person(context.Background(), "alice")
	require.NoError(t, err)
	require.NotNil(t, person)
	assert.Equal(t, "alice", person.Name)
	assert.Equal(t, persons.Attributes{
		"username": {"alice", "alice"},
		"dept":     {"eng"},
		"title":    {"dev"},
	}, person.Attributes)
}

func TestPersonWithFirstWinsStrategy(t *testing.T) {
	hr := newSource(t, "hr",
		persons.NewNamedPerson("alice", persons.Attributes{
			"username": {"alice"},
			"dept":     {"eng"},
		}))
	ldap := newSource(t, "ldap",
		persons.NewNamedPerson("alice", persons.Attributes{
			"username": {"alice"},
			"dept":     {"ops"},
		}))

	pd, err := New(
		WithSources(hr, ldap),
		WithStrategy(merger.NewNoncolliding()),
	)
	require.NoError(t, err)

	person, err := pd.Person(context.Background(), "alice")
	require.NoError(t, err)
	require.NotNil(t, person)
	assert.Equal(t, []any{"eng"}, person.Values("dept"))
}

func TestPersonMissing(t *testing.T) {
	pd, err := New(WithSource(newSource(t, "empty")))
	require.NoError(t, err)

	person, err := pd.Person(context.Background(), "nobody")
	require.NoError(t, err)
	assert.Nil(t, person)
}

func TestCustomUsernameAttribute(t *testing.T) {
	src := newSource(t, "mail-db",
		persons.NewNamedPerson("alice", persons.Attributes{
			"mail": {"alice@example.org"},
			"dept": {"eng"},
		}))

	pd, err := New(WithSource(src), WithUsernameAttribute("mail"))
	require.NoError(t, err)

	person, err := pd.Person(context.Background(), "alice@example.org")
	require.NoError(t, err)
	require.NotNil(t, person)
	assert.Equal(t, "alice", person.Name)
}

func TestDuplicateIdentifierFails(t *testing.T) {
	src := newSource(t, "dirty",
		persons.NewNamedPerson("alice", persons.Attributes{"username": {"alice"}}),
		persons.NewNamedPerson("alice2", persons.Attributes{"username": {"alice"}}),
	)

	pd, err := New(WithSource(src))
	require.NoError(t, err)

	_, err = pd.Person(context.Background(), "alice")
	require.Error(t, err)
	assert.True(t, errors.IsIncorrectResultSize(err))
}

func TestQueryShapeAcrossSources(t *testing.T) {
	hr := newSource(t, "hr",
		persons.NewNamedPerson("alice", persons.Attributes{
			"username": {"alice"},
			"dept":     {"eng"},
		}))
	phones := newSource(t, "phones",
		persons.NewNamedPerson("alice", persons.Attributes{
			"username": {"alice"},
			"phone":    {"x100"},
		}))

	pd, err := New(WithSources(hr, phones))
	require.NoError(t, err)

	want := []string{"dept", "phone", "username"}
	assert.Equal(t, want, pd.PossibleUserAttributeNames().List())
	assert.Equal(t, want, pd.AvailableQueryAttributes().List())
}
