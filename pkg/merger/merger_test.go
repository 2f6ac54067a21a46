package merger

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/agentstation/persondir/pkg/errors"
	"github.com/agentstation/persondir/pkg/persons"
)

func TestMergeResultsNilInputs(t *testing.T) {
	m := New()
	set := persons.NewPersons()

	if _, err := m.MergeResults(nil, set); !errors.IsValidationError(err) {
		t.Errorf("Expected validation error for nil toModify, got %v", err)
	}
	if _, err := m.MergeResults(set, nil); !errors.IsValidationError(err) {
		t.Errorf("Expected validation error for nil toConsider, got %v", err)
	}
}

func TestMergeResultsDisjointSets(t *testing.T) {
	m := New()
	toModify := persons.NewPersons(
		persons.NewNamedPerson("alice", persons.Attributes{"dept": {"eng"}}),
	)
	toConsider := persons.NewPersons(
		persons.NewNamedPerson("bob", persons.Attributes{"dept": {"ops"}}),
	)

	result, err := m.MergeResults(toModify, toConsider)
	if err != nil {
		t.Fatal(err)
	}

	// Same container identity as toModify.
	if result != toModify {
		t.Error("Expected the toModify container to be returned")
	}
	if result.Len() != 2 {
		t.Fatalf("Expected 2 records, got %d", result.Len())
	}

	// Disjoint names pass through with no attribute combination.
	alice, _ := result.Get("alice")
	bob, _ := result.Get("bob")
	if diff := cmp.Diff(persons.Attributes{"dept": {"eng"}}, alice.Attributes); diff != "" {
		t.Errorf("alice changed (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(persons.Attributes{"dept": {"ops"}}, bob.Attributes); diff != "" {
		t.Errorf("bob changed (-want +got):\n%s", diff)
	}
}

func TestMergeResultsOverlap(t *testing.T) {
	// Scenario: A = {bob: dept=[eng]},
	// B = {bob: title=[dev], carol: dept=[sales]}, union strategy.
	m := New()
	toModify := persons.NewPersons(
		persons.NewNamedPerson("bob", persons.Attributes{"dept": {"eng"}}),
	)
	toConsider := persons.NewPersons(
		persons.NewNamedPerson("bob", persons.Attributes{"title": {"dev"}}),
		persons.NewNamedPerson("carol", persons.Attributes{"dept": {"sales"}}),
	)

	result, err := m.MergeResults(toModify, toConsider)
	if err != nil {
		t.Fatal(err)
	}

	if result.Len() != 2 {
		t.Fatalf("Expected 2 records, got %d", result.Len())
	}

	bob, ok := result.Get("bob")
	if !ok {
		t.Fatal("Expected exactly one bob record")
	}
	want := persons.Attributes{"dept": {"eng"}, "title": {"dev"}}
	if diff := cmp.Diff(want, bob.Attributes); diff != "" {
		t.Errorf("bob attributes mismatch (-want +got):\n%s", diff)
	}

	carol, ok := result.Get("carol")
	if !ok {
		t.Fatal("Expected carol to pass through")
	}
	if diff := cmp.Diff(persons.Attributes{"dept": {"sales"}}, carol.Attributes); diff != "" {
		t.Errorf("carol attributes mismatch (-want +got):\n%s", diff)
	}
}

func TestMergeResultsDoesNotTouchOriginals(t *testing.T) {
	m := New()
	original := persons.Attributes{"dept": {"eng"}}
	toModify := persons.NewPersons(persons.NewNamedPerson("bob", original))
	considerAttrs := persons.Attributes{"dept": {"ops"}}
	toConsider := persons.NewPersons(persons.NewNamedPerson("bob", considerAttrs))

	if _, err := m.MergeResults(toModify, toConsider); err != nil {
		t.Fatal(err)
	}

	// The matched record's map was copied before the strategy ran.
	if diff := cmp.Diff(persons.Attributes{"dept": {"eng"}}, original); diff != "" {
		t.Errorf("Original toModify attributes mutated (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(persons.Attributes{"dept": {"ops"}}, considerAttrs); diff != "" {
		t.Errorf("toConsider attributes mutated (-want +got):\n%s", diff)
	}
	if toConsider.Len() != 1 {
		t.Error("toConsider collection changed")
	}
}

func TestMergeResultsUnnamedRecordsStayDistinct(t *testing.T) {
	m := New()
	toModify := persons.NewPersons(
		persons.NewPerson(persons.Attributes{"dept": {"eng"}}),
	)
	toConsider := persons.NewPersons(
		persons.NewPerson(persons.Attributes{"dept": {"ops"}}),
	)

	result, err := m.MergeResults(toModify, toConsider)
	if err != nil {
		t.Fatal(err)
	}

	// Two unnamed records never merge with each other.
	if result.Len() != 2 {
		t.Errorf("Expected 2 distinct records, got %d", result.Len())
	}
}

func TestMergeResultsStrategyChoice(t *testing.T) {
	m := New(WithStrategy(NewNoncolliding()))
	toModify := persons.NewPersons(
		persons.NewNamedPerson("bob", persons.Attributes{"dept": {"eng"}}),
	)
	toConsider := persons.NewPersons(
		persons.NewNamedPerson("bob", persons.Attributes{"dept": {"ops"}, "title": {"dev"}}),
	)

	result, err := m.MergeResults(toModify, toConsider)
	if err != nil {
		t.Fatal(err)
	}

	bob, _ := result.Get("bob")
	want := persons.Attributes{"dept": {"eng"}, "title": {"dev"}}
	if diff := cmp.Diff(want, bob.Attributes); diff != "" {
		t.Errorf("bob attributes mismatch (-want +got):\n%s", diff)
	}
}

func TestMergeAttributesDelegates(t *testing.T) {
	m := New()
	got := m.MergeAttributes(
		persons.Attributes{"dept": {"eng"}},
		persons.Attributes{"dept": {"ops"}},
	)

	want := persons.Attributes{"dept": {"eng", "ops"}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Merged attributes mismatch (-want +got):\n%s", diff)
	}
}

func TestQueryShapeMergers(t *testing.T) {
	m := New()

	t.Run("result is a superset of both inputs", func(t *testing.T) {
		s1 := persons.NewNameSet("dept", "title")
		s2 := persons.NewNameSet("title", "phone")

		result := m.MergeAvailableQueryAttributes(s1, s2)
		for _, name := range []string{"dept", "title", "phone"} {
			if !result.Contains(name) {
				t.Errorf("Expected result to contain %q", name)
			}
		}
	})

	t.Run("commutative on content", func(t *testing.T) {
		a := m.MergePossibleUserAttributeNames(
			persons.NewNameSet("dept"), persons.NewNameSet("phone"))
		b := m.MergePossibleUserAttributeNames(
			persons.NewNameSet("phone"), persons.NewNameSet("dept"))

		if diff := cmp.Diff(a.List(), b.List()); diff != "" {
			t.Errorf("Union not commutative on content (-a +b):\n%s", diff)
		}
	})

	t.Run("mutates and returns toModify", func(t *testing.T) {
		toModify := persons.NewNameSet("dept")
		result := m.MergeAvailableQueryAttributes(toModify, persons.NewNameSet("phone"))

		if len(toModify) != 2 {
			t.Error("Expected toModify to be mutated")
		}
		if !result.Contains("dept") || !result.Contains("phone") {
			t.Error("Result missing names")
		}
	})
}

func TestDefaultStrategy(t *testing.T) {
	m := New()
	if m.Strategy().Type() != StrategyTypeMultivalued {
		t.Errorf("Expected default strategy %q, got %q",
			StrategyTypeMultivalued, m.Strategy().Type())
	}
}
