package persons

// Persons is an insertion-ordered collection of person records. It is the
// unit the merge engine consumes and produces: after an additive merge it
// holds at most one record per non-empty identity name, while unnamed raw
// records may coexist.
//
// Persons is not synchronized. The merge engine mutates the collection it
// is handed, so callers must not share one collection across concurrent
// merges; distinct collections are independent.
type Persons struct {
	list []Person
}

// NewPersons creates a collection seeded with the given records.
func NewPersons(people ...Person) *Persons {
	p := &Persons{}
	p.list = append(p.list, people...)
	return p
}

// Add appends a record to the collection.
func (p *Persons) Add(person Person) {
	p.list = append(p.list, person)
}

// Get returns the first record with the given non-empty identity name.
func (p *Persons) Get(name string) (Person, bool) {
	if name == "" {
		return Person{}, false
	}
	for _, person := range p.list {
		if person.Name == name {
			return person, true
		}
	}
	return Person{}, false
}

// Remove deletes the first record with the given non-empty identity name,
// reporting whether a record was removed.
func (p *Persons) Remove(name string) bool {
	if name == "" {
		return false
	}
	for i, person := range p.list {
		if person.Name == name {
			p.list = append(p.list[:i], p.list[i+1:]...)
			return true
		}
	}
	return false
}

// Len returns the number of records in the collection.
func (p *Persons) Len() int {
	return len(p.list)
}

// List returns the records in insertion order. The slice is a copy; the
// Person values inside still share their attribute maps with the
// collection.
func (p *Persons) List() []Person {
	out := make([]Person, len(p.list))
	copy(out, p.list)
	return out
}

// Names returns the identity names present in the collection, in insertion
// order, skipping unnamed records.
func (p *Persons) Names() []string {
	names := make([]string, 0, len(p.list))
	for _, person := range p.list {
		if person.Named() {
			names = append(names, person.Name)
		}
	}
	return names
}
