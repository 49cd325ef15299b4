package books

import (
	"sort"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// synonyms are names added by the registry next to a name any system already
// provides. They map to the same BookID as their source.
var synonyms = map[string][]string{
	"Psalms":                  {"Psalm"},
	"Salmos":                  {"Salmo"},
	"Ps":                      {"Pss"},
	"Sirach (Ecclesiasticus)": {"Sirach", "Ecclesiasticus"},
}

// Registry unifies several naming systems into one ordered book list and one
// name lookup table. Both views are computed at construction; a Registry is
// read-only afterwards and safe for concurrent use.
type Registry struct {
	systems []*System
	list    []string
	numbers map[string]BookID
}

// NewRegistry builds a registry from systems. Order matters: the first system
// supplies display names and wins exact-string collisions.
func NewRegistry(systems ...*System) *Registry {
	r := &Registry{
		systems: append([]*System(nil), systems...),
		numbers: make(map[string]BookID),
	}

	type pair struct {
		id   BookID
		name string
	}
	var pairs []pair
	for _, s := range r.systems {
		for _, e := range s.Entries() {
			pairs = append(pairs, pair{id: e.ID, name: e.Name})
		}
	}
	sort.SliceStable(pairs, func(i, j int) bool {
		if c := pairs[i].id.Compare(pairs[j].id); c != 0 {
			return c < 0
		}
		return pairs[i].name < pairs[j].name
	})

	// Casers carry state and cannot be shared between goroutines.
	upper := cases.Upper(language.Und)
	lower := cases.Lower(language.Und)
	seen := make(map[string]bool, len(pairs))
	add := func(id BookID, name string) {
		if seen[name] {
			return
		}
		seen[name] = true
		r.list = append(r.list, name)
		r.index(name, id, upper, lower)
	}
	for _, p := range pairs {
		add(p.id, p.name)
		for _, syn := range synonyms[p.name] {
			add(p.id, syn)
		}
	}
	return r
}

// index records name and its upper and lower case forms; the first write of
// any form wins.
func (r *Registry) index(name string, id BookID, upper, lower cases.Caser) {
	for _, form := range []string{name, upper.String(name), lower.String(name)} {
		if _, ok := r.numbers[form]; !ok {
			r.numbers[form] = id
		}
	}
}

// DefaultRegistry builds the registry used when the caller configures none:
// full names and Bible team abbreviations, each with a space, a non-breaking
// space and the placeholder separator.
func DefaultRegistry() *Registry {
	reg, err := NewCatalog().Registry(DefaultSystemRefs())
	if err != nil {
		// Built-in definitions are fixed; failing here is a programming error.
		panic(err)
	}
	return reg
}

// Systems returns the registered systems in registration order.
func (r *Registry) Systems() []*System {
	return append([]*System(nil), r.systems...)
}

// Primary returns the first registered system, or nil for an empty registry.
func (r *Registry) Primary() *System {
	if len(r.systems) == 0 {
		return nil
	}
	return r.systems[0]
}

// BookList returns every distinct name in ascending BookID order.
func (r *Registry) BookList() []string {
	return append([]string(nil), r.list...)
}

// Len returns the number of distinct names in BookList.
func (r *Registry) Len() int {
	return len(r.list)
}

// Lookup returns the BookID of a name in its original, upper or lower case
// form.
func (r *Registry) Lookup(name string) (BookID, bool) {
	id, ok := r.numbers[name]
	return id, ok
}

// BookNumber is Lookup returning an *UnknownBookNameError for misses.
func (r *Registry) BookNumber(name string) (BookID, error) {
	id, ok := r.numbers[name]
	if !ok {
		return BookID{}, &UnknownBookNameError{Name: name}
	}
	return id, nil
}

// DisplayName returns the name the first registered system that knows id
// gives it.
func (r *Registry) DisplayName(id BookID) (string, bool) {
	for _, s := range r.systems {
		if name, ok := s.Name(id); ok {
			return name, true
		}
	}
	return "", false
}
