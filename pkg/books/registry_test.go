package books

import (
	"errors"
	"testing"
)

func TestDefaultRegistryBookList(t *testing.T) {
	reg := DefaultRegistry()
	list := reg.BookList()

	total := 0
	for _, s := range reg.Systems() {
		total += s.Len()
	}
	if len(list) > total {
		t.Errorf("len(BookList()) = %d, want <= %d", len(list), total)
	}
	if len(reg.Systems()) != 6 {
		t.Errorf("Systems() = %d, want 6", len(reg.Systems()))
	}

	seen := make(map[string]bool)
	var prev BookID
	for i, name := range list {
		if seen[name] {
			t.Errorf("BookList() duplicate %q", name)
		}
		seen[name] = true

		id, err := reg.BookNumber(name)
		if err != nil {
			t.Fatalf("BookNumber(%q) error = %v", name, err)
		}
		if i > 0 && id.Less(prev) {
			t.Errorf("BookList() out of order at %q: %v after %v", name, id, prev)
		}
		prev = id
	}

	// Names of one book keep string order, whatever system supplied them.
	index := make(map[string]int, len(list))
	for i, name := range list {
		index[name] = i
	}
	if index["Gen"] > index["Genesis"] {
		t.Errorf("BookList() has Genesis at %d before Gen at %d", index["Genesis"], index["Gen"])
	}

	for _, name := range []string{"Genesis", "Gen", "1 Samuel", "1\u00a0Samuel", "1<nbs/>Samuel", "Psalms", "Psalm", "Ps", "Pss", "Revelation", "Rev"} {
		if !seen[name] {
			t.Errorf("BookList() missing %q", name)
		}
	}
}

func TestRegistryLeftInverse(t *testing.T) {
	catalog := NewCatalog()
	var refs []SystemRef
	for _, id := range []string{FullName, TeamAbbr, SpanishFullName, SBLAbbrDeuterocanon, FullNameDeuterocanon} {
		for _, sep := range []string{"space", "nbsp", "placeholder"} {
			refs = append(refs, SystemRef{System: id, Separator: sep})
		}
	}
	reg, err := catalog.Registry(refs)
	if err != nil {
		t.Fatalf("Registry() error = %v", err)
	}

	isSynonym := make(map[string]bool)
	for _, names := range synonyms {
		for _, name := range names {
			isSynonym[name] = true
		}
	}

	for _, name := range reg.BookList() {
		id, err := reg.BookNumber(name)
		if err != nil {
			t.Errorf("BookNumber(%q) error = %v", name, err)
			continue
		}
		found := false
		for _, s := range reg.Systems() {
			if got, ok := s.Name(id); ok && got == name {
				found = true
				break
			}
		}
		if !found && !isSynonym[name] {
			t.Errorf("BookNumber(%q) = %v, which no system names %q", name, id, name)
		}
	}
}

func TestRegistryCaseVariants(t *testing.T) {
	reg := NewRegistry(mustSystem(t, SpanishFullName, SeparatorSpace), mustSystem(t, FullName, SeparatorSpace))

	tests := []struct {
		name string
		want BookID
	}{
		{"Genesis", Book(1)},
		{"GENESIS", Book(1)},
		{"genesis", Book(1)},
		{"\u00c9xodo", Book(2)},
		{"\u00c9XODO", Book(2)},
		{"\u00e9xodo", Book(2)},
		{"Salmo", Book(19)},
		{"SALMO", Book(19)},
		{"psalm", Book(19)},
	}

	for _, tt := range tests {
		got, err := reg.BookNumber(tt.name)
		if err != nil {
			t.Errorf("BookNumber(%q) error = %v", tt.name, err)
			continue
		}
		if got != tt.want {
			t.Errorf("BookNumber(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}

	// Mixed case forms other than the three indexed ones are misses.
	if _, ok := reg.Lookup("gEnEsIs"); ok {
		t.Error("Lookup(gEnEsIs) should miss")
	}
}

func TestRegistryUnknownBook(t *testing.T) {
	reg := DefaultRegistry()

	_, err := reg.BookNumber("Hezekiah")
	if err == nil {
		t.Fatal("BookNumber(Hezekiah) should return error")
	}
	var unknown *UnknownBookNameError
	if !errors.As(err, &unknown) {
		t.Fatalf("BookNumber() error = %T, want *UnknownBookNameError", err)
	}
	if unknown.Name != "Hezekiah" {
		t.Errorf("Name = %q, want Hezekiah", unknown.Name)
	}
}

func TestRegistryFirstRegisteredWins(t *testing.T) {
	first, err := NewBuilder("first").Base(Table{Book(1): "Gen", Book(2): "Ex"}).Build()
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	second, err := NewBuilder("second").Base(Table{Book(1): "Genesis", Book(2): "Gen"}).Build()
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	reg := NewRegistry(first, second)
	if got, _ := reg.Lookup("Gen"); got != Book(1) {
		t.Errorf("Lookup(Gen) = %v, want 1", got)
	}
	if got, _ := reg.DisplayName(Book(2)); got != "Ex" {
		t.Errorf("DisplayName(2) = %q, want Ex", got)
	}
	if reg.Len() != 3 {
		t.Errorf("Len() = %d, want 3", reg.Len())
	}
	if _, ok := reg.DisplayName(Book(3)); ok {
		t.Error("DisplayName(3) should miss")
	}
}

func TestRegistrySynonymsFollowSource(t *testing.T) {
	reg := NewRegistry(mustSystem(t, FullNameDeuterocanon, SeparatorSpace))
	list := reg.BookList()

	index := make(map[string]int)
	for i, name := range list {
		index[name] = i
	}
	if index["Psalm"] != index["Psalms"]+1 {
		t.Errorf("Psalm at %d, want right after Psalms at %d", index["Psalm"], index["Psalms"])
	}
	for _, name := range []string{"Sirach", "Ecclesiasticus"} {
		id, err := reg.BookNumber(name)
		if err != nil || id != Inserted(22, 2) {
			t.Errorf("BookNumber(%q) = %v, %v, want 22.2", name, id, err)
		}
	}

	// Synonyms only appear when their source does.
	plain := NewRegistry(mustSystem(t, SpanishFullName, SeparatorSpace))
	if _, ok := plain.Lookup("Psalm"); ok {
		t.Error("Lookup(Psalm) should miss without Psalms")
	}
}

func TestEmptyRegistry(t *testing.T) {
	reg := NewRegistry()
	if reg.Primary() != nil {
		t.Error("Primary() should be nil")
	}
	if reg.Len() != 0 {
		t.Errorf("Len() = %d, want 0", reg.Len())
	}
}

func mustSystem(t *testing.T, id string, sep Separator) *System {
	t.Helper()
	system, err := NewCatalog().System(id, sep)
	if err != nil {
		t.Fatalf("System(%q) error = %v", id, err)
	}
	return system
}
