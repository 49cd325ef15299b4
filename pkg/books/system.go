package books

import (
	"fmt"
	"sort"
	"strings"
)

// Blank is the marker placed between a leading book number and the book name
// in every name table ("1 Samuel"). A System replaces it with its own
// separator when it is built.
const Blank = "\u00a0"

// Separator is the text placed between a leading number and a book name.
type Separator string

const (
	SeparatorSpace       Separator = " "
	SeparatorNonBreaking Separator = Blank
	SeparatorPlaceholder Separator = "<nbs/>"
)

// ParseSeparator maps a configuration keyword to a Separator.
func ParseSeparator(s string) (Separator, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "space":
		return SeparatorSpace, nil
	case "nbsp", "non-breaking", "nonbreaking":
		return SeparatorNonBreaking, nil
	case "placeholder", "nbs":
		return SeparatorPlaceholder, nil
	}
	return "", fmt.Errorf("unknown separator %q (want space, nbsp or placeholder)", s)
}

// Keyword returns the configuration keyword for sep.
func (sep Separator) Keyword() string {
	switch sep {
	case SeparatorNonBreaking:
		return "nbsp"
	case SeparatorPlaceholder:
		return "placeholder"
	default:
		return "space"
	}
}

// Table maps canonical positions to display names.
type Table map[BookID]string

// Entry is one book of a System.
type Entry struct {
	ID   BookID `json:"id"`
	Name string `json:"name"`
}

// System is one naming convention with one separator variant. It is
// immutable once built and safe for concurrent use.
type System struct {
	id        string
	language  string
	separator Separator
	names     map[BookID]string
	order     []BookID
}

// ID returns the identifier of the definition the system was built from.
func (s *System) ID() string { return s.id }

// Language returns the BCP 47 tag of the system's names.
func (s *System) Language() string { return s.language }

// Separator returns the separator used between book numbers and names.
func (s *System) Separator() Separator { return s.separator }

// Len returns the number of books the system names.
func (s *System) Len() int { return len(s.order) }

// Name returns the display name of a book.
func (s *System) Name(id BookID) (string, bool) {
	name, ok := s.names[id]
	return name, ok
}

// Books returns the book positions in canonical order.
func (s *System) Books() []BookID {
	out := make([]BookID, len(s.order))
	copy(out, s.order)
	return out
}

// BookList returns the display names in canonical order.
func (s *System) BookList() []string {
	out := make([]string, len(s.order))
	for i, id := range s.order {
		out[i] = s.names[id]
	}
	return out
}

// Entries returns the (position, name) pairs in canonical order.
func (s *System) Entries() []Entry {
	out := make([]Entry, len(s.order))
	for i, id := range s.order {
		out[i] = Entry{ID: id, Name: s.names[id]}
	}
	return out
}

func (s *System) String() string {
	return fmt.Sprintf("%s(%s)", s.id, s.separator.Keyword())
}

type stepKind int

const (
	stepOverride stepKind = iota
	stepStripPeriods
)

type step struct {
	kind    stepKind
	changes Table
}

// Builder assembles a System from a base table and an ordered list of steps.
// Steps run in the order they were added, after the base is fully in place;
// the separator substitution always runs last.
type Builder struct {
	id        string
	language  string
	separator Separator
	base      Table
	steps     []step
}

// NewBuilder starts a system with the given identifier, English names and a
// plain space separator.
func NewBuilder(id string) *Builder {
	return &Builder{id: id, language: "en", separator: SeparatorSpace}
}

// Language sets the language tag.
func (b *Builder) Language(tag string) *Builder {
	b.language = tag
	return b
}

// Separator sets the separator that replaces Blank in every name.
func (b *Builder) Separator(sep Separator) *Builder {
	b.separator = sep
	return b
}

// Base sets the table the steps are applied to.
func (b *Builder) Base(table Table) *Builder {
	b.base = table
	return b
}

// Override adds a step replacing or adding the given names. Later overrides
// win; positions not mentioned fall through to earlier steps.
func (b *Builder) Override(changes Table) *Builder {
	b.steps = append(b.steps, step{kind: stepOverride, changes: changes})
	return b
}

// StripPeriods adds a step removing every period from the names present at
// that point of the chain.
func (b *Builder) StripPeriods() *Builder {
	b.steps = append(b.steps, step{kind: stepStripPeriods})
	return b
}

// Build runs the steps and returns the immutable System.
func (b *Builder) Build() (*System, error) {
	if b.id == "" {
		return nil, fmt.Errorf("naming system id cannot be empty")
	}
	if b.separator == "" {
		return nil, fmt.Errorf("naming system %q: separator cannot be empty", b.id)
	}

	names := make(map[BookID]string, len(b.base))
	for id, name := range b.base {
		names[id] = name
	}
	for _, st := range b.steps {
		switch st.kind {
		case stepOverride:
			for id, name := range st.changes {
				names[id] = name
			}
		case stepStripPeriods:
			for id, name := range names {
				names[id] = strings.ReplaceAll(name, ".", "")
			}
		}
	}

	order := make([]BookID, 0, len(names))
	for id, name := range names {
		if id.IsZero() {
			return nil, fmt.Errorf("naming system %q: zero book id", b.id)
		}
		if strings.TrimSpace(name) == "" {
			return nil, fmt.Errorf("naming system %q: empty name for book %s", b.id, id)
		}
		if b.separator != SeparatorNonBreaking {
			names[id] = strings.ReplaceAll(name, Blank, string(b.separator))
		}
		order = append(order, id)
	}
	sort.Slice(order, func(i, j int) bool { return order[i].Less(order[j]) })

	return &System{
		id:        b.id,
		language:  b.language,
		separator: b.separator,
		names:     names,
		order:     order,
	}, nil
}
