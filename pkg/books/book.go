// Package books provides Bible book naming systems and a registry that unifies
// several of them into one normalized lookup.
//
// A naming system maps canonical book positions to display names for one
// convention (full names, an abbreviation style, a language) and one
// separator variant. Systems are built from a base table and an ordered list
// of override steps and never change afterwards. A Registry combines any
// number of systems into an ordered book list and a name-to-position table.
package books

import (
	"fmt"
	"strconv"
	"strings"
)

// BookID is the canonical position of a book. Books of the standard canon use
// Major 1..66 and Minor 0. Books inserted between two canon books (the
// deuterocanon) keep the Major of the preceding book and use Minor > 0, so
// insertion never renumbers existing books.
type BookID struct {
	Major int `json:"major"`
	Minor int `json:"minor,omitempty"`
}

// Book returns the BookID of a standard canon book.
func Book(major int) BookID {
	return BookID{Major: major}
}

// Inserted returns the BookID of a book inserted after canon book major.
func Inserted(major, minor int) BookID {
	return BookID{Major: major, Minor: minor}
}

// Less reports whether id sorts before other.
func (id BookID) Less(other BookID) bool {
	if id.Major != other.Major {
		return id.Major < other.Major
	}
	return id.Minor < other.Minor
}

// Compare returns -1, 0 or +1 depending on the order of id and other.
func (id BookID) Compare(other BookID) int {
	switch {
	case id.Less(other):
		return -1
	case other.Less(id):
		return 1
	default:
		return 0
	}
}

// IsZero reports whether id is the zero BookID, which names no book.
func (id BookID) IsZero() bool {
	return id.Major == 0 && id.Minor == 0
}

// IsInserted reports whether id names an inserted (deuterocanonical) book.
func (id BookID) IsInserted() bool {
	return id.Minor > 0
}

// String renders "19" for canon books and "16.1" for inserted books.
func (id BookID) String() string {
	if id.Minor == 0 {
		return strconv.Itoa(id.Major)
	}
	return fmt.Sprintf("%d.%d", id.Major, id.Minor)
}

// ParseBookID parses the String form of a BookID.
func ParseBookID(s string) (BookID, error) {
	s = strings.TrimSpace(s)
	majorText, minorText, hasMinor := strings.Cut(s, ".")
	major, err := strconv.Atoi(majorText)
	if err != nil || major < 1 {
		return BookID{}, fmt.Errorf("invalid book id %q", s)
	}
	if !hasMinor {
		return BookID{Major: major}, nil
	}
	minor, err := strconv.Atoi(minorText)
	if err != nil || minor < 0 {
		return BookID{}, fmt.Errorf("invalid book id %q", s)
	}
	return BookID{Major: major, Minor: minor}, nil
}

// MarshalText implements encoding.TextMarshaler so BookIDs can be map keys in
// YAML and JSON documents.
func (id BookID) MarshalText() ([]byte, error) {
	return []byte(id.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (id *BookID) UnmarshalText(text []byte) error {
	parsed, err := ParseBookID(string(text))
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}
