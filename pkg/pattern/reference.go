package pattern

import (
	"fmt"

	"github.com/coolbeans/bibleref/pkg/books"
)

// ReferencePattern composes the terms of the reference grammar:
//
//	book space number coda (separator (book space)? number coda)*
//
// where the coda is ":verse", ":verse-verse", ":verse-chapter:verse" or
// "-chapter".
type ReferencePattern struct {
	bookNames   string
	space       string
	number      string
	rangeMarker string
	colon       string
	separator   string
}

// NewReferencePattern builds the grammar for the given book names.
func NewReferencePattern(names []string) *ReferencePattern {
	return &ReferencePattern{
		bookNames:   BookNameTerm(names).Compile(),
		space:       SpaceTerm().Compile(),
		number:      NumberTerm().Compile(),
		rangeMarker: RangeMarkerTerm().Compile(),
		colon:       ChapterVerseSeparatorTerm().Compile(),
		separator:   ReferenceSeparatorTerm().Compile(),
	}
}

// FromRegistry builds the grammar for every name in reg.
func FromRegistry(reg *books.Registry) *ReferencePattern {
	return NewReferencePattern(reg.BookList())
}

// BookNames returns the compiled book name alternation.
func (p *ReferencePattern) BookNames() string {
	return p.bookNames
}

// Number returns the compiled number pattern.
func (p *ReferencePattern) Number() string {
	return p.number
}

func (p *ReferencePattern) codaBody() string {
	return fmt.Sprintf("%s%s(?:%s%s(?:%s%s)?)?|%s%s",
		p.colon, p.number,
		p.rangeMarker, p.number,
		p.colon, p.number,
		p.rangeMarker, p.number,
	)
}

// Coda returns the optional chapter and verse suffix.
func (p *ReferencePattern) Coda() string {
	return "(?:" + p.codaBody() + ")?"
}

// RequiredCoda is Coda without the option of matching nothing.
func (p *ReferencePattern) RequiredCoda() string {
	return "(?:" + p.codaBody() + ")"
}

// WithBook matches a reference starting with a book name.
func (p *ReferencePattern) WithBook() string {
	return p.bookNames + p.space + p.number + p.Coda()
}

// BookOptional matches a reference whose book name may be left out because
// it continues the previous one.
func (p *ReferencePattern) BookOptional() string {
	return "(?:" + p.bookNames + p.space + ")?" + p.number + p.Coda()
}

// NoBook matches a reference without a book name. It requires the coda: a
// bare number is ordinary text, not a reference.
func (p *ReferencePattern) NoBook() string {
	return p.number + p.RequiredCoda()
}

// MoreRefs matches one chained reference with its leading separator.
func (p *ReferencePattern) MoreRefs() string {
	return p.separator + p.BookOptional()
}

// Pattern returns the full reference expression. With complete set,
// references without a leading book name are matched as well.
func (p *ReferencePattern) Pattern(complete bool) string {
	more := "(?:" + p.MoreRefs() + ")*"
	if !complete {
		return p.WithBook() + more
	}
	return "(?:" + p.WithBook() + more + "|" + p.NoBook() + more + ")"
}
