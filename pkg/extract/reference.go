package extract

import (
	"fmt"
	"strings"
)

// CrossReference is one assembled reference. Fields left empty were absent
// from the text. Chapter and verse values hold digits only. Original is the
// reference text exactly as it appeared, separators included.
//
// Ignore marks a record that holds only a conjunction and names no passage.
type CrossReference struct {
	Book         string `json:"book,omitempty"`
	ChapterFirst string `json:"chapter_first,omitempty"`
	ChapterLast  string `json:"chapter_last,omitempty"`
	VerseFirst   string `json:"verse_first,omitempty"`
	VerseLast    string `json:"verse_last,omitempty"`
	Original     string `json:"original"`
	Ignore       bool   `json:"ignore,omitempty"`
}

// HasChapterRange reports whether the reference spans more than one chapter.
func (r *CrossReference) HasChapterRange() bool {
	return r.ChapterLast != r.ChapterFirst
}

// HasVerseRange reports whether the reference spans more than one verse.
func (r *CrossReference) HasVerseRange() bool {
	return r.VerseLast != r.VerseFirst
}

func (r *CrossReference) String() string {
	return fmt.Sprintf("%q book=%q chapters=%s-%s verses=%s-%s ignore=%v",
		r.Original, r.Book, r.ChapterFirst, r.ChapterLast, r.VerseFirst, r.VerseLast, r.Ignore)
}

// glue folds one token into the record. value is what gets stored for a book
// token (the extracted name), text is what gets appended to Original. A
// carried-over value passes an empty text.
func (r *CrossReference) glue(kind Kind, value, text string) {
	r.Ignore = kind == KindAnd

	switch kind {
	case KindBook:
		r.Book = value
	case KindChapter:
		n := digits(value)
		if r.ChapterFirst == "" {
			r.ChapterFirst = n
		}
		r.ChapterLast = n
	case KindVerse:
		n := digits(value)
		if r.VerseFirst == "" {
			r.VerseFirst = n
		}
		r.VerseLast = n
	}

	r.Original += text
}

// digits keeps only the ASCII digits of s.
func digits(s string) string {
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		if s[i] >= '0' && s[i] <= '9' {
			b.WriteByte(s[i])
		}
	}
	return b.String()
}
