// Package extract turns Bible cross-reference text into structured
// references and resolves them against a naming registry and a verse store.
//
// The pipeline is Tokenizer (text to typed tokens), Parser (tokens to
// CrossReference records) and Resolver (records to book numbers, display
// forms and verse spans). Linker drives all three over free text.
package extract

import "fmt"

// Kind classifies a token.
type Kind string

const (
	// KindAnd is a conjunction or separator that joins two references.
	KindAnd Kind = "and"
	// KindBook is a book name, with any leading separator and number prefix.
	KindBook Kind = "book"
	// KindChapterOrVerse is a number whose role has not been decided. The
	// tokenizer never emits it; it names the shared number pattern.
	KindChapterOrVerse Kind = "chapter-or-verse"
	KindVerse          Kind = "verse"
	KindChapter        Kind = "chapter"
	// KindHalfVerse is a letter after a verse number ("3a").
	KindHalfVerse Kind = "half-verse"
	// KindContinuation is an "and following" marker ("ff", "ss").
	KindContinuation Kind = "continuation"
)

// Token is one classified piece of reference text. Offset is the byte offset
// of Text in the tokenized input.
type Token struct {
	Kind   Kind   `json:"kind"`
	Offset int    `json:"offset"`
	Text   string `json:"text"`
}

func (t Token) String() string {
	return fmt.Sprintf("%s@%d %q", t.Kind, t.Offset, t.Text)
}
