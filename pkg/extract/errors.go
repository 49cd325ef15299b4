package extract

import "fmt"

// UnrecognizedTokenError is returned when no pattern matches at a position of
// the text being tokenized.
type UnrecognizedTokenError struct {
	Offset int
	Text   string
}

func (e *UnrecognizedTokenError) Error() string {
	return fmt.Sprintf("unrecognized text at offset %d in %q", e.Offset, e.Text)
}

// UnresolvedReferenceError is returned when a cross-reference cannot be
// resolved to a book or to stored verses. Original is the reference text as
// it appeared in the input.
type UnresolvedReferenceError struct {
	Original string
	Reason   string
	Err      error
}

func (e *UnresolvedReferenceError) Error() string {
	msg := fmt.Sprintf("could not resolve cross-reference %q", e.Original)
	if e.Reason != "" {
		msg += ": " + e.Reason
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *UnresolvedReferenceError) Unwrap() error {
	return e.Err
}

func unresolved(ref *CrossReference, reason string, err error) *UnresolvedReferenceError {
	return &UnresolvedReferenceError{Original: ref.Original, Reason: reason, Err: err}
}
