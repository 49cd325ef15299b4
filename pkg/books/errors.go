package books

import (
	"fmt"
	"strings"
)

// UnknownBookNameError is returned when a name is not in a registry's lookup
// table.
type UnknownBookNameError struct {
	Name string
}

func (e *UnknownBookNameError) Error() string {
	return fmt.Sprintf("unknown book name %q", e.Name)
}

// DefinitionError describes one problem with a naming system definition.
type DefinitionError struct {
	Field   string
	Message string
	Value   interface{}
}

func (e DefinitionError) Error() string {
	if e.Value != nil {
		return fmt.Sprintf("%s: %s (got: %v)", e.Field, e.Message, e.Value)
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// DefinitionErrors is a collection of definition errors.
type DefinitionErrors []DefinitionError

func (errs DefinitionErrors) Error() string {
	if len(errs) == 0 {
		return "no errors"
	}
	if len(errs) == 1 {
		return errs[0].Error()
	}
	messages := make([]string, len(errs))
	for i, err := range errs {
		messages[i] = err.Error()
	}
	return fmt.Sprintf("%d definition errors:\n  - %s", len(errs), strings.Join(messages, "\n  - "))
}
