package refmodel

import (
	"fmt"
	"strings"
)

// UnknownReferenceModelError is returned when a model identifier has no
// registry entry. Supported lists only identifiers users may pick today.
type UnknownReferenceModelError struct {
	Model     string
	Supported []string
}

func (e *UnknownReferenceModelError) Error() string {
	return fmt.Sprintf(
		"unknown reference model %q: must be one of [%s]",
		e.Model, strings.Join(e.Supported, ", "),
	)
}
