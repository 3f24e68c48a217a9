package validation

import (
	"fmt"
	"strings"
)

// Error is a field-keyed validation failure. Handlers surface the field map
// directly in the error response body.
type Error struct {
	Fields map[string]string
}

func (e *Error) Error() string {
	msgs := make([]string, 0, len(e.Fields))
	for field, msg := range e.Fields {
		msgs = append(msgs, fmt.Sprintf("%s: %s", field, msg))
	}
	return strings.Join(msgs, "; ")
}
