package validation

import (
	"fmt"
	"maps"
	"slices"
	"strings"
)

// Error carries one message per rejected request field.
type Error struct {
	Fields map[string]string
}

// Error lists the field messages in field order.
func (e *Error) Error() string {
	msgs := make([]string, 0, len(e.Fields))
	for _, field := range slices.Sorted(maps.Keys(e.Fields)) {
		msgs = append(msgs, fmt.Sprintf("%s: %s", field, e.Fields[field]))
	}
	return strings.Join(msgs, "; ")
}
