package validation

import (
	"fmt"
	"sort"
	"strings"
)

// Error carries per-field validation failures for one request. Handlers
// map it to a 400 response, so the message only names fields the caller
// submitted.
type Error struct {
	Fields map[string]string
}

// Error joins the field messages as "field: message" pairs in field order,
// so the same bad request always produces the same message.
func (e *Error) Error() string {
	fields := make([]string, 0, len(e.Fields))
	for field := range e.Fields {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	msgs := make([]string, 0, len(fields))
	for _, field := range fields {
		msgs = append(msgs, fmt.Sprintf("%s: %s", field, e.Fields[field]))
	}
	return strings.Join(msgs, "; ")
}
