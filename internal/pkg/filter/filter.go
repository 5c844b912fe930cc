package filter

import "strings"

// Terms are the search criteria coming from the list screens: a free-text term
// matched against a caller-chosen set of fields and an optional status term.
// Both are ANDed; an empty term matches everything.
type Terms struct {
	Text   string
	Status string
}

func (t Terms) IsEmpty() bool {
	return strings.TrimSpace(t.Text) == "" && strings.TrimSpace(t.Status) == ""
}

// Apply filters records in place of a SQL search: case-insensitive substring
// match over the fields selected by fieldsOf, ANDed with an exact status match.
// The result preserves input order and is never nil.
func Apply[T any](records []T, terms Terms, fieldsOf func(T) []string, statusOf func(T) string) []T {
	out := make([]T, 0, len(records))

	text := strings.ToLower(strings.TrimSpace(terms.Text))
	status := strings.TrimSpace(terms.Status)

	for _, record := range records {
		if status != "" && statusOf != nil && statusOf(record) != status {
			continue
		}
		if text != "" && !matchesText(record, text, fieldsOf) {
			continue
		}
		out = append(out, record)
	}

	return out
}

func matchesText[T any](record T, text string, fieldsOf func(T) []string) bool {
	if fieldsOf == nil {
		return false
	}
	for _, field := range fieldsOf(record) {
		if strings.Contains(strings.ToLower(field), text) {
			return true
		}
	}
	return false
}
