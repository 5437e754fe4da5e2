package selection

import "strings"

const maxSuggestions = 5

// Suggestion is one row of the course search dropdown.
type Suggestion struct {
	CourseID string
	Name     string
	Level    string
	Category string
	// CreateNew marks the synthetic "create this course" row; CourseID is
	// empty and Name carries the query text.
	CreateNew bool
}

// FilterCatalog matches the query case-insensitively against the names of
// courses not already selected and returns at most five matches. A create-new
// suggestion is appended unless some catalog course, selected or not, matches
// the query exactly.
func (s *Session) FilterCatalog(query string) []Suggestion {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil
	}
	q := strings.ToLower(query)

	var out []Suggestion
	for i := range s.catalog {
		c := &s.catalog[i]
		if s.Selected(c.ID) {
			continue
		}
		if !strings.Contains(strings.ToLower(c.Name), q) {
			continue
		}
		if len(out) < maxSuggestions {
			out = append(out, Suggestion{
				CourseID: c.ID,
				Name:     c.Name,
				Level:    c.Level,
				Category: orDefault(c.Category, DefaultCategory),
			})
		}
	}

	if s.findCourseByName(query) == nil {
		out = append(out, Suggestion{Name: query, CreateNew: true})
	}
	return out
}
