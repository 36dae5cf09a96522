package attendance

import (
	"strings"

	"github.com/cmlabs-hris/timesheet-backend-go/internal/pkg/pagination"
)

// Criteria is a resolved filter. Empty fields apply no predicate.
type Criteria struct {
	Text   string
	Date   string
	Branch string
	UserID string
}

// Matches reports whether r satisfies every predicate in c.
func (c Criteria) Matches(r Record) bool {
	if c.Text != "" {
		text := strings.ToLower(c.Text)
		if !strings.Contains(strings.ToLower(r.UserName), text) &&
			!strings.Contains(strings.ToLower(r.Branch), text) {
			return false
		}
	}
	if c.Date != "" && r.Date != c.Date {
		return false
	}
	if c.Branch != "" && r.Branch != c.Branch {
		return false
	}
	if c.UserID != "" && r.UserID != c.UserID {
		return false
	}
	return true
}

// Filter returns the records matching c in their original order.
func Filter(records []Record, c Criteria) []Record {
	out := make([]Record, 0, len(records))
	for _, r := range records {
		if c.Matches(r) {
			out = append(out, r)
		}
	}
	return out
}

// Paginate returns page (1-indexed) of size records and the page count.
// A page past the end is empty.
func Paginate(records []Record, page, size int) ([]Record, int) {
	return pagination.Page(records, page, size)
}
