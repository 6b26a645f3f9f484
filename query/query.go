// Package query filters and sorts complaint store snapshots for the public
// tracker and the staff console. Everything here is a pure function of its
// input; no caching, no mutation.
package query

import (
	"sort"
	"strings"

	"github.com/securevoice/securevoice-core/models"
)

// Filter narrows a complaint snapshot. Zero-valued fields match everything;
// active filters combine with logical AND.
type Filter struct {
	Category models.Category
	Status   models.Status
	Priority models.Priority
	Search   string
}

// Apply returns the complaints matching every active filter. Input order is
// preserved; ordering is the consumer's concern.
func (f Filter) Apply(in []models.Complaint) []models.Complaint {
	term := strings.ToLower(strings.TrimSpace(f.Search))

	var out []models.Complaint
	for _, c := range in {
		if f.Category != "" && c.Category != f.Category {
			continue
		}
		if f.Status != "" && c.Status != f.Status {
			continue
		}
		if f.Priority != "" && c.Priority != f.Priority {
			continue
		}
		if term != "" && !matchesSearch(c, term) {
			continue
		}
		out = append(out, c)
	}
	return out
}

// matchesSearch does a case-insensitive substring match against the subject,
// description and ID
func matchesSearch(c models.Complaint, term string) bool {
	return strings.Contains(strings.ToLower(c.Subject), term) ||
		strings.Contains(strings.ToLower(c.Description), term) ||
		strings.Contains(strings.ToLower(c.ID), term)
}

// SortForTracker orders a snapshot for the public tracker: newest first
func SortForTracker(in []models.Complaint) []models.Complaint {
	out := append([]models.Complaint(nil), in...)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out
}

// SortForConsole orders a snapshot for the staff console: urgent priority
// first, ties broken newest first
func SortForConsole(in []models.Complaint) []models.Complaint {
	out := append([]models.Complaint(nil), in...)
	sort.SliceStable(out, func(i, j int) bool {
		ri, rj := out[i].Priority.Rank(), out[j].Priority.Rank()
		if ri != rj {
			return ri < rj
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out
}
