// Package reporting turns snapshots of service records into business metrics.
// Every function is pure: inputs are never mutated and the evaluation time is
// always passed in by the caller.
package reporting

import (
	"time"

	"github.com/joesexpress/studio-sub000/internal/models"
)

const monthLayout = "2006-01"

// Filter narrows the records that participate in aggregation. A nil bound or
// an empty string matches everything; set constraints are combined with AND.
// Both date bounds are inclusive. Status is an exact match on the stored
// value, including values outside the known set.
type Filter struct {
	From       *time.Time
	To         *time.Time
	Technician string
	Status     models.Status
}

// IsEmpty reports whether the filter has no constraints.
func (f Filter) IsEmpty() bool {
	return f.From == nil && f.To == nil && f.Technician == "" && f.Status == ""
}

// Matches reports whether r satisfies every constraint of f.
func (f Filter) Matches(r models.ServiceRecord, now time.Time) bool {
	if !inRange(EffectiveDate(r.Date, now), f.From, f.To) {
		return false
	}
	if f.Technician != "" && r.TechnicianName != f.Technician {
		return false
	}
	if f.Status != "" && r.Status != f.Status {
		return false
	}
	return true
}

// Apply returns a new slice holding the records that match f, in input order.
func (f Filter) Apply(records []models.ServiceRecord, now time.Time) []models.ServiceRecord {
	out := make([]models.ServiceRecord, 0, len(records))
	for _, r := range records {
		if f.Matches(r, now) {
			out = append(out, r)
		}
	}
	return out
}

// EffectiveDate is the date used for bucketing and comparisons: d itself, or
// now when d is unknown.
func EffectiveDate(d, now time.Time) time.Time {
	if d.IsZero() {
		return now
	}
	return d
}

// MonthKey formats t as a "YYYY-MM" bucket key.
func MonthKey(t time.Time) string {
	return t.Format(monthLayout)
}

func inRange(d time.Time, from, to *time.Time) bool {
	if from != nil && d.Before(*from) {
		return false
	}
	if to != nil && d.After(*to) {
		return false
	}
	return true
}
