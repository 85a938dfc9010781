package reporting

import (
	"time"

	"github.com/joesexpress/studio-sub000/internal/models"
)

// InactivityWindowDays is how long a customer may go without service before
// being counted as inactive.
const InactivityWindowDays = 180

// InactivitySummary classifies the authoritative customer list.
type InactivitySummary struct {
	Inactive    int
	Total       int
	InactiveIDs []string
}

// ClassifyInactivity marks a customer inactive when it has no records at all
// or its most recent service is before now minus InactivityWindowDays.
// Undated records count as serviced at now.
func ClassifyInactivity(customers []models.Customer, records []models.ServiceRecord, now time.Time) InactivitySummary {
	last := make(map[string]time.Time)
	for _, r := range records {
		if r.CustomerID == "" {
			continue
		}
		d := EffectiveDate(r.Date, now)
		if prev, ok := last[r.CustomerID]; !ok || d.After(prev) {
			last[r.CustomerID] = d
		}
	}

	cutoff := now.AddDate(0, 0, -InactivityWindowDays)
	summary := InactivitySummary{Total: len(customers), InactiveIDs: make([]string, 0)}
	for _, c := range customers {
		d, ok := last[c.ID]
		if !ok || d.Before(cutoff) {
			summary.Inactive++
			summary.InactiveIDs = append(summary.InactiveIDs, c.ID)
		}
	}
	return summary
}
