package reporting

import (
	"testing"
	"time"

	"github.com/joesexpress/studio-sub000/internal/models"
)

func TestBuildCustomerRollups(t *testing.T) {
	t.Run("billed and job totals do not depend on order", func(t *testing.T) {
		records := sampleRecords()
		reversed := make([]models.ServiceRecord, len(records))
		for i, r := range records {
			reversed[len(records)-1-i] = r
		}

		index := func(rs []models.CustomerRollup) map[string]models.CustomerRollup {
			m := make(map[string]models.CustomerRollup)
			for _, r := range rs {
				m[r.CustomerID] = r
			}
			return m
		}
		a, b := index(BuildCustomerRollups(records)), index(BuildCustomerRollups(reversed))
		if len(a) != 3 || len(b) != 3 {
			t.Fatalf("expected 3 customers, got %d and %d", len(a), len(b))
		}
		for id, ra := range a {
			rb := b[id]
			if ra.TotalBilled != rb.TotalBilled || ra.TotalJobs != rb.TotalJobs {
				t.Fatalf("customer %s differs: %+v vs %+v", id, ra, rb)
			}
		}
		if a["c-gamma"].TotalBilled != 49.75 || a["c-beta"].TotalBilled != 0 || a["c-beta"].TotalJobs != 2 {
			t.Fatalf("unexpected totals: %+v", a)
		}
	})

	t.Run("contact details come from the latest dated record", func(t *testing.T) {
		records := []models.ServiceRecord{
			{CustomerID: "c1", Date: day(2024, 5, 1), CustomerName: "New Name", Address: "2 New St", Phone: "555-2"},
			{CustomerID: "c1", Date: day(2024, 1, 1), CustomerName: "Old Name", Address: "1 Old St", Phone: "555-1"},
			{CustomerID: "c1", CustomerName: "Undated Name", Address: "9 Nowhere"},
		}
		got := BuildCustomerRollups(records)[0]
		if got.Name != "New Name" || got.Address != "2 New St" || got.Phone != "555-2" {
			t.Fatalf("expected latest contact details, got %+v", got)
		}
		if !got.LastServiceDate.Equal(day(2024, 5, 1)) {
			t.Fatalf("expected last service 2024-05-01, got %v", got.LastServiceDate)
		}
	})

	t.Run("same date goes to the later record and blanks keep known values", func(t *testing.T) {
		records := []models.ServiceRecord{
			{CustomerID: "c1", Date: day(2024, 5, 1), CustomerName: "First", Phone: "555-1"},
			{CustomerID: "c1", Date: day(2024, 5, 1), CustomerName: "Second"},
		}
		got := BuildCustomerRollups(records)[0]
		if got.Name != "Second" || got.Phone != "555-1" {
			t.Fatalf("unexpected contact details %+v", got)
		}
	})

	t.Run("dated record replaces an undated one", func(t *testing.T) {
		records := []models.ServiceRecord{
			{CustomerID: "c1", CustomerName: "Undated"},
			{CustomerID: "c1", Date: day(2020, 1, 1), CustomerName: "Dated"},
		}
		if got := BuildCustomerRollups(records)[0]; got.Name != "Dated" {
			t.Fatalf("expected Dated, got %q", got.Name)
		}
	})

	t.Run("records are newest first and customers sorted by jobs", func(t *testing.T) {
		got := BuildCustomerRollups(sampleRecords())
		if got[0].TotalJobs < got[len(got)-1].TotalJobs {
			t.Fatalf("expected descending job counts, got %+v", got)
		}
		for _, c := range got {
			for i := 1; i < len(c.Records); i++ {
				if c.Records[i].Date.After(c.Records[i-1].Date) {
					t.Fatalf("records of %s not newest first", c.CustomerID)
				}
			}
		}
		if got[0].CustomerID != "c-acme" {
			t.Fatalf("expected c-acme first on ties, got %s", got[0].CustomerID)
		}
	})

	t.Run("records without customer id are skipped", func(t *testing.T) {
		got := BuildCustomerRollups([]models.ServiceRecord{{CustomerName: "Walk-in", Total: 10, Status: models.StatusPaid}})
		if len(got) != 0 {
			t.Fatalf("expected no rollups, got %+v", got)
		}
	})
}

func TestClassifyInactivity(t *testing.T) {
	t.Run("customer without records is inactive", func(t *testing.T) {
		registered := day(2024, 1, 1)
		now := registered.AddDate(0, 0, 200)
		got := ClassifyInactivity([]models.Customer{{ID: "c1", CreatedAt: registered}}, nil, now)
		if got.Inactive != 1 || got.Total != 1 || got.InactiveIDs[0] != "c1" {
			t.Fatalf("expected c1 inactive, got %+v", got)
		}
	})

	t.Run("cutoff is 180 days before now", func(t *testing.T) {
		now := day(2024, 9, 1)
		customers := []models.Customer{{ID: "recent"}, {ID: "edge"}, {ID: "stale"}, {ID: "undated"}}
		records := []models.ServiceRecord{
			{CustomerID: "recent", Date: now.AddDate(0, 0, -10)},
			{CustomerID: "edge", Date: now.AddDate(0, 0, -InactivityWindowDays)},
			{CustomerID: "stale", Date: now.AddDate(0, 0, -InactivityWindowDays).Add(-time.Hour)},
			{CustomerID: "stale", Date: now.AddDate(-1, 0, 0)},
			{CustomerID: "undated"},
		}
		got := ClassifyInactivity(customers, records, now)
		if got.Inactive != 1 || got.InactiveIDs[0] != "stale" {
			t.Fatalf("expected only stale inactive, got %+v", got)
		}
	})
}
