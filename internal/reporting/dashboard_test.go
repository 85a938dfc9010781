package reporting

import (
	"reflect"
	"testing"
	"time"

	"github.com/joesexpress/studio-sub000/internal/models"
)

var testNow = time.Date(2024, 9, 1, 12, 0, 0, 0, time.UTC)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func sampleRecords() []models.ServiceRecord {
	return []models.ServiceRecord{
		{ID: "r1", Date: day(2024, 1, 10), TechnicianName: "Joe", CustomerID: "c-acme", CustomerName: "Acme", Total: 100, Status: models.StatusPaid},
		{ID: "r2", Date: day(2024, 2, 5), TechnicianName: "Joe", CustomerID: "c-acme", CustomerName: "Acme", Total: 50, Status: models.StatusOwed},
		{ID: "r3", Date: day(2024, 2, 20), TechnicianName: "Sam", CustomerID: "c-beta", CustomerName: "Beta", Total: 9999, Status: models.StatusEstimate},
		{ID: "r4", Date: day(2024, 3, 1), TechnicianName: "Sam", CustomerID: "c-gamma", CustomerName: "Gamma", Total: 49.5, Status: models.StatusPaid},
		{ID: "r5", Date: day(2024, 3, 15), CustomerID: "c-gamma", CustomerName: "Gamma", Total: 0.25, Status: models.StatusPaid},
		{ID: "r6", TechnicianName: "Ana", CustomerID: "", CustomerName: "Walk-in", Total: 75, Status: ""},
		{ID: "r7", Date: day(2024, 1, 30), TechnicianName: "Ana", CustomerID: "c-beta", CustomerName: "Beta", Total: 20, Status: models.StatusNoCharge},
	}
}

func TestBuildDashboard_AcmeBetaScenario(t *testing.T) {
	records := []models.ServiceRecord{
		{ID: "R1", Date: day(2024, 1, 15), CustomerID: "acme", CustomerName: "Acme", Total: 100, Status: models.StatusPaid},
		{ID: "R2", Date: day(2024, 2, 15), CustomerID: "acme", CustomerName: "Acme", Total: 50, Status: models.StatusOwed},
		{ID: "R3", Date: day(2024, 2, 20), CustomerID: "beta", CustomerName: "Beta", Total: 9999, Status: models.StatusEstimate},
	}

	d := BuildDashboard(DashboardInput{Records: records, Now: testNow})

	if d.TotalRevenue != 150 {
		t.Fatalf("expected totalRevenue 150, got %v", d.TotalRevenue)
	}
	wantRevenue := []models.RevenueDataPoint{{Date: "2024-01", Revenue: 100}}
	if !reflect.DeepEqual(d.RevenueData, wantRevenue) {
		t.Fatalf("expected revenueData %+v, got %+v", wantRevenue, d.RevenueData)
	}
	if d.TotalCustomers != 2 {
		t.Fatalf("expected 2 unique customers, got %d", d.TotalCustomers)
	}
	if d.TotalJobs != 3 {
		t.Fatalf("expected 3 jobs, got %d", d.TotalJobs)
	}

	rollups := BuildCustomerRollups(records)
	if len(rollups) != 2 {
		t.Fatalf("expected 2 rollups, got %d", len(rollups))
	}
	acme, beta := rollups[0], rollups[1]
	if acme.CustomerID != "acme" || acme.TotalBilled != 150 || acme.TotalJobs != 2 {
		t.Fatalf("unexpected Acme rollup: %+v", acme)
	}
	if beta.CustomerID != "beta" || beta.TotalBilled != 0 || beta.TotalJobs != 1 {
		t.Fatalf("unexpected Beta rollup: %+v", beta)
	}
}

func TestBuildDashboard_Properties(t *testing.T) {
	records := sampleRecords()

	t.Run("technician job counts cover records with a technician", func(t *testing.T) {
		perf := TechnicianPerformance(records)
		sum, want := 0, 0
		for _, p := range perf {
			sum += p.TotalJobs
		}
		for _, r := range records {
			if r.TechnicianName != "" {
				want++
			}
		}
		if sum != want {
			t.Fatalf("expected %d jobs across technicians, got %d", want, sum)
		}
	})

	t.Run("revenue series sums to paid total", func(t *testing.T) {
		var series, paid float64
		for _, p := range RevenueByMonth(records, testNow) {
			series += p.Revenue
		}
		for _, r := range records {
			if r.Status == models.StatusPaid {
				paid += r.Total
			}
		}
		if series != paid {
			t.Fatalf("expected revenue series %v, got %v", paid, series)
		}
	})

	t.Run("total revenue covers paid and owed", func(t *testing.T) {
		d := BuildDashboard(DashboardInput{Records: records, Now: testNow})
		if d.TotalRevenue != 199.75 {
			t.Fatalf("expected 199.75, got %v", d.TotalRevenue)
		}
		paidOnly := 0.0
		for _, p := range d.RevenueData {
			paidOnly += p.Revenue
		}
		if d.TotalRevenue < paidOnly {
			t.Fatalf("total revenue %v below paid-only %v", d.TotalRevenue, paidOnly)
		}
	})

	t.Run("empty filter is a no-op", func(t *testing.T) {
		d := BuildDashboard(DashboardInput{Records: records, Filter: Filter{}, Now: testNow})
		if !reflect.DeepEqual(d.TechnicianPerformance, TechnicianPerformance(records)) {
			t.Fatalf("technician performance differs under empty filter")
		}
		if !reflect.DeepEqual(d.RevenueData, RevenueByMonth(records, testNow)) {
			t.Fatalf("revenue data differs under empty filter")
		}
		if !reflect.DeepEqual(d.StatusData, StatusBreakdown(records)) {
			t.Fatalf("status data differs under empty filter")
		}
		if d.TotalJobs != len(records) {
			t.Fatalf("expected %d jobs, got %d", len(records), d.TotalJobs)
		}
	})

	t.Run("aggregation is idempotent and leaves input untouched", func(t *testing.T) {
		before := sampleRecords()
		in := DashboardInput{Records: records, Now: testNow}
		first := BuildDashboard(in)
		second := BuildDashboard(in)
		if !reflect.DeepEqual(first, second) {
			t.Fatalf("expected identical output, got %+v and %+v", first, second)
		}
		_ = BuildCustomerRollups(records)
		if !reflect.DeepEqual(records, before) {
			t.Fatalf("input records were mutated")
		}
	})
}

func TestTechnicianPerformance(t *testing.T) {
	perf := TechnicianPerformance(sampleRecords())
	want := []models.TechnicianPerformance{
		{Technician: "Sam", TotalJobs: 2, TotalRevenue: 10048.5},
		{Technician: "Joe", TotalJobs: 2, TotalRevenue: 150},
		{Technician: "Ana", TotalJobs: 2, TotalRevenue: 95},
	}
	if !reflect.DeepEqual(perf, want) {
		t.Fatalf("expected %+v, got %+v", want, perf)
	}

	t.Run("ties keep first-seen order", func(t *testing.T) {
		perf := TechnicianPerformance([]models.ServiceRecord{
			{TechnicianName: "B", Total: 10},
			{TechnicianName: "A", Total: 10},
		})
		if perf[0].Technician != "B" || perf[1].Technician != "A" {
			t.Fatalf("expected B before A, got %+v", perf)
		}
	})
}

func TestStatusBreakdown(t *testing.T) {
	got := StatusBreakdown(sampleRecords())
	want := []models.StatusCount{
		{Name: "Paid", Value: 3},
		{Name: "Owed", Value: 1},
		{Name: "Estimate", Value: 1},
		{Name: models.UnknownStatusLabel, Value: 1},
		{Name: "No Charge", Value: 1},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %+v, got %+v", want, got)
	}

	t.Run("empty input gives an empty list", func(t *testing.T) {
		got := StatusBreakdown(nil)
		if got == nil || len(got) != 0 {
			t.Fatalf("expected empty non-nil slice, got %#v", got)
		}
	})
}

func TestRevenueByMonth_UndatedUsesNow(t *testing.T) {
	got := RevenueByMonth([]models.ServiceRecord{
		{Total: 10, Status: models.StatusPaid},
		{Date: day(2024, 8, 31), Total: 5, Status: models.StatusPaid},
		{Date: day(2023, 12, 1), Total: 1, Status: models.StatusPaid},
	}, testNow)
	want := []models.RevenueDataPoint{
		{Date: "2023-12", Revenue: 1},
		{Date: "2024-08", Revenue: 5},
		{Date: "2024-09", Revenue: 10},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %+v, got %+v", want, got)
	}
}

func TestBuildDashboard_FilteredUsesWholeSnapshotForChoices(t *testing.T) {
	records := sampleRecords()
	customers := []models.Customer{
		{ID: "c-acme", CreatedAt: day(2023, 1, 1)},
		{ID: "c-beta", CreatedAt: day(2023, 1, 1)},
		{ID: "c-gamma", CreatedAt: day(2023, 1, 1)},
		{ID: "c-delta", CreatedAt: day(2023, 1, 1)},
	}
	d := BuildDashboard(DashboardInput{
		Records:   records,
		Customers: customers,
		Filter:    Filter{Technician: "Joe"},
		Now:       testNow,
	})

	if d.TotalJobs != 2 {
		t.Fatalf("expected 2 filtered jobs, got %d", d.TotalJobs)
	}
	if !reflect.DeepEqual(d.UniqueTechnicians, []string{"Ana", "Joe", "Sam"}) {
		t.Fatalf("unexpected technicians %v", d.UniqueTechnicians)
	}
	if d.TotalCustomers != 1 {
		t.Fatalf("expected 1 customer, got %d", d.TotalCustomers)
	}
	// Cutoff is 2024-03-05; only gamma was serviced after it.
	if d.TotalCustomerCount != 4 || d.InactiveCustomers != 3 {
		t.Fatalf("expected 3 of 4 inactive, got %d of %d", d.InactiveCustomers, d.TotalCustomerCount)
	}
}

func TestBuildDashboard_Empty(t *testing.T) {
	d := BuildDashboard(DashboardInput{Now: testNow})
	if d.TechnicianPerformance == nil || d.RevenueData == nil || d.StatusData == nil || d.UniqueTechnicians == nil {
		t.Fatalf("expected non-nil empty slices, got %+v", d)
	}
	if d.TotalRevenue != 0 || d.TotalJobs != 0 || d.TotalCustomers != 0 {
		t.Fatalf("expected zeroed dashboard, got %+v", d)
	}
}
