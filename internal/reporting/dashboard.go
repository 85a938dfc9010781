package reporting

import (
	"math"
	"sort"
	"time"

	"github.com/joesexpress/studio-sub000/internal/models"
	"github.com/shopspring/decimal"
)

// DashboardInput is one snapshot of the store plus the user's selection.
type DashboardInput struct {
	Records   []models.ServiceRecord
	Customers []models.Customer
	Filter    Filter
	Now       time.Time
}

// BuildDashboard computes the dashboard view model. Aggregates over jobs and
// revenue use the filtered records; the technician choices and the
// inactivity classification use the whole snapshot.
func BuildDashboard(in DashboardInput) models.Dashboard {
	filtered := in.Filter.Apply(in.Records, in.Now)
	inactivity := ClassifyInactivity(in.Customers, in.Records, in.Now)

	return models.Dashboard{
		TechnicianPerformance: TechnicianPerformance(filtered),
		RevenueData:           RevenueByMonth(filtered, in.Now),
		StatusData:            StatusBreakdown(filtered),
		TotalRevenue:          TotalBilled(filtered).InexactFloat64(),
		TotalCustomers:        UniqueCustomers(filtered),
		TotalJobs:             len(filtered),
		UniqueTechnicians:     UniqueTechnicians(in.Records),
		InactiveCustomers:     inactivity.Inactive,
		TotalCustomerCount:    inactivity.Total,
	}
}

type technicianAcc struct {
	name    string
	jobs    int
	revenue decimal.Decimal
}

// TechnicianPerformance groups records by technician name, ignoring records
// without one. Revenue is summed regardless of status. The result is sorted
// by revenue, highest first; equal revenues keep first-seen order.
func TechnicianPerformance(records []models.ServiceRecord) []models.TechnicianPerformance {
	index := make(map[string]int)
	var accs []*technicianAcc
	for _, r := range records {
		if r.TechnicianName == "" {
			continue
		}
		i, ok := index[r.TechnicianName]
		if !ok {
			i = len(accs)
			index[r.TechnicianName] = i
			accs = append(accs, &technicianAcc{name: r.TechnicianName})
		}
		accs[i].jobs++
		accs[i].revenue = accs[i].revenue.Add(amount(r.Total))
	}

	sort.SliceStable(accs, func(i, j int) bool {
		return accs[i].revenue.GreaterThan(accs[j].revenue)
	})

	out := make([]models.TechnicianPerformance, 0, len(accs))
	for _, a := range accs {
		out = append(out, models.TechnicianPerformance{
			Technician:   a.name,
			TotalJobs:    a.jobs,
			TotalRevenue: a.revenue.InexactFloat64(),
		})
	}
	return out
}

// RevenueByMonth sums Paid records per calendar month, ascending by month.
func RevenueByMonth(records []models.ServiceRecord, now time.Time) []models.RevenueDataPoint {
	byMonth := make(map[string]decimal.Decimal)
	for _, r := range records {
		if r.Status != models.StatusPaid {
			continue
		}
		key := MonthKey(EffectiveDate(r.Date, now))
		byMonth[key] = byMonth[key].Add(amount(r.Total))
	}

	keys := make([]string, 0, len(byMonth))
	for k := range byMonth {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make([]models.RevenueDataPoint, 0, len(keys))
	for _, k := range keys {
		out = append(out, models.RevenueDataPoint{Date: k, Revenue: byMonth[k].InexactFloat64()})
	}
	return out
}

// StatusBreakdown counts records per status in first-seen order. Only
// statuses that occur are listed.
func StatusBreakdown(records []models.ServiceRecord) []models.StatusCount {
	index := make(map[string]int)
	out := make([]models.StatusCount, 0)
	for _, r := range records {
		name := string(r.Status)
		if name == "" {
			name = models.UnknownStatusLabel
		}
		i, ok := index[name]
		if !ok {
			i = len(out)
			index[name] = i
			out = append(out, models.StatusCount{Name: name})
		}
		out[i].Value++
	}
	return out
}

// TotalBilled sums the totals of Paid and Owed records.
func TotalBilled(records []models.ServiceRecord) decimal.Decimal {
	sum := decimal.Zero
	for _, r := range records {
		if r.Status.IsBilled() {
			sum = sum.Add(amount(r.Total))
		}
	}
	return sum
}

// UniqueCustomers counts distinct non-empty customer ids.
func UniqueCustomers(records []models.ServiceRecord) int {
	seen := make(map[string]struct{})
	for _, r := range records {
		if r.CustomerID != "" {
			seen[r.CustomerID] = struct{}{}
		}
	}
	return len(seen)
}

// UniqueTechnicians returns the sorted distinct technician names.
func UniqueTechnicians(records []models.ServiceRecord) []string {
	seen := make(map[string]struct{})
	out := make([]string, 0)
	for _, r := range records {
		if r.TechnicianName == "" {
			continue
		}
		if _, ok := seen[r.TechnicianName]; ok {
			continue
		}
		seen[r.TechnicianName] = struct{}{}
		out = append(out, r.TechnicianName)
	}
	sort.Strings(out)
	return out
}

// amount converts a stored total into a decimal. Non-finite values count as zero.
func amount(f float64) decimal.Decimal {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return decimal.Zero
	}
	return decimal.NewFromFloat(f)
}
