package reporting

import (
	"sort"
	"time"

	"github.com/joesexpress/studio-sub000/internal/models"
	"github.com/shopspring/decimal"
)

type rollupAcc struct {
	rollup  models.CustomerRollup
	billed  decimal.Decimal
	latest  time.Time
	records []models.ServiceRecord
}

// BuildCustomerRollups groups records by customer id. Records without a
// customer id are skipped.
//
// Contact details come from the latest dated record; a record only replaces
// them when its date is not older than the latest seen so far, and an undated
// record never replaces details taken from a dated one. Empty fields never
// overwrite known values.
//
// The result is sorted by job count, highest first; ties keep first-seen order.
func BuildCustomerRollups(records []models.ServiceRecord) []models.CustomerRollup {
	index := make(map[string]int)
	var accs []*rollupAcc

	for _, r := range records {
		if r.CustomerID == "" {
			continue
		}
		i, ok := index[r.CustomerID]
		if !ok {
			i = len(accs)
			index[r.CustomerID] = i
			accs = append(accs, &rollupAcc{rollup: models.CustomerRollup{CustomerID: r.CustomerID}})
			accs[i].takeContact(r)
			accs[i].latest = r.Date
		} else if a := accs[i]; supersedes(r.Date, a.latest) {
			a.takeContact(r)
			if !r.Date.IsZero() {
				a.latest = r.Date
			}
		}

		a := accs[i]
		a.records = append(a.records, r)
		if r.Status.IsBilled() {
			a.billed = a.billed.Add(amount(r.Total))
		}
	}

	out := make([]models.CustomerRollup, 0, len(accs))
	for _, a := range accs {
		recs := a.records
		sort.SliceStable(recs, func(i, j int) bool {
			return recs[i].Date.After(recs[j].Date)
		})
		a.rollup.Records = recs
		a.rollup.TotalJobs = len(recs)
		a.rollup.TotalBilled = a.billed.InexactFloat64()
		a.rollup.LastServiceDate = a.latest
		out = append(out, a.rollup)
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].TotalJobs > out[j].TotalJobs
	})
	return out
}

// supersedes reports whether a record dated d may replace contact details
// taken from a record dated latest.
func supersedes(d, latest time.Time) bool {
	if d.IsZero() {
		return latest.IsZero()
	}
	return !d.Before(latest)
}

func (a *rollupAcc) takeContact(r models.ServiceRecord) {
	if r.CustomerName != "" {
		a.rollup.Name = r.CustomerName
	}
	if r.Address != "" {
		a.rollup.Address = r.Address
	}
	if r.Phone != "" {
		a.rollup.Phone = r.Phone
	}
}
