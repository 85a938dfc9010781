package reporting

import (
	"sort"
	"time"

	"github.com/joesexpress/studio-sub000/internal/models"
	"github.com/shopspring/decimal"
)

type balanceAcc struct {
	balance     models.CustomerBalance
	outstanding decimal.Decimal
}

// BuildReceivables summarizes Owed records by customer and by age. Records
// without a customer id are grouped by customer name. Age is measured in
// whole days from the effective record date to now.
func BuildReceivables(records []models.ServiceRecord, now time.Time) models.Receivables {
	var (
		total                   decimal.Decimal
		current, d60, d90, over decimal.Decimal
		open                    int
	)
	index := make(map[string]int)
	var accs []*balanceAcc

	for _, r := range records {
		if r.Status != models.StatusOwed {
			continue
		}
		amt := amount(r.Total)
		date := EffectiveDate(r.Date, now)
		total = total.Add(amt)
		open++

		switch age := int(now.Sub(date).Hours() / 24); {
		case age <= 30:
			current = current.Add(amt)
		case age <= 60:
			d60 = d60.Add(amt)
		case age <= 90:
			d90 = d90.Add(amt)
		default:
			over = over.Add(amt)
		}

		key := "id:" + r.CustomerID
		if r.CustomerID == "" {
			key = "name:" + r.CustomerName
		}
		i, ok := index[key]
		if !ok {
			i = len(accs)
			index[key] = i
			accs = append(accs, &balanceAcc{balance: models.CustomerBalance{
				CustomerID: r.CustomerID,
				Name:       r.CustomerName,
				OldestOwed: date,
			}})
		}
		a := accs[i]
		a.outstanding = a.outstanding.Add(amt)
		a.balance.OpenInvoices++
		if date.Before(a.balance.OldestOwed) {
			a.balance.OldestOwed = date
		}
		if a.balance.Name == "" {
			a.balance.Name = r.CustomerName
		}
	}

	sort.SliceStable(accs, func(i, j int) bool {
		return accs[i].outstanding.GreaterThan(accs[j].outstanding)
	})

	customers := make([]models.CustomerBalance, 0, len(accs))
	for _, a := range accs {
		a.balance.Outstanding = a.outstanding.InexactFloat64()
		customers = append(customers, a.balance)
	}

	return models.Receivables{
		TotalOutstanding: total.InexactFloat64(),
		OpenInvoices:     open,
		Aging: models.AgingBuckets{
			Current:    current.InexactFloat64(),
			Days31To60: d60.InexactFloat64(),
			Days61To90: d90.InexactFloat64(),
			Over90:     over.InexactFloat64(),
		},
		Customers: customers,
	}
}
