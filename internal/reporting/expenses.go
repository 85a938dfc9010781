package reporting

import (
	"sort"
	"strings"
	"time"

	"github.com/joesexpress/studio-sub000/internal/models"
	"github.com/shopspring/decimal"
)

// UncategorizedLabel groups expenses without a category.
const UncategorizedLabel = "Uncategorized"

type categoryAcc struct {
	name  string
	total decimal.Decimal
	count int
}

// SummarizeExpenses totals the expenses dated inside [from, to]. Nil bounds
// are open and undated expenses count as dated now. Categories are sorted by
// total, highest first; months ascend.
func SummarizeExpenses(expenses []models.Expense, from, to *time.Time, now time.Time) models.ExpenseSummary {
	var (
		total decimal.Decimal
		count int
	)
	index := make(map[string]int)
	var cats []*categoryAcc
	byMonth := make(map[string]decimal.Decimal)

	for _, e := range expenses {
		date := EffectiveDate(e.Date, now)
		if !inRange(date, from, to) {
			continue
		}
		amt := amount(e.Amount)
		total = total.Add(amt)
		count++

		name := strings.TrimSpace(e.Category)
		if name == "" {
			name = UncategorizedLabel
		}
		i, ok := index[name]
		if !ok {
			i = len(cats)
			index[name] = i
			cats = append(cats, &categoryAcc{name: name})
		}
		cats[i].total = cats[i].total.Add(amt)
		cats[i].count++

		key := MonthKey(date)
		byMonth[key] = byMonth[key].Add(amt)
	}

	sort.SliceStable(cats, func(i, j int) bool {
		return cats[i].total.GreaterThan(cats[j].total)
	})
	categories := make([]models.CategoryTotal, 0, len(cats))
	for _, c := range cats {
		categories = append(categories, models.CategoryTotal{Category: c.name, Total: c.total.InexactFloat64(), Count: c.count})
	}

	keys := make([]string, 0, len(byMonth))
	for k := range byMonth {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	months := make([]models.MonthTotal, 0, len(keys))
	for _, k := range keys {
		months = append(months, models.MonthTotal{Month: k, Total: byMonth[k].InexactFloat64()})
	}

	return models.ExpenseSummary{
		Total:      total.InexactFloat64(),
		Count:      count,
		ByCategory: categories,
		ByMonth:    months,
	}
}
