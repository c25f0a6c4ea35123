package report

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/dompet-dev/dompet/internal/dates"
	"github.com/dompet-dev/dompet/internal/model"
)

// ResolveColor returns the display color for a category name recorded
// under typ. INCOME and EXPENSE namespaces may share a name, so both must
// match. Unknown names (deleted or freeform categories) resolve to the
// neutral default.
func ResolveColor(categories []model.Category, name string, typ model.TransactionType) string {
	for _, c := range categories {
		if c.Name == name && c.Type == typ {
			return c.Color
		}
	}
	return model.DefaultColor
}

// CategoryGroup is one slice of the per-category breakdown chart.
type CategoryGroup struct {
	Name  string
	Type  model.TransactionType
	Total decimal.Decimal
	Color string
}

// GroupByCategory partitions the transactions of the given type by
// category name, sums each group, and attaches the resolved color. Groups
// come back sorted by total, largest first; ties keep first-encounter
// order. Pure function of its inputs.
func GroupByCategory(txs []model.Transaction, typ model.TransactionType, categories []model.Category) []CategoryGroup {
	totals := make(map[string]decimal.Decimal)
	var order []string
	for _, tx := range txs {
		if tx.Type != typ {
			continue
		}
		if _, seen := totals[tx.Category]; !seen {
			order = append(order, tx.Category)
		}
		totals[tx.Category] = totals[tx.Category].Add(tx.Amount)
	}

	groups := make([]CategoryGroup, 0, len(order))
	for _, name := range order {
		groups = append(groups, CategoryGroup{
			Name:  name,
			Type:  typ,
			Total: totals[name],
			Color: ResolveColor(categories, name, typ),
		})
	}
	sort.SliceStable(groups, func(i, j int) bool {
		return groups[i].Total.GreaterThan(groups[j].Total)
	})
	return groups
}

// DateBucket is one day's bar in the trend chart.
type DateBucket struct {
	Date    dates.Day
	Income  decimal.Decimal
	Expense decimal.Decimal
}

// BucketByDate partitions transactions by calendar day, summing income and
// expense separately per day. Buckets come back in ascending date order.
// Pure function of its inputs.
func BucketByDate(txs []model.Transaction) []DateBucket {
	byDay := make(map[dates.Day]*DateBucket)
	for _, tx := range txs {
		b, ok := byDay[tx.Date]
		if !ok {
			b = &DateBucket{Date: tx.Date}
			byDay[tx.Date] = b
		}
		switch tx.Type {
		case model.TypeIncome:
			b.Income = b.Income.Add(tx.Amount)
		case model.TypeExpense:
			b.Expense = b.Expense.Add(tx.Amount)
		}
	}

	buckets := make([]DateBucket, 0, len(byDay))
	for _, b := range byDay {
		buckets = append(buckets, *b)
	}
	sort.Slice(buckets, func(i, j int) bool {
		// Fixed-width ISO dates sort chronologically as strings.
		return buckets[i].Date.String() < buckets[j].Date.String()
	})
	return buckets
}
