package report

import (
	"github.com/dompet-dev/dompet/internal/dates"
	"github.com/dompet-dev/dompet/internal/model"
)

// FilterByRange returns the transactions whose calendar day falls within r,
// boundaries included. The filter is stable: survivors keep their order.
//
// Only cash-flow views are range-filtered. Portfolio valuation and goal
// balances are point-in-time snapshots and must never pass through here.
func FilterByRange(txs []model.Transaction, r dates.Range) []model.Transaction {
	var out []model.Transaction
	for _, tx := range txs {
		if r.Contains(tx.Date) {
			out = append(out, tx)
		}
	}
	return out
}
