package report

import (
	"github.com/shopspring/decimal"

	"github.com/dompet-dev/dompet/internal/dates"
	"github.com/dompet-dev/dompet/internal/model"
)

var hundred = decimal.NewFromInt(100)

// Summary is the dashboard's headline view model for one date range.
//
// TotalIncome, TotalExpense and Cashflow cover the filtered range only.
// The portfolio figures and NetWorth are point-in-time: NetWorth always
// sums the entire transaction history, so changing the range never moves it.
type Summary struct {
	TotalIncome  decimal.Decimal
	TotalExpense decimal.Decimal
	Cashflow     decimal.Decimal

	PortfolioValue decimal.Decimal
	PortfolioCost  decimal.Decimal
	Gain           decimal.Decimal
	GainPercent    decimal.Decimal

	NetWorth decimal.Decimal
}

// Summarize computes the Summary for st over the range r. It is a pure
// function of the snapshot: calling it twice yields identical results.
func Summarize(st *model.AppState, r dates.Range) Summary {
	income, expense := FlowTotals(FilterByRange(st.Transactions, r))

	value, cost := portfolioTotals(st.Investments)
	gain := value.Sub(cost)

	return Summary{
		TotalIncome:    income,
		TotalExpense:   expense,
		Cashflow:       income.Sub(expense),
		PortfolioValue: value,
		PortfolioCost:  cost,
		Gain:           gain,
		GainPercent:    percentOf(gain, cost),
		NetWorth:       netWorth(st),
	}
}

// FlowTotals sums income and expense amounts over txs.
func FlowTotals(txs []model.Transaction) (income, expense decimal.Decimal) {
	for _, tx := range txs {
		switch tx.Type {
		case model.TypeIncome:
			income = income.Add(tx.Amount)
		case model.TypeExpense:
			expense = expense.Add(tx.Amount)
		}
	}
	return income, expense
}

// netWorth is the total accumulated position: portfolio value, goal
// balances, and the signed sum of the full transaction history. It takes
// the whole snapshot on purpose — never a filtered subsequence.
func netWorth(st *model.AppState) decimal.Decimal {
	total, _ := portfolioTotals(st.Investments)
	for _, g := range st.Goals {
		total = total.Add(g.CurrentAmount)
	}
	for _, tx := range st.Transactions {
		total = total.Add(tx.Signed())
	}
	return total
}

func portfolioTotals(invs []model.Investment) (value, cost decimal.Decimal) {
	for _, inv := range invs {
		value = value.Add(inv.Value())
		cost = cost.Add(inv.Cost())
	}
	return value, cost
}

// percentOf returns part/base*100, or zero when base is not positive.
// A zero cost basis must never produce an infinite or undefined percent.
func percentOf(part, base decimal.Decimal) decimal.Decimal {
	if !base.IsPositive() {
		return decimal.Zero
	}
	return part.Div(base).Mul(hundred)
}

// InvestmentPerformance is one holding's row in the portfolio view.
type InvestmentPerformance struct {
	Investment model.Investment
	Value      decimal.Decimal
	Cost       decimal.Decimal
	PL         decimal.Decimal
	PLPercent  decimal.Decimal
}

// Performance returns one row per holding, in input order.
func Performance(invs []model.Investment) []InvestmentPerformance {
	out := make([]InvestmentPerformance, 0, len(invs))
	for _, inv := range invs {
		value, cost := inv.Value(), inv.Cost()
		pl := value.Sub(cost)
		out = append(out, InvestmentPerformance{
			Investment: inv,
			Value:      value,
			Cost:       cost,
			PL:         pl,
			PLPercent:  percentOf(pl, cost),
		})
	}
	return out
}

// GoalProgress is one goal's row in the savings view. Percent is clamped
// to 100 for display; the underlying balance is not.
type GoalProgress struct {
	Goal    model.SavingsGoal
	Percent decimal.Decimal
}

// Progress returns one row per goal, in input order.
func Progress(goals []model.SavingsGoal) []GoalProgress {
	out := make([]GoalProgress, 0, len(goals))
	for _, g := range goals {
		p := percentOf(g.CurrentAmount, g.TargetAmount)
		if p.GreaterThan(hundred) {
			p = hundred
		}
		out = append(out, GoalProgress{Goal: g, Percent: p})
	}
	return out
}
