package store

import (
	"github.com/shopspring/decimal"

	"github.com/dompet-dev/dompet/internal/dates"
	"github.com/dompet-dev/dompet/internal/model"
)

// Patch structs carry partial updates: only non-nil fields overwrite the
// entity, mirroring the merge semantics the snapshot format has always had.

// TransactionPatch is a partial update of a Transaction.
type TransactionPatch struct {
	Date        *dates.Day
	Description *string
	Amount      *decimal.Decimal
	Type        *model.TransactionType
	Category    *string
}

func (p TransactionPatch) applyTo(t *model.Transaction) {
	if p.Date != nil {
		t.Date = *p.Date
	}
	if p.Description != nil {
		t.Description = *p.Description
	}
	if p.Amount != nil {
		t.Amount = *p.Amount
	}
	if p.Type != nil {
		t.Type = *p.Type
	}
	if p.Category != nil {
		t.Category = *p.Category
	}
}

// InvestmentPatch is a partial update of an Investment.
type InvestmentPatch struct {
	Symbol       *string
	Name         *string
	Type         *model.InvestmentType
	Quantity     *decimal.Decimal
	AvgBuyPrice  *decimal.Decimal
	CurrentPrice *decimal.Decimal
}

func (p InvestmentPatch) applyTo(i *model.Investment) {
	if p.Symbol != nil {
		i.Symbol = *p.Symbol
	}
	if p.Name != nil {
		i.Name = *p.Name
	}
	if p.Type != nil {
		i.Type = *p.Type
	}
	if p.Quantity != nil {
		i.Quantity = *p.Quantity
	}
	if p.AvgBuyPrice != nil {
		i.AvgBuyPrice = *p.AvgBuyPrice
	}
	if p.CurrentPrice != nil {
		i.CurrentPrice = *p.CurrentPrice
	}
}

// GoalPatch is a partial update of a SavingsGoal. CurrentAmount is
// deliberately absent: balances move through AdjustGoalAmount only.
type GoalPatch struct {
	Name         *string
	Type         *model.GoalType
	TargetAmount *decimal.Decimal
	Deadline     **dates.Day
}

func (p GoalPatch) applyTo(g *model.SavingsGoal) {
	if p.Name != nil {
		g.Name = *p.Name
	}
	if p.Type != nil {
		g.Type = *p.Type
	}
	if p.TargetAmount != nil {
		g.TargetAmount = *p.TargetAmount
	}
	if p.Deadline != nil {
		g.Deadline = *p.Deadline
	}
}
