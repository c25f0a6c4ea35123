package model

import (
	"github.com/shopspring/decimal"

	"github.com/dompet-dev/dompet/internal/dates"
)

// TransactionType classifies a transaction as money in or money out.
type TransactionType string

const (
	TypeIncome  TransactionType = "INCOME"
	TypeExpense TransactionType = "EXPENSE"
)

// Valid reports whether t is a known transaction type.
func (t TransactionType) Valid() bool {
	return t == TypeIncome || t == TypeExpense
}

// Label returns the display name for the type.
func (t TransactionType) Label() string {
	if t == TypeIncome {
		return "Pemasukan"
	}
	return "Pengeluaran"
}

// Transaction is a single income or expense record. Amount is a
// non-negative value in whole currency units; the type carries the sign.
// Category is a name reference into the category list, not an id, so a
// deleted category leaves the name dangling on purpose.
type Transaction struct {
	ID          string          `json:"id"`
	Date        dates.Day       `json:"date"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Type        TransactionType `json:"type"`
	Category    string          `json:"category"`
}

// Signed returns the amount with its cash-flow sign applied:
// positive for income, negative for expense.
func (t Transaction) Signed() decimal.Decimal {
	if t.Type == TypeExpense {
		return t.Amount.Neg()
	}
	return t.Amount
}
