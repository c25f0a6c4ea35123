package model

// Category gives a transaction category a display color. Name is unique
// within its type; INCOME and EXPENSE namespaces may share a name.
type Category struct {
	ID    string          `json:"id"`
	Name  string          `json:"name"`
	Type  TransactionType `json:"type"`
	Color string          `json:"color"`
}

// DefaultColor is the neutral color used when a transaction's category
// name has no matching Category entry.
const DefaultColor = "#94a3b8"

// DefaultCategories returns the seed category set written into snapshots
// that predate the category system.
func DefaultCategories() []Category {
	return []Category{
		{ID: "1", Name: "Gaji", Type: TypeIncome, Color: "#22c55e"},
		{ID: "2", Name: "Bonus", Type: TypeIncome, Color: "#10b981"},
		{ID: "3", Name: "Makan", Type: TypeExpense, Color: "#ef4444"},
		{ID: "4", Name: "Transport", Type: TypeExpense, Color: "#f97316"},
		{ID: "5", Name: "Belanja", Type: TypeExpense, Color: "#f59e0b"},
		{ID: "6", Name: "Hiburan", Type: TypeExpense, Color: "#8b5cf6"},
	}
}
