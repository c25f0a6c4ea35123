package model

// AppState is the complete snapshot of all four collections. It is the
// unit of persistence and of atomic replacement: mutations build a new
// snapshot rather than editing one in place.
//
// Transactions are kept newest first; the other collections are in
// insertion order.
type AppState struct {
	Transactions []Transaction `json:"transactions"`
	Investments  []Investment  `json:"investments"`
	Goals        []SavingsGoal `json:"goals"`
	Categories   []Category    `json:"categories"`
}

// Clone returns a deep-enough copy of the state: fresh slices with copied
// elements. Element fields are value types, so the copy shares nothing
// mutable with the original.
func (s *AppState) Clone() *AppState {
	out := &AppState{
		Transactions: make([]Transaction, len(s.Transactions)),
		Investments:  make([]Investment, len(s.Investments)),
		Goals:        make([]SavingsGoal, len(s.Goals)),
		Categories:   make([]Category, len(s.Categories)),
	}
	copy(out.Transactions, s.Transactions)
	copy(out.Investments, s.Investments)
	copy(out.Goals, s.Goals)
	copy(out.Categories, s.Categories)
	for i, g := range out.Goals {
		if g.Deadline != nil {
			d := *g.Deadline
			out.Goals[i].Deadline = &d
		}
	}
	return out
}
