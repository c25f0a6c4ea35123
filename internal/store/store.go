package store

import (
	"sync"

	"github.com/shopspring/decimal"

	"github.com/dompet-dev/dompet/internal/dates"
	"github.com/dompet-dev/dompet/internal/id"
	"github.com/dompet-dev/dompet/internal/model"
)

// AuditFunc receives one record per store mutation.
type AuditFunc func(action, entity, entityID string)

// Store owns the current AppState snapshot. Every mutation clones the
// snapshot, edits the clone, and swaps it in atomically, so readers always
// see a complete state and recomputing reports from State() is
// deterministic. The price feed ticks from its own goroutine, hence the
// lock around the swap.
type Store struct {
	mu    sync.RWMutex
	state *model.AppState
	subs  []func(*model.AppState)
	audit AuditFunc
	newID func() string
}

// New creates a Store over an initial snapshot. A nil snapshot starts empty.
func New(initial *model.AppState) *Store {
	if initial == nil {
		initial = &model.AppState{}
	}
	return &Store{state: initial, newID: id.New}
}

// State returns the current snapshot. Callers must treat it as read-only;
// it is never edited in place.
func (s *Store) State() *model.AppState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// Subscribe registers fn to be called with each new snapshot, after every
// mutation. Callbacks run on the mutating goroutine.
func (s *Store) Subscribe(fn func(*model.AppState)) {
	s.mu.Lock()
	s.subs = append(s.subs, fn)
	s.mu.Unlock()
}

// SetAudit installs the mutation audit hook.
func (s *Store) SetAudit(fn AuditFunc) {
	s.mu.Lock()
	s.audit = fn
	s.mu.Unlock()
}

// apply runs mutate against a clone of the current snapshot and swaps the
// clone in. The audit hook and subscribers fire after the swap.
func (s *Store) apply(action, entity, entityID string, mutate func(*model.AppState)) {
	s.mu.Lock()
	next := s.state.Clone()
	mutate(next)
	s.state = next
	subs := s.subs
	audit := s.audit
	s.mu.Unlock()

	if audit != nil {
		audit(action, entity, entityID)
	}
	for _, fn := range subs {
		fn(next)
	}
}

// AddTransaction records a new transaction at the head of the list
// (newest first) and returns it.
func (s *Store) AddTransaction(date dates.Day, description string, amount decimal.Decimal, typ model.TransactionType, category string) model.Transaction {
	tx := model.Transaction{
		ID:          s.newID(),
		Date:        date,
		Description: description,
		Amount:      amount,
		Type:        typ,
		Category:    category,
	}
	s.apply("add", "transaction", tx.ID, func(st *model.AppState) {
		st.Transactions = append([]model.Transaction{tx}, st.Transactions...)
	})
	return tx
}

// UpdateTransaction merges patch into the matching transaction.
// Unknown ids are a no-op.
func (s *Store) UpdateTransaction(txID string, patch TransactionPatch) {
	s.apply("update", "transaction", txID, func(st *model.AppState) {
		for i := range st.Transactions {
			if st.Transactions[i].ID == txID {
				patch.applyTo(&st.Transactions[i])
				return
			}
		}
	})
}

// RemoveTransaction deletes the matching transaction. Unknown ids are a no-op.
func (s *Store) RemoveTransaction(txID string) {
	s.apply("remove", "transaction", txID, func(st *model.AppState) {
		st.Transactions = removeByID(st.Transactions, txID, func(t model.Transaction) string { return t.ID })
	})
}

// AddInvestment records a new holding. CurrentPrice starts at the average
// buy price; the price feed moves it afterwards.
func (s *Store) AddInvestment(symbol, name string, typ model.InvestmentType, quantity, avgBuyPrice decimal.Decimal) model.Investment {
	inv := model.Investment{
		ID:           s.newID(),
		Symbol:       symbol,
		Name:         name,
		Type:         typ,
		Quantity:     quantity,
		AvgBuyPrice:  avgBuyPrice,
		CurrentPrice: avgBuyPrice,
	}
	s.apply("add", "investment", inv.ID, func(st *model.AppState) {
		st.Investments = append(st.Investments, inv)
	})
	return inv
}

// UpdateInvestment merges patch into the matching holding. Unknown ids are a no-op.
func (s *Store) UpdateInvestment(invID string, patch InvestmentPatch) {
	s.apply("update", "investment", invID, func(st *model.AppState) {
		for i := range st.Investments {
			if st.Investments[i].ID == invID {
				patch.applyTo(&st.Investments[i])
				return
			}
		}
	})
}

// RemoveInvestment deletes the matching holding. Unknown ids are a no-op.
func (s *Store) RemoveInvestment(invID string) {
	s.apply("remove", "investment", invID, func(st *model.AppState) {
		st.Investments = removeByID(st.Investments, invID, func(i model.Investment) string { return i.ID })
	})
}

// SetPrices replaces CurrentPrice on every holding present in prices,
// keyed by investment id, in a single snapshot swap.
func (s *Store) SetPrices(prices map[string]decimal.Decimal) {
	s.apply("tick", "investment", "", func(st *model.AppState) {
		for i := range st.Investments {
			if p, ok := prices[st.Investments[i].ID]; ok {
				st.Investments[i].CurrentPrice = p
			}
		}
	})
}

// AddGoal records a new savings goal with nothing saved toward it yet.
func (s *Store) AddGoal(name string, typ model.GoalType, target decimal.Decimal, deadline *dates.Day) model.SavingsGoal {
	g := model.SavingsGoal{
		ID:            s.newID(),
		Name:          name,
		Type:          typ,
		TargetAmount:  target,
		CurrentAmount: decimal.Zero,
		Deadline:      deadline,
	}
	s.apply("add", "goal", g.ID, func(st *model.AppState) {
		st.Goals = append(st.Goals, g)
	})
	return g
}

// UpdateGoal merges patch into the matching goal. Unknown ids are a no-op.
func (s *Store) UpdateGoal(goalID string, patch GoalPatch) {
	s.apply("update", "goal", goalID, func(st *model.AppState) {
		for i := range st.Goals {
			if st.Goals[i].ID == goalID {
				patch.applyTo(&st.Goals[i])
				return
			}
		}
	})
}

// RemoveGoal deletes the matching goal. Unknown ids are a no-op.
func (s *Store) RemoveGoal(goalID string) {
	s.apply("remove", "goal", goalID, func(st *model.AppState) {
		st.Goals = removeByID(st.Goals, goalID, func(g model.SavingsGoal) string { return g.ID })
	})
}

// AdjustGoalAmount moves money in (positive delta) or out (negative delta)
// of a goal. The balance tracks actual cash moved and is deliberately not
// clamped at zero or at the target. Unknown ids are a no-op.
func (s *Store) AdjustGoalAmount(goalID string, delta decimal.Decimal) {
	s.apply("adjust", "goal", goalID, func(st *model.AppState) {
		for i := range st.Goals {
			if st.Goals[i].ID == goalID {
				st.Goals[i].CurrentAmount = st.Goals[i].CurrentAmount.Add(delta)
				return
			}
		}
	})
}

// AddCategory records a new category and returns it.
func (s *Store) AddCategory(name string, typ model.TransactionType, color string) model.Category {
	c := model.Category{
		ID:    s.newID(),
		Name:  name,
		Type:  typ,
		Color: color,
	}
	s.apply("add", "category", c.ID, func(st *model.AppState) {
		st.Categories = append(st.Categories, c)
	})
	return c
}

// RemoveCategory deletes the matching category. Transactions referencing
// its name are left untouched; they fall back to the neutral color when
// rendered. Unknown ids are a no-op.
func (s *Store) RemoveCategory(catID string) {
	s.apply("remove", "category", catID, func(st *model.AppState) {
		st.Categories = removeByID(st.Categories, catID, func(c model.Category) string { return c.ID })
	})
}

func removeByID[T any](items []T, id string, key func(T) string) []T {
	out := items[:0:0]
	for _, it := range items {
		if key(it) != id {
			out = append(out, it)
		}
	}
	return out
}
