package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/shopspring/decimal"

	"github.com/dompet-dev/dompet/internal/model"
)

// StateFile is the snapshot file name inside the data directory.
const StateFile = "state.json"

func init() {
	// The snapshot format stores amounts as plain JSON numbers.
	decimal.MarshalJSONWithoutQuotes = true
}

// Load reads the snapshot from dir. A missing file yields an empty state.
// Snapshots written before the category system existed (or with an empty
// category list) are migrated by seeding the default categories.
func Load(dir string) (*model.AppState, error) {
	data, err := os.ReadFile(filepath.Join(dir, StateFile))
	if errors.Is(err, fs.ErrNotExist) {
		return migrate(&model.AppState{}), nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading snapshot: %w", err)
	}

	var st model.AppState
	if err := json.Unmarshal(data, &st); err != nil {
		return nil, fmt.Errorf("parsing snapshot: %w", err)
	}
	return migrate(&st), nil
}

// Save writes the snapshot to dir atomically (temp file + rename), so a
// crash mid-write never leaves a partial snapshot behind.
func Save(dir string, st *model.AppState) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating data dir: %w", err)
	}

	data, err := json.MarshalIndent(st, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling snapshot: %w", err)
	}

	path := filepath.Join(dir, StateFile)
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("writing snapshot: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("replacing snapshot: %w", err)
	}
	return nil
}

// migrate repairs a structurally incomplete snapshot: nil collections
// become empty, and a missing or empty category list gets the default set.
func migrate(st *model.AppState) *model.AppState {
	if st.Transactions == nil {
		st.Transactions = []model.Transaction{}
	}
	if st.Investments == nil {
		st.Investments = []model.Investment{}
	}
	if st.Goals == nil {
		st.Goals = []model.SavingsGoal{}
	}
	if len(st.Categories) == 0 {
		st.Categories = model.DefaultCategories()
	}
	return st
}
