package commands

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/dompet-dev/dompet/internal/auditlog"
	"github.com/dompet-dev/dompet/internal/config"
	"github.com/dompet-dev/dompet/internal/dates"
	"github.com/dompet-dev/dompet/internal/gitops"
	"github.com/dompet-dev/dompet/internal/model"
	"github.com/dompet-dev/dompet/internal/store"
)

// session ties a data directory to its config and an in-memory store loaded
// from the snapshot. Mutations flow through the store; save persists the
// latest snapshot and, when configured, commits it.
type session struct {
	dir   string
	cfg   *config.Config
	store *store.Store
}

func openSession(dataDir string) (*session, error) {
	dir, err := filepath.Abs(dataDir)
	if err != nil {
		return nil, fmt.Errorf("resolving path: %w", err)
	}

	cfg, err := config.Load(filepath.Join(dir, config.FileName))
	if errors.Is(err, fs.ErrNotExist) {
		cfg = config.Default("")
	} else if err != nil {
		return nil, err
	}

	st, err := store.Load(dir)
	if err != nil {
		return nil, err
	}

	s := &session{dir: dir, cfg: cfg, store: store.New(st)}
	s.store.SetAudit(func(action, entity, entityID string) {
		e := auditlog.Entry{
			Timestamp: time.Now().UTC(),
			Action:    action,
			Entity:    entity,
			EntityID:  entityID,
		}
		if err := auditlog.Append(dir, []auditlog.Entry{e}); err != nil {
			fmt.Fprintf(os.Stderr, "warning: failed to write audit log: %v\n", err)
		}
	})
	return s, nil
}

// save writes the current snapshot and auto-commits it when the data
// directory is a git repository and auto_commit is on. Commit failures warn
// rather than fail: the snapshot on disk is already current.
func (s *session) save() error {
	if err := store.Save(s.dir, s.store.State()); err != nil {
		return err
	}
	if s.cfg.Git.AutoCommit && gitops.IsRepo(s.dir) {
		if _, err := gitops.CommitSnapshot(s.dir, "snapshot: update state", s.cfg.Git.AuthorName, s.cfg.Git.AuthorEmail); err != nil {
			fmt.Fprintf(os.Stderr, "warning: git commit failed: %v\n", err)
		}
	}
	return nil
}

// parseRange resolves the shared --preset/--from/--to flags. A preset wins
// over explicit bounds; explicit bounds require both ends.
func parseRange(preset, from, to string) (dates.Range, error) {
	if preset != "" {
		return dates.ParsePreset(preset, dates.Today())
	}
	if from == "" || to == "" {
		return dates.Range{}, fmt.Errorf("either --preset or both --from and --to are required")
	}
	f, err := dates.Parse(from)
	if err != nil {
		return dates.Range{}, fmt.Errorf("parsing --from: %w", err)
	}
	t, err := dates.Parse(to)
	if err != nil {
		return dates.Range{}, fmt.Errorf("parsing --to: %w", err)
	}
	return dates.NewRange(f, t), nil
}

func parseTransactionType(s string) (model.TransactionType, error) {
	t := model.TransactionType(strings.ToUpper(s))
	if !t.Valid() {
		return "", fmt.Errorf("unknown transaction type %q (want income or expense)", s)
	}
	return t, nil
}

func parseInvestmentType(s string) (model.InvestmentType, error) {
	t := model.InvestmentType(strings.ToUpper(s))
	if !t.Valid() {
		return "", fmt.Errorf("unknown investment type %q (want stock, crypto or gold)", s)
	}
	return t, nil
}

func parseGoalType(s string) (model.GoalType, error) {
	t := model.GoalType(strings.ToUpper(s))
	if !t.Valid() {
		return "", fmt.Errorf("unknown goal type %q (want emergency, retirement, wedding or other)", s)
	}
	return t, nil
}

// parseAmount parses a non-negative whole-unit amount.
func parseAmount(s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("parsing amount %q: %w", s, err)
	}
	if d.IsNegative() {
		return decimal.Zero, fmt.Errorf("amount must not be negative, got %s", s)
	}
	return d, nil
}
