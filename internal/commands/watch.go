package commands

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/dompet-dev/dompet/internal/market"
	"github.com/dompet-dev/dompet/internal/model"
	"github.com/dompet-dev/dompet/internal/store"
)

func newWatchCommand(dataDir *string) *cobra.Command {
	var interval int

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Run the simulated price feed until interrupted",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(*dataDir)
			if err != nil {
				return err
			}

			if interval == 0 {
				interval = s.cfg.Feed.IntervalSeconds
			}

			// Persist every tick so a kill never loses more than one interval.
			// The git commit happens once, on shutdown.
			s.store.Subscribe(func(st *model.AppState) {
				if err := store.Save(s.dir, st); err != nil {
					fmt.Fprintf(os.Stderr, "warning: failed to write snapshot: %v\n", err)
				}
			})

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			feed := market.NewFeed(s.store, time.Duration(interval)*time.Second)
			feed.Run(ctx)

			return s.save()
		},
	}

	cmd.Flags().IntVar(&interval, "interval", 0, "tick interval in seconds (default from config)")

	return cmd
}
