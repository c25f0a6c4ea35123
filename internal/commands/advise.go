package commands

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"

	"github.com/dompet-dev/dompet/internal/advisor"
	"github.com/dompet-dev/dompet/internal/config"
)

func newAdviseCommand(dataDir *string) *cobra.Command {
	return &cobra.Command{
		Use:   "advise <question>",
		Short: "Ask the AI advisor about your finances",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			config.LoadEnv()

			s, err := openSession(*dataDir)
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			gen, err := advisor.NewGemini(ctx, s.cfg.Advisor.Model)
			if err != nil {
				fmt.Println(advisor.Unavailable)
				return nil
			}

			query := strings.Join(args, " ")
			reply := advisor.New(gen).Ask(ctx, query, s.store.State())

			// The model replies in markdown; render it when the terminal allows.
			r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(80))
			if err != nil {
				fmt.Println(reply)
				return nil
			}
			out, err := r.Render(reply)
			if err != nil {
				fmt.Println(reply)
				return nil
			}
			fmt.Print(out)
			return nil
		},
	}
}
