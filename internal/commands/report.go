package commands

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/dompet-dev/dompet/internal/dates"
	"github.com/dompet-dev/dompet/internal/model"
	"github.com/dompet-dev/dompet/internal/render"
	"github.com/dompet-dev/dompet/internal/report"
)

func newReportCommand(dataDir *string) *cobra.Command {
	var preset, from, to string

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Dashboard summary for a date range",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if preset == "" && from == "" && to == "" {
				preset = dates.PresetThisMonth
			}
			r, err := parseRange(preset, from, to)
			if err != nil {
				return err
			}

			s, err := openSession(*dataDir)
			if err != nil {
				return err
			}

			st := s.store.State()
			return runReport(os.Stdout, st, r)
		},
	}

	cmd.Flags().StringVar(&preset, "preset", "", "named range: this-month, last-month, last-30-days, this-year")
	cmd.Flags().StringVar(&from, "from", "", "range start YYYY-MM-DD")
	cmd.Flags().StringVar(&to, "to", "", "range end YYYY-MM-DD")

	return cmd
}

func runReport(w io.Writer, st *model.AppState, r dates.Range) error {
	sum := report.Summarize(st, r)

	fmt.Fprintf(w, "Periode %s\n\n", r)
	fmt.Fprintf(w, "Pemasukan:   %s\n", render.IDR(sum.TotalIncome))
	fmt.Fprintf(w, "Pengeluaran: %s\n", render.IDR(sum.TotalExpense))
	fmt.Fprintf(w, "Arus Kas:    %s\n", render.SignedIDR(sum.Cashflow))
	fmt.Fprintf(w, "Portofolio:  %s (%s, %s)\n",
		render.IDR(sum.PortfolioValue), render.SignedIDR(sum.Gain), render.Percent(sum.GainPercent))
	fmt.Fprintf(w, "Kekayaan Bersih: %s\n", render.IDR(sum.NetWorth))

	filtered := report.FilterByRange(st.Transactions, r)

	for _, section := range []struct {
		title string
		typ   model.TransactionType
	}{
		{"Pemasukan per Kategori", model.TypeIncome},
		{"Pengeluaran per Kategori", model.TypeExpense},
	} {
		fmt.Fprintf(w, "\n%s:\n", section.title)
		tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
		for _, g := range report.GroupByCategory(filtered, section.typ, st.Categories) {
			fmt.Fprintf(tw, "  %s\t%s\n", g.Name, render.IDR(g.Total))
		}
		if err := tw.Flush(); err != nil {
			return err
		}
	}

	fmt.Fprintf(w, "\nTren Harian:\n")
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for _, b := range report.BucketByDate(filtered) {
		fmt.Fprintf(tw, "  %s\t%s\t%s\n", b.Date, render.IDR(b.Income), render.IDR(b.Expense))
	}
	return tw.Flush()
}
