package commands

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/dompet-dev/dompet/internal/dates"
	"github.com/dompet-dev/dompet/internal/export"
	"github.com/dompet-dev/dompet/internal/importer"
	"github.com/dompet-dev/dompet/internal/render"
	"github.com/dompet-dev/dompet/internal/report"
	"github.com/dompet-dev/dompet/internal/store"
)

func newTxCommand(dataDir *string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tx",
		Short: "Transaction operations",
	}
	cmd.AddCommand(newTxAddCommand(dataDir))
	cmd.AddCommand(newTxListCommand(dataDir))
	cmd.AddCommand(newTxEditCommand(dataDir))
	cmd.AddCommand(newTxRemoveCommand(dataDir))
	cmd.AddCommand(newTxExportCommand(dataDir))
	cmd.AddCommand(newTxImportCommand(dataDir))
	return cmd
}

func newTxAddCommand(dataDir *string) *cobra.Command {
	var date, desc, amount, typ, category string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Record a transaction",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			day := dates.Today()
			if date != "" {
				var err error
				if day, err = dates.Parse(date); err != nil {
					return fmt.Errorf("parsing --date: %w", err)
				}
			}
			amt, err := parseAmount(amount)
			if err != nil {
				return err
			}
			txType, err := parseTransactionType(typ)
			if err != nil {
				return err
			}

			s, err := openSession(*dataDir)
			if err != nil {
				return err
			}
			tx := s.store.AddTransaction(day, desc, amt, txType, category)
			if err := s.save(); err != nil {
				return err
			}

			fmt.Printf("Recorded %s %s %s (%s)\n", tx.Type.Label(), render.IDR(tx.Amount), tx.Description, tx.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "transaction date YYYY-MM-DD (default today)")
	cmd.Flags().StringVar(&desc, "desc", "", "description (required)")
	_ = cmd.MarkFlagRequired("desc")
	cmd.Flags().StringVar(&amount, "amount", "", "amount in whole rupiah (required)")
	_ = cmd.MarkFlagRequired("amount")
	cmd.Flags().StringVar(&typ, "type", "", "income or expense (required)")
	_ = cmd.MarkFlagRequired("type")
	cmd.Flags().StringVar(&category, "category", "", "category name")

	return cmd
}

func newTxListCommand(dataDir *string) *cobra.Command {
	var preset, from, to string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List transactions, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(*dataDir)
			if err != nil {
				return err
			}

			txs := s.store.State().Transactions
			if preset != "" || from != "" || to != "" {
				r, err := parseRange(preset, from, to)
				if err != nil {
					return err
				}
				txs = report.FilterByRange(txs, r)
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tDATE\tTYPE\tCATEGORY\tAMOUNT\tDESCRIPTION")
			for _, tx := range txs {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
					tx.ID, tx.Date, tx.Type.Label(), tx.Category, render.SignedIDR(tx.Signed()), tx.Description)
			}
			return w.Flush()
		},
	}

	cmd.Flags().StringVar(&preset, "preset", "", "named range: this-month, last-month, last-30-days, this-year")
	cmd.Flags().StringVar(&from, "from", "", "range start YYYY-MM-DD")
	cmd.Flags().StringVar(&to, "to", "", "range end YYYY-MM-DD")

	return cmd
}

func newTxEditCommand(dataDir *string) *cobra.Command {
	var date, desc, amount, typ, category string

	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Edit a transaction",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var patch store.TransactionPatch
			if cmd.Flags().Changed("date") {
				day, err := dates.Parse(date)
				if err != nil {
					return fmt.Errorf("parsing --date: %w", err)
				}
				patch.Date = &day
			}
			if cmd.Flags().Changed("desc") {
				patch.Description = &desc
			}
			if cmd.Flags().Changed("amount") {
				amt, err := parseAmount(amount)
				if err != nil {
					return err
				}
				patch.Amount = &amt
			}
			if cmd.Flags().Changed("type") {
				txType, err := parseTransactionType(typ)
				if err != nil {
					return err
				}
				patch.Type = &txType
			}
			if cmd.Flags().Changed("category") {
				patch.Category = &category
			}

			s, err := openSession(*dataDir)
			if err != nil {
				return err
			}
			s.store.UpdateTransaction(args[0], patch)
			return s.save()
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "transaction date YYYY-MM-DD")
	cmd.Flags().StringVar(&desc, "desc", "", "description")
	cmd.Flags().StringVar(&amount, "amount", "", "amount in whole rupiah")
	cmd.Flags().StringVar(&typ, "type", "", "income or expense")
	cmd.Flags().StringVar(&category, "category", "", "category name")

	return cmd
}

func newTxRemoveCommand(dataDir *string) *cobra.Command {
	return &cobra.Command{
		Use:   "rm <id>",
		Short: "Delete a transaction",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(*dataDir)
			if err != nil {
				return err
			}
			s.store.RemoveTransaction(args[0])
			return s.save()
		},
	}
}

func newTxExportCommand(dataDir *string) *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export all transactions to CSV",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(*dataDir)
			if err != nil {
				return err
			}

			if out == "" {
				out = export.Filename(dates.Today())
			}
			f, err := os.Create(out)
			if err != nil {
				return fmt.Errorf("creating export file: %w", err)
			}
			defer f.Close()

			txs := s.store.State().Transactions
			if err := export.WriteTransactions(f, txs); err != nil {
				return err
			}
			fmt.Printf("Exported %d transactions to %s\n", len(txs), out)
			return nil
		},
	}

	cmd.Flags().StringVar(&out, "out", "", "output file (default transaksi_dompet_<today>.csv)")

	return cmd
}

func newTxImportCommand(dataDir *string) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Import transactions from CSV",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			parser := importer.DefaultRegistry().Get(format)
			if parser == nil {
				return fmt.Errorf("unknown import format %q", format)
			}

			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("opening import file: %w", err)
			}
			defer f.Close()

			txs, err := parser.Parse(f)
			if err != nil {
				return err
			}

			s, err := openSession(*dataDir)
			if err != nil {
				return err
			}
			// Rows arrive newest first, the same order export writes them.
			// Adding in reverse keeps that order in the store.
			for i := len(txs) - 1; i >= 0; i-- {
				tx := txs[i]
				s.store.AddTransaction(tx.Date, tx.Description, tx.Amount, tx.Type, tx.Category)
			}
			if err := s.save(); err != nil {
				return err
			}

			fmt.Printf("Imported %d transactions from %s\n", len(txs), args[0])
			return nil
		},
	}

	cmd.Flags().StringVar(&format, "format", "dompet", "import format")

	return cmd
}
