package commands

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/dompet-dev/dompet/internal/render"
	"github.com/dompet-dev/dompet/internal/report"
	"github.com/dompet-dev/dompet/internal/store"
)

func newInvestCommand(dataDir *string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "invest",
		Short: "Investment portfolio operations",
	}
	cmd.AddCommand(newInvestAddCommand(dataDir))
	cmd.AddCommand(newInvestListCommand(dataDir))
	cmd.AddCommand(newInvestEditCommand(dataDir))
	cmd.AddCommand(newInvestRemoveCommand(dataDir))
	return cmd
}

func newInvestAddCommand(dataDir *string) *cobra.Command {
	var symbol, name, typ, qty, buyPrice string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Record a new holding",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			invType, err := parseInvestmentType(typ)
			if err != nil {
				return err
			}
			quantity, err := decimal.NewFromString(qty)
			if err != nil {
				return fmt.Errorf("parsing --qty: %w", err)
			}
			price, err := parseAmount(buyPrice)
			if err != nil {
				return err
			}

			s, err := openSession(*dataDir)
			if err != nil {
				return err
			}
			inv := s.store.AddInvestment(symbol, name, invType, quantity, price)
			if err := s.save(); err != nil {
				return err
			}

			fmt.Printf("Recorded %s %s, %s unit @ %s (%s)\n",
				inv.Type.Label(), inv.Symbol, inv.Quantity, render.IDR(inv.AvgBuyPrice), inv.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&symbol, "symbol", "", "ticker or symbol (required)")
	_ = cmd.MarkFlagRequired("symbol")
	cmd.Flags().StringVar(&name, "name", "", "display name (required)")
	_ = cmd.MarkFlagRequired("name")
	cmd.Flags().StringVar(&typ, "type", "", "stock, crypto or gold (required)")
	_ = cmd.MarkFlagRequired("type")
	cmd.Flags().StringVar(&qty, "qty", "", "quantity held (required)")
	_ = cmd.MarkFlagRequired("qty")
	cmd.Flags().StringVar(&buyPrice, "buy-price", "", "average buy price per unit (required)")
	_ = cmd.MarkFlagRequired("buy-price")

	return cmd
}

func newInvestListCommand(dataDir *string) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Show holdings with profit and loss",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(*dataDir)
			if err != nil {
				return err
			}

			rows := report.Performance(s.store.State().Investments)
			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tSYMBOL\tTYPE\tQTY\tPRICE\tVALUE\tP/L\tP/L%")
			for _, row := range rows {
				inv := row.Investment
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
					inv.ID, inv.Symbol, inv.Type.Label(), inv.Quantity,
					render.IDR(inv.CurrentPrice), render.IDR(row.Value),
					render.SignedIDR(row.PL), render.Percent(row.PLPercent))
			}
			return w.Flush()
		},
	}
}

func newInvestEditCommand(dataDir *string) *cobra.Command {
	var symbol, name, typ, qty, buyPrice, price string

	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Edit a holding",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var patch store.InvestmentPatch
			if cmd.Flags().Changed("symbol") {
				patch.Symbol = &symbol
			}
			if cmd.Flags().Changed("name") {
				patch.Name = &name
			}
			if cmd.Flags().Changed("type") {
				invType, err := parseInvestmentType(typ)
				if err != nil {
					return err
				}
				patch.Type = &invType
			}
			if cmd.Flags().Changed("qty") {
				quantity, err := decimal.NewFromString(qty)
				if err != nil {
					return fmt.Errorf("parsing --qty: %w", err)
				}
				patch.Quantity = &quantity
			}
			if cmd.Flags().Changed("buy-price") {
				p, err := parseAmount(buyPrice)
				if err != nil {
					return err
				}
				patch.AvgBuyPrice = &p
			}
			if cmd.Flags().Changed("price") {
				p, err := parseAmount(price)
				if err != nil {
					return err
				}
				patch.CurrentPrice = &p
			}

			s, err := openSession(*dataDir)
			if err != nil {
				return err
			}
			s.store.UpdateInvestment(args[0], patch)
			return s.save()
		},
	}

	cmd.Flags().StringVar(&symbol, "symbol", "", "ticker or symbol")
	cmd.Flags().StringVar(&name, "name", "", "display name")
	cmd.Flags().StringVar(&typ, "type", "", "stock, crypto or gold")
	cmd.Flags().StringVar(&qty, "qty", "", "quantity held")
	cmd.Flags().StringVar(&buyPrice, "buy-price", "", "average buy price per unit")
	cmd.Flags().StringVar(&price, "price", "", "current price per unit")

	return cmd
}

func newInvestRemoveCommand(dataDir *string) *cobra.Command {
	return &cobra.Command{
		Use:   "rm <id>",
		Short: "Delete a holding",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(*dataDir)
			if err != nil {
				return err
			}
			s.store.RemoveInvestment(args[0])
			return s.save()
		},
	}
}
