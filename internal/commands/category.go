package commands

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/dompet-dev/dompet/internal/model"
)

func newCategoryCommand(dataDir *string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "category",
		Short: "Category operations",
	}
	cmd.AddCommand(newCategoryAddCommand(dataDir))
	cmd.AddCommand(newCategoryListCommand(dataDir))
	cmd.AddCommand(newCategoryRemoveCommand(dataDir))
	return cmd
}

func newCategoryAddCommand(dataDir *string) *cobra.Command {
	var name, typ, color string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a category",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			txType, err := parseTransactionType(typ)
			if err != nil {
				return err
			}

			s, err := openSession(*dataDir)
			if err != nil {
				return err
			}
			c := s.store.AddCategory(name, txType, color)
			if err := s.save(); err != nil {
				return err
			}

			fmt.Printf("Created category %s (%s, %s) (%s)\n", c.Name, c.Type.Label(), c.Color, c.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "category name (required)")
	_ = cmd.MarkFlagRequired("name")
	cmd.Flags().StringVar(&typ, "type", "", "income or expense (required)")
	_ = cmd.MarkFlagRequired("type")
	cmd.Flags().StringVar(&color, "color", model.DefaultColor, "display color as #rrggbb")

	return cmd
}

func newCategoryListCommand(dataDir *string) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List categories",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(*dataDir)
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tNAME\tTYPE\tCOLOR")
			for _, c := range s.store.State().Categories {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", c.ID, c.Name, c.Type.Label(), c.Color)
			}
			return w.Flush()
		},
	}
}

func newCategoryRemoveCommand(dataDir *string) *cobra.Command {
	return &cobra.Command{
		Use:   "rm <id>",
		Short: "Delete a category",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(*dataDir)
			if err != nil {
				return err
			}
			s.store.RemoveCategory(args[0])
			return s.save()
		},
	}
}
