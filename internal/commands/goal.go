package commands

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/dompet-dev/dompet/internal/dates"
	"github.com/dompet-dev/dompet/internal/render"
	"github.com/dompet-dev/dompet/internal/report"
	"github.com/dompet-dev/dompet/internal/store"
)

func newGoalCommand(dataDir *string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "goal",
		Short: "Savings goal operations",
	}
	cmd.AddCommand(newGoalAddCommand(dataDir))
	cmd.AddCommand(newGoalListCommand(dataDir))
	cmd.AddCommand(newGoalDepositCommand(dataDir))
	cmd.AddCommand(newGoalWithdrawCommand(dataDir))
	cmd.AddCommand(newGoalEditCommand(dataDir))
	cmd.AddCommand(newGoalRemoveCommand(dataDir))
	return cmd
}

func newGoalAddCommand(dataDir *string) *cobra.Command {
	var name, typ, target, deadline string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a savings goal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			goalType, err := parseGoalType(typ)
			if err != nil {
				return err
			}
			targetAmt, err := parseAmount(target)
			if err != nil {
				return err
			}
			var due *dates.Day
			if deadline != "" {
				day, err := dates.Parse(deadline)
				if err != nil {
					return fmt.Errorf("parsing --deadline: %w", err)
				}
				due = &day
			}

			s, err := openSession(*dataDir)
			if err != nil {
				return err
			}
			g := s.store.AddGoal(name, goalType, targetAmt, due)
			if err := s.save(); err != nil {
				return err
			}

			fmt.Printf("Created goal %s (%s), target %s (%s)\n",
				g.Name, g.Type.Label(), render.IDR(g.TargetAmount), g.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "goal name (required)")
	_ = cmd.MarkFlagRequired("name")
	cmd.Flags().StringVar(&typ, "type", "", "emergency, retirement, wedding or other (required)")
	_ = cmd.MarkFlagRequired("type")
	cmd.Flags().StringVar(&target, "target", "", "target amount (required)")
	_ = cmd.MarkFlagRequired("target")
	cmd.Flags().StringVar(&deadline, "deadline", "", "target date YYYY-MM-DD")

	return cmd
}

func newGoalListCommand(dataDir *string) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Show goals with progress",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(*dataDir)
			if err != nil {
				return err
			}

			rows := report.Progress(s.store.State().Goals)
			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tNAME\tTYPE\tSAVED\tTARGET\tPROGRESS\tDEADLINE")
			for _, row := range rows {
				g := row.Goal
				due := "-"
				if g.Deadline != nil {
					due = g.Deadline.String()
				}
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
					g.ID, g.Name, g.Type.Label(),
					render.IDR(g.CurrentAmount), render.IDR(g.TargetAmount),
					render.Percent(row.Percent), due)
			}
			return w.Flush()
		},
	}
}

func newGoalDepositCommand(dataDir *string) *cobra.Command {
	return &cobra.Command{
		Use:   "deposit <id> <amount>",
		Short: "Move money into a goal",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			amt, err := parseAmount(args[1])
			if err != nil {
				return err
			}
			s, err := openSession(*dataDir)
			if err != nil {
				return err
			}
			s.store.AdjustGoalAmount(args[0], amt)
			return s.save()
		},
	}
}

func newGoalWithdrawCommand(dataDir *string) *cobra.Command {
	return &cobra.Command{
		Use:   "withdraw <id> <amount>",
		Short: "Move money out of a goal",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			amt, err := parseAmount(args[1])
			if err != nil {
				return err
			}
			s, err := openSession(*dataDir)
			if err != nil {
				return err
			}
			s.store.AdjustGoalAmount(args[0], amt.Neg())
			return s.save()
		},
	}
}

func newGoalEditCommand(dataDir *string) *cobra.Command {
	var name, typ, target, deadline string
	var clearDeadline bool

	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Edit a goal",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var patch store.GoalPatch
			if cmd.Flags().Changed("name") {
				patch.Name = &name
			}
			if cmd.Flags().Changed("type") {
				goalType, err := parseGoalType(typ)
				if err != nil {
					return err
				}
				patch.Type = &goalType
			}
			if cmd.Flags().Changed("target") {
				targetAmt, err := parseAmount(target)
				if err != nil {
					return err
				}
				patch.TargetAmount = &targetAmt
			}
			if clearDeadline {
				var none *dates.Day
				patch.Deadline = &none
			} else if cmd.Flags().Changed("deadline") {
				day, err := dates.Parse(deadline)
				if err != nil {
					return fmt.Errorf("parsing --deadline: %w", err)
				}
				due := &day
				patch.Deadline = &due
			}

			s, err := openSession(*dataDir)
			if err != nil {
				return err
			}
			s.store.UpdateGoal(args[0], patch)
			return s.save()
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "goal name")
	cmd.Flags().StringVar(&typ, "type", "", "emergency, retirement, wedding or other")
	cmd.Flags().StringVar(&target, "target", "", "target amount")
	cmd.Flags().StringVar(&deadline, "deadline", "", "target date YYYY-MM-DD")
	cmd.Flags().BoolVar(&clearDeadline, "clear-deadline", false, "remove the deadline")

	return cmd
}

func newGoalRemoveCommand(dataDir *string) *cobra.Command {
	return &cobra.Command{
		Use:   "rm <id>",
		Short: "Delete a goal",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(*dataDir)
			if err != nil {
				return err
			}
			s.store.RemoveGoal(args[0])
			return s.save()
		},
	}
}
