package cmd

import (
	"errors"
	"fmt"

	"github.com/envelope-zero/budget-helpers/internal/budget"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

var errBudgetInvalid = errors.New("the budget is invalid")

func validateCmd() *cobra.Command {
	var total, fixed, variable, savings string

	cmd := &cobra.Command{
		Use:     "validate",
		Short:   "Check that a budget adds up",
		Example: "  budget-helpers validate --total 2500 --fixed 1200 --variable 800 --savings 500",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var b budget.MonthlyBudget

			for _, f := range []struct {
				name   string
				value  string
				target *decimal.Decimal
			}{
				{"total", total, &b.TotalBudget},
				{"fixed", fixed, &b.FixedBudget},
				{"variable", variable, &b.VariableBudget},
				{"savings", savings, &b.SavingsBudget},
			} {
				d, err := decimal.NewFromString(f.value)
				if err != nil {
					return fmt.Errorf("--%s must be a number: %w", f.name, err)
				}
				*f.target = d
			}

			v := budget.ValidateBudget(b)
			if !v.Valid {
				for _, e := range v.Errors {
					fmt.Fprintln(cmd.OutOrStdout(), e)
				}
				return errBudgetInvalid
			}

			fmt.Fprintln(cmd.OutOrStdout(), "the budget is valid")
			return nil
		},
	}

	cmd.Flags().StringVar(&total, "total", "0", "total budget")
	cmd.Flags().StringVar(&fixed, "fixed", "0", "budget for fixed costs")
	cmd.Flags().StringVar(&variable, "variable", "0", "budget for variable costs")
	cmd.Flags().StringVar(&savings, "savings", "0", "budget for savings")

	return cmd
}
