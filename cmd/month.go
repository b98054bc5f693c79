package cmd

import (
	"fmt"
	"time"

	"github.com/envelope-zero/budget-helpers/internal/selector"
	"github.com/spf13/cobra"
)

func monthCmd() *cobra.Command {
	var month string
	var year int

	cmd := &cobra.Command{
		Use:       "month {next|previous}",
		Short:     "Print the month after or before the selected one",
		Example:   "  budget-helpers month next --month December --year 2024",
		ValidArgs: []string{"next", "previous"},
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, y, err := selection(cmd, month, year, time.Now())
			if err != nil {
				return err
			}

			s := selector.New(m, y, func(month selector.MonthName, year int) {
				fmt.Fprintf(cmd.OutOrStdout(), "%s %d\n", month, year)
			})

			if args[0] == "next" {
				return s.Next()
			}
			return s.Previous()
		},
	}

	monthFlags(cmd, &month, &year)

	return cmd
}
