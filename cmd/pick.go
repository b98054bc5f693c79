package cmd

import (
	"errors"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/envelope-zero/budget-helpers/internal/selector"
	"github.com/envelope-zero/budget-helpers/internal/tui"
	"github.com/envelope-zero/budget-helpers/internal/types"
	"github.com/spf13/cobra"
)

var (
	errUnexpectedModel = errors.New("the terminal program returned an unexpected model")
	errPickCancelled   = errors.New("the month picker was cancelled")
)

func pickCmd() *cobra.Command {
	var month string
	var year int

	cmd := &cobra.Command{
		Use:   "pick",
		Short: "Pick a month in the terminal",
		Long: `Pick a month in the terminal.

The selector is drawn on stderr. When the picker is closed with q, the
selected month is printed to stdout in YYYY-MM format. Closing it with esc
or ctrl+c prints nothing and exits with an error.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			m, y, err := selection(cmd, month, year, time.Now())
			if err != nil {
				return err
			}

			p := tea.NewProgram(
				tui.NewSelectorModel(m, y, tui.Default),
				tea.WithContext(cmd.Context()),
				tea.WithInput(cmd.InOrStdin()),
				tea.WithOutput(cmd.ErrOrStderr()),
			)

			final, err := p.Run()
			if err != nil {
				return fmt.Errorf("could not run the month picker: %w", err)
			}

			model, ok := final.(tui.SelectorModel)
			if !ok {
				return errUnexpectedModel
			}

			value, err := pickedMonth(model)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), value)
			return nil
		},
	}

	monthFlags(cmd, &month, &year)

	return cmd
}

// pickedMonth returns the month the picker was closed on.
func pickedMonth(model tui.SelectorModel) (types.Month, error) {
	if model.Cancelled() {
		return types.Month{}, errPickCancelled
	}

	if err := model.Err(); err != nil {
		return types.Month{}, err
	}

	month, year := model.Selected()
	return selector.New(month, year, nil).Value()
}
