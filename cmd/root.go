// Package cmd implements the command line interface.
package cmd

import (
	"errors"
	"fmt"
	"time"

	"github.com/envelope-zero/budget-helpers/internal/config"
	"github.com/envelope-zero/budget-helpers/internal/selector"
	"github.com/envelope-zero/budget-helpers/internal/types"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var errYearWithValue = errors.New("--year cannot be combined with a month in YYYY-MM format")

type options struct {
	cfgFile string
	v       *viper.Viper
	cfg     config.Config
}

// NewRootCmd returns the root command with all subcommands.
func NewRootCmd() *cobra.Command {
	o := &options{v: config.New()}

	root := &cobra.Command{
		Use:   "budget-helpers",
		Short: "Month selection and budget calculations",
		Long: `budget-helpers selects months and calculates budget figures.

It serves an HTTP API, runs a month picker in the terminal and
performs single calculations on the command line.`,
		SilenceUsage:      true,
		PersistentPreRunE: o.init,
	}

	// Global flags
	root.PersistentFlags().StringVar(&o.cfgFile, "config", "", "config file (default: configuration is read from the environment only)")
	root.PersistentFlags().String("log-level", "", "log level (trace, debug, info, warn, error)")
	root.PersistentFlags().String("log-format", "", "log format (human, json)")

	// Bind flags to viper
	_ = o.v.BindPFlag("log_level", root.PersistentFlags().Lookup("log-level"))
	_ = o.v.BindPFlag("log_format", root.PersistentFlags().Lookup("log-format"))

	// Add commands
	root.AddCommand(serveCmd(o))
	root.AddCommand(pickCmd())
	root.AddCommand(monthCmd())
	root.AddCommand(validateCmd())
	root.AddCommand(versionCmd())

	return root
}

func (o *options) init(_ *cobra.Command, _ []string) error {
	if err := config.ReadFile(o.v, o.cfgFile); err != nil {
		return err
	}

	cfg, err := config.Load(o.v)
	if err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	config.SetupLogging(cfg)
	o.cfg = cfg

	return nil
}

// monthFlags adds the flags for the selected month and year to cmd.
func monthFlags(cmd *cobra.Command, month *string, year *int) {
	cmd.Flags().StringVar(month, "month", "", "selected month, e.g. March or 2024-03 (default: the current month)")
	cmd.Flags().IntVar(year, "year", 0, "selected year (default: the current year)")
}

// selection returns the month and year from the flags of cmd.
// Flags that are not set default to the month and year of now.
//
// A month in YYYY-MM format sets both month and year.
func selection(cmd *cobra.Command, month string, year int, now time.Time) (selector.MonthName, int, error) {
	if value, err := types.ParseMonth(month); err == nil {
		if cmd.Flags().Changed("year") {
			return "", 0, errYearWithValue
		}

		s := selector.FromMonth(value, nil)
		return s.Month, s.Year, nil
	}

	m := selector.FromTime(now.Month())
	if month != "" {
		parsed, err := selector.ParseMonthName(month)
		if err != nil {
			return "", 0, err
		}
		m = parsed
	}

	if !cmd.Flags().Changed("year") {
		year = now.Year()
	}

	return m, year, nil
}
