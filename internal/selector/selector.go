// Package selector implements the month and year picker.
//
// A Selector does not own the month and year it shows. It is built from the
// values its owner passes in and reports every navigation to the owner's
// ChangeFunc. The owner then builds a new Selector from the new values.
package selector

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/envelope-zero/budget-helpers/internal/types"
)

// The year window starts yearsBefore years before the current year
// and contains windowSize years.
const (
	yearsBefore = 5
	windowSize  = 10
)

// ChangeFunc receives the month and year that result from a navigation.
type ChangeFunc func(month MonthName, year int)

// Selector is the month and year picker.
type Selector struct {
	Month         MonthName
	Year          int
	OnMonthChange ChangeFunc
}

// New returns a Selector for the given month and year.
func New(month MonthName, year int, onChange ChangeFunc) Selector {
	return Selector{
		Month:         month,
		Year:          year,
		OnMonthChange: onChange,
	}
}

// FromMonth returns a Selector for a types.Month.
func FromMonth(m types.Month, onChange ChangeFunc) Selector {
	return New(FromTime(m.Month()), m.Year(), onChange)
}

// Value returns the selected month as types.Month.
func (s Selector) Value() (types.Month, error) {
	if !s.Month.Valid() {
		return types.Month{}, fmt.Errorf("%w: %q", ErrUnknownMonth, s.Month)
	}

	return types.NewMonth(s.Year, s.Month.Time()), nil
}

// Previous reports the month before the selected one.
func (s Selector) Previous() error {
	month, year, err := Previous(s.Month, s.Year)
	if err != nil {
		return err
	}

	s.change(month, year)
	return nil
}

// Next reports the month after the selected one.
func (s Selector) Next() error {
	month, year, err := Next(s.Month, s.Year)
	if err != nil {
		return err
	}

	s.change(month, year)
	return nil
}

// SelectMonth reports month with the selected year.
func (s Selector) SelectMonth(month MonthName) error {
	if !month.Valid() {
		return fmt.Errorf("%w: %q", ErrUnknownMonth, month)
	}

	s.change(month, s.Year)
	return nil
}

// SelectYear reports the year in label with the selected month.
func (s Selector) SelectYear(label string) error {
	year, err := strconv.Atoi(strings.TrimSpace(label))
	if err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidYear, label)
	}

	s.change(s.Month, year)
	return nil
}

func (s Selector) change(month MonthName, year int) {
	if s.OnMonthChange != nil {
		s.OnMonthChange(month, year)
	}
}

// YearWindow returns the years that can be picked at the time now:
// five years before the year of now up to four years after it.
func YearWindow(now time.Time) []int {
	first := now.Year() - yearsBefore

	years := make([]int, 0, windowSize)
	for i := 0; i < windowSize; i++ {
		years = append(years, first+i)
	}

	return years
}

// Option is one entry of a drop-down.
type Option struct {
	Label    string `json:"label" example:"March"`   // Text shown for the option
	Selected bool   `json:"selected" example:"true"` // Is this the selected option?
}

// Target is a month in a year that a navigation leads to.
type Target struct {
	Month MonthName `json:"month" example:"April"` // Name of the month
	Year  int       `json:"year" example:"2024"`   // Year
}

// View is everything needed to draw the selector.
type View struct {
	Month    MonthName `json:"month" example:"March"` // The selected month
	Year     int       `json:"year" example:"2024"`   // The selected year
	Months   []Option  `json:"months"`                // The month drop-down
	Years    []Option  `json:"years"`                 // The year drop-down
	Previous *Target   `json:"previous"`              // Where the back control leads. null for an unknown month
	Next     *Target   `json:"next"`                  // Where the forward control leads. null for an unknown month
}

// Render returns the View of the selector at the time now.
//
// The year window is computed from now on every call.
func (s Selector) Render(now time.Time) View {
	v := View{
		Month:  s.Month,
		Year:   s.Year,
		Months: make([]Option, 0, len(months)),
		Years:  make([]Option, 0, windowSize),
	}

	for _, m := range months {
		v.Months = append(v.Months, Option{Label: m.String(), Selected: m == s.Month})
	}

	for _, y := range YearWindow(now) {
		v.Years = append(v.Years, Option{Label: strconv.Itoa(y), Selected: y == s.Year})
	}

	if month, year, err := Previous(s.Month, s.Year); err == nil {
		v.Previous = &Target{Month: month, Year: year}
	}

	if month, year, err := Next(s.Month, s.Year); err == nil {
		v.Next = &Target{Month: month, Year: year}
	}

	return v
}
