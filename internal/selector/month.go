package selector

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"golang.org/x/exp/slices"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var (
	ErrUnknownMonth = errors.New("unknown month")
	ErrInvalidYear  = errors.New("invalid year")
)

// MonthName is the English name of a month, e.g. "March".
type MonthName string

const (
	January   MonthName = "January"
	February  MonthName = "February"
	March     MonthName = "March"
	April     MonthName = "April"
	May       MonthName = "May"
	June      MonthName = "June"
	July      MonthName = "July"
	August    MonthName = "August"
	September MonthName = "September"
	October   MonthName = "October"
	November  MonthName = "November"
	December  MonthName = "December"
)

var months = [12]MonthName{
	January, February, March, April, May, June,
	July, August, September, October, November, December,
}

// Months returns the twelve month names in calendar order.
//
// The array is returned by value, callers cannot modify the canonical order.
func Months() [12]MonthName {
	return months
}

// ParseMonthName parses a month name in any letter case.
func ParseMonthName(s string) (MonthName, error) {
	// A Caser keeps state, so every call gets its own
	m := MonthName(cases.Title(language.English).String(strings.TrimSpace(s)))
	if m.Index() < 0 {
		return "", fmt.Errorf("%w: %q", ErrUnknownMonth, s)
	}

	return m, nil
}

// FromTime returns the name for a time.Month.
func FromTime(m time.Month) MonthName {
	if m < time.January || m > time.December {
		return ""
	}

	return months[m-1]
}

// Index returns the position of the month in the calendar, starting at 0.
// It is -1 for names that are not one of the twelve canonical names.
func (m MonthName) Index() int {
	return slices.Index(months[:], m)
}

// Valid reports whether m is one of the twelve canonical names.
func (m MonthName) Valid() bool {
	return m.Index() >= 0
}

// Time returns the time.Month for m, or 0 if m is not valid.
func (m MonthName) Time() time.Month {
	return time.Month(m.Index() + 1)
}

func (m MonthName) String() string {
	return string(m)
}

// Previous returns the month before month in year. January wraps
// to December of the previous year.
func Previous(month MonthName, year int) (MonthName, int, error) {
	i := month.Index()
	if i < 0 {
		return "", 0, fmt.Errorf("%w: %q", ErrUnknownMonth, month)
	}

	if i == 0 {
		return months[len(months)-1], year - 1, nil
	}

	return months[i-1], year, nil
}

// Next returns the month after month in year. December wraps
// to January of the next year.
func Next(month MonthName, year int) (MonthName, int, error) {
	i := month.Index()
	if i < 0 {
		return "", 0, fmt.Errorf("%w: %q", ErrUnknownMonth, month)
	}

	if i == len(months)-1 {
		return months[0], year + 1, nil
	}

	return months[i+1], year, nil
}
