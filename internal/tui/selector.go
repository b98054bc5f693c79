// Package tui implements the month selector for the terminal.
package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/envelope-zero/budget-helpers/internal/selector"
)

type field int

const (
	monthField field = iota
	yearField
)

// SelectorModel owns the selected month and year and draws the selector.
//
// All changes go through a selector.Selector, which reports the new
// month and year back to the model.
type SelectorModel struct {
	month     selector.MonthName
	year      int
	err       error
	now       func() time.Time
	theme     Theme
	keys      KeyMap
	help      help.Model
	focus     field
	cursor    int
	quitting  bool
	cancelled bool
}

// NewSelectorModel creates a new selector for the month and year.
func NewSelectorModel(month selector.MonthName, year int, theme Theme) SelectorModel {
	m := SelectorModel{
		month: month,
		year:  year,
		now:   time.Now,
		theme: theme,
		keys:  DefaultKeyMap(),
		help:  help.New(),
	}
	m.cursor = m.selectedIndex()

	return m
}

// WithClock returns the model with a different source for the current time.
func (m SelectorModel) WithClock(now func() time.Time) SelectorModel {
	m.now = now
	m.cursor = m.selectedIndex()
	return m
}

// Selected returns the selected month and year.
func (m SelectorModel) Selected() (selector.MonthName, int) {
	return m.month, m.year
}

// Err returns the error of the last navigation, if any.
func (m SelectorModel) Err() error {
	return m.err
}

// Quitting reports whether the user closed the selector.
func (m SelectorModel) Quitting() bool {
	return m.quitting
}

// Cancelled reports whether the user closed the selector without
// accepting the shown month.
func (m SelectorModel) Cancelled() bool {
	return m.cancelled
}

// Init implements tea.Model.
func (m SelectorModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m SelectorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		// m is a copy, the selector writes the change to it
		s := selector.New(m.month, m.year, func(month selector.MonthName, year int) {
			m.month, m.year = month, year
		})

		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Cancel):
			m.quitting = true
			m.cancelled = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Previous):
			m.err = s.Previous()
			m.cursor = m.selectedIndex()

		case key.Matches(msg, m.keys.Next):
			m.err = s.Next()
			m.cursor = m.selectedIndex()

		case key.Matches(msg, m.keys.Switch):
			m.focus = (m.focus + 1) % 2
			m.cursor = m.selectedIndex()

		case key.Matches(msg, m.keys.Up):
			m.cursor = (m.cursor + m.optionCount() - 1) % m.optionCount()

		case key.Matches(msg, m.keys.Down):
			m.cursor = (m.cursor + 1) % m.optionCount()

		case key.Matches(msg, m.keys.Pick):
			m.err = m.pick(s)
		}

	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
	}

	return m, nil
}

func (m SelectorModel) pick(s selector.Selector) error {
	if m.focus == monthField {
		return s.SelectMonth(selector.Months()[m.cursor])
	}

	return s.SelectYear(m.view().Years[m.cursor].Label)
}

func (m SelectorModel) view() selector.View {
	return selector.New(m.month, m.year, nil).Render(m.now())
}

func (m SelectorModel) optionCount() int {
	if m.focus == monthField {
		return len(selector.Months())
	}

	return len(m.view().Years)
}

// selectedIndex returns the index of the selected option of the
// focused drop-down, or 0 if nothing is selected.
func (m SelectorModel) selectedIndex() int {
	options := m.view().Months
	if m.focus == yearField {
		options = m.view().Years
	}

	for i, o := range options {
		if o.Selected {
			return i
		}
	}

	return 0
}

// View renders the selector.
func (m SelectorModel) View() string {
	if m.quitting {
		return ""
	}

	v := m.view()

	title := lipgloss.JoinHorizontal(
		lipgloss.Center,
		m.theme.Arrow.Render("‹ "),
		m.theme.Title.Render(fmt.Sprintf("%s %d", v.Month, v.Year)),
		m.theme.Arrow.Render(" ›"),
	)

	months := m.renderOptions("Month", v.Months, m.focus == monthField)
	years := m.renderOptions("Year", v.Years, m.focus == yearField)

	sections := []string{
		title,
		"",
		lipgloss.JoinHorizontal(lipgloss.Top, months, " ", years),
	}

	if m.err != nil {
		sections = append(sections, "", m.theme.Error.Render(m.err.Error()))
	}

	sections = append(sections, "", m.theme.Help.Render(m.help.View(m.keys)))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// renderOptions renders one drop-down.
func (m SelectorModel) renderOptions(label string, options []selector.Option, focused bool) string {
	lines := make([]string, 0, len(options)+1)
	lines = append(lines, m.theme.Label.Render(label))

	for i, o := range options {
		prefix := "  "
		if focused && i == m.cursor {
			prefix = m.theme.Cursor.Render("> ")
		}

		style := m.theme.Option
		switch {
		case o.Selected:
			style = m.theme.Selected
		case focused && i == m.cursor:
			style = m.theme.Highlighted
		}

		lines = append(lines, prefix+style.Render(o.Label))
	}

	box := m.theme.Box
	if focused {
		box = m.theme.FocusedBox
	}

	return box.Render(strings.Join(lines, "\n"))
}
