package v1

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/envelope-zero/budget-helpers/internal/httputil"
	"github.com/envelope-zero/budget-helpers/internal/metrics"
	"github.com/envelope-zero/budget-helpers/internal/selector"
	"github.com/envelope-zero/budget-helpers/internal/types"
	"github.com/gin-gonic/gin"
)

// RegisterSelectorRoutes registers the routes for the month selector with
// the RouterGroup that is passed.
func RegisterSelectorRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("", OptionsSelector)
		r.GET("", GetSelector)
		r.OPTIONS("/previous", OptionsSelector)
		r.GET("/previous", GetPrevious)
		r.OPTIONS("/next", OptionsSelector)
		r.GET("/next", GetNext)
		r.OPTIONS("/pick", OptionsPick)
		r.POST("/pick", Pick)
	}
}

// SelectorQuery is the selected month and year. Both default to the current date.
type SelectorQuery struct {
	Value string `form:"value" example:"2024-03"` // Month in YYYY-MM format. Takes precedence over month and year
	Month string `form:"month" example:"March"`   // Name of the month, case insensitive
	Year  string `form:"year" example:"2024"`     // Year
}

type Selector struct {
	selector.View
	Links SelectorLinks `json:"links"`
}

type SelectorLinks struct {
	Self     string `json:"self" example:"https://example.com/api/v1/selector?month=March&year=2024"`        // The selector itself
	Previous string `json:"previous" example:"https://example.com/api/v1/selector?month=February&year=2024"` // The selector for the previous month
	Next     string `json:"next" example:"https://example.com/api/v1/selector?month=April&year=2024"`        // The selector for the next month
}

// Selection is the month and year a navigation leads to.
type Selection struct {
	Month selector.MonthName `json:"month" example:"April"`                        // Name of the month
	Year  int                `json:"year" example:"2024"`                          // Year
	Value types.Month        `json:"value" swaggertype:"string" example:"2024-04"` // The month in YYYY-MM format
	Links SelectionLinks     `json:"links"`                                        // Links for the selection
}

type SelectionLinks struct {
	Selector string `json:"selector" example:"https://example.com/api/v1/selector?month=April&year=2024"` // The selector for the selection
}

// PickRequest picks a month, a year or both from the drop-downs of the selector.
//
// The selected month is either value or month and year.
type PickRequest struct {
	Value     types.Month `json:"value" swaggertype:"string" example:"2024-03"` // The selected month in YYYY-MM format. Takes precedence over month and year
	Month     string      `json:"month" example:"March"`                        // The selected month
	Year      *int        `json:"year" example:"2024"`                          // The selected year, defaults to the current year
	PickMonth string      `json:"pickMonth" example:"July"`                     // The month picked from the month drop-down
	PickYear  string      `json:"pickYear" example:"2026"`                      // The label picked from the year drop-down
}

func selectorLink(c *gin.Context, month selector.MonthName, year int) string {
	q := url.Values{}
	q.Set("month", month.String())
	q.Set("year", strconv.Itoa(year))

	return httputil.BaseURL(c) + "/v1/selector?" + q.Encode()
}

func newSelection(c *gin.Context, month selector.MonthName, year int) Selection {
	return Selection{
		Month: month,
		Year:  year,
		Value: types.NewMonth(year, month.Time()),
		Links: SelectionLinks{
			Selector: selectorLink(c, month, year),
		},
	}
}

// parseSelectorQuery returns the month and year from the query string.
func parseSelectorQuery(c *gin.Context, now time.Time) (selector.MonthName, int, error) {
	var q SelectorQuery
	if err := httputil.BindQuery(c, &q); err != nil {
		return "", 0, err
	}

	if q.Value != "" {
		m, err := types.ParseMonth(strings.TrimSpace(q.Value))
		if err != nil {
			return "", 0, fmt.Errorf("%w: %q", errInvalidValue, q.Value)
		}

		s := selector.FromMonth(m, nil)
		return s.Month, s.Year, nil
	}

	month := selector.FromTime(now.Month())
	if q.Month != "" {
		m, err := selector.ParseMonthName(q.Month)
		if err != nil {
			return "", 0, err
		}
		month = m
	}

	year := now.Year()
	if q.Year != "" {
		y, err := strconv.Atoi(strings.TrimSpace(q.Year))
		if err != nil {
			return "", 0, fmt.Errorf("%w: %q", selector.ErrInvalidYear, q.Year)
		}
		year = y
	}

	return month, year, nil
}

// pickSelection returns the selected month and year of a pick request.
func pickSelection(req PickRequest, now time.Time) (selector.MonthName, int, error) {
	if !req.Value.IsZero() {
		s := selector.FromMonth(req.Value, nil)
		return s.Month, s.Year, nil
	}

	if req.Month == "" {
		return "", 0, errMissingMonth
	}

	month, err := selector.ParseMonthName(req.Month)
	if err != nil {
		return "", 0, err
	}

	year := now.Year()
	if req.Year != nil {
		year = *req.Year
	}

	return month, year, nil
}

// OptionsSelector returns the allowed HTTP methods
//
//	@Summary		Allowed HTTP verbs
//	@Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
//	@Tags			Selector
//	@Success		204
//	@Router			/v1/selector [options]
//	@Router			/v1/selector/previous [options]
//	@Router			/v1/selector/next [options]
func OptionsSelector(c *gin.Context) {
	httputil.OptionsGet(c)
}

// OptionsPick returns the allowed HTTP methods
//
//	@Summary		Allowed HTTP verbs
//	@Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
//	@Tags			Selector
//	@Success		204
//	@Router			/v1/selector/pick [options]
func OptionsPick(c *gin.Context) {
	httputil.OptionsPost(c)
}

// GetSelector returns the selector for a month
//
//	@Summary		Get selector
//	@Description	Returns everything needed to draw the month selector. The year drop-down contains the five years before the current year up to four years after it.
//	@Tags			Selector
//	@Produce		json
//	@Success		200		{object}	Response[Selector]
//	@Failure		400		{object}	Response[Selector]
//	@Param			value	query		string	false	"Month in YYYY-MM format, takes precedence over month and year"
//	@Param			month	query		string	false	"Name of the month, defaults to the current month"
//	@Param			year	query		string	false	"Year, defaults to the current year"
//	@Router			/v1/selector [get]
func GetSelector(c *gin.Context) {
	now := time.Now()

	month, year, err := parseSelectorQuery(c, now)
	if err != nil {
		respond[Selector](c, nil, err)
		return
	}

	view := selector.New(month, year, nil).Render(now)
	s := Selector{
		View: view,
		Links: SelectorLinks{
			Self: selectorLink(c, month, year),
		},
	}

	if view.Previous != nil {
		s.Links.Previous = selectorLink(c, view.Previous.Month, view.Previous.Year)
	}

	if view.Next != nil {
		s.Links.Next = selectorLink(c, view.Next.Month, view.Next.Year)
	}

	respond(c, &s, nil)
}

// GetPrevious returns the month before the selected one
//
//	@Summary		Previous month
//	@Description	Returns the month before the selected one. January steps back to December of the previous year.
//	@Tags			Selector
//	@Produce		json
//	@Success		200		{object}	Response[Selection]
//	@Failure		400		{object}	Response[Selection]
//	@Param			value	query		string	false	"Month in YYYY-MM format, takes precedence over month and year"
//	@Param			month	query		string	false	"Name of the month, defaults to the current month"
//	@Param			year	query		string	false	"Year, defaults to the current year"
//	@Router			/v1/selector/previous [get]
func GetPrevious(c *gin.Context) {
	step(c, "previous", selector.Selector.Previous)
}

// GetNext returns the month after the selected one
//
//	@Summary		Next month
//	@Description	Returns the month after the selected one. December steps forward to January of the next year.
//	@Tags			Selector
//	@Produce		json
//	@Success		200		{object}	Response[Selection]
//	@Failure		400		{object}	Response[Selection]
//	@Param			value	query		string	false	"Month in YYYY-MM format, takes precedence over month and year"
//	@Param			month	query		string	false	"Name of the month, defaults to the current month"
//	@Param			year	query		string	false	"Year, defaults to the current year"
//	@Router			/v1/selector/next [get]
func GetNext(c *gin.Context) {
	step(c, "next", selector.Selector.Next)
}

func step(c *gin.Context, action string, navigate func(selector.Selector) error) {
	month, year, err := parseSelectorQuery(c, time.Now())
	if err != nil {
		respond[Selection](c, nil, err)
		return
	}

	var selection Selection
	s := selector.New(month, year, func(m selector.MonthName, y int) {
		selection = newSelection(c, m, y)
	})

	if err := navigate(s); err != nil {
		respond[Selection](c, nil, err)
		return
	}

	metrics.SelectorNavigations.WithLabelValues(action).Inc()
	respond(c, &selection, nil)
}

// Pick picks a month and/or a year
//
//	@Summary		Pick month or year
//	@Description	Picks a month from the month drop-down and/or a year from the year drop-down. When both are set, the month is picked first.
//	@Tags			Selector
//	@Accept			json
//	@Produce		json
//	@Success		200		{object}	Response[Selection]
//	@Failure		400		{object}	Response[Selection]
//	@Param			pick	body		PickRequest	true	"Selected and picked values"
//	@Router			/v1/selector/pick [post]
func Pick(c *gin.Context) {
	var req PickRequest
	if err := httputil.BindData(c, &req); err != nil {
		respond[Selection](c, nil, err)
		return
	}

	if req.PickMonth == "" && req.PickYear == "" {
		respond[Selection](c, nil, errNothingToPick)
		return
	}

	month, year, err := pickSelection(req, time.Now())
	if err != nil {
		respond[Selection](c, nil, err)
		return
	}

	// Every pick reports to this owner, the next pick is made
	// on a selector built from the reported values
	onChange := func(m selector.MonthName, y int) {
		month, year = m, y
	}

	if req.PickMonth != "" {
		picked, err := selector.ParseMonthName(req.PickMonth)
		if err == nil {
			err = selector.New(month, year, onChange).SelectMonth(picked)
		}

		if err != nil {
			respond[Selection](c, nil, err)
			return
		}
		metrics.SelectorNavigations.WithLabelValues("pick-month").Inc()
	}

	if req.PickYear != "" {
		if err := selector.New(month, year, onChange).SelectYear(req.PickYear); err != nil {
			respond[Selection](c, nil, err)
			return
		}
		metrics.SelectorNavigations.WithLabelValues("pick-year").Inc()
	}

	selection := newSelection(c, month, year)
	respond(c, &selection, nil)
}
