package v1_test

import (
	"net/http"
	"strconv"
	"testing"
	"time"

	v1 "github.com/envelope-zero/budget-helpers/internal/controllers/v1"
	"github.com/envelope-zero/budget-helpers/internal/selector"
	"github.com/envelope-zero/budget-helpers/internal/types"
	"github.com/envelope-zero/budget-helpers/test"
	"github.com/stretchr/testify/assert"
)

func yearOf(y int) *int {
	return &y
}

func (suite *TestSuiteStandard) TestGetSelector() {
	recorder := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/selector?month=march&year=2024", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.Response[v1.Selector]
	test.DecodeResponse(suite.T(), &recorder, &response)

	suite.Require().NotNil(response.Data)
	suite.Assert().Nil(response.Error)

	s := response.Data
	suite.Assert().Equal(selector.March, s.Month)
	suite.Assert().Equal(2024, s.Year)

	suite.Require().Len(s.Months, 12)
	for i, o := range s.Months {
		suite.Assert().Equal(i == 2, o.Selected, o.Label)
	}

	now := time.Now().Year()
	suite.Require().Len(s.Years, 10)
	suite.Assert().Equal(strconv.Itoa(now-5), s.Years[0].Label)
	suite.Assert().Equal(strconv.Itoa(now+4), s.Years[9].Label)

	suite.Assert().Equal(&selector.Target{Month: selector.February, Year: 2024}, s.Previous)
	suite.Assert().Equal(&selector.Target{Month: selector.April, Year: 2024}, s.Next)

	suite.Assert().Equal("http://example.com/v1/selector?month=March&year=2024", s.Links.Self)
	suite.Assert().Equal("http://example.com/v1/selector?month=February&year=2024", s.Links.Previous)
	suite.Assert().Equal("http://example.com/v1/selector?month=April&year=2024", s.Links.Next)
}

func (suite *TestSuiteStandard) TestGetSelectorDefaults() {
	now := time.Now()

	recorder := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/selector", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.Response[v1.Selector]
	test.DecodeResponse(suite.T(), &recorder, &response)

	suite.Require().NotNil(response.Data)
	suite.Assert().Equal(selector.FromTime(now.Month()), response.Data.Month)
	suite.Assert().Equal(now.Year(), response.Data.Year)
}

func (suite *TestSuiteStandard) TestGetSelectorValue() {
	tests := []struct {
		name  string
		query string
		month selector.MonthName
		year  int
	}{
		{"Value", "?value=2024-03", selector.March, 2024},
		{"Value with spaces", "?value=%202019-11%20", selector.November, 2019},
		{"Value wins over month and year", "?value=2023-12&month=May&year=2020", selector.December, 2023},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			recorder := test.Request(t, http.MethodGet, "http://example.com/v1/selector"+tt.query, "")
			test.AssertHTTPStatus(t, &recorder, http.StatusOK)

			var response v1.Response[v1.Selector]
			test.DecodeResponse(t, &recorder, &response)

			if !assert.NotNil(t, response.Data) {
				return
			}
			assert.Equal(t, tt.month, response.Data.Month)
			assert.Equal(t, tt.year, response.Data.Year)
			assert.Equal(t, "http://example.com/v1/selector?month="+tt.month.String()+"&year="+strconv.Itoa(tt.year), response.Data.Links.Self)
		})
	}
}

func (suite *TestSuiteStandard) TestGetSelectorOutsideYearWindow() {
	recorder := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/selector?month=June&year=1900", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.Response[v1.Selector]
	test.DecodeResponse(suite.T(), &recorder, &response)

	suite.Require().NotNil(response.Data)
	for _, o := range response.Data.Years {
		suite.Assert().False(o.Selected, "no year must be selected when the year is outside the window")
	}
}

func (suite *TestSuiteStandard) TestGetSelectorErrors() {
	tests := []struct {
		name  string
		query string
		err   string
	}{
		{"Unknown month", "?month=Smarch&year=2024", "unknown month"},
		{"Invalid year", "?month=March&year=soon", "invalid year"},
		{"Invalid value", "?value=2024-13", "value must be a month in YYYY-MM format"},
		{"Value with name", "?value=March", "value must be a month in YYYY-MM format"},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			recorder := test.Request(t, http.MethodGet, "http://example.com/v1/selector"+tt.query, "")
			test.AssertHTTPStatus(t, &recorder, http.StatusBadRequest)

			var response v1.Response[v1.Selector]
			test.DecodeResponse(t, &recorder, &response)

			assert.Nil(t, response.Data)
			if assert.NotNil(t, response.Error) {
				assert.Contains(t, *response.Error, tt.err)
			}
		})
	}
}

func (suite *TestSuiteStandard) TestStep() {
	tests := []struct {
		name  string
		path  string
		month selector.MonthName
		year  int
		value string
	}{
		{"Previous", "/previous?month=May&year=2024", selector.April, 2024, "2024-04"},
		{"Previous from January", "/previous?month=January&year=2024", selector.December, 2023, "2023-12"},
		{"Next", "/next?month=May&year=2024", selector.June, 2024, "2024-06"},
		{"Next from December", "/next?month=December&year=2024", selector.January, 2025, "2025-01"},
		{"Lowercase month", "/next?month=december&year=2024", selector.January, 2025, "2025-01"},
		{"Next from value", "/next?value=2024-12", selector.January, 2025, "2025-01"},
		{"Previous from value", "/previous?value=2024-01", selector.December, 2023, "2023-12"},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			recorder := test.Request(t, http.MethodGet, "http://example.com/v1/selector"+tt.path, "")
			test.AssertHTTPStatus(t, &recorder, http.StatusOK)

			var response v1.Response[v1.Selection]
			test.DecodeResponse(t, &recorder, &response)

			if !assert.NotNil(t, response.Data) {
				return
			}
			assert.Equal(t, tt.month, response.Data.Month)
			assert.Equal(t, tt.year, response.Data.Year)
			assert.Equal(t, tt.value, response.Data.Value.String())
			assert.Equal(t, "http://example.com/v1/selector?month="+tt.month.String()+"&year="+strconv.Itoa(tt.year), response.Data.Links.Selector)
		})
	}
}

func (suite *TestSuiteStandard) TestStepUnknownMonth() {
	recorder := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/selector/next?month=Undecember&year=2024", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
	suite.Assert().Contains(test.DecodeError(suite.T(), recorder.Body.Bytes()), "unknown month")
}

func (suite *TestSuiteStandard) TestPick() {
	tests := []struct {
		name    string
		request v1.PickRequest
		month   selector.MonthName
		year    int
	}{
		{"Month", v1.PickRequest{Month: "March", Year: yearOf(2024), PickMonth: "July"}, selector.July, 2024},
		{"Year", v1.PickRequest{Month: "March", Year: yearOf(2024), PickYear: "2026"}, selector.March, 2026},
		{"Both", v1.PickRequest{Month: "March", Year: yearOf(2024), PickMonth: "october", PickYear: " 2021 "}, selector.October, 2021},
		{"Value", v1.PickRequest{Value: types.NewMonth(2023, time.March), PickMonth: "July"}, selector.July, 2023},
		{"Value wins over month and year", v1.PickRequest{Value: types.NewMonth(2023, time.March), Month: "May", Year: yearOf(2020), PickYear: "2022"}, selector.March, 2022},
		{"Year zero", v1.PickRequest{Month: "March", Year: yearOf(0), PickMonth: "July"}, selector.July, 0},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			recorder := test.Request(t, http.MethodPost, "http://example.com/v1/selector/pick", tt.request)
			test.AssertHTTPStatus(t, &recorder, http.StatusOK)

			var response v1.Response[v1.Selection]
			test.DecodeResponse(t, &recorder, &response)

			if !assert.NotNil(t, response.Data) {
				return
			}
			assert.Equal(t, tt.month, response.Data.Month)
			assert.Equal(t, tt.year, response.Data.Year)
		})
	}
}

func (suite *TestSuiteStandard) TestPickDefaults() {
	tests := []struct {
		name  string
		body  string
		month selector.MonthName
		year  int
	}{
		{"Missing year", `{ "month": "March", "pickMonth": "July" }`, selector.July, time.Now().Year()},
		{"Value as date", `{ "value": "2022-08-17", "pickMonth": "May" }`, selector.May, 2022},
		{"Value as RFC3339", `{ "value": "2021-02-03T10:00:00+01:00", "pickYear": "2025" }`, selector.February, 2025},
		{"Empty value", `{ "value": "", "month": "June", "year": 2020, "pickMonth": "April" }`, selector.April, 2020},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			recorder := test.Request(t, http.MethodPost, "http://example.com/v1/selector/pick", tt.body)
			test.AssertHTTPStatus(t, &recorder, http.StatusOK)

			var response v1.Response[v1.Selection]
			test.DecodeResponse(t, &recorder, &response)

			if !assert.NotNil(t, response.Data) {
				return
			}
			assert.Equal(t, tt.month, response.Data.Month)
			assert.Equal(t, tt.year, response.Data.Year)
		})
	}
}

func (suite *TestSuiteStandard) TestPickErrors() {
	tests := []struct {
		name string
		body any
		err  string
	}{
		{"Nothing to pick", v1.PickRequest{Month: "March", Year: yearOf(2024)}, "at least one of pickMonth and pickYear must be set"},
		{"Missing month", `{ "year": 2024, "pickYear": "2025" }`, "one of value and month must be set"},
		{"Invalid value", `{ "value": "soon", "pickYear": "2025" }`, "invalid or un-parseable data"},
		{"Unknown month", v1.PickRequest{Month: "Smarch", Year: yearOf(2024), PickYear: "2025"}, "unknown month"},
		{"Unknown picked month", v1.PickRequest{Month: "March", Year: yearOf(2024), PickMonth: "Smarch"}, "unknown month"},
		{"Invalid year label", v1.PickRequest{Month: "March", Year: yearOf(2024), PickYear: "next year"}, "invalid year"},
		{"Broken body", `{ "month": "March"`, "invalid or un-parseable data"},
		{"Empty body", "", "the request body must not be empty"},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			recorder := test.Request(t, http.MethodPost, "http://example.com/v1/selector/pick", tt.body)
			test.AssertHTTPStatus(t, &recorder, http.StatusBadRequest)
			assert.Contains(t, test.DecodeError(t, recorder.Body.Bytes()), tt.err)
		})
	}
}
