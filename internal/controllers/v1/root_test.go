package v1_test

import (
	"net/http"

	v1 "github.com/envelope-zero/budget-helpers/internal/controllers/v1"
	"github.com/envelope-zero/budget-helpers/test"
)

func (suite *TestSuiteStandard) TestRoot() {
	recorder := test.Request(suite.T(), http.MethodGet, "http://example.com/v1", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.RootResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	suite.Assert().Equal(v1.Links{
		Selector:     "http://example.com/v1/selector",
		Calculations: "http://example.com/v1/calculations",
	}, response.Links)
}

func (suite *TestSuiteStandard) TestCalculationLinks() {
	recorder := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/calculations", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.CalculationsResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	suite.Assert().Equal("http://example.com/v1/calculations/summary", response.Links.Summary)
	suite.Assert().Equal("http://example.com/v1/calculations/transaction-impact", response.Links.TransactionImpact)
	suite.Assert().Equal("http://example.com/v1/calculations/net-worth", response.Links.NetWorth)
}
