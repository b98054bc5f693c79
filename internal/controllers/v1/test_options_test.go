package v1_test

import (
	"net/http"
	"testing"

	"github.com/envelope-zero/budget-helpers/test"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestOptionsHeaderResources() {
	optionsHeaderTests := []struct {
		path     string
		response string
	}{
		{"http://example.com/v1", "OPTIONS, GET"},
		{"http://example.com/v1/selector", "OPTIONS, GET"},
		{"http://example.com/v1/selector/previous", "OPTIONS, GET"},
		{"http://example.com/v1/selector/next", "OPTIONS, GET"},
		{"http://example.com/v1/selector/pick", "OPTIONS, POST"},
		{"http://example.com/v1/calculations", "OPTIONS, GET"},
		{"http://example.com/v1/calculations/summary", "OPTIONS, POST"},
		{"http://example.com/v1/calculations/total-spent", "OPTIONS, POST"},
		{"http://example.com/v1/calculations/remaining", "OPTIONS, POST"},
		{"http://example.com/v1/calculations/progress", "OPTIONS, POST"},
		{"http://example.com/v1/calculations/balance", "OPTIONS, POST"},
		{"http://example.com/v1/calculations/transaction-impact", "OPTIONS, POST"},
		{"http://example.com/v1/calculations/transactions", "OPTIONS, POST"},
		{"http://example.com/v1/calculations/spending-by-type", "OPTIONS, POST"},
		{"http://example.com/v1/calculations/budget-validation", "OPTIONS, POST"},
		{"http://example.com/v1/calculations/net-worth", "OPTIONS, POST"},
	}

	for _, tt := range optionsHeaderTests {
		suite.T().Run(tt.path, func(t *testing.T) {
			recorder := test.Request(t, http.MethodOptions, tt.path, "")

			assert.Equal(t, http.StatusNoContent, recorder.Code)
			assert.Equal(t, tt.response, recorder.Header().Get("allow"))
		})
	}
}
