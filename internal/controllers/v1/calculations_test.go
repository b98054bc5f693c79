package v1_test

import (
	"net/http"
	"testing"

	"github.com/envelope-zero/budget-helpers/internal/budget"
	v1 "github.com/envelope-zero/budget-helpers/internal/controllers/v1"
	"github.com/envelope-zero/budget-helpers/test"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

var categories = []budget.Category{
	{Name: "Rent", Type: budget.SpendingFixed, BudgetAmount: d("1000"), Spent: d("1000")},
	{Name: "Groceries", Type: budget.SpendingVariable, BudgetAmount: d("400"), Spent: d("100")},
	{Name: "Going out", Type: budget.SpendingVariable, BudgetAmount: d("0"), Spent: d("35.50")},
	{Name: "Emergency fund", Type: budget.SpendingSavings, BudgetAmount: d("300"), Spent: d("300")},
}

// amount posts body to the calculation endpoint at path and returns the amount.
func amount(t *testing.T, path string, body any) decimal.Decimal {
	recorder := test.Request(t, http.MethodPost, "http://example.com/v1/calculations/"+path, body)
	test.AssertHTTPStatus(t, &recorder, http.StatusOK)

	var response v1.Response[v1.Amount]
	test.DecodeResponse(t, &recorder, &response)
	require.NotNil(t, response.Data)
	assert.Nil(t, response.Error)

	return response.Data.Amount
}

func (suite *TestSuiteStandard) TestAmounts() {
	tests := []struct {
		name string
		path string
		body any
		want string
	}{
		{"Total spent", "total-spent", v1.CategoriesRequest{Categories: categories}, "1435.5"},
		{"Total spent without categories", "total-spent", `{}`, "0"},
		{"Remaining", "remaining", v1.RemainingRequest{TotalBudget: d("2000"), TotalSpent: d("1435.5")}, "564.5"},
		{"Remaining overspent", "remaining", `{ "totalBudget": 100, "totalSpent": "150.25" }`, "-50.25"},
		{"Balance", "balance", v1.AccountsRequest{Accounts: []budget.Account{{Name: "Checking", Balance: d("1200.50")}, {Name: "Credit card", Balance: d("-300.25")}}}, "900.25"},
		{"Net worth", "net-worth", v1.NetWorthRequest{Assets: d("10000"), Debts: d("3000")}, "7000"},
		{"Negative net worth", "net-worth", `{ "assets": "1000", "debts": "1500.5" }`, "-500.5"},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			got := amount(t, tt.path, tt.body)
			assert.True(t, d(tt.want).Equal(got), "expected %s, got %s", tt.want, got)
		})
	}
}

func (suite *TestSuiteStandard) TestProgress() {
	tests := []struct {
		name     string
		query    string
		names    []string
		progress []int
	}{
		{"All", "", []string{"Rent", "Groceries", "Going out", "Emergency fund"}, []int{100, 25, 0, 100}},
		{"Glob", "?category=G*", []string{"Groceries", "Going out"}, []int{25, 0}},
		{"Exact", "?category=Rent", []string{"Rent"}, []int{100}},
		{"No match", "?category=Car*", []string{}, []int{}},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			recorder := test.Request(t, http.MethodPost, "http://example.com/v1/calculations/progress"+tt.query, v1.CategoriesRequest{Categories: categories})
			test.AssertHTTPStatus(t, &recorder, http.StatusOK)

			var response v1.Response[[]budget.CategoryProgressEntry]
			test.DecodeResponse(t, &recorder, &response)
			require.NotNil(t, response.Data)

			names := []string{}
			progress := []int{}
			for _, e := range *response.Data {
				names = append(names, e.Name)
				progress = append(progress, e.Progress)
			}

			assert.Equal(t, tt.names, names)
			assert.Equal(t, tt.progress, progress)
		})
	}
}

func (suite *TestSuiteStandard) TestTransactionImpact() {
	tests := []struct {
		name     string
		request  v1.TransactionImpactRequest
		account  string
		category string
		budget   string
	}{
		{"Income", v1.TransactionImpactRequest{Transaction: budget.Transaction{Type: budget.TransactionIncome, Amount: d("100")}}, "100", "0", "100"},
		{"Income reversed", v1.TransactionImpactRequest{Transaction: budget.Transaction{Type: budget.TransactionIncome, Amount: d("100")}, Reverse: true}, "-100", "0", "-100"},
		{"Expense", v1.TransactionImpactRequest{Transaction: budget.Transaction{Type: budget.TransactionExpense, Amount: d("50")}}, "-50", "50", "0"},
		{"Savings", v1.TransactionImpactRequest{Transaction: budget.Transaction{Type: budget.TransactionSavings, Amount: d("30")}}, "-30", "30", "0"},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			recorder := test.Request(t, http.MethodPost, "http://example.com/v1/calculations/transaction-impact", tt.request)
			test.AssertHTTPStatus(t, &recorder, http.StatusOK)

			var response v1.Response[budget.Impact]
			test.DecodeResponse(t, &recorder, &response)
			require.NotNil(t, response.Data)

			assert.True(t, d(tt.account).Equal(response.Data.AccountChange), "account change is %s", response.Data.AccountChange)
			assert.True(t, d(tt.category).Equal(response.Data.CategoryChange), "category change is %s", response.Data.CategoryChange)
			assert.True(t, d(tt.budget).Equal(response.Data.BudgetChange), "budget change is %s", response.Data.BudgetChange)
		})
	}
}

func (suite *TestSuiteStandard) TestTransactionImpactUnknownType() {
	recorder := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/calculations/transaction-impact", `{ "transaction": { "type": "refund", "amount": "10" } }`)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)

	var response v1.Response[budget.Impact]
	test.DecodeResponse(suite.T(), &recorder, &response)

	suite.Require().NotNil(response.Error)
	suite.Assert().Contains(*response.Error, "unknown transaction type")

	suite.Require().NotNil(response.Data)
	suite.Assert().True(response.Data.AccountChange.IsZero())
	suite.Assert().True(response.Data.CategoryChange.IsZero())
	suite.Assert().True(response.Data.BudgetChange.IsZero())
}

func (suite *TestSuiteStandard) TestTransactions() {
	request := v1.TransactionsRequest{
		Transactions: []budget.Transaction{
			{Type: budget.TransactionIncome, Amount: d("2000")},
			{Type: budget.TransactionExpense, Amount: d("120.50")},
			{Type: budget.TransactionSavings, Amount: d("300")},
		},
	}

	recorder := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/calculations/transactions", request)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.Response[budget.Impact]
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Require().NotNil(response.Data)

	suite.Assert().True(d("1579.5").Equal(response.Data.AccountChange), response.Data.AccountChange.String())
	suite.Assert().True(d("420.5").Equal(response.Data.CategoryChange), response.Data.CategoryChange.String())
	suite.Assert().True(d("2000").Equal(response.Data.BudgetChange), response.Data.BudgetChange.String())

	// One unknown transaction is skipped and reported
	request.Transactions = append(request.Transactions, budget.Transaction{Type: "transfer", Amount: d("999")})
	recorder = test.Request(suite.T(), http.MethodPost, "http://example.com/v1/calculations/transactions", request)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)

	response = v1.Response[budget.Impact]{}
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Require().NotNil(response.Error)
	suite.Assert().Contains(*response.Error, "transaction 3")
	suite.Require().NotNil(response.Data)
	suite.Assert().True(d("1579.5").Equal(response.Data.AccountChange), response.Data.AccountChange.String())
}

func (suite *TestSuiteStandard) TestSpendingByType() {
	recorder := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/calculations/spending-by-type", v1.CategoriesRequest{Categories: categories})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.Response[budget.Spending]
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Require().NotNil(response.Data)

	suite.Assert().True(d("1000").Equal(response.Data.Fixed), response.Data.Fixed.String())
	suite.Assert().True(d("135.5").Equal(response.Data.Variable), response.Data.Variable.String())
	suite.Assert().True(d("300").Equal(response.Data.Savings), response.Data.Savings.String())
}

func (suite *TestSuiteStandard) TestBudgetValidation() {
	tests := []struct {
		name   string
		budget budget.MonthlyBudget
		valid  bool
		errors int
	}{
		{"Valid", budget.MonthlyBudget{TotalBudget: d("100"), FixedBudget: d("40"), VariableBudget: d("40"), SavingsBudget: d("20")}, true, 0},
		{"Invalid", budget.MonthlyBudget{TotalBudget: d("100"), FixedBudget: d("40"), VariableBudget: d("40"), SavingsBudget: d("10")}, false, 1},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			recorder := test.Request(t, http.MethodPost, "http://example.com/v1/calculations/budget-validation", tt.budget)
			test.AssertHTTPStatus(t, &recorder, http.StatusOK)

			var response v1.Response[budget.Validation]
			test.DecodeResponse(t, &recorder, &response)
			require.NotNil(t, response.Data)

			assert.Equal(t, tt.valid, response.Data.Valid)
			assert.Len(t, response.Data.Errors, tt.errors)
		})
	}
}

func (suite *TestSuiteStandard) TestSummary() {
	overview := budget.Overview{
		Budget: budget.MonthlyBudget{
			TotalBudget:    d("2000"),
			FixedBudget:    d("1000"),
			VariableBudget: d("700"),
			SavingsBudget:  d("300"),
		},
		Categories: categories,
		Accounts: []budget.Account{
			{Name: "Checking", Balance: d("3200")},
		},
		Debts: d("5000"),
	}

	recorder := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/calculations/summary", overview)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.Response[budget.Summary]
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Require().NotNil(response.Data)

	s := response.Data
	suite.Assert().True(d("1435.5").Equal(s.TotalSpent), s.TotalSpent.String())
	suite.Assert().True(d("564.5").Equal(s.Remaining), s.Remaining.String())
	suite.Assert().True(d("3200").Equal(s.TotalBalance), s.TotalBalance.String())
	suite.Assert().True(d("-1800").Equal(s.NetWorth), s.NetWorth.String())
	suite.Assert().Len(s.Progress, 4)
	suite.Assert().True(s.Validation.Valid)
}

func (suite *TestSuiteStandard) TestCalculationErrors() {
	tests := []struct {
		name string
		path string
		body string
		err  string
	}{
		{"Empty body", "net-worth", "", "the request body must not be empty"},
		{"Broken JSON", "summary", `{ "budget": `, "invalid or un-parseable data"},
		{"Wrong type", "total-spent", `{ "categories": "many" }`, "invalid or un-parseable data"},
		{"Not a number", "net-worth", `{ "assets": "lots" }`, "invalid or un-parseable data"},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			recorder := test.Request(t, http.MethodPost, "http://example.com/v1/calculations/"+tt.path, tt.body)
			test.AssertHTTPStatus(t, &recorder, http.StatusBadRequest)
			assert.Contains(t, test.DecodeError(t, recorder.Body.Bytes()), tt.err)
		})
	}
}

func (suite *TestSuiteStandard) TestCalculationWrongMethod() {
	recorder := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/calculations/net-worth", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusMethodNotAllowed)
}
