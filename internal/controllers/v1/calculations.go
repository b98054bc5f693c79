package v1

import (
	"net/http"

	"github.com/envelope-zero/budget-helpers/internal/budget"
	"github.com/envelope-zero/budget-helpers/internal/httputil"
	"github.com/envelope-zero/budget-helpers/internal/metrics"
	"github.com/gin-gonic/gin"
	"github.com/ryanuber/go-glob"
	"github.com/shopspring/decimal"
)

// RegisterCalculationRoutes registers the routes for calculations with
// the RouterGroup that is passed.
func RegisterCalculationRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsCalculations)
	r.GET("", GetCalculations)

	for path, handler := range map[string]gin.HandlerFunc{
		"/summary":            Summary,
		"/total-spent":        TotalSpent,
		"/remaining":          Remaining,
		"/progress":           Progress,
		"/balance":            Balance,
		"/transaction-impact": TransactionImpact,
		"/transactions":       Transactions,
		"/spending-by-type":   SpendingByType,
		"/budget-validation":  ValidateBudget,
		"/net-worth":          NetWorth,
	} {
		r.OPTIONS(path, OptionsCalculation)
		r.POST(path, handler)
	}
}

type CalculationsResponse struct {
	Links CalculationLinks `json:"links"`
}

type CalculationLinks struct {
	Summary           string `json:"summary" example:"https://example.com/api/v1/calculations/summary"`                      // Summary of a month
	TotalSpent        string `json:"totalSpent" example:"https://example.com/api/v1/calculations/total-spent"`               // Sum spent over categories
	Remaining         string `json:"remaining" example:"https://example.com/api/v1/calculations/remaining"`                  // Budget minus spent
	Progress          string `json:"progress" example:"https://example.com/api/v1/calculations/progress"`                    // Progress per category
	Balance           string `json:"balance" example:"https://example.com/api/v1/calculations/balance"`                      // Sum of account balances
	TransactionImpact string `json:"transactionImpact" example:"https://example.com/api/v1/calculations/transaction-impact"` // Impact of a single transaction
	Transactions      string `json:"transactions" example:"https://example.com/api/v1/calculations/transactions"`            // Combined impact of transactions
	SpendingByType    string `json:"spendingByType" example:"https://example.com/api/v1/calculations/spending-by-type"`      // Spent per spending type
	BudgetValidation  string `json:"budgetValidation" example:"https://example.com/api/v1/calculations/budget-validation"`   // Consistency check for a budget
	NetWorth          string `json:"netWorth" example:"https://example.com/api/v1/calculations/net-worth"`                   // Assets minus debts
}

type CategoriesRequest struct {
	Categories []budget.Category `json:"categories"` // The categories
}

type RemainingRequest struct {
	TotalBudget decimal.Decimal `json:"totalBudget" example:"2500"` // The budget
	TotalSpent  decimal.Decimal `json:"totalSpent" example:"1850"`  // The amount spent
}

type AccountsRequest struct {
	Accounts []budget.Account `json:"accounts"` // The accounts
}

type TransactionImpactRequest struct {
	Transaction budget.Transaction `json:"transaction"`             // The transaction
	Reverse     bool               `json:"reverse" example:"false"` // Calculate the impact of undoing the transaction
}

type TransactionsRequest struct {
	Transactions []budget.Transaction `json:"transactions"`            // The transactions
	Reverse      bool                 `json:"reverse" example:"false"` // Calculate the impact of undoing the transactions
}

type NetWorthRequest struct {
	Assets decimal.Decimal `json:"assets" example:"10000"` // Sum of all assets
	Debts  decimal.Decimal `json:"debts" example:"3000"`   // Sum of all debts
}

// Amount is a single calculated amount.
type Amount struct {
	Amount decimal.Decimal `json:"amount" example:"150.25"` // The result of the calculation
}

// calculate binds the request body to a Req, runs f with it and writes the result.
func calculate[Req, Res any](c *gin.Context, name string, f func(Req) (Res, error)) {
	var req Req
	if err := httputil.BindData(c, &req); err != nil {
		metrics.Calculations.WithLabelValues(name, "invalid").Inc()
		respond[Res](c, nil, err)
		return
	}

	res, err := f(req)
	if err != nil {
		metrics.Calculations.WithLabelValues(name, "error").Inc()
		respond(c, &res, err)
		return
	}

	metrics.Calculations.WithLabelValues(name, "success").Inc()
	respond(c, &res, nil)
}

// GetCalculations returns the link list for calculations
//
//	@Summary		Calculations
//	@Description	Returns links to all calculation endpoints
//	@Tags			Calculations
//	@Success		200	{object}	CalculationsResponse
//	@Router			/v1/calculations [get]
func GetCalculations(c *gin.Context) {
	url := httputil.BaseURL(c) + "/v1/calculations"

	c.JSON(http.StatusOK, CalculationsResponse{
		Links: CalculationLinks{
			Summary:           url + "/summary",
			TotalSpent:        url + "/total-spent",
			Remaining:         url + "/remaining",
			Progress:          url + "/progress",
			Balance:           url + "/balance",
			TransactionImpact: url + "/transaction-impact",
			Transactions:      url + "/transactions",
			SpendingByType:    url + "/spending-by-type",
			BudgetValidation:  url + "/budget-validation",
			NetWorth:          url + "/net-worth",
		},
	})
}

// OptionsCalculations returns the allowed HTTP methods
//
//	@Summary		Allowed HTTP verbs
//	@Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
//	@Tags			Calculations
//	@Success		204
//	@Router			/v1/calculations [options]
func OptionsCalculations(c *gin.Context) {
	httputil.OptionsGet(c)
}

// OptionsCalculation returns the allowed HTTP methods
//
//	@Summary		Allowed HTTP verbs
//	@Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
//	@Tags			Calculations
//	@Success		204
//	@Router			/v1/calculations/summary [options]
//	@Router			/v1/calculations/total-spent [options]
//	@Router			/v1/calculations/remaining [options]
//	@Router			/v1/calculations/progress [options]
//	@Router			/v1/calculations/balance [options]
//	@Router			/v1/calculations/transaction-impact [options]
//	@Router			/v1/calculations/transactions [options]
//	@Router			/v1/calculations/spending-by-type [options]
//	@Router			/v1/calculations/budget-validation [options]
//	@Router			/v1/calculations/net-worth [options]
func OptionsCalculation(c *gin.Context) {
	httputil.OptionsPost(c)
}

// Summary calculates the summary of a month
//
//	@Summary		Summary
//	@Description	Calculates all values for one month at once
//	@Tags			Calculations
//	@Accept			json
//	@Produce		json
//	@Success		200			{object}	Response[budget.Summary]
//	@Failure		400			{object}	Response[budget.Summary]
//	@Param			overview	body		budget.Overview	true	"Everything known about the month"
//	@Router			/v1/calculations/summary [post]
func Summary(c *gin.Context) {
	calculate(c, "summary", func(o budget.Overview) (budget.Summary, error) {
		return budget.Summarize(o), nil
	})
}

// TotalSpent calculates the amount spent
//
//	@Summary		Total spent
//	@Description	Sums up the amount spent over all categories
//	@Tags			Calculations
//	@Accept			json
//	@Produce		json
//	@Success		200			{object}	Response[Amount]
//	@Failure		400			{object}	Response[Amount]
//	@Param			categories	body		CategoriesRequest	true	"Categories"
//	@Router			/v1/calculations/total-spent [post]
func TotalSpent(c *gin.Context) {
	calculate(c, "total-spent", func(r CategoriesRequest) (Amount, error) {
		return Amount{Amount: budget.TotalSpent(r.Categories)}, nil
	})
}

// Remaining calculates the remaining budget
//
//	@Summary		Remaining budget
//	@Description	Subtracts the amount spent from the budget. The result is negative when more was spent than budgeted.
//	@Tags			Calculations
//	@Accept			json
//	@Produce		json
//	@Success		200			{object}	Response[Amount]
//	@Failure		400			{object}	Response[Amount]
//	@Param			remaining	body		RemainingRequest	true	"Budget and amount spent"
//	@Router			/v1/calculations/remaining [post]
func Remaining(c *gin.Context) {
	calculate(c, "remaining", func(r RemainingRequest) (Amount, error) {
		return Amount{Amount: budget.RemainingBudget(r.TotalBudget, r.TotalSpent)}, nil
	})
}

// Progress calculates the progress per category
//
//	@Summary		Category progress
//	@Description	Calculates the percentage of the budget spent for every category. Categories without a positive budget have a progress of 0.
//	@Tags			Calculations
//	@Accept			json
//	@Produce		json
//	@Success		200			{object}	Response[[]budget.CategoryProgressEntry]
//	@Failure		400			{object}	Response[[]budget.CategoryProgressEntry]
//	@Param			categories	body		CategoriesRequest	true	"Categories"
//	@Param			category	query		string				false	"Only include categories with a matching name. Supports * as wildcard"
//	@Router			/v1/calculations/progress [post]
func Progress(c *gin.Context) {
	pattern := c.Query("category")

	calculate(c, "progress", func(r CategoriesRequest) ([]budget.CategoryProgressEntry, error) {
		if pattern == "" {
			return budget.ProgressByCategory(r.Categories), nil
		}

		matching := make([]budget.Category, 0, len(r.Categories))
		for _, category := range r.Categories {
			if glob.Glob(pattern, category.Name) {
				matching = append(matching, category)
			}
		}

		return budget.ProgressByCategory(matching), nil
	})
}

// Balance calculates the total balance
//
//	@Summary		Total balance
//	@Description	Sums up the balances of all accounts
//	@Tags			Calculations
//	@Accept			json
//	@Produce		json
//	@Success		200			{object}	Response[Amount]
//	@Failure		400			{object}	Response[Amount]
//	@Param			accounts	body		AccountsRequest	true	"Accounts"
//	@Router			/v1/calculations/balance [post]
func Balance(c *gin.Context) {
	calculate(c, "balance", func(r AccountsRequest) (Amount, error) {
		return Amount{Amount: budget.TotalBalance(r.Accounts)}, nil
	})
}

// TransactionImpact calculates the impact of a transaction
//
//	@Summary		Transaction impact
//	@Description	Calculates how a transaction changes account balances, category spending and the budget. Unknown transaction types have no impact and return an error.
//	@Tags			Calculations
//	@Accept			json
//	@Produce		json
//	@Success		200			{object}	Response[budget.Impact]
//	@Failure		400			{object}	Response[budget.Impact]
//	@Param			transaction	body		TransactionImpactRequest	true	"Transaction"
//	@Router			/v1/calculations/transaction-impact [post]
func TransactionImpact(c *gin.Context) {
	calculate(c, "transaction-impact", func(r TransactionImpactRequest) (budget.Impact, error) {
		return budget.TransactionImpact(r.Transaction, r.Reverse)
	})
}

// Transactions calculates the combined impact of transactions
//
//	@Summary		Combined transaction impact
//	@Description	Calculates the combined impact of a list of transactions. Transactions with an unknown type are skipped and reported in the error, the data contains the impact of all other transactions.
//	@Tags			Calculations
//	@Accept			json
//	@Produce		json
//	@Success		200				{object}	Response[budget.Impact]
//	@Failure		400				{object}	Response[budget.Impact]
//	@Param			transactions	body		TransactionsRequest	true	"Transactions"
//	@Router			/v1/calculations/transactions [post]
func Transactions(c *gin.Context) {
	calculate(c, "transactions", func(r TransactionsRequest) (budget.Impact, error) {
		return budget.ApplyTransactions(r.Transactions, r.Reverse)
	})
}

// SpendingByType calculates the amount spent per spending type
//
//	@Summary		Spending by type
//	@Description	Sums up the amount spent per spending type. Categories with an unknown type are not counted.
//	@Tags			Calculations
//	@Accept			json
//	@Produce		json
//	@Success		200			{object}	Response[budget.Spending]
//	@Failure		400			{object}	Response[budget.Spending]
//	@Param			categories	body		CategoriesRequest	true	"Categories"
//	@Router			/v1/calculations/spending-by-type [post]
func SpendingByType(c *gin.Context) {
	calculate(c, "spending-by-type", func(r CategoriesRequest) (budget.Spending, error) {
		return budget.SpendingByType(r.Categories), nil
	})
}

// ValidateBudget validates a budget
//
//	@Summary		Validate budget
//	@Description	Checks that the total budget matches the sum of the fixed, variable and savings budgets with a tolerance of 0.01
//	@Tags			Calculations
//	@Accept			json
//	@Produce		json
//	@Success		200		{object}	Response[budget.Validation]
//	@Failure		400		{object}	Response[budget.Validation]
//	@Param			budget	body		budget.MonthlyBudget	true	"Budget"
//	@Router			/v1/calculations/budget-validation [post]
func ValidateBudget(c *gin.Context) {
	calculate(c, "budget-validation", func(b budget.MonthlyBudget) (budget.Validation, error) {
		return budget.ValidateBudget(b), nil
	})
}

// NetWorth calculates the net worth
//
//	@Summary		Net worth
//	@Description	Subtracts all debts from all assets
//	@Tags			Calculations
//	@Accept			json
//	@Produce		json
//	@Success		200			{object}	Response[Amount]
//	@Failure		400			{object}	Response[Amount]
//	@Param			netWorth	body		NetWorthRequest	true	"Assets and debts"
//	@Router			/v1/calculations/net-worth [post]
func NetWorth(c *gin.Context) {
	calculate(c, "net-worth", func(r NetWorthRequest) (Amount, error) {
		return Amount{Amount: budget.NetWorth(r.Assets, r.Debts)}, nil
	})
}
