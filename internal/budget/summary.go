package budget

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CategoryProgressEntry is the progress of a single category.
type CategoryProgressEntry struct {
	ID        uuid.UUID       `json:"id" example:"dafd9a74-6aeb-46b9-9f5a-cfca624fea85"` // ID of the category
	Name      string          `json:"name" example:"Groceries"`                          // Name of the category
	Type      SpendingType    `json:"type" example:"variable"`                           // Spending type of the category
	Progress  int             `json:"progress" example:"31"`                             // Percentage of the budget that has been spent
	Remaining decimal.Decimal `json:"remaining" example:"276.55"`                        // Budget left in the category
}

// ProgressByCategory returns the progress for every category, in the
// order the categories are passed in.
func ProgressByCategory(categories []Category) []CategoryProgressEntry {
	entries := make([]CategoryProgressEntry, 0, len(categories))
	for _, c := range categories {
		entries = append(entries, CategoryProgressEntry{
			ID:        c.ID,
			Name:      c.Name,
			Type:      c.Type,
			Progress:  CategoryProgress(c),
			Remaining: RemainingBudget(c.BudgetAmount, c.Spent),
		})
	}

	return entries
}

// Overview is everything known about one month.
type Overview struct {
	Budget     MonthlyBudget   `json:"budget"`                // The budget for the month
	Categories []Category      `json:"categories"`            // All categories
	Accounts   []Account       `json:"accounts"`              // All accounts
	Debts      decimal.Decimal `json:"debts" example:"12000"` // Sum of all debts
}

// Summary is the calculated overview of one month.
type Summary struct {
	TotalSpent   decimal.Decimal         `json:"totalSpent" example:"2300"`      // Sum spent over all categories
	Remaining    decimal.Decimal         `json:"remaining" example:"200"`        // Total budget minus total spent
	TotalBalance decimal.Decimal         `json:"totalBalance" example:"5231.37"` // Sum of all account balances
	NetWorth     decimal.Decimal         `json:"netWorth" example:"-6768.63"`    // Account balances minus debts
	Spending     Spending                `json:"spending"`                       // Amount spent per spending type
	Progress     []CategoryProgressEntry `json:"progress"`                       // Progress per category
	Validation   Validation              `json:"validation"`                     // Result of the budget validation
}

// Summarize calculates the Summary for an Overview.
func Summarize(o Overview) Summary {
	spent := TotalSpent(o.Categories)
	balance := TotalBalance(o.Accounts)

	return Summary{
		TotalSpent:   spent,
		Remaining:    RemainingBudget(o.Budget.TotalBudget, spent),
		TotalBalance: balance,
		NetWorth:     NetWorth(balance, o.Debts),
		Spending:     SpendingByType(o.Categories),
		Progress:     ProgressByCategory(o.Categories),
		Validation:   ValidateBudget(o.Budget),
	}
}
