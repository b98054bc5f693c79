// Package budget contains the calculations on budgets, categories, accounts
// and transactions.
//
// All functions are pure. They read the records passed in and never modify them.
package budget

import (
	"errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var ErrUnknownTransactionType = errors.New("unknown transaction type")

// swagger:enum SpendingType
type SpendingType string

const (
	SpendingFixed    SpendingType = "fixed"
	SpendingVariable SpendingType = "variable"
	SpendingSavings  SpendingType = "savings"
)

// Valid reports whether t is one of the known spending types.
func (t SpendingType) Valid() bool {
	switch t {
	case SpendingFixed, SpendingVariable, SpendingSavings:
		return true
	}
	return false
}

// swagger:enum TransactionType
type TransactionType string

const (
	TransactionIncome  TransactionType = "income"
	TransactionExpense TransactionType = "expense"
	TransactionSavings TransactionType = "savings"
)

// Category is a budget bucket.
type Category struct {
	ID           uuid.UUID       `json:"id" example:"dafd9a74-6aeb-46b9-9f5a-cfca624fea85"` // ID of the category. Optional
	Name         string          `json:"name" example:"Groceries" default:""`               // Name of the category
	Type         SpendingType    `json:"type" example:"variable"`                           // Spending type of the category
	BudgetAmount decimal.Decimal `json:"budgetAmount" example:"400"`                        // Amount budgeted for the category
	Spent        decimal.Decimal `json:"spent" example:"123.45"`                            // Amount already spent
}

// MonthlyBudget is the budget for one calendar month.
type MonthlyBudget struct {
	TotalBudget    decimal.Decimal `json:"totalBudget" example:"2500"`   // The total budget
	FixedBudget    decimal.Decimal `json:"fixedBudget" example:"1200"`   // Budget for fixed costs
	VariableBudget decimal.Decimal `json:"variableBudget" example:"800"` // Budget for variable costs
	SavingsBudget  decimal.Decimal `json:"savingsBudget" example:"500"`  // Budget for savings
}

// Transaction is a single financial event.
type Transaction struct {
	Type   TransactionType `json:"type" example:"expense"` // Type of the transaction
	Amount decimal.Decimal `json:"amount" example:"14.03"` // Amount of the transaction
}

// Account is a bank account.
type Account struct {
	ID      uuid.UUID       `json:"id" example:"af892e10-7e0a-4fb8-b1bc-4b6d88401ed2"` // ID of the account. Optional
	Name    string          `json:"name" example:"Checking" default:""`                // Name of the account
	Balance decimal.Decimal `json:"balance" example:"2735.17"`                         // Current balance
}

// Impact is the effect of a transaction on an account balance,
// a category's spent amount and the budget total.
type Impact struct {
	AccountChange  decimal.Decimal `json:"accountChange" example:"-50"` // Change of the account balance
	CategoryChange decimal.Decimal `json:"categoryChange" example:"50"` // Change of the category's spent amount
	BudgetChange   decimal.Decimal `json:"budgetChange" example:"0"`    // Change of the budget total
}

// Add returns the sum of two impacts.
func (i Impact) Add(o Impact) Impact {
	return Impact{
		AccountChange:  i.AccountChange.Add(o.AccountChange),
		CategoryChange: i.CategoryChange.Add(o.CategoryChange),
		BudgetChange:   i.BudgetChange.Add(o.BudgetChange),
	}
}

// Spending is the amount spent per spending type.
type Spending struct {
	Fixed    decimal.Decimal `json:"fixed" example:"1180"`   // Spent in fixed categories
	Variable decimal.Decimal `json:"variable" example:"620"` // Spent in variable categories
	Savings  decimal.Decimal `json:"savings" example:"500"`  // Spent in savings categories
}

// Total returns the sum over all spending types.
func (s Spending) Total() decimal.Decimal {
	return s.Fixed.Add(s.Variable).Add(s.Savings)
}

// Validation is the result of a budget validation.
type Validation struct {
	Valid  bool     `json:"valid" example:"false"` // Is the budget consistent?
	Errors []string `json:"errors"`                // Human readable problems, empty if valid
}
