package budget

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

var (
	hundred = decimal.NewFromInt(100)
	half    = decimal.New(5, -1)

	// Maximum difference between the total budget and the sum of
	// its parts that still counts as consistent.
	validationTolerance = decimal.New(1, -2)
)

// TotalSpent returns the sum spent in all categories.
func TotalSpent(categories []Category) decimal.Decimal {
	total := decimal.Zero
	for _, c := range categories {
		total = total.Add(c.Spent)
	}

	return total
}

// RemainingBudget returns what is left of total after spent. It is
// negative when more was spent than budgeted.
func RemainingBudget(total, spent decimal.Decimal) decimal.Decimal {
	return total.Sub(spent)
}

// CategoryProgress returns the percentage of the category's budget that
// has been spent, rounded to the nearest integer with halves rounded up.
//
// Categories without a positive budget have a progress of 0.
func CategoryProgress(c Category) int {
	if !c.BudgetAmount.IsPositive() {
		return 0
	}

	percent := c.Spent.Mul(hundred).Div(c.BudgetAmount)
	return int(percent.Add(half).Floor().IntPart())
}

// TotalBalance returns the sum of all account balances.
func TotalBalance(accounts []Account) decimal.Decimal {
	total := decimal.Zero
	for _, a := range accounts {
		total = total.Add(a.Balance)
	}

	return total
}

// TransactionImpact returns the effect of applying t. With reverse set,
// it returns the effect of undoing it.
//
// For an unknown transaction type, the impact is zero and the error
// wraps ErrUnknownTransactionType.
func TransactionImpact(t Transaction, reverse bool) (Impact, error) {
	amount := t.Amount
	if reverse {
		amount = amount.Neg()
	}

	switch t.Type {
	case TransactionIncome:
		return Impact{
			AccountChange:  amount,
			CategoryChange: decimal.Zero,
			BudgetChange:   amount,
		}, nil

	// Savings leave the source account like an expense does
	case TransactionExpense, TransactionSavings:
		return Impact{
			AccountChange:  amount.Neg(),
			CategoryChange: amount,
			BudgetChange:   decimal.Zero,
		}, nil
	}

	return Impact{
		AccountChange:  decimal.Zero,
		CategoryChange: decimal.Zero,
		BudgetChange:   decimal.Zero,
	}, fmt.Errorf("%w: %q", ErrUnknownTransactionType, t.Type)
}

// ApplyTransactions returns the combined impact of all transactions.
//
// Transactions of unknown type do not contribute. They are reported in
// the returned error, the impact of all others is still returned.
func ApplyTransactions(transactions []Transaction, reverse bool) (Impact, error) {
	total := Impact{
		AccountChange:  decimal.Zero,
		CategoryChange: decimal.Zero,
		BudgetChange:   decimal.Zero,
	}

	var errs []error
	for i, t := range transactions {
		impact, err := TransactionImpact(t, reverse)
		if err != nil {
			errs = append(errs, fmt.Errorf("transaction %d: %w", i, err))
			continue
		}

		total = total.Add(impact)
	}

	return total, errors.Join(errs...)
}

// SpendingByType sums up the spent amounts per spending type.
// Categories with an unknown type are not counted.
func SpendingByType(categories []Category) Spending {
	s := Spending{
		Fixed:    decimal.Zero,
		Variable: decimal.Zero,
		Savings:  decimal.Zero,
	}

	for _, c := range categories {
		switch c.Type {
		case SpendingFixed:
			s.Fixed = s.Fixed.Add(c.Spent)
		case SpendingVariable:
			s.Variable = s.Variable.Add(c.Spent)
		case SpendingSavings:
			s.Savings = s.Savings.Add(c.Spent)
		}
	}

	return s
}

// ValidateBudget checks that the total budget equals the sum of the
// fixed, variable and savings budgets.
func ValidateBudget(b MonthlyBudget) Validation {
	sum := b.FixedBudget.Add(b.VariableBudget).Add(b.SavingsBudget)

	if b.TotalBudget.Sub(sum).Abs().GreaterThan(validationTolerance) {
		return Validation{
			Valid: false,
			Errors: []string{
				fmt.Sprintf("total budget %s does not match the sum of fixed, variable and savings budgets %s", b.TotalBudget.StringFixed(2), sum.StringFixed(2)),
			},
		}
	}

	return Validation{Valid: true, Errors: []string{}}
}

// NetWorth returns assets minus debts.
func NetWorth(assets, debts decimal.Decimal) decimal.Decimal {
	return assets.Sub(debts)
}
