package dashboard

import (
	"time"

	"github.com/Veraticus/pocketwatch/internal/model"
	"github.com/shopspring/decimal"
)

// SampleSnapshot returns the illustrative data shown in guest mode, when the
// backend reports no valid credential. The numbers are deliberately round
// and obviously fictional.
func SampleSnapshot() *Snapshot {
	now := time.Now().UTC()
	groceries := int64(1)
	dining := int64(2)

	return &Snapshot{
		WindowStart: now.Add(-Window),
		WindowEnd:   now,
		Summary: model.DashboardSummary{
			TotalBalance:  decimal.RequireFromString("12500.00"),
			MonthIncome:   decimal.RequireFromString("4200.00"),
			MonthExpenses: decimal.RequireFromString("2850.00"),
			MonthNet:      decimal.RequireFromString("1350.00"),
			ActiveBudgets: 3,
			ActiveGoals:   2,
			RecentTransactions: []model.RecentTransaction{
				{
					ID:          3,
					Amount:      decimal.RequireFromString("82.50"),
					Type:        model.TransactionExpense,
					Description: "Groceries",
					Date:        now.Add(-24 * time.Hour),
				},
				{
					ID:          2,
					Amount:      decimal.RequireFromString("2100.00"),
					Type:        model.TransactionIncome,
					Description: "Paycheck",
					Date:        now.Add(-72 * time.Hour),
				},
				{
					ID:          1,
					Amount:      decimal.RequireFromString("45.00"),
					Type:        model.TransactionExpense,
					Description: "Dinner out",
					Date:        now.Add(-96 * time.Hour),
				},
			},
		},
		Accounts: []model.Account{
			{
				ID:          1,
				Name:        "Everyday Checking",
				AccountType: model.AccountChecking,
				Balance:     decimal.RequireFromString("3200.00"),
				Currency:    "USD",
				IsActive:    true,
			},
			{
				ID:          2,
				Name:        "Rainy Day Savings",
				AccountType: model.AccountSavings,
				Balance:     decimal.RequireFromString("9800.00"),
				Currency:    "USD",
				IsActive:    true,
			},
			{
				ID:          3,
				Name:        "Travel Card",
				AccountType: model.AccountCreditCard,
				Balance:     decimal.RequireFromString("-500.00"),
				Currency:    "USD",
				IsActive:    true,
			},
		},
		ExpensesByCategory: []model.CategoryExpense{
			{CategoryID: &groceries, Total: decimal.RequireFromString("640.00")},
			{CategoryID: &dining, Total: decimal.RequireFromString("380.00")},
			{CategoryID: nil, Total: decimal.RequireFromString("120.00")},
		},
		IncomeVsExpenses: model.IncomeVsExpenses{
			Income:   decimal.RequireFromString("4200.00"),
			Expenses: decimal.RequireFromString("2850.00"),
			Net:      decimal.RequireFromString("1350.00"),
		},
	}
}
