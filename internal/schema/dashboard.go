package schema

import (
	"fmt"

	"github.com/Veraticus/pocketwatch/internal/model"
)

// DashboardSummary validates the /dashboard/summary response, including
// every embedded recent transaction. month_net is validated for shape only;
// the backend is authoritative for its arithmetic.
func DashboardSummary(raw []byte) (model.DashboardSummary, error) {
	fields, c, err := decodeObject("dashboard_summary", raw)
	if err != nil {
		return model.DashboardSummary{}, err
	}
	o := object{fields: fields, c: c}
	summary := model.DashboardSummary{
		TotalBalance:  o.requireDecimal("total_balance"),
		MonthIncome:   o.requireDecimal("month_income"),
		MonthExpenses: o.requireDecimal("month_expenses"),
		MonthNet:      o.requireDecimal("month_net"),
		ActiveBudgets: int(o.requireInt("active_budgets")),
		ActiveGoals:   int(o.requireInt("active_goals")),
	}

	v, ok := fields["recent_transactions"]
	if !ok {
		c.add(".recent_transactions", "missing required field", nil)
	} else if arr, ok := v.([]any); !ok {
		c.add(".recent_transactions", fmt.Sprintf("expected array, got %s", typeName(v)), v)
	} else {
		summary.RecentTransactions = make([]model.RecentTransaction, 0, len(arr))
		for i, item := range arr {
			path := fmt.Sprintf(".recent_transactions[%d]", i)
			txFields, ok := item.(map[string]any)
			if !ok {
				c.add(path, fmt.Sprintf("expected object, got %s", typeName(item)), item)
				continue
			}
			to := object{fields: txFields, c: c, path: path}
			summary.RecentTransactions = append(summary.RecentTransactions, model.RecentTransaction{
				ID:          to.requireInt("id"),
				Amount:      to.requireDecimal("amount"),
				Type:        model.TransactionType(to.requireEnum("type", transactionTypeValues)),
				Description: to.optionalString("description"),
				Date:        to.requireTime("date"),
			})
		}
	}

	if err := c.err(); err != nil {
		return model.DashboardSummary{}, err
	}
	return summary, nil
}
