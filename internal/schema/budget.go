package schema

import "github.com/Veraticus/pocketwatch/internal/model"

var budgetPeriodValues = enumValues(model.BudgetPeriods)

func budgetFromObject(o object) model.Budget {
	return model.Budget{
		ID:         o.requireInt("id"),
		UserID:     o.optionalIntOr("user_id", 0),
		CategoryID: o.optionalInt("category_id"),
		Name:       o.requireString("name"),
		Amount:     o.requireDecimal("amount"),
		Period:     model.BudgetPeriod(o.requireEnum("period", budgetPeriodValues)),
		StartDate:  o.requireTime("start_date"),
		EndDate:    o.optionalTimePtr("end_date"),
		IsActive:   o.optionalBool("is_active"),
		CreatedAt:  o.optionalTime("created_at"),
		UpdatedAt:  o.optionalTimePtr("updated_at"),
	}
}

// Budget validates a single budget response.
func Budget(raw []byte) (model.Budget, error) {
	fields, c, err := decodeObject("budget", raw)
	if err != nil {
		return model.Budget{}, err
	}
	budget := budgetFromObject(object{fields: fields, c: c})
	if err := c.err(); err != nil {
		return model.Budget{}, err
	}
	return budget, nil
}

// Budgets validates a budget list response.
func Budgets(raw []byte) ([]model.Budget, error) {
	objs, c, err := decodeArray("budgets", raw)
	if err != nil {
		return nil, err
	}
	budgets := make([]model.Budget, 0, len(objs))
	for i, fields := range objs {
		budgets = append(budgets, budgetFromObject(object{fields: fields, c: c, path: indexPath(i)}))
	}
	if err := c.err(); err != nil {
		return nil, err
	}
	return budgets, nil
}
