package schema

import "github.com/Veraticus/pocketwatch/internal/model"

// ExpensesByCategory validates the expenses-by-category report. A null or
// absent category_id marks uncategorized spending and maps to nil.
func ExpensesByCategory(raw []byte) ([]model.CategoryExpense, error) {
	objs, c, err := decodeArray("expenses_by_category", raw)
	if err != nil {
		return nil, err
	}
	rows := make([]model.CategoryExpense, 0, len(objs))
	for i, fields := range objs {
		o := object{fields: fields, c: c, path: indexPath(i)}
		rows = append(rows, model.CategoryExpense{
			CategoryID: o.optionalInt("category_id"),
			Total:      o.requireDecimal("total"),
		})
	}
	if err := c.err(); err != nil {
		return nil, err
	}
	return rows, nil
}

// IncomeVsExpenses validates the income-vs-expenses report. net is validated
// for shape only; the backend is authoritative for its arithmetic.
func IncomeVsExpenses(raw []byte) (model.IncomeVsExpenses, error) {
	fields, c, err := decodeObject("income_vs_expenses", raw)
	if err != nil {
		return model.IncomeVsExpenses{}, err
	}
	o := object{fields: fields, c: c}
	report := model.IncomeVsExpenses{
		Income:   o.requireDecimal("income"),
		Expenses: o.requireDecimal("expenses"),
		Net:      o.requireDecimal("net"),
	}
	if err := c.err(); err != nil {
		return model.IncomeVsExpenses{}, err
	}
	return report, nil
}
