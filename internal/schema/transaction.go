package schema

import "github.com/Veraticus/pocketwatch/internal/model"

var transactionTypeValues = enumValues(model.TransactionTypes)

func transactionFromObject(o object) model.Transaction {
	return model.Transaction{
		ID:          o.requireInt("id"),
		UserID:      o.optionalIntOr("user_id", 0),
		AccountID:   o.requireInt("account_id"),
		CategoryID:  o.optionalInt("category_id"),
		Amount:      o.requireDecimal("amount"),
		Type:        model.TransactionType(o.requireEnum("transaction_type", transactionTypeValues)),
		Description: o.optionalString("description"),
		Date:        o.requireTime("date"),
		Notes:       o.optionalString("notes"),
		CreatedAt:   o.optionalTime("created_at"),
		UpdatedAt:   o.optionalTimePtr("updated_at"),
	}
}

// Transaction validates a single transaction response.
func Transaction(raw []byte) (model.Transaction, error) {
	fields, c, err := decodeObject("transaction", raw)
	if err != nil {
		return model.Transaction{}, err
	}
	tx := transactionFromObject(object{fields: fields, c: c})
	if err := c.err(); err != nil {
		return model.Transaction{}, err
	}
	return tx, nil
}

// Transactions validates a transaction list response.
func Transactions(raw []byte) ([]model.Transaction, error) {
	objs, c, err := decodeArray("transactions", raw)
	if err != nil {
		return nil, err
	}
	txs := make([]model.Transaction, 0, len(objs))
	for i, fields := range objs {
		txs = append(txs, transactionFromObject(object{fields: fields, c: c, path: indexPath(i)}))
	}
	if err := c.err(); err != nil {
		return nil, err
	}
	return txs, nil
}
