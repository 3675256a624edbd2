package schema

import "github.com/Veraticus/pocketwatch/internal/model"

// accountFromObject maps one validated account object into the model.
// account_type is deliberately an open string: the backend has grown new
// account types before and an unknown type should render, not crash.
func accountFromObject(o object) model.Account {
	return model.Account{
		ID:          o.requireInt("id"),
		UserID:      o.optionalIntOr("user_id", 0),
		Name:        o.requireString("name"),
		AccountType: model.AccountType(o.requireString("account_type")),
		Balance:     o.requireDecimal("balance"),
		Currency:    o.stringOr("currency", "USD"),
		Description: o.optionalString("description"),
		IsActive:    o.optionalBool("is_active"),
		CreatedAt:   o.optionalTime("created_at"),
		UpdatedAt:   o.optionalTimePtr("updated_at"),
	}
}

// Account validates a single account response.
func Account(raw []byte) (model.Account, error) {
	fields, c, err := decodeObject("account", raw)
	if err != nil {
		return model.Account{}, err
	}
	account := accountFromObject(object{fields: fields, c: c})
	if err := c.err(); err != nil {
		return model.Account{}, err
	}
	return account, nil
}

// Accounts validates an account list response.
func Accounts(raw []byte) ([]model.Account, error) {
	objs, c, err := decodeArray("accounts", raw)
	if err != nil {
		return nil, err
	}
	accounts := make([]model.Account, 0, len(objs))
	for i, fields := range objs {
		accounts = append(accounts, accountFromObject(object{fields: fields, c: c, path: indexPath(i)}))
	}
	if err := c.err(); err != nil {
		return nil, err
	}
	return accounts, nil
}
