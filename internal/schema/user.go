package schema

import "github.com/Veraticus/pocketwatch/internal/model"

// User validates a user profile response.
func User(raw []byte) (model.User, error) {
	fields, c, err := decodeObject("user", raw)
	if err != nil {
		return model.User{}, err
	}
	o := object{fields: fields, c: c}
	user := model.User{
		ID:          o.requireInt("id"),
		Email:       o.requireString("email"),
		Username:    o.requireString("username"),
		FullName:    o.optionalString("full_name"),
		IsActive:    o.optionalBool("is_active"),
		IsSuperuser: o.optionalBool("is_superuser"),
		CreatedAt:   o.optionalTime("created_at"),
		UpdatedAt:   o.optionalTimePtr("updated_at"),
	}
	if err := c.err(); err != nil {
		return model.User{}, err
	}
	return user, nil
}

// Token validates a login response. Both credential halves are required;
// a login that came back without a refresh token is a contract violation,
// not a partial success.
func Token(raw []byte) (model.Token, error) {
	fields, c, err := decodeObject("token", raw)
	if err != nil {
		return model.Token{}, err
	}
	o := object{fields: fields, c: c}
	token := model.Token{
		AccessToken:  o.requireString("access_token"),
		RefreshToken: o.requireString("refresh_token"),
		TokenType:    o.stringOr("token_type", "bearer"),
	}
	if err := c.err(); err != nil {
		return model.Token{}, err
	}
	return token, nil
}
