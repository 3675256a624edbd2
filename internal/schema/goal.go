package schema

import "github.com/Veraticus/pocketwatch/internal/model"

var (
	goalTypeValues   = enumValues(model.GoalTypes)
	goalStatusValues = enumValues(model.GoalStatuses)
)

func goalFromObject(o object) model.Goal {
	return model.Goal{
		ID:            o.requireInt("id"),
		UserID:        o.optionalIntOr("user_id", 0),
		Name:          o.requireString("name"),
		Description:   o.optionalString("description"),
		GoalType:      model.GoalType(o.requireEnum("goal_type", goalTypeValues)),
		TargetAmount:  o.requireDecimal("target_amount"),
		CurrentAmount: o.requireDecimal("current_amount"),
		TargetDate:    o.optionalTimePtr("target_date"),
		Status:        model.GoalStatus(o.requireEnum("status", goalStatusValues)),
		CreatedAt:     o.optionalTime("created_at"),
		UpdatedAt:     o.optionalTimePtr("updated_at"),
	}
}

// Goal validates a single goal response.
func Goal(raw []byte) (model.Goal, error) {
	fields, c, err := decodeObject("goal", raw)
	if err != nil {
		return model.Goal{}, err
	}
	goal := goalFromObject(object{fields: fields, c: c})
	if err := c.err(); err != nil {
		return model.Goal{}, err
	}
	return goal, nil
}

// Goals validates a goal list response.
func Goals(raw []byte) ([]model.Goal, error) {
	objs, c, err := decodeArray("goals", raw)
	if err != nil {
		return nil, err
	}
	goals := make([]model.Goal, 0, len(objs))
	for i, fields := range objs {
		goals = append(goals, goalFromObject(object{fields: fields, c: c, path: indexPath(i)}))
	}
	if err := c.err(); err != nil {
		return nil, err
	}
	return goals, nil
}
