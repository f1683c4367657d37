package query

import "fmt"

// Condition is one WHERE clause fragment. Implementations emit SQL using
// Spanner's named parameter format (@paramName); paramIndex keeps generated
// names unique across a statement.
type Condition interface {
	SQL(paramIndex int) (string, map[string]interface{})
}

// Eq creates an equality condition.
// Example: Eq("course_id", "pebble-creek") generates "course_id = @p0".
func Eq(field string, value interface{}) Condition {
	return &eqCondition{field: field, value: value}
}

type eqCondition struct {
	field string
	value interface{}
}

func (c *eqCondition) SQL(paramIndex int) (string, map[string]interface{}) {
	paramName := fmt.Sprintf("p%d", paramIndex)
	return fmt.Sprintf("%s = @%s", c.field, paramName),
		map[string]interface{}{paramName: c.value}
}
