package crontime

import (
	"fmt"
	"strings"

	"github.com/alecthomas/types/optional"

	"github.com/reugn/go-crontime/definition"
	"github.com/reugn/go-crontime/field"
)

// Cron is an immutable cron recurrence: a set of field expressions
// validated against a dialect definition.
type Cron struct {
	definition *definition.CronDefinition
	fields     map[field.Name]field.Field
}

// NewCron validates the field expressions against the definition and
// returns the recurrence.
func NewCron(def *definition.CronDefinition, fields []field.Field) (*Cron, error) {
	if def == nil {
		return nil, illegalArgumentError("nil cron definition")
	}
	fieldMap := make(map[field.Name]field.Field, len(fields))
	for _, f := range fields {
		if _, ok := fieldMap[f.Name]; ok {
			return nil, invalidRecurrenceError(fmt.Sprintf("duplicate %s field", f.Name))
		}
		if !def.ContainsField(f.Name) {
			return nil, invalidRecurrenceError(
				fmt.Sprintf("%s field is not supported by the definition", f.Name))
		}
		if err := f.Validate(); err != nil {
			return nil, invalidRecurrenceError(err.Error())
		}
		fieldMap[f.Name] = f
	}
	for _, name := range def.FieldNames() {
		fieldDef, _ := def.FieldDefinition(name).Get()
		if fieldDef.Optional || name == field.DayOfMonth || name == field.DayOfWeek {
			// Absent day fields match the full range; absent optional
			// fields take dialect defaults.
			continue
		}
		if _, ok := fieldMap[name]; !ok {
			return nil, invalidRecurrenceError(fmt.Sprintf("missing %s field", name))
		}
	}
	if bothDayFieldsUnspecified(fieldMap) {
		return nil, invalidRecurrenceError(
			"day of month and day of week cannot both be unspecified")
	}
	return &Cron{definition: def, fields: fieldMap}, nil
}

func bothDayFieldsUnspecified(fields map[field.Name]field.Field) bool {
	dayOfMonth, ok := fields[field.DayOfMonth]
	if !ok || !field.IsQuestionMark(dayOfMonth.Expression) {
		return false
	}
	dayOfWeek, ok := fields[field.DayOfWeek]
	return ok && field.IsQuestionMark(dayOfWeek.Expression)
}

// Field returns the named field, if the recurrence specifies it.
func (c *Cron) Field(name field.Name) optional.Option[field.Field] {
	if f, ok := c.fields[name]; ok {
		return optional.Some(f)
	}
	return optional.None[field.Field]()
}

// Definition returns the dialect definition of the recurrence.
func (c *Cron) Definition() *definition.CronDefinition {
	return c.definition
}

func (c *Cron) String() string {
	parts := make([]string, 0, len(c.fields))
	for _, name := range field.Names() {
		if f, ok := c.fields[name]; ok {
			parts = append(parts, f.Expression.String())
		}
	}
	return strings.Join(parts, " ")
}
