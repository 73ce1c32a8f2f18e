package crontime

import (
	"fmt"

	"github.com/reugn/go-crontime/definition"
	"github.com/reugn/go-crontime/field"
)

// CronBuilder assembles a Cron recurrence for a dialect definition.
type CronBuilder struct {
	definition  *definition.CronDefinition
	expressions map[field.Name]field.Expression
}

// NewCronBuilder returns a builder for the given dialect definition.
func NewCronBuilder(def *definition.CronDefinition) *CronBuilder {
	return &CronBuilder{
		definition:  def,
		expressions: make(map[field.Name]field.Expression),
	}
}

// WithSecond sets the second field expression.
func (b *CronBuilder) WithSecond(expression field.Expression) *CronBuilder {
	return b.with(field.Second, expression)
}

// WithMinute sets the minute field expression.
func (b *CronBuilder) WithMinute(expression field.Expression) *CronBuilder {
	return b.with(field.Minute, expression)
}

// WithHour sets the hour field expression.
func (b *CronBuilder) WithHour(expression field.Expression) *CronBuilder {
	return b.with(field.Hour, expression)
}

// WithDayOfMonth sets the day of month field expression.
func (b *CronBuilder) WithDayOfMonth(expression field.Expression) *CronBuilder {
	return b.with(field.DayOfMonth, expression)
}

// WithMonth sets the month field expression.
func (b *CronBuilder) WithMonth(expression field.Expression) *CronBuilder {
	return b.with(field.Month, expression)
}

// WithDayOfWeek sets the day of week field expression.
func (b *CronBuilder) WithDayOfWeek(expression field.Expression) *CronBuilder {
	return b.with(field.DayOfWeek, expression)
}

// WithYear sets the year field expression.
func (b *CronBuilder) WithYear(expression field.Expression) *CronBuilder {
	return b.with(field.Year, expression)
}

func (b *CronBuilder) with(name field.Name, expression field.Expression) *CronBuilder {
	b.expressions[name] = expression
	return b
}

// Build validates the assembled expressions against the definition and
// returns the recurrence.
func (b *CronBuilder) Build() (*Cron, error) {
	if b.definition == nil {
		return nil, illegalArgumentError("nil cron definition")
	}
	fields := make([]field.Field, 0, len(b.expressions))
	for _, name := range field.Names() {
		expression, ok := b.expressions[name]
		if !ok {
			continue
		}
		fieldDef, ok := b.definition.FieldDefinition(name).Get()
		if !ok {
			return nil, invalidRecurrenceError(
				fmt.Sprintf("%s field is not supported by the definition", name))
		}
		fields = append(fields, field.Field{
			Name:        name,
			Expression:  expression,
			Constraints: fieldDef.Constraints,
		})
	}
	return NewCron(b.definition, fields)
}
