package crontime

import (
	"fmt"

	"github.com/alecthomas/types/optional"

	"github.com/reugn/go-crontime/definition"
	"github.com/reugn/go-crontime/field"
	"github.com/reugn/go-crontime/internal/generator"
)

// executionTimeBuilder assembles the per-field search structures of an
// ExecutionTime. Scalar fields collapse into ordered value sets once;
// day fields are kept as raw fields since their value sets depend on
// the queried month.
type executionTimeBuilder struct {
	definition *definition.CronDefinition

	yearsValueGenerator generator.FieldValueGenerator
	daysOfMonthField    optional.Option[field.Field]
	daysOfWeekField     optional.Option[field.Field]
	months              *timeNode
	hours               *timeNode
	minutes             *timeNode
	seconds             *timeNode

	err error
}

func newExecutionTimeBuilder(def *definition.CronDefinition) *executionTimeBuilder {
	return &executionTimeBuilder{
		definition:       def,
		daysOfMonthField: optional.None[field.Field](),
		daysOfWeekField:  optional.None[field.Field](),
	}
}

func (b *executionTimeBuilder) forSecondsMatching(f field.Field) {
	b.seconds = b.timeNodeFor(f)
}

func (b *executionTimeBuilder) forMinutesMatching(f field.Field) {
	b.minutes = b.timeNodeFor(f)
}

func (b *executionTimeBuilder) forHoursMatching(f field.Field) {
	b.hours = b.timeNodeFor(f)
}

func (b *executionTimeBuilder) forMonthsMatching(f field.Field) {
	b.months = b.timeNodeFor(f)
}

func (b *executionTimeBuilder) forDaysOfMonthMatching(f field.Field) {
	b.daysOfMonthField = optional.Some(f)
}

func (b *executionTimeBuilder) forDaysOfWeekMatching(f field.Field) {
	b.daysOfWeekField = optional.Some(f)
}

func (b *executionTimeBuilder) forYearsMatching(f field.Field) {
	if b.err != nil {
		return
	}
	gen, err := generator.ForField(f)
	if err != nil {
		b.err = invalidRecurrenceError(err.Error())
		return
	}
	b.yearsValueGenerator = gen
}

// timeNodeFor collapses a scalar field into its ordered value set.
func (b *executionTimeBuilder) timeNodeFor(f field.Field) *timeNode {
	if b.err != nil {
		return nil
	}
	gen, err := generator.ForField(f)
	if err != nil {
		b.err = invalidRecurrenceError(err.Error())
		return nil
	}
	node, err := newTimeNode(gen.GenerateCandidates(f.Constraints.Min(), f.Constraints.Max()))
	if err != nil {
		b.err = invalidRecurrenceError(fmt.Sprintf("%s field matches no values", f.Name))
		return nil
	}
	return node
}

func (b *executionTimeBuilder) build() (*ExecutionTime, error) {
	b.applyDefaults()
	if b.err != nil {
		return nil, b.err
	}
	daysOfMonthField, _ := b.daysOfMonthField.Get()
	daysOfWeekField, _ := b.daysOfWeekField.Get()
	return &ExecutionTime{
		definition:              b.definition,
		yearsValueGenerator:     b.yearsValueGenerator,
		daysOfMonthField:        daysOfMonthField,
		daysOfMonthAlways:       field.IsAlways(daysOfMonthField.Expression),
		daysOfMonthQuestionMark: field.IsQuestionMark(daysOfMonthField.Expression),
		daysOfWeekField:         daysOfWeekField,
		daysOfWeekAlways:        field.IsAlways(daysOfWeekField.Expression),
		daysOfWeekQuestionMark:  field.IsQuestionMark(daysOfWeekField.Expression),
		months:                  b.months,
		hours:                   b.hours,
		minutes:                 b.minutes,
		seconds:                 b.seconds,
	}, nil
}

func (b *executionTimeBuilder) applyDefaults() {
	if b.err != nil {
		return
	}
	if b.seconds == nil {
		if b.definition.ContainsField(field.Second) {
			b.seconds = b.timeNodeFor(b.defaultField(field.Second, field.NewConstraints(0, 59)))
		} else {
			// Five-field dialects pin execution to second zero.
			b.seconds, _ = newTimeNode([]int{0})
		}
	}
	if b.minutes == nil {
		b.minutes = b.timeNodeFor(b.defaultField(field.Minute, field.NewConstraints(0, 59)))
	}
	if b.hours == nil {
		b.hours = b.timeNodeFor(b.defaultField(field.Hour, field.NewConstraints(0, 23)))
	}
	if b.months == nil {
		b.months = b.timeNodeFor(b.defaultField(field.Month, field.NewConstraints(1, 12)))
	}
	if b.yearsValueGenerator == nil {
		b.forYearsMatching(b.defaultField(field.Year, definition.YearConstraints()))
	}
	if _, ok := b.daysOfMonthField.Get(); !ok {
		b.daysOfMonthField = optional.Some(b.defaultField(field.DayOfMonth, field.NewConstraints(1, 31)))
	}
	if _, ok := b.daysOfWeekField.Get(); !ok {
		b.daysOfWeekField = optional.Some(b.defaultField(field.DayOfWeek, field.NewConstraints(0, 6)))
	}
}

// defaultField returns an always matching field over the definition
// constraints, falling back to the given constraints when the dialect
// does not define the field.
func (b *executionTimeBuilder) defaultField(name field.Name, fallback field.Constraints) field.Field {
	constraints := fallback
	if fieldDef, ok := b.definition.FieldDefinition(name).Get(); ok {
		constraints = fieldDef.Constraints
	}
	return field.Field{Name: name, Expression: field.Always{}, Constraints: constraints}
}
