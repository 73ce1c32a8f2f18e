package definition_test

import (
	"testing"
	"time"

	"github.com/alecthomas/assert/v2"

	"github.com/reugn/go-crontime/definition"
	"github.com/reugn/go-crontime/field"
)

func TestBuilder(t *testing.T) {
	t.Parallel()
	def := definition.NewBuilder().
		WithMinute().
		WithHour().
		WithDayOfMonth(field.SpecialCharL).
		WithMonth().
		WithDayOfWeek(0, 6, definition.CrontabWeekDay).
		Build()

	assert.Equal(t, []field.Name{
		field.Minute, field.Hour, field.DayOfMonth, field.Month, field.DayOfWeek,
	}, def.FieldNames())
	assert.False(t, def.ContainsField(field.Second))
	assert.False(t, def.ContainsField(field.Year))
	assert.False(t, def.QuestionMarkSupported())

	dayOfMonth, ok := def.FieldDefinition(field.DayOfMonth).Get()
	assert.True(t, ok)
	assert.Equal(t, 1, dayOfMonth.Constraints.Min())
	assert.Equal(t, 31, dayOfMonth.Constraints.Max())
	assert.True(t, dayOfMonth.Constraints.IsSpecialCharAllowed(field.SpecialCharL))
	assert.False(t, dayOfMonth.Optional)

	_, ok = def.FieldDefinition(field.Second).Get()
	assert.False(t, ok)
}

func TestInstance(t *testing.T) {
	t.Parallel()
	tests := []struct {
		cronType      definition.CronType
		fieldCount    int
		questionMark  bool
		sundayValue   int
		saturdayValue int
	}{
		{definition.Cron4j, 5, false, 0, 6},
		{definition.Unix, 5, false, 0, 6},
		{definition.Quartz, 7, true, 1, 7},
		{definition.Spring, 6, true, 0, 6},
	}

	for _, tt := range tests {
		t.Run(tt.cronType.String(), func(t *testing.T) {
			t.Parallel()
			def := definition.Instance(tt.cronType)
			assert.NotZero(t, def)
			assert.Equal(t, tt.fieldCount, len(def.FieldNames()))
			assert.Equal(t, tt.questionMark, def.QuestionMarkSupported())
			anchor := def.DayOfWeekAnchor()
			assert.Equal(t, tt.sundayValue, anchor.FromWeekday(time.Sunday))
			assert.Equal(t, tt.saturdayValue, anchor.FromWeekday(time.Saturday))
		})
	}

	assert.Zero(t, definition.Instance(definition.CronType(42)))
}

func TestInstanceSpring(t *testing.T) {
	t.Parallel()
	def := definition.Instance(definition.Spring)

	dayOfWeek, ok := def.FieldDefinition(field.DayOfWeek).Get()
	assert.True(t, ok)
	assert.Equal(t, 0, dayOfWeek.Constraints.Min())
	assert.Equal(t, 7, dayOfWeek.Constraints.Max())
	assert.True(t, dayOfWeek.Constraints.IsSpecialCharAllowed(field.SpecialCharHash))

	year, ok := definition.Instance(definition.Quartz).FieldDefinition(field.Year).Get()
	assert.True(t, ok)
	assert.True(t, year.Optional)
	assert.Equal(t, 1970, year.Constraints.Min())
	assert.Equal(t, 2099, year.Constraints.Max())
}

func TestWeekDayMapping(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		anchor  definition.WeekDay
		weekday time.Weekday
		value   int
	}{
		{"crontab sunday", definition.CrontabWeekDay, time.Sunday, 0},
		{"crontab monday", definition.CrontabWeekDay, time.Monday, 1},
		{"crontab saturday", definition.CrontabWeekDay, time.Saturday, 6},
		{"quartz sunday", definition.QuartzWeekDay, time.Sunday, 1},
		{"quartz monday", definition.QuartzWeekDay, time.Monday, 2},
		{"quartz saturday", definition.QuartzWeekDay, time.Saturday, 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.value, tt.anchor.FromWeekday(tt.weekday))
			assert.Equal(t, tt.weekday, tt.anchor.ToWeekday(tt.value))
		})
	}

	// 7 aliases Sunday in dialects with a [0, 7] range.
	assert.Equal(t, time.Sunday, definition.CrontabWeekDay.ToWeekday(7))

	custom := definition.NewWeekDay(3, false)
	assert.Equal(t, 3, custom.FromWeekday(time.Monday))
	assert.Equal(t, time.Monday, custom.ToWeekday(3))
}
