package definition

import "github.com/reugn/go-crontime/field"

// Builder assembles a CronDefinition field by field.
type Builder struct {
	fields        map[field.Name]FieldDefinition
	weekDayAnchor WeekDay
}

// NewBuilder returns an empty definition builder with crontab weekday
// numbering.
func NewBuilder() *Builder {
	return &Builder{
		fields:        make(map[field.Name]FieldDefinition),
		weekDayAnchor: CrontabWeekDay,
	}
}

// WithSecond adds a mandatory second field with the [0, 59] range.
func (b *Builder) WithSecond() *Builder {
	return b.with(field.Second, field.NewConstraints(0, 59), false)
}

// WithMinute adds a mandatory minute field with the [0, 59] range.
func (b *Builder) WithMinute() *Builder {
	return b.with(field.Minute, field.NewConstraints(0, 59), false)
}

// WithHour adds a mandatory hour field with the [0, 23] range.
func (b *Builder) WithHour() *Builder {
	return b.with(field.Hour, field.NewConstraints(0, 23), false)
}

// WithDayOfMonth adds a day of month field with the [1, 31] range and
// the permitted special characters.
func (b *Builder) WithDayOfMonth(specialChars ...field.SpecialChar) *Builder {
	return b.with(field.DayOfMonth, field.NewConstraints(1, 31, specialChars...), false)
}

// WithMonth adds a mandatory month field with the [1, 12] range.
func (b *Builder) WithMonth() *Builder {
	return b.with(field.Month, field.NewConstraints(1, 12), false)
}

// WithDayOfWeek adds a day of week field with the [min, max] range,
// the given weekday numbering and the permitted special characters.
func (b *Builder) WithDayOfWeek(min, max int, anchor WeekDay, specialChars ...field.SpecialChar) *Builder {
	b.weekDayAnchor = anchor
	return b.with(field.DayOfWeek, field.NewConstraints(min, max, specialChars...), false)
}

// WithYear adds an optional year field with the [1970, 2099] range.
func (b *Builder) WithYear() *Builder {
	return b.with(field.Year, YearConstraints(), true)
}

func (b *Builder) with(name field.Name, constraints field.Constraints, optional bool) *Builder {
	b.fields[name] = FieldDefinition{Name: name, Constraints: constraints, Optional: optional}
	return b
}

// Build returns the assembled definition.
func (b *Builder) Build() *CronDefinition {
	fields := make(map[field.Name]FieldDefinition, len(b.fields))
	names := make([]field.Name, 0, len(b.fields))
	for _, name := range field.Names() {
		if fieldDef, ok := b.fields[name]; ok {
			fields[name] = fieldDef
			names = append(names, name)
		}
	}
	return &CronDefinition{
		fields:        fields,
		names:         names,
		weekDayAnchor: b.weekDayAnchor,
	}
}

// YearConstraints returns the default numeric domain of the year
// field.
func YearConstraints() field.Constraints {
	return field.NewConstraints(1970, 2099)
}
