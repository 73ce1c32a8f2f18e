package definition

import (
	"github.com/alecthomas/types/optional"

	"github.com/reugn/go-crontime/field"
)

// FieldDefinition describes one field a cron dialect accepts.
type FieldDefinition struct {
	Name        field.Name
	Constraints field.Constraints
	// Optional marks a field a recurrence may omit; the engine then
	// substitutes the full field range.
	Optional bool
}

// CronDefinition is the immutable description of a cron dialect: the
// fields it accepts, their constraints and the weekday numbering in
// effect. Use a Builder or Instance to obtain one.
type CronDefinition struct {
	fields        map[field.Name]FieldDefinition
	names         []field.Name
	weekDayAnchor WeekDay
}

// FieldDefinition returns the definition of the named field, if the
// dialect accepts it.
func (d *CronDefinition) FieldDefinition(name field.Name) optional.Option[FieldDefinition] {
	if fieldDef, ok := d.fields[name]; ok {
		return optional.Some(fieldDef)
	}
	return optional.None[FieldDefinition]()
}

// ContainsField reports whether the dialect accepts the named field.
func (d *CronDefinition) ContainsField(name field.Name) bool {
	_, ok := d.fields[name]
	return ok
}

// FieldNames returns the accepted field names ordered from second to
// year.
func (d *CronDefinition) FieldNames() []field.Name {
	names := make([]field.Name, len(d.names))
	copy(names, d.names)
	return names
}

// QuestionMarkSupported reports whether the dialect admits the
// unspecified day marker.
func (d *CronDefinition) QuestionMarkSupported() bool {
	if fieldDef, ok := d.fields[field.DayOfWeek]; ok {
		return fieldDef.Constraints.IsSpecialCharAllowed(field.SpecialCharQuestionMark)
	}
	return false
}

// DayOfWeekAnchor returns the weekday numbering of the dialect.
func (d *CronDefinition) DayOfWeekAnchor() WeekDay {
	return d.weekDayAnchor
}
