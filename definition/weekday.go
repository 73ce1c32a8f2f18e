package definition

import "time"

// WeekDay defines how a dialect numbers the days of the week, anchored
// on the value assigned to Monday and on whether the scale starts at
// zero.
type WeekDay struct {
	mondayValue  int
	firstDayZero bool
}

// Predefined weekday numbering conventions.
var (
	// CrontabWeekDay numbers Sunday as 0 and Monday as 1. Dialects
	// whose field range extends to 7 accept it as an alias for Sunday.
	CrontabWeekDay = WeekDay{mondayValue: 1, firstDayZero: true}

	// QuartzWeekDay numbers Sunday as 1, Monday as 2 and Saturday as 7.
	QuartzWeekDay = WeekDay{mondayValue: 2}
)

// NewWeekDay returns a weekday numbering with the given value for
// Monday. If firstDayZero is set, the scale is [0, 6], otherwise
// [1, 7].
func NewWeekDay(mondayValue int, firstDayZero bool) WeekDay {
	return WeekDay{mondayValue: mondayValue, firstDayZero: firstDayZero}
}

// FromWeekday maps a standard library weekday to the dialect value.
func (w WeekDay) FromWeekday(d time.Weekday) int {
	value := int(d) - int(time.Monday) + w.mondayValue
	if w.firstDayZero {
		return ((value % 7) + 7) % 7
	}
	return ((value-1)%7+7)%7 + 1
}

// ToWeekday maps a dialect value to the standard library weekday.
func (w WeekDay) ToWeekday(value int) time.Weekday {
	v := value - w.mondayValue + int(time.Monday)
	return time.Weekday(((v % 7) + 7) % 7)
}
