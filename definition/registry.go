package definition

import "github.com/reugn/go-crontime/field"

// CronType enumerates the built-in cron dialects.
type CronType int

const (
	// Cron4j accepts five fields with day of week numbered [0, 6] and
	// supports L on the day of month field.
	Cron4j CronType = iota
	// Unix accepts five plain fields with day of week numbered [0, 7],
	// where both 0 and 7 denote Sunday.
	Unix
	// Quartz accepts seconds and an optional year, supports L, W, LW,
	// # and the unspecified day marker, and numbers day of week
	// [1, 7] starting on Sunday.
	Quartz
	// Spring accepts seconds and supports the Quartz special
	// characters with crontab weekday numbering.
	Spring
)

func (t CronType) String() string {
	switch t {
	case Cron4j:
		return "cron4j"
	case Unix:
		return "unix"
	case Quartz:
		return "quartz"
	case Spring:
		return "spring"
	default:
		return "unknown"
	}
}

// Instance returns the definition of a built-in dialect, or nil for an
// unknown cron type.
func Instance(cronType CronType) *CronDefinition {
	switch cronType {
	case Cron4j:
		return NewBuilder().
			WithMinute().
			WithHour().
			WithDayOfMonth(field.SpecialCharL).
			WithMonth().
			WithDayOfWeek(0, 6, CrontabWeekDay).
			Build()
	case Unix:
		return NewBuilder().
			WithMinute().
			WithHour().
			WithDayOfMonth().
			WithMonth().
			WithDayOfWeek(0, 7, CrontabWeekDay).
			Build()
	case Quartz:
		return NewBuilder().
			WithSecond().
			WithMinute().
			WithHour().
			WithDayOfMonth(field.SpecialCharL, field.SpecialCharW,
				field.SpecialCharLW, field.SpecialCharQuestionMark).
			WithMonth().
			WithDayOfWeek(1, 7, QuartzWeekDay, field.SpecialCharL,
				field.SpecialCharHash, field.SpecialCharQuestionMark).
			WithYear().
			Build()
	case Spring:
		return NewBuilder().
			WithSecond().
			WithMinute().
			WithHour().
			WithDayOfMonth(field.SpecialCharL, field.SpecialCharW,
				field.SpecialCharLW, field.SpecialCharQuestionMark).
			WithMonth().
			WithDayOfWeek(0, 7, CrontabWeekDay, field.SpecialCharL,
				field.SpecialCharHash, field.SpecialCharQuestionMark).
			Build()
	default:
		return nil
	}
}
