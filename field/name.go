package field

// Name identifies a single field of a cron recurrence.
type Name int

const (
	Second Name = iota
	Minute
	Hour
	DayOfMonth
	Month
	DayOfWeek
	Year
)

// Names returns all field names ordered from the fastest changing
// field (second) to the slowest (year).
func Names() []Name {
	return []Name{Second, Minute, Hour, DayOfMonth, Month, DayOfWeek, Year}
}

func (n Name) String() string {
	switch n {
	case Second:
		return "second"
	case Minute:
		return "minute"
	case Hour:
		return "hour"
	case DayOfMonth:
		return "day of month"
	case Month:
		return "month"
	case DayOfWeek:
		return "day of week"
	case Year:
		return "year"
	default:
		return "unknown"
	}
}
