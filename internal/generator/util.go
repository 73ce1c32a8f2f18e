package generator

import "time"

// fillRange returns the integers in the inclusive [from, to] range.
func fillRange(from, to int) []int {
	if from > to {
		return nil
	}
	values := make([]int, 0, to-from+1)
	for i := from; i <= to; i++ {
		values = append(values, i)
	}
	return values
}

// fillStep returns every step-th integer in the inclusive [from, to]
// range, starting at from.
func fillStep(from, to, step int) []int {
	if from > to || step < 1 {
		return nil
	}
	values := make([]int, 0, (to-from)/step+1)
	for i := from; i <= to; i += step {
		values = append(values, i)
	}
	return values
}

// LastDayOfMonth returns the number of days in the given month.
func LastDayOfMonth(year, month int) int {
	firstOfMonth := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	return firstOfMonth.AddDate(0, 1, -1).Day()
}

// weekdayOf returns the weekday of the given calendar day.
func weekdayOf(year, month, day int) time.Weekday {
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC).Weekday()
}

// nearestWeekday returns the weekday closest to the given day without
// leaving its month. Saturday resolves to the preceding Friday and
// Sunday to the following Monday, flipped at the month bounds.
func nearestWeekday(year, month, day int) int {
	switch weekdayOf(year, month, day) {
	case time.Saturday:
		if day == 1 {
			return 3
		}
		return day - 1
	case time.Sunday:
		if day == LastDayOfMonth(year, month) {
			return day - 2
		}
		return day + 1
	default:
		return day
	}
}

// lastWeekday returns the last day of the month that is neither a
// Saturday nor a Sunday.
func lastWeekday(year, month int) int {
	day := LastDayOfMonth(year, month)
	switch weekdayOf(year, month, day) {
	case time.Saturday:
		return day - 1
	case time.Sunday:
		return day - 2
	default:
		return day
	}
}

// daysOfWeekInMonth returns the days of the month that fall on the
// given weekday.
func daysOfWeekInMonth(year, month int, weekday time.Weekday) []int {
	lastDay := LastDayOfMonth(year, month)
	days := make([]int, 0, 5)
	day := 1 + (int(weekday)-int(weekdayOf(year, month, 1))+7)%7
	for ; day <= lastDay; day += 7 {
		days = append(days, day)
	}
	return days
}
