package generator

import (
	"fmt"
	"time"

	"github.com/reugn/go-crontime/definition"
	"github.com/reugn/go-crontime/field"
)

// ForDayOfWeek returns a generator for the day of week field scoped to
// the given month, translating weekday values into days of that month
// using the dialect numbering.
func ForDayOfWeek(f field.Field, year, month int, anchor definition.WeekDay) (FieldValueGenerator, error) {
	if expr, ok := f.Expression.(field.On); ok && expr.Special != field.SpecialCharNone {
		switch expr.Special {
		case field.SpecialCharL:
			return nthWeekdayOfMonth(year, month, anchor.ToWeekday(expr.Value), 0), nil
		case field.SpecialCharHash:
			return nthWeekdayOfMonth(year, month, anchor.ToWeekday(expr.Value), expr.Nth), nil
		default:
			return nil, fmt.Errorf("special character %s is not valid for the day of week field",
				expr.Special)
		}
	}
	matcher, err := forExpression(f.Expression, f.Constraints)
	if err != nil {
		return nil, err
	}
	return &weekdayScanGenerator{
		year:        year,
		month:       month,
		anchor:      anchor,
		constraints: f.Constraints,
		matcher:     matcher,
	}, nil
}

// nthWeekdayOfMonth returns a generator for the nth occurrence of the
// weekday within the month, counting the last occurrence when nth is
// zero.
func nthWeekdayOfMonth(year, month int, weekday time.Weekday, nth int) FieldValueGenerator {
	days := daysOfWeekInMonth(year, month, weekday)
	if nth == 0 && len(days) > 0 {
		return newOnGenerator(days[len(days)-1])
	}
	if nth >= 1 && nth <= len(days) {
		return newOnGenerator(days[nth-1])
	}
	return emptyGenerator{}
}

var _ FieldValueGenerator = (*weekdayScanGenerator)(nil)

// weekdayScanGenerator yields the days of a month whose weekday value
// matches the field expression.
type weekdayScanGenerator struct {
	year, month int
	anchor      definition.WeekDay
	constraints field.Constraints
	matcher     FieldValueGenerator
}

func (g *weekdayScanGenerator) GenerateCandidates(low, high int) []int {
	high = min(high, LastDayOfMonth(g.year, g.month))
	var days []int
	for day := max(low, 1); day <= high; day++ {
		if g.matchesDay(day) {
			days = append(days, day)
		}
	}
	return days
}

func (g *weekdayScanGenerator) GenerateNextValue(reference int) (int, error) {
	lastDay := LastDayOfMonth(g.year, g.month)
	for day := max(reference+1, 1); day <= lastDay; day++ {
		if g.matchesDay(day) {
			return day, nil
		}
	}
	return 0, ErrNoSuchValue
}

func (g *weekdayScanGenerator) GeneratePreviousValue(reference int) (int, error) {
	for day := min(reference-1, LastDayOfMonth(g.year, g.month)); day >= 1; day-- {
		if g.matchesDay(day) {
			return day, nil
		}
	}
	return 0, ErrNoSuchValue
}

func (g *weekdayScanGenerator) IsMatch(day int) bool {
	if day < 1 || day > LastDayOfMonth(g.year, g.month) {
		return false
	}
	return g.matchesDay(day)
}

func (g *weekdayScanGenerator) matchesDay(day int) bool {
	value := g.anchor.FromWeekday(weekdayOf(g.year, g.month, day))
	if g.matcher.IsMatch(value) {
		return true
	}
	// A dialect whose range spans eight labels names the first day
	// twice, e.g. both 0 and 7 denote Sunday in unix crontabs.
	if value == g.constraints.Min() && g.constraints.Max()-g.constraints.Min() == 7 {
		return g.matcher.IsMatch(g.constraints.Max())
	}
	return false
}
