package crontime

import (
	"fmt"
	"sort"
	"time"

	sets "github.com/deckarep/golang-set/v2"

	"github.com/reugn/go-crontime/internal/generator"
)

// generateDays builds the set of matching days for the month of the
// given date, reconciling the day of month and day of week fields
// under the dialect rules.
func (et *ExecutionTime) generateDays(date time.Time) (*timeNode, error) {
	year, month := date.Year(), int(date.Month())
	var candidates []int
	var err error
	if et.definition.QuestionMarkSupported() {
		candidates, err = et.dayCandidatesQuestionMarkSupported(year, month)
	} else {
		candidates, err = et.dayCandidatesQuestionMarkNotSupported(year, month)
	}
	if err != nil {
		return nil, err
	}
	if len(candidates) == 0 {
		return nil, noMatchError(fmt.Sprintf("no days match in %d-%02d", year, month))
	}
	return newTimeNode(candidates)
}

// dayCandidatesQuestionMarkSupported reconciles the day fields of a
// dialect with an unspecified day marker: a field declared "always"
// cedes day selection to the day of month field, an unspecified field
// cedes it to the other day field, and two constrained fields combine
// by union.
func (et *ExecutionTime) dayCandidatesQuestionMarkSupported(year, month int) ([]int, error) {
	switch {
	case et.daysOfMonthAlways || et.daysOfWeekAlways:
		return et.dayOfMonthCandidates(year, month)
	case et.daysOfMonthQuestionMark:
		return et.dayOfWeekCandidates(year, month)
	case et.daysOfWeekQuestionMark:
		return et.dayOfMonthCandidates(year, month)
	default:
		return et.dayCandidatesUnion(year, month)
	}
}

// dayCandidatesQuestionMarkNotSupported reconciles the day fields of a
// dialect without an unspecified day marker: "always" on exactly one
// field cedes day selection to the other, and two constrained fields
// combine by union.
func (et *ExecutionTime) dayCandidatesQuestionMarkNotSupported(year, month int) ([]int, error) {
	switch {
	case et.daysOfMonthAlways && et.daysOfWeekAlways:
		return et.dayOfMonthCandidates(year, month)
	case et.daysOfMonthAlways:
		return et.dayOfWeekCandidates(year, month)
	case et.daysOfWeekAlways:
		return et.dayOfMonthCandidates(year, month)
	default:
		return et.dayCandidatesUnion(year, month)
	}
}

func (et *ExecutionTime) dayOfMonthCandidates(year, month int) ([]int, error) {
	gen, err := generator.ForDayOfMonth(et.daysOfMonthField, year, month)
	if err != nil {
		return nil, invalidRecurrenceError(err.Error())
	}
	return gen.GenerateCandidates(1, generator.LastDayOfMonth(year, month)), nil
}

func (et *ExecutionTime) dayOfWeekCandidates(year, month int) ([]int, error) {
	gen, err := generator.ForDayOfWeek(et.daysOfWeekField, year, month,
		et.definition.DayOfWeekAnchor())
	if err != nil {
		return nil, invalidRecurrenceError(err.Error())
	}
	return gen.GenerateCandidates(1, generator.LastDayOfMonth(year, month)), nil
}

func (et *ExecutionTime) dayCandidatesUnion(year, month int) ([]int, error) {
	byDayOfMonth, err := et.dayOfMonthCandidates(year, month)
	if err != nil {
		return nil, err
	}
	byDayOfWeek, err := et.dayOfWeekCandidates(year, month)
	if err != nil {
		return nil, err
	}
	union := sets.NewSet(byDayOfMonth...)
	union.Append(byDayOfWeek...)
	days := union.ToSlice()
	sort.Ints(days)
	return days, nil
}
