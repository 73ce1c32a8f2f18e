package crontime

import (
	"time"

	"github.com/reugn/go-crontime/definition"
	"github.com/reugn/go-crontime/field"
	"github.com/reugn/go-crontime/internal/generator"
)

// ExecutionTime computes past and future execution times of a cron
// recurrence. It is immutable and safe for concurrent use.
type ExecutionTime struct {
	definition *definition.CronDefinition

	yearsValueGenerator generator.FieldValueGenerator

	daysOfMonthField        field.Field
	daysOfMonthAlways       bool
	daysOfMonthQuestionMark bool

	daysOfWeekField        field.Field
	daysOfWeekAlways       bool
	daysOfWeekQuestionMark bool

	months  *timeNode
	hours   *timeNode
	minutes *timeNode
	seconds *timeNode
}

// ForCron returns the ExecutionTime for the given cron recurrence.
func ForCron(cron *Cron) (*ExecutionTime, error) {
	if cron == nil {
		return nil, illegalArgumentError("nil cron")
	}
	builder := newExecutionTimeBuilder(cron.Definition())
	for _, name := range field.Names() {
		f, ok := cron.Field(name).Get()
		if !ok {
			continue
		}
		switch name {
		case field.Second:
			builder.forSecondsMatching(f)
		case field.Minute:
			builder.forMinutesMatching(f)
		case field.Hour:
			builder.forHoursMatching(f)
		case field.DayOfMonth:
			builder.forDaysOfMonthMatching(f)
		case field.Month:
			builder.forMonthsMatching(f)
		case field.DayOfWeek:
			builder.forDaysOfWeekMatching(f)
		case field.Year:
			builder.forYearsMatching(f)
		}
	}
	return builder.build()
}

// NextExecution returns the nearest execution time strictly after the
// reference time, in the reference location.
func (et *ExecutionTime) NextExecution(t time.Time) (time.Time, error) {
	if t.IsZero() {
		return time.Time{}, illegalArgumentError("zero reference time")
	}
	reference := t.Truncate(time.Second)
	match, err := et.nextClosestMatch(reference)
	if err != nil {
		return time.Time{}, asIllegalArgument(err)
	}
	if !match.After(t) {
		match, err = et.nextClosestMatch(reference.Add(time.Second))
		if err != nil {
			return time.Time{}, asIllegalArgument(err)
		}
	}
	return match, nil
}

// LastExecution returns the nearest execution time strictly before the
// reference time, in the reference location.
func (et *ExecutionTime) LastExecution(t time.Time) (time.Time, error) {
	if t.IsZero() {
		return time.Time{}, illegalArgumentError("zero reference time")
	}
	reference := t.Truncate(time.Second)
	match, err := et.previousClosestMatch(reference)
	if err != nil {
		return time.Time{}, asIllegalArgument(err)
	}
	if !match.Before(t) {
		match, err = et.previousClosestMatch(reference.Add(-time.Second))
		if err != nil {
			return time.Time{}, asIllegalArgument(err)
		}
	}
	return match, nil
}

// TimeToNextExecution returns the duration from the reference time to
// the next execution.
func (et *ExecutionTime) TimeToNextExecution(t time.Time) (time.Duration, error) {
	next, err := et.NextExecution(t)
	if err != nil {
		return 0, err
	}
	return next.Sub(t), nil
}

// TimeFromLastExecution returns the duration from the last execution
// to the reference time.
func (et *ExecutionTime) TimeFromLastExecution(t time.Time) (time.Duration, error) {
	last, err := et.LastExecution(t)
	if err != nil {
		return 0, err
	}
	return t.Sub(last), nil
}

// nextClosestMatch walks the time fields from the coarsest to the
// finest and returns the nearest timestamp at or after the date whose
// fields are all legal. Wraps carry into the parent field using
// calendar arithmetic; the walk restarts whenever a coarser field
// changes.
func (et *ExecutionTime) nextClosestMatch(date time.Time) (time.Time, error) {
	loc := date.Location()
	for {
		year, month, day := date.Year(), int(date.Month()), date.Day()
		if len(et.yearsValueGenerator.GenerateCandidates(year, year)) == 0 {
			nextYear, err := et.yearsValueGenerator.GenerateNextValue(year)
			if err != nil {
				return time.Time{}, noMatchError("year domain exhausted")
			}
			// The year jump is direct, so no shift bookkeeping is
			// needed; finer fields restart at their lower bounds.
			date = makeDateTime(nextYear, et.months.lowest(), 1,
				et.hours.lowest(), et.minutes.lowest(), et.seconds.lowest(), loc)
			continue
		}
		days, err := et.generateDays(date)
		if err != nil {
			return time.Time{}, err
		}
		if !et.months.contains(month) {
			nearest := et.months.nextValue(month, 0)
			if nearest.shifts > 0 {
				date = makeDateTime(year, 1, 1, 0, 0, 0, loc).AddDate(nearest.shifts, 0, 0)
				continue
			}
			// The month advanced without a wrap; day legality is
			// evaluated against the new month's scope.
			scoped, err := et.generateDays(makeDateTime(year, nearest.value, 1, 0, 0, 0, loc))
			if err != nil {
				return time.Time{}, err
			}
			return makeDateTime(year, nearest.value, scoped.lowest(),
				et.hours.lowest(), et.minutes.lowest(), et.seconds.lowest(), loc), nil
		}
		if !days.contains(day) {
			nearest := days.nextValue(day, 0)
			if nearest.shifts > 0 {
				date = makeDateTime(year, month, 1, 0, 0, 0, loc).AddDate(0, nearest.shifts, 0)
				continue
			}
			return makeDateTime(year, month, nearest.value,
				et.hours.lowest(), et.minutes.lowest(), et.seconds.lowest(), loc), nil
		}
		if !et.hours.contains(date.Hour()) {
			nearest := et.hours.nextValue(date.Hour(), 0)
			if nearest.shifts > 0 {
				date = makeDateTime(year, month, day, 0, 0, 0, loc).AddDate(0, 0, nearest.shifts)
				continue
			}
			return makeDateTime(year, month, day, nearest.value,
				et.minutes.lowest(), et.seconds.lowest(), loc), nil
		}
		if !et.minutes.contains(date.Minute()) {
			nearest := et.minutes.nextValue(date.Minute(), 0)
			if nearest.shifts > 0 {
				date = makeDateTime(year, month, day, date.Hour(), 0, 0, loc).
					Add(time.Duration(nearest.shifts) * time.Hour)
				continue
			}
			return makeDateTime(year, month, day, date.Hour(), nearest.value,
				et.seconds.lowest(), loc), nil
		}
		if !et.seconds.contains(date.Second()) {
			nearest := et.seconds.nextValue(date.Second(), 0)
			if nearest.shifts > 0 {
				date = makeDateTime(year, month, day, date.Hour(), date.Minute(), 0, loc).
					Add(time.Duration(nearest.shifts) * time.Minute)
				continue
			}
			return makeDateTime(year, month, day, date.Hour(), date.Minute(),
				nearest.value, loc), nil
		}
		return date, nil
	}
}

// previousClosestMatch is the mirror of nextClosestMatch: it returns
// the nearest timestamp at or before the date whose fields are all
// legal.
func (et *ExecutionTime) previousClosestMatch(date time.Time) (time.Time, error) {
	loc := date.Location()
	for {
		year, month, day := date.Year(), int(date.Month()), date.Day()
		if len(et.yearsValueGenerator.GenerateCandidates(year, year)) == 0 {
			previousYear, err := et.yearsValueGenerator.GeneratePreviousValue(year)
			if err != nil {
				return time.Time{}, noMatchError("year domain exhausted")
			}
			highestMonth := et.months.highest()
			date = makeDateTime(previousYear, highestMonth,
				generator.LastDayOfMonth(previousYear, highestMonth),
				et.hours.highest(), et.minutes.highest(), et.seconds.highest(), loc)
			continue
		}
		days, err := et.generateDays(date)
		if err != nil {
			return time.Time{}, err
		}
		if !et.months.contains(month) {
			nearest := et.months.previousValue(month, 0)
			if nearest.shifts > 0 {
				date = makeDateTime(year, 12, 31, 23, 59, 59, loc).AddDate(-nearest.shifts, 0, 0)
				continue
			}
			scoped, err := et.generateDays(makeDateTime(year, nearest.value, 1, 0, 0, 0, loc))
			if err != nil {
				return time.Time{}, err
			}
			return makeDateTime(year, nearest.value, scoped.highest(),
				et.hours.highest(), et.minutes.highest(), et.seconds.highest(), loc), nil
		}
		if !days.contains(day) {
			nearest := days.previousValue(day, 0)
			if nearest.shifts > 0 {
				base := makeDateTime(year, month, 1, 23, 59, 59, loc).AddDate(0, -nearest.shifts, 0)
				date = makeDateTime(base.Year(), int(base.Month()),
					generator.LastDayOfMonth(base.Year(), int(base.Month())), 23, 59, 59, loc)
				continue
			}
			return makeDateTime(year, month, nearest.value,
				et.hours.highest(), et.minutes.highest(), et.seconds.highest(), loc), nil
		}
		if !et.hours.contains(date.Hour()) {
			nearest := et.hours.previousValue(date.Hour(), 0)
			if nearest.shifts > 0 {
				date = makeDateTime(year, month, day, 23, 59, 59, loc).AddDate(0, 0, -nearest.shifts)
				continue
			}
			return makeDateTime(year, month, day, nearest.value,
				et.minutes.highest(), et.seconds.highest(), loc), nil
		}
		if !et.minutes.contains(date.Minute()) {
			nearest := et.minutes.previousValue(date.Minute(), 0)
			if nearest.shifts > 0 {
				date = makeDateTime(year, month, day, date.Hour(), 59, 59, loc).
					Add(-time.Duration(nearest.shifts) * time.Hour)
				continue
			}
			return makeDateTime(year, month, day, date.Hour(), nearest.value,
				et.seconds.highest(), loc), nil
		}
		if !et.seconds.contains(date.Second()) {
			nearest := et.seconds.previousValue(date.Second(), 0)
			if nearest.shifts > 0 {
				date = makeDateTime(year, month, day, date.Hour(), date.Minute(), 59, loc).
					Add(-time.Duration(nearest.shifts) * time.Minute)
				continue
			}
			return makeDateTime(year, month, day, date.Hour(), date.Minute(),
				nearest.value, loc), nil
		}
		return date, nil
	}
}

// makeDateTime builds a normalized timestamp in the given location.
func makeDateTime(year, month, day, hour, minute, second int, loc *time.Location) time.Time {
	return time.Date(year, time.Month(month), day, hour, minute, second, 0, loc)
}
