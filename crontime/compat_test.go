package crontime_test

import (
	"testing"
	"time"

	"github.com/alecthomas/assert/v2"
	"github.com/gorhill/cronexpr"

	"github.com/reugn/go-crontime/definition"
	"github.com/reugn/go-crontime/field"
)

// TestNextExecutionCronexpr walks a trail of executions for
// recurrences that have an exact cronexpr counterpart and verifies
// that both libraries produce identical instants.
func TestNextExecutionCronexpr(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name       string
		expression string
		cronType   definition.CronType
		recurrence recurrence
	}{
		{
			name:       "every fifteen minutes",
			expression: "*/15 * * * *",
			cronType:   definition.Unix,
			recurrence: recurrence{minute: field.Every{Period: 15}},
		},
		{
			name:       "weekday mornings",
			expression: "30 9 * * 1-5",
			cronType:   definition.Unix,
			recurrence: recurrence{
				minute:    field.On{Value: 30},
				hour:      field.On{Value: 9},
				dayOfWeek: field.Between{From: 1, To: 5},
			},
		},
		{
			name:       "day and weekday union",
			expression: "0 0 1,15 * 1",
			cronType:   definition.Unix,
			recurrence: recurrence{
				minute: field.On{Value: 0},
				hour:   field.On{Value: 0},
				dayOfMonth: field.And{Expressions: []field.Expression{
					field.On{Value: 1}, field.On{Value: 15},
				}},
				dayOfWeek: field.On{Value: 1},
			},
		},
		{
			name:       "minute range step",
			expression: "5-20/3 4 * * *",
			cronType:   definition.Unix,
			recurrence: recurrence{
				minute: field.Every{Over: field.Between{From: 5, To: 20}, Period: 3},
				hour:   field.On{Value: 4},
			},
		},
		{
			name:       "february noon",
			expression: "0 12 * 2 *",
			cronType:   definition.Unix,
			recurrence: recurrence{
				minute: field.On{Value: 0},
				hour:   field.On{Value: 12},
				month:  field.On{Value: 2},
			},
		},
		{
			name:       "month end days",
			expression: "45 23 28-31 * *",
			cronType:   definition.Unix,
			recurrence: recurrence{
				minute:     field.On{Value: 45},
				hour:       field.On{Value: 23},
				dayOfMonth: field.Between{From: 28, To: 31},
			},
		},
		{
			name:       "sundays",
			expression: "0 0 * * 0",
			cronType:   definition.Unix,
			recurrence: recurrence{
				minute:    field.On{Value: 0},
				hour:      field.On{Value: 0},
				dayOfWeek: field.On{Value: 0},
			},
		},
		{
			name:       "second step in work hours",
			expression: "*/30 */10 8-17 10-20 * *",
			cronType:   definition.Spring,
			recurrence: recurrence{
				second:     field.Every{Period: 30},
				minute:     field.Every{Period: 10},
				hour:       field.Between{From: 8, To: 17},
				dayOfMonth: field.Between{From: 10, To: 20},
			},
		},
		{
			name:       "weekend intervals",
			expression: "0 */20 * * * 0,6",
			cronType:   definition.Spring,
			recurrence: recurrence{
				second:     field.On{Value: 0},
				minute:     field.Every{Period: 20},
				dayOfMonth: field.QuestionMark{},
				dayOfWeek: field.And{Expressions: []field.Expression{
					field.On{Value: 0}, field.On{Value: 6},
				}},
			},
		},
	}

	for _, tt := range tests {
		test := tt
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()
			expression, err := cronexpr.Parse(test.expression)
			assert.NoError(t, err)
			executionTime := buildExecutionTime(t, test.cronType, test.recurrence)

			reference := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
			for i := 0; i < 100; i++ {
				expected := expression.Next(reference)
				assert.False(t, expected.IsZero())

				actual, err := executionTime.NextExecution(reference)
				assert.NoError(t, err)
				assert.Equal(t,
					expected.UTC().Format(time.RFC3339),
					actual.UTC().Format(time.RFC3339))

				reference = actual
			}
		})
	}
}
