package field_test

import (
	"testing"

	"github.com/alecthomas/assert/v2"

	"github.com/reugn/go-crontime/field"
)

func TestExpressionString(t *testing.T) {
	t.Parallel()
	tests := []struct {
		expression field.Expression
		expected   string
	}{
		{field.Always{}, "*"},
		{field.QuestionMark{}, "?"},
		{field.On{Value: 5}, "5"},
		{field.On{Value: 3, Special: field.SpecialCharL}, "3L"},
		{field.On{Special: field.SpecialCharL}, "L"},
		{field.On{Value: 15, Special: field.SpecialCharW}, "15W"},
		{field.On{Special: field.SpecialCharLW}, "LW"},
		{field.On{Value: 6, Special: field.SpecialCharHash, Nth: 3}, "6#3"},
		{field.Between{From: 8, To: 17}, "8-17"},
		{field.Every{Period: 15}, "*/15"},
		{field.Every{Over: field.Between{From: 10, To: 40}, Period: 5}, "10-40/5"},
		{field.Every{Over: field.On{Value: 10}, Period: 20}, "10/20"},
		{field.And{Expressions: []field.Expression{
			field.On{Value: 1}, field.Between{From: 5, To: 7},
		}}, "1,5-7"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, tt.expression.String())
		})
	}
}

func TestExpressionClassification(t *testing.T) {
	t.Parallel()
	assert.True(t, field.IsAlways(field.Always{}))
	assert.False(t, field.IsAlways(field.On{Value: 1}))
	assert.False(t, field.IsAlways(nil))
	assert.True(t, field.IsQuestionMark(field.QuestionMark{}))
	assert.False(t, field.IsQuestionMark(field.Always{}))
	assert.False(t, field.IsQuestionMark(nil))
}

func TestConstraints(t *testing.T) {
	t.Parallel()
	constraints := field.NewConstraints(1, 31, field.SpecialCharL, field.SpecialCharW)

	assert.Equal(t, 1, constraints.Min())
	assert.Equal(t, 31, constraints.Max())
	assert.True(t, constraints.InRange(1))
	assert.True(t, constraints.InRange(31))
	assert.False(t, constraints.InRange(0))
	assert.False(t, constraints.InRange(32))
	assert.True(t, constraints.IsSpecialCharAllowed(field.SpecialCharL))
	assert.True(t, constraints.IsSpecialCharAllowed(field.SpecialCharW))
	assert.False(t, constraints.IsSpecialCharAllowed(field.SpecialCharHash))
	assert.Equal(t, "[1, 31]", constraints.String())

	var zero field.Constraints
	assert.False(t, zero.IsSpecialCharAllowed(field.SpecialCharL))
}
