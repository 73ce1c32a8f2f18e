package generator

import (
	"fmt"

	"github.com/reugn/go-crontime/field"
)

// ForDayOfMonth returns a generator for the day of month field scoped
// to the given month.
func ForDayOfMonth(f field.Field, year, month int) (FieldValueGenerator, error) {
	expr, ok := f.Expression.(field.On)
	if !ok || expr.Special == field.SpecialCharNone {
		return forExpression(f.Expression, f.Constraints)
	}
	lastDay := LastDayOfMonth(year, month)
	switch expr.Special {
	case field.SpecialCharL:
		day := lastDay - expr.Value
		if day < 1 {
			return emptyGenerator{}, nil
		}
		return newOnGenerator(day), nil
	case field.SpecialCharW:
		if expr.Value > lastDay {
			return emptyGenerator{}, nil
		}
		return newOnGenerator(nearestWeekday(year, month, expr.Value)), nil
	case field.SpecialCharLW:
		return newOnGenerator(lastWeekday(year, month)), nil
	default:
		return nil, fmt.Errorf("special character %s is not valid for the day of month field",
			expr.Special)
	}
}
