package generator

import (
	"fmt"

	"github.com/reugn/go-crontime/field"
)

// ForField returns a generator for a scalar field expression. Day
// field expressions carrying special characters are handled by
// ForDayOfMonth and ForDayOfWeek.
func ForField(f field.Field) (FieldValueGenerator, error) {
	return forExpression(f.Expression, f.Constraints)
}

func forExpression(expression field.Expression, constraints field.Constraints) (FieldValueGenerator, error) {
	switch expr := expression.(type) {
	case field.Always:
		return newAlwaysGenerator(constraints.Min(), constraints.Max()), nil
	case field.QuestionMark:
		// An unspecified day field places no constraint of its own;
		// day reconciliation decides whether it is consulted at all.
		return newAlwaysGenerator(constraints.Min(), constraints.Max()), nil
	case field.On:
		if expr.Special != field.SpecialCharNone {
			return nil, fmt.Errorf("special character %s requires a day field generator", expr.Special)
		}
		return newOnGenerator(expr.Value), nil
	case field.Between:
		return newBetweenGenerator(expr.From, expr.To), nil
	case field.Every:
		return forEvery(expr, constraints)
	case field.And:
		generators := make([]FieldValueGenerator, 0, len(expr.Expressions))
		for _, sub := range expr.Expressions {
			gen, err := forExpression(sub, constraints)
			if err != nil {
				return nil, err
			}
			generators = append(generators, gen)
		}
		return newAndGenerator(generators), nil
	default:
		return nil, fmt.Errorf("no value generator for expression %q", expression)
	}
}

func forEvery(expr field.Every, constraints field.Constraints) (FieldValueGenerator, error) {
	from, to := constraints.Min(), constraints.Max()
	switch over := expr.Over.(type) {
	case nil, field.Always:
	case field.On:
		from = over.Value
	case field.Between:
		from, to = over.From, over.To
	default:
		return nil, fmt.Errorf("unsupported step base %q", expr.Over)
	}
	return newEveryGenerator(from, to, expr.Period), nil
}
