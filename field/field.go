package field

import "fmt"

// Field binds a name, the expression provided for it and the
// constraints of the dialect it belongs to.
type Field struct {
	Name        Name
	Expression  Expression
	Constraints Constraints
}

// New returns a validated Field.
func New(name Name, expression Expression, constraints Constraints) (Field, error) {
	f := Field{Name: name, Expression: expression, Constraints: constraints}
	if err := f.Validate(); err != nil {
		return Field{}, err
	}
	return f, nil
}

// Validate checks the field expression against the constraints.
func (f Field) Validate() error {
	if f.Expression == nil {
		return fmt.Errorf("%s: missing expression", f.Name)
	}
	return f.validate(f.Expression, false)
}

func (f Field) validate(e Expression, nested bool) error {
	switch expr := e.(type) {
	case Always:
		return nil
	case QuestionMark:
		if nested {
			return fmt.Errorf("%s: question mark is not allowed in an expression list", f.Name)
		}
		if f.Name != DayOfMonth && f.Name != DayOfWeek {
			return fmt.Errorf("%s: question mark is only valid for day fields", f.Name)
		}
		if !f.Constraints.IsSpecialCharAllowed(SpecialCharQuestionMark) {
			return fmt.Errorf("%s: question mark is not supported", f.Name)
		}
		return nil
	case On:
		return f.validateOn(expr, nested)
	case Between:
		if !f.Constraints.InRange(expr.From) || !f.Constraints.InRange(expr.To) {
			return fmt.Errorf("%s: range %s is out of bounds %s", f.Name, expr, f.Constraints)
		}
		if expr.From > expr.To {
			return fmt.Errorf("%s: inverted range %s", f.Name, expr)
		}
		return nil
	case Every:
		return f.validateEvery(expr)
	case And:
		if nested {
			return fmt.Errorf("%s: nested expression list", f.Name)
		}
		if len(expr.Expressions) == 0 {
			return fmt.Errorf("%s: empty expression list", f.Name)
		}
		for _, sub := range expr.Expressions {
			if err := f.validate(sub, true); err != nil {
				return err
			}
		}
		return nil
	default:
		return fmt.Errorf("%s: unsupported expression type %T", f.Name, e)
	}
}

func (f Field) validateOn(expr On, nested bool) error {
	if expr.Special == SpecialCharNone {
		if !f.Constraints.InRange(expr.Value) {
			return fmt.Errorf("%s: value %d is out of bounds %s", f.Name, expr.Value, f.Constraints)
		}
		return nil
	}
	if nested {
		return fmt.Errorf("%s: special character %s is not allowed in an expression list",
			f.Name, expr.Special)
	}
	if !f.Constraints.IsSpecialCharAllowed(expr.Special) {
		return fmt.Errorf("%s: special character %s is not supported", f.Name, expr.Special)
	}
	switch expr.Special {
	case SpecialCharL:
		switch f.Name {
		case DayOfMonth:
			// Value is the offset back from the last day of the month.
			if offsetMax := f.Constraints.Max() - f.Constraints.Min(); expr.Value < 0 || expr.Value > offsetMax {
				return fmt.Errorf("%s: last day offset %d is out of bounds [0, %d]",
					f.Name, expr.Value, offsetMax)
			}
		case DayOfWeek:
			if !f.Constraints.InRange(expr.Value) {
				return fmt.Errorf("%s: value %d is out of bounds %s", f.Name, expr.Value, f.Constraints)
			}
		default:
			return fmt.Errorf("%s: special character L is only valid for day fields", f.Name)
		}
	case SpecialCharW:
		if f.Name != DayOfMonth {
			return fmt.Errorf("%s: special character W is only valid for the day of month field", f.Name)
		}
		if !f.Constraints.InRange(expr.Value) {
			return fmt.Errorf("%s: value %d is out of bounds %s", f.Name, expr.Value, f.Constraints)
		}
	case SpecialCharLW:
		if f.Name != DayOfMonth {
			return fmt.Errorf("%s: special character LW is only valid for the day of month field", f.Name)
		}
	case SpecialCharHash:
		if f.Name != DayOfWeek {
			return fmt.Errorf("%s: special character # is only valid for the day of week field", f.Name)
		}
		if !f.Constraints.InRange(expr.Value) {
			return fmt.Errorf("%s: value %d is out of bounds %s", f.Name, expr.Value, f.Constraints)
		}
		if expr.Nth < 1 || expr.Nth > 5 {
			return fmt.Errorf("%s: weekday occurrence %d is out of bounds [1, 5]", f.Name, expr.Nth)
		}
	default:
		return fmt.Errorf("%s: special character %s is not valid here", f.Name, expr.Special)
	}
	return nil
}

func (f Field) validateEvery(expr Every) error {
	if expr.Period < 1 {
		return fmt.Errorf("%s: period %d must be positive", f.Name, expr.Period)
	}
	if span := f.Constraints.Max() - f.Constraints.Min() + 1; expr.Period > span {
		return fmt.Errorf("%s: period %d exceeds the field range %s", f.Name, expr.Period, f.Constraints)
	}
	switch over := expr.Over.(type) {
	case nil, Always:
		return nil
	case On:
		if over.Special != SpecialCharNone {
			return fmt.Errorf("%s: special character %s is not allowed as a step base", f.Name, over.Special)
		}
		return f.validate(over, true)
	case Between:
		return f.validate(over, true)
	default:
		return fmt.Errorf("%s: unsupported step base %T", f.Name, expr.Over)
	}
}
