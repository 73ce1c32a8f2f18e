package field

import (
	"fmt"
	"strconv"
	"strings"
)

// Expression is the value pattern of a single cron field. The set of
// implementations is closed.
type Expression interface {
	fmt.Stringer

	expression()
}

// Always matches every value the field allows.
type Always struct{}

// QuestionMark marks a day field as unspecified, leaving day selection
// to the other day field.
type QuestionMark struct{}

// On matches a single value. Special refines the meaning for day
// fields: for day of month, SpecialCharL selects the last day of the
// month minus Value days, SpecialCharW the weekday nearest to day
// Value and SpecialCharLW the last weekday of the month; for day of
// week, SpecialCharL selects the last occurrence of the weekday Value
// and SpecialCharHash its Nth occurrence.
type On struct {
	Value   int
	Special SpecialChar
	Nth     int
}

// Between matches every value in the inclusive [From, To] range.
type Between struct {
	From int
	To   int
}

// Every matches each Period-th value starting from the lower bound of
// Over. A nil Over spans the whole field range; an On starts the
// progression at its value; a Between restricts the progression to its
// range.
type Every struct {
	Over   Expression
	Period int
}

// And matches the union of its member expressions.
type And struct {
	Expressions []Expression
}

func (Always) expression()       {}
func (QuestionMark) expression() {}
func (On) expression()           {}
func (Between) expression()      {}
func (Every) expression()        {}
func (And) expression()          {}

func (Always) String() string {
	return "*"
}

func (QuestionMark) String() string {
	return "?"
}

func (e On) String() string {
	switch e.Special {
	case SpecialCharL:
		if e.Value == 0 {
			return "L"
		}
		return fmt.Sprintf("%dL", e.Value)
	case SpecialCharW:
		return fmt.Sprintf("%dW", e.Value)
	case SpecialCharLW:
		return "LW"
	case SpecialCharHash:
		return fmt.Sprintf("%d#%d", e.Value, e.Nth)
	default:
		return strconv.Itoa(e.Value)
	}
}

func (e Between) String() string {
	return fmt.Sprintf("%d-%d", e.From, e.To)
}

func (e Every) String() string {
	if e.Over == nil {
		return fmt.Sprintf("*/%d", e.Period)
	}
	return fmt.Sprintf("%s/%d", e.Over, e.Period)
}

func (e And) String() string {
	parts := make([]string, len(e.Expressions))
	for i, expression := range e.Expressions {
		parts[i] = expression.String()
	}
	return strings.Join(parts, ",")
}

// IsAlways reports whether the expression matches the entire field
// range.
func IsAlways(e Expression) bool {
	_, ok := e.(Always)
	return ok
}

// IsQuestionMark reports whether the expression leaves the field
// unspecified.
func IsQuestionMark(e Expression) bool {
	_, ok := e.(QuestionMark)
	return ok
}
