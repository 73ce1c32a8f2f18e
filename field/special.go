package field

// SpecialChar enumerates the non-numeric tokens a day field expression
// can carry in addition to plain values.
type SpecialChar int

const (
	// SpecialCharNone marks a plain numeric expression.
	SpecialCharNone SpecialChar = iota
	// SpecialCharL selects the last day of the month, optionally offset
	// backwards, or the last occurrence of a weekday.
	SpecialCharL
	// SpecialCharW selects the weekday nearest to a day of the month.
	SpecialCharW
	// SpecialCharLW selects the last weekday of the month.
	SpecialCharLW
	// SpecialCharHash selects the nth occurrence of a weekday.
	SpecialCharHash
	// SpecialCharQuestionMark leaves a day field unspecified.
	SpecialCharQuestionMark
)

func (c SpecialChar) String() string {
	switch c {
	case SpecialCharNone:
		return "none"
	case SpecialCharL:
		return "L"
	case SpecialCharW:
		return "W"
	case SpecialCharLW:
		return "LW"
	case SpecialCharHash:
		return "#"
	case SpecialCharQuestionMark:
		return "?"
	default:
		return "unknown"
	}
}
