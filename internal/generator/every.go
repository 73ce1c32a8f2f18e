package generator

var _ FieldValueGenerator = (*everyGenerator)(nil)

// everyGenerator yields each period-th value of a progression starting
// at from and bounded by to.
type everyGenerator struct {
	from, to, period int
}

func newEveryGenerator(from, to, period int) *everyGenerator {
	return &everyGenerator{from: from, to: to, period: period}
}

func (g *everyGenerator) GenerateCandidates(low, high int) []int {
	from := g.from
	if low > from {
		// Align the start of the progression with the scope.
		from += (low - g.from + g.period - 1) / g.period * g.period
	}
	return fillStep(from, min(high, g.to), g.period)
}

func (g *everyGenerator) GenerateNextValue(reference int) (int, error) {
	if reference < g.from {
		return g.from, nil
	}
	next := g.from + ((reference-g.from)/g.period+1)*g.period
	if next > g.to {
		return 0, ErrNoSuchValue
	}
	return next, nil
}

func (g *everyGenerator) GeneratePreviousValue(reference int) (int, error) {
	if reference <= g.from {
		return 0, ErrNoSuchValue
	}
	if reference > g.to {
		return g.from + (g.to-g.from)/g.period*g.period, nil
	}
	return g.from + (reference-g.from-1)/g.period*g.period, nil
}

func (g *everyGenerator) IsMatch(value int) bool {
	return value >= g.from && value <= g.to && (value-g.from)%g.period == 0
}
