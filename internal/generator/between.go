package generator

var _ FieldValueGenerator = (*betweenGenerator)(nil)

// betweenGenerator yields every value of an inclusive range.
type betweenGenerator struct {
	from, to int
}

func newBetweenGenerator(from, to int) *betweenGenerator {
	return &betweenGenerator{from: from, to: to}
}

func (g *betweenGenerator) GenerateCandidates(low, high int) []int {
	return fillRange(max(low, g.from), min(high, g.to))
}

func (g *betweenGenerator) GenerateNextValue(reference int) (int, error) {
	next := max(reference+1, g.from)
	if next > g.to {
		return 0, ErrNoSuchValue
	}
	return next, nil
}

func (g *betweenGenerator) GeneratePreviousValue(reference int) (int, error) {
	previous := min(reference-1, g.to)
	if previous < g.from {
		return 0, ErrNoSuchValue
	}
	return previous, nil
}

func (g *betweenGenerator) IsMatch(value int) bool {
	return value >= g.from && value <= g.to
}
