package generator

var _ FieldValueGenerator = (*alwaysGenerator)(nil)

// alwaysGenerator yields every value of the field domain.
type alwaysGenerator struct {
	min, max int
}

func newAlwaysGenerator(min, max int) *alwaysGenerator {
	return &alwaysGenerator{min: min, max: max}
}

func (g *alwaysGenerator) GenerateCandidates(low, high int) []int {
	return fillRange(max(low, g.min), min(high, g.max))
}

func (g *alwaysGenerator) GenerateNextValue(reference int) (int, error) {
	next := max(reference+1, g.min)
	if next > g.max {
		return 0, ErrNoSuchValue
	}
	return next, nil
}

func (g *alwaysGenerator) GeneratePreviousValue(reference int) (int, error) {
	previous := min(reference-1, g.max)
	if previous < g.min {
		return 0, ErrNoSuchValue
	}
	return previous, nil
}

func (g *alwaysGenerator) IsMatch(value int) bool {
	return value >= g.min && value <= g.max
}
