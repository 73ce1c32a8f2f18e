package generator

var _ FieldValueGenerator = (*onGenerator)(nil)

// onGenerator yields a single fixed value.
type onGenerator struct {
	value int
}

func newOnGenerator(value int) *onGenerator {
	return &onGenerator{value: value}
}

func (g *onGenerator) GenerateCandidates(low, high int) []int {
	if g.value < low || g.value > high {
		return nil
	}
	return []int{g.value}
}

func (g *onGenerator) GenerateNextValue(reference int) (int, error) {
	if g.value > reference {
		return g.value, nil
	}
	return 0, ErrNoSuchValue
}

func (g *onGenerator) GeneratePreviousValue(reference int) (int, error) {
	if g.value < reference {
		return g.value, nil
	}
	return 0, ErrNoSuchValue
}

func (g *onGenerator) IsMatch(value int) bool {
	return value == g.value
}
