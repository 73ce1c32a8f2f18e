package generator

import (
	"sort"

	sets "github.com/deckarep/golang-set/v2"
)

var _ FieldValueGenerator = (*andGenerator)(nil)

// andGenerator yields the union of its member generators.
type andGenerator struct {
	generators []FieldValueGenerator
}

func newAndGenerator(generators []FieldValueGenerator) *andGenerator {
	return &andGenerator{generators: generators}
}

func (g *andGenerator) GenerateCandidates(low, high int) []int {
	candidates := sets.NewSet[int]()
	for _, gen := range g.generators {
		candidates.Append(gen.GenerateCandidates(low, high)...)
	}
	values := candidates.ToSlice()
	sort.Ints(values)
	return values
}

func (g *andGenerator) GenerateNextValue(reference int) (int, error) {
	var next int
	found := false
	for _, gen := range g.generators {
		value, err := gen.GenerateNextValue(reference)
		if err != nil {
			continue
		}
		if !found || value < next {
			next, found = value, true
		}
	}
	if !found {
		return 0, ErrNoSuchValue
	}
	return next, nil
}

func (g *andGenerator) GeneratePreviousValue(reference int) (int, error) {
	var previous int
	found := false
	for _, gen := range g.generators {
		value, err := gen.GeneratePreviousValue(reference)
		if err != nil {
			continue
		}
		if !found || value > previous {
			previous, found = value, true
		}
	}
	if !found {
		return 0, ErrNoSuchValue
	}
	return previous, nil
}

func (g *andGenerator) IsMatch(value int) bool {
	for _, gen := range g.generators {
		if gen.IsMatch(value) {
			return true
		}
	}
	return false
}
