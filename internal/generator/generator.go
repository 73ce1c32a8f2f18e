package generator

import "errors"

// ErrNoSuchValue is returned when a generator has no legal value
// beyond the given reference.
var ErrNoSuchValue = errors.New("no such value")

// FieldValueGenerator enumerates the legal values of one cron field.
type FieldValueGenerator interface {
	// GenerateCandidates returns the legal values within the inclusive
	// [low, high] scope in ascending order.
	GenerateCandidates(low, high int) []int

	// GenerateNextValue returns the smallest legal value strictly
	// greater than the reference, or ErrNoSuchValue.
	GenerateNextValue(reference int) (int, error)

	// GeneratePreviousValue returns the largest legal value strictly
	// less than the reference, or ErrNoSuchValue.
	GeneratePreviousValue(reference int) (int, error)

	// IsMatch reports whether the value is legal for the field.
	IsMatch(value int) bool
}

var _ FieldValueGenerator = emptyGenerator{}

// emptyGenerator yields no values. It stands in for day selections
// that do not occur in the scoped month.
type emptyGenerator struct{}

func (emptyGenerator) GenerateCandidates(_, _ int) []int {
	return nil
}

func (emptyGenerator) GenerateNextValue(_ int) (int, error) {
	return 0, ErrNoSuchValue
}

func (emptyGenerator) GeneratePreviousValue(_ int) (int, error) {
	return 0, ErrNoSuchValue
}

func (emptyGenerator) IsMatch(_ int) bool {
	return false
}
