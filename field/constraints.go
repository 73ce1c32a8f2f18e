package field

import (
	"fmt"

	sets "github.com/deckarep/golang-set/v2"
)

// Constraints bound the numeric domain of a field and list the special
// characters its dialect permits.
type Constraints struct {
	min, max     int
	specialChars sets.Set[SpecialChar]
}

// NewConstraints returns Constraints with the inclusive [min, max]
// value domain and the permitted special characters.
func NewConstraints(min, max int, specialChars ...SpecialChar) Constraints {
	return Constraints{
		min:          min,
		max:          max,
		specialChars: sets.NewSet(specialChars...),
	}
}

// Min returns the lower bound of the value domain.
func (c Constraints) Min() int {
	return c.min
}

// Max returns the upper bound of the value domain.
func (c Constraints) Max() int {
	return c.max
}

// InRange reports whether the value lies within the domain.
func (c Constraints) InRange(value int) bool {
	return value >= c.min && value <= c.max
}

// IsSpecialCharAllowed reports whether the dialect permits the special
// character for this field.
func (c Constraints) IsSpecialCharAllowed(char SpecialChar) bool {
	return c.specialChars != nil && c.specialChars.Contains(char)
}

func (c Constraints) String() string {
	return fmt.Sprintf("[%d, %d]", c.min, c.max)
}
