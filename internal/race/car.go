package race

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

const (
	// MaxNameLength is the longest allowed car name, in runes.
	MaxNameLength = 5

	// Marker is drawn once per position unit when a race is rendered, so a
	// name may not contain it.
	Marker = "-"
)

// Car is a single race participant. Its position starts at zero and only
// ever grows by one per round.
type Car struct {
	name     string
	position int
}

// NewCar trims surrounding space from name before validating and storing it.
// A NameError reports the name as given.
func NewCar(name string) (*Car, error) {
	trimmed := strings.TrimSpace(name)
	if reason := validateName(trimmed); reason != "" {
		return nil, &NameError{Name: name, Reason: reason}
	}
	return &Car{name: trimmed}, nil
}

func validateName(name string) string {
	if name == "" {
		return "name is empty"
	}
	if n := utf8.RuneCountInString(name); n > MaxNameLength {
		return fmt.Sprintf("name has %d characters, limit is %d", n, MaxNameLength)
	}
	if strings.Contains(name, Marker) {
		return fmt.Sprintf("name contains reserved marker %q", Marker)
	}
	return ""
}

func (c *Car) Name() string  { return c.name }
func (c *Car) Position() int { return c.position }

// Advance moves the car forward by one when shouldMove is set.
func (c *Car) Advance(shouldMove bool) {
	if shouldMove {
		c.position++
	}
}

func (c *Car) IsAtPosition(p int) bool {
	return c.position == p
}

// Compare orders cars by position only; cars at the same position rank
// equal whatever their names.
func (c *Car) Compare(other *Car) int {
	switch {
	case c.position < other.position:
		return -1
	case c.position > other.position:
		return 1
	default:
		return 0
	}
}

func (c *Car) State() CarState {
	return CarState{Name: c.name, Position: c.position}
}
