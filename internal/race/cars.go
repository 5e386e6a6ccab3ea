package race

import (
	"fmt"
	"strings"
)

const (
	// Delimiter separates car names in raw input.
	Delimiter = ","

	MinCars = 2
)

// Cars is the ordered set of uniquely named cars in one race. Membership and
// order are fixed at construction; only the cars' positions change.
type Cars struct {
	cars []*Car
}

// ParseCars splits raw on Delimiter and builds the registry from the tokens.
func ParseCars(raw string) (*Cars, error) {
	return NewCars(strings.Split(raw, Delimiter))
}

// NewCars trims every name and validates the set. Validation is fail-fast:
// the first problem is returned and no registry is built.
func NewCars(names []string) (*Cars, error) {
	trimmed := make([]string, len(names))
	for i, name := range names {
		trimmed[i] = strings.TrimSpace(name)
	}

	if len(trimmed) < MinCars {
		return nil, fmt.Errorf("%w, got %d", ErrTooFewCars, len(trimmed))
	}

	seen := make(map[string]struct{}, len(trimmed))
	for _, name := range trimmed {
		if _, ok := seen[name]; ok {
			return nil, fmt.Errorf("%w: %q appears more than once", ErrDuplicateName, name)
		}
		seen[name] = struct{}{}
	}

	cars := make([]*Car, 0, len(trimmed))
	for _, name := range trimmed {
		car, err := NewCar(name)
		if err != nil {
			return nil, err
		}
		cars = append(cars, car)
	}

	return &Cars{cars: cars}, nil
}

// All returns the cars in registry order. The slice is a copy; the cars are
// shared with the registry.
func (c *Cars) All() []*Car {
	out := make([]*Car, len(c.cars))
	copy(out, c.cars)
	return out
}

func (c *Cars) Len() int { return len(c.cars) }

func (c *Cars) Names() []string {
	names := make([]string, len(c.cars))
	for i, car := range c.cars {
		names[i] = car.Name()
	}
	return names
}

// Snapshot returns the current name and position of every car in registry
// order.
func (c *Cars) Snapshot() []CarState {
	states := make([]CarState, len(c.cars))
	for i, car := range c.cars {
		states[i] = car.State()
	}
	return states
}

// MaxPosition is the furthest position reached by any car, or 0 for an
// empty registry.
func (c *Cars) MaxPosition() int {
	if len(c.cars) == 0 {
		return 0
	}
	leader := c.cars[0]
	for _, car := range c.cars[1:] {
		if car.Compare(leader) > 0 {
			leader = car
		}
	}
	return leader.Position()
}

// Winners returns every car at MaxPosition, in registry order.
func (c *Cars) Winners() []*Car {
	top := c.MaxPosition()
	winners := make([]*Car, 0, len(c.cars))
	for _, car := range c.cars {
		if car.IsAtPosition(top) {
			winners = append(winners, car)
		}
	}
	return winners
}

// ResolveWinners returns the names of the cars at the maximum position, in
// registry order. Ties are always all included.
func ResolveWinners(cars *Cars) []string {
	winners := cars.Winners()
	names := make([]string, len(winners))
	for i, car := range winners {
		names[i] = car.Name()
	}
	return names
}
