package race

import (
	"errors"
	"fmt"
)

// Domain errors for race setup. All of them are returned at construction
// time; a running race never fails.
var (
	// ErrTooFewCars indicates fewer than MinCars names were supplied.
	ErrTooFewCars = errors.New("race: at least two cars are required")

	// ErrDuplicateName indicates two names are equal after trimming.
	ErrDuplicateName = errors.New("race: car names must be unique")

	// ErrInvalidName indicates an empty, too long, or reserved-marker name.
	ErrInvalidName = errors.New("race: invalid car name")

	// ErrInvalidRoundCount indicates a round count below one.
	ErrInvalidRoundCount = errors.New("race: round count must be a positive integer")

	// ErrInvalidRaceCount indicates an ensemble asked to run fewer than one race.
	ErrInvalidRaceCount = errors.New("race: race count must be a positive integer")
)

// NameError wraps ErrInvalidName with the offending name and the rule it broke.
type NameError struct {
	Name   string
	Reason string
}

func (e *NameError) Error() string {
	return fmt.Sprintf("%v %q: %s", ErrInvalidName, e.Name, e.Reason)
}

func (e *NameError) Unwrap() error {
	return ErrInvalidName
}

// RoundCountError wraps ErrInvalidRoundCount with the rejected value.
type RoundCountError struct {
	Rounds int
}

func (e *RoundCountError) Error() string {
	return fmt.Sprintf("%v, got %d", ErrInvalidRoundCount, e.Rounds)
}

func (e *RoundCountError) Unwrap() error {
	return ErrInvalidRoundCount
}
