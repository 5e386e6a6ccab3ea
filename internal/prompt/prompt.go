// Package prompt asks for race input on a console and keeps asking until the
// race accepts it.
package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/san-kum/racesim/internal/race"
	"github.com/san-kum/racesim/internal/view"
)

const (
	carsQuestion   = "Enter car names separated by commas (,):"
	roundsQuestion = "How many rounds?"
)

// ErrNoInput is returned when input ends before a valid answer was given.
var ErrNoInput = errors.New("prompt: input closed before a valid answer")

type Prompter struct {
	in  *bufio.Scanner
	out io.Writer
}

func New(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{in: bufio.NewScanner(in), out: out}
}

// Cars asks for names until they form a valid race.
func (p *Prompter) Cars() (*race.Cars, error) {
	return ask(p, carsQuestion, race.ParseCars)
}

// Rounds asks for a round count until it is a positive integer.
func (p *Prompter) Rounds() (int, error) {
	return ask(p, roundsQuestion, ParseRounds)
}

// ParseRounds accepts a positive integer, surrounding space ignored.
func ParseRounds(raw string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a number", race.ErrInvalidRoundCount, raw)
	}
	if n < 1 {
		return 0, &race.RoundCountError{Rounds: n}
	}
	return n, nil
}

func ask[T any](p *Prompter, question string, parse func(string) (T, error)) (T, error) {
	for {
		fmt.Fprintln(p.out, question)
		if !p.in.Scan() {
			var zero T
			if err := p.in.Err(); err != nil {
				return zero, err
			}
			return zero, ErrNoInput
		}
		v, err := parse(p.in.Text())
		if err == nil {
			return v, nil
		}
		view.RenderError(p.out, err)
	}
}
