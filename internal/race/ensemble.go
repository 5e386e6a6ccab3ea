package race

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// Ensemble runs many independent races over the same names, each with its
// own seeded draw, and tallies who wins.
type Ensemble struct {
	names     []string
	rounds    int
	threshold int
	numRuns   int
	seedStart int64
}

func NewEnsemble(names []string, rounds, threshold, numRuns int, seedStart int64) *Ensemble {
	n := make([]string, len(names))
	copy(n, names)
	return &Ensemble{
		names:     n,
		rounds:    rounds,
		threshold: threshold,
		numRuns:   numRuns,
		seedStart: seedStart,
	}
}

// Tally counts race wins per car. A race that ends in a tie counts as a win
// for every tied car.
type Tally struct {
	Names []string
	Wins  map[string]int
	Ties  int
	Races int
}

// WinRate is the fraction of races name won, ties included.
func (t Tally) WinRate(name string) float64 {
	if t.Races == 0 {
		return 0
	}
	return float64(t.Wins[name]) / float64(t.Races)
}

func (e *Ensemble) Run(ctx context.Context) (Tally, error) {
	registry, err := NewCars(e.names)
	if err != nil {
		return Tally{}, err
	}
	if e.rounds < 1 {
		return Tally{}, &RoundCountError{Rounds: e.rounds}
	}
	if e.numRuns < 1 {
		return Tally{}, fmt.Errorf("%w, got %d", ErrInvalidRaceCount, e.numRuns)
	}

	winners := make([][]string, e.numRuns)

	g, ctx := errgroup.WithContext(ctx)
	for i := 0; i < e.numRuns; i++ {
		idx := i
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			cars, err := NewCars(e.names)
			if err != nil {
				return err
			}
			field := NewField(cars, NewRandDraw(e.seedStart+int64(idx)), WithThreshold(e.threshold))
			if err := field.Run(e.rounds); err != nil {
				return err
			}
			winners[idx] = field.Winners()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return Tally{}, err
	}

	tally := Tally{
		Names: registry.Names(),
		Wins:  make(map[string]int, len(e.names)),
		Races: e.numRuns,
	}
	for _, w := range winners {
		if len(w) > 1 {
			tally.Ties++
		}
		for _, name := range w {
			tally.Wins[name]++
		}
	}
	return tally, nil
}
