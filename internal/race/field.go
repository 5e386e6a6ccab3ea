package race

// DefaultThreshold is the move threshold: a car moves when its draw is
// strictly greater, so outcomes 4-9 move and 0-3 stay.
const DefaultThreshold = 3

// Field runs a race over a fixed set of cars.
type Field struct {
	cars      *Cars
	draw      Draw
	threshold int
	record    Record
	observers []Observer
}

type Option func(*Field)

// WithThreshold overrides DefaultThreshold.
func WithThreshold(threshold int) Option {
	return func(f *Field) { f.threshold = threshold }
}

func NewField(cars *Cars, draw Draw, opts ...Option) *Field {
	f := &Field{
		cars:      cars,
		draw:      draw,
		threshold: DefaultThreshold,
		observers: make([]Observer, 0),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

func (f *Field) AddObserver(o Observer) { f.observers = append(f.observers, o) }

func (f *Field) Threshold() int { return f.threshold }

// Run plays the given number of rounds. Round numbers continue from any
// rounds already recorded by an earlier call.
func (f *Field) Run(rounds int) error {
	if rounds < 1 {
		return &RoundCountError{Rounds: rounds}
	}

	cars := f.cars.All()
	for i := 0; i < rounds; i++ {
		f.runRound(cars)

		result := RoundResult{
			Number: f.record.Len() + 1,
			Cars:   f.cars.Snapshot(),
		}
		f.record.append(result)

		for _, obs := range f.observers {
			obs.OnRound(result.Clone())
		}
	}
	return nil
}

// runRound draws exactly once per car, in registry order, before moving it.
func (f *Field) runRound(cars []*Car) {
	for _, car := range cars {
		car.Advance(f.shouldMove(f.draw.Next()))
	}
}

func (f *Field) shouldMove(outcome int) bool {
	return outcome > f.threshold
}

// Results returns a copy of every round recorded so far.
func (f *Field) Results() Record {
	return f.record.clone()
}

func (f *Field) Winners() []string {
	return ResolveWinners(f.cars)
}

func (f *Field) Cars() *Cars { return f.cars }
