package race

// CarState is the recorded name and position of one car at the end of a
// round.
type CarState struct {
	Name     string `json:"name"`
	Position int    `json:"position"`
}

// RoundResult is the snapshot recorded after round Number completed.
type RoundResult struct {
	Number int        `json:"round"`
	Cars   []CarState `json:"cars"`
}

func (r RoundResult) Clone() RoundResult {
	cars := make([]CarState, len(r.Cars))
	copy(cars, r.Cars)
	return RoundResult{Number: r.Number, Cars: cars}
}

// Observer is notified after each round's snapshot is recorded.
type Observer interface {
	OnRound(r RoundResult)
}

// ObserverFunc adapts a plain function to Observer.
type ObserverFunc func(r RoundResult)

func (f ObserverFunc) OnRound(r RoundResult) { f(r) }
