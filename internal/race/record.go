package race

// Record is the ordered, append-only list of round snapshots for one race.
// Round numbers run 1..Len() in insertion order. Every read returns a copy.
type Record struct {
	rounds []RoundResult
}

func (r *Record) append(round RoundResult) {
	r.rounds = append(r.rounds, round.Clone())
}

func (r Record) Len() int { return len(r.rounds) }

// Round returns the snapshot for round n (1-based).
func (r Record) Round(n int) (RoundResult, bool) {
	if n < 1 || n > len(r.rounds) {
		return RoundResult{}, false
	}
	return r.rounds[n-1].Clone(), true
}

func (r Record) Rounds() []RoundResult {
	out := make([]RoundResult, len(r.rounds))
	for i, round := range r.rounds {
		out[i] = round.Clone()
	}
	return out
}

// Final returns the last recorded round, if any.
func (r Record) Final() (RoundResult, bool) {
	return r.Round(len(r.rounds))
}

func (r Record) clone() Record {
	return Record{rounds: r.Rounds()}
}
