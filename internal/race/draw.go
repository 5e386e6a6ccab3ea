package race

import "math/rand"

const (
	// DrawRange is the number of distinct outcomes a Draw produces, 0..9.
	DrawRange = 10

	// drawSpan is the width of the underlying uniform draw before it is
	// reduced modulo DrawRange.
	drawSpan = 100
)

// Draw produces one outcome in [0, DrawRange) per call. It is the only
// source of randomness in a race.
type Draw interface {
	Next() int
}

// RandDraw is a seeded pseudo-random Draw.
type RandDraw struct {
	seed int64
	src  *rand.Rand
}

func NewRandDraw(seed int64) *RandDraw {
	return &RandDraw{
		seed: seed,
		src:  rand.New(rand.NewSource(seed)),
	}
}

func (d *RandDraw) Next() int {
	return d.src.Intn(drawSpan) % DrawRange
}

func (d *RandDraw) Seed() int64 { return d.seed }

// SequenceDraw replays a fixed list of outcomes in order, starting over once
// the list is exhausted.
type SequenceDraw struct {
	values []int
	pos    int
}

func NewSequenceDraw(values ...int) *SequenceDraw {
	v := make([]int, len(values))
	copy(v, values)
	return &SequenceDraw{values: v}
}

func (d *SequenceDraw) Next() int {
	if len(d.values) == 0 {
		return 0
	}
	v := d.values[d.pos%len(d.values)]
	d.pos++
	return v
}

// Calls returns how many outcomes have been handed out.
func (d *SequenceDraw) Calls() int { return d.pos }
