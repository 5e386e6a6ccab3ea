package export

import (
	"encoding/json"
	"io"
	"os"
	"time"

	"github.com/segmentio/ksuid"

	"github.com/san-kum/racesim/internal/race"
)

// Run is the exported form of one finished race.
type Run struct {
	ID        string             `json:"id"`
	CreatedAt time.Time          `json:"created_at"`
	Names     []string           `json:"names"`
	Rounds    int                `json:"rounds"`
	Threshold int                `json:"threshold"`
	Seed      int64              `json:"seed"`
	Results   []race.RoundResult `json:"results"`
	Winners   []string           `json:"winners"`
}

func NewRun(field *race.Field, seed int64) Run {
	rec := field.Results()
	return Run{
		ID:        ksuid.New().String(),
		CreatedAt: time.Now().UTC(),
		Names:     field.Cars().Names(),
		Rounds:    rec.Len(),
		Threshold: field.Threshold(),
		Seed:      seed,
		Results:   rec.Rounds(),
		Winners:   field.Winners(),
	}
}

func WriteJSON(w io.Writer, run Run) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(run)
}

// ExportJSON writes run to path, or to stdout when path is "-".
func ExportJSON(path string, run Run) error {
	if path == "-" {
		return WriteJSON(os.Stdout, run)
	}

	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	return WriteJSON(file, run)
}
