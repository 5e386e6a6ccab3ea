package view

import (
	"fmt"
	"io"
	"strings"

	"github.com/san-kum/racesim/internal/race"
)

const (
	resultHeader = "race result"
	errorPrefix  = "[ERROR]"
)

// RenderRecord writes every round as one "name : ---" line per car, with a
// blank line after each round.
func RenderRecord(w io.Writer, rec race.Record) error {
	var b strings.Builder
	b.WriteString("\n" + resultHeader + "\n")
	for _, r := range rec.Rounds() {
		for _, c := range r.Cars {
			b.WriteString(CarLine(c))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}
	_, err := io.WriteString(w, b.String())
	return err
}

func CarLine(c race.CarState) string {
	return c.Name + " : " + Bar(c.Position)
}

func Bar(position int) string {
	return strings.Repeat(race.Marker, position)
}

func RenderWinners(w io.Writer, winners []string) error {
	_, err := fmt.Fprintf(w, "winners: %s\n", strings.Join(winners, ", "))
	return err
}

func RenderError(w io.Writer, err error) {
	fmt.Fprintf(w, "%s %v\n", errorPrefix, err)
}
