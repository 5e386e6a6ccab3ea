package view

import (
	"fmt"
	"strings"

	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/racesim/internal/race"
)

var seriesColors = []asciigraph.AnsiColor{
	asciigraph.Blue,
	asciigraph.Red,
	asciigraph.Green,
	asciigraph.Yellow,
	asciigraph.Magenta,
	asciigraph.Cyan,
}

// PlotPositions draws every car's position over the rounds. Each series
// starts at round 0, position 0.
func PlotPositions(rec race.Record) (string, error) {
	rounds := rec.Rounds()
	if len(rounds) == 0 {
		return "", fmt.Errorf("no rounds to plot")
	}

	names := make([]string, len(rounds[0].Cars))
	series := make([][]float64, len(rounds[0].Cars))
	for i, c := range rounds[0].Cars {
		names[i] = c.Name
		series[i] = make([]float64, 1, len(rounds)+1)
	}
	for _, r := range rounds {
		for i, c := range r.Cars {
			series[i] = append(series[i], float64(c.Position))
		}
	}

	colors := make([]asciigraph.AnsiColor, len(series))
	legend := make([]string, len(series))
	for i := range series {
		colors[i] = seriesColors[i%len(seriesColors)]
		legend[i] = fmt.Sprintf("%s=%s", names[i], colorName(i))
	}

	height := len(rounds)
	if height > 15 {
		height = 15
	}

	return asciigraph.PlotMany(series,
		asciigraph.Height(height),
		asciigraph.Precision(0),
		asciigraph.SeriesColors(colors...),
		asciigraph.Caption("position by round ("+strings.Join(legend, ", ")+")"),
	), nil
}

func colorName(i int) string {
	return [...]string{"blue", "red", "green", "yellow", "magenta", "cyan"}[i%len(seriesColors)]
}
