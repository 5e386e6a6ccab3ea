package view

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/racesim/internal/race"
)

var (
	Panel = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#444466")).
		Padding(0, 1)

	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#00ffff"))

	RoundLabel = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888899"))

	NameStyle = lipgloss.NewStyle().
			Width(race.MaxNameLength + 1).
			Foreground(lipgloss.Color("#ffffff"))

	BarStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#00ccff"))

	LeaderBar = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#00ff88"))

	WinnerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#ff00ff"))

	KeyHint = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#666688")).
		Italic(true)
)

// StyledRound renders one round with the leaders' bars highlighted.
func StyledRound(r race.RoundResult) string {
	top := 0
	for _, c := range r.Cars {
		if c.Position > top {
			top = c.Position
		}
	}

	lines := make([]string, 0, len(r.Cars)+1)
	lines = append(lines, RoundLabel.Render(fmt.Sprintf("round %d", r.Number)))
	for _, c := range r.Cars {
		bar := BarStyle
		if c.Position == top && top > 0 {
			bar = LeaderBar
		}
		lines = append(lines, NameStyle.Render(c.Name)+" "+bar.Render(Bar(c.Position)))
	}
	return strings.Join(lines, "\n")
}

func RenderStyled(w io.Writer, rec race.Record, winners []string) error {
	blocks := make([]string, 0, rec.Len()+2)
	blocks = append(blocks, Title.Render(resultHeader))
	for _, r := range rec.Rounds() {
		blocks = append(blocks, StyledRound(r))
	}
	blocks = append(blocks, WinnerStyle.Render("winners: "+strings.Join(winners, ", ")))

	_, err := io.WriteString(w, Panel.Render(strings.Join(blocks, "\n\n"))+"\n")
	return err
}
