package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/san-kum/racesim/internal/race"
	"github.com/san-kum/racesim/internal/view"
)

const DefaultInterval = 500 * time.Millisecond

type TickMsg time.Time

// Model replays a finished race one round per tick.
type Model struct {
	rounds   []race.RoundResult
	winners  []string
	interval time.Duration
	current  int
	running  bool
}

func NewModel(rec race.Record, winners []string, interval time.Duration) Model {
	if interval <= 0 {
		interval = DefaultInterval
	}
	w := make([]string, len(winners))
	copy(w, winners)
	return Model{
		rounds:   rec.Rounds(),
		winners:  w,
		interval: interval,
		running:  true,
	}
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(m.interval, func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m Model) Init() tea.Cmd {
	return m.tick()
}

// Update handles key presses and advances the replay.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case " ", "space":
			m.running = !m.running
		case "right", "l":
			m.advance()
		case "left", "h":
			if m.current > 0 {
				m.current--
			}
		case "r":
			m.current = 0
			m.running = true
		}
	case TickMsg:
		if m.running {
			m.advance()
		}
		return m, m.tick()
	}
	return m, nil
}

func (m *Model) advance() {
	if m.current < len(m.rounds) {
		m.current++
	}
}

func (m Model) Done() bool { return m.current >= len(m.rounds) }

func (m Model) Current() int { return m.current }

func (m Model) View() string {
	var b strings.Builder
	b.WriteString(view.Title.Render("race replay"))
	b.WriteString("\n\n")

	if m.current == 0 {
		b.WriteString(view.RoundLabel.Render(fmt.Sprintf("starting grid, %d rounds to go", len(m.rounds))))
	} else {
		b.WriteString(view.StyledRound(m.rounds[m.current-1]))
	}
	b.WriteString("\n\n")

	if m.Done() {
		b.WriteString(view.WinnerStyle.Render("winners: " + strings.Join(m.winners, ", ")))
		b.WriteString("\n")
	}

	status := "running"
	if !m.running {
		status = "paused"
	}
	b.WriteString(view.KeyHint.Render(status + " | space pause, ←/→ step, r restart, q quit"))
	return view.Panel.Render(b.String()) + "\n"
}

// Run starts the replay on the terminal and blocks until the user quits.
func Run(rec race.Record, winners []string, interval time.Duration) error {
	p := tea.NewProgram(NewModel(rec, winners, interval))
	_, err := p.Run()
	return err
}
