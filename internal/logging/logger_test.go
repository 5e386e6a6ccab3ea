package logging

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/san-kum/racesim/internal/race"
)

func TestNew_BadLevel(t *testing.T) {
	if _, err := New(&bytes.Buffer{}, "loud", false); err == nil {
		t.Error("expected error for unknown level")
	}
}

func TestRoundLogger(t *testing.T) {
	var buf bytes.Buffer
	log, err := New(&buf, "debug", false)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	cars, _ := race.NewCars([]string{"a", "b"})
	field := race.NewField(cars, race.NewSequenceDraw(9, 0))
	field.AddObserver(NewRoundLogger(log))
	if err := field.Run(2); err != nil {
		t.Fatalf("run failed: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 log lines, got %d: %q", len(lines), buf.String())
	}

	var event struct {
		Level     string         `json:"level"`
		Round     int            `json:"round"`
		Positions map[string]int `json:"positions"`
		Message   string         `json:"message"`
	}
	if err := json.Unmarshal([]byte(lines[1]), &event); err != nil {
		t.Fatalf("bad json: %v", err)
	}
	if event.Level != "debug" || event.Round != 2 {
		t.Errorf("unexpected event: %+v", event)
	}
	if event.Positions["a"] != 2 || event.Positions["b"] != 0 {
		t.Errorf("unexpected positions: %v", event.Positions)
	}
}

func TestRoundLogger_QuietAtInfo(t *testing.T) {
	var buf bytes.Buffer
	log, _ := New(&buf, "info", false)

	NewRoundLogger(log).OnRound(race.RoundResult{Number: 1})
	if buf.Len() != 0 {
		t.Errorf("expected no output at info level, got %q", buf.String())
	}
}
