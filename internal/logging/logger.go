package logging

import (
	"io"
	"time"

	"github.com/rs/zerolog"

	"github.com/san-kum/racesim/internal/race"
)

// New builds a logger writing to w. Pretty output is meant for a terminal;
// otherwise one JSON object is written per event.
func New(w io.Writer, level string, pretty bool) (zerolog.Logger, error) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return zerolog.Nop(), err
	}
	if lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}

	if pretty {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.Kitchen}
	}
	return zerolog.New(w).Level(lvl).With().Timestamp().Logger(), nil
}

// RoundLogger logs every recorded round at debug level.
type RoundLogger struct {
	log zerolog.Logger
}

func NewRoundLogger(log zerolog.Logger) *RoundLogger {
	return &RoundLogger{log: log}
}

func (l *RoundLogger) OnRound(r race.RoundResult) {
	e := l.log.Debug().Int("round", r.Number)
	if !e.Enabled() {
		return
	}
	positions := zerolog.Dict()
	for _, c := range r.Cars {
		positions.Int(c.Name, c.Position)
	}
	e.Dict("positions", positions).Msg("round complete")
}
