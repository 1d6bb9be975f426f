// Package logging provides a zerolog-backed observer for the eyes
// engine: one line per command, and threshold-filtered state lines so
// steady frames stay silent.
package logging

import (
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"

	"github.com/lixenwraith/robo-eyes/eyes"
)

const (
	// State lines are emitted only when the eyes moved or resized
	// noticeably, or the mood/blink state flipped
	positionThreshold = 10.0 // virtual pixels
	sizeThreshold     = 5.0
)

// Observer implements eyes.Observer on a zerolog logger.
type Observer struct {
	log zerolog.Logger

	hasLast bool
	last    eyes.Snapshot
}

// NewObserver logs to w with timestamps.
func NewObserver(w io.Writer) *Observer {
	return &Observer{
		log: zerolog.New(w).With().Timestamp().Str("app", "robo-eyes").Logger(),
	}
}

// NewConsoleObserver logs human-readable lines to stderr.
func NewConsoleObserver() *Observer {
	return NewObserver(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"})
}

// NewFileObserver logs to a dated file under dir, creating dir as
// needed. The caller owns closing the returned file.
func NewFileObserver(dir string) (*Observer, *os.File, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, nil, fmt.Errorf("create log directory: %w", err)
	}
	name := fmt.Sprintf("robo-eyes_%s.log", time.Now().Format("2006-01-02"))
	path := filepath.Join(dir, name)

	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	return NewObserver(f), f, nil
}

// Event logs one state-changing command.
func (o *Observer) Event(kind, detail string) {
	o.log.Debug().Str("event", kind).Msg(detail)
}

// State logs a position/mood/blink summary when it differs enough
// from the previously logged one. The first snapshot always logs.
func (o *Observer) State(snap eyes.Snapshot) {
	if o.hasLast && !o.significantChange(snap) {
		return
	}

	o.log.Info().
		Str("dir", snap.Direction.String()).
		Str("mood", snap.Mood.String()).
		Bool("blinking", snap.Blinking).
		Float64("left_x", round2(snap.Left.Pos.X)).
		Float64("left_y", round2(snap.Left.Pos.Y)).
		Float64("right_x", round2(snap.Right.Pos.X)).
		Float64("right_y", round2(snap.Right.Pos.Y)).
		Float64("width", round2(snap.Left.Width)).
		Float64("height", round2(snap.Left.Height)).
		Msg("eye state")

	o.hasLast = true
	o.last = snap
}

func (o *Observer) significantChange(snap eyes.Snapshot) bool {
	return math.Abs(snap.Left.Pos.X-o.last.Left.Pos.X) > positionThreshold ||
		math.Abs(snap.Right.Pos.X-o.last.Right.Pos.X) > positionThreshold ||
		math.Abs(snap.Left.Width-o.last.Left.Width) > sizeThreshold ||
		math.Abs(snap.Right.Width-o.last.Right.Width) > sizeThreshold ||
		snap.Mood != o.last.Mood ||
		snap.Blinking != o.last.Blinking
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
