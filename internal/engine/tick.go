// Package engine provides the turn-based game loop that drives the fleet AI.
package engine

import (
	"context"
	"log/slog"
	"time"
)

// Engine drives the game forward one turn at a time.
type Engine struct {
	Turn     int           // Last completed turn
	MaxTurns int           // Stop after this many turns; 0 runs until cancelled
	Speed    float64       // Multiplier: 1.0 = one turn per Interval, 0 = as fast as possible
	Interval time.Duration // Base turn interval

	// SaveEvery and ReportEvery set how often the periodic callbacks fire.
	SaveEvery   int
	ReportEvery int

	// Callbacks, populated during setup.
	OnTurn   func(turn int)       // Every turn
	OnReport func(turn int)       // Every ReportEvery turns
	OnSave   func(turn int) error // Every SaveEvery turns and once on exit
}

// NewEngine creates a loop with default settings: no pacing, a report every
// ten turns and a save every twenty-five.
func NewEngine() *Engine {
	return &Engine{
		Speed:       0,
		Interval:    time.Second,
		SaveEvery:   25,
		ReportEvery: 10,
	}
}

// Run plays turns until MaxTurns is reached or ctx is cancelled, then saves
// one last time.
func (e *Engine) Run(ctx context.Context) error {
	slog.Info("game loop started", "turn", e.Turn, "max_turns", e.MaxTurns, "speed", e.Speed)

	for e.MaxTurns <= 0 || e.Turn < e.MaxTurns {
		if err := ctx.Err(); err != nil {
			break
		}

		start := time.Now()
		if err := e.step(); err != nil {
			return err
		}

		if e.Speed > 0 {
			elapsed := time.Since(start)
			target := time.Duration(float64(e.Interval) / e.Speed)
			if elapsed < target {
				select {
				case <-ctx.Done():
				case <-time.After(target - elapsed):
				}
			}
		}
	}

	slog.Info("game loop stopped", "turn", e.Turn)
	if e.OnSave != nil && (e.SaveEvery <= 0 || e.Turn%e.SaveEvery != 0) {
		return e.OnSave(e.Turn)
	}
	return nil
}

// step advances the game by one turn.
func (e *Engine) step() error {
	e.Turn++

	if e.OnTurn != nil {
		e.OnTurn(e.Turn)
	}

	if e.ReportEvery > 0 && e.Turn%e.ReportEvery == 0 && e.OnReport != nil {
		e.OnReport(e.Turn)
	}

	if e.SaveEvery > 0 && e.Turn%e.SaveEvery == 0 && e.OnSave != nil {
		return e.OnSave(e.Turn)
	}
	return nil
}
