package engine

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunStopsAtMaxTurns(t *testing.T) {
	e := NewEngine()
	e.MaxTurns = 30
	var turns, reports []int
	var saves []int
	e.OnTurn = func(turn int) { turns = append(turns, turn) }
	e.OnReport = func(turn int) { reports = append(reports, turn) }
	e.OnSave = func(turn int) error {
		saves = append(saves, turn)
		return nil
	}

	require.NoError(t, e.Run(context.Background()))

	assert.Len(t, turns, 30)
	assert.Equal(t, 30, e.Turn)
	assert.Equal(t, []int{10, 20, 30}, reports)
	assert.Equal(t, []int{25, 30}, saves, "a final save follows the last periodic one")
}

func TestRunSkipsDuplicateFinalSave(t *testing.T) {
	e := NewEngine()
	e.MaxTurns = 25
	saves := 0
	e.OnSave = func(int) error {
		saves++
		return nil
	}

	require.NoError(t, e.Run(context.Background()))
	assert.Equal(t, 1, saves)
}

func TestRunStopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	e := NewEngine()
	e.OnTurn = func(turn int) {
		if turn == 3 {
			cancel()
		}
	}

	require.NoError(t, e.Run(ctx))
	assert.Equal(t, 3, e.Turn)
}

func TestRunReturnsSaveError(t *testing.T) {
	boom := errors.New("disk full")
	e := NewEngine()
	e.MaxTurns = 5
	e.SaveEvery = 2
	e.OnSave = func(int) error { return boom }

	err := e.Run(context.Background())
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 2, e.Turn)
}
