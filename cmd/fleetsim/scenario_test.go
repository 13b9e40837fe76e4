package main

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/talgya/realmfleet/internal/ai"
	"github.com/talgya/realmfleet/internal/config"
	"github.com/talgya/realmfleet/internal/entropy"
	"github.com/talgya/realmfleet/internal/fleet"
	"github.com/talgya/realmfleet/internal/galaxy"
	"github.com/talgya/realmfleet/internal/mission"
)

func testGen() galaxy.GenConfig {
	gen := galaxy.DefaultGenConfig()
	gen.Seed = 42
	return gen
}

func TestNewScenarioSeedsRealms(t *testing.T) {
	sc, err := newScenario(config.Default(), testGen(), 3, entropy.NewSeeded(7))
	require.NoError(t, err)

	require.Len(t, sc.game.Realms, 4)
	board := sc.game.Realms[3]
	assert.True(t, board.Board)
	assert.Equal(t, 2, board.Fleets.Len())

	for _, r := range sc.game.Realms[:3] {
		home := r.HomePlanet(sc.game.Map)
		require.NotNil(t, home, r.Name)
		assert.Equal(t, homePopulation, home.Population)
		assert.Equal(t, r.ID, sc.game.Map.Culture(home.Coord))
		assert.Equal(t, 5, r.Fleets.Len())
		assert.NotNil(t, r.Missions.ByFleet(r.Fleets.ByName("Scout").ID, mission.Explore))
		assert.Equal(t, colonizePlans, r.Missions.CountPhase(mission.Colonize, mission.Planning))
	}
}

func TestNewScenarioRejectsRealmCount(t *testing.T) {
	_, err := newScenario(config.Default(), testGen(), 1, entropy.NewSeeded(7))
	assert.Error(t, err)
	_, err = newScenario(config.Default(), testGen(), len(realmNames)+1, entropy.NewSeeded(7))
	assert.Error(t, err)
}

func TestScenarioPlaysTurns(t *testing.T) {
	sc, err := newScenario(config.Default(), testGen(), 3, entropy.NewSeeded(11))
	require.NoError(t, err)
	eng, err := ai.NewEngine(sc.game)
	require.NoError(t, err)

	start := make(map[fleet.ID]galaxy.Coord)
	for _, r := range sc.game.Realms {
		for _, f := range r.Fleets.All() {
			start[f.ID] = f.Coord
		}
	}

	for i := 0; i < 40; i++ {
		eng.PlayTurn()
	}
	assert.Equal(t, 40, eng.Turn)

	moved := 0
	for _, r := range sc.game.Realms {
		for _, f := range r.Fleets.All() {
			if at, ok := start[f.ID]; ok && at != f.Coord {
				moved++
			}
		}
	}
	assert.Positive(t, moved)
}

func TestRunAndEventsCommands(t *testing.T) {
	db := filepath.Join(t.TempDir(), "save.db")

	run := newRootCommand()
	run.SetArgs([]string{"run", "--db", db, "--turns", "12", "--realms", "2", "--seed", "5", "--map-size", "48", "--log-level", "error"})
	require.NoError(t, run.Execute())

	var out bytes.Buffer
	events := newRootCommand()
	events.SetOut(&out)
	events.SetArgs([]string{"events", "--db", db, "--limit", "5", "--log-level", "error"})
	require.NoError(t, events.Execute())
	assert.Contains(t, out.String(), "save of the 12th turn")
}

func TestParseLevel(t *testing.T) {
	_, err := parseLevel("loud")
	assert.Error(t, err)
	lvl, err := parseLevel("DEBUG")
	require.NoError(t, err)
	assert.Equal(t, "DEBUG", lvl.String())
}
