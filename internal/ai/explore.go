package ai

import (
	"github.com/talgya/realmfleet/internal/config"
	"github.com/talgya/realmfleet/internal/entropy"
	"github.com/talgya/realmfleet/internal/galaxy"
	"github.com/talgya/realmfleet/internal/mission"
)

// explorationDone reports whether the explorer has charted enough around its
// sun or run out of turns for it.
func (e *Engine) explorationDone(t *tick, sun *galaxy.Sun) bool {
	if t.m.Time >= e.Config.ExploreCap() {
		return true
	}
	return t.r.UnchartedPercent(e.Map, sun.Coord, exploreRadius) <= e.Config.ChartedThreshold
}

// chartAround moves the fleet toward the nearest uncharted cell near sun.
func (e *Engine) chartAround(t *tick, sun *galaxy.Sun) {
	c, ok := e.unchartedNear(t.r, t.f.Coord, sun.Coord)
	if !ok {
		return
	}
	e.travel(t, c, 0)
}

// detour sends an AI explorer to a visible anomaly, or else to look at a
// nearby unclaimed planet it has not charted. Reports whether the fleet
// spent its turn on one.
func (e *Engine) detour(t *tick) bool {
	if t.r.Human {
		return false
	}
	if a := e.nearestAnomaly(t.f.Coord, t.f.Scanner()); a != nil {
		if e.travel(t, a.Coord, 0) {
			e.investigate(t.r, a.Coord)
			t.f.ClearPath()
		}
		return true
	}
	p := e.unchartedFreePlanet(t.r, t.f.Coord)
	if p == nil || !e.routeTo(t.f, p.Coord) {
		return false
	}
	e.advance(t.r, t.f)
	return true
}

func (e *Engine) explore(t *tick) Outcome {
	switch t.m.Phase {
	case mission.Loading:
		sun := e.findSunToExplore(t)
		if sun == nil {
			return e.moveHome(t)
		}
		t.m.Sun = sun.ID
		t.m.Target = sun.Coord
		t.m.Time = 0
		t.m.Phase = mission.Trekking
		t.f.ClearPath()

	case mission.Trekking:
		if e.detour(t) {
			return keep()
		}
		if t.f.Coord.Steps(t.m.Target) <= exploreRadius/2 || e.travel(t, t.m.Target, 1) {
			t.m.Phase = mission.Executing
			t.m.Time = 0
		} else if t.f.Path == nil {
			// The sun cannot be reached; pick another.
			t.m.Phase = mission.Loading
		}

	case mission.Executing:
		sun := e.Map.Sun(t.m.Sun)
		if sun == nil {
			t.m.Phase = mission.Loading
			return keep()
		}
		t.m.Time++
		if e.explorationDone(t, sun) {
			t.m.Phase = mission.Loading
			return keep()
		}
		if !e.detour(t) {
			e.chartAround(t, sun)
		}
	}
	return keep()
}

// yieldToColonize reports whether a colony explorer should hand its fleet to
// a pending colonize plan now. done is true once the home system is charted.
func (e *Engine) yieldToColonize(done bool) bool {
	switch e.Config.Difficulty {
	case config.Challenging:
		return true
	case config.Normal:
		return done || entropy.Chance(e.Rand, 20)
	}
	return done
}

// colonyExplore charts the fleet's starting system, then gives the fleet to
// the best pending colonize plan.
func (e *Engine) colonyExplore(t *tick) Outcome {
	sun := e.Map.Sun(t.m.Sun)
	if sun == nil {
		sun = e.Map.NearestSun(t.f.Coord)
		if sun == nil {
			return e.moveHome(t)
		}
		t.m.Sun = sun.ID
		t.m.Target = sun.Coord
	}

	done := t.m.Phase == mission.Executing && e.explorationDone(t, sun)
	if pending := e.pendingColonize(t); pending != nil && e.yieldToColonize(done) {
		pending.FleetID = t.f.ID
		pending.Phase = mission.Loading
		t.f.ClearPath()
		return closed()
	}
	if done {
		return e.moveHome(t)
	}

	switch t.m.Phase {
	case mission.Loading:
		t.m.Phase = mission.Trekking
		fallthrough
	case mission.Trekking:
		if t.f.Coord.Steps(sun.Coord) <= exploreRadius/2 || e.travel(t, sun.Coord, 1) {
			t.m.Phase = mission.Executing
			t.m.Time = 0
		}
	case mission.Executing:
		t.m.Time++
		e.chartAround(t, sun)
	}
	return keep()
}
