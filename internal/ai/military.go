package ai

import (
	"fmt"

	"github.com/talgya/realmfleet/internal/fleet"
	"github.com/talgya/realmfleet/internal/mission"
)

// destroyFleet hunts a fleet, then takes up defense of the nearest
// undefended planet or goes exploring.
func (e *Engine) destroyFleet(t *tick) Outcome {
	prey, _ := e.FindFleet(t.m.TargetFleet)
	if prey != nil && visible(t.f, prey) {
		t.m.Target = prey.Coord
	}

	switch t.m.Phase {
	case mission.Planning, mission.Loading:
		if !e.forceRoute(t.f, t.m.Target) {
			return e.afterHunt(t)
		}
		t.m.Phase = mission.Trekking
		fallthrough
	case mission.Trekking:
		if e.travel(t, t.m.Target, 2) {
			t.m.Phase = mission.Executing
		}
	case mission.Executing:
		if prey == nil || t.f.Coord.Steps(t.m.Target) <= 1 {
			return e.afterHunt(t)
		}
		if visible(t.f, prey) {
			e.forceRoute(t.f, prey.Coord)
		}
		e.advance(t.r, t.f)
		if t.f.Coord.Steps(t.m.Target) <= 1 {
			return e.afterHunt(t)
		}
	}
	return keep()
}

func (e *Engine) afterHunt(t *tick) Outcome {
	t.f.ClearPath()
	if p := e.planetNeedingDefense(t); p != nil {
		next := t.m.Handoff(mission.Defend, mission.Trekking)
		next.Target = p.Coord
		next.TargetPlanet = p.ID
		next.TargetFleet = fleet.NoFleet
		return replaced(next)
	}
	next := t.m.Handoff(mission.Explore, mission.Loading)
	next.TargetFleet = fleet.NoFleet
	return replaced(next)
}

// attackerName is the name of the fleet a gather feeds.
func (e *Engine) attackerName(m *mission.Mission) string {
	if p := e.Map.Planet(m.TargetPlanet); p != nil {
		return "Attacker of " + p.Name
	}
	return fmt.Sprintf("Attacker of starbase %d", m.TargetFleet)
}

// gather brings troops to the gathering point and merges into the attacker
// fleet there.
func (e *Engine) gather(t *tick) Outcome {
	switch t.m.Phase {
	case mission.Planning, mission.Loading:
		loadTroops(t.r, t.f, e.Map.PlanetAt(t.f.Coord))
		if t.f.ColonyShip() != nil {
			loadColonists(t.r, t.f, e.Map.PlanetAt(t.f.Coord))
		}
		t.m.Phase = mission.Trekking
		t.f.ClearPath()
		fallthrough
	case mission.Trekking:
		if e.travel(t, t.m.Target, 0) {
			t.m.Phase = mission.Executing
			return e.mergeAttacker(t)
		}
		if t.f.Path == nil {
			if t.f.Coord.Steps(t.m.Target) <= 2 {
				t.m.Phase = mission.Executing
				return e.mergeAttacker(t)
			}
			return e.moveHome(t)
		}
	case mission.Executing:
		return e.mergeAttacker(t)
	}
	return keep()
}

// mergeAttacker folds the fleet into the attacker fleet at the gathering
// point, or names it the attacker if it arrived first.
func (e *Engine) mergeAttacker(t *tick) Outcome {
	name := e.attackerName(t.m)
	for _, other := range t.r.Fleets.At(t.f.Coord) {
		if other.ID == t.f.ID || other.Name != name {
			continue
		}
		for _, s := range t.f.Ships {
			other.AddShip(s)
		}
		t.f.Ships = nil
		e.disbandIfEmpty(t.r, t.f)
		return closed()
	}
	t.r.Fleets.Rename(t.f.ID, name)
	return closed()
}

// attack waits for its gathers, then flies to the target planet and bombs it.
func (e *Engine) attack(t *tick) Outcome {
	p := e.Map.Planet(t.m.TargetPlanet)
	if p == nil {
		return closed()
	}
	if !e.isEnemy(t.r, p.Owner) {
		return e.moveHome(t)
	}

	switch t.m.Phase {
	case mission.Planning:
		if len(t.r.Missions.GathersFor(t.m)) > 0 {
			return keep()
		}
		here := e.Map.PlanetAt(t.f.Coord)
		if t.f.FreeTroopSpace() > 0 && here != nil && here.Owner == t.r.ID && here.Population > minSourcePopulation {
			t.m.Phase = mission.Loading
			return keep()
		}
		if !e.forceRoute(t.f, p.Coord) {
			return e.moveHome(t)
		}
		t.m.Target = p.Coord
		t.m.Phase = mission.Trekking

	case mission.Loading:
		loadTroops(t.r, t.f, e.Map.PlanetAt(t.f.Coord))
		if !e.forceRoute(t.f, p.Coord) {
			return e.moveHome(t)
		}
		t.m.Target = p.Coord
		t.m.Phase = mission.Trekking

	case mission.Trekking:
		if e.travel(t, p.Coord, 1) {
			t.m.Phase = mission.Executing
		}

	case mission.Executing:
		if t.f.Coord.Steps(p.Coord) > 1 {
			t.m.Phase = mission.Trekking
			return keep()
		}
		e.bomb(t, p)
		return closed()
	}
	return keep()
}

// destroyStarbase waits for its gathers, then closes in on the starbase.
func (e *Engine) destroyStarbase(t *tick) Outcome {
	base, owner := e.FindFleet(t.m.TargetFleet)
	if base == nil || !e.isEnemy(t.r, owner.ID) {
		return closed()
	}
	t.m.Target = base.Coord

	switch t.m.Phase {
	case mission.Planning:
		if len(t.r.Missions.GathersFor(t.m)) > 0 {
			return keep()
		}
		if !e.forceRoute(t.f, base.Coord) {
			return e.moveHome(t)
		}
		t.m.Phase = mission.Trekking
	case mission.Loading, mission.Trekking:
		if e.travel(t, base.Coord, 1) {
			t.m.Phase = mission.Executing
		}
	case mission.Executing:
		return closed()
	}
	return keep()
}

// defend parks on a planet with a standing zero-speed route, and returns to
// planning every few turns so defenders can be rotated.
func (e *Engine) defend(t *tick) Outcome {
	switch t.m.Phase {
	case mission.Loading, mission.Trekking:
		if e.travel(t, t.m.Target, 0) {
			t.m.Phase = mission.Executing
			t.m.Time = 0
			t.f.Route = &fleet.StandingRoute{Start: t.f.Coord, End: t.f.Coord}
		} else if t.f.Path == nil {
			return e.moveHome(t)
		}
	case mission.Executing:
		t.m.Time++
		if t.m.Time >= e.Config.DefenseUpdateTurn {
			t.m.Phase = mission.Planning
			t.m.Time = 0
		}
	}
	return keep()
}
