package ai

import (
	"github.com/talgya/realmfleet/internal/entropy"
	"github.com/talgya/realmfleet/internal/fleet"
	"github.com/talgya/realmfleet/internal/galaxy"
	"github.com/talgya/realmfleet/internal/mission"
	"github.com/talgya/realmfleet/internal/realm"
)

// roam patrols around the mission target, chasing any enemy that strays
// into reach and otherwise drifting outward until called back.
func (e *Engine) roam(t *tick) Outcome {
	if enemy := e.enemyInRange(t, t.f.Speed()); enemy != nil {
		t.m.Phase = mission.Executing
		e.travel(t, enemy.Coord, 1)
		return keep()
	}

	switch t.m.Phase {
	case mission.Trekking:
		if e.travel(t, t.m.Target, 0) {
			t.m.Phase = mission.Executing
		}
	case mission.Executing:
		if t.f.Coord.Steps(t.m.Target) > e.Config.RoamDrift {
			t.m.Phase = mission.Trekking
			e.travel(t, t.m.Target, 0)
			return keep()
		}
		e.wander(t)
	}
	return keep()
}

// wander steps to the free neighbor farthest from the mission target. Equal
// candidates replace the current pick one time in three.
func (e *Engine) wander(t *tick) {
	t.f.ClearPath()
	var best galaxy.Coord
	bestDist := -1.0
	for _, c := range t.f.Coord.Neighbors8() {
		if e.Map.Blocked(c) || len(e.FleetsAt(c)) > 0 {
			continue
		}
		d := c.Distance(t.m.Target)
		if d > bestDist || (d == bestDist && entropy.Chance(e.Rand, 33)) {
			best, bestDist = c, d
		}
	}
	if bestDist < 0 || t.f.MovesLeft <= 0 {
		return
	}
	t.f.Coord = best
	t.f.MovesLeft--
	t.r.Chart(best, t.f.Scanner())
}

// privateerRadius scales the privateer search radius with difficulty.
func (e *Engine) privateerRadius() int {
	return e.Config.PrivateerRadius * (int(e.Config.Difficulty) + 1)
}

// prey is a privateer target: a fleet, an anomaly or an orbital.
type prey struct {
	coord  galaxy.Coord
	fleet  fleet.ID
	planet galaxy.PlanetID
}

// findPrey looks for prey near the fleet: a weaker fleet, then an anomaly,
// then an undefended orbital.
func (e *Engine) findPrey(t *tick) (prey, bool) {
	radius := e.privateerRadius()
	if f := e.weakerFleetInRange(t, radius); f != nil {
		return prey{coord: f.Coord, fleet: f.ID}, true
	}
	if a := e.nearestAnomaly(t.f.Coord, radius); a != nil {
		return prey{coord: a.Coord}, true
	}
	if p := e.undefendedOrbital(t, radius); p != nil {
		return prey{coord: p.Coord, planet: p.ID}, true
	}
	return prey{}, false
}

// aim points the mission at p.
func (p prey) aim(m *mission.Mission) {
	m.Target = p.coord
	m.TargetFleet = p.fleet
	m.TargetPlanet = p.planet
}

// holding reports whether the fleet already sits beside p as its current
// target, so there is nothing new to chase.
func (p prey) holding(t *tick) bool {
	return p.coord == t.m.Target && p.fleet == t.m.TargetFleet && t.f.Coord.Steps(p.coord) <= 1
}

func (e *Engine) privateer(t *tick) Outcome {
	switch t.m.Phase {
	case mission.Planning, mission.Loading:
		if p, ok := e.findPrey(t); ok {
			p.aim(t.m)
			t.m.Phase = mission.Trekking
			break
		}
		if p := e.leastLikedSystem(t); p != nil {
			t.m.Target = p.Coord
			t.m.TargetFleet = fleet.NoFleet
			t.m.TargetPlanet = p.ID
			t.m.Phase = mission.Trekking
			break
		}
		t.m.Phase = mission.Executing

	case mission.Trekking:
		if t.m.TargetFleet != fleet.NoFleet {
			target, _ := e.FindFleet(t.m.TargetFleet)
			if target == nil || !visible(t.f, target) {
				t.m.Phase = mission.Planning
				return keep()
			}
			t.m.Target = target.Coord
		}
		if e.travel(t, t.m.Target, 1) {
			e.investigate(t.r, t.m.Target)
			t.m.Phase = mission.Executing
			t.m.Time = 0
		}

	case mission.Executing:
		e.investigate(t.r, t.f.Coord)
		t.m.Time++
		if p, ok := e.findPrey(t); ok && !p.holding(t) {
			p.aim(t.m)
			t.m.Phase = mission.Trekking
			break
		}
		if t.m.Time >= e.Config.ExploringAmount*2 {
			t.m.Time = 0
			if p := e.leastLikedSystem(t); p != nil {
				t.m.Target = p.Coord
				t.m.TargetFleet = fleet.NoFleet
				t.m.TargetPlanet = p.ID
				t.m.Phase = mission.Trekking
			}
		}
	}
	return keep()
}

// move flies to the target and closes on arrival. A board realm that owns a
// tractor beam turns a trip to the galactic center into a privateer cruise.
func (e *Engine) move(t *tick) Outcome {
	if t.r.Board && t.r.HasTech(realm.TechTractorBeam) && t.m.Target == e.Map.Center() {
		next := t.m.Handoff(mission.Privateer, mission.Planning)
		return replaced(next)
	}
	if e.travel(t, t.m.Target, 0) {
		return closed()
	}
	if t.f.Path == nil {
		// Unreachable, or parked beside a target nobody can enter.
		return closed()
	}
	return keep()
}

// intercept re-plans toward the target every turn until it gets there.
func (e *Engine) intercept(t *tick) Outcome {
	if t.f.Coord == t.m.Target {
		return closed()
	}
	if !e.forceRoute(t.f, t.m.Target) {
		return keep()
	}
	e.advance(t.r, t.f)
	if t.f.Coord == t.m.Target {
		return closed()
	}
	return keep()
}
