package ai

import (
	"github.com/talgya/realmfleet/internal/config"
	"github.com/talgya/realmfleet/internal/fleet"
	"github.com/talgya/realmfleet/internal/galaxy"
	"github.com/talgya/realmfleet/internal/mission"
	"github.com/talgya/realmfleet/internal/realm"
)

// exploreRadius is the neighborhood of a sun an explorer charts.
const exploreRadius = 4

// nearestOwnedPlanet returns r's planet closest to from, or nil.
func (e *Engine) nearestOwnedPlanet(r *realm.Realm, from galaxy.Coord) *galaxy.Planet {
	var best *galaxy.Planet
	for _, p := range e.Map.PlanetsOf(r.ID) {
		if best == nil || p.Coord.Distance(from) < best.Coord.Distance(from) {
			best = p
		}
	}
	return best
}

// moveHome hands the mission off to a MOVE back to the nearest owned planet.
// A realm with no planets left simply drops the mission.
func (e *Engine) moveHome(t *tick) Outcome {
	home := e.nearestOwnedPlanet(t.r, t.f.Coord)
	if home == nil {
		return closed()
	}
	next := t.m.Handoff(mission.Move, mission.Trekking)
	next.Target = home.Coord
	next.TargetPlanet = home.ID
	t.f.ClearPath()
	return replaced(next)
}

// enemyInRange returns the nearest visible enemy fleet within reach steps.
func (e *Engine) enemyInRange(t *tick, reach int) *fleet.Fleet {
	var best *fleet.Fleet
	bestSteps := 0
	for _, other := range e.Realms {
		if !e.isEnemy(t.r, other.ID) {
			continue
		}
		for _, f := range other.Fleets.All() {
			steps := f.Coord.Steps(t.f.Coord)
			if steps > reach || !visible(t.f, f) {
				continue
			}
			if best == nil || steps < bestSteps {
				best, bestSteps = f, steps
			}
		}
	}
	return best
}

// weakerFleetInRange returns the nearest visible foreign fleet within radius
// that the fleet can overpower.
func (e *Engine) weakerFleetInRange(t *tick, radius int) *fleet.Fleet {
	var best *fleet.Fleet
	bestSteps := 0
	for _, other := range e.Realms {
		if other.ID == t.r.ID || e.Diplomacy.Allied(t.r.ID, other.ID) {
			continue
		}
		for _, f := range other.Fleets.All() {
			steps := f.Coord.Steps(t.f.Coord)
			if steps > radius || f.Power() >= t.f.Power() || !visible(t.f, f) || f.IsStarbaseDeployed() {
				continue
			}
			if best == nil || steps < bestSteps {
				best, bestSteps = f, steps
			}
		}
	}
	return best
}

// nearestAnomaly returns the closest anomaly within radius steps.
func (e *Engine) nearestAnomaly(from galaxy.Coord, radius int) *galaxy.Anomaly {
	var best *galaxy.Anomaly
	for _, a := range e.Map.Anomalies {
		steps := a.Coord.Steps(from)
		if steps > radius {
			continue
		}
		if best == nil || steps < best.Coord.Steps(from) ||
			(steps == best.Coord.Steps(from) && lessCoord(a.Coord, best.Coord)) {
			best = a
		}
	}
	return best
}

// lessCoord orders coordinates row-major so map iteration stays deterministic.
func lessCoord(a, b galaxy.Coord) bool {
	if a.Y != b.Y {
		return a.Y < b.Y
	}
	return a.X < b.X
}

// undefendedOrbital returns the nearest foreign planet within radius with no
// orbital defense.
func (e *Engine) undefendedOrbital(t *tick, radius int) *galaxy.Planet {
	var best *galaxy.Planet
	for _, p := range e.Map.Planets {
		if p.Owner == galaxy.NoRealm || p.Owner == t.r.ID || p.OrbitalPower > 0 ||
			e.Diplomacy.Allied(t.r.ID, p.Owner) || p.Coord.Steps(t.f.Coord) > radius {
			continue
		}
		if best == nil || p.Coord.Steps(t.f.Coord) < best.Coord.Steps(t.f.Coord) {
			best = p
		}
	}
	return best
}

// leastLikedSystem returns a planet of the realm r likes least among those it
// has met.
func (e *Engine) leastLikedSystem(t *tick) *galaxy.Planet {
	var target *realm.Realm
	for _, other := range e.Realms {
		if other.ID == t.r.ID || !e.Diplomacy.HasMet(t.r.ID, other.ID) {
			continue
		}
		if target == nil || e.Diplomacy.Liking(t.r.ID, other.ID) < e.Diplomacy.Liking(t.r.ID, target.ID) {
			target = other
		}
	}
	if target == nil {
		return nil
	}
	return e.nearestOwnedPlanet(target, t.f.Coord)
}

// findSunToExplore picks the next sun for an explorer. Challenging AIs weigh
// every sun by how much is left to chart; the rest go roughly to the nearest.
func (e *Engine) findSunToExplore(t *tick) *galaxy.Sun {
	var best *galaxy.Sun
	bestScore := 0
	for _, s := range e.Map.Suns {
		uncharted := t.r.UnchartedPercent(e.Map, s.Coord, exploreRadius)
		if uncharted <= e.Config.ChartedThreshold {
			continue
		}
		if other := t.r.Missions.ByTarget(s.Coord, mission.Explore); other != nil && other != t.m {
			continue
		}
		dist := int(s.Coord.Distance(t.f.Coord))
		var score int
		if e.Config.Difficulty == config.Challenging {
			score = uncharted*2 - dist
		} else {
			// About nearest: a little noise keeps explorers from bunching up.
			score = -dist - e.Rand.IntN(5)
		}
		if best == nil || score > bestScore {
			best, bestScore = s, score
		}
	}
	return best
}

// unchartedNear returns the closest uncharted, unblocked cell around center.
func (e *Engine) unchartedNear(r *realm.Realm, from, center galaxy.Coord) (galaxy.Coord, bool) {
	var best galaxy.Coord
	found := false
	for y := center.Y - exploreRadius; y <= center.Y+exploreRadius; y++ {
		for x := center.X - exploreRadius; x <= center.X+exploreRadius; x++ {
			c := galaxy.Coord{X: x, Y: y}
			if !e.Map.InBounds(c) || e.Map.Blocked(c) || r.IsCharted(c) {
				continue
			}
			if !found || c.Steps(from) < best.Steps(from) {
				best, found = c, true
			}
		}
	}
	return best, found
}

// unchartedFreePlanet returns the closest unowned planet within exploreRadius
// steps that r has not charted yet.
func (e *Engine) unchartedFreePlanet(r *realm.Realm, from galaxy.Coord) *galaxy.Planet {
	var best *galaxy.Planet
	for _, p := range e.Map.Planets {
		if p.Owner != galaxy.NoRealm || r.IsCharted(p.Coord) || p.Coord.Steps(from) > exploreRadius {
			continue
		}
		if best == nil || p.Coord.Steps(from) < best.Coord.Steps(from) {
			best = p
		}
	}
	return best
}

// nearestFreePlanet returns the closest colonizable planet no other colonize
// mission of r is aimed at.
func (e *Engine) nearestFreePlanet(t *tick) *galaxy.Planet {
	gasGiants := t.r.HasTrait(realm.TraitGasGiantColonizer)
	var best *galaxy.Planet
	for _, p := range e.Map.Planets {
		if !p.Colonizable(gasGiants) || p.Value(gasGiants) <= 0 {
			continue
		}
		if other := t.r.Missions.ByPlanet(p.ID, t.m.Type); other != nil && other != t.m {
			continue
		}
		if best == nil || p.Coord.Distance(t.f.Coord) < best.Coord.Distance(t.f.Coord) {
			best = p
		}
	}
	return best
}

// colonizeValue scores a pending colonize mission by its target planet.
func (e *Engine) colonizeValue(r *realm.Realm) func(*mission.Mission) int {
	gasGiants := r.HasTrait(realm.TraitGasGiantColonizer)
	return func(m *mission.Mission) int {
		p := e.Map.Planet(m.TargetPlanet)
		if p == nil || !p.Colonizable(gasGiants) {
			return 0
		}
		return p.Value(gasGiants)
	}
}

// pendingColonize returns the best fleetless colonize plan for the fleet.
func (e *Engine) pendingColonize(t *tick) *mission.Mission {
	m := t.r.Missions.BestColonize(t.f.Coord, e.Map.Size(), e.colonizeValue(t.r))
	if m == nil || m.FleetID != fleet.NoFleet {
		return nil
	}
	return m
}

// planetNeedingDefense returns r's nearest planet no DEFEND mission covers.
func (e *Engine) planetNeedingDefense(t *tick) *galaxy.Planet {
	var best *galaxy.Planet
	for _, p := range e.Map.PlanetsOf(t.r.ID) {
		if t.r.Missions.ByPlanet(p.ID, mission.Defend) != nil {
			continue
		}
		if best == nil || p.Coord.Distance(t.f.Coord) < best.Coord.Distance(t.f.Coord) {
			best = p
		}
	}
	return best
}

// spyTarget picks the nearest planet of a met, non-allied realm.
func (e *Engine) spyTarget(t *tick) *galaxy.Planet {
	var best *galaxy.Planet
	for _, p := range e.Map.Planets {
		if p.Owner == galaxy.NoRealm || p.Owner == t.r.ID {
			continue
		}
		if !e.Diplomacy.HasMet(t.r.ID, p.Owner) || e.Diplomacy.Allied(t.r.ID, p.Owner) {
			continue
		}
		if best == nil || p.Coord.Distance(t.f.Coord) < best.Coord.Distance(t.f.Coord) {
			best = p
		}
	}
	return best
}
