package ai

import (
	"fmt"
	"log/slog"

	"github.com/talgya/realmfleet/internal/diplomacy"
	"github.com/talgya/realmfleet/internal/fleet"
	"github.com/talgya/realmfleet/internal/galaxy"
	"github.com/talgya/realmfleet/internal/mission"
	"github.com/talgya/realmfleet/internal/news"
	"github.com/talgya/realmfleet/internal/realm"
)

// minSourcePopulation is the population a source planet always keeps.
const minSourcePopulation = 3

// loadColonists takes every surplus colonist from r's planet under the fleet.
// Returns how many boarded.
func loadColonists(r *realm.Realm, f *fleet.Fleet, p *galaxy.Planet) int {
	if p == nil || p.Owner != r.ID {
		return 0
	}
	loaded := 0
	for p.Population > minSourcePopulation && f.FreeColonistSpace() > 0 && f.LoadColonist() {
		p.Population--
		loaded++
	}
	p.Workers = min(p.Workers, p.Population)
	return loaded
}

// loadTroops boards surplus population as troops.
func loadTroops(r *realm.Realm, f *fleet.Fleet, p *galaxy.Planet) int {
	if p == nil || p.Owner != r.ID {
		return 0
	}
	loaded := 0
	for p.Population > minSourcePopulation && f.FreeTroopSpace() > 0 && f.LoadTroop() {
		p.Population--
		loaded++
	}
	p.Workers = min(p.Workers, p.Population)
	return loaded
}

// colonySource returns r's nearest planet with colonists to spare.
func (e *Engine) colonySource(r *realm.Realm, from galaxy.Coord) *galaxy.Planet {
	var best *galaxy.Planet
	for _, p := range e.Map.PlanetsOf(r.ID) {
		if p.Population <= minSourcePopulation {
			continue
		}
		if best == nil || p.Coord.Distance(from) < best.Coord.Distance(from) {
			best = p
		}
	}
	return best
}

// colonize handles both COLONIZE and SPORE_COLONY.
func (e *Engine) colonize(t *tick) Outcome {
	switch t.m.Phase {
	case mission.Planning, mission.Loading:
		if t.f.ColonyShip() == nil {
			return e.moveHome(t)
		}
		if t.f.Coord == t.m.Target {
			t.m.Phase = mission.Executing
			return e.colonizeTarget(t)
		}
		if t.f.Colonists() == 0 {
			here := e.Map.PlanetAt(t.f.Coord)
			if loadColonists(t.r, t.f, here) == 0 {
				source := e.colonySource(t.r, t.f.Coord)
				if source == nil {
					return e.moveHome(t)
				}
				e.travel(t, source.Coord, 0)
				loadColonists(t.r, t.f, e.Map.PlanetAt(t.f.Coord))
				return keep()
			}
		} else if t.f.FreeColonistSpace() > 0 {
			loadColonists(t.r, t.f, e.Map.PlanetAt(t.f.Coord))
		}
		t.m.Phase = mission.Trekking
		t.f.ClearPath()

	case mission.Trekking:
		if e.travel(t, t.m.Target, 0) {
			t.m.Phase = mission.Executing
		} else if t.f.Path == nil {
			return e.retargetColonize(t)
		}

	case mission.Executing:
		return e.colonizeTarget(t)
	}
	return keep()
}

// colonizeTarget settles the planet under the fleet. A spore colony that
// lands on an enemy world bombs it instead.
func (e *Engine) colonizeTarget(t *tick) Outcome {
	p := e.Map.Planet(t.m.TargetPlanet)
	if p == nil {
		p = e.Map.PlanetAt(t.m.Target)
	}
	if p == nil || p.Coord != t.f.Coord {
		return e.retargetColonize(t)
	}

	if t.m.Type == mission.SporeColony && e.isEnemy(t.r, p.Owner) {
		e.bomb(t, p)
		if pod := t.f.ColonyShip(); pod != nil {
			t.f.RemoveShip(pod)
		}
		e.disbandIfEmpty(t.r, t.f)
		return closed()
	}

	gasGiants := t.r.HasTrait(realm.TraitGasGiantColonizer)
	ship := t.f.ColonyShip()
	colonists := t.f.Colonists()
	if !p.Colonizable(gasGiants) || ship == nil || colonists < 1 {
		return e.retargetColonize(t)
	}

	p.Owner = t.r.ID
	p.Population = colonists
	p.Workers = colonists
	for _, s := range t.f.Ships {
		s.Colonists = 0
	}
	t.f.RemoveShip(ship)
	e.disbandIfEmpty(t.r, t.f)
	e.Map.RecalculateCulture(cultureRadius)
	t.r.Increment(realm.StatPlanetsColonized)

	text := fmt.Sprintf("%s founded a colony on %s.", t.r.Name, p.Name)
	if p.GasGiant {
		text = fmt.Sprintf("%s built orbital habitats above %s.", t.r.Name, p.Name)
	}
	e.publish(news.Record{Kind: news.KindEvent, Realm: t.r.ID, Coord: p.Coord, Title: "Planet colonized", Text: text})
	slog.Info("planet colonized", "realm", t.r.Name, "planet", p.Name, "colonists", colonists)
	return closed()
}

// retargetColonize moves a failed colonizer on: first to the best pending
// colonize plan, then to the nearest free planet, else home.
func (e *Engine) retargetColonize(t *tick) Outcome {
	t.f.ClearPath()
	if pending := e.pendingColonize(t); pending != nil && pending.Type == t.m.Type {
		pending.FleetID = t.f.ID
		pending.Phase = mission.Trekking
		return closed()
	}
	if p := e.nearestFreePlanet(t); p != nil {
		t.m.Target = p.Coord
		t.m.TargetPlanet = p.ID
		t.m.Phase = mission.Trekking
		return keep()
	}
	return e.moveHome(t)
}

// disbandIfEmpty removes a fleet that has no ships left.
func (e *Engine) disbandIfEmpty(r *realm.Realm, f *fleet.Fleet) bool {
	if len(f.Ships) > 0 {
		return false
	}
	if c := r.Leader(f.Commander); c != nil {
		c.Job = realm.JobUnassigned
	}
	r.Fleets.Remove(f.ID)
	return true
}

// bomb strikes planet p with the fleet's bombs and lands its troops. When the
// defender is human it is told; an AI defender remembers the attack.
func (e *Engine) bomb(t *tick, p *galaxy.Planet) {
	owner := e.Realm(p.Owner)
	killed := p.KillPopulation(max(t.f.Bombs(), 1))
	text := fmt.Sprintf("%s bombed %s, killing %d.", t.r.Name, p.Name, killed)

	if troops := t.f.Troops(); troops > 0 && troops > p.Population {
		p.Owner = t.r.ID
		p.Population = troops - p.Population
		p.Workers = p.Population
		p.Governor = galaxy.NoLeader
		for _, s := range t.f.Ships {
			s.Troops = 0
		}
		e.Map.RecalculateCulture(cultureRadius)
		text = fmt.Sprintf("%s bombed and conquered %s.", t.r.Name, p.Name)
	}

	if owner == nil {
		return
	}
	if owner.Human {
		e.publish(news.Record{Kind: news.KindMessage, Realm: owner.ID, Coord: p.Coord, Title: "Planet bombed", Text: text})
	} else {
		e.Diplomacy.AddBonus(owner.ID, t.r.ID, diplomacy.BonusAttack, -20)
	}
	e.publish(news.Record{Kind: news.KindEvent, Realm: t.r.ID, Coord: p.Coord, Title: "Planet bombed", Text: text})
}

// deployStarbase anchors a starbase hull on a deep-space anchor.
func (e *Engine) deployStarbase(t *tick) Outcome {
	hull := undeployedStarbase(t.f)
	if hull == nil {
		return e.moveHome(t)
	}
	switch t.m.Phase {
	case mission.Planning, mission.Loading:
		t.m.Phase = mission.Trekking
		t.f.ClearPath()
		fallthrough
	case mission.Trekking:
		if e.anchorTaken(t, t.m.Target) {
			return e.redirectStarbase(t)
		}
		if e.travel(t, t.m.Target, 0) {
			t.m.Phase = mission.Executing
		} else if t.f.Path == nil {
			return e.moveHome(t)
		}
	case mission.Executing:
		if e.Map.Tile(t.f.Coord) != galaxy.TileAnchor {
			return e.moveHome(t)
		}
		e.anchor(t, hull)
		return closed()
	}
	return keep()
}

func undeployedStarbase(f *fleet.Fleet) *fleet.Ship {
	for _, s := range f.Ships {
		if s.Class == fleet.ClassStarbase && !s.Deployed {
			return s
		}
	}
	return nil
}

// anchorTaken reports whether a fleet other than t's is camped on c.
func (e *Engine) anchorTaken(t *tick, c galaxy.Coord) bool {
	for _, other := range e.FleetsAt(c) {
		if other.ID != t.f.ID {
			return true
		}
	}
	return false
}

// redirectStarbase takes over another pending deployment with a free anchor.
func (e *Engine) redirectStarbase(t *tick) Outcome {
	for _, other := range t.r.Missions.ByType(mission.DeployStarbase) {
		if other == t.m || other.FleetID != fleet.NoFleet || e.anchorTaken(t, other.Target) {
			continue
		}
		t.m.Target = other.Target
		t.f.ClearPath()
		t.r.Missions.Remove(other)
		return keep()
	}
	return e.moveHome(t)
}

// anchor deploys the hull where the fleet sits. A lone starbase stays in its
// own fleet; otherwise it splits into a new dedicated fleet.
func (e *Engine) anchor(t *tick, hull *fleet.Ship) {
	hull.Deployed = true
	base := t.f
	if len(t.f.Ships) > 1 {
		t.f.RemoveShip(hull)
		base = &fleet.Fleet{
			ID:    e.NewFleetID(),
			Owner: t.r.ID,
			Coord: t.f.Coord,
			Ships: []*fleet.Ship{hull},
		}
		t.r.Fleets.Add(base)
	}
	base.Name = fmt.Sprintf("Starbase %s", base.Coord)
	base.ClearPath()

	if hull.ArtificialPlanet {
		hull.ArtificialPlanet = false
		p := &galaxy.Planet{
			ID:         e.Map.NextPlanetID(),
			Name:       fmt.Sprintf("%s Station", t.r.Name),
			Coord:      base.Coord,
			Owner:      t.r.ID,
			Size:       1,
			Artificial: true,
		}
		e.Map.AddPlanet(p)
		e.Map.RecalculateCulture(cultureRadius)
	}
	e.publish(news.Record{Kind: news.KindEvent, Realm: t.r.ID, Coord: base.Coord, Title: "Starbase deployed",
		Text: fmt.Sprintf("%s anchored a starbase at %s.", t.r.Name, base.Coord)})
}
