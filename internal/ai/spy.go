package ai

import (
	"log/slog"

	"github.com/talgya/realmfleet/internal/espionage"
	"github.com/talgya/realmfleet/internal/fleet"
	"github.com/talgya/realmfleet/internal/galaxy"
	"github.com/talgya/realmfleet/internal/mission"
	"github.com/talgya/realmfleet/internal/realm"
)

// falseFlagRadius is how close to the target planet a victim fleet must be.
const falseFlagRadius = 3

// aimSpy points m at the next spy target. Returns false when there is none.
func (e *Engine) aimSpy(t *tick) bool {
	p := e.spyTarget(t)
	if p == nil {
		return false
	}
	t.m.Target = p.Coord
	t.m.TargetPlanet = p.ID
	t.m.TargetRealm = p.Owner
	return true
}

// spy slips into the target realm's culture area and lurks along its border
// until it is ready to act.
func (e *Engine) spy(t *tick) Outcome {
	switch t.m.Phase {
	case mission.Planning, mission.Loading:
		if !e.aimSpy(t) {
			return e.moveHome(t)
		}
		t.f.ClearPath()
		t.m.Phase = mission.Trekking
		fallthrough
	case mission.Trekking:
		if e.Map.Culture(t.f.Coord) == t.m.TargetRealm {
			t.f.ClearPath()
			t.m.Phase = mission.Executing
			return keep()
		}
		arrived := e.travel(t, t.m.Target, 1)
		if e.Map.Culture(t.f.Coord) == t.m.TargetRealm || arrived {
			t.f.ClearPath()
			t.m.Phase = mission.Executing
		} else if t.f.Path == nil {
			t.m.Phase = mission.Loading
		}
	case mission.Executing:
		e.lurk(t)
		t.m.Time++
		if e.Rand.IntN(e.Config.SpyConversionDraw+1) < t.m.Time {
			return replaced(t.m.Handoff(mission.EspionageMission, mission.Loading))
		}
	}
	return keep()
}

// lurk spends the fleet's moves on cardinal steps that stay inside the target
// realm's culture, preferring cells far from the target planet.
func (e *Engine) lurk(t *tick) {
	for t.f.MovesLeft > 0 {
		var best galaxy.Coord
		found := false
		for _, c := range t.f.Coord.Neighbors4() {
			if !e.Map.InBounds(c) || e.Map.Blocked(c) || e.Map.Culture(c) != t.m.TargetRealm {
				continue
			}
			if len(e.FleetsAt(c)) > 0 {
				continue
			}
			if !found || c.Distance(t.m.Target) > best.Distance(t.m.Target) {
				best, found = c, true
			}
		}
		if !found {
			t.f.MovesLeft = 0
			return
		}
		t.f.Coord = best
		t.f.MovesLeft--
		t.r.Chart(best, t.f.Scanner())
	}
}

// falseFlagParties finds a fleet of the target realm near p to strike and a
// third realm the target knows to blame. Either may be nil.
func (e *Engine) falseFlagParties(t *tick, target *realm.Realm, p *galaxy.Planet) (*fleet.Fleet, *realm.Realm) {
	var victim *fleet.Fleet
	for _, f := range target.Fleets.All() {
		if f.Coord.Steps(p.Coord) > falseFlagRadius || f.ShipForFalseFlag() == nil {
			continue
		}
		if victim == nil || f.Coord.Steps(p.Coord) < victim.Coord.Steps(p.Coord) {
			victim = f
		}
	}
	var accused *realm.Realm
	for _, other := range e.Realms {
		if other.ID == t.r.ID || other.ID == target.ID || !e.Diplomacy.HasMet(target.ID, other.ID) {
			continue
		}
		if accused == nil || e.Diplomacy.Liking(target.ID, other.ID) < e.Diplomacy.Liking(target.ID, accused.ID) {
			accused = other
		}
	}
	return victim, accused
}

// espionage closes on the target planet and carries out one act of espionage.
func (e *Engine) espionage(t *tick) Outcome {
	p := e.Map.Planet(t.m.TargetPlanet)
	if p == nil || p.Owner == galaxy.NoRealm || p.Owner == t.r.ID {
		if t.m.Phase == mission.Executing || !e.aimSpy(t) {
			return closed()
		}
		p = e.Map.Planet(t.m.TargetPlanet)
	}

	switch t.m.Phase {
	case mission.Planning, mission.Loading:
		t.m.Target = p.Coord
		t.m.TargetRealm = p.Owner
		t.f.ClearPath()
		t.m.Phase = mission.Trekking
		fallthrough
	case mission.Trekking:
		if e.travel(t, p.Coord, 1) {
			t.m.Phase = mission.Executing
		} else if t.f.Path == nil {
			return closed()
		}
	case mission.Executing:
		e.act(t, p)
		return e.afterEspionage(t)
	}
	return keep()
}

// act scores, picks and resolves one espionage action against p.
func (e *Engine) act(t *tick, p *galaxy.Planet) {
	target := e.Realm(p.Owner)
	if target == nil {
		return
	}
	victim, accused := e.falseFlagParties(t, target, p)
	commander := t.r.Leader(t.f.Commander)

	in := espionage.Assess(e.Diplomacy, t.r, target, t.r.Missions.ByPlanet(p.ID, mission.Attack))
	in.Allowed = espionage.LegalActions(t.r, target, p, victim != nil && accused != nil)
	in.SuccessChance = espionage.SuccessChance(t.f, commander, p)
	in.DetectionChance = espionage.DetectionChance(t.f, commander, p)

	t.m.Espionage = e.scorer.Choose(e.Rand, in)
	if t.m.Espionage == mission.EspionageNone {
		return
	}
	res := e.resolver.Resolve(espionage.Attempt{
		Spy:             t.r,
		Fleet:           t.f,
		Target:          target,
		Planet:          p,
		Action:          t.m.Espionage,
		Accused:         accused,
		Victim:          victim,
		SuccessChance:   in.SuccessChance,
		DetectionChance: in.DetectionChance,
	})
	if res.Capture == espionage.ShipLost {
		e.disbandIfEmpty(t.r, t.f)
	}
}

// afterEspionage closes the mission. An AI realm with its fleet intact goes
// straight back to spying when there is someone left to spy on.
func (e *Engine) afterEspionage(t *tick) Outcome {
	if t.r.Human || t.r.Fleets.Get(t.f.ID) == nil {
		return closed()
	}
	p := e.spyTarget(t)
	if p == nil {
		slog.Debug("no spy target left", "realm", t.r.Name, "fleet", t.f.Name)
		return closed()
	}
	next := t.m.Handoff(mission.SpyMission, mission.Loading)
	next.Espionage = mission.EspionageNone
	next.Target = p.Coord
	next.TargetPlanet = p.ID
	next.TargetRealm = p.Owner
	return replaced(next)
}
