package ai

import (
	"fmt"

	"github.com/talgya/realmfleet/internal/diplomacy"
	"github.com/talgya/realmfleet/internal/galaxy"
	"github.com/talgya/realmfleet/internal/mission"
	"github.com/talgya/realmfleet/internal/news"
)

// delegacyGoodwill is how much a visited realm warms to the sender.
const delegacyGoodwill = 10

// tradeValue is what one trade run between two planets earns.
func tradeValue(from, to *galaxy.Planet) int {
	return max(1, (from.Population+to.Population)/2+from.Coord.Steps(to.Coord)/2)
}

// trade credits one exchange at here with goods carried from there.
func (e *Engine) trade(t *tick, here, there *galaxy.Planet) {
	credits := tradeValue(here, there)
	t.r.Credits += credits
	if here.Owner != t.r.ID && here.Owner != galaxy.NoRealm {
		e.Diplomacy.RecordTrade(t.r.ID, here.Owner, credits)
	}
	e.publish(news.Record{Kind: news.KindMessage, Realm: t.r.ID, Coord: here.Coord, Title: "Trade completed",
		Text: fmt.Sprintf("%s traded at %s for %s.", t.f.Name, here.Name, news.Credits(credits))})
}

// tradeFleet shuttles between two planets, earning credits at each end.
// Mission time counts completed legs; the first departure also trades at the
// origin.
func (e *Engine) tradeFleet(t *tick) Outcome {
	dest := e.Map.Planet(t.m.TargetPlanet)
	origin := e.Map.Planet(t.m.Origin)
	if dest == nil || origin == nil {
		return e.moveHome(t)
	}
	if dest.Owner != t.r.ID && dest.Owner != galaxy.NoRealm && e.Diplomacy.AtWar(t.r.ID, dest.Owner) {
		return e.moveHome(t)
	}

	switch t.m.Phase {
	case mission.Planning, mission.Loading:
		if t.m.Time == 0 && t.f.Coord.Steps(origin.Coord) <= 1 {
			e.trade(t, origin, dest)
			t.m.Time++
		}
		t.m.Target = dest.Coord
		if !e.forceRoute(t.f, dest.Coord) {
			return e.moveHome(t)
		}
		t.m.Phase = mission.Trekking
		fallthrough
	case mission.Trekking:
		if e.travel(t, dest.Coord, 1) {
			t.m.Phase = mission.Executing
		} else if t.f.Path == nil {
			return e.moveHome(t)
		}
	case mission.Executing:
		e.trade(t, dest, origin)
		t.m.Time++
		t.m.Origin, t.m.TargetPlanet = t.m.TargetPlanet, t.m.Origin
		t.m.Phase = mission.Loading
	}
	return keep()
}

// delegacyTarget finds where to meet the target realm: its closest planet,
// else its closest culture sector.
func (e *Engine) delegacyTarget(t *tick) (galaxy.Coord, bool) {
	var best *galaxy.Planet
	for _, p := range e.Map.PlanetsOf(t.m.TargetRealm) {
		if best == nil || p.Coord.Distance(t.f.Coord) < best.Coord.Distance(t.f.Coord) {
			best = p
		}
	}
	if best != nil {
		return best.Coord, true
	}

	var sector galaxy.Coord
	found := false
	w, h := e.Map.Width, e.Map.Height
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c := galaxy.Coord{X: x, Y: y}
			if e.Map.Culture(c) != t.m.TargetRealm || e.Map.Blocked(c) {
				continue
			}
			if !found || c.Distance(t.f.Coord) < sector.Distance(t.f.Coord) {
				sector, found = c, true
			}
		}
	}
	return sector, found
}

// delegacy carries envoys to another realm and spends a few turns there.
func (e *Engine) delegacy(t *tick) Outcome {
	switch t.m.Phase {
	case mission.Planning, mission.Loading:
		target, ok := e.delegacyTarget(t)
		if !ok || !e.forceRoute(t.f, target) {
			return replaced(t.m.Handoff(mission.Explore, mission.Loading))
		}
		t.m.Target = target
		t.m.Phase = mission.Trekking
		fallthrough
	case mission.Trekking:
		if e.travel(t, t.m.Target, 1) {
			t.m.Phase = mission.Executing
			t.m.Time = 0
			e.encounter(t.r, t.m.TargetRealm, t.f.Coord)
		} else if t.f.Path == nil {
			t.m.Phase = mission.Loading
		}
	case mission.Executing:
		t.m.Time++
		if t.m.Time < e.Config.DelegacyTurns {
			return keep()
		}
		e.Diplomacy.AddBonus(t.m.TargetRealm, t.r.ID, diplomacy.BonusDelegacy, delegacyGoodwill)
		if other := e.Realm(t.m.TargetRealm); other != nil {
			e.publish(news.Record{Kind: news.KindEvent, Realm: other.ID, Coord: t.f.Coord, Title: "Delegacy received",
				Text: fmt.Sprintf("A delegacy from %s spent %d turns with %s.", t.r.Name, t.m.Time, other.Name)})
		}
		return e.moveHome(t)
	}
	return keep()
}
