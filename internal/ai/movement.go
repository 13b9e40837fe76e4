package ai

import (
	"fmt"
	"log/slog"

	"github.com/talgya/realmfleet/internal/fleet"
	"github.com/talgya/realmfleet/internal/galaxy"
	"github.com/talgya/realmfleet/internal/news"
	"github.com/talgya/realmfleet/internal/pathfind"
	"github.com/talgya/realmfleet/internal/realm"
)

type goaled interface {
	Goal() galaxy.Coord
}

// routeTo gives f a route to target unless it already has one. Returns false
// when the target cannot be reached.
func (e *Engine) routeTo(f *fleet.Fleet, target galaxy.Coord) bool {
	if f.Path != nil {
		if g, ok := f.Path.(goaled); ok && g.Goal() == target && f.Path.Remaining() > 0 {
			return true
		}
	}
	return e.forceRoute(f, target)
}

// forceRoute discards any route in flight and computes a fresh one.
func (e *Engine) forceRoute(f *fleet.Fleet, target galaxy.Coord) bool {
	f.ClearPath()
	if f.Coord == target {
		return true
	}
	s := pathfind.New(f.Coord, target, e.Map.Blocked, pathfind.Diagonal(), pathfind.AllowBlockedGoal())
	if !s.Compute() {
		slog.Debug("no route", "fleet", f.Name, "from", f.Coord, "to", target)
		return false
	}
	s.Route(true)
	if s.Remaining() == 0 {
		return true
	}
	f.Path = s
	return true
}

// advance spends the fleet's remaining moves along its route. Movement stops
// early at a foreign fleet or a hostile orbital defense.
func (e *Engine) advance(r *realm.Realm, f *fleet.Fleet) {
	for f.MovesLeft > 0 && f.Path != nil {
		next, ok := f.Path.NextPoint()
		if !ok {
			f.ClearPath()
			return
		}
		if e.Map.Blocked(next) {
			f.ClearPath()
			return
		}
		if e.obstructed(r, f, next) {
			return
		}
		f.Path.Advance()
		f.Coord = next
		f.MovesLeft--
		r.Chart(next, f.Scanner())
		if f.Path.Remaining() == 0 {
			f.ClearPath()
		}
	}
}

// obstructed reports whether c is held by someone else, making first contact
// with them if needed.
func (e *Engine) obstructed(r *realm.Realm, f *fleet.Fleet, c galaxy.Coord) bool {
	for _, other := range e.FleetsAt(c) {
		if other.Owner == r.ID {
			continue
		}
		e.encounter(r, other.Owner, c)
		return true
	}
	if p := e.Map.PlanetAt(c); p != nil && p.OrbitalPower > 0 && p.Owner != r.ID && p.Owner != galaxy.NoRealm &&
		!e.Diplomacy.Allied(r.ID, p.Owner) {
		e.encounter(r, p.Owner, c)
		return true
	}
	return false
}

// encounter introduces two realms whose assets met.
func (e *Engine) encounter(r *realm.Realm, owner galaxy.RealmID, c galaxy.Coord) {
	if e.Diplomacy.HasMet(r.ID, owner) {
		return
	}
	other := e.Realm(owner)
	if other == nil {
		return
	}
	e.Diplomacy.Meet(r.ID, owner)
	for _, side := range []*realm.Realm{r, other} {
		e.publish(news.Record{
			Kind:  news.KindEvent,
			Realm: side.ID,
			Coord: c,
			Title: "First contact",
			Text:  fmt.Sprintf("%s and %s have made first contact.", r.Name, other.Name),
		})
	}
}

// travel routes toward target and moves. Returns true once the fleet is
// within reach steps of target.
func (e *Engine) travel(t *tick, target galaxy.Coord, reach int) bool {
	if t.f.Coord.Steps(target) <= reach {
		t.f.ClearPath()
		return true
	}
	if !e.routeTo(t.f, target) {
		return false
	}
	e.advance(t.r, t.f)
	return t.f.Coord.Steps(target) <= reach
}

// investigate collects the anomaly at c, if any.
func (e *Engine) investigate(r *realm.Realm, c galaxy.Coord) bool {
	a := e.Map.AnomalyAt(c)
	if a == nil {
		return false
	}
	r.Credits += a.Credits
	e.Map.RemoveAnomaly(c)
	r.Increment(realm.StatAnomaliesInvestigated)
	e.publish(news.Record{
		Kind:  news.KindMessage,
		Realm: r.ID,
		Coord: c,
		Title: "Anomaly investigated",
		Text:  fmt.Sprintf("Our fleet studied a %s and recovered %s.", a.Kind, news.Credits(a.Credits)),
	})
	return true
}
