// Package ai runs the missions of every fleet, one turn at a time.
//
// Each mission type has its own handler in a dispatch table. A handler reads
// and advances its mission's phase, moves the fleet along a computed route,
// and reports an Outcome: keep the mission, close it, or replace it with a
// mission of another type.
package ai

import (
	"github.com/talgya/realmfleet/internal/config"
	"github.com/talgya/realmfleet/internal/diplomacy"
	"github.com/talgya/realmfleet/internal/entropy"
	"github.com/talgya/realmfleet/internal/fleet"
	"github.com/talgya/realmfleet/internal/galaxy"
	"github.com/talgya/realmfleet/internal/news"
	"github.com/talgya/realmfleet/internal/realm"
)

// cultureRadius is how far a colony's culture reaches.
const cultureRadius = 4

// Game is the shared state every handler reads and mutates.
type Game struct {
	Map       *galaxy.Map
	Realms    []*realm.Realm
	Diplomacy diplomacy.Bridge
	News      news.Sink
	Rand      entropy.Source
	Config    config.Config
	Turn      int

	lastFleetID fleet.ID
}

// Realm returns the realm with the given ID, or nil.
func (g *Game) Realm(id galaxy.RealmID) *realm.Realm {
	for _, r := range g.Realms {
		if r.ID == id {
			return r
		}
	}
	return nil
}

// NewFleetID returns a fleet ID not used by any realm.
func (g *Game) NewFleetID() fleet.ID {
	if g.lastFleetID == fleet.NoFleet {
		for _, r := range g.Realms {
			for _, f := range r.Fleets.All() {
				g.lastFleetID = max(g.lastFleetID, f.ID)
			}
		}
	}
	g.lastFleetID++
	return g.lastFleetID
}

// FindFleet locates a fleet across all realms.
func (g *Game) FindFleet(id fleet.ID) (*fleet.Fleet, *realm.Realm) {
	if id == fleet.NoFleet {
		return nil, nil
	}
	for _, r := range g.Realms {
		if f := r.Fleets.Get(id); f != nil {
			return f, r
		}
	}
	return nil, nil
}

// FleetsAt returns every fleet at c, across realms.
func (g *Game) FleetsAt(c galaxy.Coord) []*fleet.Fleet {
	var out []*fleet.Fleet
	for _, r := range g.Realms {
		out = append(out, r.Fleets.At(c)...)
	}
	return out
}

// PlanetOwner implements mission.Ownership.
func (g *Game) PlanetOwner(id galaxy.PlanetID) galaxy.RealmID {
	if p := g.Map.Planet(id); p != nil {
		return p.Owner
	}
	return galaxy.NoRealm
}

// DeployedStarbase implements mission.Ownership.
func (g *Game) DeployedStarbase(id fleet.ID) (galaxy.RealmID, bool) {
	f, owner := g.FindFleet(id)
	if f == nil || !f.IsStarbaseDeployed() {
		return galaxy.NoRealm, false
	}
	return owner.ID, true
}

// MilitaryPower returns a realm's total fleet power. Used as the diplomacy
// ledger's military value.
func (g *Game) MilitaryPower(id galaxy.RealmID) int {
	if r := g.Realm(id); r != nil {
		return r.MilitaryPower()
	}
	return 0
}

// isEnemy reports whether planets and fleets of owner are fair game for r.
func (g *Game) isEnemy(r *realm.Realm, owner galaxy.RealmID) bool {
	if owner == r.ID || owner == galaxy.NoRealm {
		return false
	}
	if r.Board {
		return !g.Diplomacy.Allied(r.ID, owner)
	}
	if other := g.Realm(owner); other != nil && other.Board {
		return true
	}
	return g.Diplomacy.AtWar(r.ID, owner)
}

// visible reports whether spotter can see target through its cloak.
func visible(spotter, target *fleet.Fleet) bool {
	return target.Cloak() <= spotter.CloakDetection()
}

func (g *Game) publish(rec news.Record) {
	if rec.Turn == 0 {
		rec.Turn = g.Turn
	}
	g.News.Publish(rec)
}
