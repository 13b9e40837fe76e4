package ai

import (
	"fmt"
	"log/slog"

	"github.com/talgya/realmfleet/internal/espionage"
	"github.com/talgya/realmfleet/internal/fleet"
	"github.com/talgya/realmfleet/internal/mission"
	"github.com/talgya/realmfleet/internal/realm"
)

// OutcomeKind says what the driver does with a mission after its handler ran.
type OutcomeKind uint8

const (
	Continue OutcomeKind = iota
	Close
	Replace
)

// Outcome is a handler's verdict on its mission.
type Outcome struct {
	Kind OutcomeKind
	// Next replaces the mission when Kind is Replace.
	Next *mission.Mission
}

func keep() Outcome { return Outcome{Kind: Continue} }

func closed() Outcome { return Outcome{Kind: Close} }

func replaced(next *mission.Mission) Outcome { return Outcome{Kind: Replace, Next: next} }

// tick is one handler invocation: a realm's mission and the fleet flying it.
type tick struct {
	r *realm.Realm
	f *fleet.Fleet
	m *mission.Mission
}

type handler func(e *Engine, t *tick) Outcome

var handlers = [mission.NumTypes]handler{
	mission.Roam:               (*Engine).roam,
	mission.Privateer:          (*Engine).privateer,
	mission.Explore:            (*Engine).explore,
	mission.ColonyExplore:      (*Engine).colonyExplore,
	mission.Colonize:           (*Engine).colonize,
	mission.SporeColony:        (*Engine).colonize,
	mission.DeployStarbase:     (*Engine).deployStarbase,
	mission.Move:               (*Engine).move,
	mission.DestroyFleet:       (*Engine).destroyFleet,
	mission.Intercept:          (*Engine).intercept,
	mission.TradeFleet:         (*Engine).tradeFleet,
	mission.DiplomaticDelegacy: (*Engine).delegacy,
	mission.Gather:             (*Engine).gather,
	mission.Attack:             (*Engine).attack,
	mission.DestroyStarbase:    (*Engine).destroyStarbase,
	mission.Defend:             (*Engine).defend,
	mission.SpyMission:         (*Engine).spy,
	mission.EspionageMission:   (*Engine).espionage,
}

// scrapsAfter marks the mission types after which the fleet is checked for
// ships the realm can no longer support.
var scrapsAfter = map[mission.Type]bool{
	mission.Privateer:       true,
	mission.Attack:          true,
	mission.DestroyStarbase: true,
	mission.Defend:          true,
}

// Engine plays every realm's missions.
type Engine struct {
	*Game
	scorer   *espionage.Scorer
	resolver *espionage.Resolver
}

// NewEngine compiles the espionage rules and wires the resolver to g.
func NewEngine(g *Game) (*Engine, error) {
	scorer, err := espionage.NewDefaultScorer()
	if err != nil {
		return nil, fmt.Errorf("espionage scorer: %w", err)
	}
	return &Engine{
		Game:   g,
		scorer: scorer,
		resolver: &espionage.Resolver{
			Diplomacy: g.Diplomacy,
			News:      g.News,
			Rand:      g.Rand,
			Realms:    g.Realms,
		},
	}, nil
}

// Handle runs one mission's handler. A nil mission, or one whose fleet no
// longer exists, is left alone.
func (e *Engine) Handle(r *realm.Realm, m *mission.Mission) Outcome {
	if m == nil || m.Type >= mission.NumTypes {
		return keep()
	}
	f := r.Fleets.Get(m.FleetID)
	if f == nil {
		return keep()
	}
	before := m.Phase
	out := handlers[m.Type](e, &tick{r: r, f: f, m: m})
	if m.Phase != before {
		slog.Debug("mission phase changed", "realm", r.Name, "fleet", f.Name,
			"mission", m.Type, "from", before, "to", m.Phase)
	}
	if scrapsAfter[m.Type] && r.Fleets.Get(f.ID) != nil {
		e.scrapTooManyShips(r, f)
	}
	return out
}

// apply carries out an Outcome against the realm's registry.
func (e *Engine) apply(r *realm.Realm, m *mission.Mission, out Outcome) {
	switch out.Kind {
	case Close:
		r.Missions.Remove(m)
		slog.Info("mission closed", "realm", r.Name, "mission", m.Type, "fleet", m.FleetID)
	case Replace:
		r.Missions.Replace(m, out.Next)
		if out.Next != nil {
			slog.Info("mission handed off", "realm", r.Name, "fleet", m.FleetID,
				"from", m.Type, "to", out.Next.Type)
		}
	}
}

// PlayRealm runs one turn of missions for r: moves are refilled, stale
// missions swept, then each fleet's primary mission and any espionage
// mission it carries are handled in registry order.
func (e *Engine) PlayRealm(r *realm.Realm) {
	for _, f := range r.Fleets.All() {
		f.MovesLeft = f.Speed()
	}

	if n := r.Missions.Clean(func(id fleet.ID) bool { return r.Fleets.Get(id) != nil }); n > 0 {
		slog.Debug("stale missions removed", "realm", r.Name, "count", n)
	}

	primary := make(map[fleet.ID]bool)
	for _, m := range r.Missions.All() {
		if !r.Missions.Contains(m) || m.FleetID == fleet.NoFleet {
			continue
		}
		if m.Type != mission.EspionageMission {
			if primary[m.FleetID] {
				continue
			}
			primary[m.FleetID] = true
		}
		e.apply(r, m, e.Handle(r, m))
	}

	r.ServePrisonTime()
}

// PlayTurn advances the game one turn and plays every realm.
func (e *Engine) PlayTurn() {
	e.Turn++
	for _, r := range e.Realms {
		e.PlayRealm(r)
	}
	slog.Debug("turn played", "turn", e.Turn)
}
