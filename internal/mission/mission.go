// Package mission provides the mission data model, the per-realm Mission
// Registry and the registry's binary record format.
package mission

import (
	"fmt"

	"github.com/talgya/realmfleet/internal/fleet"
	"github.com/talgya/realmfleet/internal/galaxy"
)

// Type is the kind of multi-turn order. The set is closed.
type Type uint8

const (
	Roam Type = iota
	Privateer
	Explore
	ColonyExplore
	Colonize
	SporeColony
	DeployStarbase
	Move
	DestroyFleet
	Intercept
	TradeFleet
	DiplomaticDelegacy
	Gather
	Attack
	DestroyStarbase
	Defend
	SpyMission
	EspionageMission
)

// NumTypes is the number of mission types.
const NumTypes = 18

var typeNames = [NumTypes]string{
	"ROAM", "PRIVATEER", "EXPLORE", "COLONY_EXPLORE", "COLONIZE", "SPORE_COLONY",
	"DEPLOY_STARBASE", "MOVE", "DESTROY_FLEET", "INTERCEPT", "TRADE_FLEET",
	"DIPLOMATIC_DELEGACY", "GATHER", "ATTACK", "DESTROY_STARBASE", "DEFEND",
	"SPY_MISSION", "ESPIONAGE_MISSION",
}

// String returns the mission type name.
func (t Type) String() string {
	if t < NumTypes {
		return typeNames[t]
	}
	return fmt.Sprintf("Type(%d)", uint8(t))
}

// Phase is the state-machine position of a mission.
type Phase uint8

const (
	Planning Phase = iota
	Loading
	Trekking
	Executing
	Building
)

var phaseNames = [...]string{"PLANNING", "LOADING", "TREKKING", "EXECUTING", "BUILDING"}

// String returns the phase name.
func (p Phase) String() string {
	if int(p) < len(phaseNames) {
		return phaseNames[p]
	}
	return fmt.Sprintf("Phase(%d)", uint8(p))
}

// initialPhases is where each mission type's state machine starts.
var initialPhases = [NumTypes]Phase{
	Roam:               Trekking,
	Privateer:          Planning,
	Explore:            Loading,
	ColonyExplore:      Loading,
	Colonize:           Loading,
	SporeColony:        Loading,
	DeployStarbase:     Loading,
	Move:               Trekking,
	DestroyFleet:       Loading,
	Intercept:          Trekking,
	TradeFleet:         Loading,
	DiplomaticDelegacy: Loading,
	Gather:             Loading,
	Attack:             Planning,
	DestroyStarbase:    Planning,
	Defend:             Trekking,
	SpyMission:         Loading,
	EspionageMission:   Loading,
}

// InitialPhase returns the phase a new mission of type t starts in.
func InitialPhase(t Type) Phase {
	if t < NumTypes {
		return initialPhases[t]
	}
	return Planning
}

// Mission is one active, multi-turn order.
type Mission struct {
	Type   Type         `json:"type"`
	Phase  Phase        `json:"phase"`
	Target galaxy.Coord `json:"target"`

	TargetPlanet galaxy.PlanetID `json:"target_planet"`
	TargetRealm  galaxy.RealmID  `json:"target_realm"`
	TargetFleet  fleet.ID        `json:"target_fleet"`
	// Origin is the other endpoint of a trade loop.
	Origin   galaxy.PlanetID `json:"origin"`
	Building string          `json:"building,omitempty"`

	// FleetID is a weak reference; the fleet is looked up every tick.
	FleetID fleet.ID `json:"fleet_id"`

	// Time is a cooperative progress counter whose meaning depends on Type.
	Time int `json:"time"`

	ShipFilter string        `json:"ship_filter,omitempty"`
	Sun        galaxy.SunID  `json:"sun"`
	Espionage  EspionageType `json:"espionage"`
}

// New creates a mission of type t aimed at target, in the type's initial phase.
func New(t Type, target galaxy.Coord) *Mission {
	return &Mission{
		Type:        t,
		Phase:       InitialPhase(t),
		Target:      target,
		TargetRealm: galaxy.NoRealm,
	}
}

// Handoff opens a mission of a different type carrying forward the fleet,
// targets and auxiliary fields. The progress counter starts over.
func (m *Mission) Handoff(t Type, phase Phase) *Mission {
	next := *m
	next.Type = t
	next.Phase = phase
	next.Time = 0
	return &next
}

// String returns a compact description for logs.
func (m *Mission) String() string {
	return fmt.Sprintf("%s/%s@%s", m.Type, m.Phase, m.Target)
}
