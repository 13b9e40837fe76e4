package fleet

import (
	"github.com/talgya/realmfleet/internal/galaxy"
)

// ID is a stable, game-wide fleet handle. Renames never change it.
type ID uint64

// NoFleet marks a mission that has no fleet assigned yet.
const NoFleet ID = 0

// Navigator is a route in progress produced by the pathfinding adapter.
// The fleet owns it until the route completes or is abandoned.
type Navigator interface {
	NextPoint() (galaxy.Coord, bool)
	Advance()
	IsFinalStep() bool
	Remaining() int
}

// StandingRoute is a straight-line order. Speed 0 means the fleet holds position
// in a defensive stance.
type StandingRoute struct {
	Start galaxy.Coord `json:"start"`
	End   galaxy.Coord `json:"end"`
	Speed int          `json:"speed"`
}

// Defending reports whether the route is a zero-speed guard order.
func (r *StandingRoute) Defending() bool {
	return r != nil && r.Speed == 0
}

// Fleet is a named, mobile group of ships belonging to one realm.
type Fleet struct {
	ID    ID             `json:"id"`
	Name  string         `json:"name"`
	Owner galaxy.RealmID `json:"owner"`
	Coord galaxy.Coord   `json:"coord"`
	Ships []*Ship        `json:"ships"`

	MovesLeft int             `json:"moves_left"`
	Commander galaxy.LeaderID `json:"commander"`

	Route *StandingRoute `json:"route,omitempty"`
	// Path is the active pathfinding adapter; nil when no route is in flight.
	Path Navigator `json:"-"`
}

// Speed returns the speed of the slowest ship.
func (f *Fleet) Speed() int {
	if len(f.Ships) == 0 {
		return 0
	}
	speed := f.Ships[0].Speed
	for _, s := range f.Ships[1:] {
		if s.Speed < speed {
			speed = s.Speed
		}
	}
	return speed
}

// Power returns the summed military value of all ships.
func (f *Fleet) Power() int {
	total := 0
	for _, s := range f.Ships {
		total += s.Power
	}
	return total
}

// Cloak returns the weakest cloak in the fleet; one uncloaked hull exposes all.
func (f *Fleet) Cloak() int {
	if len(f.Ships) == 0 {
		return 0
	}
	cloak := f.Ships[0].Cloak
	for _, s := range f.Ships[1:] {
		if s.Cloak < cloak {
			cloak = s.Cloak
		}
	}
	return cloak
}

// CloakDetection returns the best cloak detection in the fleet.
func (f *Fleet) CloakDetection() int {
	best := 0
	for _, s := range f.Ships {
		if s.CloakDetection > best {
			best = s.CloakDetection
		}
	}
	return best
}

// Scanner returns the best scanner range in the fleet (minimum 1).
func (f *Fleet) Scanner() int {
	best := 1
	for _, s := range f.Ships {
		if s.Scanner > best {
			best = s.Scanner
		}
	}
	return best
}

// SpyPower returns the summed espionage strength of the fleet.
func (f *Fleet) SpyPower() int {
	total := 0
	for _, s := range f.Ships {
		total += s.SpyPower
	}
	return total
}

// Bombs returns the summed bombing strength of the fleet.
func (f *Fleet) Bombs() int {
	total := 0
	for _, s := range f.Ships {
		total += s.Bombs
	}
	return total
}

// ColonyShip returns the first colony-capable hull, or nil.
func (f *Fleet) ColonyShip() *Ship {
	for _, s := range f.Ships {
		if s.IsColonyShip() {
			return s
		}
	}
	return nil
}

// Colonists returns all colonists aboard.
func (f *Fleet) Colonists() int {
	total := 0
	for _, s := range f.Ships {
		total += s.Colonists
	}
	return total
}

// FreeColonistSpace returns the colonist room left in the fleet.
func (f *Fleet) FreeColonistSpace() int {
	total := 0
	for _, s := range f.Ships {
		total += s.FreeColonistSpace()
	}
	return total
}

// Troops returns all troops aboard.
func (f *Fleet) Troops() int {
	total := 0
	for _, s := range f.Ships {
		total += s.Troops
	}
	return total
}

// FreeTroopSpace returns the troop room left in the fleet.
func (f *Fleet) FreeTroopSpace() int {
	total := 0
	for _, s := range f.Ships {
		total += s.FreeTroopSpace()
	}
	return total
}

// LoadColonist puts one colonist in the first ship with room.
func (f *Fleet) LoadColonist() bool {
	for _, s := range f.Ships {
		if s.FreeColonistSpace() > 0 {
			s.Colonists++
			return true
		}
	}
	return false
}

// LoadTroop puts one trooper in the first ship with room.
func (f *Fleet) LoadTroop() bool {
	for _, s := range f.Ships {
		if s.FreeTroopSpace() > 0 {
			s.Troops++
			return true
		}
	}
	return false
}

// HasClass reports whether any ship is of class c.
func (f *Fleet) HasClass(c Class) bool {
	for _, s := range f.Ships {
		if s.Class == c {
			return true
		}
	}
	return false
}

// IsStarbaseDeployed reports whether the fleet is an anchored starbase group.
func (f *Fleet) IsStarbaseDeployed() bool {
	if len(f.Ships) == 0 {
		return false
	}
	for _, s := range f.Ships {
		if s.Class != ClassStarbase || !s.Deployed {
			return false
		}
	}
	return true
}

// ShipForFalseFlag returns the weakest non-starbase hull, the one a
// false-flag raid can plausibly destroy. Returns nil if there is none.
func (f *Fleet) ShipForFalseFlag() *Ship {
	var weakest *Ship
	for _, s := range f.Ships {
		if s.Class == ClassStarbase {
			continue
		}
		if weakest == nil || s.Power < weakest.Power {
			weakest = s
		}
	}
	return weakest
}

// CheapestObsolete returns the cheapest obsolete hull, or nil.
func (f *Fleet) CheapestObsolete() *Ship {
	var cheapest *Ship
	for _, s := range f.Ships {
		if !s.Obsolete {
			continue
		}
		if cheapest == nil || s.Cost < cheapest.Cost {
			cheapest = s
		}
	}
	return cheapest
}

// RemoveShip drops ship s from the fleet. Returns false if it was not aboard.
func (f *Fleet) RemoveShip(s *Ship) bool {
	for i, candidate := range f.Ships {
		if candidate == s {
			f.Ships = append(f.Ships[:i], f.Ships[i+1:]...)
			return true
		}
	}
	return false
}

// AddShip appends a ship.
func (f *Fleet) AddShip(s *Ship) {
	f.Ships = append(f.Ships, s)
}

// Capacity returns the fleet allowance consumed by the fleet.
func (f *Fleet) Capacity() int {
	total := 0
	for _, s := range f.Ships {
		total += s.FleetCapacity
	}
	return total
}

// ClearPath abandons any route in flight.
func (f *Fleet) ClearPath() {
	f.Path = nil
}
