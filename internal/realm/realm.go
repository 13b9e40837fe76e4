// Package realm provides per-player state: personality, technology, credits,
// charted space, leaders, and the fleets and missions the realm owns.
package realm

import (
	"github.com/talgya/realmfleet/internal/fleet"
	"github.com/talgya/realmfleet/internal/galaxy"
	"github.com/talgya/realmfleet/internal/mission"
)

// Attitude is the fixed personality axis of an AI realm.
type Attitude uint8

const (
	Aggressive Attitude = iota
	Backstabbing
	Diplomatic
	Expansionist
	Logical
	Merchantical
	Militaristic
	Peaceful
	Scientific
)

// NumAttitudes is the number of attitudes.
const NumAttitudes = 9

var attitudeNames = [NumAttitudes]string{
	"aggressive", "backstabbing", "diplomatic", "expansionist", "logical",
	"merchantical", "militaristic", "peaceful", "scientific",
}

// String returns the lowercase attitude name.
func (a Attitude) String() string {
	if a < NumAttitudes {
		return attitudeNames[a]
	}
	return "unknown"
}

// Trait is a racial ability.
type Trait uint8

const (
	// TraitGasGiantColonizer settles gas giants by orbital habitats.
	TraitGasGiantColonizer Trait = iota
	// TraitSporeColonizer seeds worlds with spore pods.
	TraitSporeColonizer
)

// TechTractorBeam lets a board realm drag derelicts off the galactic center.
const TechTractorBeam = "Tractor beam"

// Stat counter keys.
const (
	StatGovernorsAssassinated = "governors_assassinated"
	StatSpiesExecuted         = "spies_executed"
	StatShipsScrapped         = "ships_scrapped"
	StatPlanetsColonized      = "planets_colonized"
	StatAnomaliesInvestigated = "anomalies_investigated"
)

// Realm is a player (human or AI) and its owned assets.
type Realm struct {
	ID    galaxy.RealmID `json:"id"`
	Name  string         `json:"name"`
	Human bool           `json:"human"`
	// Board marks the space-pirate realm that belongs to the board itself.
	Board    bool     `json:"board"`
	Attitude Attitude `json:"attitude"`
	Traits   []Trait  `json:"traits"`

	Techs            []string `json:"techs"`
	Credits          int      `json:"credits"`
	CreditProduction int      `json:"credit_production"`
	// FleetAllowance is the fleet capacity supported without upkeep penalty.
	FleetAllowance int `json:"fleet_allowance"`

	Fleets   *fleet.List       `json:"-"`
	Missions *mission.Registry `json:"-"`
	Leaders  []*Leader         `json:"leaders"`
	Stats    map[string]int    `json:"stats"`

	charted map[galaxy.Coord]bool
}

// New creates an AI realm with empty fleet list and registry.
func New(id galaxy.RealmID, name string, attitude Attitude) *Realm {
	return &Realm{
		ID:       id,
		Name:     name,
		Attitude: attitude,
		Fleets:   fleet.NewList(),
		Missions: mission.NewRegistry(),
		Stats:    make(map[string]int),
		charted:  make(map[galaxy.Coord]bool),
	}
}

// HasTrait reports whether the realm has trait t.
func (r *Realm) HasTrait(t Trait) bool {
	for _, have := range r.Traits {
		if have == t {
			return true
		}
	}
	return false
}

// HasTech reports whether the realm has researched tech.
func (r *Realm) HasTech(tech string) bool {
	for _, have := range r.Techs {
		if have == tech {
			return true
		}
	}
	return false
}

// AddTech grants a tech once.
func (r *Realm) AddTech(tech string) {
	if !r.HasTech(tech) {
		r.Techs = append(r.Techs, tech)
	}
}

// StealableTechs returns techs other has that r lacks, in other's order.
func (r *Realm) StealableTechs(other *Realm) []string {
	var result []string
	for _, tech := range other.Techs {
		if !r.HasTech(tech) {
			result = append(result, tech)
		}
	}
	return result
}

// Increment bumps a stat counter.
func (r *Realm) Increment(stat string) {
	if r.Stats == nil {
		r.Stats = make(map[string]int)
	}
	r.Stats[stat]++
}

// Chart marks every cell within radius of c as explored.
func (r *Realm) Chart(c galaxy.Coord, radius int) {
	if r.charted == nil {
		r.charted = make(map[galaxy.Coord]bool)
	}
	for y := c.Y - radius; y <= c.Y+radius; y++ {
		for x := c.X - radius; x <= c.X+radius; x++ {
			r.charted[galaxy.Coord{X: x, Y: y}] = true
		}
	}
}

// IsCharted reports whether the realm has explored c.
func (r *Realm) IsCharted(c galaxy.Coord) bool {
	return r.charted[c]
}

// UnchartedPercent returns the share (0–100) of on-map cells within radius of
// center the realm has not explored.
func (r *Realm) UnchartedPercent(m *galaxy.Map, center galaxy.Coord, radius int) int {
	total, uncharted := 0, 0
	for y := center.Y - radius; y <= center.Y+radius; y++ {
		for x := center.X - radius; x <= center.X+radius; x++ {
			c := galaxy.Coord{X: x, Y: y}
			if !m.InBounds(c) {
				continue
			}
			total++
			if !r.charted[c] {
				uncharted++
			}
		}
	}
	if total == 0 {
		return 0
	}
	return uncharted * 100 / total
}

// HomePlanet returns the realm's first owned planet in map order, or nil.
func (r *Realm) HomePlanet(m *galaxy.Map) *galaxy.Planet {
	for _, p := range m.Planets {
		if p.Owner == r.ID {
			return p
		}
	}
	return nil
}

// UsedFleetCapacity sums the allowance consumed by every fleet.
func (r *Realm) UsedFleetCapacity() int {
	total := 0
	for _, f := range r.Fleets.All() {
		total += f.Capacity()
	}
	return total
}

// MilitaryPower sums the power of every fleet.
func (r *Realm) MilitaryPower() int {
	total := 0
	for _, f := range r.Fleets.All() {
		total += f.Power()
	}
	return total
}
