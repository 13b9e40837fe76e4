package galaxy

// PlanetID is a stable planet handle. Renaming a planet never changes it.
type PlanetID uint64

// NoPlanet marks a mission without a target planet.
const NoPlanet PlanetID = 0

// LeaderID identifies a leader (governor or commander) across realms.
type LeaderID uint64

// NoLeader marks an empty governor seat.
const NoLeader LeaderID = 0

// Building is a planetary improvement.
type Building struct {
	Name string `json:"name"`
	// CounterSpy adds to the planet's detection of hostile agents.
	CounterSpy int `json:"counter_spy"`
}

// Planet is a colonizable body orbiting a sun.
type Planet struct {
	ID    PlanetID `json:"id"`
	Name  string   `json:"name"`
	Coord Coord    `json:"coord"`
	Sun   SunID    `json:"sun"`
	Owner RealmID  `json:"owner"`

	Size       int  `json:"size"`  // 1–10, drives population capacity
	Metal      int  `json:"metal"` // Raw metal deposits
	GasGiant   bool `json:"gas_giant"`
	Artificial bool `json:"artificial"`

	Population int        `json:"population"`
	Workers    int        `json:"workers"` // Population assigned to production
	Governor   LeaderID   `json:"governor"`
	Buildings  []Building `json:"buildings"`

	// Production is the accumulated progress of the current build.
	Production int `json:"production"`
	// OrbitalPower is the firepower of the planet's orbital defense.
	OrbitalPower int `json:"orbital_power"`
}

// Capacity returns the population the planet can hold.
func (p *Planet) Capacity() int {
	c := p.Size * 2
	if c < 1 {
		c = 1
	}
	return c
}

// FullLevel returns how crowded the planet is, from 1 (sparse) to 4 (full).
func (p *Planet) FullLevel() int {
	capacity := p.Capacity()
	switch {
	case p.Population >= capacity:
		return 4
	case p.Population*4 >= capacity*3:
		return 3
	case p.Population*2 >= capacity:
		return 2
	default:
		return 1
	}
}

// Value scores how desirable the planet is to colonize.
// gasGiantColonizer marks realms that can settle gas giants by orbital habitats.
func (p *Planet) Value(gasGiantColonizer bool) int {
	value := p.Size*10 + p.Metal/10
	if p.GasGiant && !gasGiantColonizer {
		return 0
	}
	if p.Artificial {
		value /= 2
	}
	return value
}

// Colonizable reports whether a realm may settle the planet right now.
func (p *Planet) Colonizable(gasGiantColonizer bool) bool {
	if p.Owner != NoRealm {
		return false
	}
	if p.GasGiant && !gasGiantColonizer {
		return false
	}
	return true
}

// CounterSpy returns the planet's total detection bonus.
func (p *Planet) CounterSpy() int {
	total := 0
	for _, b := range p.Buildings {
		total += b.CounterSpy
	}
	return total
}

// RemoveBuilding removes the building at index i and returns it.
func (p *Planet) RemoveBuilding(i int) (Building, bool) {
	if i < 0 || i >= len(p.Buildings) {
		return Building{}, false
	}
	b := p.Buildings[i]
	p.Buildings = append(p.Buildings[:i], p.Buildings[i+1:]...)
	return b, true
}

// KillPopulation removes up to n population, keeping workers within bounds.
// Returns how many died.
func (p *Planet) KillPopulation(n int) int {
	if n > p.Population {
		n = p.Population
	}
	if n < 0 {
		n = 0
	}
	p.Population -= n
	if p.Workers > p.Population {
		p.Workers = p.Population
	}
	return n
}
