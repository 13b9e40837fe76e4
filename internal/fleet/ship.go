// Package fleet provides ships, fleets, per-realm fleet lists and leaders.
package fleet

// Class is the role a ship hull was designed for.
type Class uint8

const (
	ClassScout Class = iota
	ClassColony
	ClassSpore // Colony pod that can also seed hostile worlds
	ClassTrooper
	ClassWarship
	ClassFreighter
	ClassStarbase
	ClassSpy
	ClassPrivateer
)

var classNames = [...]string{
	"scout", "colony", "spore", "trooper", "warship", "freighter", "starbase", "spy", "privateer",
}

// String returns the lowercase class name.
func (c Class) String() string {
	if int(c) < len(classNames) {
		return classNames[c]
	}
	return "unknown"
}

// Ship is a single hull inside a fleet.
type Ship struct {
	Name  string `json:"name"`
	Class Class  `json:"class"`

	Speed int `json:"speed"` // Moves per turn
	Power int `json:"power"` // Military value
	Cost  int `json:"cost"`  // Build cost, used when picking what to scrap
	// FleetCapacity is how much of the realm's fleet allowance the hull uses.
	FleetCapacity int `json:"fleet_capacity"`

	Colonists        int `json:"colonists"`
	ColonistCapacity int `json:"colonist_capacity"`
	Troops           int `json:"troops"`
	TroopCapacity    int `json:"troop_capacity"`

	Cloak          int `json:"cloak"`
	CloakDetection int `json:"cloak_detection"`
	Scanner        int `json:"scanner"`
	SpyPower       int `json:"spy_power"`
	Bombs          int `json:"bombs"`

	Obsolete         bool `json:"obsolete"`
	Deployed         bool `json:"deployed"`          // Starbase anchored in deep space
	ArtificialPlanet bool `json:"artificial_planet"` // Carries an artificial planet kit
	TractorBeam      bool `json:"tractor_beam"`
}

// IsColonyShip reports whether the hull can found colonies.
func (s *Ship) IsColonyShip() bool {
	return s.Class == ClassColony || s.Class == ClassSpore
}

// FreeColonistSpace returns how many more colonists fit aboard.
func (s *Ship) FreeColonistSpace() int {
	return s.ColonistCapacity - s.Colonists
}

// FreeTroopSpace returns how many more troops fit aboard.
func (s *Ship) FreeTroopSpace() int {
	return s.TroopCapacity - s.Troops
}
