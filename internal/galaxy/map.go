package galaxy

import "fmt"

// TileKind describes what occupies a star map cell.
type TileKind uint8

const (
	TileEmpty  TileKind = iota
	TileSun             // Impassable star
	TilePlanet          // Orbit of a planet; fleets may stop here
	TileNebula          // Impassable dust
	TileAnchor          // Deep-space anchor where starbases deploy
)

// Sun is a star system center.
type Sun struct {
	ID    SunID  `json:"id"`
	Name  string `json:"name"`
	Coord Coord  `json:"coord"`
}

// SunID is a stable sun handle.
type SunID uint64

// NoSun marks a mission without a sun.
const NoSun SunID = 0

// Anomaly is a space anomaly a fleet can investigate once.
type Anomaly struct {
	Coord   Coord  `json:"coord"`
	Kind    string `json:"kind"`
	Credits int    `json:"credits"`
}

// Map holds the complete star map state.
type Map struct {
	Width  int `json:"width"`
	Height int `json:"height"`

	tiles   []TileKind
	culture []RealmID

	Suns      []*Sun
	Planets   []*Planet
	Anomalies map[Coord]*Anomaly

	planetIndex map[PlanetID]*Planet
	planetAt    map[Coord]*Planet
	sunIndex    map[SunID]*Sun
}

// NewMap creates an empty map. All culture sectors start unclaimed.
func NewMap(width, height int) *Map {
	m := &Map{
		Width:       width,
		Height:      height,
		tiles:       make([]TileKind, width*height),
		culture:     make([]RealmID, width*height),
		Anomalies:   make(map[Coord]*Anomaly),
		planetIndex: make(map[PlanetID]*Planet),
		planetAt:    make(map[Coord]*Planet),
		sunIndex:    make(map[SunID]*Sun),
	}
	for i := range m.culture {
		m.culture[i] = NoRealm
	}
	return m
}

// InBounds returns true if the coordinate lies on the map.
func (m *Map) InBounds(c Coord) bool {
	return c.X >= 0 && c.Y >= 0 && c.X < m.Width && c.Y < m.Height
}

// Tile returns the tile kind at c. Off-map cells read as nebula.
func (m *Map) Tile(c Coord) TileKind {
	if !m.InBounds(c) {
		return TileNebula
	}
	return m.tiles[c.Y*m.Width+c.X]
}

// SetTile overwrites the tile kind at c.
func (m *Map) SetTile(c Coord, k TileKind) {
	if m.InBounds(c) {
		m.tiles[c.Y*m.Width+c.X] = k
	}
}

// Blocked reports whether no fleet can ever enter c.
func (m *Map) Blocked(c Coord) bool {
	k := m.Tile(c)
	return k == TileSun || k == TileNebula
}

// Culture returns the realm culturally dominating the sector at c.
func (m *Map) Culture(c Coord) RealmID {
	if !m.InBounds(c) {
		return NoRealm
	}
	return m.culture[c.Y*m.Width+c.X]
}

// SetCulture sets the dominant realm of a single sector.
func (m *Map) SetCulture(c Coord, r RealmID) {
	if m.InBounds(c) {
		m.culture[c.Y*m.Width+c.X] = r
	}
}

// Size returns the larger map dimension.
func (m *Map) Size() int {
	if m.Width > m.Height {
		return m.Width
	}
	return m.Height
}

// Center returns the galactic center cell.
func (m *Map) Center() Coord {
	return Coord{X: m.Width / 2, Y: m.Height / 2}
}

// AddSun registers a sun and marks its tile.
func (m *Map) AddSun(s *Sun) {
	m.Suns = append(m.Suns, s)
	m.sunIndex[s.ID] = s
	m.SetTile(s.Coord, TileSun)
}

// Sun returns the sun with the given ID, or nil.
func (m *Map) Sun(id SunID) *Sun {
	return m.sunIndex[id]
}

// NearestSun returns the sun closest to c, or nil on an empty map.
func (m *Map) NearestSun(c Coord) *Sun {
	var best *Sun
	bestDist := 0.0
	for _, s := range m.Suns {
		d := s.Coord.Distance(c)
		if best == nil || d < bestDist {
			best = s
			bestDist = d
		}
	}
	return best
}

// AddPlanet registers a planet and marks its tile.
func (m *Map) AddPlanet(p *Planet) {
	m.Planets = append(m.Planets, p)
	m.planetIndex[p.ID] = p
	m.planetAt[p.Coord] = p
	m.SetTile(p.Coord, TilePlanet)
}

// Planet returns the planet with the given ID, or nil.
func (m *Map) Planet(id PlanetID) *Planet {
	return m.planetIndex[id]
}

// PlanetAt returns the planet orbiting cell c, or nil.
func (m *Map) PlanetAt(c Coord) *Planet {
	return m.planetAt[c]
}

// PlanetsOf returns all planets owned by realm r in map order.
func (m *Map) PlanetsOf(r RealmID) []*Planet {
	var result []*Planet
	for _, p := range m.Planets {
		if p.Owner == r {
			result = append(result, p)
		}
	}
	return result
}

// NextPlanetID returns an unused planet ID.
func (m *Map) NextPlanetID() PlanetID {
	var maxID PlanetID
	for id := range m.planetIndex {
		if id > maxID {
			maxID = id
		}
	}
	return maxID + 1
}

// AnomalyAt returns the anomaly at c, or nil.
func (m *Map) AnomalyAt(c Coord) *Anomaly {
	return m.Anomalies[c]
}

// RemoveAnomaly deletes the anomaly at c once it has been investigated.
func (m *Map) RemoveAnomaly(c Coord) {
	delete(m.Anomalies, c)
}

// RecalculateCulture assigns every sector within radius of an owned planet
// to the owner of the nearest such planet. Ties go to the planet registered first.
func (m *Map) RecalculateCulture(radius int) {
	for i := range m.culture {
		m.culture[i] = NoRealm
	}
	best := make([]float64, len(m.culture))
	for _, p := range m.Planets {
		if p.Owner == NoRealm {
			continue
		}
		for y := p.Coord.Y - radius; y <= p.Coord.Y+radius; y++ {
			for x := p.Coord.X - radius; x <= p.Coord.X+radius; x++ {
				c := Coord{X: x, Y: y}
				if !m.InBounds(c) {
					continue
				}
				d := c.Distance(p.Coord)
				if d > float64(radius) {
					continue
				}
				idx := y*m.Width + x
				if m.culture[idx] == NoRealm || d < best[idx] {
					m.culture[idx] = p.Owner
					best[idx] = d
				}
			}
		}
	}
}

// String returns a summary of the map.
func (m *Map) String() string {
	return fmt.Sprintf("Map(%dx%d, suns=%d, planets=%d)", m.Width, m.Height, len(m.Suns), len(m.Planets))
}
