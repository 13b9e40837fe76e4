package mission

import (
	"github.com/talgya/realmfleet/internal/fleet"
	"github.com/talgya/realmfleet/internal/galaxy"
)

// Registry is the ordered list of in-flight missions of one realm.
// Order is priority: missions earlier in the list are ticked first.
type Registry struct {
	missions []*Mission
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// Ownership answers the world-state questions RemoveAttackAgainst needs.
type Ownership interface {
	PlanetOwner(id galaxy.PlanetID) galaxy.RealmID
	// DeployedStarbase returns the owner of fleet id and whether it is an
	// anchored starbase.
	DeployedStarbase(id fleet.ID) (galaxy.RealmID, bool)
}

// Len returns the number of missions.
func (r *Registry) Len() int {
	return len(r.missions)
}

// All returns a snapshot of the missions in priority order.
func (r *Registry) All() []*Mission {
	out := make([]*Mission, len(r.missions))
	copy(out, r.missions)
	return out
}

// Add appends a mission with the lowest priority.
func (r *Registry) Add(m *Mission) {
	if m == nil || r.Contains(m) {
		return
	}
	r.missions = append(r.missions, m)
}

// AddFirst inserts a mission with the highest priority.
func (r *Registry) AddFirst(m *Mission) {
	if m == nil || r.Contains(m) {
		return
	}
	r.missions = append([]*Mission{m}, r.missions...)
}

// AddAfter inserts m immediately after anchor. If anchor is not registered
// the mission is appended.
func (r *Registry) AddAfter(anchor, m *Mission) {
	if m == nil || r.Contains(m) {
		return
	}
	idx := r.indexOf(anchor)
	if idx < 0 {
		r.missions = append(r.missions, m)
		return
	}
	r.missions = append(r.missions, nil)
	copy(r.missions[idx+2:], r.missions[idx+1:])
	r.missions[idx+1] = m
}

// Remove deletes m. Removing a mission that is not present is a no-op.
func (r *Registry) Remove(m *Mission) bool {
	idx := r.indexOf(m)
	if idx < 0 {
		return false
	}
	r.missions = append(r.missions[:idx], r.missions[idx+1:]...)
	return true
}

// Replace closes old and opens next in the same priority slot.
func (r *Registry) Replace(old, next *Mission) {
	if next == nil {
		r.Remove(old)
		return
	}
	idx := r.indexOf(old)
	if idx < 0 {
		r.Add(next)
		return
	}
	r.missions[idx] = next
}

// Contains reports whether m is registered.
func (r *Registry) Contains(m *Mission) bool {
	return r.indexOf(m) >= 0
}

func (r *Registry) indexOf(m *Mission) int {
	if m == nil {
		return -1
	}
	for i, candidate := range r.missions {
		if candidate == m {
			return i
		}
	}
	return -1
}

// RemoveByFleet deletes every mission assigned to fleet id and returns how many went.
func (r *Registry) RemoveByFleet(id fleet.ID) int {
	if id == fleet.NoFleet {
		return 0
	}
	return r.removeWhere(func(m *Mission) bool { return m.FleetID == id })
}

// removeWhere collects matching missions first, then deletes them.
func (r *Registry) removeWhere(match func(*Mission) bool) int {
	var doomed []*Mission
	for _, m := range r.missions {
		if match(m) {
			doomed = append(doomed, m)
		}
	}
	for _, m := range doomed {
		r.Remove(m)
	}
	return len(doomed)
}

func typeMatches(m *Mission, types []Type) bool {
	if len(types) == 0 {
		return true
	}
	for _, t := range types {
		if m.Type == t {
			return true
		}
	}
	return false
}

// ByFleet returns the first mission for fleet id, optionally restricted to types.
// The first match with no type filter is the fleet's primary mission.
func (r *Registry) ByFleet(id fleet.ID, types ...Type) *Mission {
	if id == fleet.NoFleet {
		return nil
	}
	for _, m := range r.missions {
		if m.FleetID == id && typeMatches(m, types) {
			return m
		}
	}
	return nil
}

// AllByFleet returns every mission for fleet id in priority order.
func (r *Registry) AllByFleet(id fleet.ID) []*Mission {
	var result []*Mission
	if id == fleet.NoFleet {
		return result
	}
	for _, m := range r.missions {
		if m.FleetID == id {
			result = append(result, m)
		}
	}
	return result
}

// ByTarget returns the first mission of type t aimed at coordinate c.
func (r *Registry) ByTarget(c galaxy.Coord, t Type) *Mission {
	for _, m := range r.missions {
		if m.Type == t && m.Target == c {
			return m
		}
	}
	return nil
}

// ByPlanet returns the first mission of type t aimed at planet p.
func (r *Registry) ByPlanet(p galaxy.PlanetID, t Type) *Mission {
	if p == galaxy.NoPlanet {
		return nil
	}
	for _, m := range r.missions {
		if m.Type == t && m.TargetPlanet == p {
			return m
		}
	}
	return nil
}

// ByPhase returns the first mission in phase ph, optionally restricted to types.
func (r *Registry) ByPhase(ph Phase, types ...Type) *Mission {
	for _, m := range r.missions {
		if m.Phase == ph && typeMatches(m, types) {
			return m
		}
	}
	return nil
}

// ByType returns every mission of type t in priority order.
func (r *Registry) ByType(t Type) []*Mission {
	var result []*Mission
	for _, m := range r.missions {
		if m.Type == t {
			result = append(result, m)
		}
	}
	return result
}

// Count returns the number of missions of type t.
func (r *Registry) Count(t Type) int {
	n := 0
	for _, m := range r.missions {
		if m.Type == t {
			n++
		}
	}
	return n
}

// CountPhase returns the number of missions of type t in phase ph.
func (r *Registry) CountPhase(t Type, ph Phase) int {
	n := 0
	for _, m := range r.missions {
		if m.Type == t && m.Phase == ph {
			n++
		}
	}
	return n
}

// GathersFor returns the GATHER missions feeding an ATTACK (same target planet)
// or a DESTROY_STARBASE (same target fleet).
func (r *Registry) GathersFor(m *Mission) []*Mission {
	var result []*Mission
	if m == nil {
		return result
	}
	for _, g := range r.missions {
		if g.Type != Gather {
			continue
		}
		switch m.Type {
		case Attack:
			if m.TargetPlanet != galaxy.NoPlanet && g.TargetPlanet == m.TargetPlanet {
				result = append(result, g)
			}
		case DestroyStarbase:
			if m.TargetFleet != fleet.NoFleet && g.TargetFleet == m.TargetFleet {
				result = append(result, g)
			}
		}
	}
	return result
}

// distanceDivisor softens the distance penalty on bigger maps.
func distanceDivisor(mapSize int) float64 {
	switch {
	case mapSize <= 50:
		return 1
	case mapSize <= 100:
		return 2
	case mapSize <= 150:
		return 3
	default:
		return 4
	}
}

// BestColonize returns the highest-scoring COLONIZE or SPORE_COLONY mission
// still in PLANNING. Score is value(m) minus the distance from `from` divided
// by a map-size dependent divisor. Missions valued at zero or less are skipped.
func (r *Registry) BestColonize(from galaxy.Coord, mapSize int, value func(*Mission) int) *Mission {
	divisor := distanceDivisor(mapSize)
	var best *Mission
	bestScore := 0.0
	for _, m := range r.missions {
		if (m.Type != Colonize && m.Type != SporeColony) || m.Phase != Planning {
			continue
		}
		v := value(m)
		if v <= 0 {
			continue
		}
		score := float64(v) - from.Distance(m.Target)/divisor
		if best == nil || score > bestScore {
			best = m
			bestScore = score
		}
	}
	return best
}

// RemoveAttackAgainst deletes ATTACK and GATHER missions whose target planet
// now belongs to realm, plus GATHER missions feeding a DESTROY_STARBASE whose
// target is a deployed starbase of realm. Returns how many were removed.
func (r *Registry) RemoveAttackAgainst(realm galaxy.RealmID, world Ownership) int {
	friendlyStarbases := make(map[fleet.ID]bool)
	for _, m := range r.missions {
		if m.Type != DestroyStarbase || m.TargetFleet == fleet.NoFleet {
			continue
		}
		owner, deployed := world.DeployedStarbase(m.TargetFleet)
		if deployed && owner == realm {
			friendlyStarbases[m.TargetFleet] = true
		}
	}
	return r.removeWhere(func(m *Mission) bool {
		if m.Type != Attack && m.Type != Gather {
			return false
		}
		if m.TargetPlanet != galaxy.NoPlanet && world.PlanetOwner(m.TargetPlanet) == realm {
			return true
		}
		return m.Type == Gather && friendlyStarbases[m.TargetFleet]
	})
}

// Clean sweeps missions whose fleet no longer exists. PLANNING and BUILDING
// missions are legitimately fleet-less and are kept.
func (r *Registry) Clean(exists func(fleet.ID) bool) int {
	return r.removeWhere(func(m *Mission) bool {
		if m.Phase == Planning || m.Phase == Building {
			return false
		}
		return !exists(m.FleetID)
	})
}
