package mission

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/talgya/realmfleet/internal/fleet"
	"github.com/talgya/realmfleet/internal/galaxy"
)

type fakeWorld struct {
	planets   map[galaxy.PlanetID]galaxy.RealmID
	starbases map[fleet.ID]galaxy.RealmID
}

func (w fakeWorld) PlanetOwner(id galaxy.PlanetID) galaxy.RealmID {
	if owner, ok := w.planets[id]; ok {
		return owner
	}
	return galaxy.NoRealm
}

func (w fakeWorld) DeployedStarbase(id fleet.ID) (galaxy.RealmID, bool) {
	owner, ok := w.starbases[id]
	return owner, ok
}

func newMission(t Type, fleetID fleet.ID) *Mission {
	m := New(t, galaxy.Coord{X: int(fleetID), Y: 1})
	m.FleetID = fleetID
	return m
}

func TestNewStartsInTypeInitialPhase(t *testing.T) {
	assert.Equal(t, Planning, New(Attack, galaxy.Coord{}).Phase)
	assert.Equal(t, Loading, New(Explore, galaxy.Coord{}).Phase)
	assert.Equal(t, Trekking, New(Roam, galaxy.Coord{}).Phase)
	assert.Equal(t, Trekking, New(Defend, galaxy.Coord{}).Phase)
	assert.Equal(t, galaxy.NoRealm, New(Move, galaxy.Coord{}).TargetRealm)
}

func TestAddPriorityInsertion(t *testing.T) {
	reg := NewRegistry()
	a := newMission(Explore, 1)
	b := newMission(Move, 2)
	c := newMission(Defend, 3)
	d := newMission(Attack, 4)

	reg.Add(a)
	reg.Add(b)
	reg.AddFirst(c)
	reg.AddAfter(c, d)
	reg.Add(a) // duplicate ignored

	assert.Equal(t, []*Mission{c, d, a, b}, reg.All())
}

func TestAddAfterUnknownAnchorAppends(t *testing.T) {
	reg := NewRegistry()
	a := newMission(Explore, 1)
	b := newMission(Move, 2)
	reg.Add(a)
	reg.AddAfter(newMission(Defend, 9), b)
	assert.Equal(t, []*Mission{a, b}, reg.All())
}

func TestRemoveIsIdempotent(t *testing.T) {
	reg := NewRegistry()
	a := newMission(Explore, 1)
	b := newMission(Move, 2)
	reg.Add(a)
	reg.Add(b)

	assert.True(t, reg.Remove(a))
	assert.False(t, reg.Remove(a))
	assert.False(t, reg.Remove(newMission(Roam, 7)))
	assert.False(t, reg.Remove(nil))
	assert.Equal(t, []*Mission{b}, reg.All())
}

func TestReplaceKeepsPrioritySlot(t *testing.T) {
	reg := NewRegistry()
	a := newMission(SpyMission, 1)
	b := newMission(Move, 2)
	reg.Add(a)
	reg.Add(b)

	next := a.Handoff(EspionageMission, Loading)
	reg.Replace(a, next)

	require.Equal(t, 2, reg.Len())
	assert.Same(t, next, reg.All()[0])
	assert.Equal(t, EspionageMission, next.Type)
	assert.Equal(t, fleet.ID(1), next.FleetID)
	assert.False(t, reg.Contains(a))
}

func TestRemoveByFleet(t *testing.T) {
	reg := NewRegistry()
	reg.Add(newMission(SpyMission, 1))
	reg.Add(newMission(EspionageMission, 1))
	keep := newMission(Move, 2)
	reg.Add(keep)

	assert.Equal(t, 2, reg.RemoveByFleet(1))
	assert.Equal(t, []*Mission{keep}, reg.All())
	assert.Equal(t, 0, reg.RemoveByFleet(fleet.NoFleet))
}

func TestLookups(t *testing.T) {
	reg := NewRegistry()
	spy := newMission(SpyMission, 1)
	esp := newMission(EspionageMission, 1)
	atk := newMission(Attack, 2)
	atk.TargetPlanet = 5
	atk.Phase = Trekking
	reg.Add(spy)
	reg.Add(esp)
	reg.Add(atk)

	assert.Same(t, spy, reg.ByFleet(1))
	assert.Same(t, esp, reg.ByFleet(1, EspionageMission))
	assert.Nil(t, reg.ByFleet(1, Attack))
	assert.Nil(t, reg.ByFleet(fleet.NoFleet))
	assert.Same(t, atk, reg.ByPlanet(5, Attack))
	assert.Nil(t, reg.ByPlanet(5, Gather))
	assert.Same(t, atk, reg.ByTarget(atk.Target, Attack))
	assert.Same(t, atk, reg.ByPhase(Trekking))
	assert.Nil(t, reg.ByPhase(Trekking, Defend))
	assert.Len(t, reg.AllByFleet(1), 2)
	assert.Equal(t, 1, reg.Count(Attack))
	assert.Equal(t, 1, reg.CountPhase(Attack, Trekking))
	assert.Equal(t, 0, reg.CountPhase(Attack, Planning))
}

func TestGathersFor(t *testing.T) {
	reg := NewRegistry()
	atk := New(Attack, galaxy.Coord{X: 3, Y: 3})
	atk.TargetPlanet = 7
	sb := New(DestroyStarbase, galaxy.Coord{X: 9, Y: 9})
	sb.TargetFleet = 40
	g1 := New(Gather, galaxy.Coord{X: 1, Y: 1})
	g1.TargetPlanet = 7
	g2 := New(Gather, galaxy.Coord{X: 2, Y: 2})
	g2.TargetFleet = 40
	for _, m := range []*Mission{atk, sb, g1, g2} {
		reg.Add(m)
	}

	assert.Equal(t, []*Mission{g1}, reg.GathersFor(atk))
	assert.Equal(t, []*Mission{g2}, reg.GathersFor(sb))
}

func TestRemoveAttackAgainst(t *testing.T) {
	const peaceful galaxy.RealmID = 2
	world := fakeWorld{
		planets:   map[galaxy.PlanetID]galaxy.RealmID{10: peaceful, 11: 3},
		starbases: map[fleet.ID]galaxy.RealmID{50: peaceful},
	}
	reg := NewRegistry()

	atkGone := New(Attack, galaxy.Coord{})
	atkGone.TargetPlanet = 10
	gatherGone := New(Gather, galaxy.Coord{})
	gatherGone.TargetPlanet = 10
	atkKeep := New(Attack, galaxy.Coord{})
	atkKeep.TargetPlanet = 11
	explore := New(Explore, galaxy.Coord{})
	explore.TargetPlanet = 10
	sb := New(DestroyStarbase, galaxy.Coord{})
	sb.TargetFleet = 50
	sbGather := New(Gather, galaxy.Coord{})
	sbGather.TargetFleet = 50
	for _, m := range []*Mission{atkGone, gatherGone, atkKeep, explore, sb, sbGather} {
		reg.Add(m)
	}

	removed := reg.RemoveAttackAgainst(peaceful, world)

	assert.Equal(t, 3, removed)
	assert.Equal(t, []*Mission{atkKeep, explore, sb}, reg.All())
}

func TestCleanKeepsFleetlessPlanning(t *testing.T) {
	reg := NewRegistry()
	planning := New(Attack, galaxy.Coord{})
	building := New(DeployStarbase, galaxy.Coord{})
	building.Phase = Building
	stale := newMission(Explore, 9)
	alive := newMission(Move, 1)
	for _, m := range []*Mission{planning, building, stale, alive} {
		reg.Add(m)
	}

	removed := reg.Clean(func(id fleet.ID) bool { return id == 1 })

	assert.Equal(t, 1, removed)
	assert.Equal(t, []*Mission{planning, building, alive}, reg.All())
}

func TestBestColonizePrefersValueOverDistance(t *testing.T) {
	reg := NewRegistry()
	near := New(Colonize, galaxy.Coord{X: 2, Y: 0})
	near.Phase = Planning
	near.TargetPlanet = 1
	far := New(Colonize, galaxy.Coord{X: 40, Y: 0})
	far.Phase = Planning
	far.TargetPlanet = 2
	busy := New(Colonize, galaxy.Coord{X: 1, Y: 0})
	busy.TargetPlanet = 3 // LOADING, not eligible
	for _, m := range []*Mission{near, far, busy} {
		reg.Add(m)
	}
	values := map[galaxy.PlanetID]int{1: 30, 2: 80, 3: 500}
	value := func(m *Mission) int { return values[m.TargetPlanet] }

	// Small map: 80-40 = 40 beats 30-2 = 28.
	assert.Same(t, far, reg.BestColonize(galaxy.Coord{}, 40, value))

	values[2] = 40
	// 40-40 = 0 loses to 28 on a small map, wins 40-10 = 30 on a huge one.
	assert.Same(t, near, reg.BestColonize(galaxy.Coord{}, 40, value))
	assert.Same(t, far, reg.BestColonize(galaxy.Coord{}, 200, value))
}
