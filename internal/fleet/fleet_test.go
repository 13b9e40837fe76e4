package fleet

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/talgya/realmfleet/internal/galaxy"
)

func TestAggregates(t *testing.T) {
	f := &Fleet{ID: 1, Ships: []*Ship{
		{Class: ClassWarship, Speed: 3, Power: 10, Cloak: 2, Scanner: 2, Bombs: 1, FleetCapacity: 2},
		{Class: ClassSpy, Speed: 2, Power: 1, Cloak: 5, CloakDetection: 3, SpyPower: 4, FleetCapacity: 1},
	}}

	assert.Equal(t, 2, f.Speed())
	assert.Equal(t, 11, f.Power())
	assert.Equal(t, 2, f.Cloak())
	assert.Equal(t, 3, f.CloakDetection())
	assert.Equal(t, 2, f.Scanner())
	assert.Equal(t, 4, f.SpyPower())
	assert.Equal(t, 1, f.Bombs())
	assert.Equal(t, 3, f.Capacity())
	assert.True(t, f.HasClass(ClassSpy))
	assert.False(t, f.HasClass(ClassColony))
}

func TestEmptyFleet(t *testing.T) {
	f := &Fleet{}
	assert.Equal(t, 0, f.Speed())
	assert.Equal(t, 0, f.Cloak())
	assert.Equal(t, 1, f.Scanner())
	assert.False(t, f.IsStarbaseDeployed())
	assert.Nil(t, f.ShipForFalseFlag())
	assert.Nil(t, f.ColonyShip())
}

func TestLoading(t *testing.T) {
	f := &Fleet{Ships: []*Ship{
		{Class: ClassColony, ColonistCapacity: 2},
		{Class: ClassTrooper, TroopCapacity: 1},
	}}
	require.NotNil(t, f.ColonyShip())

	assert.True(t, f.LoadColonist())
	assert.True(t, f.LoadColonist())
	assert.False(t, f.LoadColonist())
	assert.Equal(t, 2, f.Colonists())
	assert.Equal(t, 0, f.FreeColonistSpace())

	assert.Equal(t, 1, f.FreeTroopSpace())
	assert.True(t, f.LoadTroop())
	assert.False(t, f.LoadTroop())
	assert.Equal(t, 1, f.Troops())
}

func TestShipPicks(t *testing.T) {
	base := &Ship{Class: ClassStarbase, Power: 1, Deployed: true}
	weak := &Ship{Class: ClassScout, Power: 2, Obsolete: true, Cost: 30}
	strong := &Ship{Class: ClassWarship, Power: 9, Obsolete: true, Cost: 20}
	f := &Fleet{Ships: []*Ship{base, weak, strong}}

	assert.Same(t, weak, f.ShipForFalseFlag())
	assert.Same(t, strong, f.CheapestObsolete())
	assert.False(t, f.IsStarbaseDeployed())

	require.True(t, f.RemoveShip(weak))
	require.True(t, f.RemoveShip(strong))
	assert.False(t, f.RemoveShip(strong))
	assert.True(t, f.IsStarbaseDeployed())
	assert.Nil(t, f.CheapestObsolete())
}

func TestDefendingRoute(t *testing.T) {
	var none *StandingRoute
	assert.False(t, none.Defending())
	assert.True(t, (&StandingRoute{}).Defending())
	assert.False(t, (&StandingRoute{Speed: 2}).Defending())
}

func TestClassString(t *testing.T) {
	assert.Equal(t, "spore", ClassSpore.String())
	assert.Equal(t, "unknown", Class(200).String())
}

func TestList(t *testing.T) {
	l := NewList()
	here := galaxy.Coord{X: 3, Y: 3}
	l.Add(&Fleet{ID: 1, Name: "Scout", Coord: here})
	l.Add(&Fleet{ID: 2, Name: "Guard", Coord: here})
	l.Add(&Fleet{ID: 3, Name: "Merchant"})
	l.Add(&Fleet{ID: 1, Name: "Duplicate"})

	require.Equal(t, 3, l.Len())
	assert.Nil(t, l.Get(NoFleet))
	assert.Len(t, l.At(here), 2)

	require.True(t, l.Rename(2, "Attacker of Vega II"))
	assert.Equal(t, ID(2), l.ByName("Attacker of Vega II").ID)
	assert.False(t, l.Rename(9, "Ghost"))

	snapshot := l.All()
	for _, f := range snapshot {
		l.Remove(f.ID)
	}
	assert.Equal(t, 0, l.Len())
	assert.Len(t, snapshot, 3)
	l.Remove(1)
}
