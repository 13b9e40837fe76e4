package ai

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/talgya/realmfleet/internal/config"
	"github.com/talgya/realmfleet/internal/diplomacy"
	"github.com/talgya/realmfleet/internal/entropy"
	"github.com/talgya/realmfleet/internal/fleet"
	"github.com/talgya/realmfleet/internal/galaxy"
	"github.com/talgya/realmfleet/internal/mission"
	"github.com/talgya/realmfleet/internal/news"
	"github.com/talgya/realmfleet/internal/realm"
)

type testWorld struct {
	eng    *Engine
	home   *realm.Realm
	enemy  *realm.Realm
	ledger *diplomacy.Ledger
	log    *news.Log
	m      *galaxy.Map

	homePlanet, enemyPlanet, freePlanet *galaxy.Planet
}

// newTestWorld builds a 20x20 map with two realms: Vorn at (2,2) and Auri at
// (15,15), plus an unowned planet at (6,2).
func newTestWorld(t *testing.T, draws ...int) *testWorld {
	t.Helper()
	m := galaxy.NewMap(20, 20)
	w := &testWorld{
		m:           m,
		home:        realm.New(1, "Vorn", realm.Aggressive),
		enemy:       realm.New(2, "Auri", realm.Peaceful),
		homePlanet:  &galaxy.Planet{ID: 1, Name: "Vorn Prime", Coord: galaxy.Coord{X: 2, Y: 2}, Owner: 1, Size: 5, Population: 10, Workers: 10},
		enemyPlanet: &galaxy.Planet{ID: 2, Name: "Auri Prime", Coord: galaxy.Coord{X: 15, Y: 15}, Owner: 2, Size: 5, Population: 8, Workers: 8},
		freePlanet:  &galaxy.Planet{ID: 3, Name: "Cinder", Coord: galaxy.Coord{X: 6, Y: 2}, Owner: galaxy.NoRealm, Size: 4},
	}
	m.AddPlanet(w.homePlanet)
	m.AddPlanet(w.enemyPlanet)
	m.AddPlanet(w.freePlanet)
	m.RecalculateCulture(cultureRadius)

	w.log = news.NewLog()
	realms := []*realm.Realm{w.home, w.enemy}
	g := &Game{
		Map:    m,
		Realms: realms,
		News:   w.log,
		Rand:   &entropy.Scripted{Draws: draws},
		Config: config.Default(),
	}
	w.ledger = diplomacy.NewLedger([]galaxy.RealmID{1, 2}, g.MilitaryPower, w.log)
	g.Diplomacy = w.ledger

	eng, err := NewEngine(g)
	require.NoError(t, err)
	w.eng = eng
	return w
}

func (w *testWorld) addFleet(r *realm.Realm, id fleet.ID, at galaxy.Coord, ships ...*fleet.Ship) *fleet.Fleet {
	f := &fleet.Fleet{ID: id, Name: "Fleet", Owner: r.ID, Coord: at, Ships: ships}
	f.MovesLeft = f.Speed()
	r.Fleets.Add(f)
	return f
}

func warship() *fleet.Ship {
	return &fleet.Ship{Name: "Lance", Class: fleet.ClassWarship, Speed: 2, Power: 10, Bombs: 2}
}

func TestAttackWaitsForGathers(t *testing.T) {
	w := newTestWorld(t)
	w.ledger.DeclareWar(1, 2)
	f := w.addFleet(w.home, 1, galaxy.Coord{X: 10, Y: 10}, warship())

	attack := mission.New(mission.Attack, w.enemyPlanet.Coord)
	attack.TargetPlanet = w.enemyPlanet.ID
	attack.FleetID = f.ID
	gather := mission.New(mission.Gather, galaxy.Coord{X: 10, Y: 10})
	gather.TargetPlanet = w.enemyPlanet.ID
	gather.Phase = mission.Planning
	w.home.Missions.Add(attack)
	w.home.Missions.Add(gather)

	out := w.eng.Handle(w.home, attack)
	assert.Equal(t, Continue, out.Kind)
	assert.Equal(t, mission.Planning, attack.Phase)
	assert.Nil(t, f.Path)

	w.home.Missions.Remove(gather)
	out = w.eng.Handle(w.home, attack)
	assert.Equal(t, Continue, out.Kind)
	assert.Equal(t, mission.Trekking, attack.Phase)
	require.NotNil(t, f.Path)
	assert.Equal(t, galaxy.Coord{X: 10, Y: 10}, f.Coord, "no move on the planning tick")
}

func TestAttackAbortsWhenTargetNoLongerEnemy(t *testing.T) {
	w := newTestWorld(t)
	f := w.addFleet(w.home, 1, galaxy.Coord{X: 10, Y: 10}, warship())
	attack := mission.New(mission.Attack, w.enemyPlanet.Coord)
	attack.TargetPlanet = w.enemyPlanet.ID
	attack.FleetID = f.ID
	w.home.Missions.Add(attack)

	w.eng.PlayRealm(w.home)

	all := w.home.Missions.All()
	require.Len(t, all, 1)
	assert.Equal(t, mission.Move, all[0].Type)
	assert.Equal(t, w.homePlanet.Coord, all[0].Target)
}

func TestAttackBombsOnArrival(t *testing.T) {
	w := newTestWorld(t)
	w.ledger.DeclareWar(1, 2)
	f := w.addFleet(w.home, 1, galaxy.Coord{X: 14, Y: 15}, warship())
	attack := mission.New(mission.Attack, w.enemyPlanet.Coord)
	attack.TargetPlanet = w.enemyPlanet.ID
	attack.FleetID = f.ID
	attack.Phase = mission.Executing
	w.home.Missions.Add(attack)

	w.eng.PlayRealm(w.home)

	assert.Equal(t, 6, w.enemyPlanet.Population)
	assert.Equal(t, 0, w.home.Missions.Len())
	assert.Less(t, w.ledger.Liking(2, 1), diplomacy.Indifferent)
}

func TestColonizeTransfersOwnership(t *testing.T) {
	w := newTestWorld(t)
	colony := &fleet.Ship{Name: "Ark", Class: fleet.ClassColony, Speed: 1, Colonists: 2, ColonistCapacity: 2}
	scout := &fleet.Ship{Name: "Eye", Class: fleet.ClassScout, Speed: 3}
	f := w.addFleet(w.home, 1, w.freePlanet.Coord, colony, scout)

	m := mission.New(mission.Colonize, w.freePlanet.Coord)
	m.TargetPlanet = w.freePlanet.ID
	m.FleetID = f.ID
	m.Phase = mission.Executing
	w.home.Missions.Add(m)

	w.eng.PlayRealm(w.home)

	assert.Equal(t, w.home.ID, w.freePlanet.Owner)
	assert.Equal(t, 2, w.freePlanet.Population)
	assert.Nil(t, f.ColonyShip())
	assert.Len(t, f.Ships, 1)
	assert.False(t, w.home.Missions.Contains(m))
	assert.Equal(t, 1, w.home.Stats[realm.StatPlanetsColonized])
	assert.Equal(t, w.home.ID, w.m.Culture(galaxy.Coord{X: 7, Y: 2}))
}

func TestColonizeTreksThenSettles(t *testing.T) {
	w := newTestWorld(t)
	colony := &fleet.Ship{Name: "Ark", Class: fleet.ClassColony, Speed: 2, Colonists: 1, ColonistCapacity: 1}
	f := w.addFleet(w.home, 1, galaxy.Coord{X: 4, Y: 2}, colony)

	m := mission.New(mission.Colonize, w.freePlanet.Coord)
	m.TargetPlanet = w.freePlanet.ID
	m.FleetID = f.ID
	m.Phase = mission.Trekking
	w.home.Missions.Add(m)

	w.eng.PlayRealm(w.home)
	assert.Equal(t, w.freePlanet.Coord, f.Coord)
	assert.Equal(t, mission.Executing, m.Phase)

	w.eng.PlayRealm(w.home)
	assert.Equal(t, w.home.ID, w.freePlanet.Owner)
	assert.Nil(t, w.home.Fleets.Get(f.ID), "a fleet left without ships is disbanded")
	assert.Equal(t, 0, w.home.Missions.Len())
}

func TestDefendRotatesAfterUpdateTurn(t *testing.T) {
	w := newTestWorld(t)
	f := w.addFleet(w.home, 1, w.homePlanet.Coord, warship())
	m := mission.New(mission.Defend, w.homePlanet.Coord)
	m.TargetPlanet = w.homePlanet.ID
	m.FleetID = f.ID
	w.home.Missions.Add(m)

	w.eng.Handle(w.home, m)
	require.Equal(t, mission.Executing, m.Phase)
	assert.True(t, f.Route.Defending())

	for i := 1; i < w.eng.Config.DefenseUpdateTurn; i++ {
		w.eng.Handle(w.home, m)
		require.Equal(t, mission.Executing, m.Phase)
		require.Equal(t, i, m.Time)
	}
	w.eng.Handle(w.home, m)
	assert.Equal(t, mission.Planning, m.Phase)
	assert.Equal(t, 0, m.Time)
}

func TestMoveClosesOnArrival(t *testing.T) {
	w := newTestWorld(t)
	f := w.addFleet(w.home, 1, galaxy.Coord{X: 2, Y: 5}, &fleet.Ship{Name: "Eye", Class: fleet.ClassScout, Speed: 3})
	m := mission.New(mission.Move, w.homePlanet.Coord)
	m.FleetID = f.ID
	w.home.Missions.Add(m)

	w.eng.PlayRealm(w.home)

	assert.Equal(t, w.homePlanet.Coord, f.Coord)
	assert.Equal(t, 0, w.home.Missions.Len())
	assert.True(t, w.home.IsCharted(galaxy.Coord{X: 2, Y: 3}))
}

func TestMoveStopsAtForeignFleetAndMeets(t *testing.T) {
	w := newTestWorld(t)
	f := w.addFleet(w.home, 1, galaxy.Coord{X: 2, Y: 8}, &fleet.Ship{Name: "Eye", Class: fleet.ClassScout, Speed: 4})
	w.addFleet(w.enemy, 2, galaxy.Coord{X: 2, Y: 6}, warship())
	m := mission.New(mission.Move, galaxy.Coord{X: 2, Y: 4})
	m.FleetID = f.ID
	w.home.Missions.Add(m)

	w.eng.PlayRealm(w.home)

	assert.Equal(t, galaxy.Coord{X: 2, Y: 7}, f.Coord)
	assert.True(t, w.ledger.HasMet(1, 2))
	assert.True(t, w.home.Missions.Contains(m))
}

func TestDestroyFleetHandsOffToDefend(t *testing.T) {
	w := newTestWorld(t)
	f := w.addFleet(w.home, 1, galaxy.Coord{X: 5, Y: 5}, warship())
	m := mission.New(mission.DestroyFleet, galaxy.Coord{X: 5, Y: 6})
	m.TargetFleet = 77
	m.FleetID = f.ID
	m.Phase = mission.Executing
	w.home.Missions.Add(m)

	w.eng.PlayRealm(w.home)

	all := w.home.Missions.All()
	require.Len(t, all, 1)
	assert.Equal(t, mission.Defend, all[0].Type)
	assert.Equal(t, mission.Trekking, all[0].Phase)
	assert.Equal(t, w.homePlanet.ID, all[0].TargetPlanet)
	assert.Equal(t, f.ID, all[0].FleetID)
}

func TestStaleMissionsAreSwept(t *testing.T) {
	w := newTestWorld(t)
	stale := mission.New(mission.Move, w.homePlanet.Coord)
	stale.FleetID = 99
	planned := mission.New(mission.Colonize, w.freePlanet.Coord)
	planned.Phase = mission.Planning
	w.home.Missions.Add(stale)
	w.home.Missions.Add(planned)

	w.eng.PlayRealm(w.home)

	assert.False(t, w.home.Missions.Contains(stale))
	assert.True(t, w.home.Missions.Contains(planned))
}

func TestOneStepPerFleetPerTurn(t *testing.T) {
	w := newTestWorld(t)
	f := w.addFleet(w.home, 1, galaxy.Coord{X: 2, Y: 10}, &fleet.Ship{Name: "Eye", Class: fleet.ClassScout, Speed: 1})
	first := mission.New(mission.Move, galaxy.Coord{X: 2, Y: 5})
	first.FleetID = f.ID
	second := mission.New(mission.Move, galaxy.Coord{X: 8, Y: 10})
	second.FleetID = f.ID
	w.home.Missions.Add(first)
	w.home.Missions.Add(second)

	w.eng.PlayRealm(w.home)

	assert.Equal(t, galaxy.Coord{X: 2, Y: 9}, f.Coord)
	assert.Equal(t, 2, w.home.Missions.Len())
}

func TestScrapTooManyShips(t *testing.T) {
	w := newTestWorld(t)
	old := &fleet.Ship{Name: "Relic", Class: fleet.ClassWarship, Speed: 1, Cost: 5, FleetCapacity: 2, Obsolete: true}
	pricey := &fleet.Ship{Name: "Hulk", Class: fleet.ClassWarship, Speed: 1, Cost: 50, FleetCapacity: 2, Obsolete: true}
	f := w.addFleet(w.home, 1, w.homePlanet.Coord, old, pricey)
	w.home.FleetAllowance = 1

	w.home.Credits = 100
	assert.Nil(t, w.eng.scrapTooManyShips(w.home, f), "credits cover the overage")

	w.home.Credits = 0
	scrapped := w.eng.scrapTooManyShips(w.home, f)
	assert.Same(t, old, scrapped)
	assert.Len(t, f.Ships, 1)
	assert.Equal(t, 1, w.home.Stats[realm.StatShipsScrapped])
}

func TestSpyConvertsToEspionage(t *testing.T) {
	w := newTestWorld(t, 0)
	w.ledger.Meet(1, 2)
	spyShip := &fleet.Ship{Name: "Whisper", Class: fleet.ClassSpy, Speed: 1, SpyPower: 2}
	f := w.addFleet(w.home, 1, galaxy.Coord{X: 13, Y: 15}, spyShip)
	m := mission.New(mission.SpyMission, w.enemyPlanet.Coord)
	m.TargetPlanet = w.enemyPlanet.ID
	m.TargetRealm = w.enemy.ID
	m.FleetID = f.ID
	m.Phase = mission.Executing
	w.home.Missions.Add(m)

	w.eng.PlayRealm(w.home)

	all := w.home.Missions.All()
	require.Len(t, all, 1)
	assert.Equal(t, mission.EspionageMission, all[0].Type)
	assert.Equal(t, mission.Loading, all[0].Phase)
	assert.Equal(t, w.enemyPlanet.ID, all[0].TargetPlanet)
	assert.Equal(t, w.enemy.ID, w.m.Culture(f.Coord), "lurking stays inside the target's culture")
}

func TestSpyTreksUntilInsideCulture(t *testing.T) {
	w := newTestWorld(t)
	w.ledger.Meet(1, 2)
	f := w.addFleet(w.home, 1, galaxy.Coord{X: 8, Y: 15}, &fleet.Ship{Name: "Whisper", Class: fleet.ClassSpy, Speed: 1})
	m := mission.New(mission.SpyMission, galaxy.Coord{})
	m.FleetID = f.ID
	w.home.Missions.Add(m)

	w.eng.PlayRealm(w.home)
	assert.Equal(t, mission.Trekking, m.Phase)
	assert.Equal(t, w.enemyPlanet.ID, m.TargetPlanet)
	assert.Equal(t, galaxy.Coord{X: 9, Y: 15}, f.Coord)
}

func espionageFixture(t *testing.T) (*testWorld, *fleet.Fleet, *mission.Mission) {
	// 99 fails every percent roll: nothing succeeds, nothing is detected.
	w := newTestWorld(t, 99)
	w.ledger.Meet(1, 2)
	w.home.AddLeader(&realm.Leader{ID: 5, Name: "Sable", Job: realm.JobCommander})
	f := w.addFleet(w.home, 1, galaxy.Coord{X: 14, Y: 15}, &fleet.Ship{Name: "Whisper", Class: fleet.ClassSpy, Speed: 1, SpyPower: 1})
	f.Commander = 5
	m := mission.New(mission.EspionageMission, w.enemyPlanet.Coord)
	m.TargetPlanet = w.enemyPlanet.ID
	m.TargetRealm = w.enemy.ID
	m.FleetID = f.ID
	m.Phase = mission.Executing
	w.home.Missions.Add(m)
	return w, f, m
}

func TestEspionageActsThenSpiesAgain(t *testing.T) {
	w, f, m := espionageFixture(t)

	w.eng.PlayRealm(w.home)

	assert.NotEqual(t, mission.EspionageNone, m.Espionage)
	assert.False(t, w.home.Missions.Contains(m))
	all := w.home.Missions.All()
	require.Len(t, all, 1)
	assert.Equal(t, mission.SpyMission, all[0].Type)
	assert.Equal(t, f.ID, all[0].FleetID)
	assert.Equal(t, mission.EspionageNone, all[0].Espionage)
}

func TestEspionageHumanRealmCloses(t *testing.T) {
	w, _, m := espionageFixture(t)
	w.home.Human = true

	w.eng.PlayRealm(w.home)

	assert.False(t, w.home.Missions.Contains(m))
	assert.Equal(t, 0, w.home.Missions.Len())
}

func TestTradeFleetSwapsEndpoints(t *testing.T) {
	w := newTestWorld(t)
	w.ledger.Meet(1, 2)
	f := w.addFleet(w.home, 1, galaxy.Coord{X: 14, Y: 14}, &fleet.Ship{Name: "Barge", Class: fleet.ClassFreighter, Speed: 1})
	m := mission.New(mission.TradeFleet, w.enemyPlanet.Coord)
	m.Origin = w.homePlanet.ID
	m.TargetPlanet = w.enemyPlanet.ID
	m.FleetID = f.ID
	m.Phase = mission.Executing
	w.home.Missions.Add(m)

	w.eng.PlayRealm(w.home)

	assert.Equal(t, tradeValue(w.homePlanet, w.enemyPlanet), w.home.Credits)
	assert.Equal(t, w.enemyPlanet.ID, m.Origin)
	assert.Equal(t, w.homePlanet.ID, m.TargetPlanet)
	assert.Equal(t, mission.Loading, m.Phase)
}

func TestTradeFleetGoesHomeAtWar(t *testing.T) {
	w := newTestWorld(t)
	w.ledger.DeclareWar(2, 1)
	f := w.addFleet(w.home, 1, galaxy.Coord{X: 14, Y: 14}, &fleet.Ship{Name: "Barge", Class: fleet.ClassFreighter, Speed: 1})
	m := mission.New(mission.TradeFleet, w.enemyPlanet.Coord)
	m.Origin = w.homePlanet.ID
	m.TargetPlanet = w.enemyPlanet.ID
	m.FleetID = f.ID
	w.home.Missions.Add(m)

	w.eng.PlayRealm(w.home)

	all := w.home.Missions.All()
	require.Len(t, all, 1)
	assert.Equal(t, mission.Move, all[0].Type)
}

func TestDelegacyEndsWithGoodwill(t *testing.T) {
	w := newTestWorld(t)
	w.ledger.Meet(1, 2)
	f := w.addFleet(w.home, 1, galaxy.Coord{X: 14, Y: 15}, &fleet.Ship{Name: "Envoy", Class: fleet.ClassScout, Speed: 1})
	m := mission.New(mission.DiplomaticDelegacy, w.enemyPlanet.Coord)
	m.TargetRealm = w.enemy.ID
	m.FleetID = f.ID
	m.Phase = mission.Executing
	m.Time = w.eng.Config.DelegacyTurns - 1
	w.home.Missions.Add(m)

	w.eng.PlayRealm(w.home)

	require.NotEmpty(t, w.ledger.Bonuses(2, 1))
	assert.Equal(t, diplomacy.BonusDelegacy, w.ledger.Bonuses(2, 1)[0].Type)
	all := w.home.Missions.All()
	require.Len(t, all, 1)
	assert.Equal(t, mission.Move, all[0].Type)
}

func TestHandleIgnoresMissingFleet(t *testing.T) {
	w := newTestWorld(t)
	m := mission.New(mission.Roam, galaxy.Coord{X: 4, Y: 4})
	m.FleetID = 42

	assert.Equal(t, Continue, w.eng.Handle(w.home, m).Kind)
	assert.Equal(t, Continue, w.eng.Handle(w.home, nil).Kind)
}

func TestSporeColonyBombsEnemyPlanet(t *testing.T) {
	w := newTestWorld(t)
	w.ledger.DeclareWar(1, 2)
	pod := &fleet.Ship{Name: "Seed", Class: fleet.ClassSpore, Speed: 1, Colonists: 2, ColonistCapacity: 2}
	f := w.addFleet(w.home, 1, w.enemyPlanet.Coord, pod)
	m := mission.New(mission.SporeColony, w.enemyPlanet.Coord)
	m.TargetPlanet = w.enemyPlanet.ID
	m.FleetID = f.ID
	m.Phase = mission.Executing
	w.home.Missions.Add(m)

	w.eng.PlayRealm(w.home)

	assert.Equal(t, w.enemy.ID, w.enemyPlanet.Owner, "bombed, not colonized")
	assert.Equal(t, 7, w.enemyPlanet.Population)
	assert.Nil(t, w.home.Fleets.Get(f.ID), "the pod is spent")
	assert.Equal(t, 0, w.home.Missions.Len())
	assert.Equal(t, 0, w.home.Stats[realm.StatPlanetsColonized])
}

// failedColonizer parks a loaded colony ship on a planet Auri already owns.
func failedColonizer(w *testWorld) (*fleet.Fleet, *mission.Mission) {
	ship := &fleet.Ship{Name: "Ark", Class: fleet.ClassColony, Speed: 1, Colonists: 2, ColonistCapacity: 2}
	f := w.addFleet(w.home, 1, w.enemyPlanet.Coord, ship)
	m := mission.New(mission.Colonize, w.enemyPlanet.Coord)
	m.TargetPlanet = w.enemyPlanet.ID
	m.FleetID = f.ID
	m.Phase = mission.Executing
	w.home.Missions.Add(m)
	return f, m
}

func TestColonizeFailureTakesPendingPlan(t *testing.T) {
	w := newTestWorld(t)
	f, m := failedColonizer(w)
	plan := mission.New(mission.Colonize, w.freePlanet.Coord)
	plan.TargetPlanet = w.freePlanet.ID
	plan.Phase = mission.Planning
	w.home.Missions.Add(plan)

	out := w.eng.Handle(w.home, m)

	assert.Equal(t, Close, out.Kind)
	assert.Equal(t, f.ID, plan.FleetID)
	assert.Equal(t, mission.Trekking, plan.Phase)
}

func TestColonizeFailureRetargetsNearestFreePlanet(t *testing.T) {
	w := newTestWorld(t)
	_, m := failedColonizer(w)

	out := w.eng.Handle(w.home, m)

	assert.Equal(t, Continue, out.Kind)
	assert.Equal(t, mission.Trekking, m.Phase)
	assert.Equal(t, w.freePlanet.ID, m.TargetPlanet)
	assert.Equal(t, w.freePlanet.Coord, m.Target)
}

func TestColonizeFailureGoesHomeWithNothingFree(t *testing.T) {
	w := newTestWorld(t)
	w.freePlanet.Owner = w.enemy.ID
	_, m := failedColonizer(w)

	out := w.eng.Handle(w.home, m)

	require.Equal(t, Replace, out.Kind)
	assert.Equal(t, mission.Move, out.Next.Type)
	assert.Equal(t, w.homePlanet.Coord, out.Next.Target)
}

func TestTradeFleetTradesAtOriginOnDeparture(t *testing.T) {
	w := newTestWorld(t)
	w.ledger.Meet(1, 2)
	f := w.addFleet(w.home, 1, w.homePlanet.Coord, &fleet.Ship{Name: "Barge", Class: fleet.ClassFreighter, Speed: 1})
	m := mission.New(mission.TradeFleet, w.enemyPlanet.Coord)
	m.Origin = w.homePlanet.ID
	m.TargetPlanet = w.enemyPlanet.ID
	m.FleetID = f.ID
	m.Phase = mission.Loading
	w.home.Missions.Add(m)

	w.eng.PlayRealm(w.home)

	assert.Equal(t, tradeValue(w.homePlanet, w.enemyPlanet), w.home.Credits)
	assert.Equal(t, 1, m.Time)
	assert.Equal(t, mission.Trekking, m.Phase)
}

func TestTradeFleetReturnLegSkipsOriginTrade(t *testing.T) {
	w := newTestWorld(t)
	w.ledger.Meet(1, 2)
	f := w.addFleet(w.home, 1, galaxy.Coord{X: 14, Y: 14}, &fleet.Ship{Name: "Barge", Class: fleet.ClassFreighter, Speed: 1})
	m := mission.New(mission.TradeFleet, w.enemyPlanet.Coord)
	m.Origin = w.homePlanet.ID
	m.TargetPlanet = w.enemyPlanet.ID
	m.FleetID = f.ID
	m.Phase = mission.Executing
	w.home.Missions.Add(m)

	w.eng.PlayRealm(w.home)
	earned := w.home.Credits
	w.eng.PlayRealm(w.home)

	assert.Equal(t, earned, w.home.Credits, "credited once per arrival")
	assert.Equal(t, mission.Trekking, m.Phase)
	assert.Equal(t, w.homePlanet.Coord, m.Target)
}
