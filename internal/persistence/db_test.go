package persistence

import (
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/talgya/realmfleet/internal/fleet"
	"github.com/talgya/realmfleet/internal/galaxy"
	"github.com/talgya/realmfleet/internal/mission"
	"github.com/talgya/realmfleet/internal/news"
	"github.com/talgya/realmfleet/internal/realm"
)

func openTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := Open(filepath.Join(t.TempDir(), "save.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestMissionsRoundTrip(t *testing.T) {
	db := openTestDB(t)
	reg := mission.NewRegistry()
	attack := mission.New(mission.Attack, galaxy.Coord{X: 4, Y: 9})
	attack.TargetPlanet = 7
	attack.FleetID = 3
	reg.Add(attack)
	spy := mission.New(mission.EspionageMission, galaxy.Coord{X: 1, Y: 1})
	spy.Espionage = mission.StealTech
	spy.TargetRealm = 2
	reg.Add(spy)

	require.NoError(t, db.SaveMissions(1, 12, reg))
	got, err := db.LoadMissions(1)
	require.NoError(t, err)

	all := got.All()
	require.Len(t, all, 2)
	assert.Equal(t, *attack, *all[0])
	assert.Equal(t, *spy, *all[1])
}

func TestLoadMissionsUnsavedRealm(t *testing.T) {
	db := openTestDB(t)
	reg, err := db.LoadMissions(9)
	require.NoError(t, err)
	assert.Equal(t, 0, reg.Len())
}

func TestFleetsRoundTrip(t *testing.T) {
	db := openTestDB(t)
	f := &fleet.Fleet{ID: 4, Name: "Lance", Owner: 1, Coord: galaxy.Coord{X: 3, Y: 8}, Commander: 2,
		Ships: []*fleet.Ship{{Name: "Spear", Class: fleet.ClassWarship, Speed: 2, Power: 10}},
		Route: &fleet.StandingRoute{Start: galaxy.Coord{X: 3, Y: 8}, End: galaxy.Coord{X: 3, Y: 8}}}

	require.NoError(t, db.SaveFleets(1, []*fleet.Fleet{f}))
	got, err := db.LoadFleets(1)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, f, got[0])

	require.NoError(t, db.SaveFleets(1, nil))
	got, err = db.LoadFleets(1)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestRecentEventsNewestFirst(t *testing.T) {
	db := openTestDB(t)
	require.NoError(t, db.SaveEvents([]news.Record{
		{Turn: 1, Kind: news.KindEvent, Realm: 1, Title: "First contact", Text: "a"},
		{Turn: 2, Kind: news.KindNews, Realm: galaxy.NoRealm, Coord: galaxy.Coord{X: 2, Y: 3}, Title: "War declared", Text: "b"},
	}))

	got, err := db.RecentEvents(5)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "War declared", got[0].Title)
	assert.Equal(t, galaxy.NoRealm, got[0].Realm)
	assert.Equal(t, galaxy.Coord{X: 2, Y: 3}, got[0].Coord)
	assert.Equal(t, news.KindEvent, got[1].Kind)
}

func TestSaveTurnAndLoadRealm(t *testing.T) {
	db := openTestDB(t)
	r := realm.New(1, "Vorn", realm.Aggressive)
	r.Fleets.Add(&fleet.Fleet{ID: 1, Name: "Home Guard", Owner: 1})
	m := mission.New(mission.Defend, galaxy.Coord{X: 2, Y: 2})
	m.FleetID = 1
	r.Missions.Add(m)

	turn, err := db.LastTurn()
	require.NoError(t, err)
	assert.Equal(t, 0, turn)

	id, err := db.SaveTurn(7, []*realm.Realm{r}, []news.Record{{Turn: 7, Title: "Turn"}})
	require.NoError(t, err)
	_, err = uuid.Parse(id)
	assert.NoError(t, err)

	stored, err := db.GetMeta(MetaSaveID)
	require.NoError(t, err)
	assert.Equal(t, id, stored)
	turn, err = db.LastTurn()
	require.NoError(t, err)
	assert.Equal(t, 7, turn)

	loaded := realm.New(1, "Vorn", realm.Aggressive)
	require.NoError(t, db.LoadRealm(loaded))
	assert.Equal(t, 1, loaded.Fleets.Len())
	require.Equal(t, 1, loaded.Missions.Len())
	assert.Equal(t, mission.Defend, loaded.Missions.All()[0].Type)
}
