package main

import (
	"cmp"
	"fmt"
	"log/slog"
	"slices"

	"github.com/talgya/realmfleet/internal/ai"
	"github.com/talgya/realmfleet/internal/config"
	"github.com/talgya/realmfleet/internal/diplomacy"
	"github.com/talgya/realmfleet/internal/entropy"
	"github.com/talgya/realmfleet/internal/fleet"
	"github.com/talgya/realmfleet/internal/galaxy"
	"github.com/talgya/realmfleet/internal/mission"
	"github.com/talgya/realmfleet/internal/news"
	"github.com/talgya/realmfleet/internal/realm"
)

var realmNames = []string{"Vorn", "Auri", "Kesh", "Talmar", "Ossium", "Quill", "Brannoc", "Ixa"}

var leaderNames = []string{
	"Sable", "Corvin", "Ilse", "Dray", "Mirren", "Tobin", "Vessa", "Orrin",
	"Kaela", "Hale", "Juno", "Pell", "Rook", "Senna", "Tarq", "Wren",
}

// Starting values for every realm.
const (
	homePopulation   = 10
	startCredits     = 100
	startProduction  = 10
	startAllowance   = 20
	colonizePlans    = 2
	boardRealmID     = galaxy.RealmID(99)
	homeChartRadius  = 3
	homeOrbitalPower = 5
)

// scenario is a freshly seeded game.
type scenario struct {
	game   *ai.Game
	ledger *diplomacy.Ledger
	log    *news.Log
}

// newScenario generates a star map and seeds realms, fleets and starting
// missions on it.
func newScenario(cfg config.Config, gen galaxy.GenConfig, realms int, rng entropy.Source) (*scenario, error) {
	if realms < 2 || realms > len(realmNames) {
		return nil, fmt.Errorf("realm count %d out of range 2..%d", realms, len(realmNames))
	}
	m := galaxy.Generate(gen)
	homes := pickHomes(m, realms)
	if len(homes) < realms {
		return nil, fmt.Errorf("map has room for %d realms, want %d", len(homes), realms)
	}

	s := &scenario{log: news.NewLog()}
	g := &ai.Game{Map: m, News: s.log, Rand: rng, Config: cfg}
	s.game = g

	seed := &seeder{game: g}
	for i, home := range homes {
		r := realm.New(galaxy.RealmID(i+1), realmNames[i], realm.Attitude(rng.IntN(realm.NumAttitudes)))
		g.Realms = append(g.Realms, r)
		seed.settle(r, home)
	}
	g.Realms = append(g.Realms, seed.board())
	m.RecalculateCulture(4)

	ids := make([]galaxy.RealmID, len(g.Realms))
	for i, r := range g.Realms {
		ids[i] = r.ID
	}
	s.ledger = diplomacy.NewLedger(ids, g.MilitaryPower, s.log)
	s.ledger.Names = func(id galaxy.RealmID) string {
		if r := g.Realm(id); r != nil {
			return r.Name
		}
		return fmt.Sprintf("realm %d", id)
	}
	g.Diplomacy = s.ledger

	for _, r := range g.Realms {
		seed.plan(r)
		slog.Info("realm seeded", "realm", r.Name, "attitude", r.Attitude,
			"fleets", r.Fleets.Len(), "missions", r.Missions.Len())
	}
	return s, nil
}

// pickHomes chooses n planets spread as far apart as possible, starting with
// the first planet generated.
func pickHomes(m *galaxy.Map, n int) []*galaxy.Planet {
	var candidates []*galaxy.Planet
	for _, p := range m.Planets {
		if !p.GasGiant {
			candidates = append(candidates, p)
		}
	}
	if len(candidates) == 0 {
		return nil
	}
	homes := []*galaxy.Planet{candidates[0]}
	for len(homes) < n {
		var best *galaxy.Planet
		bestDist := -1.0
		for _, p := range candidates {
			d := nearestDistance(p, homes)
			if d > bestDist {
				best, bestDist = p, d
			}
		}
		if best == nil || bestDist <= 0 {
			break
		}
		homes = append(homes, best)
	}
	return homes
}

func nearestDistance(p *galaxy.Planet, homes []*galaxy.Planet) float64 {
	d := -1.0
	for _, h := range homes {
		if hd := p.Coord.Distance(h.Coord); d < 0 || hd < d {
			d = hd
		}
	}
	return d
}

// seeder hands out fleet and leader IDs while a scenario is built.
type seeder struct {
	game       *ai.Game
	nextLeader galaxy.LeaderID
}

func (s *seeder) leader(r *realm.Realm, job realm.Job) *realm.Leader {
	s.nextLeader++
	l := &realm.Leader{
		ID:   s.nextLeader,
		Name: leaderNames[int(s.nextLeader-1)%len(leaderNames)],
		Job:  job,
	}
	if s.game.Rand.IntN(4) == 0 {
		l.Perks = append(l.Perks, realm.PerkWealthy)
	}
	r.AddLeader(l)
	return l
}

func (s *seeder) fleet(r *realm.Realm, name string, at galaxy.Coord, ships ...*fleet.Ship) *fleet.Fleet {
	f := &fleet.Fleet{ID: s.game.NewFleetID(), Name: name, Owner: r.ID, Coord: at, Ships: ships}
	r.Fleets.Add(f)
	return f
}

// settle makes home the realm's capital and gives it a starting navy.
func (s *seeder) settle(r *realm.Realm, home *galaxy.Planet) {
	governor := s.leader(r, realm.JobGovernor)
	home.Owner = r.ID
	home.Name = r.Name + " Prime"
	home.Population = homePopulation
	home.Workers = homePopulation
	home.Governor = governor.ID
	home.OrbitalPower = homeOrbitalPower
	home.Buildings = append(home.Buildings, galaxy.Building{Name: "Counter-intelligence bureau", CounterSpy: 1})

	r.Credits = startCredits
	r.CreditProduction = startProduction
	r.FleetAllowance = startAllowance
	r.Techs = []string{"Ion drive", "Hydroponics"}
	if r.ID%2 == 0 {
		r.Techs = append(r.Techs, "Deflector shields")
		r.Traits = append(r.Traits, realm.TraitGasGiantColonizer)
	}
	r.Chart(home.Coord, homeChartRadius)

	at := home.Coord
	s.fleet(r, "Scout", at, &fleet.Ship{Name: "Pathfinder", Class: fleet.ClassScout, Speed: 3, Scanner: 2, FleetCapacity: 1})
	s.fleet(r, "Colony", at, &fleet.Ship{Name: "Ark", Class: fleet.ClassColony, Speed: 1, ColonistCapacity: 2, FleetCapacity: 2})
	s.fleet(r, "Home Guard", at,
		&fleet.Ship{Name: "Lance", Class: fleet.ClassWarship, Speed: 2, Power: 10, Bombs: 1, Cost: 30, FleetCapacity: 3},
		&fleet.Ship{Name: "Relic", Class: fleet.ClassWarship, Speed: 1, Power: 3, Cost: 10, FleetCapacity: 2, Obsolete: true})
	s.fleet(r, "Merchant", at, &fleet.Ship{Name: "Barge", Class: fleet.ClassFreighter, Speed: 2, FleetCapacity: 1})
	spy := s.fleet(r, "Shadow", at, &fleet.Ship{Name: "Whisper", Class: fleet.ClassSpy, Speed: 2, SpyPower: 2, Cloak: 2, FleetCapacity: 1})
	spy.Commander = s.leader(r, realm.JobCommander).ID
}

// board creates the space-pirate realm that preys on everyone.
func (s *seeder) board() *realm.Realm {
	r := realm.New(boardRealmID, "Corsairs", realm.Aggressive)
	r.Board = true
	r.AddTech(realm.TechTractorBeam)
	r.FleetAllowance = startAllowance
	center := s.game.Map.Center()
	for s.game.Map.Blocked(center) {
		center.X++
	}
	s.fleet(r, "Raiders", center, &fleet.Ship{Name: "Cutlass", Class: fleet.ClassPrivateer, Speed: 2, Power: 6, Cloak: 1, FleetCapacity: 2})
	s.fleet(r, "Drifters", center, &fleet.Ship{Name: "Hook", Class: fleet.ClassPrivateer, Speed: 1, Power: 4, FleetCapacity: 2})
	return r
}

// plan gives every starting fleet its first mission, and queues colonize
// plans for the best free planets near home.
func (s *seeder) plan(r *realm.Realm) {
	m := s.game.Map
	if r.Board {
		for _, f := range r.Fleets.All() {
			var mi *mission.Mission
			if f.Name == "Raiders" {
				mi = mission.New(mission.Move, m.Center())
			} else {
				mi = mission.New(mission.Roam, f.Coord)
			}
			mi.FleetID = f.ID
			r.Missions.Add(mi)
		}
		return
	}

	home := r.HomePlanet(m)
	for _, f := range r.Fleets.All() {
		var mi *mission.Mission
		switch f.Name {
		case "Scout":
			mi = mission.New(mission.Explore, f.Coord)
		case "Colony":
			mi = mission.New(mission.ColonyExplore, f.Coord)
			if sun := m.NearestSun(f.Coord); sun != nil {
				mi.Sun = sun.ID
				mi.Target = sun.Coord
			}
		case "Home Guard":
			mi = mission.New(mission.Defend, home.Coord)
			mi.TargetPlanet = home.ID
		case "Merchant":
			dest := s.tradePartner(r, home)
			if dest == nil {
				continue
			}
			mi = mission.New(mission.TradeFleet, dest.Coord)
			mi.Origin = home.ID
			mi.TargetPlanet = dest.ID
		case "Shadow":
			mi = mission.New(mission.DiplomaticDelegacy, f.Coord)
			mi.TargetRealm = s.neighbor(r, home).ID
		default:
			continue
		}
		mi.FleetID = f.ID
		r.Missions.Add(mi)
		if f.Name == "Shadow" {
			// Spying starts once the delegacy has made contact.
			spy := mission.New(mission.SpyMission, f.Coord)
			spy.FleetID = f.ID
			r.Missions.Add(spy)
		}
	}

	gasGiants := r.HasTrait(realm.TraitGasGiantColonizer)
	planned := 0
	for _, p := range byDistance(m.Planets, home.Coord) {
		if planned == colonizePlans {
			break
		}
		if !p.Colonizable(gasGiants) || p.Value(gasGiants) <= 0 {
			continue
		}
		mi := mission.New(mission.Colonize, p.Coord)
		mi.Phase = mission.Planning
		mi.TargetPlanet = p.ID
		r.Missions.Add(mi)
		planned++
	}
}

// neighbor returns the closest other non-board realm.
func (s *seeder) neighbor(r *realm.Realm, home *galaxy.Planet) *realm.Realm {
	var best *realm.Realm
	bestDist := 0.0
	for _, other := range s.game.Realms {
		if other.ID == r.ID || other.Board {
			continue
		}
		oh := other.HomePlanet(s.game.Map)
		if oh == nil {
			continue
		}
		if d := oh.Coord.Distance(home.Coord); best == nil || d < bestDist {
			best, bestDist = other, d
		}
	}
	return best
}

func (s *seeder) tradePartner(r *realm.Realm, home *galaxy.Planet) *galaxy.Planet {
	if other := s.neighbor(r, home); other != nil {
		return other.HomePlanet(s.game.Map)
	}
	return nil
}

// byDistance returns planets ordered nearest first.
func byDistance(planets []*galaxy.Planet, from galaxy.Coord) []*galaxy.Planet {
	out := make([]*galaxy.Planet, len(planets))
	copy(out, planets)
	slices.SortStableFunc(out, func(a, b *galaxy.Planet) int {
		return cmp.Compare(a.Coord.Distance(from), b.Coord.Distance(from))
	})
	return out
}
