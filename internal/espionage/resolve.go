package espionage

import (
	"fmt"
	"log/slog"

	"github.com/talgya/realmfleet/internal/diplomacy"
	"github.com/talgya/realmfleet/internal/entropy"
	"github.com/talgya/realmfleet/internal/fleet"
	"github.com/talgya/realmfleet/internal/galaxy"
	"github.com/talgya/realmfleet/internal/mission"
	"github.com/talgya/realmfleet/internal/news"
	"github.com/talgya/realmfleet/internal/realm"
)

// Diplomatic weight of the acts a target learns about.
const (
	caughtPenalty    = -15
	falseFlagPenalty = -25
	gainTrustBonus   = 8
)

// Escape chances for an imprisoned spy, in percent.
const (
	wealthyEscapeChance = 60
	escapeChance        = 5
)

// Capture is how a detected spy's commander fares.
type Capture uint8

const (
	NotCaptured Capture = iota
	Released
	Executed
	Imprisoned
	Escaped
	// ShipLost is used when the spy fleet had no commander to capture.
	ShipLost
)

func (c Capture) String() string {
	switch c {
	case NotCaptured:
		return "not captured"
	case Released:
		return "released"
	case Executed:
		return "executed"
	case Imprisoned:
		return "imprisoned"
	case Escaped:
		return "escaped"
	case ShipLost:
		return "ship lost"
	}
	return "unknown"
}

// Attempt describes one espionage action about to be resolved.
type Attempt struct {
	Spy    *realm.Realm
	Fleet  *fleet.Fleet
	Target *realm.Realm
	Planet *galaxy.Planet
	Action mission.EspionageType

	// Accused is the realm a false flag raid is blamed on.
	Accused *realm.Realm
	// Victim is the target realm fleet a false flag raid strikes.
	Victim *fleet.Fleet

	SuccessChance   int
	DetectionChance int
}

// Result summarizes a resolved attempt.
type Result struct {
	Succeeded bool
	Detected  bool
	Capture   Capture
	// War reports that detection started a war.
	War bool
}

// Resolver applies espionage outcomes to the game state.
type Resolver struct {
	Diplomacy diplomacy.Bridge
	News      news.Sink
	Rand      entropy.Source
	// Realms is consulted to decide whether an assassination makes the news.
	Realms []*realm.Realm
}

// Resolve rolls success and detection independently and applies both.
func (r *Resolver) Resolve(a Attempt) Result {
	atWar := r.Diplomacy.AtWar(a.Spy.ID, a.Target.ID)
	embargoed := r.Diplomacy.Embargoed(a.Spy.ID, a.Target.ID)

	res := Result{
		Succeeded: entropy.Chance(r.Rand, a.SuccessChance),
		Detected:  entropy.Chance(r.Rand, a.DetectionChance),
	}
	commander := a.Spy.Leader(a.Fleet.Commander)

	if res.Succeeded {
		r.succeed(a)
		if commander != nil {
			commander.Experience += a.Action.Experience()
		}
	}
	if res.Detected {
		res.War = r.escalate(a)
		res.Capture = r.caught(a, commander, atWar, embargoed)
	}

	slog.Info("espionage resolved",
		"realm", a.Spy.Name, "target", a.Target.Name, "planet", a.Planet.Name,
		"action", a.Action, "success", res.Succeeded, "detected", res.Detected,
		"capture", res.Capture)
	return res
}

func (r *Resolver) message(to *realm.Realm, p *galaxy.Planet, title, text string) {
	r.News.Publish(news.Record{
		Kind:  news.KindMessage,
		Realm: to.ID,
		Coord: p.Coord,
		Title: title,
		Text:  text,
	})
}

func (r *Resolver) succeed(a Attempt) {
	p := a.Planet
	switch a.Action {
	case mission.StealCredit:
		if a.Target.Credits <= 0 {
			return
		}
		amount := max(1, a.Target.Credits/10/max(p.FullLevel(), 1))
		amount = min(amount, a.Target.Credits)
		a.Target.Credits -= amount
		a.Spy.Credits += amount
		r.message(a.Spy, p, "Credits stolen",
			fmt.Sprintf("Our agents stole %s from %s.", news.Credits(amount), p.Name))
		r.message(a.Target, p, "Treasury robbed",
			fmt.Sprintf("%s were stolen from %s by unknown agents.", news.Credits(amount), p.Name))

	case mission.StealTech:
		techs := a.Spy.StealableTechs(a.Target)
		if len(techs) == 0 {
			return
		}
		tech := techs[r.Rand.IntN(len(techs))]
		a.Spy.AddTech(tech)
		r.message(a.Spy, p, "Technology stolen",
			fmt.Sprintf("Our agents on %s stole the secrets of %s.", p.Name, tech))

	case mission.Sabotage:
		p.Production /= 2
		r.message(a.Target, p, "Sabotage",
			fmt.Sprintf("Production on %s was sabotaged.", p.Name))

	case mission.DemolishBuilding:
		if b, ok := r.demolish(p); ok {
			r.message(a.Target, p, "Building demolished",
				fmt.Sprintf("%s on %s was destroyed by saboteurs.", b.Name, p.Name))
		}

	case mission.TerroristAttack:
		b, ok := r.demolish(p)
		killed := 0
		if entropy.Chance(r.Rand, 50) {
			killed = p.KillPopulation(1)
		}
		if ok {
			r.message(a.Target, p, "Terrorist attack",
				fmt.Sprintf("A terrorist attack destroyed %s on %s, killing %d.", b.Name, p.Name, killed))
		}

	case mission.AssassinateGovernor:
		r.assassinate(a)

	case mission.FalseFlag:
		r.falseFlag(a)

	case mission.DeadlyVirus:
		killed := p.KillPopulation(max(1, p.Population/2))
		r.message(a.Target, p, "Deadly virus",
			fmt.Sprintf("A deadly virus swept %s. %d population died.", p.Name, killed))

	case mission.GainTrust:
		r.Diplomacy.AddBonus(a.Target.ID, a.Spy.ID, diplomacy.BonusDelegacy, gainTrustBonus)
	}
}

func (r *Resolver) demolish(p *galaxy.Planet) (galaxy.Building, bool) {
	if len(p.Buildings) == 0 {
		return galaxy.Building{}, false
	}
	return p.RemoveBuilding(r.Rand.IntN(len(p.Buildings)))
}

func (r *Resolver) assassinate(a Attempt) {
	p := a.Planet
	governor := a.Target.Leader(p.Governor)
	if governor == nil {
		return
	}
	if governor.UsePerk(realm.PerkWealthy) {
		r.message(a.Target, p, "Assassination foiled",
			fmt.Sprintf("Governor %s of %s bought off the assassins.", governor.Name, p.Name))
		return
	}
	governor.Job = realm.JobDead
	p.Governor = galaxy.NoLeader
	a.Spy.Increment(realm.StatGovernorsAssassinated)
	r.message(a.Target, p, "Governor assassinated",
		fmt.Sprintf("Governor %s of %s was assassinated.", governor.Name, p.Name))

	if r.metByHuman(a.Target) {
		r.News.Publish(news.Record{
			Kind:  news.KindNews,
			Realm: galaxy.NoRealm,
			Coord: p.Coord,
			Title: "Governor assassinated",
			Text:  fmt.Sprintf("%s governor %s was murdered on %s!", a.Target.Name, governor.Name, p.Name),
		})
	}
}

func (r *Resolver) metByHuman(target *realm.Realm) bool {
	for _, other := range r.Realms {
		if other.Human && other.ID != target.ID && r.Diplomacy.HasMet(other.ID, target.ID) {
			return true
		}
	}
	return false
}

func (r *Resolver) falseFlag(a Attempt) {
	if a.Victim == nil || a.Accused == nil {
		slog.Debug("false flag without victim", "realm", a.Spy.Name)
		return
	}
	ship := a.Victim.ShipForFalseFlag()
	if ship == nil {
		slog.Debug("false flag victim has no ship", "realm", a.Spy.Name, "fleet", a.Victim.Name)
		return
	}
	a.Victim.RemoveShip(ship)
	if len(a.Victim.Ships) == 0 {
		if commander := a.Target.Leader(a.Victim.Commander); commander != nil {
			commander.Job = realm.JobUnassigned
		}
		a.Target.Fleets.Remove(a.Victim.ID)
	}
	r.Diplomacy.AddBonus(a.Target.ID, a.Accused.ID, diplomacy.BonusFalseFlag, falseFlagPenalty)
	r.message(a.Target, a.Planet, "Fleet attacked",
		fmt.Sprintf("Ships flying the colors of %s destroyed %s near %s.", a.Accused.Name, ship.Name, a.Planet.Name))
}

// escalate declares war for the acts no realm tolerates. Reports whether a
// war started.
func (r *Resolver) escalate(a Attempt) bool {
	if r.Diplomacy.AtWar(a.Target.ID, a.Spy.ID) {
		return false
	}
	war := escalates[a.Action] ||
		(a.Action == mission.FalseFlag && r.Diplomacy.HasCasusBelli(a.Target.ID, a.Spy.ID))
	if !war {
		return false
	}
	r.Diplomacy.DeclareWar(a.Target.ID, a.Spy.ID)
	return true
}

func (r *Resolver) caught(a Attempt, commander *realm.Leader, atWar, embargoed bool) Capture {
	p := a.Planet
	if a.Action == mission.GainTrust {
		r.message(a.Spy, p, "Envoy released",
			fmt.Sprintf("Our envoy on %s was caught and sent home unharmed.", p.Name))
		return Released
	}
	r.Diplomacy.AddBonus(a.Target.ID, a.Spy.ID, diplomacy.BonusEspionage, caughtPenalty)
	r.message(a.Target, p, "Spy caught",
		fmt.Sprintf("A %s spy was caught on %s attempting %s.", a.Spy.Name, p.Name, a.Action))

	if commander == nil {
		if ship := spyShip(a.Fleet); ship != nil {
			a.Fleet.RemoveShip(ship)
		}
		return ShipLost
	}

	if Executes(a.Action, a.Spy.Attitude, atWar, embargoed) {
		commander.Job = realm.JobDead
		a.Fleet.Commander = galaxy.NoLeader
		a.Spy.Increment(realm.StatSpiesExecuted)
		r.message(a.Spy, p, "Spy executed",
			fmt.Sprintf("%s was executed on %s.", commander.Name, p.Name))
		return Executed
	}

	chance := escapeChance
	if commander.UsePerk(realm.PerkWealthy) {
		chance = wealthyEscapeChance
	}
	if entropy.Chance(r.Rand, chance) {
		r.message(a.Spy, p, "Spy escaped",
			fmt.Sprintf("%s escaped from prison on %s.", commander.Name, p.Name))
		return Escaped
	}
	commander.Job = realm.JobPrisoner
	commander.PrisonTime = PrisonTerm(a.Action)
	a.Fleet.Commander = galaxy.NoLeader
	r.message(a.Spy, p, "Spy imprisoned",
		fmt.Sprintf("%s was imprisoned on %s for %d turns.", commander.Name, p.Name, commander.PrisonTime))
	return Imprisoned
}

func spyShip(f *fleet.Fleet) *fleet.Ship {
	for _, s := range f.Ships {
		if s.Class == fleet.ClassSpy {
			return s
		}
	}
	return f.ShipForFalseFlag()
}
