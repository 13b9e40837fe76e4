package espionage

import (
	"github.com/talgya/realmfleet/internal/fleet"
	"github.com/talgya/realmfleet/internal/galaxy"
	"github.com/talgya/realmfleet/internal/mission"
	"github.com/talgya/realmfleet/internal/realm"
)

const (
	minChance = 5
	maxChance = 95
)

func clampChance(v int) int {
	return min(max(v, minChance), maxChance)
}

func spyStrength(f *fleet.Fleet, commander *realm.Leader) int {
	power := f.SpyPower()
	if commander != nil {
		power += commander.Experience / 25
	}
	return power
}

func planetDefense(p *galaxy.Planet) int {
	return p.CounterSpy() + p.Population/2
}

// SuccessChance is the percent chance the spy fleet pulls off its action.
func SuccessChance(f *fleet.Fleet, commander *realm.Leader, p *galaxy.Planet) int {
	return clampChance(40 + (spyStrength(f, commander)-planetDefense(p))*5)
}

// DetectionChance is the percent chance the target planet catches the spy.
func DetectionChance(f *fleet.Fleet, commander *realm.Leader, p *galaxy.Planet) int {
	return clampChance(30 + (planetDefense(p)-f.Cloak()-spyStrength(f, commander)/2)*5)
}

// LegalActions lists the actions the spy realm can attempt against planet p
// of realm target. falseFlag reports whether a false flag raid has both a
// fleet to strike and a third realm to frame.
func LegalActions(spy, target *realm.Realm, p *galaxy.Planet, falseFlag bool) []mission.EspionageType {
	var out []mission.EspionageType
	if len(spy.StealableTechs(target)) > 0 {
		out = append(out, mission.StealTech)
	}
	if target.Credits > 0 {
		out = append(out, mission.StealCredit)
	}
	if p.Production > 0 {
		out = append(out, mission.Sabotage)
	}
	if len(p.Buildings) > 0 {
		out = append(out, mission.DemolishBuilding)
	}
	if p.Governor != galaxy.NoLeader {
		out = append(out, mission.AssassinateGovernor)
	}
	if len(p.Buildings) > 0 {
		out = append(out, mission.TerroristAttack)
	}
	if falseFlag {
		out = append(out, mission.FalseFlag)
	}
	if p.Population > 1 {
		out = append(out, mission.DeadlyVirus)
	}
	out = append(out, mission.GainTrust)
	return out
}
