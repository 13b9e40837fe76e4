package espionage

import (
	"fmt"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/talgya/realmfleet/internal/mission"
)

// RuleEnv is the environment modifier conditions are evaluated against.
type RuleEnv struct {
	Action             string
	Attitude           string
	AtWar              bool
	Embargoed          bool
	Allied             bool
	AtPeace            bool
	DefensivePact      bool
	MilitaryDifference int
	// AttackPhase is the phase of the acting realm's attack on the target,
	// or empty when there is none.
	AttackPhase string
}

// Rule adjusts the score of some actions when its condition holds.
type Rule struct {
	Name string
	// Actions the rule applies to. Empty means every action.
	Actions      []mission.EspionageType
	ConditionSrc string
	Delta        int
	// Veto forces the final score to zero instead of adding Delta.
	Veto    bool
	program *vm.Program
}

func (r *Rule) appliesTo(a mission.EspionageType) bool {
	if len(r.Actions) == 0 {
		return true
	}
	for _, have := range r.Actions {
		if have == a {
			return true
		}
	}
	return false
}

func compileRules(rules []*Rule) ([]*Rule, error) {
	for _, r := range rules {
		prog, err := expr.Compile(r.ConditionSrc, expr.Env(RuleEnv{}), expr.AsBool())
		if err != nil {
			return nil, fmt.Errorf("compile rule %q: %w", r.Name, err)
		}
		r.program = prog
	}
	return rules, nil
}

// DefaultRules returns the stock modifier rules. Each call returns fresh,
// uncompiled rules.
func DefaultRules() []*Rule {
	hostile := []mission.EspionageType{
		mission.StealTech, mission.StealCredit, mission.Sabotage, mission.DemolishBuilding,
		mission.AssassinateGovernor, mission.FalseFlag,
	}
	return []*Rule{
		{Name: "war", Actions: hostile, ConditionSrc: "AtWar", Delta: 20},
		{Name: "war-terror", Actions: []mission.EspionageType{mission.TerroristAttack, mission.DeadlyVirus},
			ConditionSrc: "AtWar", Delta: 25},
		{Name: "embargo", Actions: []mission.EspionageType{
			mission.StealTech, mission.Sabotage, mission.DemolishBuilding, mission.AssassinateGovernor,
			mission.TerroristAttack, mission.FalseFlag, mission.DeadlyVirus,
		}, ConditionSrc: "Embargoed", Delta: 10},
		{Name: "embargo-credit", Actions: []mission.EspionageType{mission.StealCredit},
			ConditionSrc: "Embargoed", Delta: 15},

		{Name: "false-flag-dominant", Actions: []mission.EspionageType{mission.FalseFlag},
			ConditionSrc: "MilitaryDifference > 100", Delta: 30},
		{Name: "false-flag-superior", Actions: []mission.EspionageType{mission.FalseFlag},
			ConditionSrc: "MilitaryDifference > 80 && MilitaryDifference <= 100", Delta: 20},
		{Name: "false-flag-stronger", Actions: []mission.EspionageType{mission.FalseFlag},
			ConditionSrc: "MilitaryDifference > 50 && MilitaryDifference <= 80", Delta: 15},
		{Name: "false-flag-ahead", Actions: []mission.EspionageType{mission.FalseFlag},
			ConditionSrc: "MilitaryDifference > 0 && MilitaryDifference <= 50", Delta: 10},
		{Name: "false-flag-weaker", Actions: []mission.EspionageType{mission.FalseFlag},
			ConditionSrc: "MilitaryDifference < 0", Delta: -10},
		{Name: "false-flag-allied", Actions: []mission.EspionageType{mission.FalseFlag},
			ConditionSrc: "Allied", Delta: -20},
		{Name: "false-flag-pact", Actions: []mission.EspionageType{mission.FalseFlag},
			ConditionSrc: "DefensivePact && !Allied", Delta: -10},
		{Name: "false-flag-peace", Actions: []mission.EspionageType{mission.FalseFlag},
			ConditionSrc: "AtPeace && !DefensivePact", Delta: -5},

		{Name: "virus-siege", Actions: []mission.EspionageType{mission.DeadlyVirus},
			ConditionSrc: `AttackPhase == "EXECUTING"`, Delta: 25},
		{Name: "virus-approach", Actions: []mission.EspionageType{mission.DeadlyVirus},
			ConditionSrc: `AttackPhase == "TREKKING"`, Delta: 10},

		{Name: "virus-peace-veto", Actions: []mission.EspionageType{mission.DeadlyVirus},
			ConditionSrc: "AtPeace || Allied", Veto: true},
		{Name: "trust-war-veto", Actions: []mission.EspionageType{mission.GainTrust},
			ConditionSrc: "AtWar", Veto: true},
	}
}
