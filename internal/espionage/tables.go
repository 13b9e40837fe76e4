// Package espionage decides which covert action a spy fleet attempts and
// resolves what happens when it succeeds or is caught.
//
// Scoring is data driven: a base score per attitude and action, a list of
// compiled modifier rules, then a liking adjustment and a detection penalty
// both scaled by the acting realm's appetite for risk.
package espionage

import (
	"github.com/talgya/realmfleet/internal/diplomacy"
	"github.com/talgya/realmfleet/internal/mission"
	"github.com/talgya/realmfleet/internal/realm"
)

// baseScores is indexed by attitude, then by action. Values are 0–60.
var baseScores = [realm.NumAttitudes][mission.NumEspionageTypes]int{
	realm.Aggressive: {
		mission.StealTech: 20, mission.StealCredit: 25, mission.Sabotage: 40,
		mission.DemolishBuilding: 35, mission.AssassinateGovernor: 40, mission.TerroristAttack: 45,
		mission.FalseFlag: 30, mission.DeadlyVirus: 30, mission.GainTrust: 5,
	},
	realm.Backstabbing: {
		mission.StealTech: 35, mission.StealCredit: 40, mission.Sabotage: 35,
		mission.DemolishBuilding: 30, mission.AssassinateGovernor: 45, mission.TerroristAttack: 35,
		mission.FalseFlag: 60, mission.DeadlyVirus: 35, mission.GainTrust: 25,
	},
	realm.Diplomatic: {
		mission.StealTech: 20, mission.StealCredit: 10, mission.Sabotage: 10,
		mission.DemolishBuilding: 5, mission.AssassinateGovernor: 5, mission.TerroristAttack: 0,
		mission.FalseFlag: 5, mission.DeadlyVirus: 0, mission.GainTrust: 60,
	},
	realm.Expansionist: {
		mission.StealTech: 30, mission.StealCredit: 20, mission.Sabotage: 25,
		mission.DemolishBuilding: 25, mission.AssassinateGovernor: 20, mission.TerroristAttack: 15,
		mission.FalseFlag: 20, mission.DeadlyVirus: 15, mission.GainTrust: 30,
	},
	realm.Logical: {
		mission.StealTech: 40, mission.StealCredit: 25, mission.Sabotage: 25,
		mission.DemolishBuilding: 20, mission.AssassinateGovernor: 20, mission.TerroristAttack: 10,
		mission.FalseFlag: 20, mission.DeadlyVirus: 10, mission.GainTrust: 35,
	},
	realm.Merchantical: {
		mission.StealTech: 25, mission.StealCredit: 50, mission.Sabotage: 20,
		mission.DemolishBuilding: 15, mission.AssassinateGovernor: 15, mission.TerroristAttack: 5,
		mission.FalseFlag: 15, mission.DeadlyVirus: 5, mission.GainTrust: 40,
	},
	realm.Militaristic: {
		mission.StealTech: 20, mission.StealCredit: 20, mission.Sabotage: 45,
		mission.DemolishBuilding: 40, mission.AssassinateGovernor: 35, mission.TerroristAttack: 40,
		mission.FalseFlag: 30, mission.DeadlyVirus: 30, mission.GainTrust: 10,
	},
	realm.Peaceful: {
		mission.StealTech: 15, mission.StealCredit: 10, mission.Sabotage: 5,
		mission.DemolishBuilding: 5, mission.AssassinateGovernor: 0, mission.TerroristAttack: 0,
		mission.FalseFlag: 0, mission.DeadlyVirus: 0, mission.GainTrust: 60,
	},
	realm.Scientific: {
		mission.StealTech: 60, mission.StealCredit: 20, mission.Sabotage: 20,
		mission.DemolishBuilding: 15, mission.AssassinateGovernor: 15, mission.TerroristAttack: 5,
		mission.FalseFlag: 15, mission.DeadlyVirus: 10, mission.GainTrust: 35,
	},
}

// BaseScore returns the unmodified score of an action for an attitude.
func BaseScore(a realm.Attitude, action mission.EspionageType) int {
	if a >= realm.NumAttitudes || action >= mission.NumEspionageTypes {
		return 0
	}
	return baseScores[a][action]
}

// riskFactors is how readily each attitude accepts the chance of exposure.
var riskFactors = [realm.NumAttitudes]int{
	realm.Aggressive:   5,
	realm.Backstabbing: 6,
	realm.Diplomatic:   2,
	realm.Expansionist: 3,
	realm.Logical:      3,
	realm.Merchantical: 2,
	realm.Militaristic: 4,
	realm.Peaceful:     1,
	realm.Scientific:   2,
}

// RiskFactor returns the 1–6 risk appetite of an attitude.
func RiskFactor(a realm.Attitude) int {
	if a >= realm.NumAttitudes {
		return 1
	}
	return riskFactors[a]
}

// likingBonus favors hostile acts against disliked realms.
var likingBonus = map[diplomacy.Liking]int{
	diplomacy.Hate:        15,
	diplomacy.Dislike:     8,
	diplomacy.Indifferent: 0,
	diplomacy.Like:        -8,
	diplomacy.Friends:     -15,
}

// prisonTerms is the sentence served by a captured spy, in turns.
var prisonTerms = [mission.NumEspionageTypes]int{
	mission.StealTech:           5,
	mission.StealCredit:         5,
	mission.Sabotage:            8,
	mission.DemolishBuilding:    8,
	mission.FalseFlag:           8,
	mission.AssassinateGovernor: 10,
	mission.TerroristAttack:     10,
	mission.DeadlyVirus:         10,
}

// PrisonTerm returns the sentence for a spy captured performing action.
func PrisonTerm(action mission.EspionageType) int {
	if action >= mission.NumEspionageTypes {
		return 0
	}
	return prisonTerms[action]
}

// executionRule lists when a captured spy is put to death instead of jailed.
type executionRule struct {
	always    bool
	attitudes []realm.Attitude
	war       bool
	embargo   bool
}

var executionRules = map[mission.EspionageType]executionRule{
	mission.StealCredit: {
		attitudes: []realm.Attitude{realm.Aggressive, realm.Backstabbing, realm.Militaristic, realm.Merchantical},
		war:       true,
		embargo:   true,
	},
	mission.StealTech: {
		attitudes: []realm.Attitude{realm.Aggressive, realm.Militaristic, realm.Scientific},
		war:       true,
	},
	mission.Sabotage: {
		attitudes: []realm.Attitude{realm.Aggressive, realm.Backstabbing, realm.Militaristic},
		war:       true,
	},
	mission.DemolishBuilding: {
		attitudes: []realm.Attitude{realm.Aggressive, realm.Militaristic},
		war:       true,
	},
	mission.AssassinateGovernor: {
		attitudes: []realm.Attitude{realm.Aggressive, realm.Backstabbing, realm.Militaristic, realm.Logical},
		war:       true,
		embargo:   true,
	},
	mission.FalseFlag: {
		attitudes: []realm.Attitude{realm.Aggressive, realm.Backstabbing},
		war:       true,
	},
	mission.TerroristAttack: {always: true},
	mission.DeadlyVirus:     {always: true},
}

// Executes reports whether a spy of the given attitude caught performing
// action is executed.
func Executes(action mission.EspionageType, attitude realm.Attitude, atWar, embargoed bool) bool {
	rule, ok := executionRules[action]
	if !ok {
		return false
	}
	if rule.always || (rule.war && atWar) || (rule.embargo && embargoed) {
		return true
	}
	for _, a := range rule.attitudes {
		if a == attitude {
			return true
		}
	}
	return false
}

// escalates lists actions whose detection starts a war outright.
var escalates = map[mission.EspionageType]bool{
	mission.TerroristAttack: true,
	mission.DeadlyVirus:     true,
}
