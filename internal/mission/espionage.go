package mission

import "fmt"

// EspionageType is the action an espionage mission carries out.
type EspionageType uint8

const (
	EspionageNone EspionageType = iota // Not yet selected
	StealTech
	StealCredit
	Sabotage
	DemolishBuilding
	AssassinateGovernor
	TerroristAttack
	FalseFlag
	DeadlyVirus
	GainTrust
)

// NumEspionageTypes counts all espionage action kinds including EspionageNone.
const NumEspionageTypes = 10

var espionageNames = [NumEspionageTypes]string{
	"NONE", "STEAL_TECH", "STEAL_CREDIT", "SABOTAGE", "DEMOLISH_BUILDING",
	"ASSASSINATE_GOVERNOR", "TERRORIST_ATTACK", "FALSE_FLAG", "DEADLY_VIRUS", "GAIN_TRUST",
}

// experienceRewards is granted to the spy commander on a successful action.
var experienceRewards = [NumEspionageTypes]int{
	EspionageNone:       0,
	StealTech:           50,
	StealCredit:         30,
	Sabotage:            40,
	DemolishBuilding:    40,
	AssassinateGovernor: 75,
	TerroristAttack:     60,
	FalseFlag:           60,
	DeadlyVirus:         100,
	GainTrust:           20,
}

// String returns the action name.
func (e EspionageType) String() string {
	if e < NumEspionageTypes {
		return espionageNames[e]
	}
	return fmt.Sprintf("EspionageType(%d)", uint8(e))
}

// Experience returns the experience reward for carrying the action out.
func (e EspionageType) Experience() int {
	if e < NumEspionageTypes {
		return experienceRewards[e]
	}
	return 0
}

// EspionageActions lists every selectable action (EspionageNone excluded).
func EspionageActions() []EspionageType {
	return []EspionageType{
		StealTech, StealCredit, Sabotage, DemolishBuilding, AssassinateGovernor,
		TerroristAttack, FalseFlag, DeadlyVirus, GainTrust,
	}
}
