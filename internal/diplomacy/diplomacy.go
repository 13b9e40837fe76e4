// Package diplomacy tracks how realms stand toward each other: treaty state
// per realm pair, the bonuses and grudges each realm holds, and war.
package diplomacy

import "github.com/talgya/realmfleet/internal/galaxy"

// Status is the treaty state between two realms. Later states include the
// privileges of earlier ones from Neutral upward.
type Status uint8

const (
	NoContact Status = iota
	War
	TradeEmbargo
	Neutral
	Peace
	TradeAlliance
	DefensivePact
	Alliance
)

var statusNames = [...]string{
	"no contact", "war", "trade embargo", "neutral", "peace",
	"trade alliance", "defensive pact", "alliance",
}

func (s Status) String() string {
	if int(s) < len(statusNames) {
		return statusNames[s]
	}
	return "unknown"
}

// Liking is how one realm feels about another.
type Liking uint8

const (
	Hate Liking = iota
	Dislike
	Indifferent
	Like
	Friends
)

func (l Liking) String() string {
	switch l {
	case Hate:
		return "hate"
	case Dislike:
		return "dislike"
	case Indifferent:
		return "neutral"
	case Like:
		return "like"
	case Friends:
		return "friends"
	}
	return "unknown"
}

// BonusType classifies a remembered diplomatic act.
type BonusType uint8

const (
	BonusDelegacy BonusType = iota
	BonusTrade
	BonusGift
	BonusEspionage
	BonusFalseFlag
	BonusWarDeclaration
	BonusBorderCrossing
	BonusAttack
)

// grievance marks the bonus types that give the wronged realm casus belli.
var grievance = map[BonusType]bool{
	BonusEspionage:      true,
	BonusFalseFlag:      true,
	BonusWarDeclaration: true,
	BonusAttack:         true,
}

// Bonus is a typed, valued memory one realm keeps about another.
type Bonus struct {
	Type  BonusType `json:"type"`
	Value int       `json:"value"`
}

// Bridge is the diplomacy surface fleet AI reads and mutates.
type Bridge interface {
	HasMet(a, b galaxy.RealmID) bool
	AtWar(a, b galaxy.RealmID) bool
	Embargoed(a, b galaxy.RealmID) bool
	AtPeace(a, b galaxy.RealmID) bool
	TradeAllied(a, b galaxy.RealmID) bool
	DefensivePacted(a, b galaxy.RealmID) bool
	Allied(a, b galaxy.RealmID) bool
	// Liking is how from feels about toward.
	Liking(from, toward galaxy.RealmID) Liking
	// HasCasusBelli reports whether from has standing to declare war on against.
	HasCasusBelli(from, against galaxy.RealmID) bool
	// MilitaryDifference is a's military value minus b's.
	MilitaryDifference(a, b galaxy.RealmID) int

	Meet(a, b galaxy.RealmID)
	// AddBonus records that from remembers an act by toward.
	AddBonus(from, toward galaxy.RealmID, t BonusType, value int)
	DeclareWar(aggressor, victim galaxy.RealmID)
	ActivatePacts(aggressor, victim galaxy.RealmID)
	RecordTrade(a, b galaxy.RealmID, credits int)
}
