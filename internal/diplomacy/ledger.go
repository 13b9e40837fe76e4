package diplomacy

import (
	"fmt"
	"log/slog"

	"github.com/talgya/realmfleet/internal/galaxy"
	"github.com/talgya/realmfleet/internal/news"
)

// Reputation penalties applied on a war declaration.
const (
	victimWarPenalty   = -60
	observerWarPenalty = -15
)

// Opinion sums at which the liking tier changes.
const (
	hateThreshold    = -30
	dislikeThreshold = -10
	likeThreshold    = 10
	friendsThreshold = 30
)

const maxBonusesPerRealm = 32

// EntryKind classifies a diplomatic history entry.
type EntryKind uint8

const (
	EntryMeet EntryKind = iota
	EntryTrade
	EntryWar
	EntryPact
)

// Entry is one line of diplomatic history.
type Entry struct {
	Kind    EntryKind      `json:"kind"`
	From    galaxy.RealmID `json:"from"`
	To      galaxy.RealmID `json:"to"`
	Credits int            `json:"credits,omitempty"`
}

type pair struct{ a, b galaxy.RealmID }

func key(a, b galaxy.RealmID) pair {
	if a > b {
		a, b = b, a
	}
	return pair{a, b}
}

// Ledger is the in-memory Bridge implementation.
type Ledger struct {
	// Names resolves realm names for news text.
	Names func(galaxy.RealmID) string

	realms  []galaxy.RealmID
	status  map[pair]Status
	bonuses map[pair][]Bonus // directed: {from, toward}
	power   func(galaxy.RealmID) int
	sink    news.Sink
	History []Entry
}

var _ Bridge = (*Ledger)(nil)

// NewLedger creates a ledger for the given realms. power supplies each realm's
// military value; sink receives war news.
func NewLedger(realms []galaxy.RealmID, power func(galaxy.RealmID) int, sink news.Sink) *Ledger {
	if sink == nil {
		sink = news.Discard
	}
	return &Ledger{
		Names:   func(id galaxy.RealmID) string { return fmt.Sprintf("realm %d", id) },
		realms:  realms,
		status:  make(map[pair]Status),
		bonuses: make(map[pair][]Bonus),
		power:   power,
		sink:    sink,
	}
}

// Status returns the treaty state between a and b.
func (l *Ledger) Status(a, b galaxy.RealmID) Status {
	return l.status[key(a, b)]
}

// SetStatus overwrites the treaty state. Setting anything other than
// NoContact implies the realms have met.
func (l *Ledger) SetStatus(a, b galaxy.RealmID, s Status) {
	if a == b {
		return
	}
	l.status[key(a, b)] = s
}

func (l *Ledger) HasMet(a, b galaxy.RealmID) bool {
	return a == b || l.Status(a, b) != NoContact
}

func (l *Ledger) AtWar(a, b galaxy.RealmID) bool {
	return a != b && l.Status(a, b) == War
}

func (l *Ledger) Embargoed(a, b galaxy.RealmID) bool {
	return a != b && l.Status(a, b) == TradeEmbargo
}

func (l *Ledger) AtPeace(a, b galaxy.RealmID) bool {
	return l.Status(a, b) >= Peace
}

func (l *Ledger) TradeAllied(a, b galaxy.RealmID) bool {
	return l.Status(a, b) >= TradeAlliance
}

func (l *Ledger) DefensivePacted(a, b galaxy.RealmID) bool {
	return l.Status(a, b) >= DefensivePact
}

func (l *Ledger) Allied(a, b galaxy.RealmID) bool {
	return l.Status(a, b) == Alliance
}

// Meet puts two realms into contact. Realms already in contact are unchanged.
func (l *Ledger) Meet(a, b galaxy.RealmID) {
	if l.HasMet(a, b) {
		return
	}
	l.SetStatus(a, b, Neutral)
	l.History = append(l.History, Entry{Kind: EntryMeet, From: a, To: b})
	slog.Debug("realms met", "a", l.Names(a), "b", l.Names(b))
}

// AddBonus records a memory from holds about toward. Old memories are
// forgotten once the list is full.
func (l *Ledger) AddBonus(from, toward galaxy.RealmID, t BonusType, value int) {
	if from == toward {
		return
	}
	k := pair{from, toward}
	list := append(l.bonuses[k], Bonus{Type: t, Value: value})
	if len(list) > maxBonusesPerRealm {
		list = list[len(list)-maxBonusesPerRealm:]
	}
	l.bonuses[k] = list
}

// Bonuses returns what from remembers about toward.
func (l *Ledger) Bonuses(from, toward galaxy.RealmID) []Bonus {
	return l.bonuses[pair{from, toward}]
}

func (l *Ledger) opinion(from, toward galaxy.RealmID) int {
	total := 0
	for _, b := range l.bonuses[pair{from, toward}] {
		total += b.Value
	}
	return total
}

func (l *Ledger) Liking(from, toward galaxy.RealmID) Liking {
	v := l.opinion(from, toward)
	switch {
	case v <= hateThreshold:
		return Hate
	case v <= dislikeThreshold:
		return Dislike
	case v >= friendsThreshold:
		return Friends
	case v >= likeThreshold:
		return Like
	}
	return Indifferent
}

func (l *Ledger) HasCasusBelli(from, against galaxy.RealmID) bool {
	for _, b := range l.bonuses[pair{from, against}] {
		if grievance[b.Type] && b.Value < 0 {
			return true
		}
	}
	return false
}

func (l *Ledger) MilitaryDifference(a, b galaxy.RealmID) int {
	if l.power == nil {
		return 0
	}
	return l.power(a) - l.power(b)
}

// RecordTrade logs a completed trade and improves both realms' opinion.
func (l *Ledger) RecordTrade(a, b galaxy.RealmID, credits int) {
	l.History = append(l.History, Entry{Kind: EntryTrade, From: a, To: b, Credits: credits})
	l.AddBonus(a, b, BonusTrade, 2)
	l.AddBonus(b, a, BonusTrade, 2)
}

// DeclareWar starts a war unless one exists. Every realm that knows the
// aggressor thinks less of it, and the victim's defensive pact partners join.
func (l *Ledger) DeclareWar(aggressor, victim galaxy.RealmID) {
	if aggressor == victim || l.AtWar(aggressor, victim) {
		return
	}
	l.SetStatus(aggressor, victim, War)
	l.History = append(l.History, Entry{Kind: EntryWar, From: aggressor, To: victim})

	l.AddBonus(victim, aggressor, BonusWarDeclaration, victimWarPenalty)
	for _, r := range l.realms {
		if r == aggressor || r == victim || !l.HasMet(r, aggressor) {
			continue
		}
		l.AddBonus(r, aggressor, BonusWarDeclaration, observerWarPenalty)
	}

	l.sink.Publish(news.Record{
		Kind:  news.KindNews,
		Realm: galaxy.NoRealm,
		Title: "War declared",
		Text:  fmt.Sprintf("%s has declared war against %s!", l.Names(aggressor), l.Names(victim)),
	})
	slog.Info("war declared", "aggressor", l.Names(aggressor), "victim", l.Names(victim))

	l.ActivatePacts(aggressor, victim)
}

// ActivatePacts brings every defensive pact partner of victim into the war
// against aggressor. Partners do not cascade further.
func (l *Ledger) ActivatePacts(aggressor, victim galaxy.RealmID) {
	for _, r := range l.realms {
		if r == aggressor || r == victim || !l.DefensivePacted(r, victim) || l.AtWar(r, aggressor) {
			continue
		}
		l.SetStatus(r, aggressor, War)
		l.History = append(l.History, Entry{Kind: EntryPact, From: r, To: aggressor})
		l.sink.Publish(news.Record{
			Kind:  news.KindNews,
			Realm: galaxy.NoRealm,
			Title: "Defensive pact activated",
			Text: fmt.Sprintf("%s honours its defensive pact with %s and declares war against %s!",
				l.Names(r), l.Names(victim), l.Names(aggressor)),
		})
	}
}
