package realm

import "github.com/talgya/realmfleet/internal/galaxy"

// Job is what a leader is currently doing.
type Job uint8

const (
	JobUnassigned Job = iota
	JobGovernor
	JobCommander
	JobPrisoner
	JobDead
)

// Perk is a leader ability.
type Perk uint8

const (
	// PerkWealthy lets a leader buy their way out of trouble once.
	PerkWealthy Perk = iota
	PerkSpymaster
)

// Leader is a governor or fleet commander.
type Leader struct {
	ID         galaxy.LeaderID `json:"id"`
	Name       string          `json:"name"`
	Job        Job             `json:"job"`
	Experience int             `json:"experience"`
	Perks      []Perk          `json:"perks"`
	// PrisonTime counts remaining turns while Job is JobPrisoner.
	PrisonTime int `json:"prison_time"`
}

// HasPerk reports whether the leader has perk p.
func (l *Leader) HasPerk(p Perk) bool {
	for _, have := range l.Perks {
		if have == p {
			return true
		}
	}
	return false
}

// UsePerk consumes perk p. Returns false if the leader did not have it.
func (l *Leader) UsePerk(p Perk) bool {
	for i, have := range l.Perks {
		if have == p {
			l.Perks = append(l.Perks[:i], l.Perks[i+1:]...)
			return true
		}
	}
	return false
}

// Leader returns the realm's leader with the given ID, or nil.
func (r *Realm) Leader(id galaxy.LeaderID) *Leader {
	if id == galaxy.NoLeader {
		return nil
	}
	for _, l := range r.Leaders {
		if l.ID == id {
			return l
		}
	}
	return nil
}

// AddLeader registers a leader with the realm.
func (r *Realm) AddLeader(l *Leader) {
	r.Leaders = append(r.Leaders, l)
}

// ServePrisonTime counts down every imprisoned leader; freed leaders become unassigned.
func (r *Realm) ServePrisonTime() {
	for _, l := range r.Leaders {
		if l.Job != JobPrisoner {
			continue
		}
		l.PrisonTime--
		if l.PrisonTime <= 0 {
			l.PrisonTime = 0
			l.Job = JobUnassigned
		}
	}
}
