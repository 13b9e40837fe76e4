package espionage

import (
	"log/slog"

	"github.com/expr-lang/expr/vm"

	"github.com/talgya/realmfleet/internal/diplomacy"
	"github.com/talgya/realmfleet/internal/entropy"
	"github.com/talgya/realmfleet/internal/mission"
	"github.com/talgya/realmfleet/internal/realm"
)

// Input is everything scoring needs to know about one spy and its target.
type Input struct {
	Attitude realm.Attitude
	Allowed  []mission.EspionageType

	AtWar              bool
	Embargoed          bool
	Allied             bool
	AtPeace            bool
	DefensivePact      bool
	Liking             diplomacy.Liking
	MilitaryDifference int
	// Attack is the acting realm's attack on the target planet, if any.
	Attack *mission.Mission

	SuccessChance   int
	DetectionChance int
}

// Assess fills the diplomatic part of an Input for spy acting against target.
func Assess(b diplomacy.Bridge, spy, target *realm.Realm, attack *mission.Mission) Input {
	return Input{
		Attitude:           spy.Attitude,
		AtWar:              b.AtWar(spy.ID, target.ID),
		Embargoed:          b.Embargoed(spy.ID, target.ID),
		Allied:             b.Allied(spy.ID, target.ID),
		AtPeace:            b.AtPeace(spy.ID, target.ID),
		DefensivePact:      b.DefensivePacted(spy.ID, target.ID),
		Liking:             b.Liking(spy.ID, target.ID),
		MilitaryDifference: b.MilitaryDifference(spy.ID, target.ID),
		Attack:             attack,
	}
}

func (in Input) env() RuleEnv {
	env := RuleEnv{
		Attitude:           in.Attitude.String(),
		AtWar:              in.AtWar,
		Embargoed:          in.Embargoed,
		Allied:             in.Allied,
		AtPeace:            in.AtPeace,
		DefensivePact:      in.DefensivePact,
		MilitaryDifference: in.MilitaryDifference,
	}
	if in.Attack != nil {
		env.AttackPhase = in.Attack.Phase.String()
	}
	return env
}

// Scored is one action with its final score.
type Scored struct {
	Action mission.EspionageType
	Score  int
}

// Scorer evaluates compiled modifier rules.
type Scorer struct {
	rules []*Rule
}

// NewScorer compiles rules. A rule that fails to compile is an error.
func NewScorer(rules []*Rule) (*Scorer, error) {
	compiled, err := compileRules(rules)
	if err != nil {
		return nil, err
	}
	return &Scorer{rules: compiled}, nil
}

// NewDefaultScorer compiles DefaultRules.
func NewDefaultScorer() (*Scorer, error) {
	return NewScorer(DefaultRules())
}

// Score returns the final score of every allowed action, in input order.
// Every score lies in [0, SuccessChance].
func (s *Scorer) Score(in Input) []Scored {
	risk := RiskFactor(in.Attitude)
	env := in.env()
	ceiling := max(in.SuccessChance, 0)

	out := make([]Scored, 0, len(in.Allowed))
	for _, action := range in.Allowed {
		env.Action = action.String()
		score := BaseScore(in.Attitude, action)
		vetoed := false

		for _, r := range s.rules {
			if !r.appliesTo(action) {
				continue
			}
			result, err := vm.Run(r.program, env)
			if err != nil {
				slog.Warn("espionage rule error", "rule", r.Name, "error", err)
				continue
			}
			if match, ok := result.(bool); !ok || !match {
				continue
			}
			if r.Veto {
				vetoed = true
				continue
			}
			score += r.Delta
		}

		adjust := likingBonus[in.Liking] * risk / 3
		if action == mission.GainTrust {
			adjust = -adjust
		}
		score += adjust
		score -= in.DetectionChance / risk

		if vetoed {
			score = 0
		}
		score = min(max(score, 0), ceiling)
		out = append(out, Scored{Action: action, Score: score})
	}
	return out
}

// Choose scores the allowed actions and draws one by weighted lottery. When
// every score is zero the pick is uniform. Returns EspionageNone only when no
// action is allowed.
func (s *Scorer) Choose(rng entropy.Source, in Input) mission.EspionageType {
	if len(in.Allowed) == 0 {
		return mission.EspionageNone
	}
	scored := s.Score(in)
	total := 0
	for _, sc := range scored {
		total += sc.Score
	}
	if total == 0 {
		return in.Allowed[rng.IntN(len(in.Allowed))]
	}

	draw := rng.IntN(total)
	cumulative := 0
	for _, sc := range scored {
		cumulative += sc.Score
		if draw < cumulative {
			return sc.Action
		}
	}
	return scored[len(scored)-1].Action
}
