// Package simulation runs synthetic leagues against the rating engine:
// competitors with hidden true skills play sampled matches, every outcome
// is rated, and the trajectory of each belief is recorded for export.
package simulation

import (
	"fmt"
	"sort"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"

	"skillrank/rating"
)

// Fraction of beta used as the simulator's draw threshold on sampled
// performance differences.
const drawThresholdFactor = 0.1

// Competitor pairs a hidden true skill with the rated belief about it.
type Competitor struct {
	TrueSkill float64
	Player    *rating.Player
}

// MatchRecord captures one simulated match and the internals of its
// rating update.
type MatchRecord struct {
	Match   int
	Home    string
	Away    string
	Outcome string // "home", "away" or "draw"
	C       float64
	T       float64
	V       float64
	W       float64
}

// HistoryRecord captures one participant's belief after one match.
type HistoryRecord struct {
	Match  int
	Player string
	Mu     float64
	Sigma  float64
}

// Standing is one leaderboard row, ordered by conservative rating.
type Standing struct {
	Player       string
	TrueSkill    float64
	Mu           float64
	Sigma        float64
	Conservative float64
}

// League owns a set of competitors and the environment that rates them.
// It is the single writer for its players; Run must not be called
// concurrently with anything touching the same league.
type League struct {
	env         *rating.Env
	rng         *rand.Rand
	competitors []*Competitor
}

func NewLeague(env *rating.Env, seed uint64) *League {
	return &League{
		env: env,
		rng: rand.New(rand.NewSource(seed)),
	}
}

// AddCompetitor registers a competitor with the given hidden true skill.
// Names identify players in records and must be unique within a league.
func (l *League) AddCompetitor(name string, trueSkill float64) *Competitor {
	c := &Competitor{
		TrueSkill: trueSkill,
		Player:    l.env.MakePlayer(name),
	}
	l.competitors = append(l.competitors, c)
	return c
}

// Run plays the given number of randomly-paired one-on-one matches,
// rating each outcome, and returns the match and history records.
func (l *League) Run(matches int) ([]MatchRecord, []HistoryRecord, error) {
	if len(l.competitors) < 2 {
		return nil, nil, fmt.Errorf("simulation: need at least 2 competitors, got %d", len(l.competitors))
	}
	if matches < 1 {
		return nil, nil, fmt.Errorf("simulation: need at least 1 match, got %d", matches)
	}

	log.Info().Msgf("starting league run of %d matches with %d competitors...", matches, len(l.competitors))

	matchRecords := make([]MatchRecord, 0, matches)
	historyRecords := make([]HistoryRecord, 0, 2*matches)

	for m := 1; m <= matches; m++ {
		home, away := l.pickPair()

		ranks := l.playMatch(home, away)
		outcome := "draw"
		if ranks[0] < ranks[1] {
			outcome = "home"
		} else if ranks[1] < ranks[0] {
			outcome = "away"
		}

		teams := []rating.Team{{home.Player}, {away.Player}}
		reports, err := l.env.Rate(teams, ranks, true)
		if err != nil {
			return nil, nil, fmt.Errorf("simulation: match %d: %w", m, err)
		}
		report := reports[0]

		matchRecords = append(matchRecords, MatchRecord{
			Match:   m,
			Home:    home.Player.Name,
			Away:    away.Player.Name,
			Outcome: outcome,
			C:       report.C,
			T:       report.T,
			V:       report.V,
			W:       report.W,
		})
		for _, c := range []*Competitor{home, away} {
			historyRecords = append(historyRecords, HistoryRecord{
				Match:  m,
				Player: c.Player.Name,
				Mu:     c.Player.Mu,
				Sigma:  c.Player.Sigma,
			})
		}

		log.Debug().Msgf("match %d of %d: %s vs %s ended %s", m, matches, home.Player.Name, away.Player.Name, outcome)
	}

	log.Info().Msgf("completed league run of %d matches", matches)
	return matchRecords, historyRecords, nil
}

// Standings returns the leaderboard sorted by conservative rating,
// best first.
func (l *League) Standings() []Standing {
	standings := make([]Standing, len(l.competitors))
	for i, c := range l.competitors {
		standings[i] = Standing{
			Player:       c.Player.Name,
			TrueSkill:    c.TrueSkill,
			Mu:           c.Player.Mu,
			Sigma:        c.Player.Sigma,
			Conservative: c.Player.Conservative(),
		}
	}
	sort.SliceStable(standings, func(i, j int) bool {
		return standings[i].Conservative > standings[j].Conservative
	})
	return standings
}

// pickPair draws two distinct competitors uniformly.
func (l *League) pickPair() (*Competitor, *Competitor) {
	i := l.rng.Intn(len(l.competitors))
	j := l.rng.Intn(len(l.competitors) - 1)
	if j >= i {
		j++
	}
	return l.competitors[i], l.competitors[j]
}

// playMatch samples one observed performance per side, skill plus
// N(0, beta^2) noise, and returns the ranks: [0,1] home win, [1,0] away
// win, [0,0] draw when the gap is inside the simulator threshold.
func (l *League) playMatch(home, away *Competitor) []int {
	beta := l.env.Beta()
	perfHome := home.TrueSkill + l.rng.NormFloat64()*beta
	perfAway := away.TrueSkill + l.rng.NormFloat64()*beta

	diff := perfHome - perfAway
	threshold := drawThresholdFactor * beta
	switch {
	case diff > threshold:
		return []int{0, 1}
	case diff < -threshold:
		return []int{1, 0}
	default:
		return []int{0, 0}
	}
}
