package rating

import (
	"fmt"
	"math"
	"sort"

	"skillrank/gaussian"
)

// Variance floor applied after every update, keeping sigma positive
// against floating-point cancellation.
const varianceFloor = 1e-9

// Team is a group of players whose skills sum into one team performance.
type Team []*Player

// Rate updates the beliefs of every player in teams from one match
// outcome, in place. ranks must have one entry per team; a lower rank is
// a better placement and equal ranks tie those teams. Reports, one per
// pairwise sub-update, are collected only when wantReports is set.
//
// Preconditions: len(teams) == len(ranks), at least two teams, no empty
// team. A player appearing on two teams of the same call is not detected
// and produces meaningless updates; callers keep rosters disjoint.
//
// A match with more than two teams is decomposed into pairwise updates
// between rank-adjacent teams, which approximates the joint multi-team
// inference with N-1 local updates. The decomposition is stable for tied
// ranks, and tied adjacent pairs are rated as draws.
func (e *Env) Rate(teams []Team, ranks []int, wantReports bool) ([]Report, error) {
	if len(teams) != len(ranks) {
		return nil, fmt.Errorf("rating: got %d teams but %d ranks", len(teams), len(ranks))
	}
	if len(teams) < 2 {
		return nil, fmt.Errorf("rating: need at least 2 teams, got %d", len(teams))
	}
	for i, team := range teams {
		if len(team) == 0 {
			return nil, fmt.Errorf("rating: team %d is empty", i)
		}
	}

	// Skill volatility between observations: inflate every participant's
	// uncertainty once per match, before any outcome is applied.
	for _, team := range teams {
		for _, p := range team {
			p.Sigma = math.Sqrt(p.Sigma*p.Sigma + e.tau*e.tau)
		}
	}

	if len(teams) == 2 {
		isDraw := ranks[0] == ranks[1]
		winner, loser := teams[0], teams[1]
		if !isDraw && ranks[1] < ranks[0] {
			winner, loser = loser, winner
		}
		report := e.rateTwoTeams(winner, loser, isDraw, wantReports)
		if !wantReports {
			return nil, nil
		}
		return []Report{*report}, nil
	}

	order := make([]int, len(teams))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(i, j int) bool {
		return ranks[order[i]] < ranks[order[j]]
	})

	var reports []Report
	for i := 0; i < len(order)-1; i++ {
		a, b := order[i], order[i+1]
		report := e.rateTwoTeams(teams[a], teams[b], ranks[a] == ranks[b], wantReports)
		if wantReports {
			reports = append(reports, *report)
		}
	}
	if !wantReports {
		return nil, nil
	}
	return reports, nil
}

// rateTwoTeams applies one expectation-propagation message exchange
// between a winner and a loser team (or a tied pair when isDraw is set).
// Drift has already been applied by Rate.
func (e *Env) rateTwoTeams(winner, loser Team, isDraw, collect bool) *Report {
	// Team-sum factor: team skill is the sum of member skills.
	var muW, muL, sig2W, sig2L float64
	var perfNoise float64
	for _, p := range winner {
		muW += p.Mu
		sig2W += p.Sigma * p.Sigma
		perfNoise += e.beta*e.beta + e.trust*p.Sigma*p.Sigma
	}
	for _, p := range loser {
		muL += p.Mu
		sig2L += p.Sigma * p.Sigma
		perfNoise += e.beta*e.beta + e.trust*p.Sigma*p.Sigma
	}

	c := math.Sqrt(sig2W + sig2L + perfNoise)
	t := (muW - muL) / c

	// The margin is calibrated in performance-difference space, so it is
	// rescaled by c before entering the normalized truncation.
	var v, w float64
	if isDraw {
		v = gaussian.VDraw(t, e.eps/c)
		w = gaussian.WDraw(t, e.eps/c)
	} else {
		v = gaussian.VWin(t)
		w = gaussian.WWin(t)
	}

	var report *Report
	if collect {
		report = &Report{
			IsDraw:   isDraw,
			Eps:      e.eps,
			C:        c,
			T:        t,
			V:        v,
			W:        w,
			Winners:  teamNames(winner),
			Losers:   teamNames(loser),
			DeltaMu:  make(map[string]float64, len(winner)+len(loser)),
			NewSigma: make(map[string]float64, len(winner)+len(loser)),
		}
	}

	apply := func(team Team, sign float64) {
		for _, p := range team {
			sigma2 := p.Sigma * p.Sigma
			oldMu := p.Mu
			p.Mu += sign * (sigma2 / c) * v
			p.Sigma = math.Sqrt(math.Max(varianceFloor, sigma2*(1.0-(sigma2/(c*c))*w)))
			if report != nil {
				report.DeltaMu[p.Name] = p.Mu - oldMu
				report.NewSigma[p.Name] = p.Sigma
			}
		}
	}
	apply(winner, 1.0)
	apply(loser, -1.0)

	return report
}

func teamNames(team Team) []string {
	names := make([]string, len(team))
	for i, p := range team {
		names[i] = p.Name
	}
	return names
}
