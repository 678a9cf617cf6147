package election

import (
	"github.com/spikeekips/pyo/common"
)

// ResolveRankingTies expands every ballot holding tied tiers into all
// strict orderings consistent with it, splitting the ballot's weight
// evenly across them. The expansion is factorial in tier size, so it
// suits the small tied tiers real ballots carry.
func ResolveRankingTies(p PreferenceProfile) PreferenceProfile {
	var ballots []Ballot
	for _, b := range p.Ballots() {
		if !b.Ranking().HasTies() {
			ballots = append(ballots, b)
			continue
		}

		linear := linearExtensions(b.Ranking())
		share, ok := b.Weight().QuoOK(common.NewRatFromInt(int64(len(linear))))
		if !ok {
			ballots = append(ballots, b)
			continue
		}

		for _, ranking := range linear {
			nb, err := NewBallot(ranking, b.Scores(), share, b.Voters()...)
			if err != nil {
				continue
			}
			ballots = append(ballots, nb)
		}
	}

	stripped, _ := NewPreferenceProfile(ballots, p.Candidates()...)

	return stripped.Condense()
}

// linearExtensions lists every strict ranking consistent with the tiered
// one, as the cartesian product of per-tier permutations.
func linearExtensions(ranking Ranking) []Ranking {
	out := []Ranking{nil}
	for _, tier := range ranking {
		var grown []Ranking
		for _, prefix := range out {
			for _, perm := range permuteCandidates(tier) {
				next := prefix.Copy()
				for _, c := range perm {
					next = append(next, Candidates{c})
				}
				grown = append(grown, next)
			}
		}
		out = grown
	}

	return out
}

func permuteCandidates(cs Candidates) []Candidates {
	if len(cs) < 2 {
		return []Candidates{cs}
	}

	var out []Candidates
	for i, c := range cs {
		rest := make(Candidates, 0, len(cs)-1)
		rest = append(rest, cs[:i]...)
		rest = append(rest, cs[i+1:]...)

		for _, tail := range permuteCandidates(rest) {
			perm := append(Candidates{c}, tail...)
			out = append(out, perm)
		}
	}

	return out
}
