package election

import (
	"sort"

	"github.com/spikeekips/pyo/common"
)

// FirstPlaceTallies credits each ballot's weight to its top choice among
// the given candidates. A ballot whose top tier holds several of them
// splits its weight evenly across the tier.
func FirstPlaceTallies(p PreferenceProfile, candidates Candidates) map[Candidate]common.Rat {
	tallies := map[Candidate]common.Rat{}
	for _, c := range candidates {
		tallies[c] = common.ZeroRat
	}

	for _, b := range p.Ballots() {
		tier, found := b.FirstPreferenceTier(candidates)
		if !found {
			continue
		}

		share, ok := b.Weight().QuoOK(common.NewRatFromInt(int64(len(tier))))
		if !ok {
			continue
		}
		for _, c := range tier {
			tallies[c] = tallies[c].Add(share)
		}
	}

	return tallies
}

// DefaultBordaVector builds the classic position scores over n
// candidates: n points for the top position down to one for the last.
func DefaultBordaVector(n int) []common.Rat {
	vector := make([]common.Rat, n)
	for i := 0; i < n; i++ {
		vector[i] = common.NewRatFromInt(int64(n - i))
	}

	return vector
}

// ValidateBordaVector rejects a position score vector that does not hold
// one non-negative, non-increasing entry per candidate.
func ValidateBordaVector(vector []common.Rat, n int) error {
	if len(vector) != n {
		return InvalidConfigError.Newf(
			"score vector length=%d, candidates=%d", len(vector), n,
		)
	}
	for i, v := range vector {
		if v.IsNegative() {
			return InvalidConfigError.Newf("negative score vector entry; position=%d", i+1)
		}
		if i > 0 && vector[i-1].Cmp(v) < 0 {
			return InvalidConfigError.Newf("increasing score vector entry; position=%d", i+1)
		}
	}

	return nil
}

// BordaScores computes the classic Borda count: a candidate ranked alone
// in position i earns n-i+1 points, tied and unranked candidates split
// the points their positions span evenly.
func BordaScores(p PreferenceProfile, candidates Candidates) map[Candidate]common.Rat {
	scores, _ := BordaScoresVector(p, candidates, DefaultBordaVector(len(candidates)), BordaAverage)

	return scores
}

// BordaScoresVector computes Borda points from a caller-supplied position
// score vector. The convention decides what every candidate in a block of
// tied or unranked candidates earns from the positions it covers.
func BordaScoresVector(
	p PreferenceProfile,
	candidates Candidates,
	vector []common.Rat,
	convention BordaConvention,
) (map[Candidate]common.Rat, error) {
	if !convention.IsValid() {
		return nil, InvalidConfigError.Newf("unknown borda convention=%d", convention)
	}
	if err := ValidateBordaVector(vector, len(candidates)); err != nil {
		return nil, err
	}

	n := len(candidates)
	scores := map[Candidate]common.Rat{}
	for _, c := range candidates {
		scores[c] = common.ZeroRat
	}

	for _, b := range p.Ballots() {
		seen := map[Candidate]bool{}
		position := 0

		for _, tier := range b.Ranking() {
			var present Candidates
			for _, c := range tier {
				if _, found := scores[c]; found && !seen[c] {
					present = append(present, c)
				}
			}
			if len(present) < 1 {
				continue
			}

			share := bordaBlockShare(vector, position, len(present), convention)
			for _, c := range present {
				scores[c] = scores[c].Add(share.Mul(b.Weight()))
				seen[c] = true
			}
			position += len(present)
		}

		if unranked := n - position; unranked > 0 {
			share := bordaBlockShare(vector, position, unranked, convention)
			for _, c := range candidates {
				if seen[c] {
					continue
				}
				scores[c] = scores[c].Add(share.Mul(b.Weight()))
			}
		}
	}

	return scores, nil
}

// bordaBlockShare is what one candidate in a block covering positions
// start..start+size-1 earns under the convention.
func bordaBlockShare(vector []common.Rat, start, size int, convention BordaConvention) common.Rat {
	switch convention {
	case BordaHigh:
		return vector[start]
	case BordaLow:
		return vector[start+size-1]
	default:
		points := common.ZeroRat
		for i := start; i < start+size; i++ {
			points = points.Add(vector[i])
		}
		share, _ := points.QuoOK(common.NewRatFromInt(int64(size)))

		return share
	}
}

// BlocTallies credits each ballot's weight to its top `slots` candidates.
// A tier straddling the last slot splits the leftover weight evenly
// across the tier.
func BlocTallies(p PreferenceProfile, candidates Candidates, slots int) map[Candidate]common.Rat {
	tallies := map[Candidate]common.Rat{}
	for _, c := range candidates {
		tallies[c] = common.ZeroRat
	}

	for _, b := range p.Ballots() {
		left := slots
		for _, tier := range b.Ranking() {
			if left < 1 {
				break
			}

			var present Candidates
			for _, c := range tier {
				if _, found := tallies[c]; found {
					present = append(present, c)
				}
			}
			if len(present) < 1 {
				continue
			}

			if len(present) <= left {
				for _, c := range present {
					tallies[c] = tallies[c].Add(b.Weight())
				}
				left -= len(present)
				continue
			}

			share, _ := b.Weight().Mul(common.NewRatFromInt(int64(left))).
				QuoOK(common.NewRatFromInt(int64(len(present))))
			for _, c := range present {
				tallies[c] = tallies[c].Add(share)
			}
			left = 0
		}
	}

	return tallies
}

// ScoreTallies sums each ballot's weighted score per candidate; absent
// scores count as zero.
func ScoreTallies(p PreferenceProfile, candidates Candidates) map[Candidate]common.Rat {
	tallies := map[Candidate]common.Rat{}
	for _, c := range candidates {
		tallies[c] = common.ZeroRat
	}

	for _, b := range p.Ballots() {
		for _, c := range candidates {
			s := b.Score(c)
			if s.IsZero() {
				continue
			}
			tallies[c] = tallies[c].Add(s.Mul(b.Weight()))
		}
	}

	return tallies
}

// RankByScore orders candidates into tiers by descending score; equal
// scores share a tier. Within a tier candidates sort lexicographically
// for stable output.
func RankByScore(scores map[Candidate]common.Rat) Ranking {
	var cands Candidates
	for c := range scores {
		cands = append(cands, c)
	}
	cands = cands.Sorted()

	sort.SliceStable(cands, func(i, j int) bool {
		return scores[cands[i]].Cmp(scores[cands[j]]) > 0
	})

	var ranking Ranking
	for _, c := range cands {
		if len(ranking) > 0 {
			last := ranking[len(ranking)-1]
			if scores[last[0]].Equal(scores[c]) {
				ranking[len(ranking)-1] = append(last, c)
				continue
			}
		}
		ranking = append(ranking, Candidates{c})
	}

	return ranking
}
