package generator

import (
	"math/rand"

	"github.com/spikeekips/pyo/common"
	"github.com/spikeekips/pyo/election"
)

// Generator draws synthetic preference profiles over a fixed candidate
// set. The same seed always reproduces the same profiles.
type Generator interface {
	Candidates() election.Candidates
	Generate(n int) (election.PreferenceProfile, error)
}

func checkCandidates(candidates election.Candidates) error {
	if len(candidates) < 1 {
		return InvalidGeneratorConfigError.Newf("no candidates")
	}
	if len(candidates.Dedup()) != len(candidates) {
		return InvalidGeneratorConfigError.Newf(
			"duplicate candidates; candidates=%v", candidates.Strings(),
		)
	}

	return nil
}

// randomStrictRanking draws a uniform random full strict order.
func randomStrictRanking(candidates election.Candidates, rnd *rand.Rand) election.Ranking {
	var ranking election.Ranking
	for _, i := range rnd.Perm(len(candidates)) {
		ranking = append(ranking, election.Candidates{candidates[i]})
	}

	return ranking
}

func unitBallot(ranking election.Ranking) election.Ballot {
	return election.MustNewBallot(ranking, nil, common.OneRat)
}
