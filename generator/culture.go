package generator

import (
	"math/rand"

	"github.com/spikeekips/pyo/election"
)

// ImpartialCulture draws every ballot as an independent uniform random
// strict ranking.
type ImpartialCulture struct {
	candidates election.Candidates
	rnd        *rand.Rand
}

func NewImpartialCulture(candidates election.Candidates, seed int64) (*ImpartialCulture, error) {
	if err := checkCandidates(candidates); err != nil {
		return nil, err
	}

	return &ImpartialCulture{
		candidates: candidates.Sorted(),
		rnd:        rand.New(rand.NewSource(seed)),
	}, nil
}

func (g *ImpartialCulture) Candidates() election.Candidates {
	return g.candidates
}

func (g *ImpartialCulture) Generate(n int) (election.PreferenceProfile, error) {
	if n < 1 {
		return election.PreferenceProfile{}, InvalidGeneratorConfigError.Newf("n=%d", n)
	}

	ballots := make([]election.Ballot, n)
	for i := 0; i < n; i++ {
		ballots[i] = unitBallot(randomStrictRanking(g.candidates, g.rnd))
	}

	p, err := election.NewPreferenceProfile(ballots, g.candidates...)
	if err != nil {
		return election.PreferenceProfile{}, err
	}

	return p.Condense(), nil
}

// ImpartialAnonymousCulture runs a Polya urn over the rankings: each new
// ballot either copies one already drawn or is a fresh uniform ranking,
// with the copy odds growing as the urn fills.
type ImpartialAnonymousCulture struct {
	candidates election.Candidates
	rnd        *rand.Rand
}

func NewImpartialAnonymousCulture(candidates election.Candidates, seed int64) (*ImpartialAnonymousCulture, error) {
	if err := checkCandidates(candidates); err != nil {
		return nil, err
	}

	return &ImpartialAnonymousCulture{
		candidates: candidates.Sorted(),
		rnd:        rand.New(rand.NewSource(seed)),
	}, nil
}

func (g *ImpartialAnonymousCulture) Candidates() election.Candidates {
	return g.candidates
}

func (g *ImpartialAnonymousCulture) Generate(n int) (election.PreferenceProfile, error) {
	if n < 1 {
		return election.PreferenceProfile{}, InvalidGeneratorConfigError.Newf("n=%d", n)
	}

	distinct := float64(1)
	for i := 2; i <= len(g.candidates); i++ {
		distinct *= float64(i)
	}

	var drawn []election.Ranking
	for i := 0; i < n; i++ {
		// urn starts with one copy of each ranking; every draw returns
		// with an extra copy
		if len(drawn) > 0 && g.rnd.Float64() < float64(len(drawn))/(distinct+float64(len(drawn))) {
			drawn = append(drawn, drawn[g.rnd.Intn(len(drawn))].Copy())
			continue
		}
		drawn = append(drawn, randomStrictRanking(g.candidates, g.rnd))
	}

	ballots := make([]election.Ballot, len(drawn))
	for i, ranking := range drawn {
		ballots[i] = unitBallot(ranking)
	}

	p, err := election.NewPreferenceProfile(ballots, g.candidates...)
	if err != nil {
		return election.PreferenceProfile{}, err
	}

	return p.Condense(), nil
}
