package generator

import (
	"math"
	"math/rand"

	"github.com/spikeekips/pyo/common"
	"github.com/spikeekips/pyo/election"
)

// Cumulative draws scored ballots: every voter spreads a fixed number of
// whole points over the candidates, each point landing proportionally to
// the candidate's support weight.
type Cumulative struct {
	candidates election.Candidates
	support    map[election.Candidate]float64
	points     int
	rnd        *rand.Rand
}

func NewCumulative(candidates election.Candidates, support map[election.Candidate]float64, points int, seed int64) (*Cumulative, error) {
	if err := checkCandidates(candidates); err != nil {
		return nil, err
	}
	if points < 1 {
		return nil, InvalidGeneratorConfigError.Newf("points=%d", points)
	}

	total := float64(0)
	for _, c := range candidates {
		s, found := support[c]
		if !found || s <= 0 || math.IsNaN(s) || math.IsInf(s, 0) {
			return nil, InvalidGeneratorConfigError.Newf(
				"support for candidate=%s must be positive; got=%v", c, support[c],
			)
		}
		total += s
	}
	if len(support) != len(candidates) {
		return nil, InvalidGeneratorConfigError.Newf(
			"support names unknown candidates; support=%v", support,
		)
	}

	normalized := map[election.Candidate]float64{}
	for c, s := range support {
		normalized[c] = s / total
	}

	return &Cumulative{
		candidates: candidates.Sorted(),
		support:    normalized,
		points:     points,
		rnd:        rand.New(rand.NewSource(seed)),
	}, nil
}

func (g *Cumulative) Candidates() election.Candidates {
	return g.candidates
}

func (g *Cumulative) Points() int {
	return g.points
}

func (g *Cumulative) Generate(n int) (election.PreferenceProfile, error) {
	if n < 1 {
		return election.PreferenceProfile{}, InvalidGeneratorConfigError.Newf("n=%d", n)
	}

	ballots := make([]election.Ballot, n)
	for i := 0; i < n; i++ {
		scores := map[election.Candidate]common.Rat{}
		for p := 0; p < g.points; p++ {
			c := g.pick()
			scores[c] = scores[c].Add(common.OneRat)
		}

		b, err := election.NewBallot(nil, scores, common.OneRat)
		if err != nil {
			return election.PreferenceProfile{}, err
		}
		ballots[i] = b
	}

	p, err := election.NewPreferenceProfile(ballots, g.candidates...)
	if err != nil {
		return election.PreferenceProfile{}, err
	}

	return p.Condense(), nil
}

func (g *Cumulative) pick() election.Candidate {
	pick := g.rnd.Float64()
	for _, c := range g.candidates {
		pick -= g.support[c]
		if pick <= 0 {
			return c
		}
	}

	return g.candidates[len(g.candidates)-1]
}
