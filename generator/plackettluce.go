package generator

import (
	"math"
	"math/rand"

	"github.com/spikeekips/pyo/election"
)

// PlackettLuce builds each ballot by sampling candidates one position at
// a time without replacement, proportionally to a fixed support weight
// per candidate.
type PlackettLuce struct {
	candidates election.Candidates
	support    map[election.Candidate]float64
	rnd        *rand.Rand
}

func NewPlackettLuce(candidates election.Candidates, support map[election.Candidate]float64, seed int64) (*PlackettLuce, error) {
	if err := checkCandidates(candidates); err != nil {
		return nil, err
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

	return &PlackettLuce{
		candidates: candidates.Sorted(),
		support:    normalized,
		rnd:        rand.New(rand.NewSource(seed)),
	}, nil
}

// NewDirichletPlackettLuce draws the support weights from a symmetric
// Dirichlet with the given concentration; small alpha gives lopsided
// support, large alpha near-uniform.
func NewDirichletPlackettLuce(candidates election.Candidates, alpha float64, seed int64) (*PlackettLuce, error) {
	if err := checkCandidates(candidates); err != nil {
		return nil, err
	}
	if alpha <= 0 || math.IsNaN(alpha) || math.IsInf(alpha, 0) {
		return nil, InvalidGeneratorConfigError.Newf("alpha=%v", alpha)
	}

	rnd := rand.New(rand.NewSource(seed))

	support := map[election.Candidate]float64{}
	for _, c := range candidates.Sorted() {
		support[c] = sampleGamma(alpha, rnd)
	}

	return NewPlackettLuce(candidates, support, rnd.Int63())
}

func (g *PlackettLuce) Candidates() election.Candidates {
	return g.candidates
}

func (g *PlackettLuce) Support(c election.Candidate) float64 {
	return g.support[c]
}

func (g *PlackettLuce) Generate(n int) (election.PreferenceProfile, error) {
	if n < 1 {
		return election.PreferenceProfile{}, InvalidGeneratorConfigError.Newf("n=%d", n)
	}

	ballots := make([]election.Ballot, n)
	for i := 0; i < n; i++ {
		ballots[i] = unitBallot(g.sampleRanking())
	}

	p, err := election.NewPreferenceProfile(ballots, g.candidates...)
	if err != nil {
		return election.PreferenceProfile{}, err
	}

	return p.Condense(), nil
}

func (g *PlackettLuce) sampleRanking() election.Ranking {
	pool := g.Candidates()

	var ranking election.Ranking
	for len(pool) > 0 {
		total := float64(0)
		for _, c := range pool {
			total += g.support[c]
		}

		pick := g.rnd.Float64() * total
		chosen := pool[len(pool)-1]
		for _, c := range pool {
			pick -= g.support[c]
			if pick <= 0 {
				chosen = c
				break
			}
		}

		ranking = append(ranking, election.Candidates{chosen})
		pool = pool.Without(chosen)
	}

	return ranking
}

// sampleGamma draws from Gamma(shape, 1) by Marsaglia and Tsang, with
// the usual boost for shape below one.
func sampleGamma(shape float64, rnd *rand.Rand) float64 {
	if shape < 1 {
		return sampleGamma(shape+1, rnd) * math.Pow(rnd.Float64(), 1/shape)
	}

	d := shape - 1.0/3.0
	c := 1 / math.Sqrt(9*d)

	for {
		x := rnd.NormFloat64()
		v := 1 + c*x
		if v <= 0 {
			continue
		}
		v = v * v * v

		u := rnd.Float64()
		if u < 1-0.0331*x*x*x*x {
			return d * v
		}
		if math.Log(u) < 0.5*x*x+d*(1-v+math.Log(v)) {
			return d * v
		}
	}
}
