package election

import (
	"github.com/spikeekips/pyo/common"
)

// The score-family rules sum each ballot's declared support per candidate
// and elect the top seats. They differ only in the budget each ballot must
// respect; a ballot over budget is rejected at construction, never
// silently truncated.

// NewGeneralRating places no budget on ballots.
func NewGeneralRating(p PreferenceProfile, config Config) (Rule, error) {
	return newScoreRule("general-rating", p, config, nil)
}

// NewRating caps each candidate's score on a ballot at `limit`.
func NewRating(p PreferenceProfile, config Config, limit common.Rat) (Rule, error) {
	return newScoreRule("rating", p, config, func(b Ballot) error {
		for _, c := range scoredCandidates(b) {
			if b.Score(c).Cmp(limit) > 0 {
				return InvalidBallotError.Newf(
					"score=%s for candidate=%s exceeds limit=%s",
					b.Score(c), c, limit,
				)
			}
		}

		return nil
	})
}

// NewLimited caps each ballot's total score at `budget`.
func NewLimited(p PreferenceProfile, config Config, budget common.Rat) (Rule, error) {
	return newScoreRule("limited", p, config, func(b Ballot) error {
		total := ballotScoreTotal(b)
		if total.Cmp(budget) > 0 {
			return InvalidBallotError.Newf(
				"total score=%s exceeds budget=%s", total, budget,
			)
		}

		return nil
	})
}

// NewCumulative lets each ballot spread as many points as there are
// seats across the candidates.
func NewCumulative(p PreferenceProfile, config Config) (Rule, error) {
	budget := common.NewRatFromInt(int64(config.Seats))

	return newScoreRule("cumulative", p, config, func(b Ballot) error {
		total := ballotScoreTotal(b)
		if total.Cmp(budget) > 0 {
			return InvalidBallotError.Newf(
				"total score=%s exceeds seats=%d", total, config.Seats,
			)
		}

		return nil
	})
}

// NewApproval admits only unit scores; a ballot approves a candidate
// or leaves it alone.
func NewApproval(p PreferenceProfile, config Config) (Rule, error) {
	return newScoreRule("approval", p, config, func(b Ballot) error {
		for _, c := range scoredCandidates(b) {
			if !b.Score(c).Equal(common.OneRat) {
				return InvalidBallotError.Newf(
					"score=%s for candidate=%s is not an approval", b.Score(c), c,
				)
			}
		}

		return nil
	})
}

func newScoreRule(name string, p PreferenceProfile, config Config, check func(Ballot) error) (Rule, error) {
	if check != nil {
		for _, b := range p.Ballots() {
			if err := check(b); err != nil {
				return nil, err
			}
		}
	}

	return newOneShotRule(name, p, config.Seats, config.Tiebreak, config.Seed, ScoreTallies)
}

func scoredCandidates(b Ballot) Candidates {
	var cands Candidates
	for c := range b.Scores() {
		cands = append(cands, c)
	}

	return cands.Sorted()
}

func ballotScoreTotal(b Ballot) common.Rat {
	total := common.ZeroRat
	for _, c := range scoredCandidates(b) {
		total = total.Add(b.Score(c))
	}

	return total
}
