package election

import (
	"encoding/json"

	"github.com/spikeekips/pyo/common"
)

type BordaConvention uint

const (
	// BordaAverage splits the points a tied block spans evenly across
	// the block.
	BordaAverage BordaConvention = iota
	// BordaHigh gives every candidate in a tied block the points of the
	// block's best position.
	BordaHigh
	// BordaLow gives every candidate in a tied block the points of the
	// block's worst position.
	BordaLow
)

func (c BordaConvention) String() string {
	switch c {
	case BordaAverage:
		return "average"
	case BordaHigh:
		return "high"
	case BordaLow:
		return "low"
	default:
		return ""
	}
}

func (c BordaConvention) IsValid() bool {
	switch c {
	case BordaAverage, BordaHigh, BordaLow:
		return true
	default:
		return false
	}
}

func (c BordaConvention) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.String())
}

// NewBorda elects the candidates with the highest Borda scores under the
// classic vector: a candidate ranked alone in position i on a ballot over
// n candidates earns n-i+1 points, tied and unranked candidates split the
// points their positions cover.
func NewBorda(p PreferenceProfile, config Config) (Rule, error) {
	return newOneShotRule("borda", p, config.Seats, config.Tiebreak, config.Seed, BordaScores)
}

// NewBordaVector counts with a caller-supplied position score vector and
// tie convention. The vector holds one non-negative, non-increasing entry
// per candidate, best position first.
func NewBordaVector(
	p PreferenceProfile,
	config Config,
	vector []common.Rat,
	convention BordaConvention,
) (Rule, error) {
	if !convention.IsValid() {
		return nil, InvalidConfigError.Newf("unknown borda convention=%d", convention)
	}
	if err := ValidateBordaVector(vector, p.Candidates().Len()); err != nil {
		return nil, err
	}

	score := func(p PreferenceProfile, candidates Candidates) map[Candidate]common.Rat {
		scores, _ := BordaScoresVector(p, candidates, vector, convention)

		return scores
	}

	return newOneShotRule("borda", p, config.Seats, config.Tiebreak, config.Seed, score)
}
