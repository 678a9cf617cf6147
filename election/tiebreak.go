package election

import (
	"encoding/json"
	"math/rand"

	"github.com/spikeekips/pyo/common"
)

type TiebreakKind uint

const (
	// TiebreakNone refuses to break ties; a tie surfaces as
	// TiebreakRequiredError.
	TiebreakNone TiebreakKind = iota
	// TiebreakRandom orders the tied candidates uniformly at random.
	TiebreakRandom
	// TiebreakFirstPlace orders by first-place tallies over the full
	// profile; a residual tie surfaces as TiebreakRequiredError.
	TiebreakFirstPlace
	// TiebreakBorda orders by Borda scores over the full profile; a
	// residual tie surfaces as TiebreakRequiredError.
	TiebreakBorda
)

func (t TiebreakKind) String() string {
	switch t {
	case TiebreakNone:
		return "none"
	case TiebreakRandom:
		return "random"
	case TiebreakFirstPlace:
		return "firstplace"
	case TiebreakBorda:
		return "borda"
	default:
		return ""
	}
}

func (t TiebreakKind) IsValid() bool {
	switch t {
	case TiebreakNone, TiebreakRandom, TiebreakFirstPlace, TiebreakBorda:
		return true
	default:
		return false
	}
}

func (t TiebreakKind) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

// BreakTie returns the tied candidates in a strict order, strongest first.
// Callers take the head when electing and the tail when eliminating.
func (t TiebreakKind) BreakTie(tied Candidates, p PreferenceProfile, rnd *rand.Rand) (Candidates, error) {
	if len(tied) < 1 {
		return nil, TiebreakRequiredError.Newf("no candidates tied")
	}
	if len(tied) == 1 {
		return tied.Sorted(), nil
	}

	switch t {
	case TiebreakNone:
		return nil, TiebreakRequiredError.Newf("tied=%v", tied.Sorted().Strings())
	case TiebreakRandom:
		return shuffleCandidates(tied, rnd)
	case TiebreakFirstPlace:
		return breakTieByScore(tied, FirstPlaceTallies(p, tied))
	case TiebreakBorda:
		return breakTieByScore(tied, BordaScores(p, p.Candidates()))
	default:
		return nil, InvalidConfigError.Newf("unknown tiebreak kind=%d", t)
	}
}

func shuffleCandidates(cs Candidates, rnd *rand.Rand) (Candidates, error) {
	if rnd == nil {
		return nil, InvalidConfigError.Newf("random source is not set")
	}

	sorted := cs.Sorted()
	out := make(Candidates, len(sorted))
	for i, j := range rnd.Perm(len(sorted)) {
		out[j] = sorted[i]
	}

	return out, nil
}

func breakTieByScore(tied Candidates, scores map[Candidate]common.Rat) (Candidates, error) {
	var out Candidates
	for _, tier := range RankByScore(restrictScores(scores, tied)) {
		if len(tier) > 1 {
			return nil, TiebreakRequiredError.Newf(
				"still tied=%v", tier.Sorted().Strings(),
			)
		}
		out = append(out, tier[0])
	}

	return out, nil
}

func restrictScores(scores map[Candidate]common.Rat, cs Candidates) map[Candidate]common.Rat {
	out := map[Candidate]common.Rat{}
	for _, c := range cs {
		s, found := scores[c]
		if !found {
			s = common.ZeroRat
		}
		out[c] = s
	}

	return out
}
