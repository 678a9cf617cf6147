package election

import (
	"encoding/json"
	"sort"

	"github.com/spikeekips/pyo/common"
)

// Ballot is one voter's (or voter bloc's) ranking and/or scores with a
// non-negative rational weight. It is immutable once constructed; every
// transformation returns a new Ballot.
type Ballot struct {
	ranking Ranking
	scores  map[Candidate]common.Rat
	weight  common.Rat
	voters  []string
}

func NewBallot(
	ranking Ranking,
	scores map[Candidate]common.Rat,
	weight common.Rat,
	voters ...string,
) (Ballot, error) {
	if weight.IsNegative() {
		return Ballot{}, InvalidBallotError.Newf("negative weight; weight=%v", weight)
	}

	var nr Ranking
	for _, tier := range ranking {
		t := tier.Dedup()
		if len(t) < 1 {
			continue
		}
		nr = append(nr, t)
	}

	var ns map[Candidate]common.Rat
	if len(scores) > 0 {
		ns = map[Candidate]common.Rat{}
		for c, s := range scores {
			if s.IsNegative() {
				return Ballot{}, InvalidBallotError.Newf("negative score; candidate=%q score=%v", c, s)
			}
			if s.IsZero() {
				continue
			}
			ns[c] = s
		}
	}

	var nv []string
	if len(voters) > 0 {
		nv = make([]string, len(voters))
		copy(nv, voters)
		sort.Strings(nv)
	}

	return Ballot{ranking: nr, scores: ns, weight: weight, voters: nv}, nil
}

// MustNewBallot panics on invalid input; for fixtures and generators that
// construct ballots from already validated values.
func MustNewBallot(
	ranking Ranking,
	scores map[Candidate]common.Rat,
	weight common.Rat,
	voters ...string,
) Ballot {
	b, err := NewBallot(ranking, scores, weight, voters...)
	if err != nil {
		panic(err)
	}

	return b
}

func (b Ballot) Ranking() Ranking {
	return b.ranking.Copy()
}

func (b Ballot) Scores() map[Candidate]common.Rat {
	if b.scores == nil {
		return nil
	}

	n := map[Candidate]common.Rat{}
	for c, s := range b.scores {
		n[c] = s
	}

	return n
}

func (b Ballot) Score(c Candidate) common.Rat {
	s, found := b.scores[c]
	if !found {
		return common.ZeroRat
	}

	return s
}

func (b Ballot) Weight() common.Rat {
	return b.weight
}

func (b Ballot) Voters() []string {
	if b.voters == nil {
		return nil
	}

	n := make([]string, len(b.voters))
	copy(n, b.voters)

	return n
}

func (b Ballot) IsEmpty() bool {
	return len(b.ranking) < 1 && len(b.scores) < 1
}

func (b Ballot) IsRanked() bool {
	return len(b.ranking) > 0
}

// FirstPreference returns the highest-ranked candidate among remaining; the
// bool reports whether one exists. Tiers with more than one remaining
// candidate have no single first preference.
func (b Ballot) FirstPreference(remaining Candidates) (Candidate, bool) {
	tier, found := b.FirstPreferenceTier(remaining)
	if !found || len(tier) != 1 {
		return "", false
	}

	return tier[0], true
}

// FirstPreferenceTier returns the highest tier that still holds any
// remaining candidate, restricted to remaining.
func (b Ballot) FirstPreferenceTier(remaining Candidates) (Candidates, bool) {
	for _, tier := range b.ranking {
		var t Candidates
		for _, c := range tier {
			if remaining.Contains(c) {
				t = append(t, c)
			}
		}
		if len(t) > 0 {
			return t, true
		}
	}

	return nil, false
}

// WithWeight returns a new Ballot carrying the given weight.
func (b Ballot) WithWeight(weight common.Rat) (Ballot, error) {
	return NewBallot(b.ranking, b.scores, weight, b.voters...)
}

// StripCandidates returns a new Ballot with the given candidates removed
// from ranking and scores; emptied tiers are dropped.
func (b Ballot) StripCandidates(removed ...Candidate) Ballot {
	var nr Ranking
	for _, tier := range b.ranking {
		t := tier.Without(removed...)
		if len(t) < 1 {
			continue
		}
		nr = append(nr, t)
	}

	var ns map[Candidate]common.Rat
	if len(b.scores) > 0 {
		for c, s := range b.scores {
			if Candidates(removed).Contains(c) {
				continue
			}
			if ns == nil {
				ns = map[Candidate]common.Rat{}
			}
			ns[c] = s
		}
	}

	return Ballot{ranking: nr, scores: ns, weight: b.weight, voters: b.voters}
}

func (b Ballot) Equal(n Ballot) bool {
	if !b.weight.Equal(n.weight) {
		return false
	}

	return b.BodyHash().Equal(n.BodyHash())
}

type ballotScoreRecord struct {
	Candidate string
	Score     string
}

type ballotBodyRecord struct {
	Ranking [][]string
	Scores  []ballotScoreRecord
}

type ballotRecord struct {
	Body   ballotBodyRecord
	Weight string
	Voters []string
}

func (b Ballot) bodyRecord() ballotBodyRecord {
	ranking := make([][]string, len(b.ranking))
	for i, tier := range b.ranking {
		ranking[i] = tier.Strings()
	}

	var scores []ballotScoreRecord
	if len(b.scores) > 0 {
		var cands Candidates
		for c := range b.scores {
			cands = append(cands, c)
		}
		for _, c := range cands.Sorted() {
			scores = append(scores, ballotScoreRecord{Candidate: string(c), Score: b.scores[c].String()})
		}
	}

	return ballotBodyRecord{Ranking: ranking, Scores: scores}
}

func (b Ballot) record() ballotRecord {
	return ballotRecord{
		Body:   b.bodyRecord(),
		Weight: b.weight.String(),
		Voters: b.voters,
	}
}

// BodyHash fingerprints ranking and scores, weight excluded; identical
// bodies condense into one ballot.
func (b Ballot) BodyHash() common.Hash {
	h, _ := common.NewHashFromObject("bb", b.bodyRecord())
	return h
}

func (b Ballot) Hash() common.Hash {
	h, _ := common.NewHashFromObject("bl", b.record())
	return h
}

func (b Ballot) MarshalBinary() ([]byte, error) {
	return common.Encode(b.record())
}

func (b Ballot) MarshalJSON() ([]byte, error) {
	ranking := make([][]string, len(b.ranking))
	for i, tier := range b.ranking {
		ranking[i] = tier.Strings()
	}

	var scores map[string]string
	if len(b.scores) > 0 {
		scores = map[string]string{}
		for c, s := range b.scores {
			scores[string(c)] = s.String()
		}
	}

	return json.Marshal(map[string]interface{}{
		"ranking": ranking,
		"scores":  scores,
		"weight":  b.weight,
		"voters":  b.voters,
	})
}

func (b Ballot) String() string {
	s, _ := json.Marshal(b)
	return common.TerminalLogString(string(s))
}
