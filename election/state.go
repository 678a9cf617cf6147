package election

import (
	"encoding/json"

	"github.com/spikeekips/pyo/common"
)

type CandidateStatus uint

const (
	StatusActive CandidateStatus = iota
	StatusElected
	StatusEliminated
)

func (s CandidateStatus) String() string {
	switch s {
	case StatusActive:
		return "active"
	case StatusElected:
		return "elected"
	case StatusEliminated:
		return "eliminated"
	default:
		return ""
	}
}

func (s CandidateStatus) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

// CandidateRound records a candidate's status and the round it was last
// decided; active candidates carry round 0.
type CandidateRound struct {
	Candidate Candidate       `json:"candidate"`
	Status    CandidateStatus `json:"status"`
	Round     int             `json:"round"`
}

// TiebreakRecord keeps how a tie was resolved so a run can be audited
// and replayed.
type TiebreakRecord struct {
	Round int          `json:"round"`
	Kind  TiebreakKind `json:"kind"`
	Tied  Candidates   `json:"tied"`
	Order Candidates   `json:"order"`
}

// ElectionState is a snapshot taken at the start of a round: the profile
// still in play, its tallies, and everything decided so far. Rounds count
// from 1; the state for round 1 describes the untouched input.
type ElectionState struct {
	round         int
	profile       PreferenceProfile
	tallies       map[Candidate]common.Rat
	elected       Ranking
	eliminated    Candidates
	exhausted     common.Rat
	electedWeight common.Rat
	tiebreaks     []TiebreakRecord
	decided       map[Candidate]int
}

func (s ElectionState) Round() int {
	return s.round
}

func (s ElectionState) Profile() PreferenceProfile {
	return s.profile
}

func (s ElectionState) Tallies() map[Candidate]common.Rat {
	n := map[Candidate]common.Rat{}
	for c, t := range s.tallies {
		n[c] = t
	}

	return n
}

func (s ElectionState) Tally(c Candidate) common.Rat {
	t, found := s.tallies[c]
	if !found {
		return common.ZeroRat
	}

	return t
}

// Elected returns the candidates elected so far, one tier per batch
// elected together, in election order.
func (s ElectionState) Elected() Ranking {
	return s.elected.Copy()
}

func (s ElectionState) Eliminated() Candidates {
	n := make(Candidates, len(s.eliminated))
	copy(n, s.eliminated)

	return n
}

// ExhaustedWeight is the total ballot weight that left the count without
// reaching any candidate, accumulated over all rounds so far.
func (s ElectionState) ExhaustedWeight() common.Rat {
	return s.exhausted
}

// ElectedWeight is the weight kept by elected candidates, accumulated
// over all rounds so far.
func (s ElectionState) ElectedWeight() common.Rat {
	return s.electedWeight
}

func (s ElectionState) Tiebreaks() []TiebreakRecord {
	n := make([]TiebreakRecord, len(s.tiebreaks))
	copy(n, s.tiebreaks)

	return n
}

func (s ElectionState) Remaining() Candidates {
	return s.profile.Candidates().Without(s.elected.Candidates()...).Without(s.eliminated...)
}

func (s ElectionState) Status(c Candidate) CandidateRound {
	round := s.decided[c]
	for _, tier := range s.elected {
		if tier.Contains(c) {
			return CandidateRound{Candidate: c, Status: StatusElected, Round: round}
		}
	}
	if s.eliminated.Contains(c) {
		return CandidateRound{Candidate: c, Status: StatusEliminated, Round: round}
	}

	return CandidateRound{Candidate: c, Status: StatusActive}
}

func (s ElectionState) MarshalJSON() ([]byte, error) {
	tallies := map[string]common.Rat{}
	for c, t := range s.tallies {
		tallies[string(c)] = t
	}

	return json.Marshal(map[string]interface{}{
		"round":          s.round,
		"tallies":        tallies,
		"elected":        s.elected,
		"eliminated":     s.eliminated,
		"exhausted":      s.exhausted,
		"elected_weight": s.electedWeight,
		"tiebreaks":      s.tiebreaks,
	})
}
