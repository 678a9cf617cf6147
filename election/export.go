package election

import (
	"github.com/spikeekips/pyo/common"
	"github.com/spikeekips/pyo/encode"
)

// ProfileVersion tags exported profiles so older archives stay readable
// when the layout changes.
var ProfileVersion common.Version = common.MustParseVersion("0.1.0")

type profileRecord struct {
	Candidates []string
	Ballots    []ballotRecord
}

// EncodeProfile serializes a profile with its format version.
func EncodeProfile(p PreferenceProfile) ([]byte, error) {
	records := make([]ballotRecord, len(p.ballots))
	for i, b := range p.ballots {
		records[i] = b.record()
	}

	return encode.Encode(ProfileVersion, profileRecord{
		Candidates: p.candidates.Strings(),
		Ballots:    records,
	})
}

// DecodeProfile reads a serialized profile back, returning the format
// version it was written with.
func DecodeProfile(b []byte) (PreferenceProfile, common.Version, error) {
	var record profileRecord
	version, err := encode.Decode(b, &record)
	if err != nil {
		return PreferenceProfile{}, common.ZeroVersion, err
	}

	ballots := make([]Ballot, len(record.Ballots))
	for i, br := range record.Ballots {
		ballot, err := newBallotFromRecord(br)
		if err != nil {
			return PreferenceProfile{}, version, err
		}
		ballots[i] = ballot
	}

	candidates := make(Candidates, len(record.Candidates))
	for i, c := range record.Candidates {
		candidates[i] = Candidate(c)
	}

	p, err := NewPreferenceProfile(ballots, candidates...)
	if err != nil {
		return PreferenceProfile{}, version, err
	}

	return p, version, nil
}

func newBallotFromRecord(r ballotRecord) (Ballot, error) {
	var ranking Ranking
	for _, tier := range r.Body.Ranking {
		t := make(Candidates, len(tier))
		for i, c := range tier {
			t[i] = Candidate(c)
		}
		ranking = append(ranking, t)
	}

	var scores map[Candidate]common.Rat
	if len(r.Body.Scores) > 0 {
		scores = map[Candidate]common.Rat{}
		for _, sr := range r.Body.Scores {
			s, err := common.ParseRat(sr.Score)
			if err != nil {
				return Ballot{}, err
			}
			scores[Candidate(sr.Candidate)] = s
		}
	}

	weight, err := common.ParseRat(r.Weight)
	if err != nil {
		return Ballot{}, err
	}

	return NewBallot(ranking, scores, weight, r.Voters...)
}
