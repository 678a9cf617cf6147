package election

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/spikeekips/pyo/common"
)

// PreferenceProfile is an ordered, weighted collection of ballots over a
// declared candidate set. It is an immutable value; condensation, stripping
// and reweighting return new profiles.
type PreferenceProfile struct {
	ballots    []Ballot
	candidates Candidates
}

// NewPreferenceProfile builds a profile; when no candidates are declared
// they are derived as the union of candidates appearing with positive weight
// across all ballots.
func NewPreferenceProfile(ballots []Ballot, candidates ...Candidate) (PreferenceProfile, error) {
	nb := make([]Ballot, len(ballots))
	copy(nb, ballots)

	var nc Candidates
	if len(candidates) > 0 {
		nc = Candidates(candidates).Dedup()
		if len(nc) != len(candidates) {
			return PreferenceProfile{}, InvalidProfileError.Newf(
				"duplicate candidates; candidates=%v", candidates,
			)
		}
	} else {
		var all Candidates
		for _, b := range nb {
			if b.weight.IsZero() {
				continue
			}
			all = append(all, b.ranking.Candidates()...)
			for c := range b.scores {
				all = append(all, c)
			}
		}
		nc = all.Dedup()
	}

	return PreferenceProfile{ballots: nb, candidates: nc}, nil
}

func MustNewPreferenceProfile(ballots []Ballot, candidates ...Candidate) PreferenceProfile {
	p, err := NewPreferenceProfile(ballots, candidates...)
	if err != nil {
		panic(err)
	}

	return p
}

func (p PreferenceProfile) Ballots() []Ballot {
	n := make([]Ballot, len(p.ballots))
	copy(n, p.ballots)

	return n
}

func (p PreferenceProfile) Candidates() Candidates {
	n := make(Candidates, len(p.candidates))
	copy(n, p.candidates)

	return n
}

func (p PreferenceProfile) NumBallots() int {
	return len(p.ballots)
}

func (p PreferenceProfile) TotalWeight() common.Rat {
	total := common.ZeroRat
	for _, b := range p.ballots {
		total = total.Add(b.weight)
	}

	return total
}

// Head returns a new profile over the first n ballots.
func (p PreferenceProfile) Head(n int) PreferenceProfile {
	if n > len(p.ballots) {
		n = len(p.ballots)
	}

	return PreferenceProfile{ballots: p.Ballots()[:n], candidates: p.Candidates()}
}

// Tail returns a new profile over the last n ballots.
func (p PreferenceProfile) Tail(n int) PreferenceProfile {
	if n > len(p.ballots) {
		n = len(p.ballots)
	}

	return PreferenceProfile{ballots: p.Ballots()[len(p.ballots)-n:], candidates: p.Candidates()}
}

// Condense merges ballots with identical ranking and scores by summing
// their weight, keeping first-seen order. Condensing a condensed profile
// returns an equal profile.
func (p PreferenceProfile) Condense() PreferenceProfile {
	type entry struct {
		ballot Ballot
		voters []string
	}

	var order []common.Hash
	grouped := map[string]*entry{}

	for _, b := range p.ballots {
		h := b.BodyHash()
		e, found := grouped[h.String()]
		if !found {
			grouped[h.String()] = &entry{ballot: b, voters: b.Voters()}
			order = append(order, h)
			continue
		}

		merged, _ := e.ballot.WithWeight(e.ballot.weight.Add(b.weight))
		e.voters = append(e.voters, b.voters...)
		e.ballot = merged
	}

	ballots := make([]Ballot, 0, len(order))
	for _, h := range order {
		e := grouped[h.String()]
		nb, _ := NewBallot(e.ballot.ranking, e.ballot.scores, e.ballot.weight, e.voters...)
		ballots = append(ballots, nb)
	}

	return PreferenceProfile{ballots: ballots, candidates: p.Candidates()}
}

// StripCandidates removes candidates from every ballot and from the
// declared candidate set; ballots emptied by the removal are dropped.
func (p PreferenceProfile) StripCandidates(removed ...Candidate) PreferenceProfile {
	var ballots []Ballot
	for _, b := range p.ballots {
		nb := b.StripCandidates(removed...)
		if nb.IsEmpty() {
			continue
		}
		ballots = append(ballots, nb)
	}

	return PreferenceProfile{ballots: ballots, candidates: p.candidates.Without(removed...)}
}

// WeightShares returns each ballot's share of the total weight, in ballot
// order; all zero when the profile carries no weight.
func (p PreferenceProfile) WeightShares() []common.Rat {
	total := p.TotalWeight()

	shares := make([]common.Rat, len(p.ballots))
	for i, b := range p.ballots {
		if s, ok := b.weight.QuoOK(total); ok {
			shares[i] = s
		} else {
			shares[i] = common.ZeroRat
		}
	}

	return shares
}

func (p PreferenceProfile) Equal(n PreferenceProfile) bool {
	if !p.candidates.Equal(n.candidates) {
		return false
	}

	a := p.Condense()
	b := n.Condense()
	if len(a.ballots) != len(b.ballots) {
		return false
	}

	bw := map[string]common.Rat{}
	for _, bb := range b.ballots {
		bw[bb.BodyHash().String()] = bb.weight
	}

	for _, ab := range a.ballots {
		w, found := bw[ab.BodyHash().String()]
		if !found || !w.Equal(ab.weight) {
			return false
		}
	}

	return true
}

func (p PreferenceProfile) Hash() common.Hash {
	records := make([]ballotRecord, len(p.ballots))
	for i, b := range p.ballots {
		records[i] = b.record()
	}

	h, _ := common.NewHashFromObject("pf", struct {
		Candidates []string
		Ballots    []ballotRecord
	}{Candidates: p.candidates.Strings(), Ballots: records})

	return h
}

func (p PreferenceProfile) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string]interface{}{
		"candidates":   p.candidates.Strings(),
		"ballots":      p.ballots,
		"total_weight": p.TotalWeight(),
	})
}

// String renders the condensed profile as a ranking/scores/weight table.
func (p PreferenceProfile) String() string {
	condensed := p.Condense()

	var out bytes.Buffer
	fmt.Fprintf(&out, "%-40s %-30s %s\n", "ranking", "scores", "weight")
	for _, b := range condensed.ballots {
		var ranking bytes.Buffer
		for i, tier := range b.ranking {
			if i > 0 {
				ranking.WriteString(" > ")
			}
			if len(tier) == 1 {
				ranking.WriteString(string(tier[0]))
				continue
			}
			fmt.Fprintf(&ranking, "%v", tier.Strings())
		}

		var scores bytes.Buffer
		if len(b.scores) > 0 {
			var cands Candidates
			for c := range b.scores {
				cands = append(cands, c)
			}
			for i, c := range cands.Sorted() {
				if i > 0 {
					scores.WriteString(" ")
				}
				fmt.Fprintf(&scores, "%s:%s", c, b.scores[c].String())
			}
		}

		fmt.Fprintf(&out, "%-40s %-30s %s\n", ranking.String(), scores.String(), b.weight.String())
	}

	return out.String()
}
