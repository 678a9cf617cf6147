package election

import (
	"bytes"
	"fmt"

	"github.com/spikeekips/pyo/common"
)

// PairwiseMatrix holds the head-to-head support between every pair of
// candidates. A ballot supports a over b when it ranks a strictly above
// b; a ranked candidate beats an unranked one, and ties or double
// absence contribute nothing.
type PairwiseMatrix struct {
	candidates Candidates
	support    map[Candidate]map[Candidate]common.Rat
}

func NewPairwiseMatrix(p PreferenceProfile) PairwiseMatrix {
	candidates := p.Candidates().Sorted()

	support := map[Candidate]map[Candidate]common.Rat{}
	for _, a := range candidates {
		support[a] = map[Candidate]common.Rat{}
		for _, b := range candidates {
			if a == b {
				continue
			}
			support[a][b] = common.ZeroRat
		}
	}

	for _, ballot := range p.Ballots() {
		positions := rankingPositions(ballot.Ranking(), candidates)
		for i, a := range candidates {
			for _, b := range candidates[i+1:] {
				switch {
				case positions[a] < positions[b]:
					support[a][b] = support[a][b].Add(ballot.Weight())
				case positions[b] < positions[a]:
					support[b][a] = support[b][a].Add(ballot.Weight())
				}
			}
		}
	}

	return PairwiseMatrix{candidates: candidates, support: support}
}

// rankingPositions maps each candidate to its tier index; unranked
// candidates share a position below every tier.
func rankingPositions(ranking Ranking, candidates Candidates) map[Candidate]int {
	positions := map[Candidate]int{}
	for _, c := range candidates {
		positions[c] = len(ranking)
	}
	for i, tier := range ranking {
		for _, c := range tier {
			if _, found := positions[c]; found {
				positions[c] = i
			}
		}
	}

	return positions
}

func (m PairwiseMatrix) Candidates() Candidates {
	n := make(Candidates, len(m.candidates))
	copy(n, m.candidates)

	return n
}

func (m PairwiseMatrix) Support(a, b Candidate) common.Rat {
	s, found := m.support[a][b]
	if !found {
		return common.ZeroRat
	}

	return s
}

func (m PairwiseMatrix) Beats(a, b Candidate) bool {
	return m.Support(a, b).Cmp(m.Support(b, a)) > 0
}

// CondorcetWinner returns the candidate who beats every other head to
// head, when one exists.
func (m PairwiseMatrix) CondorcetWinner() (Candidate, bool) {
	for _, a := range m.candidates {
		all := true
		for _, b := range m.candidates {
			if a == b {
				continue
			}
			if !m.Beats(a, b) {
				all = false
				break
			}
		}
		if all {
			return a, true
		}
	}

	return "", false
}

// SmithSet returns the minimal set whose members all beat every outsider,
// grown from a Copeland leader until no outsider survives against it.
func (m PairwiseMatrix) SmithSet() Candidates {
	return m.smithSet(m.candidates)
}

func (m PairwiseMatrix) smithSet(among Candidates) Candidates {
	if len(among) < 1 {
		return nil
	}

	leader := among[0]
	best := -1
	for _, c := range among {
		wins := 0
		for _, o := range among {
			if c != o && m.Beats(c, o) {
				wins++
			}
		}
		if wins > best {
			best = wins
			leader = c
		}
	}

	set := map[Candidate]bool{leader: true}
	for {
		grown := false
		for _, c := range among {
			if set[c] {
				continue
			}
			for member := range set {
				if !m.Beats(member, c) {
					set[c] = true
					grown = true
					break
				}
			}
		}
		if !grown {
			break
		}
	}

	var out Candidates
	for _, c := range among {
		if set[c] {
			out = append(out, c)
		}
	}

	return out.Sorted()
}

// DominatingTiers peels successive Smith sets off the candidate pool,
// strongest tier first.
func (m PairwiseMatrix) DominatingTiers() Ranking {
	var tiers Ranking

	among := m.Candidates()
	for len(among) > 0 {
		tier := m.smithSet(among)
		tiers = append(tiers, tier)
		among = among.Without(tier...)
	}

	return tiers
}

func (m PairwiseMatrix) String() string {
	var out bytes.Buffer
	fmt.Fprintf(&out, "%-12s", "")
	for _, c := range m.candidates {
		fmt.Fprintf(&out, "%-12s", c)
	}
	out.WriteString("\n")

	for _, a := range m.candidates {
		fmt.Fprintf(&out, "%-12s", a)
		for _, b := range m.candidates {
			if a == b {
				fmt.Fprintf(&out, "%-12s", "-")
				continue
			}
			fmt.Fprintf(&out, "%-12s", m.Support(a, b).String())
		}
		out.WriteString("\n")
	}

	return out.String()
}
