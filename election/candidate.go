package election

import (
	"sort"
)

type Candidate string

func (c Candidate) String() string {
	return string(c)
}

type Candidates []Candidate

func (cs Candidates) Len() int {
	return len(cs)
}

func (cs Candidates) Contains(c Candidate) bool {
	for _, a := range cs {
		if a == c {
			return true
		}
	}

	return false
}

// Sorted returns a sorted copy; cs is untouched.
func (cs Candidates) Sorted() Candidates {
	n := make(Candidates, len(cs))
	copy(n, cs)
	sort.Slice(n, func(i, j int) bool { return n[i] < n[j] })

	return n
}

// Dedup returns a sorted copy with duplicates removed.
func (cs Candidates) Dedup() Candidates {
	s := cs.Sorted()

	var n Candidates
	for _, c := range s {
		if len(n) > 0 && n[len(n)-1] == c {
			continue
		}
		n = append(n, c)
	}

	return n
}

// Without returns a copy with the given candidates removed, keeping order.
func (cs Candidates) Without(removed ...Candidate) Candidates {
	var n Candidates
	for _, c := range cs {
		if Candidates(removed).Contains(c) {
			continue
		}
		n = append(n, c)
	}

	return n
}

func (cs Candidates) Equal(n Candidates) bool {
	if len(cs) != len(n) {
		return false
	}

	a := cs.Sorted()
	b := n.Sorted()
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}

func (cs Candidates) Strings() []string {
	n := make([]string, len(cs))
	for i, c := range cs {
		n[i] = string(c)
	}

	return n
}

// Ranking is an ordered sequence of tiers; candidates inside one tier are
// tied. Tiers are kept sorted and deduplicated.
type Ranking []Candidates

func (r Ranking) Copy() Ranking {
	n := make(Ranking, len(r))
	for i, tier := range r {
		t := make(Candidates, len(tier))
		copy(t, tier)
		n[i] = t
	}

	return n
}

func (r Ranking) Candidates() Candidates {
	var n Candidates
	for _, tier := range r {
		n = append(n, tier...)
	}

	return n
}

func (r Ranking) Equal(n Ranking) bool {
	if len(r) != len(n) {
		return false
	}

	for i := range r {
		if !r[i].Equal(n[i]) {
			return false
		}
	}

	return true
}

// HasTies returns true when any tier holds more than one candidate.
func (r Ranking) HasTies() bool {
	for _, tier := range r {
		if len(tier) > 1 {
			return true
		}
	}

	return false
}
