package election

import (
	"testing"

	"github.com/stretchr/testify/suite"
)

type testDominating struct {
	suite.Suite
}

func (t *testDominating) condorcetProfile() PreferenceProfile {
	return MustNewPreferenceProfile([]Ballot{
		strictBallot(2, "B", "A", "C"),
		strictBallot(1, "A", "B", "C"),
		strictBallot(1, "C", "B", "A"),
	}, "A", "B", "C")
}

func (t *testDominating) cycleProfile() PreferenceProfile {
	return MustNewPreferenceProfile([]Ballot{
		strictBallot(3, "A", "B", "C"),
		strictBallot(3, "B", "C", "A"),
		strictBallot(3, "C", "A", "B"),
		strictBallot(1, "A", "B", "C"),
	}, "A", "B", "C")
}

func (t *testDominating) TestCondorcetWinnerElected() {
	rule, err := NewDominatingSets(t.condorcetProfile())
	t.NoError(err)
	t.Equal(1, rule.Seats())

	result, err := rule.Run()
	t.NoError(err)
	t.Equal(Candidates{"B"}, result.Winners())
	t.Equal(Ranking{{"B"}, {"A"}, {"C"}}, result.Ranking())
}

func (t *testDominating) TestCycleElectsWholeSet() {
	rule, err := NewDominatingSets(t.cycleProfile())
	t.NoError(err)

	result, err := rule.Run()
	t.NoError(err)
	t.Equal(Candidates{"A", "B", "C"}, result.Winners().Sorted())
	t.False(result.Short())
}

func (t *testDominating) TestCondoBordaBreaksCycle() {
	rule, err := NewCondoBorda(t.cycleProfile(), Config{Seats: 1, Tiebreak: TiebreakNone})
	t.NoError(err)

	result, err := rule.Run()
	t.NoError(err)

	// the extra A>B>C ballot tips the Borda count inside the cycle
	t.Equal(Candidates{"A"}, result.Winners())
}

func (t *testDominating) TestCondoBordaSeats() {
	rule, err := NewCondoBorda(t.condorcetProfile(), Config{Seats: 2, Tiebreak: TiebreakNone})
	t.NoError(err)

	result, err := rule.Run()
	t.NoError(err)
	t.Equal(Candidates{"A", "B"}, result.Winners().Sorted())
}

func TestDominating(t *testing.T) {
	suite.Run(t, new(testDominating))
}
