package election

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/spikeekips/pyo/common"
)

func scoredBallot(weight int64, scores map[Candidate]int64) Ballot {
	m := map[Candidate]common.Rat{}
	for c, s := range scores {
		m[c] = common.NewRatFromInt(s)
	}

	return MustNewBallot(nil, m, common.NewRatFromInt(weight))
}

type testScoreRules struct {
	suite.Suite
}

func (t *testScoreRules) TestGeneralRating() {
	p := MustNewPreferenceProfile([]Ballot{
		scoredBallot(1, map[Candidate]int64{"A": 5, "B": 2}),
		scoredBallot(2, map[Candidate]int64{"B": 4, "C": 1}),
	}, "A", "B", "C")

	rule, err := NewGeneralRating(p, Config{Seats: 1, Tiebreak: TiebreakNone})
	t.NoError(err)

	result, err := rule.Run()
	t.NoError(err)
	t.Equal(Candidates{"B"}, result.Winners())
	t.Equal("10", result.FinalState().Tally("B").String())
}

func (t *testScoreRules) TestRatingLimit() {
	p := MustNewPreferenceProfile([]Ballot{
		scoredBallot(1, map[Candidate]int64{"A": 5}),
	}, "A", "B")

	_, err := NewRating(p, Config{Seats: 1, Tiebreak: TiebreakNone}, common.NewRatFromInt(3))
	t.True(InvalidBallotError.Equal(err))

	_, err = NewRating(p, Config{Seats: 1, Tiebreak: TiebreakNone}, common.NewRatFromInt(5))
	t.NoError(err)
}

func (t *testScoreRules) TestLimitedBudget() {
	p := MustNewPreferenceProfile([]Ballot{
		scoredBallot(1, map[Candidate]int64{"A": 2, "B": 2}),
	}, "A", "B")

	_, err := NewLimited(p, Config{Seats: 1, Tiebreak: TiebreakNone}, common.NewRatFromInt(3))
	t.True(InvalidBallotError.Equal(err))
}

func (t *testScoreRules) TestCumulativeBudgetIsSeats() {
	p := MustNewPreferenceProfile([]Ballot{
		scoredBallot(1, map[Candidate]int64{"A": 2, "B": 1}),
	}, "A", "B", "C")

	_, err := NewCumulative(p, Config{Seats: 2, Tiebreak: TiebreakNone})
	t.True(InvalidBallotError.Equal(err))

	rule, err := NewCumulative(p, Config{Seats: 3, Tiebreak: TiebreakNone})
	t.NoError(err)

	result, err := rule.Run()
	t.NoError(err)
	t.Equal(Candidates{"A", "B", "C"}, result.Winners().Sorted())
}

func (t *testScoreRules) TestApprovalRejectsGradedScores() {
	p := MustNewPreferenceProfile([]Ballot{
		scoredBallot(1, map[Candidate]int64{"A": 2}),
	}, "A", "B")

	_, err := NewApproval(p, Config{Seats: 1, Tiebreak: TiebreakNone})
	t.True(InvalidBallotError.Equal(err))
}

func (t *testScoreRules) TestApproval() {
	p := MustNewPreferenceProfile([]Ballot{
		scoredBallot(3, map[Candidate]int64{"A": 1, "B": 1}),
		scoredBallot(2, map[Candidate]int64{"B": 1}),
	}, "A", "B", "C")

	rule, err := NewApproval(p, Config{Seats: 1, Tiebreak: TiebreakNone})
	t.NoError(err)

	result, err := rule.Run()
	t.NoError(err)
	t.Equal(Candidates{"B"}, result.Winners())
	t.Equal("5", result.FinalState().Tally("B").String())
}

func TestScoreRules(t *testing.T) {
	suite.Run(t, new(testScoreRules))
}
