package election

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/spikeekips/pyo/common"
)

type testScoring struct {
	suite.Suite
}

func (t *testScoring) TestFirstPlaceTallies() {
	p := MustNewPreferenceProfile([]Ballot{
		strictBallot(3, "A", "B", "C"),
		strictBallot(2, "B", "A", "C"),
		strictBallot(1, "C", "B", "A"),
	}, "A", "B", "C")

	tallies := FirstPlaceTallies(p, p.Candidates())
	t.Equal("3", tallies["A"].String())
	t.Equal("2", tallies["B"].String())
	t.Equal("1", tallies["C"].String())
}

func (t *testScoring) TestFirstPlaceTieSplits() {
	p := MustNewPreferenceProfile([]Ballot{
		MustNewBallot(Ranking{{"A", "B"}, {"C"}}, nil, common.OneRat),
	}, "A", "B", "C")

	tallies := FirstPlaceTallies(p, p.Candidates())
	t.Equal("1/2", tallies["A"].String())
	t.Equal("1/2", tallies["B"].String())
	t.Equal("0", tallies["C"].String())
}

func (t *testScoring) TestBordaTieAveraging() {
	p := MustNewPreferenceProfile([]Ballot{
		MustNewBallot(Ranking{{"A", "B"}, {"C"}}, nil, common.OneRat),
	}, "A", "B", "C")

	scores := BordaScores(p, p.Candidates())

	// A and B share positions one and two: (3+2)/2 each
	t.Equal("5/2", scores["A"].String())
	t.Equal("5/2", scores["B"].String())
	t.Equal("1", scores["C"].String())
}

func (t *testScoring) TestBordaUnrankedSplit() {
	p := MustNewPreferenceProfile([]Ballot{
		MustNewBallot(strictRanking("A"), nil, common.OneRat),
	}, "A", "B", "C")

	scores := BordaScores(p, p.Candidates())

	t.Equal("3", scores["A"].String())
	t.Equal("3/2", scores["B"].String())
	t.Equal("3/2", scores["C"].String())
}

func (t *testScoring) TestBordaVectorValidation() {
	n := 3

	t.True(InvalidConfigError.Equal(ValidateBordaVector(ratVector(3, 2), n)))
	t.True(InvalidConfigError.Equal(ValidateBordaVector(ratVector(3, -1, 0), n)))
	t.True(InvalidConfigError.Equal(ValidateBordaVector(ratVector(3, 1, 2), n)))
	t.NoError(ValidateBordaVector(ratVector(3, 2, 1), n))
	t.NoError(ValidateBordaVector(ratVector(1, 1, 0), n))
}

func (t *testScoring) TestBordaConventions() {
	p := MustNewPreferenceProfile([]Ballot{
		MustNewBallot(Ranking{{"A", "B"}, {"C"}}, nil, common.OneRat),
	}, "A", "B", "C")

	vector := DefaultBordaVector(3)

	high, err := BordaScoresVector(p, p.Candidates(), vector, BordaHigh)
	t.NoError(err)
	t.Equal("3", high["A"].String())
	t.Equal("3", high["B"].String())
	t.Equal("1", high["C"].String())

	low, err := BordaScoresVector(p, p.Candidates(), vector, BordaLow)
	t.NoError(err)
	t.Equal("2", low["A"].String())
	t.Equal("2", low["B"].String())
	t.Equal("1", low["C"].String())
}

func (t *testScoring) TestBordaConventionsUnranked() {
	p := MustNewPreferenceProfile([]Ballot{
		MustNewBallot(strictRanking("A"), nil, common.OneRat),
	}, "A", "B", "C")

	vector := DefaultBordaVector(3)

	high, err := BordaScoresVector(p, p.Candidates(), vector, BordaHigh)
	t.NoError(err)
	t.Equal("2", high["B"].String())
	t.Equal("2", high["C"].String())

	low, err := BordaScoresVector(p, p.Candidates(), vector, BordaLow)
	t.NoError(err)
	t.Equal("1", low["B"].String())
	t.Equal("1", low["C"].String())
}

func (t *testScoring) TestBordaCustomVector() {
	// the (1,0,0) vector degenerates to first-place counting
	p := MustNewPreferenceProfile([]Ballot{
		strictBallot(2, "A", "B", "C"),
		strictBallot(3, "B", "C", "A"),
	}, "A", "B", "C")

	scores, err := BordaScoresVector(p, p.Candidates(), ratVector(1, 0, 0), BordaAverage)
	t.NoError(err)
	t.Equal("2", scores["A"].String())
	t.Equal("3", scores["B"].String())
	t.Equal("0", scores["C"].String())
}

func (t *testScoring) TestBlocTallies() {
	p := MustNewPreferenceProfile([]Ballot{
		strictBallot(1, "A", "B", "C"),
		strictBallot(1, "B", "C", "A"),
	}, "A", "B", "C")

	tallies := BlocTallies(p, p.Candidates(), 2)
	t.Equal("1", tallies["A"].String())
	t.Equal("2", tallies["B"].String())
	t.Equal("1", tallies["C"].String())
}

func (t *testScoring) TestBlocStraddlingTier() {
	p := MustNewPreferenceProfile([]Ballot{
		MustNewBallot(Ranking{{"A"}, {"B", "C"}}, nil, common.OneRat),
	}, "A", "B", "C")

	tallies := BlocTallies(p, p.Candidates(), 2)
	t.Equal("1", tallies["A"].String())
	t.Equal("1/2", tallies["B"].String())
	t.Equal("1/2", tallies["C"].String())
}

func (t *testScoring) TestScoreTallies() {
	scores := map[Candidate]common.Rat{
		"A": common.NewRatFromInt(3),
		"B": common.NewRatFromInt(1),
	}
	p := MustNewPreferenceProfile([]Ballot{
		MustNewBallot(nil, scores, common.NewRatFromInt(2)),
	}, "A", "B", "C")

	tallies := ScoreTallies(p, p.Candidates())
	t.Equal("6", tallies["A"].String())
	t.Equal("2", tallies["B"].String())
	t.Equal("0", tallies["C"].String())
}

func (t *testScoring) TestRankByScore() {
	scores := map[Candidate]common.Rat{
		"A": common.NewRatFromInt(3),
		"B": common.NewRatFromInt(1),
		"C": common.NewRatFromInt(3),
	}

	tiers := RankByScore(scores)
	t.Equal(Ranking{{"A", "C"}, {"B"}}, tiers)
}

func ratVector(ns ...int64) []common.Rat {
	vector := make([]common.Rat, len(ns))
	for i, n := range ns {
		vector[i] = common.NewRatFromInt(n)
	}

	return vector
}

func TestScoring(t *testing.T) {
	suite.Run(t, new(testScoring))
}
