package election

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/spikeekips/pyo/common"
)

type testTransfer struct {
	suite.Suite
}

func (t *testTransfer) TestFractionalRescale() {
	credited := []Ballot{
		strictBallot(6, "A", "B"),
		strictBallot(2, "A", "C"),
	}

	moved, exhausted, err := FractionalTransfer{}.Transfer(
		"A", credited, common.NewRatFromInt(4), Candidates{"B", "C"}, nil,
	)
	t.NoError(err)
	t.True(exhausted.IsZero())
	t.Len(moved, 2)

	// surplus 4 over total 8 halves every ballot
	t.Equal("3", moved[0].Weight().String())
	t.Equal("1", moved[1].Weight().String())

	c, _ := moved[0].FirstPreference(Candidates{"B", "C"})
	t.Equal(Candidate("B"), c)
}

func (t *testTransfer) TestFractionalExhaustion() {
	credited := []Ballot{
		strictBallot(6, "A", "B"),
		strictBallot(2, "A"),
	}

	moved, exhausted, err := FractionalTransfer{}.Transfer(
		"A", credited, common.NewRatFromInt(4), Candidates{"B"}, nil,
	)
	t.NoError(err)
	t.Len(moved, 1)
	t.Equal("3", moved[0].Weight().String())
	t.Equal("1", exhausted.String())
}

func (t *testTransfer) TestFractionalZeroSurplus() {
	credited := []Ballot{strictBallot(3, "A", "B")}

	moved, exhausted, err := FractionalTransfer{}.Transfer(
		"A", credited, common.ZeroRat, Candidates{"B"}, nil,
	)
	t.NoError(err)
	t.Nil(moved)
	t.True(exhausted.IsZero())
}

func (t *testTransfer) TestRandomIntegerOnly() {
	credited := []Ballot{
		MustNewBallot(strictRanking("A", "B"), nil, common.NewRat(3, 2)),
	}

	_, _, err := RandomTransfer{}.Transfer(
		"A", credited, common.OneRat, Candidates{"B"}, newRandomSource(1),
	)
	t.True(NonIntegerWeightError.Equal(err))
}

func (t *testTransfer) TestRandomMovesWholeBallots() {
	credited := []Ballot{
		strictBallot(3, "A", "B"),
		strictBallot(2, "A", "C"),
	}

	moved, exhausted, err := RandomTransfer{}.Transfer(
		"A", credited, common.NewRatFromInt(2), Candidates{"B", "C"}, newRandomSource(7),
	)
	t.NoError(err)

	total := exhausted
	for _, b := range moved {
		t.Equal("1", b.Weight().String())
		total = total.Add(b.Weight())
	}
	t.Equal("2", total.String())
}

func (t *testTransfer) TestRandomDeterministic() {
	credited := []Ballot{
		strictBallot(3, "A", "B"),
		strictBallot(3, "A", "C"),
	}

	first, _, err := RandomTransfer{}.Transfer(
		"A", credited, common.NewRatFromInt(3), Candidates{"B", "C"}, newRandomSource(42),
	)
	t.NoError(err)

	second, _, err := RandomTransfer{}.Transfer(
		"A", credited, common.NewRatFromInt(3), Candidates{"B", "C"}, newRandomSource(42),
	)
	t.NoError(err)

	t.Equal(len(first), len(second))
	for i := range first {
		t.True(first[i].Equal(second[i]))
	}
}

func (t *testTransfer) TestNoneExhaustsSurplus() {
	credited := []Ballot{strictBallot(5, "A", "B")}

	moved, exhausted, err := NoneTransfer{}.Transfer(
		"A", credited, common.NewRatFromInt(2), Candidates{"B"}, nil,
	)
	t.NoError(err)
	t.Nil(moved)
	t.Equal("2", exhausted.String())
}

func TestTransfer(t *testing.T) {
	suite.Run(t, new(testTransfer))
}
