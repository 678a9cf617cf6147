package election

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/spikeekips/pyo/common"
)

type testPreferenceProfile struct {
	suite.Suite
}

func (t *testPreferenceProfile) TestDuplicateCandidates() {
	_, err := NewPreferenceProfile(nil, "A", "B", "A")
	t.True(InvalidProfileError.Equal(err))
}

func (t *testPreferenceProfile) TestDerivedCandidates() {
	p, err := NewPreferenceProfile([]Ballot{
		strictBallot(1, "B", "A"),
		strictBallot(1, "C"),
		MustNewBallot(strictRanking("D"), nil, common.ZeroRat),
	})
	t.NoError(err)

	// zero-weight ballots do not name candidates
	t.Equal(Candidates{"A", "B", "C"}, p.Candidates().Sorted())
}

func (t *testPreferenceProfile) TestTotalWeight() {
	p := MustNewPreferenceProfile([]Ballot{
		strictBallot(3, "A", "B"),
		strictBallot(2, "B", "A"),
	}, "A", "B")

	t.Equal("5", p.TotalWeight().String())
	t.Equal(2, p.NumBallots())
}

func (t *testPreferenceProfile) TestCondense() {
	p := MustNewPreferenceProfile([]Ballot{
		strictBallot(1, "A", "B"),
		strictBallot(2, "B", "A"),
		strictBallot(3, "A", "B"),
	}, "A", "B")

	condensed := p.Condense()
	t.Equal(2, condensed.NumBallots())
	t.Equal("6", condensed.TotalWeight().String())

	// first-seen order survives
	t.Equal("4", condensed.Ballots()[0].Weight().String())
	t.Equal("2", condensed.Ballots()[1].Weight().String())
}

func (t *testPreferenceProfile) TestCondenseIdempotent() {
	p := MustNewPreferenceProfile([]Ballot{
		strictBallot(1, "A", "B"),
		strictBallot(2, "B", "A"),
		strictBallot(3, "A", "B"),
	}, "A", "B")

	once := p.Condense()
	twice := once.Condense()

	t.True(once.Equal(twice))
	t.Equal(once.NumBallots(), twice.NumBallots())
}

func (t *testPreferenceProfile) TestStripCandidates() {
	p := MustNewPreferenceProfile([]Ballot{
		strictBallot(1, "A", "B"),
		strictBallot(1, "A"),
	}, "A", "B")

	stripped := p.StripCandidates("A")
	t.Equal(Candidates{"B"}, stripped.Candidates())
	t.Equal(1, stripped.NumBallots())
	t.Equal("1", stripped.TotalWeight().String())
}

func (t *testPreferenceProfile) TestEqualIgnoresOrder() {
	a := MustNewPreferenceProfile([]Ballot{
		strictBallot(1, "A", "B"),
		strictBallot(2, "B", "A"),
	}, "A", "B")
	b := MustNewPreferenceProfile([]Ballot{
		strictBallot(2, "B", "A"),
		strictBallot(1, "A", "B"),
	}, "A", "B")

	t.True(a.Equal(b))
}

func (t *testPreferenceProfile) TestHeadTail() {
	p := MustNewPreferenceProfile([]Ballot{
		strictBallot(1, "A"),
		strictBallot(2, "B"),
		strictBallot(3, "C"),
	}, "A", "B", "C")

	t.Equal(1, p.Head(1).NumBallots())
	t.Equal("1", p.Head(1).TotalWeight().String())
	t.Equal(2, p.Tail(2).NumBallots())
	t.Equal("5", p.Tail(2).TotalWeight().String())
}

func (t *testPreferenceProfile) TestWeightShares() {
	p := MustNewPreferenceProfile([]Ballot{
		strictBallot(1, "A"),
		strictBallot(3, "B"),
	}, "A", "B")

	shares := p.WeightShares()
	t.Equal("1/4", shares[0].String())
	t.Equal("3/4", shares[1].String())
}

func TestPreferenceProfile(t *testing.T) {
	suite.Run(t, new(testPreferenceProfile))
}
