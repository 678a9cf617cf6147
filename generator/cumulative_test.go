package generator

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/spikeekips/pyo/common"
	"github.com/spikeekips/pyo/election"
)

type testCumulative struct {
	suite.Suite
}

func (t *testCumulative) candidates() election.Candidates {
	return election.Candidates{"A", "B", "C"}
}

func (t *testCumulative) support() map[election.Candidate]float64 {
	return map[election.Candidate]float64{"A": 1, "B": 1, "C": 1}
}

func (t *testCumulative) TestInvalidPoints() {
	_, err := NewCumulative(t.candidates(), t.support(), 0, 1)
	t.True(InvalidGeneratorConfigError.Equal(err))
}

func (t *testCumulative) TestPointsSpent() {
	g, err := NewCumulative(t.candidates(), t.support(), 3, 2)
	t.NoError(err)
	t.Equal(3, g.Points())

	p, err := g.Generate(40)
	t.NoError(err)
	t.Equal("40", p.TotalWeight().String())

	budget := common.NewRatFromInt(3)
	for _, b := range p.Ballots() {
		total := common.ZeroRat
		for c, s := range b.Scores() {
			t.True(s.IsInt())
			t.True(s.Cmp(common.ZeroRat) > 0, "candidate=%s", c)
			total = total.Add(s)
		}
		t.True(total.Equal(budget))
		t.False(b.IsRanked())
	}
}

func (t *testCumulative) TestFeedsCumulativeRule() {
	g, err := NewCumulative(t.candidates(), t.support(), 2, 4)
	t.NoError(err)

	p, err := g.Generate(60)
	t.NoError(err)

	rule, err := election.NewCumulative(p, election.Config{
		Seats:    2,
		Tiebreak: election.TiebreakRandom,
	})
	t.NoError(err)

	result, err := rule.Run()
	t.NoError(err)
	t.Len(result.Winners(), 2)
}

func (t *testCumulative) TestDeterministic() {
	first, _ := NewCumulative(t.candidates(), t.support(), 3, 6)
	second, _ := NewCumulative(t.candidates(), t.support(), 3, 6)

	a, err := first.Generate(30)
	t.NoError(err)
	b, err := second.Generate(30)
	t.NoError(err)

	t.True(a.Equal(b))
}

func TestCumulative(t *testing.T) {
	suite.Run(t, new(testCumulative))
}
