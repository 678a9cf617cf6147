package generator

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/spikeekips/pyo/election"
)

type testCulture struct {
	suite.Suite
}

func (t *testCulture) candidates() election.Candidates {
	return election.Candidates{"A", "B", "C", "D"}
}

func (t *testCulture) TestInvalidCandidates() {
	_, err := NewImpartialCulture(nil, 1)
	t.True(InvalidGeneratorConfigError.Equal(err))

	_, err = NewImpartialCulture(election.Candidates{"A", "A"}, 1)
	t.True(InvalidGeneratorConfigError.Equal(err))
}

func (t *testCulture) TestImpartialCulture() {
	g, err := NewImpartialCulture(t.candidates(), 1)
	t.NoError(err)

	p, err := g.Generate(100)
	t.NoError(err)

	t.Equal("100", p.TotalWeight().String())
	t.Equal(t.candidates(), p.Candidates().Sorted())

	for _, b := range p.Ballots() {
		t.False(b.Ranking().HasTies())
		t.Equal(4, b.Ranking().Candidates().Len())
	}
}

func (t *testCulture) TestImpartialCultureDeterministic() {
	first, err := NewImpartialCulture(t.candidates(), 7)
	t.NoError(err)
	second, err := NewImpartialCulture(t.candidates(), 7)
	t.NoError(err)

	a, err := first.Generate(50)
	t.NoError(err)
	b, err := second.Generate(50)
	t.NoError(err)

	t.True(a.Equal(b))
}

func (t *testCulture) TestImpartialCultureSeedMatters() {
	first, _ := NewImpartialCulture(t.candidates(), 7)
	second, _ := NewImpartialCulture(t.candidates(), 8)

	a, _ := first.Generate(50)
	b, _ := second.Generate(50)

	t.False(a.Equal(b))
}

func (t *testCulture) TestImpartialAnonymousCulture() {
	g, err := NewImpartialAnonymousCulture(t.candidates(), 3)
	t.NoError(err)

	p, err := g.Generate(200)
	t.NoError(err)
	t.Equal("200", p.TotalWeight().String())

	// the urn piles weight onto repeated rankings
	t.True(p.NumBallots() < 200)
}

func (t *testCulture) TestGenerateInvalidCount() {
	g, _ := NewImpartialCulture(t.candidates(), 1)

	_, err := g.Generate(0)
	t.True(InvalidGeneratorConfigError.Equal(err))
}

func TestCulture(t *testing.T) {
	suite.Run(t, new(testCulture))
}
