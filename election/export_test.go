package election

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/spikeekips/pyo/common"
)

type testExport struct {
	suite.Suite
}

func (t *testExport) TestRoundTrip() {
	scores := map[Candidate]common.Rat{"C": common.NewRat(3, 2)}
	p := MustNewPreferenceProfile([]Ballot{
		strictBallot(3, "A", "B"),
		MustNewBallot(strictRanking("B", "A"), nil, common.NewRat(1, 2), "voter0"),
		MustNewBallot(nil, scores, common.OneRat),
	}, "A", "B", "C")

	b, err := EncodeProfile(p)
	t.NoError(err)
	t.NotEmpty(b)

	decoded, version, err := DecodeProfile(b)
	t.NoError(err)
	t.True(ProfileVersion.Equal(version))
	t.True(p.Equal(decoded))
	t.Equal(p.NumBallots(), decoded.NumBallots())
	t.Equal(Candidates{"A", "B", "C"}, decoded.Candidates())

	t.Equal([]string{"voter0"}, decoded.Ballots()[1].Voters())
}

func (t *testExport) TestGarbage() {
	_, _, err := DecodeProfile([]byte("not a profile"))
	t.Error(err)
}

func TestExport(t *testing.T) {
	suite.Run(t, new(testExport))
}
