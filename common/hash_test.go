package common

import (
	"testing"

	"github.com/stretchr/testify/suite"
)

type testHash struct {
	suite.Suite
}

func (t *testHash) TestNew() {
	h, err := NewHash("bl", []byte("showme"))
	t.NoError(err)
	t.True(h.IsValid())
	t.Equal("bl", h.Hint())
}

func (t *testHash) TestInvalidHint() {
	_, err := NewHash("bad-hint", []byte("showme"))
	t.True(InvalidHashHintError.Equal(err))
}

func (t *testHash) TestFromObjectDeterministic() {
	a, err := NewHashFromObject("bl", []interface{}{"a", "b"})
	t.NoError(err)

	b, err := NewHashFromObject("bl", []interface{}{"a", "b"})
	t.NoError(err)
	t.True(a.Equal(b))

	c, err := NewHashFromObject("bl", []interface{}{"b", "a"})
	t.NoError(err)
	t.False(a.Equal(c))
}

func (t *testHash) TestMarshalBinary() {
	a, err := NewHash("pf", []byte("findme"))
	t.NoError(err)

	b, err := a.MarshalBinary()
	t.NoError(err)

	var n Hash
	err = n.UnmarshalBinary(b)
	t.NoError(err)
	t.True(a.Equal(n))
	t.Equal(a.String(), n.String())
}

func TestHash(t *testing.T) {
	suite.Run(t, new(testHash))
}
