package common

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/suite"
)

type testError struct {
	suite.Suite
}

func (t *testError) TestEscapeMessage() {
	err := NewError("t", 0, "1 < 2")
	t.Equal("{'code':'t-0','message':'1 < 2'}", strings.TrimSpace(err.Error()))
}

func (t *testError) TestEqualByCode() {
	a := NewError("t", 1, "showme")
	b := a.Newf("input=%q", "findme")

	t.True(a.Equal(b))
	t.Contains(b.Message(), "findme")
}

func (t *testError) TestNewWrapsError() {
	a := NewError("t", 2, "outer")
	b := a.New(NewError("t", 3, "inner"))

	t.True(a.Equal(b))
	t.Contains(b.Message(), "inner")
}

func TestError(t *testing.T) {
	suite.Run(t, new(testError))
}
