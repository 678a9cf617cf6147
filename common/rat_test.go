package common

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/suite"
)

type testRat struct {
	suite.Suite
}

func (t *testRat) TestNew() {
	a := NewRat(3, 2)
	t.Equal("3/2", a.String())

	b := NewRatFromInt(3)
	t.Equal("3", b.String())
	t.True(b.IsInt())
	t.False(a.IsInt())
}

func (t *testRat) TestParse() {
	cases := map[string]string{
		"3":    "3",
		"3/2":  "3/2",
		"1.5":  "3/2",
		"6/4":  "3/2",
		"-1/3": "-1/3",
	}

	for input, expected := range cases {
		a, err := ParseRat(input)
		t.NoError(err)
		t.Equal(expected, a.String())
	}

	_, err := ParseRat("one third")
	t.True(InvalidRatStringError.Equal(err))
}

func (t *testRat) TestArithmetic() {
	a := NewRat(1, 3)
	b := NewRat(1, 6)

	t.Equal("1/2", a.Add(b).String())
	t.Equal("1/6", a.Sub(b).String())
	t.Equal("1/18", a.Mul(b).String())
	t.Equal("2", a.Quo(b).String())

	// operands untouched
	t.Equal("1/3", a.String())
	t.Equal("1/6", b.String())
}

func (t *testRat) TestQuoByZero() {
	a := NewRat(1, 3)

	_, ok := a.QuoOK(ZeroRat)
	t.False(ok)
}

func (t *testRat) TestFloor() {
	cases := []struct {
		input    Rat
		expected string
	}{
		{NewRat(7, 2), "3"},
		{NewRat(100, 4), "25"},
		{NewRat(100, 3), "33"},
		{NewRatFromInt(5), "5"},
		{NewRat(-7, 2), "-4"},
	}

	for _, c := range cases {
		t.Equal(c.expected, c.input.Floor().String())
	}
}

func (t *testRat) TestRoundHalfUp() {
	cases := []struct {
		input    Rat
		expected string
	}{
		{NewRat(5, 2), "3"},
		{NewRat(7, 3), "2"},
		{NewRat(8, 3), "3"},
		{NewRatFromInt(4), "4"},
		{NewRat(-5, 2), "-3"},
	}

	for _, c := range cases {
		t.Equal(c.expected, c.input.RoundHalfUp().String())
	}
}

func (t *testRat) TestNoDrift() {
	// repeated fractional subdivision stays exact
	a := NewRatFromInt(1)
	third := NewRat(1, 3)

	var sum Rat
	for i := 0; i < 100; i++ {
		sum = sum.Add(a.Mul(third))
	}

	t.Equal("100/3", sum.String())
	t.True(sum.Mul(NewRatFromInt(3)).Equal(NewRatFromInt(100)))
}

func (t *testRat) TestJSON() {
	a := NewRat(7, 3)

	b, err := json.Marshal(a)
	t.NoError(err)
	t.Equal(`"7/3"`, string(b))

	var n Rat
	err = json.Unmarshal(b, &n)
	t.NoError(err)
	t.True(a.Equal(n))
}

func TestRat(t *testing.T) {
	suite.Run(t, new(testRat))
}
