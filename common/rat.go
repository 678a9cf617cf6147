package common

import (
	"encoding/json"
	"math/big"
)

var (
	ZeroRat Rat = NewRatFromInt(0)
	OneRat  Rat = NewRatFromInt(1)
)

// Rat is the exact rational number used for every ballot weight and quota
// computation. It wraps math/big.Rat as an immutable value; every operation
// allocates a new Rat and never touches its operands.
type Rat struct {
	big.Rat
}

func NewRat(num, denom int64) Rat {
	var a big.Rat
	a.SetFrac64(num, denom)

	return Rat{Rat: a}
}

func NewRatFromInt(i int64) Rat {
	var a big.Rat
	a.SetInt64(i)

	return Rat{Rat: a}
}

// ParseRat accepts "3", "3/2" and "1.5" forms.
func ParseRat(s string) (Rat, error) {
	var a big.Rat
	if _, ok := a.SetString(s); !ok {
		return Rat{}, InvalidRatStringError.Newf("input=%q", s)
	}

	return Rat{Rat: a}, nil
}

func (a Rat) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

func (a *Rat) UnmarshalText(b []byte) error {
	p, err := ParseRat(string(b))
	if err != nil {
		return err
	}

	*a = p

	return nil
}

func (a Rat) MarshalJSON() ([]byte, error) {
	return json.Marshal(a.String())
}

func (a *Rat) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return JSONUnmarshalError.New(err)
	}

	return a.UnmarshalText([]byte(s))
}

func (a Rat) String() string {
	if a.IsInt() {
		return a.Rat.Num().String()
	}

	return a.Rat.RatString()
}

func (a Rat) Add(n Rat) Rat {
	var b big.Rat
	b.Add(&a.Rat, &n.Rat)

	return Rat{Rat: b}
}

func (a Rat) Sub(n Rat) Rat {
	var b big.Rat
	b.Sub(&a.Rat, &n.Rat)

	return Rat{Rat: b}
}

func (a Rat) Mul(n Rat) Rat {
	var b big.Rat
	b.Mul(&a.Rat, &n.Rat)

	return Rat{Rat: b}
}

func (a Rat) Quo(n Rat) Rat {
	b, _ := a.QuoOK(n)
	return b
}

func (a Rat) QuoOK(n Rat) (Rat, bool) {
	if n.IsZero() {
		return Rat{}, false
	}

	var b big.Rat
	b.Quo(&a.Rat, &n.Rat)

	return Rat{Rat: b}, true
}

func (a Rat) Cmp(n Rat) int {
	return a.Rat.Cmp(&n.Rat)
}

func (a Rat) Equal(n Rat) bool {
	return a.Cmp(n) == 0
}

func (a Rat) IsZero() bool {
	return a.Rat.Sign() == 0
}

func (a Rat) IsNegative() bool {
	return a.Rat.Sign() < 0
}

func (a Rat) IsInt() bool {
	return a.Rat.IsInt()
}

// Floor returns the largest integer not greater than a, as Rat.
func (a Rat) Floor() Rat {
	var q big.Int
	var r big.Int
	q.QuoRem(a.Rat.Num(), a.Rat.Denom(), &r)

	if r.Sign() < 0 {
		q.Sub(&q, big.NewInt(1))
	}

	var b big.Rat
	b.SetInt(&q)

	return Rat{Rat: b}
}

func (a Rat) Neg() Rat {
	var b big.Rat
	b.Neg(&a.Rat)

	return Rat{Rat: b}
}

// RoundHalfUp rounds to the nearest integer; exact halves round away from
// zero.
func (a Rat) RoundHalfUp() Rat {
	half := NewRat(1, 2)
	if a.IsNegative() {
		return a.Neg().Add(half).Floor().Neg()
	}

	return a.Add(half).Floor()
}

// Int64 returns the integer value; valid only when IsInt.
func (a Rat) Int64() int64 {
	return a.Rat.Num().Int64()
}

func (a Rat) Float64() float64 {
	f, _ := a.Rat.Float64()
	return f
}
