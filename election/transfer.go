package election

import (
	"encoding/json"
	"math/rand"

	"github.com/spikeekips/pyo/common"
)

type TransferKind uint

const (
	TransferFractional TransferKind = iota
	TransferRandom
	TransferNone
)

func (t TransferKind) String() string {
	switch t {
	case TransferFractional:
		return "fractional"
	case TransferRandom:
		return "random"
	case TransferNone:
		return "none"
	default:
		return ""
	}
}

func (t TransferKind) IsValid() bool {
	switch t {
	case TransferFractional, TransferRandom, TransferNone:
		return true
	default:
		return false
	}
}

func (t TransferKind) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

// TransferStrategy redistributes the ballots credited to a candidate who
// leaves the count. For a winner the surplus is tally minus threshold; for
// an eliminated candidate the surplus is the full tally. The moved ballots
// no longer mention the source candidate; weight that cannot reach any
// remaining candidate is reported as exhausted.
type TransferStrategy interface {
	Kind() TransferKind
	Transfer(source Candidate, credited []Ballot, surplus common.Rat, remaining Candidates, rnd *rand.Rand) ([]Ballot, common.Rat, error)
}

func NewTransferStrategy(kind TransferKind) (TransferStrategy, error) {
	switch kind {
	case TransferFractional:
		return FractionalTransfer{}, nil
	case TransferRandom:
		return RandomTransfer{}, nil
	case TransferNone:
		return NoneTransfer{}, nil
	default:
		return nil, InvalidConfigError.Newf("unknown transfer kind=%d", kind)
	}
}

// FractionalTransfer rescales every credited ballot by surplus over the
// total credited weight, so each ballot carries the same share of the
// surplus onward.
type FractionalTransfer struct{}

func (FractionalTransfer) Kind() TransferKind {
	return TransferFractional
}

func (FractionalTransfer) Transfer(source Candidate, credited []Ballot, surplus common.Rat, remaining Candidates, _ *rand.Rand) ([]Ballot, common.Rat, error) {
	total := common.ZeroRat
	for _, b := range credited {
		total = total.Add(b.Weight())
	}

	factor, ok := surplus.QuoOK(total)
	if !ok || surplus.IsZero() {
		return nil, common.ZeroRat, nil
	}

	var moved []Ballot
	exhausted := common.ZeroRat
	for _, b := range credited {
		w := b.Weight().Mul(factor)
		if w.IsZero() {
			continue
		}

		stripped := b.StripCandidates(source)
		if _, found := stripped.FirstPreference(remaining); !found {
			exhausted = exhausted.Add(w)
			continue
		}

		nb, err := stripped.WithWeight(w)
		if err != nil {
			return nil, common.ZeroRat, err
		}
		moved = append(moved, nb)
	}

	return moved, exhausted, nil
}

// RandomTransfer moves whole ballots chosen uniformly at random. Every
// credited ballot must carry integer weight; the surplus is rounded half
// up to pick how many units move.
type RandomTransfer struct{}

func (RandomTransfer) Kind() TransferKind {
	return TransferRandom
}

func (RandomTransfer) Transfer(source Candidate, credited []Ballot, surplus common.Rat, remaining Candidates, rnd *rand.Rand) ([]Ballot, common.Rat, error) {
	if rnd == nil {
		return nil, common.ZeroRat, InvalidConfigError.Newf("random source is not set")
	}

	var units []Ballot
	for _, b := range credited {
		if !b.Weight().IsInt() {
			return nil, common.ZeroRat, NonIntegerWeightError.Newf(
				"weight=%s", b.Weight().String(),
			)
		}

		unit, err := b.WithWeight(common.OneRat)
		if err != nil {
			return nil, common.ZeroRat, err
		}
		for i := int64(0); i < b.Weight().Int64(); i++ {
			units = append(units, unit)
		}
	}

	count := int(surplus.RoundHalfUp().Int64())
	if count < 0 {
		count = 0
	}
	if count > len(units) {
		count = len(units)
	}
	if count == 0 {
		return nil, common.ZeroRat, nil
	}

	var moved []Ballot
	exhausted := common.ZeroRat
	for _, i := range rnd.Perm(len(units))[:count] {
		stripped := units[i].StripCandidates(source)
		if _, found := stripped.FirstPreference(remaining); !found {
			exhausted = exhausted.Add(common.OneRat)
			continue
		}
		moved = append(moved, stripped)
	}

	return moved, exhausted, nil
}

// NoneTransfer discards the surplus entirely; every transferable unit of
// weight becomes exhausted. Sequential RCV counts this way.
type NoneTransfer struct{}

func (NoneTransfer) Kind() TransferKind {
	return TransferNone
}

func (NoneTransfer) Transfer(_ Candidate, _ []Ballot, surplus common.Rat, _ Candidates, _ *rand.Rand) ([]Ballot, common.Rat, error) {
	if surplus.IsNegative() {
		return nil, common.ZeroRat, nil
	}

	return nil, surplus, nil
}
