package election

import (
	"encoding/json"

	"github.com/spikeekips/pyo/common"
)

// QuotaKind selects the winning threshold formula used by multi-winner
// transferable-vote rules. The threshold is computed once from the initial
// total ballot weight and never recomputed as ballots exhaust.
type QuotaKind uint

const (
	// QuotaDroop is floor(total/(seats+1)) + 1, the smallest threshold
	// that at most `seats` candidates can reach.
	QuotaDroop QuotaKind = iota
	// QuotaHare is floor(total/seats).
	QuotaHare
	// QuotaHarePlusOne is floor(total/seats) + 1.
	QuotaHarePlusOne
)

func (q QuotaKind) String() string {
	switch q {
	case QuotaDroop:
		return "droop"
	case QuotaHare:
		return "hare"
	case QuotaHarePlusOne:
		return "hare+1"
	default:
		return ""
	}
}

func (q QuotaKind) IsValid() bool {
	switch q {
	case QuotaDroop, QuotaHare, QuotaHarePlusOne:
		return true
	default:
		return false
	}
}

func (q QuotaKind) MarshalJSON() ([]byte, error) {
	return json.Marshal(q.String())
}

// Threshold computes the quota for the given total weight and seat count.
// The total must be non-negative and seats positive.
func (q QuotaKind) Threshold(total common.Rat, seats int) (common.Rat, error) {
	if seats < 1 {
		return common.ZeroRat, InvalidQuotaInputError.Newf("seats=%d", seats)
	}
	if total.IsNegative() {
		return common.ZeroRat, InvalidQuotaInputError.Newf("total=%s", total.String())
	}

	seatsRat := common.NewRatFromInt(int64(seats))

	switch q {
	case QuotaDroop:
		return total.Quo(seatsRat.Add(common.OneRat)).Floor().Add(common.OneRat), nil
	case QuotaHare:
		return total.Quo(seatsRat).Floor(), nil
	case QuotaHarePlusOne:
		return total.Quo(seatsRat).Floor().Add(common.OneRat), nil
	default:
		return common.ZeroRat, InvalidQuotaInputError.Newf("unknown quota kind=%d", q)
	}
}
