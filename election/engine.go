package election

import (
	"math/rand"

	"github.com/spikeekips/pyo/common"
)

// Rule runs one election over a fixed profile. A Rule instance is good
// for a single Run; construct a new one to count again.
type Rule interface {
	Name() string
	Seats() int
	Run() (Result, error)
}

// Config carries the knobs shared by the round-based rules. The zero
// value selects one seat, the Droop quota, fractional transfers and no
// tiebreaking, electing everyone over the threshold in the same round.
type Config struct {
	Seats    int          `json:"seats"`
	Quota    QuotaKind    `json:"quota"`
	Transfer TransferKind `json:"transfer"`
	Tiebreak TiebreakKind `json:"tiebreak"`
	// OneByOne elects only the single strongest candidate per round when
	// several cross the threshold together.
	OneByOne bool  `json:"one_by_one"`
	Seed     int64 `json:"seed"`
}

func (c Config) IsValid(candidates Candidates) error {
	if c.Seats < 1 {
		return InvalidConfigError.Newf("seats=%d", c.Seats)
	}
	if c.Seats > len(candidates) {
		return InvalidConfigError.Newf(
			"seats=%d exceeds candidates=%d", c.Seats, len(candidates),
		)
	}
	if !c.Quota.IsValid() {
		return InvalidConfigError.Newf("unknown quota kind=%d", c.Quota)
	}
	if !c.Transfer.IsValid() {
		return InvalidConfigError.Newf("unknown transfer kind=%d", c.Transfer)
	}
	if !c.Tiebreak.IsValid() {
		return InvalidConfigError.Newf("unknown tiebreak kind=%d", c.Tiebreak)
	}

	return nil
}

func newRandomSource(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// electFromTiers seats the first `seats` candidates from an ordered tier
// list. A tier straddling the last seat is put in strict order by the
// tiebreaker and split there.
func electFromTiers(
	tiers Ranking,
	seats int,
	tiebreak TiebreakKind,
	p PreferenceProfile,
	rnd *rand.Rand,
) (Ranking, Ranking, []TiebreakRecord, map[Candidate]int, error) {
	var elected, full Ranking
	var tiebreaks []TiebreakRecord
	decided := map[Candidate]int{}

	count := 0
	for _, tier := range tiers {
		switch {
		case count >= seats:
			full = append(full, tier)
		case count+len(tier) <= seats:
			elected = append(elected, tier)
			full = append(full, tier)
			for _, c := range tier {
				decided[c] = 1
			}
			count += len(tier)
		default:
			order, err := tiebreak.BreakTie(tier, p, rnd)
			if err != nil {
				return nil, nil, nil, nil, err
			}
			tiebreaks = append(tiebreaks, TiebreakRecord{
				Round: 1, Kind: tiebreak, Tied: tier.Sorted(), Order: order,
			})

			need := seats - count
			for _, c := range order[:need] {
				elected = append(elected, Candidates{c})
				full = append(full, Candidates{c})
				decided[c] = 1
			}
			full = append(full, Candidates(order[need:]))
			count = seats
		}
	}

	return elected, full, tiebreaks, decided, nil
}

// buildRanking assembles a full order over all candidates: winners first
// in election order, then the still-active candidates grouped by tally,
// then the eliminated in reverse elimination order.
func buildRanking(elected Ranking, remaining Candidates, tallies map[Candidate]common.Rat, eliminated Candidates) Ranking {
	ranking := elected.Copy()

	if len(remaining) > 0 {
		ranking = append(ranking, RankByScore(restrictScores(tallies, remaining))...)
	}

	for i := len(eliminated) - 1; i >= 0; i-- {
		ranking = append(ranking, Candidates{eliminated[i]})
	}

	return ranking
}
