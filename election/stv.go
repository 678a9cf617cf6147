package election

import (
	"math/rand"

	"github.com/spikeekips/pyo/common"
)

// STV counts a single transferable vote election round by round: winners
// keep a threshold worth of ballots and pass the surplus on, and when no
// one reaches the threshold the weakest candidate is eliminated and fully
// transferred. The threshold is fixed from the initial total weight.
type STV struct {
	*common.Logger
	name      string
	config    Config
	initial   PreferenceProfile
	strategy  TransferStrategy
	rnd       *rand.Rand
	threshold common.Rat

	profile       PreferenceProfile
	elected       Ranking
	eliminated    Candidates
	exhausted     common.Rat
	electedWeight common.Rat
	decided       map[Candidate]int
	tiebreaks     []TiebreakRecord
	states        []ElectionState
	round         int
	finished      bool
	short         bool
}

func NewSTV(p PreferenceProfile, config Config) (*STV, error) {
	return newNamedSTV("stv", p, config)
}

// NewIRV is single-winner STV; the Seats knob is overridden.
func NewIRV(p PreferenceProfile, config Config) (*STV, error) {
	config.Seats = 1

	return newNamedSTV("irv", p, config)
}

// NewSequentialRCV counts like STV but discards surpluses instead of
// transferring them; the Transfer knob is overridden.
func NewSequentialRCV(p PreferenceProfile, config Config) (*STV, error) {
	config.Transfer = TransferNone

	return newNamedSTV("sequential-rcv", p, config)
}

func newNamedSTV(name string, p PreferenceProfile, config Config) (*STV, error) {
	if err := config.IsValid(p.Candidates()); err != nil {
		return nil, err
	}

	for _, b := range p.Ballots() {
		if b.Ranking().HasTies() {
			return nil, InvalidBallotError.Newf(
				"tied ranking; resolve ties before counting; ballot=%s", b.Hash(),
			)
		}
	}

	strategy, err := NewTransferStrategy(config.Transfer)
	if err != nil {
		return nil, err
	}

	condensed := p.Condense()
	threshold, err := config.Quota.Threshold(condensed.TotalWeight(), config.Seats)
	if err != nil {
		return nil, err
	}

	return &STV{
		Logger: common.NewLogger(log,
			"rule", name,
			"seats", config.Seats,
			"quota", config.Quota.String(),
			"transfer", config.Transfer.String(),
		),
		name:      name,
		config:    config,
		initial:   condensed,
		strategy:  strategy,
		rnd:       newRandomSource(config.Seed),
		threshold: threshold,
		profile:   condensed,
		decided:   map[Candidate]int{},
	}, nil
}

func (s *STV) Name() string {
	return s.name
}

func (s *STV) Seats() int {
	return s.config.Seats
}

func (s *STV) Threshold() common.Rat {
	return s.threshold
}

func (s *STV) Finished() bool {
	return s.finished
}

func (s *STV) Round() int {
	return s.round
}

func (s *STV) Remaining() Candidates {
	return s.initial.Candidates().Without(s.elected.Candidates()...).Without(s.eliminated...)
}

// Run counts rounds until every seat is decided. On a round error the
// partial result holds the states counted so far.
func (s *STV) Run() (Result, error) {
	startedAt := common.Now()

	for !s.finished {
		if err := s.runRound(); err != nil {
			s.Log().Error("count stopped", "round", s.round, "error", err)

			return s.result(startedAt), err
		}
	}

	result := s.result(startedAt)
	s.Log().Debug("count finished",
		"rounds", s.round,
		"elected", result.Winners().Strings(),
		"short", s.short,
	)

	return result, nil
}

func (s *STV) result(startedAt common.Time) Result {
	remaining := s.Remaining()

	tallies := map[Candidate]common.Rat{}
	if len(s.states) > 0 {
		tallies = s.states[len(s.states)-1].tallies
	}

	return newResult(
		s.name,
		s.config.Seats,
		s.states,
		s.elected.Copy(),
		buildRanking(s.elected, remaining, tallies, s.eliminated),
		s.short,
		startedAt,
	)
}

func (s *STV) runRound() error {
	if s.finished {
		return ElectionFinishedError.Newf("round=%d", s.round)
	}

	s.round++

	remaining := s.Remaining()
	entering := s.profile
	tallies := FirstPlaceTallies(entering, remaining)

	seatsLeft := s.config.Seats - s.elected.Candidates().Len()

	var err error
	switch {
	case len(remaining) <= seatsLeft:
		s.electShort(remaining, tallies)
	case s.hasWinner(remaining, tallies):
		err = s.electWinners(remaining, tallies)
	default:
		err = s.eliminate(remaining, tallies)
	}
	if err != nil {
		return err
	}

	if s.elected.Candidates().Len() >= s.config.Seats {
		s.finished = true
	}

	s.states = append(s.states, ElectionState{
		round:         s.round,
		profile:       entering,
		tallies:       tallies,
		elected:       s.elected.Copy(),
		eliminated:    s.eliminatedCopy(),
		exhausted:     s.exhausted,
		electedWeight: s.electedWeight,
		tiebreaks:     s.tiebreaksCopy(),
		decided:       s.decidedCopy(),
	})

	return nil
}

func (s *STV) hasWinner(remaining Candidates, tallies map[Candidate]common.Rat) bool {
	for _, c := range remaining {
		if tallies[c].Cmp(s.threshold) >= 0 {
			return true
		}
	}

	return false
}

// electShort seats every remaining candidate even below the threshold;
// there are no more candidates than open seats.
func (s *STV) electShort(remaining Candidates, tallies map[Candidate]common.Rat) {
	for _, tier := range RankByScore(restrictScores(tallies, remaining)) {
		s.elected = append(s.elected, tier)
		for _, c := range tier {
			s.decided[c] = s.round
			if tallies[c].Cmp(s.threshold) < 0 {
				s.short = true
			}
		}
	}

	for _, b := range s.profile.Ballots() {
		if _, found := b.FirstPreference(remaining); found {
			s.electedWeight = s.electedWeight.Add(b.Weight())
		} else {
			s.exhausted = s.exhausted.Add(b.Weight())
		}
	}
	s.profile = MustNewPreferenceProfile(nil, s.initial.Candidates()...)
	s.finished = true

	s.Log().Debug("short election", "round", s.round, "elected", remaining.Sorted().Strings())
}

func (s *STV) electWinners(remaining Candidates, tallies map[Candidate]common.Rat) error {
	var winners Candidates
	for _, c := range remaining {
		if tallies[c].Cmp(s.threshold) >= 0 {
			winners = append(winners, c)
		}
	}

	tiers := RankByScore(restrictScores(tallies, winners))
	if s.config.OneByOne {
		top := tiers[0]
		if len(top) > 1 {
			order, err := s.breakTie(top)
			if err != nil {
				return err
			}
			top = Candidates{order[0]}
		}
		tiers = Ranking{top}
	}

	working := remaining
	for _, tier := range tiers {
		s.elected = append(s.elected, tier)
		for _, w := range tier.Sorted() {
			s.decided[w] = s.round

			if err := s.transferFrom(w, working, s.threshold); err != nil {
				return err
			}
			working = working.Without(w)
		}
	}

	return nil
}

func (s *STV) eliminate(remaining Candidates, tallies map[Candidate]common.Rat) error {
	lowest := common.ZeroRat
	var tied Candidates
	for _, c := range remaining.Sorted() {
		switch {
		case len(tied) < 1 || tallies[c].Cmp(lowest) < 0:
			lowest = tallies[c]
			tied = Candidates{c}
		case tallies[c].Equal(lowest):
			tied = append(tied, c)
		}
	}

	loser := tied[0]
	if len(tied) > 1 {
		order, err := s.breakTie(tied)
		if err != nil {
			return err
		}
		loser = order[len(order)-1]
	}

	s.eliminated = append(s.eliminated, loser)
	s.decided[loser] = s.round

	s.Log().Debug("candidate eliminated", "round", s.round, "candidate", loser, "tally", tallies[loser])

	return s.transferFrom(loser, remaining, common.ZeroRat)
}

// transferFrom moves the ballots credited to a leaving candidate. The
// candidate keeps up to `kept` weight; the rest is the surplus handed to
// the transfer strategy. Elimination passes a zero kept weight.
func (s *STV) transferFrom(source Candidate, remaining Candidates, kept common.Rat) error {
	var credited, rest []Ballot
	total := common.ZeroRat
	for _, b := range s.profile.Ballots() {
		if c, found := b.FirstPreference(remaining); found && c == source {
			credited = append(credited, b)
			total = total.Add(b.Weight())
			continue
		}
		rest = append(rest, b)
	}

	surplus := total.Sub(kept)
	if surplus.IsNegative() {
		surplus = common.ZeroRat
	}

	moved, exhausted, err := s.strategy.Transfer(source, credited, surplus, remaining.Without(source), s.rnd)
	if err != nil {
		return err
	}

	movedTotal := common.ZeroRat
	for _, b := range moved {
		movedTotal = movedTotal.Add(b.Weight())
	}

	retained := total.Sub(movedTotal).Sub(exhausted)
	if kept.IsZero() {
		// an eliminated candidate keeps nothing
		exhausted = exhausted.Add(retained)
	} else {
		s.electedWeight = s.electedWeight.Add(retained)
	}
	s.exhausted = s.exhausted.Add(exhausted)

	profile, err := NewPreferenceProfile(append(rest, moved...), s.initial.Candidates()...)
	if err != nil {
		return err
	}
	s.profile = profile.Condense()

	return nil
}

func (s *STV) breakTie(tied Candidates) (Candidates, error) {
	order, err := s.config.Tiebreak.BreakTie(tied, s.initial, s.rnd)
	if err != nil {
		return nil, err
	}

	s.tiebreaks = append(s.tiebreaks, TiebreakRecord{
		Round: s.round,
		Kind:  s.config.Tiebreak,
		Tied:  tied.Sorted(),
		Order: order,
	})

	return order, nil
}

func (s *STV) eliminatedCopy() Candidates {
	n := make(Candidates, len(s.eliminated))
	copy(n, s.eliminated)

	return n
}

func (s *STV) tiebreaksCopy() []TiebreakRecord {
	n := make([]TiebreakRecord, len(s.tiebreaks))
	copy(n, s.tiebreaks)

	return n
}

func (s *STV) decidedCopy() map[Candidate]int {
	n := map[Candidate]int{}
	for c, r := range s.decided {
		n[c] = r
	}

	return n
}
