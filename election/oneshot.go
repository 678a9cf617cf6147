package election

import (
	"math/rand"

	"github.com/spikeekips/pyo/common"
)

// oneShotRule decides every seat in a single round from one score table.
// The plurality, bloc, Borda and score-family rules all count this way
// and differ only in how the table is built.
type oneShotRule struct {
	*common.Logger
	name     string
	seats    int
	tiebreak TiebreakKind
	rnd      *rand.Rand
	profile  PreferenceProfile
	score    func(PreferenceProfile, Candidates) map[Candidate]common.Rat
	finished bool
}

func newOneShotRule(
	name string,
	p PreferenceProfile,
	seats int,
	tiebreak TiebreakKind,
	seed int64,
	score func(PreferenceProfile, Candidates) map[Candidate]common.Rat,
) (*oneShotRule, error) {
	if seats < 1 {
		return nil, InvalidConfigError.Newf("seats=%d", seats)
	}
	if seats > p.Candidates().Len() {
		return nil, InvalidConfigError.Newf(
			"seats=%d exceeds candidates=%d", seats, p.Candidates().Len(),
		)
	}
	if !tiebreak.IsValid() {
		return nil, InvalidConfigError.Newf("unknown tiebreak kind=%d", tiebreak)
	}

	return &oneShotRule{
		Logger:   common.NewLogger(log, "rule", name, "seats", seats),
		name:     name,
		seats:    seats,
		tiebreak: tiebreak,
		rnd:      newRandomSource(seed),
		profile:  p.Condense(),
		score:    score,
	}, nil
}

func (r *oneShotRule) Name() string {
	return r.name
}

func (r *oneShotRule) Seats() int {
	return r.seats
}

func (r *oneShotRule) Run() (Result, error) {
	startedAt := common.Now()

	if r.finished {
		return Result{}, ElectionFinishedError.Newf("rule=%s", r.name)
	}
	r.finished = true

	candidates := r.profile.Candidates()
	tallies := r.score(r.profile, candidates)

	tiers := RankByScore(restrictScores(tallies, candidates))
	elected, full, tiebreaks, decided, err := electFromTiers(tiers, r.seats, r.tiebreak, r.profile, r.rnd)
	if err != nil {
		return Result{}, err
	}

	state := ElectionState{
		round:         1,
		profile:       r.profile,
		tallies:       tallies,
		elected:       elected.Copy(),
		exhausted:     common.ZeroRat,
		electedWeight: common.ZeroRat,
		tiebreaks:     tiebreaks,
		decided:       decided,
	}

	result := newResult(r.name, r.seats, []ElectionState{state}, elected, full, false, startedAt)
	r.Log().Debug("count finished", "elected", result.Winners().Strings())

	return result, nil
}
