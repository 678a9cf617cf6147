package election

import (
	"math/rand"

	"github.com/spikeekips/pyo/common"
)

// TopTwo narrows the field to the two strongest candidates by first-place
// weight, then runs them off head to head: every ballot counts for
// whichever finalist it ranks higher.
type TopTwo struct {
	*common.Logger
	tiebreak TiebreakKind
	profile  PreferenceProfile
	rnd      *rand.Rand
	finished bool
}

func NewTopTwo(p PreferenceProfile, config Config) (*TopTwo, error) {
	if p.Candidates().Len() < 2 {
		return nil, InvalidProfileError.Newf("candidates=%d", p.Candidates().Len())
	}
	if !config.Tiebreak.IsValid() {
		return nil, InvalidConfigError.Newf("unknown tiebreak kind=%d", config.Tiebreak)
	}

	return &TopTwo{
		Logger:   common.NewLogger(log, "rule", "top-two"),
		tiebreak: config.Tiebreak,
		profile:  p.Condense(),
		rnd:      newRandomSource(config.Seed),
	}, nil
}

func (t *TopTwo) Name() string {
	return "top-two"
}

func (t *TopTwo) Seats() int {
	return 1
}

func (t *TopTwo) Run() (Result, error) {
	startedAt := common.Now()

	if t.finished {
		return Result{}, ElectionFinishedError.Newf("rule=%s", t.Name())
	}
	t.finished = true

	candidates := t.profile.Candidates()
	tallies := FirstPlaceTallies(t.profile, candidates)

	advanced, _, narrowTiebreaks, _, err := electFromTiers(
		RankByScore(restrictScores(tallies, candidates)),
		2, t.tiebreak, t.profile, t.rnd,
	)
	if err != nil {
		return Result{}, err
	}

	finalists := advanced.Candidates()
	narrowed := t.profile.StripCandidates(candidates.Without(finalists...)...)

	states := []ElectionState{{
		round:     1,
		profile:   t.profile,
		tallies:   tallies,
		exhausted: common.ZeroRat,
		tiebreaks: narrowTiebreaks,
		decided:   map[Candidate]int{},
	}}

	runoff := FirstPlaceTallies(narrowed, finalists)

	winner := finalists[0]
	var runoffTiebreaks []TiebreakRecord
	switch runoff[finalists[0]].Cmp(runoff[finalists[1]]) {
	case -1:
		winner = finalists[1]
	case 0:
		order, err := t.tiebreak.BreakTie(finalists, t.profile, t.rnd)
		if err != nil {
			return newResult(t.Name(), 1, states, nil, nil, false, startedAt), err
		}
		runoffTiebreaks = append(runoffTiebreaks, TiebreakRecord{
			Round: 2, Kind: t.tiebreak, Tied: finalists.Sorted(), Order: order,
		})
		winner = order[0]
	}

	runnerUp := finalists.Without(winner)[0]
	elected := Ranking{Candidates{winner}}

	exhausted := t.profile.TotalWeight().Sub(narrowed.TotalWeight())
	states = append(states, ElectionState{
		round:     2,
		profile:   narrowed,
		tallies:   runoff,
		elected:   elected.Copy(),
		exhausted: exhausted,
		tiebreaks: runoffTiebreaks,
		decided:   map[Candidate]int{winner: 2},
	})

	ranking := Ranking{Candidates{winner}, Candidates{runnerUp}}
	for _, tier := range RankByScore(restrictScores(tallies, candidates.Without(finalists...))) {
		ranking = append(ranking, tier)
	}

	result := newResult(t.Name(), 1, states, elected, ranking, false, startedAt)
	t.Log().Debug("count finished", "winner", winner)

	return result, nil
}
