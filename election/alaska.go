package election

import (
	"math/rand"

	"github.com/spikeekips/pyo/common"
)

// Alaska narrows the field to a configured number of finalists by
// first-place weight, then counts STV over the finalists only.
type Alaska struct {
	*common.Logger
	config    Config
	finalists int
	profile   PreferenceProfile
	rnd       *rand.Rand
	finished  bool
}

func NewAlaska(p PreferenceProfile, config Config, finalists int) (*Alaska, error) {
	if err := config.IsValid(p.Candidates()); err != nil {
		return nil, err
	}
	if finalists < config.Seats || finalists > p.Candidates().Len() {
		return nil, InvalidConfigError.Newf(
			"finalists=%d outside seats=%d..candidates=%d",
			finalists, config.Seats, p.Candidates().Len(),
		)
	}

	return &Alaska{
		Logger: common.NewLogger(log,
			"rule", "alaska",
			"seats", config.Seats,
			"finalists", finalists,
		),
		config:    config,
		finalists: finalists,
		profile:   p.Condense(),
		rnd:       newRandomSource(config.Seed),
	}, nil
}

func (a *Alaska) Name() string {
	return "alaska"
}

func (a *Alaska) Seats() int {
	return a.config.Seats
}

func (a *Alaska) Run() (Result, error) {
	startedAt := common.Now()

	if a.finished {
		return Result{}, ElectionFinishedError.Newf("rule=%s", a.Name())
	}
	a.finished = true

	candidates := a.profile.Candidates()
	tallies := FirstPlaceTallies(a.profile, candidates)

	advanced, _, tiebreaks, decided, err := electFromTiers(
		RankByScore(restrictScores(tallies, candidates)),
		a.finalists, a.config.Tiebreak, a.profile, a.rnd,
	)
	if err != nil {
		return Result{}, err
	}

	finalists := advanced.Candidates()
	narrowed := a.profile.StripCandidates(candidates.Without(finalists...)...)

	narrowState := ElectionState{
		round:     1,
		profile:   a.profile,
		tallies:   tallies,
		exhausted: common.ZeroRat,
		tiebreaks: tiebreaks,
		decided:   decided,
	}

	a.Log().Debug("field narrowed", "finalists", finalists.Sorted().Strings())

	stv, err := newNamedSTV("alaska", narrowed, a.config)
	if err != nil {
		return newResult(a.Name(), a.config.Seats, []ElectionState{narrowState}, nil, nil, false, startedAt), err
	}

	final, err := stv.Run()

	states := []ElectionState{narrowState}
	for _, st := range final.States() {
		st.round += 1
		states = append(states, st)
	}

	ranking := final.Ranking()
	for _, tier := range RankByScore(restrictScores(tallies, candidates.Without(finalists...))) {
		ranking = append(ranking, tier)
	}

	return newResult(a.Name(), a.config.Seats, states, final.Elected(), ranking, final.Short(), startedAt), err
}
