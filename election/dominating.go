package election

import (
	"math/rand"

	"github.com/spikeekips/pyo/common"
)

// DominatingSets elects the Smith set, the smallest group whose members
// all beat every outsider head to head. The seat count follows from the
// profile instead of being configured.
type DominatingSets struct {
	*common.Logger
	profile  PreferenceProfile
	finished bool
}

func NewDominatingSets(p PreferenceProfile) (*DominatingSets, error) {
	if p.Candidates().Len() < 1 {
		return nil, InvalidProfileError.Newf("no candidates")
	}

	return &DominatingSets{
		Logger:  common.NewLogger(log, "rule", "dominating-sets"),
		profile: p.Condense(),
	}, nil
}

func (d *DominatingSets) Name() string {
	return "dominating-sets"
}

// Seats reports the Smith set size.
func (d *DominatingSets) Seats() int {
	return len(NewPairwiseMatrix(d.profile).SmithSet())
}

func (d *DominatingSets) Run() (Result, error) {
	startedAt := common.Now()

	if d.finished {
		return Result{}, ElectionFinishedError.Newf("rule=%s", d.Name())
	}
	d.finished = true

	matrix := NewPairwiseMatrix(d.profile)
	tiers := matrix.DominatingTiers()

	elected := Ranking{tiers[0]}
	decided := map[Candidate]int{}
	for _, c := range tiers[0] {
		decided[c] = 1
	}

	state := ElectionState{
		round:         1,
		profile:       d.profile,
		tallies:       copelandScores(matrix),
		elected:       elected.Copy(),
		exhausted:     common.ZeroRat,
		electedWeight: common.ZeroRat,
		decided:       decided,
	}

	result := newResult(d.Name(), len(tiers[0]), []ElectionState{state}, elected, tiers.Copy(), false, startedAt)
	d.Log().Debug("count finished", "elected", result.Winners().Strings())

	return result, nil
}

// copelandScores counts head-to-head wins per candidate.
func copelandScores(m PairwiseMatrix) map[Candidate]common.Rat {
	scores := map[Candidate]common.Rat{}
	for _, a := range m.Candidates() {
		wins := common.ZeroRat
		for _, b := range m.Candidates() {
			if a != b && m.Beats(a, b) {
				wins = wins.Add(common.OneRat)
			}
		}
		scores[a] = wins
	}

	return scores
}

// CondoBorda elects a fixed number of seats from the dominating tiers,
// ordering candidates within each tier by Borda score.
type CondoBorda struct {
	*common.Logger
	config   Config
	profile  PreferenceProfile
	rnd      *rand.Rand
	finished bool
}

func NewCondoBorda(p PreferenceProfile, config Config) (*CondoBorda, error) {
	if err := config.IsValid(p.Candidates()); err != nil {
		return nil, err
	}

	return &CondoBorda{
		Logger:  common.NewLogger(log, "rule", "condo-borda", "seats", config.Seats),
		config:  config,
		profile: p.Condense(),
		rnd:     newRandomSource(config.Seed),
	}, nil
}

func (c *CondoBorda) Name() string {
	return "condo-borda"
}

func (c *CondoBorda) Seats() int {
	return c.config.Seats
}

func (c *CondoBorda) Run() (Result, error) {
	startedAt := common.Now()

	if c.finished {
		return Result{}, ElectionFinishedError.Newf("rule=%s", c.Name())
	}
	c.finished = true

	matrix := NewPairwiseMatrix(c.profile)
	borda := BordaScores(c.profile, c.profile.Candidates())

	var tiers Ranking
	for _, dominating := range matrix.DominatingTiers() {
		tiers = append(tiers, RankByScore(restrictScores(borda, dominating))...)
	}

	elected, full, tiebreaks, decided, err := electFromTiers(
		tiers, c.config.Seats, c.config.Tiebreak, c.profile, c.rnd,
	)
	if err != nil {
		return Result{}, err
	}

	state := ElectionState{
		round:         1,
		profile:       c.profile,
		tallies:       borda,
		elected:       elected.Copy(),
		exhausted:     common.ZeroRat,
		electedWeight: common.ZeroRat,
		tiebreaks:     tiebreaks,
		decided:       decided,
	}

	result := newResult(c.Name(), c.config.Seats, []ElectionState{state}, elected, full, false, startedAt)
	c.Log().Debug("count finished", "elected", result.Winners().Strings())

	return result, nil
}
