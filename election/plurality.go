package election

import "github.com/spikeekips/pyo/common"

// NewPlurality elects the candidates with the most first-place weight.
func NewPlurality(p PreferenceProfile, config Config) (Rule, error) {
	return newOneShotRule("plurality", p, config.Seats, config.Tiebreak, config.Seed, FirstPlaceTallies)
}

// NewSNTV is multi-winner plurality under its usual name, the single
// non-transferable vote.
func NewSNTV(p PreferenceProfile, config Config) (Rule, error) {
	return newOneShotRule("sntv", p, config.Seats, config.Tiebreak, config.Seed, FirstPlaceTallies)
}

// NewBlocPlurality lets every ballot support as many candidates as there
// are seats; the most supported candidates win.
func NewBlocPlurality(p PreferenceProfile, config Config) (Rule, error) {
	seats := config.Seats

	return newOneShotRule("bloc", p, seats, config.Tiebreak, config.Seed,
		func(p PreferenceProfile, candidates Candidates) map[Candidate]common.Rat {
			return BlocTallies(p, candidates, seats)
		})
}
