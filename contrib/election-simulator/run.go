package main

import (
	"fmt"
	"strings"
	"sync"

	"github.com/spf13/cobra"
	"golang.org/x/sync/syncmap"

	"github.com/spikeekips/pyo/common"
	"github.com/spikeekips/pyo/election"
	"github.com/spikeekips/pyo/generator"
)

var (
	flagOneByOne  bool
	flagFinalists uint = 4
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "run repeated elections over generated profiles",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		if err := run(); err != nil {
			printError(cmd, err)
		}
	},
}

func init() {
	runCmd.Flags().StringVar(&flagCandidates, "candidates", flagCandidates, "comma separated candidate names")
	runCmd.Flags().UintVar(&flagBallots, "ballots", flagBallots, "ballots per trial")
	runCmd.Flags().UintVar(&flagTrials, "trials", flagTrials, "number of trials")
	runCmd.Flags().UintVar(&flagConcurrency, "concurrency", flagConcurrency, "trials counted at once")
	runCmd.Flags().UintVar(&flagSeats, "seats", flagSeats, "seats to fill")
	runCmd.Flags().Int64Var(&flagSeed, "seed", flagSeed, "base random seed")
	runCmd.Flags().Float64Var(&flagAlpha, "alpha", flagAlpha, "dirichlet concentration for the pl generator")
	runCmd.Flags().StringVar(&flagRule, "rule", flagRule,
		"rule: {stv irv sequential-rcv plurality sntv bloc borda alaska top-two dominating-sets condo-borda approval cumulative}")
	runCmd.Flags().StringVar(&flagGenerator, "generator", flagGenerator, "generator: {ic iac pl cumulative}")
	runCmd.Flags().Var(&flagQuota, "quota", "quota: {droop hare hare+1}")
	runCmd.Flags().Var(&flagTransfer, "transfer", "transfer: {fractional random none}")
	runCmd.Flags().Var(&flagTiebreak, "tiebreak", "tiebreak: {none random firstplace borda}")
	runCmd.Flags().BoolVar(&flagOneByOne, "one-by-one", flagOneByOne, "elect only the strongest candidate per round")
	runCmd.Flags().UintVar(&flagFinalists, "finalists", flagFinalists, "finalists kept by the alaska rule")

	rootCmd.AddCommand(runCmd)
}

type trialOutcome struct {
	Winners []string `json:"winners"`
	Rounds  int      `json:"rounds"`
	Short   bool     `json:"short"`
	Error   string   `json:"error,omitempty"`
	ID      string   `json:"id,omitempty"`
}

func parseCandidates() (election.Candidates, error) {
	var candidates election.Candidates
	for _, s := range strings.Split(flagCandidates, ",") {
		s = strings.TrimSpace(s)
		if len(s) < 1 {
			continue
		}
		candidates = append(candidates, election.Candidate(s))
	}
	if len(candidates) < 1 {
		return nil, FlagError.Newf("no candidates: %q", flagCandidates)
	}
	if len(candidates.Dedup()) != len(candidates) {
		return nil, FlagError.Newf("duplicate candidates: %q", flagCandidates)
	}

	return candidates, nil
}

func newGenerator(candidates election.Candidates, seed int64) (generator.Generator, error) {
	switch strings.ToLower(flagGenerator) {
	case "ic":
		return generator.NewImpartialCulture(candidates, seed)
	case "iac":
		return generator.NewImpartialAnonymousCulture(candidates, seed)
	case "pl":
		return generator.NewDirichletPlackettLuce(candidates, flagAlpha, seed)
	case "cumulative":
		support := map[election.Candidate]float64{}
		for _, c := range candidates {
			support[c] = 1
		}

		return generator.NewCumulative(candidates, support, int(flagSeats), seed)
	default:
		return nil, FlagError.Newf("invalid generator: %q", flagGenerator)
	}
}

func newRule(p election.PreferenceProfile, seed int64) (election.Rule, error) {
	config := election.Config{
		Seats:    int(flagSeats),
		Quota:    flagQuota.k,
		Transfer: flagTransfer.k,
		Tiebreak: flagTiebreak.k,
		OneByOne: flagOneByOne,
		Seed:     seed,
	}

	switch strings.ToLower(flagRule) {
	case "stv":
		return election.NewSTV(p, config)
	case "irv":
		return election.NewIRV(p, config)
	case "sequential-rcv":
		return election.NewSequentialRCV(p, config)
	case "plurality":
		return election.NewPlurality(p, config)
	case "sntv":
		return election.NewSNTV(p, config)
	case "bloc":
		return election.NewBlocPlurality(p, config)
	case "borda":
		return election.NewBorda(p, config)
	case "alaska":
		return election.NewAlaska(p, config, int(flagFinalists))
	case "top-two":
		return election.NewTopTwo(p, config)
	case "dominating-sets":
		return election.NewDominatingSets(p)
	case "condo-borda":
		return election.NewCondoBorda(p, config)
	case "approval":
		return election.NewApproval(p, config)
	case "cumulative":
		return election.NewCumulative(p, config)
	default:
		return nil, FlagError.Newf("invalid rule: %q", flagRule)
	}
}

func runTrial(candidates election.Candidates, trial uint) trialOutcome {
	seed := flagSeed + int64(trial)

	gen, err := newGenerator(candidates, seed)
	if err != nil {
		return trialOutcome{Error: err.Error()}
	}

	profile, err := gen.Generate(int(flagBallots))
	if err != nil {
		return trialOutcome{Error: err.Error()}
	}

	rule, err := newRule(profile, seed)
	if err != nil {
		return trialOutcome{Error: err.Error()}
	}

	result, err := rule.Run()
	if err != nil {
		return trialOutcome{Error: err.Error()}
	}

	return trialOutcome{
		Winners: result.Winners().Strings(),
		Rounds:  result.Rounds(),
		Short:   result.Short(),
		ID:      result.ID(),
	}
}

func run() error {
	candidates, err := parseCandidates()
	if err != nil {
		return err
	}
	if flagTrials < 1 {
		return FlagError.Newf("trials=%d", flagTrials)
	}

	concurrency := flagConcurrency
	if concurrency < 1 {
		concurrency = 1
	}

	log.Info("simulation started",
		"rule", flagRule,
		"generator", flagGenerator,
		"candidates", candidates.Strings(),
		"ballots", flagBallots,
		"trials", flagTrials,
	)

	var outcomes syncmap.Map

	sem := make(chan struct{}, concurrency)
	var wg sync.WaitGroup
	wg.Add(int(flagTrials))
	for t := uint(0); t < flagTrials; t++ {
		sem <- struct{}{}
		go func(t uint) {
			defer wg.Done()
			defer func() { <-sem }()

			outcomes.Store(t, runTrial(candidates, t))
		}(t)
	}
	wg.Wait()

	wins := map[string]uint{}
	var errors, shorts uint
	var totalRounds int
	trials := make([]trialOutcome, flagTrials)
	for t := uint(0); t < flagTrials; t++ {
		v, _ := outcomes.Load(t)
		outcome := v.(trialOutcome)
		trials[t] = outcome

		if len(outcome.Error) > 0 {
			errors++
			continue
		}
		if outcome.Short {
			shorts++
		}
		totalRounds += outcome.Rounds
		for _, w := range outcome.Winners {
			wins[w]++
		}
	}

	summary := map[string]interface{}{
		"rule":       flagRule,
		"generator":  flagGenerator,
		"candidates": candidates.Strings(),
		"ballots":    flagBallots,
		"trials":     flagTrials,
		"seats":      flagSeats,
		"wins":       wins,
		"errors":     errors,
		"shorts":     shorts,
	}
	if flagTrials > errors {
		summary["mean_rounds"] = float64(totalRounds) / float64(flagTrials-errors)
	}
	if !flagQuiet {
		summary["outcomes"] = trials
	}

	b, err := common.EncodeJSON(summary, true, false)
	if err != nil {
		return err
	}
	fmt.Println(string(b))

	return nil
}
