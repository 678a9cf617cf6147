package election

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/spikeekips/pyo/common"
)

// Result is the outcome of a finished run: the elected candidates in the
// order they won, the full induced ranking, and every intermediate state
// for auditing.
type Result struct {
	id         string
	rule       string
	seats      int
	states     []ElectionState
	elected    Ranking
	ranking    Ranking
	short      bool
	startedAt  common.Time
	finishedAt common.Time
}

func newResult(rule string, seats int, states []ElectionState, elected, ranking Ranking, short bool, startedAt common.Time) Result {
	return Result{
		id:         common.RandomUUID(),
		rule:       rule,
		seats:      seats,
		states:     states,
		elected:    elected,
		ranking:    ranking,
		short:      short,
		startedAt:  startedAt,
		finishedAt: common.Now(),
	}
}

func (r Result) ID() string {
	return r.id
}

func (r Result) Rule() string {
	return r.rule
}

func (r Result) Seats() int {
	return r.seats
}

func (r Result) States() []ElectionState {
	n := make([]ElectionState, len(r.states))
	copy(n, r.states)

	return n
}

func (r Result) FinalState() ElectionState {
	if len(r.states) < 1 {
		return ElectionState{}
	}

	return r.states[len(r.states)-1]
}

func (r Result) Rounds() int {
	return len(r.states)
}

// Elected returns the winners, one tier per batch elected together.
func (r Result) Elected() Ranking {
	return r.elected.Copy()
}

func (r Result) Winners() Candidates {
	return r.elected.Candidates()
}

// Ranking returns the full induced order over all candidates: winners
// first in election order, then remaining candidates by final tally,
// then eliminated candidates in reverse elimination order.
func (r Result) Ranking() Ranking {
	return r.ranking.Copy()
}

// Short reports whether the run ended with candidates seated below the
// threshold because too few remained.
func (r Result) Short() bool {
	return r.short
}

func (r Result) ExhaustedWeight() common.Rat {
	return r.FinalState().ExhaustedWeight()
}

func (r Result) StartedAt() common.Time {
	return r.startedAt
}

func (r Result) FinishedAt() common.Time {
	return r.finishedAt
}

// StatusTable reports every candidate's final status with the round it
// was decided, winners first.
func (r Result) StatusTable() []CandidateRound {
	final := r.FinalState()

	var out []CandidateRound
	for _, c := range r.ranking.Candidates() {
		out = append(out, final.Status(c))
	}

	return out
}

func (r Result) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string]interface{}{
		"id":          r.id,
		"rule":        r.rule,
		"seats":       r.seats,
		"elected":     r.elected,
		"ranking":     r.ranking,
		"short":       r.short,
		"rounds":      len(r.states),
		"exhausted":   r.ExhaustedWeight(),
		"states":      r.states,
		"started_at":  r.startedAt,
		"finished_at": r.finishedAt,
	})
}

func (r Result) String() string {
	var out bytes.Buffer
	fmt.Fprintf(&out, "rule=%s seats=%d rounds=%d short=%v\n", r.rule, r.seats, len(r.states), r.short)
	fmt.Fprintf(&out, "%-20s %-12s %s\n", "candidate", "status", "round")
	for _, cr := range r.StatusTable() {
		fmt.Fprintf(&out, "%-20s %-12s %d\n", cr.Candidate, cr.Status, cr.Round)
	}

	return out.String()
}
