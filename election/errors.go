package election

import "github.com/spikeekips/pyo/common"

const (
	_ common.ErrorCode = iota
	InvalidBallotErrorCode
	InvalidProfileErrorCode
	InvalidQuotaInputErrorCode
	InvalidConfigErrorCode
	TiebreakRequiredErrorCode
	NonIntegerWeightErrorCode
	ShortElectionWarningCode
	ElectionFinishedErrorCode
)

var (
	InvalidBallotError     common.Error = common.NewError("election", InvalidBallotErrorCode, "invalid ballot")
	InvalidProfileError    common.Error = common.NewError("election", InvalidProfileErrorCode, "invalid profile")
	InvalidQuotaInputError common.Error = common.NewError("election", InvalidQuotaInputErrorCode, "invalid quota input")
	InvalidConfigError     common.Error = common.NewError("election", InvalidConfigErrorCode, "invalid election config")
	TiebreakRequiredError  common.Error = common.NewError("election", TiebreakRequiredErrorCode, "tiebreak required")
	NonIntegerWeightError  common.Error = common.NewError(
		"election",
		NonIntegerWeightErrorCode,
		"random transfer requires integer ballot weights",
	)

	// ShortElectionWarning is surfaced in Result, never returned from Run.
	ShortElectionWarning common.Error = common.NewError(
		"election",
		ShortElectionWarningCode,
		"seats filled below quota; ballots exhausted",
	)

	ElectionFinishedError common.Error = common.NewError(
		"election",
		ElectionFinishedErrorCode,
		"election already finished",
	)
)
