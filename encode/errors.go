package encode

import "github.com/spikeekips/pyo/common"

const (
	DecodeFailedErrorCode common.ErrorCode = iota + 1
)

var (
	DecodeFailedError = common.NewError("encode", DecodeFailedErrorCode, "failed to decode")
)
