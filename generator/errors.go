package generator

import (
	"github.com/spikeekips/pyo/common"
)

const (
	_ common.ErrorCode = iota
	InvalidGeneratorConfigErrorCode
)

var (
	InvalidGeneratorConfigError = common.NewError("generator", InvalidGeneratorConfigErrorCode, "invalid generator config")
)
