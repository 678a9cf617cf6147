package main

import (
	"strings"

	"github.com/inconshreveable/log15"

	"github.com/spikeekips/pyo/common"
	"github.com/spikeekips/pyo/election"
)

var (
	flagLogLevel  FlagLogLevel  = FlagLogLevel{lvl: log15.LvlError}
	flagLogFormat FlagLogFormat = FlagLogFormat{f: "terminal"}
	FlagLogOut    string
	flagQuiet     bool

	flagCandidates  string = "A,B,C,D"
	flagBallots     uint   = 1000
	flagTrials      uint   = 100
	flagConcurrency uint   = 4
	flagSeats       uint   = 1
	flagSeed        int64
	flagAlpha       float64 = 1.0

	flagRule      string        = "stv"
	flagGenerator string        = "ic"
	flagQuota     FlagQuota     = FlagQuota{k: election.QuotaDroop}
	flagTransfer  FlagTransfer  = FlagTransfer{k: election.TransferFractional}
	flagTiebreak  FlagTiebreak  = FlagTiebreak{k: election.TiebreakRandom}
)

var FlagError = common.NewError("election-simulator", 1, "invalid flag")

type FlagLogLevel struct {
	lvl log15.Lvl
}

func (f FlagLogLevel) String() string {
	return f.lvl.String()
}

func (f *FlagLogLevel) Set(v string) error {
	lvl, err := log15.LvlFromString(v)
	if err != nil {
		return err
	}

	f.lvl = lvl

	return nil
}

func (f FlagLogLevel) Type() string {
	return "log-level"
}

type FlagLogFormat struct {
	f string
}

func (f FlagLogFormat) String() string {
	return f.f
}

func (f *FlagLogFormat) Set(v string) error {
	s := strings.ToLower(v)
	switch s {
	case "json":
	case "terminal":
	default:
		return FlagError.Newf("invalid log format: %q", v)
	}

	f.f = s

	return nil
}

func (f FlagLogFormat) Type() string {
	return "log-format"
}

type FlagQuota struct {
	k election.QuotaKind
}

func (f FlagQuota) String() string {
	return f.k.String()
}

func (f *FlagQuota) Set(v string) error {
	switch strings.ToLower(v) {
	case "droop":
		f.k = election.QuotaDroop
	case "hare":
		f.k = election.QuotaHare
	case "hare+1":
		f.k = election.QuotaHarePlusOne
	default:
		return FlagError.Newf("invalid quota: %q", v)
	}

	return nil
}

func (f FlagQuota) Type() string {
	return "quota"
}

type FlagTransfer struct {
	k election.TransferKind
}

func (f FlagTransfer) String() string {
	return f.k.String()
}

func (f *FlagTransfer) Set(v string) error {
	switch strings.ToLower(v) {
	case "fractional":
		f.k = election.TransferFractional
	case "random":
		f.k = election.TransferRandom
	case "none":
		f.k = election.TransferNone
	default:
		return FlagError.Newf("invalid transfer: %q", v)
	}

	return nil
}

func (f FlagTransfer) Type() string {
	return "transfer"
}

type FlagTiebreak struct {
	k election.TiebreakKind
}

func (f FlagTiebreak) String() string {
	return f.k.String()
}

func (f *FlagTiebreak) Set(v string) error {
	switch strings.ToLower(v) {
	case "none":
		f.k = election.TiebreakNone
	case "random":
		f.k = election.TiebreakRandom
	case "firstplace":
		f.k = election.TiebreakFirstPlace
	case "borda":
		f.k = election.TiebreakBorda
	default:
		return FlagError.Newf("invalid tiebreak: %q", v)
	}

	return nil
}

func (f FlagTiebreak) Type() string {
	return "tiebreak"
}
