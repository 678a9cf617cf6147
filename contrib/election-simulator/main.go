package main

import (
	"fmt"
	"os"

	"github.com/inconshreveable/log15"
	"github.com/spf13/cobra"

	"github.com/spikeekips/pyo/common"
	"github.com/spikeekips/pyo/election"
	"github.com/spikeekips/pyo/encode"
	"github.com/spikeekips/pyo/generator"
)

var rootCmd = &cobra.Command{
	Use:   "es",
	Short: "es simulates elections over synthetic ballot profiles",
	Args:  cobra.NoArgs,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		handler, _ := common.LogHandler(common.LogFormatter(flagLogFormat.f), FlagLogOut)
		handler = log15.CallerFileHandler(handler)
		handler = log15.LvlFilterHandler(flagLogLevel.lvl, handler)

		logs := []log15.Logger{
			log,
			common.Log(),
			encode.Log(),
			election.Log(),
			generator.Log(),
		}
		for _, l := range logs {
			common.SetLogger(l, flagLogLevel.lvl, handler)
		}

		log.Debug("parsed flags", "flags", printFlags(cmd, flagLogFormat.f))
	},
}

func main() {
	rootCmd.PersistentFlags().Var(&flagLogLevel, "log-level", "log level: {debug error warn info crit}")
	rootCmd.PersistentFlags().Var(&flagLogFormat, "log-format", "log format: {json terminal}")
	rootCmd.PersistentFlags().StringVar(&FlagLogOut, "log", FlagLogOut, "log output file")
	rootCmd.PersistentFlags().BoolVar(&flagQuiet, "quiet", flagQuiet, "quiet")

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}

	os.Exit(0)
}
