package main

import (
	"errors"
	"os"

	"github.com/danmuck/binctl/cmd/binctl/commands"
	"github.com/danmuck/binctl/internal/fault"
	"github.com/danmuck/binctl/internal/logging"
	"github.com/rs/zerolog/log"
)

func main() {
	logging.ConfigureRuntime()

	if err := commands.NewRootCmd().Execute(); err != nil {
		var f *fault.Error
		if errors.As(err, &f) && len(f.Stack) > 0 {
			log.Error().Str("stack", f.ErrorStack()).Msg("binctl failed")
		} else {
			log.Error().Err(err).Msg("binctl failed")
		}
		os.Exit(fault.ExitCode(err))
	}
}
