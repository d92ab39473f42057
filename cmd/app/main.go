package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"

	"github.com/Fivegen-LLC/pfsense-client/internal/environment"
	"github.com/Fivegen-LLC/pfsense-client/internal/logger"
)

var (
	env            environment.Environment
	serviceVersion = "0.0.1"
)

func init() {
	var err error
	if env, err = environment.New(); err != nil {
		log.Fatal().Err(err).Msg("error loading environment")
	}
}

func main() {
	if err := logger.Setup(os.Stdout, env.Client.LogfilePath); err != nil {
		log.Fatal().Err(err).Msg("main")
	}

	if err := logger.SetLogLevel(env.Client.LogLevel); err != nil {
		log.Fatal().Err(err).Msg("main")
	}

	log.Debug().
		Str("version", serviceVersion).
		Str("config path", env.Client.ConfigPath).
		Str("log path", env.Client.LogfilePath).
		Str("log level", env.Client.LogLevel).
		Msg("main: app started")

	cancelCtx, cancelFunc := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := newRootCmd().ExecuteContext(cancelCtx)
	cancelFunc()

	if err != nil {
		log.Fatal().Err(err).Msg("main")
	}
}
