package main

import (
	"context"
	"os"
	"os/signal"

	"pkt.systems/pslog"

	"github.com/Dallionking/stepper-tabs/internal/cmd"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	logger := pslog.LoggerFromEnv(
		pslog.WithEnvWriter(os.Stderr),
		pslog.WithEnvOptions(pslog.Options{Mode: pslog.ModeConsole}),
	)
	ctx = pslog.ContextWithLogger(ctx, logger)

	if err := cmd.Execute(ctx); err != nil {
		logger.With("err", err).Error("stepper failed")
		stop()
		os.Exit(1)
	}
}
