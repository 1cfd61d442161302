package main

import (
	"context"
	"fmt"
	"github.com/cirruslabs/pinpoint/internal/command"
	"github.com/cirruslabs/pinpoint/internal/logginglevel"
	"go.uber.org/zap"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	if !mainImpl() {
		os.Exit(1)
	}
}

func mainImpl() bool {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// Initialize logger
	loggerConfig := zap.NewProductionConfig()
	loggerConfig.Level = logginglevel.Level
	loggerConfig.Encoding = "console"

	logger, err := loggerConfig.Build()
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "failed to initialize logger: %v\n", err)

		return false
	}
	defer func() {
		_ = logger.Sync()
	}()

	zap.ReplaceGlobals(logger)

	if err := command.NewRootCommand().ExecuteContext(ctx); err != nil {
		logger.Sugar().Error(err)

		return false
	}

	return true
}
