package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"Lumme/internal/cli/commands"
	"Lumme/internal/config"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	version   = "dev"
	buildDate = "unknown"
)

func main() {
	// Load unified config (env + flags)
	cfg := config.NewConfig()

	if cfg.Version {
		printVersion()
		return
	}

	logger, err := newLogger(cfg.Debug)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger: %v\n", err)
		os.Exit(1)
	}
	// клиент API пишет диагностику в глобальный логгер
	undo := zap.ReplaceGlobals(logger)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	// dispatcher
	exitCode := commands.Dispatch(ctx, cfg, flag.Args())

	cancel()
	_ = logger.Sync()
	undo()
	if exitCode != 0 {
		os.Exit(exitCode)
	}
}

// newLogger пишет в stderr, чтобы не смешиваться с выводом команд.
func newLogger(debug bool) (*zap.Logger, error) {
	zcfg := zap.NewDevelopmentConfig()
	zcfg.OutputPaths = []string{"stderr"}
	zcfg.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
	if debug {
		zcfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	return zcfg.Build()
}

func printVersion() {
	fmt.Printf("Lumme CLI\nVersion: %s\nBuild date: %s\n", version, buildDate)
}
