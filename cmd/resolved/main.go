package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
)

// Version information (set by build)
var (
	Version   = "dev"
	BuildTime = "unknown"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	fs := flag.NewFlagSet("resolved", flag.ContinueOnError)
	configPath := fs.String("config", "", "path to config file")
	showVersion := fs.Bool("version", false, "print version and exit")
	if err := fs.Parse(args); err != nil {
		return ExitConfigError
	}

	if *showVersion {
		fmt.Printf("resolved %s (built %s)\n", Version, BuildTime)
		return ExitSuccess
	}

	cfg, err := LoadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "configuration error: %v\n", err)
		return ExitConfigError
	}

	logger := SetupLogger(cfg)
	logger.Info("starting resolved",
		"version", Version,
		"address", cfg.Server.Address(),
		"pipeline_region", cfg.Pipeline.Region,
	)

	server, err := NewServer(cfg, logger)
	if err != nil {
		return fail(logger, "failed to create server", err)
	}

	if err := server.Start(context.Background()); err != nil {
		return fail(logger, "server error", err)
	}
	return ExitSuccess
}

// fail logs the error and maps it to an exit code.
func fail(logger *slog.Logger, msg string, err error) int {
	var sErr *ServerError
	if errors.As(err, &sErr) {
		logger.Error(msg, "error", sErr.Err, "operation", sErr.Op)
		return sErr.ExitCode
	}
	logger.Error(msg, "error", err)
	return ExitConfigError
}
