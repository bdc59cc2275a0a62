package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/indaco/cra2parcel/internal/cli"
	"github.com/indaco/cra2parcel/internal/config"
	"github.com/indaco/cra2parcel/internal/printer"
	urfavecli "github.com/urfave/cli/v3"
)

func main() {
	if err := runCLI(os.Args); err != nil {
		printer.PrintFatal(err.Error())
		os.Exit(exitCode(err))
	}
}

// runCLI loads configuration and runs the root command with args.
func runCLI(args []string) error {
	cfg, err := config.LoadConfigFn()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	return cli.New(cfg, cli.DefaultDeps()).Run(ctx, args)
}

func exitCode(err error) int {
	var exitErr urfavecli.ExitCoder
	if errors.As(err, &exitErr) && exitErr.ExitCode() != 0 {
		return exitErr.ExitCode()
	}
	return 1
}
