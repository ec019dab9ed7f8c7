package main

import (
	"context"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/fatih/color"

	"cnv/internal/cli"
	"cnv/internal/config"
)

// commandTimeout bounds a whole invocation, including cache I/O and retries.
const commandTimeout = 60 * time.Second

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	level := new(slog.LevelVar)
	level.Set(slog.LevelWarn)
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	cfg, err := config.Load()
	if err != nil {
		color.New(color.FgRed).Fprintf(stderr, "error: failed to load configuration: %v\n", err)
		return cli.ExitFailure
	}
	if l, err := config.ParseLevel(cfg.LogLevel); err == nil {
		level.Set(l)
	}

	ctx, cancel := context.WithTimeout(ctx, commandTimeout)
	defer cancel()

	app := cli.NewApp(cfg, logger, level)
	app.Out = stdout
	app.Err = stderr

	return cli.Execute(ctx, app, args)
}
