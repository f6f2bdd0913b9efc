package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/emojigit/chinadisambig/bot"
	"github.com/emojigit/chinadisambig/review"
	"github.com/emojigit/chinadisambig/wiki"
)

func handleRun(args []string) {
	// Parse flags for run command
	fs := flag.NewFlagSet("run", flag.ExitOnError)
	flags := addRangeFlags(fs)
	dryRun := fs.Bool("dry-run", false, "Review edits but do not submit them")
	fs.Parse(args)

	cfg := loadConfig(*flags.configPath)
	if err := flags.apply(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Ask for anything the configuration left unset
	if err := promptCredentials(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if err := promptRange(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid configuration: %v\n", err)
		os.Exit(1)
	}

	session, err := wiki.NewSession(cfg.APIURL, cfg.UserAgent)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if err := session.Login(cfg.Username, cfg.Password); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Logged in as %s\n\n", cfg.Username)

	runner := bot.NewRunner(session, review.New(stdin, os.Stdout), os.Stdout, &bot.RunnerConfig{
		Mode:    cfg.Mode,
		Pause:   cfg.Pause,
		LogPage: cfg.LogPage,
		DryRun:  *dryRun,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	summary, err := runner.Run(ctx, *cfg.LowerBound, *cfg.UpperBound)
	printRunSummary(summary)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			fmt.Fprintln(os.Stderr, "Interrupted")
		} else {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}
