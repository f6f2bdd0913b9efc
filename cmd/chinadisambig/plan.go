package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strconv"

	"github.com/emojigit/chinadisambig/bot"
	"github.com/emojigit/chinadisambig/wiki"
)

func handlePlan(args []string) {
	// Parse flags for plan command
	fs := flag.NewFlagSet("plan", flag.ExitOnError)
	flags := addRangeFlags(fs)
	jsonOutput := fs.Bool("json", false, "Output as JSON")
	concurrency := fs.Int("concurrency", bot.DefaultPlanConcurrency, "Number of years queried at once")
	fs.Parse(args)

	cfg := loadConfig(*flags.configPath)
	if err := flags.apply(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if err := promptRange(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if err := cfg.ValidateRange(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	session, err := wiki.NewSession(cfg.APIURL, cfg.UserAgent)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	plans, err := bot.PlanYears(ctx, session, cfg.Years(), cfg.Mode, *concurrency)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if *jsonOutput {
		printJSON(plans)
	} else {
		printPlanTable(plans)
	}
}

func handlePreview(args []string) {
	// Parse flags for preview command
	fs := flag.NewFlagSet("preview", flag.ExitOnError)
	configPath := addConfigFlag(fs)
	fs.Parse(args)

	if fs.NArg() < 1 {
		fmt.Fprintf(os.Stderr, "Error: year is required\n")
		fmt.Fprintf(os.Stderr, "Usage: chinadisambig preview [--config f] <year>\n")
		os.Exit(1)
	}
	year, err := strconv.Atoi(fs.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid year: %s\n", fs.Arg(0))
		os.Exit(1)
	}

	cfg := loadConfig(*configPath)
	session, err := wiki.NewSession(cfg.APIURL, cfg.UserAgent)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	preview, err := bot.PreviewYear(session, year)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	printPreview(preview)
}

func handleContribs(args []string) {
	// Parse flags for contribs command
	fs := flag.NewFlagSet("contribs", flag.ExitOnError)
	configPath := addConfigFlag(fs)
	user := fs.String("user", "", "Account to list (default: the configured bot username)")
	jsonOutput := fs.Bool("json", false, "Output as JSON")
	fs.Parse(args)

	cfg := loadConfig(*configPath)
	name := *user
	if name == "" {
		name = accountName(cfg.Username)
	}
	if name == "" {
		fmt.Fprintf(os.Stderr, "Error: --user is required when no username is configured\n")
		fs.Usage()
		os.Exit(1)
	}

	session, err := wiki.NewSession(cfg.APIURL, cfg.UserAgent)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	contribs, err := session.Contributions(ctx, name)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to fetch contributions: %v\n", err)
		os.Exit(1)
	}

	if *jsonOutput {
		printJSON(contribs)
	} else {
		printContribs(name, contribs)
	}
}
