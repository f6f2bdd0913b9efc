package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/emojigit/chinadisambig/bot"
	"github.com/emojigit/chinadisambig/disambig"
	"github.com/emojigit/chinadisambig/wiki"
)

// printJSON prints v as indented JSON
func printJSON(v any) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to marshal JSON: %v\n", err)
		os.Exit(1)
	}

	fmt.Println(string(data))
}

// printPlanTable prints one row per year
func printPlanTable(plans []bot.YearPlan) {
	if len(plans) == 0 {
		fmt.Println("No years to display.")
		return
	}

	// Print table header
	fmt.Printf("%-6s %-18s %-18s %-34s %s\n", "YEAR", "TRADITIONAL", "SIMPLIFIED", "PLANNED", "ERA")
	fmt.Println(strings.Repeat("-", 96))

	pending := 0
	for _, p := range plans {
		hant := pageState(p.Pages, disambig.HantTitle(p.Year))
		hans := pageState(p.Pages, disambig.HansTitle(p.Year))

		planned := "-"
		if len(p.Titles) > 0 {
			planned = strings.Join(p.Titles, ", ")
			pending++
		}

		fmt.Printf("%-6d %-18s %-18s %-34s %s\n", p.Year, hant, hans, planned, p.Era)
	}

	fmt.Println()
	fmt.Printf("%d of %d years need edits\n", pending, len(plans))
}

// pageState formats the state of title, or "-" if the plan has no report
// for it
func pageState(pages []bot.PageReport, title string) string {
	for _, page := range pages {
		if page.Title != title {
			continue
		}
		if page.Target != "" {
			return page.State + " → " + page.Target
		}
		return page.State
	}
	return "-"
}

// printPreview prints the rendered page source and the state of the
// regional articles it links
func printPreview(p *bot.Preview) {
	fmt.Printf("Preview of %s\n\n", p.Title)
	fmt.Println(p.Text)
	fmt.Println()

	fmt.Println("Articles:")
	for _, a := range p.Articles {
		status := "exists"
		switch {
		case !a.Linked:
			status = "not linked"
		case !a.Exists:
			status = "missing (red link)"
		}
		fmt.Printf("  %-20s %s\n", a.Title, status)
	}
}

// printContribs prints a user's contributions, newest first as served
func printContribs(user string, contribs []wiki.Contribution) {
	if len(contribs) == 0 {
		fmt.Printf("No contributions by %s.\n", user)
		return
	}

	fmt.Printf("Recent contributions by %s\n\n", user)
	for _, c := range contribs {
		ts := "unknown"
		if !c.Timestamp.IsZero() {
			ts = c.Timestamp.Format("2006-01-02 15:04")
		}
		fmt.Printf("%s  %s\n", ts, c.Title)
		if c.Link != "" {
			fmt.Printf("   %s\n", c.Link)
		}
	}
}

// printRunSummary prints the counters of a finished or interrupted run
func printRunSummary(s *bot.Summary) {
	if s == nil {
		return
	}

	fmt.Println("Run summary:")
	fmt.Printf("  Run ID: %s\n", s.RunID)
	fmt.Printf("  Years processed: %d\n", s.Years)
	fmt.Printf("  Applied: %d\n", s.Applied)
	fmt.Printf("  Skipped: %d\n", s.Skipped)
	fmt.Printf("  No action: %d\n", s.NoAction)
	if s.Partial > 0 {
		fmt.Printf("  Partially applied: %d\n", s.Partial)
	}
	if s.DryRun > 0 {
		fmt.Printf("  Dry run: %d\n", s.DryRun)
	}
	fmt.Printf("  Edits: %d\n", s.Edits)
}
