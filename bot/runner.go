// Package bot drives the per-year workflow: classify both titles, build the
// edit queue, ask the operator, submit and log.
package bot

import (
	"context"
	"fmt"
	"io"
	"log"
	"time"

	"github.com/emojigit/chinadisambig/disambig"
	"github.com/emojigit/chinadisambig/review"
	"github.com/emojigit/chinadisambig/wiki"
	"github.com/google/uuid"
)

// LogSummary is the summary of log page appends. The session adds the
// attribution suffix.
const LogSummary = "Log"

// Wiki is the part of a wiki session the runner uses.
type Wiki interface {
	FetchPages(titles ...string) ([]wiki.Page, error)
	Edit(title, text, summary string) (*wiki.EditResult, error)
	AppendText(title, text, summary string) (*wiki.EditResult, error)
}

// Reviewer asks the operator about a queue.
type Reviewer interface {
	Review(edits []disambig.PendingEdit) (review.Decision, error)
}

// RunnerConfig holds configuration for the runner.
type RunnerConfig struct {
	// Classifier mode
	Mode disambig.Mode
	// Pause after a year that needs no action
	Pause time.Duration
	// Page that receives one log line per year; empty disables logging
	LogPage string
	// Print confirmed edits instead of submitting them
	DryRun bool
}

// DefaultRunnerConfig returns the default configuration.
func DefaultRunnerConfig() *RunnerConfig {
	return &RunnerConfig{
		Mode:  disambig.Strict,
		Pause: 3 * time.Second,
	}
}

// Outcome is what happened to a year.
type Outcome int

const (
	NoAction Outcome = iota
	Skipped
	Applied
	DryRun
	// Partial means an edit failed after earlier edits of the year were
	// saved.
	Partial
)

func (o Outcome) String() string {
	switch o {
	case NoAction:
		return "no action"
	case Skipped:
		return "skipped"
	case Applied:
		return "applied"
	case DryRun:
		return "dry run"
	case Partial:
		return "partial"
	default:
		return fmt.Sprintf("Outcome(%d)", int(o))
	}
}

// YearResult reports one processed year. Entries lists the edits that were
// submitted, even when a later edit of the year failed.
type YearResult struct {
	Year    int
	Outcome Outcome
	Edits   []disambig.PendingEdit
	Entries []disambig.LogEntry
}

// Summary counts year outcomes over a run.
type Summary struct {
	RunID    uuid.UUID
	Years    int
	NoAction int
	Skipped  int
	Applied  int
	DryRun   int
	Partial  int
	Edits    int
}

// Runner processes years strictly one after another over a single session.
type Runner struct {
	wiki     Wiki
	reviewer Reviewer
	config   *RunnerConfig
	out      io.Writer
	runID    uuid.UUID

	// sleep is replaced in tests
	sleep func(ctx context.Context, d time.Duration) error
}

// NewRunner creates a runner. Progress meant for the operator goes to out.
func NewRunner(w Wiki, reviewer Reviewer, out io.Writer, config *RunnerConfig) *Runner {
	if config == nil {
		config = DefaultRunnerConfig()
	}

	return &Runner{
		wiki:     w,
		reviewer: reviewer,
		config:   config,
		out:      out,
		runID:    uuid.New(),
		sleep:    sleepContext,
	}
}

// RunID identifies this runner's log lines.
func (r *Runner) RunID() uuid.UUID {
	return r.runID
}

// Run processes every year from lower to upper inclusive. It stops at the
// first error; edits already submitted stay on the wiki.
func (r *Runner) Run(ctx context.Context, lower, upper int) (*Summary, error) {
	summary := &Summary{RunID: r.runID}
	if lower > upper {
		return summary, fmt.Errorf("invalid year range %d-%d", lower, upper)
	}

	log.Printf("INFO: Run %s starting for years %d-%d (mode %s)", r.runID, lower, upper, r.config.Mode)

	for year := lower; year <= upper; year++ {
		if err := ctx.Err(); err != nil {
			return summary, err
		}

		result, err := r.ProcessYear(ctx, year)
		if result != nil {
			summary.add(result)
		}
		if err != nil {
			log.Printf("ERROR: Run %s stopped at year %d: %v", r.runID, year, err)
			return summary, err
		}
	}

	log.Printf("INFO: Run %s finished: %d years, %d applied, %d skipped, %d without action, %d edits",
		r.runID, summary.Years, summary.Applied, summary.Skipped, summary.NoAction, summary.Edits)
	return summary, nil
}

func (s *Summary) add(result *YearResult) {
	s.Years++
	s.Edits += len(result.Entries)
	switch result.Outcome {
	case NoAction:
		s.NoAction++
	case Skipped:
		s.Skipped++
	case Applied:
		s.Applied++
	case DryRun:
		s.DryRun++
	case Partial:
		s.Partial++
	}
}

// ProcessYear classifies a year's titles and, if there is something to do,
// runs the review and submits the confirmed edits.
func (r *Runner) ProcessYear(ctx context.Context, year int) (*YearResult, error) {
	fmt.Fprintf(r.out, "Working on year %d\n", year)
	result := &YearResult{Year: year, Outcome: NoAction}

	pages, err := r.wiki.FetchPages(disambig.Titles(year)...)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch pages for %d: %w", year, err)
	}

	current := toPages(pages)
	for _, p := range current {
		log.Printf("INFO: Run %s: %s is %s", r.runID, p.Title, disambig.Classify(p).Kind)
	}

	titles := disambig.Plan(year, current, r.config.Mode)
	if len(titles) == 0 {
		fmt.Fprintln(r.out)
		if err := r.sleep(ctx, r.config.Pause); err != nil {
			return result, err
		}
		return result, nil
	}

	result.Edits = disambig.BuildQueue(year, titles, current)

	decision, err := r.reviewer.Review(result.Edits)
	if err != nil {
		return nil, fmt.Errorf("review of %d failed: %w", year, err)
	}
	if decision == review.Skip {
		result.Outcome = Skipped
		fmt.Fprint(r.out, "Skipped\n\n")
		return result, nil
	}

	if r.config.DryRun {
		result.Outcome = DryRun
		for i, e := range result.Edits {
			fmt.Fprintf(r.out, "Would do edit #%d: %s (%s)\n", i, e.Title, e.Summary+wiki.AttributionSuffix)
		}
		fmt.Fprintln(r.out)
		return result, nil
	}

	if err := r.submit(result); err != nil {
		if len(result.Entries) > 0 {
			result.Outcome = Partial
		}
		return result, err
	}

	result.Outcome = Applied
	fmt.Fprint(r.out, "Succeed\n\n")
	return result, nil
}

// submit applies the queue in order and then writes the log line.
func (r *Runner) submit(result *YearResult) error {
	for i, e := range result.Edits {
		fmt.Fprintf(r.out, "Doing edit #%d\n", i)

		res, err := r.wiki.Edit(e.Title, e.Content, e.Summary)
		if err != nil {
			return fmt.Errorf("edit #%d (%s) failed after %d of %d edits were applied: %w",
				i, e.Title, len(result.Entries), len(result.Edits), err)
		}
		if res.NoChange {
			fmt.Fprintf(r.out, "%s: no change\n", e.Title)
			continue
		}

		fmt.Fprintf(r.out, "%s: revision %d\n", e.Title, res.NewRevID)
		result.Entries = append(result.Entries, disambig.LogEntry{
			Title:   e.Title,
			Summary: e.Summary,
			RevID:   res.NewRevID,
		})
	}

	if r.config.LogPage == "" || len(result.Entries) == 0 {
		return nil
	}

	text := disambig.FormatLog(disambig.Reason(result.Year), result.Entries)
	if _, err := r.wiki.AppendText(r.config.LogPage, text, LogSummary); err != nil {
		return fmt.Errorf("failed to write log for %d: %w", result.Year, err)
	}
	return nil
}

func sleepContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	t := time.NewTimer(d)
	defer t.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// toPages converts query results into classifier input.
func toPages(pages []wiki.Page) []disambig.Page {
	out := make([]disambig.Page, 0, len(pages))
	for _, p := range pages {
		out = append(out, disambig.Page{
			Title:   p.Title,
			Missing: p.Missing,
			Content: p.Content,
		})
	}
	return out
}
