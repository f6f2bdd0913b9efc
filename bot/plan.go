package bot

import (
	"cmp"
	"context"
	"fmt"
	"slices"

	"github.com/emojigit/chinadisambig/disambig"
	"github.com/emojigit/chinadisambig/wiki"
	"golang.org/x/sync/errgroup"
)

// DefaultPlanConcurrency is the number of years queried at once by PlanYears.
const DefaultPlanConcurrency = 4

// Fetcher reads page revisions.
type Fetcher interface {
	FetchPages(titles ...string) ([]wiki.Page, error)
}

// PageReport is the classification of one title.
type PageReport struct {
	Title  string `json:"title"`
	State  string `json:"state"`
	Target string `json:"target,omitempty"`
}

// YearPlan is what a run would propose for a year. Titles is empty when the
// year needs no action.
type YearPlan struct {
	Year   int          `json:"year"`
	Era    string       `json:"era"`
	Pages  []PageReport `json:"pages"`
	Titles []string     `json:"titles"`
}

// PlanYears classifies every year without editing anything. Years are
// queried concurrently, at most concurrency at a time, and reported in input
// order.
func PlanYears(ctx context.Context, f Fetcher, years []int, mode disambig.Mode, concurrency int) ([]YearPlan, error) {
	if concurrency <= 0 {
		concurrency = DefaultPlanConcurrency
	}

	plans := make([]YearPlan, len(years))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	for i, year := range years {
		i, year := i, year
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			pages, err := f.FetchPages(disambig.Titles(year)...)
			if err != nil {
				return fmt.Errorf("failed to fetch pages for %d: %w", year, err)
			}
			plans[i] = planYear(year, toPages(pages), mode)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return plans, nil
}

func planYear(year int, pages []disambig.Page, mode disambig.Mode) YearPlan {
	plan := YearPlan{
		Year:   year,
		Era:    disambig.EraOf(year).String(),
		Pages:  make([]PageReport, 0, len(pages)),
		Titles: disambig.Plan(year, pages, mode),
	}
	if plan.Titles == nil {
		plan.Titles = []string{}
	}

	for _, p := range byScript(year, pages) {
		state := disambig.Classify(p)
		plan.Pages = append(plan.Pages, PageReport{
			Title:  p.Title,
			State:  state.Kind.String(),
			Target: state.Target,
		})
	}
	return plan
}

// byScript orders pages Traditional title first, then Simplified, whatever
// order the API returned them in.
func byScript(year int, pages []disambig.Page) []disambig.Page {
	rank := func(p disambig.Page) int {
		switch p.Title {
		case disambig.HantTitle(year):
			return 0
		case disambig.HansTitle(year):
			return 1
		default:
			return 2
		}
	}

	sorted := slices.Clone(pages)
	slices.SortStableFunc(sorted, func(a, b disambig.Page) int {
		return cmp.Compare(rank(a), rank(b))
	})
	return sorted
}
