// Package review runs the operator confirmation loop over a year's pending
// edits.
package review

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/emojigit/chinadisambig/disambig"
)

// ErrInputClosed is returned when operator input ends before a decision.
var ErrInputClosed = errors.New("operator input closed")

// Decision is the operator's verdict on a queue.
type Decision int

const (
	Proceed Decision = iota
	Skip
)

func (d Decision) String() string {
	if d == Skip {
		return "skip"
	}
	return "proceed"
}

// Reviewer prompts on out and reads answers from in, one per line.
type Reviewer struct {
	in  *bufio.Scanner
	out io.Writer
}

// New creates a reviewer. Long previews are written to out, answers are read
// line by line from in.
func New(in io.Reader, out io.Writer) *Reviewer {
	return &Reviewer{
		in:  bufio.NewScanner(in),
		out: out,
	}
}

// Review lists the edits and loops until the operator confirms with an
// empty line or skips with "k"/"skip" (any case). A number shows that edit's
// content and its diff against the current page. Anything else re-prompts.
func (r *Reviewer) Review(edits []disambig.PendingEdit) (Decision, error) {
	for {
		r.list(edits)

		line, err := r.readLine()
		if err != nil {
			return Skip, err
		}

		input := strings.ToLower(line)
		switch input {
		case "k", "skip":
			return Skip, nil
		case "":
			return Proceed, nil
		}

		id, err := strconv.Atoi(input)
		if err != nil || id < 0 || id >= len(edits) {
			fmt.Fprintln(r.out, "Invalid input.")
			continue
		}
		r.preview(id, edits[id])
	}
}

func (r *Reviewer) list(edits []disambig.PendingEdit) {
	fmt.Fprintf(r.out, "%d edit(s) to be done:\n", len(edits))
	for i, e := range edits {
		fmt.Fprintf(r.out, "%d: %s (%s)\n", i, e.Title, e.Summary)
	}
	fmt.Fprintln(r.out, `Enter the edit ID to view its content, "K" to skip all, or empty to proceed.`)
	fmt.Fprint(r.out, "> ")
}

func (r *Reviewer) readLine() (string, error) {
	if !r.in.Scan() {
		if err := r.in.Err(); err != nil {
			return "", fmt.Errorf("failed to read input: %w", err)
		}
		return "", ErrInputClosed
	}
	return strings.TrimRight(r.in.Text(), "\r"), nil
}

func (r *Reviewer) preview(id int, e disambig.PendingEdit) {
	fmt.Fprintf(r.out, "\nContent of edit #%d:\n\n", id)
	fmt.Fprintln(r.out, e.Content)

	if e.Current != "" {
		fmt.Fprintf(r.out, "\nChanges to the current %s:\n\n", e.Title)
		fmt.Fprint(r.out, Diff(e.Current, e.Content))
	}
	fmt.Fprintln(r.out)
}
