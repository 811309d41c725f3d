package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/sysaltruism/dashboard/internal/dashboard"
	"github.com/sysaltruism/dashboard/internal/trend"
	"github.com/sysaltruism/dashboard/internal/view"
)

// Projector runs a single projection against the card catalog.
type Projector interface {
	Project(ctx context.Context, req dashboard.ProjectRequest) ([]trend.Point, error)
}

// ProjectOptions defines available flags for the project command.
type ProjectOptions struct {
	Value      string
	Title      string
	Growth     string
	JSONOutput bool
	Stdout     io.Writer
	Stderr     io.Writer
}

// ProjectSummary describes the JSON response for project.
type ProjectSummary struct {
	Title  string        `json:"title"`
	Value  string        `json:"value"`
	Growth string        `json:"growth"`
	Points []trend.Point `json:"points"`
}

// ProjectCommand prints the six month trend for a card value. It returns 1
// for usage errors and 2 when the inputs cannot be projected.
func ProjectCommand(ctx context.Context, projector Projector, opts ProjectOptions) int {
	if opts.Stdout == nil {
		opts.Stdout = os.Stdout
	}
	if opts.Stderr == nil {
		opts.Stderr = os.Stderr
	}
	value := strings.TrimSpace(opts.Value)
	if value == "" {
		_, _ = fmt.Fprintln(opts.Stderr, "project: --value is required")
		return 1
	}

	points, err := projector.Project(ctx, dashboard.ProjectRequest{Value: value, Title: opts.Title, Growth: opts.Growth})
	if err != nil {
		_, _ = fmt.Fprintf(opts.Stderr, "project: %v\n", err)
		return 2
	}

	if opts.JSONOutput {
		summary := ProjectSummary{Title: opts.Title, Value: value, Growth: opts.Growth, Points: points}
		if err := json.NewEncoder(opts.Stdout).Encode(summary); err != nil {
			_, _ = fmt.Fprintf(opts.Stderr, "project: encode json: %v\n", err)
			return 1
		}
		return 0
	}
	renderProjectHuman(opts.Stdout, opts, points)
	return 0
}

func renderProjectHuman(out io.Writer, opts ProjectOptions, points []trend.Point) {
	title := opts.Title
	if title == "" {
		title = "(untitled)"
	}
	_, _ = fmt.Fprintf(out, "Trend for %s at %s (growth %q)\n", title, strings.TrimSpace(opts.Value), opts.Growth)
	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', tabwriter.AlignRight)
	_, _ = fmt.Fprintln(tw, "Month\tValue\tChange\t")
	for _, p := range points {
		_, _ = fmt.Fprintf(tw, "%s\t%s\t%s\t\n", p.Month, view.FormatNumber(p.Value), p.Change)
	}
	_ = tw.Flush()
}
