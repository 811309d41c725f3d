package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sysaltruism/dashboard/internal/dashboard"
)

func TestProjectCommandJSON(t *testing.T) {
	stdout := new(bytes.Buffer)
	stderr := new(bytes.Buffer)
	exitCode := ProjectCommand(context.Background(), dashboard.NewService(nil, nil, nil), ProjectOptions{
		Value:      "₹8.2L",
		Title:      "Luxury Goods Revenue",
		Growth:     "+32% MTD",
		JSONOutput: true,
		Stdout:     stdout,
		Stderr:     stderr,
	})
	require.Zero(t, exitCode)
	require.Empty(t, stderr.String())

	var summary ProjectSummary
	require.NoError(t, json.Unmarshal(stdout.Bytes(), &summary))
	require.Len(t, summary.Points, 6)
	require.Equal(t, "Jan", summary.Points[0].Month)
	require.Equal(t, 621212.12, summary.Points[4].Value)
	require.Equal(t, 820000.0, summary.Points[5].Value)
	require.Equal(t, "32.0%", summary.Points[5].Change)
}

func TestProjectCommandHuman(t *testing.T) {
	stdout := new(bytes.Buffer)
	exitCode := ProjectCommand(context.Background(), dashboard.NewService(nil, nil, nil), ProjectOptions{
		Value:  "12,543",
		Title:  "Bloom Downloads",
		Growth: "+18.2%",
		Stdout: stdout,
		Stderr: new(bytes.Buffer),
	})
	require.Zero(t, exitCode)

	out := stdout.String()
	require.True(t, strings.HasPrefix(out, "Trend for Bloom Downloads at 12,543"), out)
	require.Contains(t, out, "12,543")
	require.Contains(t, out, "Jun")
}

func TestProjectCommandRequiresValue(t *testing.T) {
	stderr := new(bytes.Buffer)
	exitCode := ProjectCommand(context.Background(), dashboard.NewService(nil, nil, nil), ProjectOptions{
		Stdout: new(bytes.Buffer),
		Stderr: stderr,
	})
	require.Equal(t, 1, exitCode)
	require.Contains(t, stderr.String(), "--value is required")
}

func TestProjectCommandMalformedGrowth(t *testing.T) {
	stdout := new(bytes.Buffer)
	stderr := new(bytes.Buffer)
	exitCode := ProjectCommand(context.Background(), dashboard.NewService(nil, nil, nil), ProjectOptions{
		Value:  "100",
		Growth: "steady",
		Stdout: stdout,
		Stderr: stderr,
	})
	require.Equal(t, 2, exitCode)
	require.Empty(t, stdout.String())
	require.Contains(t, stderr.String(), "malformed growth")
}

func TestProjectCommandDivisionByZero(t *testing.T) {
	stderr := new(bytes.Buffer)
	exitCode := ProjectCommand(context.Background(), dashboard.NewService(nil, nil, nil), ProjectOptions{
		Value:  "100",
		Growth: "-100%",
		Stdout: new(bytes.Buffer),
		Stderr: stderr,
	})
	require.Equal(t, 2, exitCode)
	require.Contains(t, stderr.String(), "division by zero")
}
