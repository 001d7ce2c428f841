package integration

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/propeq/equity-dashboard/internal/commands"
)

func runCLI(t *testing.T, args ...string) string {
	t.Helper()
	cmd := commands.NewRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	require.NoError(t, cmd.Execute(), out.String())
	return out.String()
}

func TestCLIProjectDetailedCSV(t *testing.T) {
	out := runCLI(t, "project", "--config", datasetPath, "--as-of", "2026-10-20", "--format", "csv-monthly")
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 1+360)
	assert.Equal(t, "base,0,Now,1758,2532,-774,331,-443,-443,274530", lines[1])
	assert.True(t, strings.HasPrefix(lines[360], "pessimistic,119,"))
}

func TestCLIBalanceAndSummary(t *testing.T) {
	out := runCLI(t, "balance", "--config", datasetPath, "--as-of", "2026-10-20")
	assert.Contains(t, out, "Loan balance: $274,803.87 (stored)")
	assert.Contains(t, out, "Home value:   $330,000.00 (stored)")

	out = runCLI(t, "summary", "--config", datasetPath, "--owner", "Jordan", "--as-of", "2026-10-20")
	assert.Contains(t, out, "Jordan (25.00%) as of 2026-10-20")
	assert.Contains(t, out, "Equity:            $13,799")
	assert.Contains(t, out, "This month:        $381")
}

func TestCLIQuery(t *testing.T) {
	out := runCLI(t, "project", "--config", datasetPath, "--as-of", "2026-10-20",
		"--query", `$.scenarios[?(@.scenario.name == "optimistic")].annual[10].homeValue`)
	assert.Equal(t, "590980\n", out)
}
