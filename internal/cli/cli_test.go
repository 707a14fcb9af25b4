package cli_test

import (
	"bufio"
	"bytes"
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/greenevent/internal/cli"
	"github.com/rshade/greenevent/internal/config"
	"github.com/rshade/greenevent/internal/engine"
	"github.com/rshade/greenevent/internal/eventfile"
)

var (
	conferenceYAML = filepath.Join("..", "eventfile", "testdata", "conference.yaml")
	conferenceJSON = filepath.Join("..", "eventfile", "testdata", "conference.json")
	detailedYAML   = filepath.Join("..", "eventfile", "testdata", "hybrid_detailed.yaml")
	portfolioYAML  = filepath.Join("..", "eventfile", "testdata", "portfolio.yaml")
)

// setupCLITest isolates the user config directory and the environment and
// returns the isolated home.
func setupCLITest(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv(config.EnvHome, home)
	t.Setenv(config.EnvLogLevel, "error")
	for _, env := range []string{
		config.EnvProjectDir, config.EnvOutputFormat, config.EnvLogFormat, config.EnvLogFile,
		config.EnvDistributionPolicy, config.EnvRegion, config.EnvConcurrency, config.EnvServerAddr,
	} {
		t.Setenv(env, "")
	}
	config.ResetGlobalConfigForTest()
	t.Cleanup(func() {
		config.ResetGlobalConfigForTest()
		config.SetResolvedProjectDir("")
	})
	return home
}

// execute runs the root command with args and returns stdout and stderr.
func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := cli.NewRootCmd("test")
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

// reportOf decodes a json report envelope with typed data.
func reportOf[T any](t *testing.T, out string) (cli.Report, T) {
	t.Helper()
	var raw struct {
		cli.Report
		Data json.RawMessage `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &raw), out)
	var data T
	require.NoError(t, json.Unmarshal(raw.Data, &data))
	return raw.Report, data
}

func ndjsonLines(t *testing.T, out string) []map[string]any {
	t.Helper()
	var lines []map[string]any
	sc := bufio.NewScanner(strings.NewReader(out))
	for sc.Scan() {
		var m map[string]any
		require.NoError(t, json.Unmarshal(sc.Bytes(), &m), sc.Text())
		lines = append(lines, m)
	}
	return lines
}

func TestFootprint_Table(t *testing.T) {
	setupCLITest(t)
	out, _, err := execute(t, "footprint", "-f", conferenceYAML)
	require.NoError(t, err)

	for _, want := range []string{"EVENT FOOTPRINT: Spring Summit", "CATEGORY", "food-beverage", "TOTAL",
		"Green score:", "Benchmark:"} {
		assert.Contains(t, out, want)
	}
	assert.NotContains(t, out, "Equivalent to")
}

func TestFootprint_JSONWithEquivalencies(t *testing.T) {
	setupCLITest(t)
	out, _, err := execute(t, "footprint", "-f", conferenceJSON, "--output", "json", "--equivalencies")
	require.NoError(t, err)

	report, data := reportOf[cli.FootprintReport](t, out)
	assert.Len(t, report.ReportID, 26)
	assert.Equal(t, "footprint", report.Kind)
	assert.Equal(t, "Spring Summit", report.Name)
	assert.NotEmpty(t, report.TraceID)
	assert.Equal(t, 100, data.Footprint.Attendees)
	assert.InDelta(t, data.Footprint.Breakdown.Total(), data.Footprint.TotalCarbonKg, 1e-6)
	require.NotNil(t, data.Equivalencies)
	assert.Contains(t, data.Equivalencies.DisplayText, "Equivalent to driving")
}

func TestFootprint_NDJSON(t *testing.T) {
	setupCLITest(t)
	out, _, err := execute(t, "footprint", "-f", conferenceYAML, "--output", "ndjson")
	require.NoError(t, err)

	lines := ndjsonLines(t, out)
	require.Len(t, lines, len(engine.Categories()))
	for i, line := range lines {
		assert.Equal(t, lines[0]["report_id"], line["report_id"])
		data, ok := line["data"].(map[string]any)
		require.True(t, ok)
		assert.Equal(t, string(engine.Categories()[i]), data["category"])
	}
}

func TestFootprint_Detailed(t *testing.T) {
	setupCLITest(t)

	out, _, err := execute(t, "footprint", "-f", detailedYAML, "--output", "json")
	require.NoError(t, err)
	_, data := reportOf[cli.FootprintReport](t, out)
	assert.Equal(t, 200, data.Footprint.Attendees)

	_, _, err = execute(t, "footprint", "-f", conferenceYAML, "--detailed")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no detailed section")
}

func TestFootprint_Errors(t *testing.T) {
	setupCLITest(t)

	_, _, err := execute(t, "footprint", "-f", conferenceYAML, "--output", "xml")
	require.ErrorIs(t, err, cli.ErrUnsupportedOutput)

	_, _, err = execute(t, "footprint", "-f", filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)

	_, _, err = execute(t, "footprint")
	require.Error(t, err, "--file is required")
}

func TestProjectConfigSelectsDefaultFormat(t *testing.T) {
	setupCLITest(t)
	project := t.TempDir()
	writeFile(t, filepath.Join(project, config.ProjectDirName, "config.yaml"), "output:\n  default_format: json\n")

	out, _, err := execute(t, "--project-dir", project, "footprint", "-f", conferenceYAML)
	require.NoError(t, err)
	report, _ := reportOf[cli.FootprintReport](t, out)
	assert.Equal(t, "footprint", report.Kind)
}

func TestBenchmark_EventTypeOverride(t *testing.T) {
	setupCLITest(t)
	out, _, err := execute(t, "benchmark", "-f", conferenceYAML, "--event-type", "trade-show", "--output", "json")
	require.NoError(t, err)

	_, bench := reportOf[engine.BenchmarkResult](t, out)
	assert.Equal(t, "trade-show", string(bench.EventType))
	assert.GreaterOrEqual(t, bench.Percentile, 5.0)
	assert.LessOrEqual(t, bench.Percentile, 95.0)

	out, _, err = execute(t, "benchmark", "-f", conferenceYAML)
	require.NoError(t, err)
	assert.Contains(t, out, "BENCHMARK: conference")
	assert.Contains(t, out, "Industry average")

	_, _, err = execute(t, "benchmark", "-f", conferenceYAML, "--event-type", "picnic")
	require.ErrorIs(t, err, engine.ErrInvalidConfiguration)
}

func TestAssess(t *testing.T) {
	setupCLITest(t)
	out, _, err := execute(t, "assess", "--event-type", "conference", "--format", "hybrid",
		"--attendees", "250", "--days", "2", "--sector", "technology", "--international", "--output", "json")
	require.NoError(t, err)

	_, est := reportOf[engine.EarlyEstimate](t, out)
	assert.Positive(t, est.TotalCarbonKg)
	assert.InDelta(t, est.TotalCarbonKg/250, est.PerAttendeeKg, 1e-6)

	out, _, err = execute(t, "assess", "--attendees", "40")
	require.NoError(t, err)
	assert.Contains(t, out, "EARLY ESTIMATE: in-person conference, 40 attendees")

	_, _, err = execute(t, "assess", "--attendees", "0")
	require.ErrorIs(t, err, engine.ErrInvalidConfiguration)
}

func TestFormats(t *testing.T) {
	setupCLITest(t)
	out, _, err := execute(t, "formats", "--attendees", "100", "--distance-km", "500", "--days", "2")
	require.NoError(t, err)
	assert.Contains(t, out, "FORMAT COMPARISON")
	assert.Contains(t, out, "Recommended:")

	out, _, err = execute(t, "formats", "--attendees", "100", "--distance-km", "500", "--days", "2",
		"--in-person-share", "0.25", "--output", "json")
	require.NoError(t, err)
	_, cmp := reportOf[engine.FormatComparison](t, out)
	assert.InDelta(t, 0.25, cmp.InPersonShare, 1e-9)
	require.Len(t, cmp.Results, 3)
}

func TestSavings(t *testing.T) {
	setupCLITest(t)
	out, _, err := execute(t, "savings", "-f", conferenceYAML)
	require.NoError(t, err)
	for _, want := range []string{"COST SAVINGS: Spring Summit", "waste-disposal", "USD", "IRR (simplified)"} {
		assert.Contains(t, out, want)
	}

	out, _, err = execute(t, "savings", "-f", conferenceYAML, "--adoption", "basic", "--output", "json")
	require.NoError(t, err)
	_, basic := reportOf[cli.SavingsReport](t, out)
	out, _, err = execute(t, "savings", "-f", conferenceYAML, "--output", "json")
	require.NoError(t, err)
	_, comprehensive := reportOf[cli.SavingsReport](t, out)
	assert.LessOrEqual(t, basic.Savings.TotalSavings, comprehensive.Savings.TotalSavings)

	_, _, err = execute(t, "savings", "-f", conferenceJSON)
	require.ErrorIs(t, err, eventfile.ErrInvalidDocument)
}

func TestIncentives(t *testing.T) {
	setupCLITest(t)
	out, _, err := execute(t, "incentives", "-f", conferenceYAML, "--region", "eu", "--output", "json")
	require.NoError(t, err)
	_, report := reportOf[cli.IncentivesReport](t, out)
	assert.Equal(t, "eu", string(report.Region))

	var total float64
	for _, inc := range report.Incentives {
		total += inc.EstimatedValue
		assert.LessOrEqual(t, inc.EstimatedValue, inc.Cap)
	}
	assert.InDelta(t, total, report.TotalValue, 1e-9)

	out, _, err = execute(t, "incentives", "-f", conferenceYAML)
	require.NoError(t, err)
	assert.Contains(t, out, "TAX INCENTIVES: us")
}

func TestRecommend(t *testing.T) {
	setupCLITest(t)
	out, _, err := execute(t, "recommend", "-f", conferenceYAML, "--output", "ndjson")
	require.NoError(t, err)

	lines := ndjsonLines(t, out)
	require.NotEmpty(t, lines)
	for i, line := range lines {
		data, ok := line["data"].(map[string]any)
		require.True(t, ok)
		assert.InDelta(t, float64(i+1), data["rank"], 0)
	}

	out, _, err = execute(t, "recommend", "-f", conferenceYAML, "--top", "1", "--output", "json")
	require.NoError(t, err)
	_, recs := reportOf[[]engine.Recommendation](t, out)
	require.Len(t, recs, 1)
	assert.Equal(t, 1, recs[0].Rank)

	// Interactive mode needs a terminal; a buffer falls back to the table.
	out, _, err = execute(t, "recommend", "-f", conferenceYAML, "--interactive")
	require.NoError(t, err)
	assert.Contains(t, out, "RANK")
}

func TestPortfolio_PartialFailure(t *testing.T) {
	setupCLITest(t)
	out, stderr, err := execute(t, "portfolio", "-f", portfolioYAML, "--progress", "--chunk-size", "1")
	require.Error(t, err)

	var exitErr *cli.ExitError
	require.ErrorAs(t, err, &exitErr)
	assert.Equal(t, 2, exitErr.ExitCode)
	assert.Contains(t, out, "kickoff")
	assert.Contains(t, out, "event-2")
	assert.Contains(t, out, "(1 failed)")
	assert.Contains(t, stderr, "evaluated 2/2 events")
	assert.Equal(t, 1, strings.Count(stderr, "portfolio evaluated in"))
}

func TestPortfolio_JSON(t *testing.T) {
	setupCLITest(t)
	out, _, err := execute(t, "portfolio", "-f", portfolioYAML, "--output", "json", "--concurrency", "2")
	require.Error(t, err)

	report, data := reportOf[cli.PortfolioReport](t, out)
	assert.Equal(t, "2026 season", report.Name)
	require.Len(t, data.Results, 2)
	assert.Equal(t, 2, data.Summary.Events)
	assert.Equal(t, 1, data.Summary.Failed)
	assert.Equal(t, "kickoff", data.Summary.BestEvent)
}

func TestPortfolio_DetailedAndInvalidEvents(t *testing.T) {
	setupCLITest(t)
	out, _, err := execute(t, "portfolio", "-f", filepath.Join("..", "eventfile", "testdata", "portfolio_mixed.yaml"),
		"--output", "json")
	var exitErr *cli.ExitError
	require.ErrorAs(t, err, &exitErr)

	_, data := reportOf[cli.PortfolioReport](t, out)
	require.Len(t, data.Results, 3)
	require.NotNil(t, data.Results[0].Footprint, data.Results[0].Error)
	assert.Equal(t, 200, data.Results[0].Footprint.Attendees)
	assert.Contains(t, data.Results[1].Error, "unsupported schema version")
	assert.Contains(t, data.Results[2].Error, "mars")
	assert.Equal(t, 2, data.Summary.Failed)
}
