package reporter_test

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/siglint/pkg/config"
	"github.com/yaklabco/siglint/pkg/lint"
	"github.com/yaklabco/siglint/pkg/lint/rules"
	"github.com/yaklabco/siglint/pkg/parser/rubysrc"
	"github.com/yaklabco/siglint/pkg/reporter"
	"github.com/yaklabco/siglint/pkg/runner"
)

const unsignedSource = "# typed: true\n\nclass User\n  def name\n  end\nend\n"

// lintDir runs the full runner over a temp dir holding one offending
// file and returns the result.
func lintDir(t *testing.T, cfg *config.Config) *runner.Result {
	t.Helper()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "user.rb"), []byte(unsignedSource), 0o644))

	registry := lint.NewRegistry()
	rules.RegisterAll(registry)
	engine := lint.NewEngine(rubysrc.New(), registry)

	result, err := runner.New(lint.NewPipeline(engine)).Run(context.Background(), runner.Options{
		WorkingDir: dir,
		Config:     cfg,
	})
	require.NoError(t, err)
	return result
}

func TestParseFormat(t *testing.T) {
	t.Parallel()

	for input, want := range map[string]reporter.Format{
		"":     reporter.FormatText,
		"text": reporter.FormatText,
		"json": reporter.FormatJSON,
		"diff": reporter.FormatDiff,
	} {
		got, err := reporter.ParseFormat(input)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	_, err := reporter.ParseFormat("xml")
	assert.Error(t, err)
}

func TestFormatIsValid(t *testing.T) {
	t.Parallel()

	assert.True(t, reporter.FormatText.IsValid())
	assert.True(t, reporter.FormatJSON.IsValid())
	assert.True(t, reporter.FormatDiff.IsValid())
	assert.False(t, reporter.Format("sarif").IsValid())
}

func TestNewRejectsUnknownFormat(t *testing.T) {
	t.Parallel()

	_, err := reporter.New(reporter.Options{Format: "sarif"})
	assert.Error(t, err)
}

func TestJSONReporter(t *testing.T) {
	t.Parallel()

	result := lintDir(t, config.NewConfig())

	var buf bytes.Buffer
	r, err := reporter.New(reporter.Options{Writer: &buf, Format: reporter.FormatJSON})
	require.NoError(t, err)

	issues, err := r.Report(context.Background(), result)
	require.NoError(t, err)
	assert.Equal(t, 1, issues)

	var output reporter.JSONOutput
	require.NoError(t, json.Unmarshal(buf.Bytes(), &output))

	assert.Equal(t, "1.0.0", output.Version)
	require.Len(t, output.Files, 1)
	require.Len(t, output.Files[0].Diagnostics, 1)

	diag := output.Files[0].Diagnostics[0]
	assert.Equal(t, "SG001", diag.RuleID)
	assert.Equal(t, "signature-required", diag.RuleName)
	assert.Equal(t, "warning", diag.Severity)
	assert.Contains(t, diag.Message, `"name"`)
	assert.True(t, diag.Fixable)
	assert.NotEmpty(t, diag.Fixes)
	assert.Equal(t, 4, diag.StartLine)

	assert.Equal(t, 1, output.Summary.FilesChecked)
	assert.Equal(t, 1, output.Summary.FilesWithIssues)
	assert.Equal(t, 1, output.Summary.TotalIssues)
	assert.Equal(t, 1, output.Summary.BySeverity["warning"])
}

func TestJSONReporterCompact(t *testing.T) {
	t.Parallel()

	result := lintDir(t, config.NewConfig())

	var buf bytes.Buffer
	r, err := reporter.New(reporter.Options{
		Writer:  &buf,
		Format:  reporter.FormatJSON,
		Compact: true,
	})
	require.NoError(t, err)

	_, err = r.Report(context.Background(), result)
	require.NoError(t, err)

	// Compact output is a single line.
	assert.NotContains(t, strings.TrimRight(buf.String(), "\n"), "\n")
}

func TestJSONReporterEmptyResult(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	r, err := reporter.New(reporter.Options{Writer: &buf, Format: reporter.FormatJSON})
	require.NoError(t, err)

	issues, err := r.Report(context.Background(), &runner.Result{})
	require.NoError(t, err)
	assert.Equal(t, 0, issues)

	var output reporter.JSONOutput
	require.NoError(t, json.Unmarshal(buf.Bytes(), &output))
	assert.Empty(t, output.Files)
	assert.Equal(t, 0, output.Summary.TotalIssues)
}

func TestTextReporter(t *testing.T) {
	t.Parallel()

	result := lintDir(t, config.NewConfig())

	var buf bytes.Buffer
	r, err := reporter.New(reporter.Options{
		Writer:      &buf,
		Format:      reporter.FormatText,
		Color:       "never",
		ShowContext: true,
		ShowSummary: true,
		GroupByFile: true,
		RuleFormat:  config.RuleFormatCombined,
	})
	require.NoError(t, err)

	issues, err := r.Report(context.Background(), result)
	require.NoError(t, err)
	assert.Equal(t, 1, issues)

	out := buf.String()
	assert.Contains(t, out, "user.rb")
	assert.Contains(t, out, `Method "name" has no Sorbet signature`)
	assert.Contains(t, out, "SG001/signature-required")
}

func TestTextReporterNoFiles(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	r, err := reporter.New(reporter.Options{
		Writer:      &buf,
		Format:      reporter.FormatText,
		Color:       "never",
		ShowSummary: true,
	})
	require.NoError(t, err)

	issues, err := r.Report(context.Background(), &runner.Result{})
	require.NoError(t, err)
	assert.Equal(t, 0, issues)
	assert.Contains(t, buf.String(), "No files to check.")
}

func TestDiffReporter(t *testing.T) {
	t.Parallel()

	cfg := config.NewConfig()
	cfg.Fix = true
	cfg.DryRun = true
	result := lintDir(t, cfg)

	var buf bytes.Buffer
	r, err := reporter.New(reporter.Options{
		Writer:      &buf,
		Format:      reporter.FormatDiff,
		Color:       "never",
		ShowSummary: true,
	})
	require.NoError(t, err)

	filesWithDiffs, err := r.Report(context.Background(), result)
	require.NoError(t, err)
	assert.Equal(t, 1, filesWithDiffs)

	out := buf.String()
	assert.Contains(t, out, "diff --git")
	assert.Contains(t, out, "+  extend T::Sig")
	assert.Contains(t, out, "+  sig { returns(T.untyped) }")
	assert.Contains(t, out, "1 file changed")
	assert.Contains(t, out, "3 insertions(+)")
}

func TestDiffReporterNoChanges(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	r, err := reporter.New(reporter.Options{
		Writer: &buf,
		Format: reporter.FormatDiff,
		Color:  "never",
	})
	require.NoError(t, err)

	filesWithDiffs, err := r.Report(context.Background(), &runner.Result{})
	require.NoError(t, err)
	assert.Equal(t, 0, filesWithDiffs)
	assert.Empty(t, buf.String())
}
