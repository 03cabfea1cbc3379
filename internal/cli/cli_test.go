package cli_test

import (
	"bytes"
	"testing"

	"github.com/yaklabco/siglint/internal/cli"
	"github.com/yaklabco/siglint/pkg/runner"
)

func testBuildInfo() cli.BuildInfo {
	return cli.BuildInfo{
		Version: "test-version",
		Commit:  "test-commit",
		Date:    "test-date",
	}
}

func TestNewRootCommand(t *testing.T) {
	t.Parallel()

	cmd := cli.NewRootCommand(testBuildInfo())

	if cmd == nil {
		t.Fatal("NewRootCommand returned nil")
	}
	if cmd.Use != "siglint" {
		t.Errorf("expected Use to be 'siglint', got %q", cmd.Use)
	}
	if cmd.Short == "" {
		t.Error("expected Short description to be set")
	}
	if cmd.Long == "" {
		t.Error("expected Long description to be set")
	}
}

func TestRootCommandHasSubcommands(t *testing.T) {
	t.Parallel()

	cmd := cli.NewRootCommand(testBuildInfo())

	for _, name := range []string{"lint", "rules", "init", "version"} {
		subCmd, _, err := cmd.Find([]string{name})
		if err != nil {
			t.Errorf("expected subcommand %q to exist, got error: %v", name, err)
			continue
		}
		if subCmd.Name() != name {
			t.Errorf("expected subcommand name %q, got %q", name, subCmd.Name())
		}
	}
}

func TestLintCommandFlags(t *testing.T) {
	t.Parallel()

	cmd := cli.NewRootCommand(testBuildInfo())
	lintCmd, _, err := cmd.Find([]string{"lint"})
	if err != nil {
		t.Fatalf("lint command not found: %v", err)
	}

	expectedFlags := []string{
		"fix",
		"dry-run",
		"format",
		"jobs",
		"line-length",
		"ignore",
		"enable",
		"disable",
		"backups",
		"detect-unknown",
		"strict",
		"rule-format",
	}

	for _, flagName := range expectedFlags {
		if lintCmd.Flags().Lookup(flagName) == nil {
			t.Errorf("expected flag %q to exist on lint command", flagName)
		}
	}
}

func TestGlobalFlags(t *testing.T) {
	t.Parallel()

	cmd := cli.NewRootCommand(testBuildInfo())

	for _, flagName := range []string{"debug", "config", "color"} {
		if cmd.PersistentFlags().Lookup(flagName) == nil {
			t.Errorf("expected global flag %q to exist", flagName)
		}
	}
}

func TestVersionCommand(t *testing.T) {
	t.Parallel()

	cmd := cli.NewRootCommand(cli.BuildInfo{
		Version: "1.2.3",
		Commit:  "abc123",
		Date:    "2026-01-01",
	})
	cmd.SetArgs([]string{"version"})

	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)

	if err := cmd.Execute(); err != nil {
		t.Fatalf("version command failed: %v", err)
	}
}

func TestLintCommandAcceptsArbitraryArgs(t *testing.T) {
	t.Parallel()

	cmd := cli.NewRootCommand(testBuildInfo())
	lintCmd, _, err := cmd.Find([]string{"lint"})
	if err != nil {
		t.Fatalf("lint command not found: %v", err)
	}

	err = lintCmd.Args(lintCmd, []string{"user.rb", "app/models/", "Rakefile"})
	if err != nil {
		t.Errorf("lint command should accept arbitrary args, got error: %v", err)
	}
}

func TestExitCodeFromResult(t *testing.T) {
	t.Parallel()

	withSeverities := func(counts map[string]int) *runner.Result {
		return &runner.Result{Stats: runner.Stats{DiagnosticsBySeverity: counts}}
	}

	tests := []struct {
		name   string
		result *runner.Result
		strict bool
		want   int
	}{
		{
			name:   "nil result",
			result: nil,
			want:   cli.ExitSuccess,
		},
		{
			name:   "clean run",
			result: &runner.Result{},
			want:   cli.ExitSuccess,
		},
		{
			name:   "errors",
			result: withSeverities(map[string]int{"error": 2}),
			want:   cli.ExitLintErrors,
		},
		{
			name:   "warnings without strict",
			result: withSeverities(map[string]int{"warning": 3}),
			want:   cli.ExitSuccess,
		},
		{
			name:   "warnings with strict",
			result: withSeverities(map[string]int{"warning": 3}),
			strict: true,
			want:   cli.ExitLintWarnings,
		},
		{
			name:   "errors win over strict warnings",
			result: withSeverities(map[string]int{"error": 1, "warning": 5}),
			strict: true,
			want:   cli.ExitLintErrors,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := cli.ExitCodeFromResult(tt.result, tt.strict); got != tt.want {
				t.Errorf("ExitCodeFromResult() = %d, want %d", got, tt.want)
			}
		})
	}
}
