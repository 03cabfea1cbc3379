package cli_test

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/siglint/internal/cli"
)

// unsignedRuby is a typed Ruby file whose method lacks a signature.
// This triggers SG001/signature-required.
const unsignedRuby = `# typed: true

class User
  def name
    @name
  end
end
`

const signedRuby = `# typed: true

class User
  extend T::Sig

  sig { returns(T.untyped) }
  def name
    @name
  end
end
`

func writeRubyFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "user.rb")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func minimalConfig(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), ".siglint.yml")
	require.NoError(t, os.WriteFile(path, []byte("line_length: 120\n"), 0644))
	return path
}

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()

	cmd := cli.NewRootCommand(testBuildInfo())

	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return stdout.String() + stderr.String(), err
}

func TestIntegration_RuleFormatFlag(t *testing.T) {
	t.Parallel()

	rbFile := writeRubyFile(t, unsignedRuby)
	cfgFile := minimalConfig(t)

	tests := []struct {
		name           string
		ruleFormat     string
		wantContains   []string
		wantNotContain []string
	}{
		{
			name:           "name shows rule name only",
			ruleFormat:     "name",
			wantContains:   []string{"signature-required"},
			wantNotContain: []string{"SG001/"},
		},
		{
			name:           "id shows rule ID only",
			ruleFormat:     "id",
			wantContains:   []string{"SG001"},
			wantNotContain: []string{"signature-required"},
		},
		{
			name:         "combined shows both",
			ruleFormat:   "combined",
			wantContains: []string{"SG001/signature-required"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			output, _ := runCLI(t,
				"lint",
				"--config", cfgFile,
				"--rule-format", tt.ruleFormat,
				"--no-context",
				"--color", "never",
				rbFile,
			)

			for _, want := range tt.wantContains {
				assert.Contains(t, output, want,
					"output should contain %q for rule-format=%s", want, tt.ruleFormat)
			}
			for _, notWant := range tt.wantNotContain {
				assert.NotContains(t, output, notWant,
					"output should not contain %q for rule-format=%s", notWant, tt.ruleFormat)
			}
		})
	}
}

func TestIntegration_ConfigWithRuleNames(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()

	rbFile := filepath.Join(tmpDir, "user.rb")
	require.NoError(t, os.WriteFile(rbFile, []byte(unsignedRuby), 0644))

	configContent := `
rules:
  signature-required:
    enabled: false
`
	configFile := filepath.Join(tmpDir, ".siglint.yml")
	require.NoError(t, os.WriteFile(configFile, []byte(configContent), 0644))

	output, err := runCLI(t,
		"lint",
		"--config", configFile,
		"--no-context",
		"--color", "never",
		rbFile,
	)

	assert.NoError(t, err, "disabling the only firing rule should yield a clean run")
	assert.NotContains(t, output, "signature-required")
}

func TestIntegration_Fix(t *testing.T) {
	t.Parallel()

	rbFile := writeRubyFile(t, unsignedRuby)
	cfgFile := minimalConfig(t)

	_, err := runCLI(t,
		"lint",
		"--config", cfgFile,
		"--fix",
		"--color", "never",
		rbFile,
	)
	require.NoError(t, err, "a fully fixed run should exit clean")

	got, err := os.ReadFile(rbFile)
	require.NoError(t, err)
	assert.Equal(t, signedRuby, string(got))
}

func TestIntegration_DryRunLeavesFileAlone(t *testing.T) {
	t.Parallel()

	rbFile := writeRubyFile(t, unsignedRuby)
	cfgFile := minimalConfig(t)

	output, _ := runCLI(t,
		"lint",
		"--config", cfgFile,
		"--fix",
		"--dry-run",
		"--format", "diff",
		"--color", "never",
		rbFile,
	)

	assert.Contains(t, output, "+  extend T::Sig")
	assert.Contains(t, output, "+  sig { returns(T.untyped) }")

	got, err := os.ReadFile(rbFile)
	require.NoError(t, err)
	assert.Equal(t, unsignedRuby, string(got), "dry run must not rewrite the file")
}

func TestIntegration_JSONFormat(t *testing.T) {
	t.Parallel()

	rbFile := writeRubyFile(t, unsignedRuby)
	cfgFile := minimalConfig(t)

	cmd := cli.NewRootCommand(testBuildInfo())

	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs([]string{
		"lint",
		"--config", cfgFile,
		"--format", "json",
		"--color", "never",
		rbFile,
	})
	_ = cmd.Execute()

	output := stdout.String()
	start := strings.Index(output, "{")
	require.GreaterOrEqual(t, start, 0, "expected JSON output, got %q", output)

	var parsed struct {
		Files []struct {
			Path        string `json:"path"`
			Diagnostics []struct {
				RuleID string `json:"ruleId"`
			} `json:"diagnostics"`
		} `json:"files"`
	}
	require.NoError(t, json.Unmarshal([]byte(output[start:]), &parsed))

	require.Len(t, parsed.Files, 1)
	require.NotEmpty(t, parsed.Files[0].Diagnostics)
	assert.Equal(t, "SG001", parsed.Files[0].Diagnostics[0].RuleID)
}

func TestIntegration_CleanFileExitsZero(t *testing.T) {
	t.Parallel()

	rbFile := writeRubyFile(t, signedRuby)
	cfgFile := minimalConfig(t)

	_, err := runCLI(t,
		"lint",
		"--config", cfgFile,
		"--color", "never",
		rbFile,
	)

	assert.NoError(t, err)
}
