package pretty_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yaklabco/siglint/internal/ui/pretty"
	"github.com/yaklabco/siglint/pkg/config"
	"github.com/yaklabco/siglint/pkg/lint"
)

func sampleDiagnostic() *lint.Diagnostic {
	return &lint.Diagnostic{
		RuleID:      "SG001",
		RuleName:    "signature-required",
		Severity:    config.SeverityWarning,
		Message:     `Method "name" has no Sorbet signature`,
		FilePath:    "app/models/user.rb",
		StartLine:   4,
		StartColumn: 3,
		Suggestion:  "Add a sig block directly above the definition",
	}
}

func TestFormatDiagnostic(t *testing.T) {
	styles := pretty.NewStyles(false)

	result := styles.FormatDiagnostic(sampleDiagnostic(), false, "", config.RuleFormatName)

	assert.Contains(t, result, "app/models/user.rb:4:3")
	assert.Contains(t, result, "warning")
	assert.Contains(t, result, `Method "name" has no Sorbet signature`)
	assert.Contains(t, result, "(signature-required)")
	assert.Contains(t, result, "Suggestion:")
}

func TestFormatDiagnostic_RuleFormats(t *testing.T) {
	styles := pretty.NewStyles(false)
	diag := sampleDiagnostic()

	byID := styles.FormatDiagnostic(diag, false, "", config.RuleFormatID)
	assert.Contains(t, byID, "(SG001)")

	combined := styles.FormatDiagnostic(diag, false, "", config.RuleFormatCombined)
	assert.Contains(t, combined, "(SG001/signature-required)")
}

func TestFormatDiagnostic_SourceContext(t *testing.T) {
	styles := pretty.NewStyles(false)

	result := styles.FormatDiagnostic(sampleDiagnostic(), true, "  def name", config.RuleFormatName)

	assert.Contains(t, result, "  def name")
	assert.Contains(t, result, "^")
}

func TestFormatSeverity(t *testing.T) {
	styles := pretty.NewStyles(false)

	assert.Equal(t, "error", styles.FormatSeverity(config.SeverityError))
	assert.Equal(t, "warning", styles.FormatSeverity(config.SeverityWarning))
	assert.Equal(t, "info", styles.FormatSeverity(config.SeverityInfo))
}

func TestFormatSourceContext_CaretPlacement(t *testing.T) {
	styles := pretty.NewStyles(false)

	result := styles.FormatSourceContext("  def name", 3)

	assert.Contains(t, result, "  def name\n")
	// Caret sits under column 3 after the fixed indent.
	assert.Contains(t, result, "          ^\n")
}

func TestFormatFileHeader(t *testing.T) {
	styles := pretty.NewStyles(false)

	header := styles.FormatFileHeader("app/models/user.rb", 2)
	assert.Contains(t, header, "app/models/user.rb")
	assert.Contains(t, header, "(2 issues)")

	clean := styles.FormatFileHeader("app/models/user.rb", 0)
	assert.NotContains(t, clean, "issues")
}
