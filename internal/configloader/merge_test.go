package configloader

import (
	"testing"

	"github.com/yaklabco/siglint/pkg/config"
)

func boolPtr(b bool) *bool    { return &b }
func strPtr(s string) *string { return &s }

func TestMerge_NilHandling(t *testing.T) {
	t.Parallel()

	base := config.NewConfig()

	if got := merge(nil, base); got != base {
		t.Error("merge(nil, base) should return base")
	}
	if got := merge(base, nil); got != base {
		t.Error("merge(base, nil) should return base")
	}
}

func TestMerge_Scalars(t *testing.T) {
	t.Parallel()

	base := config.NewConfig()
	override := &config.Config{
		SeverityDefault: "error",
		LineLength:      80,
		Jobs:            4,
	}

	got := merge(base, override)

	if got.SeverityDefault != "error" {
		t.Errorf("expected severity_default error, got %q", got.SeverityDefault)
	}
	if got.LineLength != 80 {
		t.Errorf("expected line_length 80, got %d", got.LineLength)
	}
	if got.Jobs != 4 {
		t.Errorf("expected jobs 4, got %d", got.Jobs)
	}
	// Unset override fields keep the base values.
	if got.Format != config.FormatText {
		t.Errorf("expected format text, got %q", got.Format)
	}
}

func TestMerge_ZeroValuesDoNotOverride(t *testing.T) {
	t.Parallel()

	base := config.NewConfig()
	base.SeverityDefault = "error"
	base.Jobs = 4
	base.Fix = true

	got := merge(base, &config.Config{})

	if got.SeverityDefault != "error" {
		t.Errorf("expected severity_default error, got %q", got.SeverityDefault)
	}
	if got.Jobs != 4 {
		t.Errorf("expected jobs 4, got %d", got.Jobs)
	}
	if !got.Fix {
		t.Error("expected fix to stay true; false in override is the zero value")
	}
}

func TestMerge_SlicesReplace(t *testing.T) {
	t.Parallel()

	base := config.NewConfig()
	base.Ignore = []string{"vendor/**", "db/**"}

	got := merge(base, &config.Config{Ignore: []string{"tmp/**"}})

	if len(got.Ignore) != 1 || got.Ignore[0] != "tmp/**" {
		t.Errorf("expected override slice to replace base, got %v", got.Ignore)
	}

	// Nil slice in override keeps base.
	got = merge(base, &config.Config{})
	if len(got.Ignore) != 2 {
		t.Errorf("expected base slice to survive, got %v", got.Ignore)
	}
}

func TestMerge_RulesDeepMerge(t *testing.T) {
	t.Parallel()

	base := config.NewConfig()
	base.Rules["SG001"] = config.RuleConfig{
		Enabled:  boolPtr(true),
		Severity: strPtr("warning"),
		Options:  map[string]any{"line_length": 100},
	}

	override := &config.Config{
		Rules: map[string]config.RuleConfig{
			"SG001": {Severity: strPtr("error")},
			"SG002": {Enabled: boolPtr(false)},
		},
	}

	got := merge(base, override)

	sg001 := got.Rules["SG001"]
	if sg001.Severity == nil || *sg001.Severity != "error" {
		t.Error("expected SG001 severity overridden to error")
	}
	if sg001.Enabled == nil || !*sg001.Enabled {
		t.Error("expected SG001 enabled to survive from base")
	}
	if sg001.Options["line_length"] != 100 {
		t.Error("expected SG001 options to survive from base")
	}

	sg002 := got.Rules["SG002"]
	if sg002.Enabled == nil || *sg002.Enabled {
		t.Error("expected SG002 disabled from override")
	}
}

func TestMerge_RuleOptionsMerge(t *testing.T) {
	t.Parallel()

	base := config.NewConfig()
	base.Rules["SG001"] = config.RuleConfig{
		Options: map[string]any{"line_length": 100, "style": "block"},
	}

	override := &config.Config{
		Rules: map[string]config.RuleConfig{
			"SG001": {Options: map[string]any{"line_length": 80}},
		},
	}

	got := merge(base, override)

	opts := got.Rules["SG001"].Options
	if opts["line_length"] != 80 {
		t.Errorf("expected line_length 80, got %v", opts["line_length"])
	}
	if opts["style"] != "block" {
		t.Errorf("expected style to survive, got %v", opts["style"])
	}
}

func TestMerge_Backups(t *testing.T) {
	t.Parallel()

	base := config.NewConfig()
	override := &config.Config{
		Backups: config.BackupsConfig{Enabled: true, Mode: "none"},
	}

	got := merge(base, override)

	if !got.Backups.Enabled {
		t.Error("expected backups enabled")
	}
	if got.Backups.Mode != "none" {
		t.Errorf("expected backup mode none, got %q", got.Backups.Mode)
	}
}

func TestMergeAll(t *testing.T) {
	t.Parallel()

	if got := MergeAll(); got != nil {
		t.Error("MergeAll() with no configs should return nil")
	}

	lowest := config.NewConfig()
	middle := &config.Config{LineLength: 100}
	highest := &config.Config{LineLength: 80, Fix: true}

	got := MergeAll(lowest, middle, highest)

	if got.LineLength != 80 {
		t.Errorf("expected line_length 80 from highest layer, got %d", got.LineLength)
	}
	if !got.Fix {
		t.Error("expected fix true from highest layer")
	}
	if got.SeverityDefault != "warning" {
		t.Errorf("expected severity_default from lowest layer, got %q", got.SeverityDefault)
	}
}
