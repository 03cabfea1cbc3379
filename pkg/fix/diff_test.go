package fix_test

import (
	"strings"
	"testing"

	"github.com/yaklabco/siglint/pkg/fix"
)

func TestGenerateDiff(t *testing.T) {
	t.Parallel()

	t.Run("returns nil for empty inputs", func(t *testing.T) {
		t.Parallel()

		if diff := fix.GenerateDiff("test.rb", nil, nil); diff != nil {
			t.Error("expected nil for empty inputs")
		}
	})

	t.Run("returns nil for identical content", func(t *testing.T) {
		t.Parallel()

		content := []byte("sig { returns(String) }\ndef name\nend\n")
		if diff := fix.GenerateDiff("test.rb", content, content); diff != nil {
			t.Error("expected nil for identical content")
		}
	})

	t.Run("counts an added line", func(t *testing.T) {
		t.Parallel()

		original := []byte("def name\nend\n")
		modified := []byte("sig { returns(T.untyped) }\ndef name\nend\n")

		diff := fix.GenerateDiff("test.rb", original, modified)
		if diff == nil {
			t.Fatal("expected non-nil diff")
		}
		if diff.Additions != 1 {
			t.Errorf("Additions = %d, want 1", diff.Additions)
		}
		if diff.Deletions != 0 {
			t.Errorf("Deletions = %d, want 0", diff.Deletions)
		}
		if !diff.HasChanges() {
			t.Error("HasChanges() = false, want true")
		}
	})

	t.Run("counts a removed blank line", func(t *testing.T) {
		t.Parallel()

		original := []byte("sig { returns(String) }\n\ndef name\nend\n")
		modified := []byte("sig { returns(String) }\ndef name\nend\n")

		diff := fix.GenerateDiff("test.rb", original, modified)
		if diff == nil {
			t.Fatal("expected non-nil diff")
		}
		if diff.Deletions != 1 {
			t.Errorf("Deletions = %d, want 1", diff.Deletions)
		}
		if diff.Additions != 0 {
			t.Errorf("Additions = %d, want 0", diff.Additions)
		}
	})

	t.Run("separate changes produce separate hunks", func(t *testing.T) {
		t.Parallel()

		var orig, mod strings.Builder
		for i := 0; i < 30; i++ {
			orig.WriteString("context line\n")
			mod.WriteString("context line\n")
			if i == 0 || i == 29 {
				orig.WriteString("old\n")
				mod.WriteString("new\n")
			}
		}

		diff := fix.GenerateDiff("test.rb", []byte(orig.String()), []byte(mod.String()))
		if diff == nil {
			t.Fatal("expected non-nil diff")
		}
		if len(diff.Hunks) != 2 {
			t.Errorf("len(Hunks) = %d, want 2", len(diff.Hunks))
		}
	})

	t.Run("unified output format", func(t *testing.T) {
		t.Parallel()

		original := []byte("a\nb\nc\n")
		modified := []byte("a\nB\nc\n")

		diff := fix.GenerateDiff("test.rb", original, modified)
		if diff == nil {
			t.Fatal("expected non-nil diff")
		}

		out := diff.String()
		for _, want := range []string{"--- a/test.rb\n", "+++ b/test.rb\n", "-b\n", "+B\n", " a\n", " c\n"} {
			if !strings.Contains(out, want) {
				t.Errorf("String() missing %q in:\n%s", want, out)
			}
		}
	})

	t.Run("git header strips leading slash", func(t *testing.T) {
		t.Parallel()

		diff := fix.GenerateDiff("/srv/app/user.rb", []byte("a\n"), []byte("b\n"))
		if diff == nil {
			t.Fatal("expected non-nil diff")
		}
		want := "diff --git a/srv/app/user.rb b/srv/app/user.rb"
		if diff.GitHeader() != want {
			t.Errorf("GitHeader() = %q, want %q", diff.GitHeader(), want)
		}
		if !strings.HasPrefix(diff.FullString(), want+"\n") {
			t.Error("FullString() does not start with the git header")
		}
	})

	t.Run("nil diff renders empty", func(t *testing.T) {
		t.Parallel()

		var diff *fix.Diff
		if diff.String() != "" {
			t.Error("nil String() should be empty")
		}
		if diff.HasChanges() {
			t.Error("nil HasChanges() should be false")
		}
	})
}

func FuzzGenerateDiff(f *testing.F) {
	f.Add([]byte(""), []byte(""))
	f.Add([]byte("def name\nend\n"), []byte("def name\nend\n"))
	f.Add([]byte("sig { x }\n\ndef a\n"), []byte("sig { x }\ndef a\n"))
	f.Add([]byte("a\nb\nc\n"), []byte("a\nx\nc\n"))
	f.Add([]byte("line1\nline2\n"), []byte("line1\nline2\nline3\n"))
	f.Add([]byte("no trailing newline"), []byte("still no trailing newline"))

	f.Fuzz(func(t *testing.T, original, modified []byte) {
		diff := fix.GenerateDiff("test.rb", original, modified)
		if diff == nil {
			return
		}

		if diff.Path != "test.rb" {
			t.Errorf("Path = %q, want test.rb", diff.Path)
		}
		_ = diff.String()

		if !diff.HasChanges() && len(diff.Hunks) > 0 {
			t.Error("HasChanges() inconsistent with Hunks")
		}

		adds, removes := 0, 0
		for _, hunk := range diff.Hunks {
			for _, line := range hunk.Lines {
				switch line.Kind {
				case fix.DiffLineAdd:
					adds++
				case fix.DiffLineRemove:
					removes++
				}
			}
		}
		if adds != diff.Additions || removes != diff.Deletions {
			t.Errorf("hunk lines (%d adds, %d removes) disagree with counters (%d, %d)",
				adds, removes, diff.Additions, diff.Deletions)
		}
	})
}
