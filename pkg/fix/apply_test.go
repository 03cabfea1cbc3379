package fix_test

import (
	"testing"

	"github.com/yaklabco/siglint/pkg/fix"
)

func TestApplyEdits(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
		edits   []fix.TextEdit
		want    string
	}{
		{
			name:    "no edits returns original",
			content: "def name\nend\n",
			edits:   nil,
			want:    "def name\nend\n",
		},
		{
			name:    "single insertion",
			content: "def name\nend\n",
			edits: []fix.TextEdit{
				{StartOffset: 0, EndOffset: 0, NewText: "sig { returns(T.untyped) }\n"},
			},
			want: "sig { returns(T.untyped) }\ndef name\nend\n",
		},
		{
			name:    "single replacement",
			content: "sig { x }\n\n\ndef name\n",
			edits: []fix.TextEdit{
				{StartOffset: 9, EndOffset: 12, NewText: "\n"},
			},
			want: "sig { x }\ndef name\n",
		},
		{
			name:    "single deletion",
			content: "abc  \n",
			edits: []fix.TextEdit{
				{StartOffset: 3, EndOffset: 5, NewText: ""},
			},
			want: "abc\n",
		},
		{
			name:    "multiple ordered edits",
			content: "one two three",
			edits: []fix.TextEdit{
				{StartOffset: 0, EndOffset: 3, NewText: "1"},
				{StartOffset: 4, EndOffset: 7, NewText: "2"},
				{StartOffset: 8, EndOffset: 13, NewText: "3"},
			},
			want: "1 2 3",
		},
		{
			name:    "two insertions at the same offset apply in order",
			content: "def name\n",
			edits: []fix.TextEdit{
				{StartOffset: 0, EndOffset: 0, NewText: "extend T::Sig\n\n"},
				{StartOffset: 0, EndOffset: 0, NewText: "sig { returns(T.untyped) }\n"},
			},
			want: "extend T::Sig\n\nsig { returns(T.untyped) }\ndef name\n",
		},
		{
			name:    "insertion at end of content",
			content: "abc",
			edits: []fix.TextEdit{
				{StartOffset: 3, EndOffset: 3, NewText: "\n"},
			},
			want: "abc\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := fix.ApplyEdits([]byte(tt.content), tt.edits)
			if string(got) != tt.want {
				t.Errorf("ApplyEdits() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestPrepareEdits(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		edits      []fix.TextEdit
		contentLen int
		want       []fix.TextEdit
		wantErr    bool
	}{
		{
			name:       "empty input",
			edits:      nil,
			contentLen: 10,
			want:       nil,
		},
		{
			name: "unsorted edits come back sorted",
			edits: []fix.TextEdit{
				{StartOffset: 8, EndOffset: 10, NewText: "b"},
				{StartOffset: 0, EndOffset: 2, NewText: "a"},
			},
			contentLen: 10,
			want: []fix.TextEdit{
				{StartOffset: 0, EndOffset: 2, NewText: "a"},
				{StartOffset: 8, EndOffset: 10, NewText: "b"},
			},
		},
		{
			name: "exact duplicates collapse to one",
			edits: []fix.TextEdit{
				{StartOffset: 4, EndOffset: 4, NewText: "extend T::Sig\n\n"},
				{StartOffset: 4, EndOffset: 4, NewText: "extend T::Sig\n\n"},
				{StartOffset: 4, EndOffset: 4, NewText: "extend T::Sig\n\n"},
			},
			contentLen: 10,
			want: []fix.TextEdit{
				{StartOffset: 4, EndOffset: 4, NewText: "extend T::Sig\n\n"},
			},
		},
		{
			name: "distinct insertions at one offset survive",
			edits: []fix.TextEdit{
				{StartOffset: 4, EndOffset: 4, NewText: "first"},
				{StartOffset: 4, EndOffset: 4, NewText: "second"},
			},
			contentLen: 10,
			want: []fix.TextEdit{
				{StartOffset: 4, EndOffset: 4, NewText: "first"},
				{StartOffset: 4, EndOffset: 4, NewText: "second"},
			},
		},
		{
			name: "overlapping ranges conflict",
			edits: []fix.TextEdit{
				{StartOffset: 0, EndOffset: 5, NewText: "a"},
				{StartOffset: 3, EndOffset: 8, NewText: "b"},
			},
			contentLen: 10,
			wantErr:    true,
		},
		{
			name: "insertion inside a replaced range conflicts",
			edits: []fix.TextEdit{
				{StartOffset: 0, EndOffset: 5, NewText: "a"},
				{StartOffset: 2, EndOffset: 2, NewText: "b"},
			},
			contentLen: 10,
			wantErr:    true,
		},
		{
			name: "out of range edit rejected",
			edits: []fix.TextEdit{
				{StartOffset: 0, EndOffset: 20, NewText: "a"},
			},
			contentLen: 10,
			wantErr:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := fix.PrepareEdits(tt.edits, tt.contentLen)
			if tt.wantErr {
				if err == nil {
					t.Fatal("PrepareEdits() expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("PrepareEdits() unexpected error: %v", err)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("PrepareEdits() returned %d edits, want %d", len(got), len(tt.want))
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("edit %d = %+v, want %+v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestPrepareEditsDoesNotMutateInput(t *testing.T) {
	t.Parallel()

	edits := []fix.TextEdit{
		{StartOffset: 8, EndOffset: 10, NewText: "b"},
		{StartOffset: 0, EndOffset: 2, NewText: "a"},
	}

	_, err := fix.PrepareEdits(edits, 10)
	if err != nil {
		t.Fatalf("PrepareEdits() unexpected error: %v", err)
	}
	if edits[0].StartOffset != 8 {
		t.Error("PrepareEdits() reordered the caller's slice")
	}
}

func TestPrepareThenApply(t *testing.T) {
	t.Parallel()

	content := "class User\n  def name\n  end\nend\n"

	// Sibling offenses each propose the same capability insertion;
	// only one survives preparation.
	edits := []fix.TextEdit{
		{StartOffset: 11, EndOffset: 11, NewText: "  extend T::Sig\n\n"},
		{StartOffset: 11, EndOffset: 11, NewText: "  sig { returns(T.untyped) }\n"},
		{StartOffset: 11, EndOffset: 11, NewText: "  extend T::Sig\n\n"},
	}

	prepared, err := fix.PrepareEdits(edits, len(content))
	if err != nil {
		t.Fatalf("PrepareEdits() unexpected error: %v", err)
	}

	got := string(fix.ApplyEdits([]byte(content), prepared))
	want := "class User\n  extend T::Sig\n\n  sig { returns(T.untyped) }\n  def name\n  end\nend\n"
	if got != want {
		t.Errorf("ApplyEdits() = %q, want %q", got, want)
	}
}
