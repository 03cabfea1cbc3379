package fix_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/yaklabco/siglint/pkg/fix"
)

func TestValidateEdits(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		edits      []fix.TextEdit
		contentLen int
		wantErr    bool
		errMsg     string
	}{
		{
			name:       "empty edits",
			edits:      nil,
			contentLen: 10,
			wantErr:    false,
		},
		{
			name: "valid edits",
			edits: []fix.TextEdit{
				{StartOffset: 0, EndOffset: 5, NewText: "a"},
				{StartOffset: 5, EndOffset: 10, NewText: "b"},
			},
			contentLen: 10,
			wantErr:    false,
		},
		{
			name: "edit at content boundary",
			edits: []fix.TextEdit{
				{StartOffset: 10, EndOffset: 10, NewText: "\n"},
			},
			contentLen: 10,
			wantErr:    false,
		},
		{
			name: "negative start offset",
			edits: []fix.TextEdit{
				{StartOffset: -1, EndOffset: 5, NewText: "a"},
			},
			contentLen: 10,
			wantErr:    true,
			errMsg:     "start offset is negative",
		},
		{
			name: "end before start",
			edits: []fix.TextEdit{
				{StartOffset: 5, EndOffset: 3, NewText: "a"},
			},
			contentLen: 10,
			wantErr:    true,
			errMsg:     "end offset is before start offset",
		},
		{
			name: "end past content",
			edits: []fix.TextEdit{
				{StartOffset: 5, EndOffset: 11, NewText: "a"},
			},
			contentLen: 10,
			wantErr:    true,
			errMsg:     "exceeds content length",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := fix.ValidateEdits(tt.edits, tt.contentLen)
			if tt.wantErr {
				if err == nil {
					t.Fatal("ValidateEdits() expected error, got nil")
				}
				var verr *fix.ValidationError
				if !errors.As(err, &verr) {
					t.Fatalf("error type = %T, want *ValidationError", err)
				}
				if !strings.Contains(err.Error(), tt.errMsg) {
					t.Errorf("error %q does not contain %q", err.Error(), tt.errMsg)
				}
				return
			}
			if err != nil {
				t.Errorf("ValidateEdits() unexpected error: %v", err)
			}
		})
	}
}

func TestSortEditsIsStable(t *testing.T) {
	t.Parallel()

	edits := []fix.TextEdit{
		{StartOffset: 4, EndOffset: 4, NewText: "first"},
		{StartOffset: 4, EndOffset: 4, NewText: "second"},
		{StartOffset: 0, EndOffset: 0, NewText: "third"},
	}

	fix.SortEdits(edits)

	want := []fix.TextEdit{
		{StartOffset: 0, EndOffset: 0, NewText: "third"},
		{StartOffset: 4, EndOffset: 4, NewText: "first"},
		{StartOffset: 4, EndOffset: 4, NewText: "second"},
	}
	for i := range want {
		if edits[i] != want[i] {
			t.Errorf("edit %d = %+v, want %+v", i, edits[i], want[i])
		}
	}
}

func TestDedupeEdits(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		edits []fix.TextEdit
		want  []fix.TextEdit
	}{
		{
			name:  "empty",
			edits: nil,
			want:  nil,
		},
		{
			name: "adjacent duplicates collapse",
			edits: []fix.TextEdit{
				{StartOffset: 2, EndOffset: 2, NewText: "x"},
				{StartOffset: 2, EndOffset: 2, NewText: "x"},
			},
			want: []fix.TextEdit{
				{StartOffset: 2, EndOffset: 2, NewText: "x"},
			},
		},
		{
			name: "duplicate separated by a different same-offset insertion",
			edits: []fix.TextEdit{
				{StartOffset: 2, EndOffset: 2, NewText: "x"},
				{StartOffset: 2, EndOffset: 2, NewText: "y"},
				{StartOffset: 2, EndOffset: 2, NewText: "x"},
			},
			want: []fix.TextEdit{
				{StartOffset: 2, EndOffset: 2, NewText: "x"},
				{StartOffset: 2, EndOffset: 2, NewText: "y"},
			},
		},
		{
			name: "same text at different offsets kept",
			edits: []fix.TextEdit{
				{StartOffset: 2, EndOffset: 2, NewText: "x"},
				{StartOffset: 5, EndOffset: 5, NewText: "x"},
			},
			want: []fix.TextEdit{
				{StartOffset: 2, EndOffset: 2, NewText: "x"},
				{StartOffset: 5, EndOffset: 5, NewText: "x"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := fix.DedupeEdits(tt.edits)
			if len(got) != len(tt.want) {
				t.Fatalf("DedupeEdits() returned %d edits, want %d", len(got), len(tt.want))
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("edit %d = %+v, want %+v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestDetectConflicts(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		edits   []fix.TextEdit
		wantErr bool
	}{
		{
			name: "disjoint ranges",
			edits: []fix.TextEdit{
				{StartOffset: 0, EndOffset: 2, NewText: "a"},
				{StartOffset: 5, EndOffset: 7, NewText: "b"},
			},
		},
		{
			name: "adjacent ranges touch without conflict",
			edits: []fix.TextEdit{
				{StartOffset: 0, EndOffset: 3, NewText: "a"},
				{StartOffset: 3, EndOffset: 6, NewText: "b"},
			},
		},
		{
			name: "insertions at the same offset",
			edits: []fix.TextEdit{
				{StartOffset: 3, EndOffset: 3, NewText: "a"},
				{StartOffset: 3, EndOffset: 3, NewText: "b"},
			},
		},
		{
			name: "overlapping ranges",
			edits: []fix.TextEdit{
				{StartOffset: 0, EndOffset: 5, NewText: "a"},
				{StartOffset: 4, EndOffset: 8, NewText: "b"},
			},
			wantErr: true,
		},
		{
			name: "insertion inside a range",
			edits: []fix.TextEdit{
				{StartOffset: 0, EndOffset: 5, NewText: "a"},
				{StartOffset: 2, EndOffset: 2, NewText: "b"},
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			fix.SortEdits(tt.edits)
			err := fix.DetectConflicts(tt.edits)
			if tt.wantErr {
				var cerr *fix.ConflictError
				if !errors.As(err, &cerr) {
					t.Fatalf("DetectConflicts() = %v, want *ConflictError", err)
				}
				return
			}
			if err != nil {
				t.Errorf("DetectConflicts() unexpected error: %v", err)
			}
		})
	}
}
