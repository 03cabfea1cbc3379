package fix

import (
	"fmt"
	"sort"
)

// ValidationError describes an invalid edit.
type ValidationError struct {
	Edit    TextEdit
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid edit [%d:%d]: %s", e.Edit.StartOffset, e.Edit.EndOffset, e.Message)
}

// ConflictError describes overlapping edits. Overlaps are fatal:
// rules are expected never to produce them, so a conflict means a
// rule bug rather than a fixable input condition.
type ConflictError struct {
	Edit1 TextEdit
	Edit2 TextEdit
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("overlapping edits: [%d:%d] and [%d:%d]",
		e.Edit1.StartOffset, e.Edit1.EndOffset,
		e.Edit2.StartOffset, e.Edit2.EndOffset)
}

// ValidateEdits checks that all edits have valid ranges for the given content length.
// Returns nil if all edits are valid, or the first validation error encountered.
func ValidateEdits(edits []TextEdit, contentLen int) error {
	for _, edit := range edits {
		if edit.StartOffset < 0 {
			return &ValidationError{Edit: edit, Message: "start offset is negative"}
		}
		if edit.EndOffset < edit.StartOffset {
			return &ValidationError{Edit: edit, Message: "end offset is before start offset"}
		}
		if edit.EndOffset > contentLen {
			return &ValidationError{
				Edit:    edit,
				Message: fmt.Sprintf("end offset %d exceeds content length %d", edit.EndOffset, contentLen),
			}
		}
	}
	return nil
}

// SortEdits sorts edits by start offset, then by end offset. The sort
// is stable so that insertions anchored at the same offset keep the
// order their rule emitted them in.
func SortEdits(edits []TextEdit) {
	sort.SliceStable(edits, func(i, j int) bool {
		if edits[i].StartOffset != edits[j].StartOffset {
			return edits[i].StartOffset < edits[j].StartOffset
		}
		return edits[i].EndOffset < edits[j].EndOffset
	})
}

// DedupeEdits removes exact duplicates (same range, same text) from a
// sorted slice. Distinct offenses may legitimately propose the same
// correction - inserting a scope-level declaration once per offending
// method in the same scope, for example - and the correction must be
// applied exactly once. Duplicates are not necessarily adjacent: a
// different insertion at the same offset can sit between two copies,
// so each edit is checked against every kept edit sharing its range.
func DedupeEdits(edits []TextEdit) []TextEdit {
	if len(edits) < 2 {
		return edits
	}

	out := edits[:1]
	for _, e := range edits[1:] {
		dup := false
		for i := len(out) - 1; i >= 0 &&
			out[i].StartOffset == e.StartOffset && out[i].EndOffset == e.EndOffset; i-- {
			if out[i] == e {
				dup = true
				break
			}
		}
		if dup {
			continue
		}
		out = append(out, e)
	}
	return out
}

// DetectConflicts checks for overlapping edits in a sorted slice.
// Two insertions at the same offset do not conflict; a non-empty
// range overlapping any other edit does.
// Returns nil if no conflicts, or the first conflict found.
// Edits must be sorted by SortEdits before calling.
func DetectConflicts(edits []TextEdit) error {
	for i := 1; i < len(edits); i++ {
		prev := edits[i-1]
		curr := edits[i]
		if curr.StartOffset < prev.EndOffset {
			return &ConflictError{Edit1: prev, Edit2: curr}
		}
	}
	return nil
}

// PrepareEdits validates, sorts, deduplicates, and checks for
// conflicts. Returns the edits ready for ApplyEdits, or an error.
// The input slice is not modified.
func PrepareEdits(edits []TextEdit, contentLen int) ([]TextEdit, error) {
	if len(edits) == 0 {
		return nil, nil
	}

	if err := ValidateEdits(edits, contentLen); err != nil {
		return nil, err
	}

	result := make([]TextEdit, len(edits))
	copy(result, edits)
	SortEdits(result)
	result = DedupeEdits(result)

	if err := DetectConflicts(result); err != nil {
		return nil, err
	}

	return result, nil
}
