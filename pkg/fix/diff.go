package fix

import (
	"fmt"
	"strings"
)

// contextLines is the number of context lines shown around changes.
const contextLines = 3

// Diff represents a unified diff between original and modified content.
type Diff struct {
	// Path is the file path for the diff header.
	Path string

	// Hunks contains the diff hunks.
	Hunks []DiffHunk

	// Additions is the number of lines added.
	Additions int

	// Deletions is the number of lines deleted.
	Deletions int
}

// DiffLineKind indicates the type of diff line.
type DiffLineKind int

const (
	// DiffLineContext is an unchanged context line.
	DiffLineContext DiffLineKind = iota

	// DiffLineAdd is a line added in the modified version.
	DiffLineAdd

	// DiffLineRemove is a line removed from the original version.
	DiffLineRemove
)

// DiffLine represents a single line in a diff hunk.
type DiffLine struct {
	Kind    DiffLineKind
	Content string
}

// DiffHunk represents a single hunk in a unified diff.
type DiffHunk struct {
	// OriginalStart/OriginalCount locate the hunk in the original.
	OriginalStart int
	OriginalCount int

	// ModifiedStart/ModifiedCount locate the hunk in the modified.
	ModifiedStart int
	ModifiedCount int

	// Lines contains the diff lines in this hunk.
	Lines []DiffLine
}

// GenerateDiff creates a unified diff between original and modified
// content. Returns nil if there are no changes.
func GenerateDiff(path string, original, modified []byte) *Diff {
	orig := splitLines(original)
	mod := splitLines(modified)

	ops := diffOps(orig, mod)

	changed := false
	for _, op := range ops {
		if op.Kind != DiffLineContext {
			changed = true
			break
		}
	}
	if !changed {
		return nil
	}

	d := &Diff{
		Path:  path,
		Hunks: groupHunks(ops),
	}
	for _, op := range ops {
		switch op.Kind {
		case DiffLineAdd:
			d.Additions++
		case DiffLineRemove:
			d.Deletions++
		}
	}
	return d
}

// HasChanges returns true if the diff contains any changes.
func (d *Diff) HasChanges() bool {
	return d != nil && len(d.Hunks) > 0
}

// GitHeader returns the "diff --git" header line.
func (d *Diff) GitHeader() string {
	if d == nil {
		return ""
	}
	path := strings.TrimPrefix(d.Path, "/")
	return fmt.Sprintf("diff --git a/%s b/%s", path, path)
}

// String returns the diff in unified diff format (without the git header).
func (d *Diff) String() string {
	if d == nil || len(d.Hunks) == 0 {
		return ""
	}

	path := strings.TrimPrefix(d.Path, "/")

	var builder strings.Builder
	fmt.Fprintf(&builder, "--- a/%s\n", path)
	fmt.Fprintf(&builder, "+++ b/%s\n", path)

	for _, hunk := range d.Hunks {
		fmt.Fprintf(&builder, "@@ -%d,%d +%d,%d @@\n",
			hunk.OriginalStart, hunk.OriginalCount,
			hunk.ModifiedStart, hunk.ModifiedCount)

		for _, line := range hunk.Lines {
			switch line.Kind {
			case DiffLineContext:
				fmt.Fprintf(&builder, " %s\n", line.Content)
			case DiffLineAdd:
				fmt.Fprintf(&builder, "+%s\n", line.Content)
			case DiffLineRemove:
				fmt.Fprintf(&builder, "-%s\n", line.Content)
			}
		}
	}

	return builder.String()
}

// FullString returns the complete diff including the git header.
func (d *Diff) FullString() string {
	if d == nil || len(d.Hunks) == 0 {
		return ""
	}
	return d.GitHeader() + "\n" + d.String()
}

// splitLines splits content into lines, dropping the trailing empty
// element produced by a final newline.
func splitLines(content []byte) []string {
	if len(content) == 0 {
		return nil
	}
	lines := strings.Split(string(content), "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

// diffOps produces the full edit script (context/add/remove per line)
// via a standard LCS table.
func diffOps(orig, mod []string) []DiffLine {
	n, m := len(orig), len(mod)

	dp := make([][]int, n+1)
	for i := range dp {
		dp[i] = make([]int, m+1)
	}
	for i := n - 1; i >= 0; i-- {
		for j := m - 1; j >= 0; j-- {
			if orig[i] == mod[j] {
				dp[i][j] = dp[i+1][j+1] + 1
			} else {
				dp[i][j] = max(dp[i+1][j], dp[i][j+1])
			}
		}
	}

	var ops []DiffLine
	i, j := 0, 0
	for i < n && j < m {
		switch {
		case orig[i] == mod[j]:
			ops = append(ops, DiffLine{Kind: DiffLineContext, Content: orig[i]})
			i++
			j++
		case dp[i+1][j] >= dp[i][j+1]:
			ops = append(ops, DiffLine{Kind: DiffLineRemove, Content: orig[i]})
			i++
		default:
			ops = append(ops, DiffLine{Kind: DiffLineAdd, Content: mod[j]})
			j++
		}
	}
	for ; i < n; i++ {
		ops = append(ops, DiffLine{Kind: DiffLineRemove, Content: orig[i]})
	}
	for ; j < m; j++ {
		ops = append(ops, DiffLine{Kind: DiffLineAdd, Content: mod[j]})
	}

	return ops
}

// groupHunks groups the edit script into hunks, merging changes whose
// context windows touch.
func groupHunks(ops []DiffLine) []DiffHunk {
	// Indices of non-context operations.
	var changes []int
	for i, op := range ops {
		if op.Kind != DiffLineContext {
			changes = append(changes, i)
		}
	}
	if len(changes) == 0 {
		return nil
	}

	var hunks []DiffHunk
	start := changes[0]
	end := changes[0] + 1

	flush := func() {
		hunks = append(hunks, buildHunk(ops, start, end))
	}

	for _, idx := range changes[1:] {
		if idx-end > contextLines*2 {
			flush()
			start = idx
		}
		end = idx + 1
	}
	flush()

	return hunks
}

// buildHunk expands [changeStart, changeEnd) with context lines and
// computes the hunk header counters.
func buildHunk(ops []DiffLine, changeStart, changeEnd int) DiffHunk {
	start := max(changeStart-contextLines, 0)
	end := min(changeEnd+contextLines, len(ops))

	hunk := DiffHunk{OriginalStart: 1, ModifiedStart: 1}
	for _, op := range ops[:start] {
		if op.Kind != DiffLineAdd {
			hunk.OriginalStart++
		}
		if op.Kind != DiffLineRemove {
			hunk.ModifiedStart++
		}
	}

	for _, op := range ops[start:end] {
		hunk.Lines = append(hunk.Lines, op)
		switch op.Kind {
		case DiffLineContext:
			hunk.OriginalCount++
			hunk.ModifiedCount++
		case DiffLineRemove:
			hunk.OriginalCount++
		case DiffLineAdd:
			hunk.ModifiedCount++
		}
	}

	return hunk
}
