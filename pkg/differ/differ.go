// Package differ implements a line-based text diff built on a
// longest-common-subsequence table with deterministic backtracking.
//
// The diff is exact: it always produces a minimal edit script, at O(m·n)
// time and space cost in the line counts of the two inputs. Callers
// comparing very large documents should impose their own size limits;
// the engine does not.
package differ

import "strings"

// LineType classifies a single diff line.
type LineType string

const (
	Added     LineType = "added"
	Removed   LineType = "removed"
	Unchanged LineType = "unchanged"
)

// Line is one row of a computed diff. LeftLine and RightLine are 1-based
// line numbers in the original and modified text; 0 means the line does
// not exist on that side (added lines have no LeftLine, removed lines no
// RightLine).
type Line struct {
	Type      LineType `json:"type"`
	Text      string   `json:"text"`
	LeftLine  int      `json:"left_line,omitempty"`
	RightLine int      `json:"right_line,omitempty"`
}

// Stats holds counts per line classification.
type Stats struct {
	Added     int `json:"added"`
	Removed   int `json:"removed"`
	Unchanged int `json:"unchanged"`
}

// Result holds the full ordered diff between two texts. The line sequence
// reads top to bottom in document order; every input line appears exactly
// once on its side.
type Result struct {
	Lines []Line `json:"lines"`
	Stats Stats  `json:"stats"`
}

// Compute returns the line diff between original and modified. It is a
// pure function: no shared state, same inputs always yield the same result.
func Compute(original, modified string) Result {
	a := SplitLines(original)
	b := SplitLines(modified)

	lines := backtrack(buildTable(a, b), a, b)

	var stats Stats
	for _, ln := range lines {
		switch ln.Type {
		case Added:
			stats.Added++
		case Removed:
			stats.Removed++
		case Unchanged:
			stats.Unchanged++
		}
	}

	return Result{Lines: lines, Stats: stats}
}

// SplitLines splits text on "\n", preserving empty segments from
// consecutive newlines. The empty string yields no lines at all: a bare
// strings.Split would report one empty line for empty input, which would
// shift every downstream line number. No \r\n normalization is done; a
// trailing carriage return is literal content.
func SplitLines(text string) []string {
	if text == "" {
		return []string{}
	}
	return strings.Split(text, "\n")
}

// buildTable fills the (len(a)+1)×(len(b)+1) LCS length table. Row and
// column zero stay at zero (LCS against an empty sequence). Lines compare
// by exact string equality.
func buildTable(a, b []string) [][]int {
	m, n := len(a), len(b)
	table := make([][]int, m+1)
	for i := range table {
		table[i] = make([]int, n+1)
	}
	for i := 1; i <= m; i++ {
		for j := 1; j <= n; j++ {
			if a[i-1] == b[j-1] {
				table[i][j] = table[i-1][j-1] + 1
			} else if table[i-1][j] >= table[i][j-1] {
				table[i][j] = table[i-1][j]
			} else {
				table[i][j] = table[i][j-1]
			}
		}
	}
	return table
}

// backtrack replays the table from (len(a), len(b)) to the origin,
// classifying one line per step. The walk is iterative so a large document
// cannot exhaust the call stack. When deleting and inserting score equally,
// the >= below picks the insertion; that tie-break decides which of several
// equally short diffs is produced and must not change.
func backtrack(table [][]int, a, b []string) []Line {
	lines := make([]Line, 0, len(a)+len(b))
	i, j := len(a), len(b)
	for i > 0 || j > 0 {
		switch {
		case i > 0 && j > 0 && a[i-1] == b[j-1]:
			lines = append(lines, Line{Type: Unchanged, Text: a[i-1], LeftLine: i, RightLine: j})
			i--
			j--
		case j > 0 && (i == 0 || table[i][j-1] >= table[i-1][j]):
			lines = append(lines, Line{Type: Added, Text: b[j-1], RightLine: j})
			j--
		default:
			lines = append(lines, Line{Type: Removed, Text: a[i-1], LeftLine: i})
			i--
		}
	}

	// Steps were collected end-to-start; flip into document order.
	for l, r := 0, len(lines)-1; l < r; l, r = l+1, r-1 {
		lines[l], lines[r] = lines[r], lines[l]
	}
	return lines
}
