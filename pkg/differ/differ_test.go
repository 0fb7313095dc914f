package differ

import "testing"

func TestSplitLines(t *testing.T) {
	if got := SplitLines(""); len(got) != 0 {
		t.Fatalf("empty input should yield no lines, got %q", got)
	}
	if got := SplitLines("a"); len(got) != 1 || got[0] != "a" {
		t.Fatalf("unexpected split: %q", got)
	}
	// Empty segments from consecutive newlines are preserved.
	got := SplitLines("a\n\nb")
	if len(got) != 3 || got[1] != "" {
		t.Fatalf("expected 3 lines with empty middle, got %q", got)
	}
	// A trailing newline means a trailing empty line.
	if got := SplitLines("a\n"); len(got) != 2 || got[1] != "" {
		t.Fatalf("unexpected split of trailing newline: %q", got)
	}
}

func TestCompute_Identity(t *testing.T) {
	result := Compute("a\nb\nc", "a\nb\nc")
	if len(result.Lines) != 3 {
		t.Fatalf("expected 3 lines, got %d", len(result.Lines))
	}
	for i, ln := range result.Lines {
		if ln.Type != Unchanged {
			t.Errorf("line %d: expected unchanged, got %s", i, ln.Type)
		}
		if ln.LeftLine != ln.RightLine || ln.LeftLine != i+1 {
			t.Errorf("line %d: expected line numbers %d/%d, got %d/%d",
				i, i+1, i+1, ln.LeftLine, ln.RightLine)
		}
	}
	if result.Stats != (Stats{Unchanged: 3}) {
		t.Errorf("unexpected stats: %+v", result.Stats)
	}
}

func TestCompute_FullInsertion(t *testing.T) {
	result := Compute("", "a\nb")
	if result.Stats != (Stats{Added: 2}) {
		t.Fatalf("unexpected stats: %+v", result.Stats)
	}
	for i, ln := range result.Lines {
		if ln.Type != Added {
			t.Errorf("line %d: expected added, got %s", i, ln.Type)
		}
		if ln.LeftLine != 0 {
			t.Errorf("line %d: added line must have no left number, got %d", i, ln.LeftLine)
		}
		if ln.RightLine != i+1 {
			t.Errorf("line %d: expected right number %d, got %d", i, i+1, ln.RightLine)
		}
	}
}

func TestCompute_FullDeletion(t *testing.T) {
	result := Compute("a\nb", "")
	if result.Stats != (Stats{Removed: 2}) {
		t.Fatalf("unexpected stats: %+v", result.Stats)
	}
	for i, ln := range result.Lines {
		if ln.Type != Removed {
			t.Errorf("line %d: expected removed, got %s", i, ln.Type)
		}
		if ln.RightLine != 0 {
			t.Errorf("line %d: removed line must have no right number, got %d", i, ln.RightLine)
		}
		if ln.LeftLine != i+1 {
			t.Errorf("line %d: expected left number %d, got %d", i, i+1, ln.LeftLine)
		}
	}
}

func TestCompute_BothEmpty(t *testing.T) {
	result := Compute("", "")
	if len(result.Lines) != 0 {
		t.Errorf("expected empty diff, got %+v", result.Lines)
	}
	if result.Stats != (Stats{}) {
		t.Errorf("expected zero stats, got %+v", result.Stats)
	}
}

func TestCompute_BasicChanges(t *testing.T) {
	result := Compute("a\nb\nc", "a\nx\nc\nd")

	expected := []Line{
		{Type: Unchanged, Text: "a", LeftLine: 1, RightLine: 1},
		{Type: Removed, Text: "b", LeftLine: 2},
		{Type: Added, Text: "x", RightLine: 2},
		{Type: Unchanged, Text: "c", LeftLine: 3, RightLine: 3},
		{Type: Added, Text: "d", RightLine: 4},
	}

	if len(result.Lines) != len(expected) {
		t.Fatalf("diff len = %d, want %d\ndiff: %+v", len(result.Lines), len(expected), result.Lines)
	}
	for i, e := range expected {
		if result.Lines[i] != e {
			t.Errorf("line %d = %+v, want %+v", i, result.Lines[i], e)
		}
	}
}

func TestCompute_MiddleReplacement(t *testing.T) {
	result := Compute("a\nb\nc", "a\nX\nc")

	if result.Stats != (Stats{Added: 1, Removed: 1, Unchanged: 2}) {
		t.Fatalf("unexpected stats: %+v", result.Stats)
	}
	first, last := result.Lines[0], result.Lines[3]
	if first.Type != Unchanged || first.Text != "a" {
		t.Errorf("expected diff to start with unchanged 'a', got %+v", first)
	}
	if last.Type != Unchanged || last.Text != "c" {
		t.Errorf("expected diff to end with unchanged 'c', got %+v", last)
	}
	// The tie between deleting "b" and inserting "X" resolves to the
	// removal first: this pins the backtracking policy.
	if result.Lines[1].Type != Removed || result.Lines[1].Text != "b" {
		t.Errorf("expected removed 'b' at index 1, got %+v", result.Lines[1])
	}
	if result.Lines[2].Type != Added || result.Lines[2].Text != "X" {
		t.Errorf("expected added 'X' at index 2, got %+v", result.Lines[2])
	}
}

func TestCompute_SingleLineReplacement(t *testing.T) {
	// Whole differing lines are replaced, never diffed internally.
	result := Compute("hello world", "hello there")
	if result.Stats != (Stats{Added: 1, Removed: 1}) {
		t.Fatalf("unexpected stats: %+v", result.Stats)
	}
}

func TestCompute_CountInvariant(t *testing.T) {
	cases := [][2]string{
		{"", ""},
		{"", "a"},
		{"a", ""},
		{"a\nb\nc", "a\nx\nc\nd"},
		{"x\ny\nz", "a\nb\nc"},
		{"one\ntwo\n\nthree", "one\n\nthree\nfour"},
		{"hello world", "hello there"},
	}
	for _, c := range cases {
		result := Compute(c[0], c[1])
		total := result.Stats.Added + result.Stats.Removed + result.Stats.Unchanged
		if total != len(result.Lines) {
			t.Errorf("Compute(%q, %q): stats total %d != %d lines",
				c[0], c[1], total, len(result.Lines))
		}
	}
}

func TestCompute_LineNumberOrdering(t *testing.T) {
	original := "a\nb\nc\nd"
	modified := "b\nc\nx\nd\ne"
	result := Compute(original, modified)

	var lefts, rights []int
	for _, ln := range result.Lines {
		if ln.Type != Added {
			lefts = append(lefts, ln.LeftLine)
		}
		if ln.Type != Removed {
			rights = append(rights, ln.RightLine)
		}
	}

	if len(lefts) != len(SplitLines(original)) {
		t.Fatalf("left side covers %d lines, want %d", len(lefts), len(SplitLines(original)))
	}
	for i, n := range lefts {
		if n != i+1 {
			t.Errorf("left numbers out of order: got %v", lefts)
			break
		}
	}
	if len(rights) != len(SplitLines(modified)) {
		t.Fatalf("right side covers %d lines, want %d", len(rights), len(SplitLines(modified)))
	}
	for i, n := range rights {
		if n != i+1 {
			t.Errorf("right numbers out of order: got %v", rights)
			break
		}
	}
}

func TestUnified(t *testing.T) {
	cases := []struct {
		original, modified, want string
	}{
		{"a\nb", "a\nb", "  a\n  b"},
		{"", "hello", "+ hello"},
		{"hello", "", "- hello"},
		{"", "", ""},
	}
	for _, c := range cases {
		if got := Compute(c.original, c.modified).Unified(); got != c.want {
			t.Errorf("Unified of (%q, %q) = %q, want %q", c.original, c.modified, got, c.want)
		}
	}
}

func TestSummary(t *testing.T) {
	if got := Compute("same", "same").Summary(); got != "No changes detected" {
		t.Errorf("unexpected summary: %s", got)
	}
	result := Compute("a\nb\nc", "a\nx\nc")
	if result.Summary() != "1 additions, 1 deletions, 2 unchanged" {
		t.Errorf("unexpected summary: %s", result.Summary())
	}
	if !result.HasChanges() {
		t.Error("expected HasChanges")
	}
}
