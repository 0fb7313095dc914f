package differ

import (
	"fmt"
	"strings"
)

// Unified renders the diff one row per line, prefixing added lines with
// "+ ", removed lines with "- " and unchanged lines with two spaces,
// joined by "\n". An empty diff renders as the empty string. No hunk
// headers or context ranges are produced.
func (r Result) Unified() string {
	if len(r.Lines) == 0 {
		return ""
	}
	var sb strings.Builder
	for i, ln := range r.Lines {
		if i > 0 {
			sb.WriteByte('\n')
		}
		switch ln.Type {
		case Added:
			sb.WriteString("+ ")
		case Removed:
			sb.WriteString("- ")
		default:
			sb.WriteString("  ")
		}
		sb.WriteString(ln.Text)
	}
	return sb.String()
}

// HasChanges reports whether any line was added or removed.
func (r Result) HasChanges() bool {
	return r.Stats.Added > 0 || r.Stats.Removed > 0
}

// Summary returns a human-readable summary of the diff.
func (r Result) Summary() string {
	if !r.HasChanges() {
		return "No changes detected"
	}
	return fmt.Sprintf("%d additions, %d deletions, %d unchanged",
		r.Stats.Added, r.Stats.Removed, r.Stats.Unchanged)
}
