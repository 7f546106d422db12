// Package diff implements line-level revision comparison for proposal
// sections. It aligns two versions of a text blob into a classified line
// sequence, computes word-level highlights for modified pairs, and reduces
// the sequence into aggregate change statistics.
package diff

// LineKind classifies a single line of comparison output.
type LineKind int

const (
	// LineUnchanged means the line is identical on both sides.
	LineUnchanged LineKind = iota
	// LineAdded means the line exists only on the right (newer) side.
	LineAdded
	// LineRemoved means the line exists only on the left (older) side.
	LineRemoved
	// LineModified means both sides have a line at this position but the
	// contents differ.
	LineModified
)

// String returns a human-readable name for the line kind.
func (k LineKind) String() string {
	switch k {
	case LineUnchanged:
		return "unchanged"
	case LineAdded:
		return "added"
	case LineRemoved:
		return "removed"
	case LineModified:
		return "modified"
	default:
		return "unknown"
	}
}

// Line is one classified unit of comparison output.
//
// Field presence follows the kind:
//   - LineUnchanged: both TextA/TextB set and equal, both line numbers set
//   - LineAdded: only TextB and LineNumB set
//   - LineRemoved: only TextA and LineNumA set
//   - LineModified: both sides set, TextA != TextB
//
// Line numbers are 1-based positions in the original sequences. A zero
// line number means the side contributes nothing to this record.
type Line struct {
	Kind     LineKind
	TextA    string
	TextB    string
	LineNumA int // 1-based position in A (0 for additions)
	LineNumB int // 1-based position in B (0 for removals)
}

// HasA reports whether this record carries content from the left side.
func (l Line) HasA() bool {
	return l.Kind == LineUnchanged || l.Kind == LineRemoved || l.Kind == LineModified
}

// HasB reports whether this record carries content from the right side.
func (l Line) HasB() bool {
	return l.Kind == LineUnchanged || l.Kind == LineAdded || l.Kind == LineModified
}

// WordSpan is a contiguous token (word or whitespace run) within one side
// of a modified line pair. Concatenating the Text of all spans for a side
// reproduces that side's original line exactly.
type WordSpan struct {
	Text    string
	Changed bool
}

// Stats holds aggregate counts per line kind for one comparison.
// It is recomputed fresh per comparison, never incrementally updated.
type Stats struct {
	Added     int
	Removed   int
	Modified  int
	Unchanged int
}

// Total returns the number of classified lines the stats cover.
func (s Stats) Total() int {
	return s.Added + s.Removed + s.Modified + s.Unchanged
}

// ComputeStats reduces a classified line sequence into per-kind counts.
func ComputeStats(lines []Line) Stats {
	var s Stats
	for _, l := range lines {
		switch l.Kind {
		case LineAdded:
			s.Added++
		case LineRemoved:
			s.Removed++
		case LineModified:
			s.Modified++
		case LineUnchanged:
			s.Unchanged++
		}
	}
	return s
}
