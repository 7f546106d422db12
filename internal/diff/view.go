package diff

// ViewMode selects how a comparison is arranged for display.
type ViewMode int

const (
	// ViewModeSideBySide shows old and new versions in parallel columns.
	ViewModeSideBySide ViewMode = iota
	// ViewModeUnified shows changes in a single column with +/- markers.
	ViewModeUnified
)

// String returns a human-readable name for the view mode.
func (m ViewMode) String() string {
	switch m {
	case ViewModeSideBySide:
		return "SIDE-BY-SIDE"
	case ViewModeUnified:
		return "UNIFIED"
	default:
		return "UNKNOWN"
	}
}

// ParseViewMode maps a config/flag string to a ViewMode.
// Unrecognized values fall back to side-by-side.
func ParseViewMode(s string) ViewMode {
	if s == "unified" {
		return ViewModeUnified
	}
	return ViewModeSideBySide
}

// Row is one side-by-side display row. Each row mirrors exactly one
// classified line; a zero line number means that column is blank.
type Row struct {
	Kind     LineKind
	TextA    string
	TextB    string
	LineNumA int
	LineNumB int
}

// UnifiedRow is one row of the unified +/- stream.
type UnifiedRow struct {
	Kind    LineKind
	Marker  byte // ' ', '-', or '+'
	Text    string
	LineNum int // position in the side the row came from
}

// BuildSideBySide projects a classified line sequence into side-by-side
// rows, one row per line. It is a pure projection: the sequence is never
// re-aligned.
func BuildSideBySide(lines []Line) []Row {
	rows := make([]Row, len(lines))
	for i, l := range lines {
		rows[i] = Row{
			Kind:     l.Kind,
			TextA:    l.TextA,
			TextB:    l.TextB,
			LineNumA: l.LineNumA,
			LineNumB: l.LineNumB,
		}
	}
	return rows
}

// BuildUnified projects a classified line sequence into a unified +/-
// stream. Unchanged lines produce one row; removed and added lines produce
// one marked row each; a modified line produces two consecutive rows, the
// deletion first, never merged into one.
func BuildUnified(lines []Line) []UnifiedRow {
	rows := make([]UnifiedRow, 0, len(lines))
	for _, l := range lines {
		switch l.Kind {
		case LineUnchanged:
			rows = append(rows, UnifiedRow{Kind: l.Kind, Marker: ' ', Text: l.TextA, LineNum: l.LineNumA})
		case LineRemoved:
			rows = append(rows, UnifiedRow{Kind: l.Kind, Marker: '-', Text: l.TextA, LineNum: l.LineNumA})
		case LineAdded:
			rows = append(rows, UnifiedRow{Kind: l.Kind, Marker: '+', Text: l.TextB, LineNum: l.LineNumB})
		case LineModified:
			rows = append(rows,
				UnifiedRow{Kind: l.Kind, Marker: '-', Text: l.TextA, LineNum: l.LineNumA},
				UnifiedRow{Kind: l.Kind, Marker: '+', Text: l.TextB, LineNum: l.LineNumB},
			)
		}
	}
	return rows
}
