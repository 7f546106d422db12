// Package render produces terminal output for comparison results: a
// side-by-side two-column layout, a unified +/- stream, and a stats
// summary line. It is the non-interactive counterpart to the compareview
// component.
package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"

	"github.com/bharathravi-in/RFP-sub004/internal/compare"
	"github.com/bharathravi-in/RFP-sub004/internal/config"
	"github.com/bharathravi-in/RFP-sub004/internal/diff"
)

// gutterWidth is the width reserved for one line-number gutter.
const gutterWidth = 5

// Styles holds the lipgloss styles for each row category.
type Styles struct {
	Added     lipgloss.Style
	Removed   lipgloss.Style
	Modified  lipgloss.Style
	Unchanged lipgloss.Style
	Highlight lipgloss.Style
	Gutter    lipgloss.Style
}

// NewStyles builds styles from the configured theme colors.
func NewStyles(theme config.ThemeConfig) Styles {
	styled := func(hex string) lipgloss.Style {
		if hex == "" {
			return lipgloss.NewStyle()
		}
		return lipgloss.NewStyle().Foreground(lipgloss.Color(hex))
	}

	return Styles{
		Added:     styled(theme.Added),
		Removed:   styled(theme.Removed),
		Modified:  styled(theme.Modified),
		Unchanged: styled(theme.Unchanged),
		Highlight: styled(theme.Highlight).Bold(true),
		Gutter:    styled(theme.Gutter),
	}
}

// Options controls renderer behavior.
type Options struct {
	Width           int // total output width for side-by-side; 0 means 120
	ShowLineNumbers bool
	WordHighlight   bool
}

// Renderer renders comparison results as strings.
type Renderer struct {
	styles Styles
	opts   Options
}

// New creates a renderer.
func New(styles Styles, opts Options) Renderer {
	if opts.Width <= 0 {
		opts.Width = 120
	}
	return Renderer{styles: styles, opts: opts}
}

// kindStyle maps a line kind to its row style.
func (r Renderer) kindStyle(kind diff.LineKind) lipgloss.Style {
	switch kind {
	case diff.LineAdded:
		return r.styles.Added
	case diff.LineRemoved:
		return r.styles.Removed
	case diff.LineModified:
		return r.styles.Modified
	default:
		return r.styles.Unchanged
	}
}

// Header renders the two revision labels above the diff body.
func (r Renderer) Header(result compare.Result) string {
	labelA := result.LabelA
	if labelA == "" {
		labelA = "old"
	}
	labelB := result.LabelB
	if labelB == "" {
		labelB = "new"
	}

	// Each label gets at most half the row minus the arrow, so long file
	// paths cannot push the second label off screen.
	maxLabel := (r.opts.Width - 7) / 2
	if maxLabel < 8 {
		maxLabel = 8
	}
	labelA = Truncate(labelA, maxLabel)
	labelB = Truncate(labelB, maxLabel)

	return fmt.Sprintf("%s  →  %s", r.styles.Removed.Render(labelA), r.styles.Added.Render(labelB))
}

// StatsLine renders the aggregate change counts, e.g.
// "+3 -1 ~2 =40 (46 lines)".
func (r Renderer) StatsLine(stats diff.Stats) string {
	parts := []string{
		r.styles.Added.Render(fmt.Sprintf("+%d", stats.Added)),
		r.styles.Removed.Render(fmt.Sprintf("-%d", stats.Removed)),
		r.styles.Modified.Render(fmt.Sprintf("~%d", stats.Modified)),
		r.styles.Unchanged.Render(fmt.Sprintf("=%d", stats.Unchanged)),
	}
	return fmt.Sprintf("%s (%d lines)", strings.Join(parts, " "), stats.Total())
}

// SideBySide renders the two-column layout, one row per classified line.
func (r Renderer) SideBySide(result compare.Result) string {
	rows := diff.BuildSideBySide(result.Lines)
	colWidth := (r.opts.Width - 3) / 2 // 3 for the " │ " divider

	var sb strings.Builder
	for i, row := range rows {
		if i > 0 {
			sb.WriteByte('\n')
		}

		var spansA, spansB []diff.WordSpan
		if r.opts.WordHighlight && row.Kind == diff.LineModified {
			spansA, spansB = diff.HighlightWords(row.TextA, row.TextB)
		}

		left := r.renderCell(row.Kind, row.TextA, row.LineNumA, row.Kind != diff.LineAdded, spansA, colWidth)
		right := r.renderCell(row.Kind, row.TextB, row.LineNumB, row.Kind != diff.LineRemoved, spansB, colWidth)

		sb.WriteString(left)
		sb.WriteString(r.styles.Gutter.Render(" │ "))
		sb.WriteString(right)
	}
	return sb.String()
}

// renderCell renders one column of a side-by-side row: optional gutter,
// styled content, truncated and padded to the column width.
func (r Renderer) renderCell(kind diff.LineKind, text string, lineNum int, present bool, spans []diff.WordSpan, width int) string {
	contentWidth := width
	var gutter string
	if r.opts.ShowLineNumbers {
		contentWidth = width - gutterWidth
		if present && lineNum > 0 {
			gutter = r.styles.Gutter.Render(fmt.Sprintf("%4d ", lineNum))
		} else {
			gutter = strings.Repeat(" ", gutterWidth)
		}
	}
	if contentWidth < 1 {
		contentWidth = 1
	}

	if !present {
		return gutter + strings.Repeat(" ", contentWidth)
	}

	style := r.kindStyle(kind)
	var content string
	if len(spans) > 0 {
		content = r.renderSpans(spans, style)
	} else {
		content = style.Render(text)
	}

	if lipgloss.Width(content) > contentWidth {
		content = ansi.Truncate(content, contentWidth, "…")
	}
	return gutter + padRight(content, contentWidth)
}

// Unified renders the single-column +/- stream.
func (r Renderer) Unified(result compare.Result) string {
	rows := diff.BuildUnified(result.Lines)

	var sb strings.Builder
	for i, row := range rows {
		if i > 0 {
			sb.WriteByte('\n')
		}

		style := r.styleForUnified(row)

		if r.opts.ShowLineNumbers {
			if row.LineNum > 0 {
				sb.WriteString(r.styles.Gutter.Render(fmt.Sprintf("%4d ", row.LineNum)))
			} else {
				sb.WriteString(strings.Repeat(" ", gutterWidth))
			}
		}

		sb.WriteString(style.Render(string(row.Marker) + " " + row.Text))
	}
	return sb.String()
}

// styleForUnified picks the style for a unified row. Modified lines are
// split into -/+ rows, so the marker decides which side's color applies.
func (r Renderer) styleForUnified(row diff.UnifiedRow) lipgloss.Style {
	switch {
	case row.Marker == '-':
		return r.styles.Removed
	case row.Marker == '+':
		return r.styles.Added
	default:
		return r.styles.Unchanged
	}
}

// renderSpans renders the word spans of one side of a modified line,
// emphasizing changed spans.
func (r Renderer) renderSpans(spans []diff.WordSpan, base lipgloss.Style) string {
	var sb strings.Builder
	for _, span := range spans {
		if span.Changed {
			sb.WriteString(r.styles.Highlight.Render(span.Text))
		} else {
			sb.WriteString(base.Render(span.Text))
		}
	}
	return sb.String()
}

// padRight pads s with spaces to the given display width.
func padRight(s string, width int) string {
	gap := width - lipgloss.Width(s)
	if gap <= 0 {
		return s
	}
	return s + strings.Repeat(" ", gap)
}

// Truncate shortens plain text to a display width, rune-width aware.
// For label text before styling; styled strings go through ansi.Truncate.
func Truncate(s string, width int) string {
	if runewidth.StringWidth(s) <= width {
		return s
	}
	return runewidth.Truncate(s, width, "…")
}
