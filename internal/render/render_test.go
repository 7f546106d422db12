package render

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/require"

	"github.com/bharathravi-in/RFP-sub004/internal/compare"
	"github.com/bharathravi-in/RFP-sub004/internal/config"
	"github.com/bharathravi-in/RFP-sub004/internal/diff"
)

func testRenderer(opts Options) Renderer {
	return New(NewStyles(config.Defaults().Theme), opts)
}

func resultFor(textA, textB string) compare.Result {
	lines := diff.Compare(textA, textB)
	return compare.Result{
		LabelA: "Draft 1",
		LabelB: "Draft 2",
		Lines:  lines,
		Stats:  diff.ComputeStats(lines),
	}
}

func TestRenderer_StatsLine(t *testing.T) {
	r := testRenderer(Options{})
	out := ansi.Strip(r.StatsLine(diff.Stats{Added: 3, Removed: 1, Modified: 2, Unchanged: 40}))

	require.Equal(t, "+3 -1 ~2 =40 (46 lines)", out)
}

func TestRenderer_Header(t *testing.T) {
	r := testRenderer(Options{})

	out := ansi.Strip(r.Header(resultFor("a", "b")))
	require.Equal(t, "Draft 1  →  Draft 2", out)

	out = ansi.Strip(r.Header(compare.Result{}))
	require.Equal(t, "old  →  new", out)
}

func TestRenderer_Header_CapsLongLabels(t *testing.T) {
	r := testRenderer(Options{Width: 40})
	long := strings.Repeat("sections/", 10) + "pricing.md"

	out := ansi.Strip(r.Header(compare.Result{LabelA: long, LabelB: "v2.md"}))
	require.Contains(t, out, "…", "oversized label is shortened")
	require.Contains(t, out, "→")
	require.Contains(t, out, "v2.md")
	require.LessOrEqual(t, len([]rune(out)), 40)
}

func TestRenderer_Unified(t *testing.T) {
	r := testRenderer(Options{ShowLineNumbers: false})
	out := ansi.Strip(r.Unified(resultFor("a\nold\nc", "a\nnew\nc")))

	require.Equal(t, strings.Join([]string{
		"  a",
		"- old",
		"+ new",
		"  c",
	}, "\n"), out)
}

func TestRenderer_Unified_LineNumbers(t *testing.T) {
	r := testRenderer(Options{ShowLineNumbers: true})
	out := ansi.Strip(r.Unified(resultFor("a", "a\nb")))

	lines := strings.Split(out, "\n")
	require.Len(t, lines, 2)
	require.Equal(t, "   1   a", lines[0])
	require.Equal(t, "   2 + b", lines[1])
}

func TestRenderer_SideBySide_RowPerLine(t *testing.T) {
	r := testRenderer(Options{Width: 80, ShowLineNumbers: true})
	result := resultFor("a\nold\nc", "a\nnew\nc\nd")

	out := ansi.Strip(r.SideBySide(result))
	rows := strings.Split(out, "\n")
	require.Len(t, rows, len(result.Lines), "one rendered row per classified line")

	// Every row has the column divider
	for _, row := range rows {
		require.Contains(t, row, "│")
	}

	// The pure addition leaves its left column blank
	last := rows[len(rows)-1]
	parts := strings.SplitN(last, "│", 2)
	require.Empty(t, strings.TrimSpace(parts[0]), "added line has no left content")
	require.Contains(t, parts[1], "d")
}

func TestRenderer_SideBySide_TruncatesLongLines(t *testing.T) {
	r := testRenderer(Options{Width: 40, ShowLineNumbers: false})
	long := strings.Repeat("x", 200)

	out := ansi.Strip(r.SideBySide(resultFor(long, long)))
	for _, row := range strings.Split(out, "\n") {
		require.LessOrEqual(t, len([]rune(row)), 42, "rows stay near the configured width")
	}
}

func TestRenderer_SideBySide_WordHighlightPreservesText(t *testing.T) {
	r := testRenderer(Options{Width: 200, ShowLineNumbers: false, WordHighlight: true})

	out := ansi.Strip(r.SideBySide(resultFor("hello world", "hello there")))
	require.Contains(t, out, "hello world")
	require.Contains(t, out, "hello there")
}

func TestTruncate(t *testing.T) {
	require.Equal(t, "abc", Truncate("abc", 5))
	require.Equal(t, "ab…", Truncate("abcdef", 3))
}
