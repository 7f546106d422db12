package diff

import (
	"strings"
	"testing"

	"github.com/sergi/go-diff/diffmatchpatch"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

// lineSeqGen draws line sequences from a small alphabet so duplicate lines
// (the aligner's hardest case) show up often.
func lineSeqGen() *rapid.Generator[[]string] {
	return rapid.SliceOfN(
		rapid.SampledFrom([]string{"", "alpha", "beta", "gamma", "delta", "  indent", "trail  "}),
		0, 40,
	)
}

func TestProperty_Reconstruction(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		a := lineSeqGen().Draw(rt, "a")
		b := lineSeqGen().Draw(rt, "b")

		lines := Align(a, b)

		gotA := reconstructA(lines)
		gotB := reconstructB(lines)

		// reconstruct helpers return nil for empty inputs
		if len(a) > 0 || len(gotA) > 0 {
			require.Equal(rt, a, gotA)
		}
		if len(b) > 0 || len(gotB) > 0 {
			require.Equal(rt, b, gotB)
		}
	})
}

func TestProperty_KindInvariants(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		a := lineSeqGen().Draw(rt, "a")
		b := lineSeqGen().Draw(rt, "b")

		for _, l := range Align(a, b) {
			switch l.Kind {
			case LineUnchanged:
				require.Equal(rt, l.TextA, l.TextB)
				require.Positive(rt, l.LineNumA)
				require.Positive(rt, l.LineNumB)
			case LineAdded:
				require.Zero(rt, l.LineNumA)
				require.Empty(rt, l.TextA)
				require.Positive(rt, l.LineNumB)
			case LineRemoved:
				require.Zero(rt, l.LineNumB)
				require.Empty(rt, l.TextB)
				require.Positive(rt, l.LineNumA)
			case LineModified:
				require.NotEqual(rt, l.TextA, l.TextB)
				require.Positive(rt, l.LineNumA)
				require.Positive(rt, l.LineNumB)
			}
		}
	})
}

func TestProperty_LineNumbersStrictlyIncrease(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		a := lineSeqGen().Draw(rt, "a")
		b := lineSeqGen().Draw(rt, "b")

		prevA, prevB := 0, 0
		for _, l := range Align(a, b) {
			if l.LineNumA > 0 {
				require.Equal(rt, prevA+1, l.LineNumA, "left line numbers must be consecutive")
				prevA = l.LineNumA
			}
			if l.LineNumB > 0 {
				require.Equal(rt, prevB+1, l.LineNumB, "right line numbers must be consecutive")
				prevB = l.LineNumB
			}
		}
		require.Equal(rt, len(a), prevA)
		require.Equal(rt, len(b), prevB)
	})
}

func TestProperty_StatsConsistency(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		a := lineSeqGen().Draw(rt, "a")
		b := lineSeqGen().Draw(rt, "b")

		lines := Align(a, b)
		stats := ComputeStats(lines)
		require.Equal(rt, len(lines), stats.Total())
	})
}

// TestProperty_UnchangedBoundedByLCS cross-checks the greedy aligner
// against a Myers diff oracle: the unchanged lines it keeps form a common
// subsequence of the inputs, so their count can never exceed the optimal
// common-subsequence length that go-diff's line-mode diff finds.
func TestProperty_UnchangedBoundedByLCS(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		a := lineSeqGen().Draw(rt, "a")
		b := lineSeqGen().Draw(rt, "b")

		stats := ComputeStats(Align(a, b))

		textA := strings.Join(a, "\n") + "\n"
		textB := strings.Join(b, "\n") + "\n"

		dmp := diffmatchpatch.New()
		charsA, charsB, lineIndex := dmp.DiffLinesToChars(textA, textB)
		diffs := dmp.DiffCharsToLines(dmp.DiffMain(charsA, charsB, false), lineIndex)

		optimal := 0
		for _, d := range diffs {
			if d.Type == diffmatchpatch.DiffEqual {
				optimal += strings.Count(d.Text, "\n")
			}
		}

		require.LessOrEqual(rt, stats.Unchanged, optimal)
	})
}

func TestProperty_IdentityAllUnchanged(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		a := lineSeqGen().Draw(rt, "a")

		lines := Align(a, a)
		require.Len(rt, lines, len(a))
		for _, l := range lines {
			require.Equal(rt, LineUnchanged, l.Kind)
		}
	})
}

func TestProperty_WordSpanReassembly(t *testing.T) {
	wordGen := rapid.StringOfN(rapid.RuneFrom([]rune("ab \t.x")), 0, 30, -1)

	rapid.Check(t, func(rt *rapid.T) {
		lineA := wordGen.Draw(rt, "lineA")
		lineB := wordGen.Draw(rt, "lineB")

		spansA, spansB := HighlightWords(lineA, lineB)

		var sbA, sbB strings.Builder
		for _, s := range spansA {
			sbA.WriteString(s.Text)
		}
		for _, s := range spansB {
			sbB.WriteString(s.Text)
		}

		require.Equal(rt, lineA, sbA.String())
		require.Equal(rt, lineB, sbB.String())
	})
}
