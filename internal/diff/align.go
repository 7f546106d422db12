package diff

// DefaultLookaheadLimit bounds how far ahead the aligner scans for a
// resynchronization point. Lines that only reappear beyond the window are
// treated as not reappearing at all, trading alignment precision for a
// hard bound on scan cost with highly repetitive input.
const DefaultLookaheadLimit = 500

// Options tunes the aligner. The zero value selects defaults.
type Options struct {
	// LookaheadLimit caps the forward scan distance at mismatch points.
	// Zero or negative selects DefaultLookaheadLimit.
	LookaheadLimit int
}

func (o Options) lookahead() int {
	if o.LookaheadLimit <= 0 {
		return DefaultLookaheadLimit
	}
	return o.LookaheadLimit
}

// Align compares two ordered line sequences and produces the classified
// line sequence described in the package documentation.
//
// The algorithm is a two-pointer greedy alignment with bounded local
// lookahead rather than a minimal edit script. At each mismatch it scans
// ahead on both sides for the next reappearance of the other side's
// current line and resynchronizes toward whichever reappearance is
// strictly nearer, preferring a Removed record when the distances tie.
// When neither line reappears within the lookahead window the pair is
// classified as a single Modified record.
func Align(a, b []string) []Line {
	return AlignOpts(a, b, Options{})
}

// AlignOpts is Align with explicit options.
func AlignOpts(a, b []string, opts Options) []Line {
	limit := opts.lookahead()
	lines := make([]Line, 0, max(len(a), len(b)))

	i, j := 0, 0
	for i < len(a) || j < len(b) {
		switch {
		case i >= len(a):
			lines = append(lines, Line{Kind: LineAdded, TextB: b[j], LineNumB: j + 1})
			j++

		case j >= len(b):
			lines = append(lines, Line{Kind: LineRemoved, TextA: a[i], LineNumA: i + 1})
			i++

		case a[i] == b[j]:
			lines = append(lines, Line{
				Kind:     LineUnchanged,
				TextA:    a[i],
				TextB:    b[j],
				LineNumA: i + 1,
				LineNumB: j + 1,
			})
			i++
			j++

		default:
			// distB: how far ahead in B the current A line reappears.
			// distA: how far ahead in A the current B line reappears.
			distB, foundB := scanAhead(b, j, a[i], limit)
			distA, foundA := scanAhead(a, i, b[j], limit)

			switch {
			case !foundA && !foundB:
				// No realignment point ahead on either side: treat the
				// pair as an in-place edit.
				lines = append(lines, Line{
					Kind:     LineModified,
					TextA:    a[i],
					TextB:    b[j],
					LineNumA: i + 1,
					LineNumB: j + 1,
				})
				i++
				j++

			case foundB && (!foundA || distB < distA):
				// A[i] resurfaces sooner in B than B[j] does in A, so
				// B[j] is an insertion before that resync point.
				lines = append(lines, Line{Kind: LineAdded, TextB: b[j], LineNumB: j + 1})
				j++

			default:
				lines = append(lines, Line{Kind: LineRemoved, TextA: a[i], LineNumA: i + 1})
				i++
			}
		}
	}

	return lines
}

// scanAhead returns the offset of the next occurrence of target in
// seq[from:], scanning at most limit positions. The offset is relative to
// from; ok is false when target is not found within the window.
func scanAhead(seq []string, from int, target string, limit int) (int, bool) {
	end := min(len(seq), from+limit)
	for k := from; k < end; k++ {
		if seq[k] == target {
			return k - from, true
		}
	}
	return 0, false
}

// Compare is the full pipeline entry point: tokenize both blobs and align
// the resulting line sequences.
func Compare(textA, textB string) []Line {
	return Align(SplitLines(textA), SplitLines(textB))
}
