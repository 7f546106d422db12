package diff

// HighlightWords computes word-level change masks for the two sides of a
// modified line pair. Each line is split into alternating word and
// whitespace-run tokens, and the two token sequences are compared in
// lockstep by index: equal tokens at the same index are unchanged, unequal
// tokens are changed, and tokens past the shorter sequence's end are
// changed on the side that has them.
//
// The comparison is positional, not similarity-based. A word that merely
// shifted position because of an earlier insertion still shows as changed.
// That mis-flagging is a deliberate trade for simplicity and speed and is
// part of the observable highlight contract, so don't swap in a token-LCS
// here without treating it as a behavior change.
func HighlightWords(lineA, lineB string) (spansA, spansB []WordSpan) {
	tokensA := tokenizeWords(lineA)
	tokensB := tokenizeWords(lineB)

	n := max(len(tokensA), len(tokensB))
	for idx := 0; idx < n; idx++ {
		var ta, tb string
		hasA := idx < len(tokensA)
		hasB := idx < len(tokensB)
		if hasA {
			ta = tokensA[idx]
		}
		if hasB {
			tb = tokensB[idx]
		}

		same := hasA && hasB && ta == tb
		if hasA {
			spansA = append(spansA, WordSpan{Text: ta, Changed: !same})
		}
		if hasB {
			spansB = append(spansB, WordSpan{Text: tb, Changed: !same})
		}
	}

	return spansA, spansB
}
