package diff

import "strings"

// SplitLines splits a text blob into its ordered line sequence.
// The split is strictly on '\n': empty lines are preserved as empty
// strings, nothing is trimmed, and trailing whitespace stays significant
// because it feeds equality comparisons downstream. An empty input yields
// a single empty line, consistent with split-on-newline semantics.
func SplitLines(text string) []string {
	return strings.Split(text, "\n")
}

// tokenizeWords splits a line into alternating word and whitespace-run
// tokens so that concatenating the tokens reproduces the line exactly.
// Example: "  hello  world" -> ["  ", "hello", "  ", "world"]
func tokenizeWords(line string) []string {
	if line == "" {
		return nil
	}

	var tokens []string
	start := 0
	inSpace := isSpaceByte(line[0])

	for i := 0; i < len(line); i++ {
		if isSpaceByte(line[i]) != inSpace {
			tokens = append(tokens, line[start:i])
			start = i
			inSpace = !inSpace
		}
	}
	tokens = append(tokens, line[start:])

	return tokens
}

func isSpaceByte(b byte) bool {
	return b == ' ' || b == '\t' || b == '\r' || b == '\v' || b == '\f'
}
