package summary

import "strings"

// EstimateTokens gives a rough token estimate for English text,
// one token per four bytes.
func EstimateTokens(text string) int {
	return len(text) / 4
}

// Chunk splits normalized text into segments whose estimated token count
// stays within budget. Text already inside the budget is returned as a
// single untouched chunk. Otherwise paragraphs (newline-separated) are
// accumulated greedily; a paragraph is never split, so one that alone
// exceeds the budget still comes out as its own chunk. Joining the chunks
// with "\n" reconstructs the input exactly.
func Chunk(text string, budget int) []string {
	if EstimateTokens(text) <= budget {
		return []string{text}
	}

	paragraphs := strings.Split(text, "\n")
	var chunks []string
	var current []string
	currentTokens := 0

	for _, p := range paragraphs {
		pTokens := EstimateTokens(p)
		if len(current) > 0 && currentTokens+pTokens > budget {
			chunks = append(chunks, strings.Join(current, "\n"))
			current = current[:0]
			currentTokens = 0
		}
		current = append(current, p)
		currentTokens += pTokens
	}
	if len(current) > 0 {
		chunks = append(chunks, strings.Join(current, "\n"))
	}
	return chunks
}

// Reconstruct reverses Chunk.
func Reconstruct(chunks []string) string {
	return strings.Join(chunks, "\n")
}
