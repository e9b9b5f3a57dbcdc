// Package recommend derives candidate search keywords from a user's bill
// view history. It counts non-stopword title words and samples k of them
// weighted by frequency, so heavy interests dominate without drowning out
// occasional ones.
package recommend

import (
	"math/rand"
	"sort"
	"strings"
)

var stopwords = map[string]struct{}{
	"a": {}, "an": {}, "and": {}, "act": {}, "amendment": {}, "bill": {},
	"code": {}, "federal": {}, "for": {}, "in": {}, "of": {}, "on": {},
	"or": {}, "other": {}, "purposes": {}, "relating": {}, "resolution": {},
	"states": {}, "the": {}, "to": {}, "united": {}, "with": {},
}

// Keywords tallies the non-stopword words across titles. Words are
// lowercased; punctuation at word boundaries is trimmed. Words shorter
// than 3 runes are skipped.
func Keywords(titles []string) map[string]int {
	counts := make(map[string]int)
	for _, title := range titles {
		for _, word := range strings.Fields(strings.ToLower(title)) {
			word = strings.Trim(word, ".,;:!?()'\"-—")
			if len(word) < 3 {
				continue
			}
			if _, skip := stopwords[word]; skip {
				continue
			}
			counts[word]++
		}
	}
	return counts
}

// Sample picks up to k distinct keywords, weighted by count. The same
// keyword is never returned twice. Returns fewer than k when the counter
// has fewer distinct words.
func Sample(counts map[string]int, k int) []string {
	// Stable ordering so weighted draws are reproducible under a seeded rand.
	words := make([]string, 0, len(counts))
	for w := range counts {
		words = append(words, w)
	}
	sort.Strings(words)

	weights := make([]int, len(words))
	total := 0
	for i, w := range words {
		weights[i] = counts[w]
		total += counts[w]
	}

	picked := make([]string, 0, k)
	for len(picked) < k && total > 0 {
		target := rand.Intn(total)
		for i, w := range weights {
			if w == 0 {
				continue
			}
			target -= w
			if target < 0 {
				picked = append(picked, words[i])
				total -= w
				weights[i] = 0
				break
			}
		}
	}
	return picked
}
