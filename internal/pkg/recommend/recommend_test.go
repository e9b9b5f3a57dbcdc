package recommend

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeywords(t *testing.T) {
	t.Run("counts non-stopword title words", func(t *testing.T) {
		counts := Keywords([]string{
			"Clean Energy for America Act",
			"Energy Infrastructure Act of 2023",
		})
		assert.Equal(t, 2, counts["energy"])
		assert.Equal(t, 1, counts["clean"])
		assert.Equal(t, 1, counts["infrastructure"])
	})

	t.Run("stopwords and short words are skipped", func(t *testing.T) {
		counts := Keywords([]string{"An Act to amend the United States Code"})
		assert.NotContains(t, counts, "act")
		assert.NotContains(t, counts, "the")
		assert.NotContains(t, counts, "to")
		assert.NotContains(t, counts, "united")
		assert.Contains(t, counts, "amend")
	})

	t.Run("punctuation is trimmed", func(t *testing.T) {
		counts := Keywords([]string{"Healthcare, Education!"})
		assert.Equal(t, 1, counts["healthcare"])
		assert.Equal(t, 1, counts["education"])
	})

	t.Run("empty input", func(t *testing.T) {
		assert.Empty(t, Keywords(nil))
	})
}

func TestSample(t *testing.T) {
	t.Run("returns at most k distinct keywords", func(t *testing.T) {
		counts := map[string]int{"energy": 5, "health": 3, "housing": 2, "water": 1}
		picked := Sample(counts, 3)
		require.Len(t, picked, 3)

		seen := map[string]bool{}
		for _, w := range picked {
			assert.Contains(t, counts, w)
			assert.False(t, seen[w], "keyword %q picked twice", w)
			seen[w] = true
		}
	})

	t.Run("fewer words than k returns all", func(t *testing.T) {
		picked := Sample(map[string]int{"energy": 1, "health": 1}, 5)
		assert.ElementsMatch(t, []string{"energy", "health"}, picked)
	})

	t.Run("empty counter", func(t *testing.T) {
		assert.Empty(t, Sample(map[string]int{}, 3))
	})
}
