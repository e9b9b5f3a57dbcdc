package summary

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEstimateTokens(t *testing.T) {
	assert.Equal(t, 0, EstimateTokens(""))
	assert.Equal(t, 0, EstimateTokens("abc"))
	assert.Equal(t, 1, EstimateTokens("abcd"))
	assert.Equal(t, 1000, EstimateTokens(strings.Repeat("x", 4000)))
}

func TestChunk(t *testing.T) {
	t.Run("text within budget is a single untouched chunk", func(t *testing.T) {
		text := "para one\npara two"
		chunks := Chunk(text, 4000)
		require.Len(t, chunks, 1)
		assert.Equal(t, text, chunks[0])
	})

	t.Run("splits on paragraph boundaries", func(t *testing.T) {
		// Each paragraph estimates to 10 tokens (40 bytes); budget 25
		// fits two per chunk.
		p := strings.Repeat("a", 40)
		text := strings.Join([]string{p, p, p, p}, "\n")
		chunks := Chunk(text, 25)
		require.Len(t, chunks, 2)
		assert.Equal(t, p+"\n"+p, chunks[0])
		assert.Equal(t, p+"\n"+p, chunks[1])
	})

	t.Run("12k characters with 4k budget yields 3 chunks", func(t *testing.T) {
		p := strings.Repeat("b", 400)
		paragraphs := make([]string, 30) // ~12k chars total
		for i := range paragraphs {
			paragraphs[i] = p
		}
		text := strings.Join(paragraphs, "\n")
		chunks := Chunk(text, 1000)
		assert.Len(t, chunks, 3)
		for _, c := range chunks {
			assert.LessOrEqual(t, EstimateTokens(c), 1100)
		}
	})

	t.Run("oversized paragraph comes out unsplit", func(t *testing.T) {
		small := strings.Repeat("s", 20)
		huge := strings.Repeat("h", 800)
		text := strings.Join([]string{small, huge, small}, "\n")
		chunks := Chunk(text, 50)
		require.Len(t, chunks, 3)
		assert.Equal(t, small, chunks[0])
		assert.Equal(t, huge, chunks[1])
		assert.Equal(t, small, chunks[2])
	})

	t.Run("no empty chunks", func(t *testing.T) {
		huge := strings.Repeat("h", 800)
		chunks := Chunk(huge+"\n"+huge, 50)
		for _, c := range chunks {
			assert.NotEmpty(t, c)
		}
	})

	t.Run("reconstruction is exact", func(t *testing.T) {
		texts := []string{
			"single",
			strings.Repeat("a", 40) + "\n\n" + strings.Repeat("b", 40),
			strings.Join([]string{"one", strings.Repeat("x", 500), "", "two"}, "\n"),
		}
		for _, text := range texts {
			assert.Equal(t, text, Reconstruct(Chunk(text, 30)))
		}
	})
}
