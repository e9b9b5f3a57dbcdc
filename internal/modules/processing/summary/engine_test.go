package summary

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClient struct {
	calls     []string // user prompts, in call order
	responses []string
	tokens    int
	failAt    int // 1-based call index that errors, 0 = never
}

func (f *fakeClient) Complete(ctx context.Context, systemPrompt, userPrompt string) (string, int, error) {
	f.calls = append(f.calls, userPrompt)
	n := len(f.calls)
	if f.failAt != 0 && n == f.failAt {
		return "", 0, errors.New("upstream boom")
	}
	resp := "summary"
	if n <= len(f.responses) {
		resp = f.responses[n-1]
	}
	return resp, f.tokens, nil
}

func TestEngineSummarize(t *testing.T) {
	ctx := context.Background()

	t.Run("short text makes exactly one call", func(t *testing.T) {
		client := &fakeClient{responses: []string{"the gist"}, tokens: 42}
		engine := NewEngine(client, 4000, 1000)

		result, err := engine.Summarize(ctx, "a short bill text")
		require.NoError(t, err)
		assert.Equal(t, "the gist", result.Summary)
		assert.Equal(t, 42, result.TokenCount)
		require.Len(t, client.calls, 1)
		assert.Contains(t, client.calls[0], "a short bill text")
	})

	t.Run("three chunks, short combined result skips the merge call", func(t *testing.T) {
		client := &fakeClient{responses: []string{"s1", "s2", "s3"}, tokens: 10}
		engine := NewEngine(client, 1000, 1000)

		text := threeChunkText()
		result, err := engine.Summarize(ctx, text)
		require.NoError(t, err)
		assert.Len(t, client.calls, 3)
		assert.Equal(t, "s1\n\ns2\n\ns3", result.Summary)
		assert.Equal(t, 30, result.TokenCount)
	})

	t.Run("long combined result triggers one merge call", func(t *testing.T) {
		long := strings.Repeat("w", 600)
		client := &fakeClient{responses: []string{long, long, long, "merged"}, tokens: 10}
		engine := NewEngine(client, 1000, 1000)

		result, err := engine.Summarize(ctx, threeChunkText())
		require.NoError(t, err)
		require.Len(t, client.calls, 4)
		assert.Contains(t, client.calls[3], long)
		assert.Equal(t, "merged", result.Summary)
		assert.Equal(t, 40, result.TokenCount)
	})

	t.Run("chunk order is preserved", func(t *testing.T) {
		client := &fakeClient{tokens: 1}
		engine := NewEngine(client, 1000, 100000)

		_, err := engine.Summarize(ctx, threeChunkText())
		require.NoError(t, err)
		require.Len(t, client.calls, 3)
		assert.Contains(t, client.calls[0], "AAAA")
		assert.Contains(t, client.calls[1], "BBBB")
		assert.Contains(t, client.calls[2], "CCCC")
	})

	t.Run("call failure aborts with no partial result", func(t *testing.T) {
		client := &fakeClient{tokens: 10, failAt: 2}
		engine := NewEngine(client, 1000, 1000)

		result, err := engine.Summarize(ctx, threeChunkText())
		require.Error(t, err)
		assert.Nil(t, result)
		assert.Contains(t, err.Error(), "chunk 2/3")
		// No further chunk calls after the failure.
		assert.Len(t, client.calls, 2)
	})

	t.Run("merge failure aborts", func(t *testing.T) {
		long := strings.Repeat("w", 600)
		client := &fakeClient{responses: []string{long, long, long}, tokens: 10, failAt: 4}
		engine := NewEngine(client, 1000, 1000)

		result, err := engine.Summarize(ctx, threeChunkText())
		require.Error(t, err)
		assert.Nil(t, result)
		assert.Contains(t, err.Error(), "merge summaries")
	})
}

// threeChunkText builds text that chunks into exactly three segments under a
// 1000-token budget, with a marker paragraph in each segment.
func threeChunkText() string {
	paragraphs := make([]string, 0, 30)
	for i := 0; i < 30; i++ {
		marker := "AAAA"
		if i >= 10 {
			marker = "BBBB"
		}
		if i >= 20 {
			marker = "CCCC"
		}
		paragraphs = append(paragraphs, marker+strings.Repeat("x", 396))
	}
	return strings.Join(paragraphs, "\n")
}
