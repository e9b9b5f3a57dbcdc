// Package summary implements the bill text summarization pipeline:
// token-budgeted chunking, per-chunk completion calls, and a conditional
// meta-summary pass that merges section summaries into one result.
package summary

import (
	"context"
	"fmt"
	"strings"
)

// CompletionClient is the outbound completion-service call used by the
// engine. Implementations must honor ctx cancellation and report the token
// cost of each call.
type CompletionClient interface {
	Complete(ctx context.Context, systemPrompt, userPrompt string) (text string, tokens int, err error)
}

// Result is the outcome of one summarization run.
type Result struct {
	Summary    string `json:"summary"`
	TokenCount int    `json:"token_count"`
}

// Engine turns normalized document text into a single summary.
type Engine struct {
	client      CompletionClient
	tokenBudget int // per-chunk estimated token budget
	maxLength   int // combined-summary length that triggers the merge pass
}

// NewEngine builds an engine with the given chunk budget and target summary
// length (characters).
func NewEngine(client CompletionClient, tokenBudget, maxLength int) *Engine {
	return &Engine{client: client, tokenBudget: tokenBudget, maxLength: maxLength}
}

// Summarize runs the pipeline over normalized text. Chunks are summarized
// sequentially in order; with multiple chunks the section summaries are
// joined with a blank line, and one extra merge call runs only when that
// candidate exceeds the target length. Any call failure aborts the whole
// run — no partial summary is ever returned. The operation is free of side
// effects besides the outbound calls, so callers may retry it wholesale.
func (e *Engine) Summarize(ctx context.Context, text string) (*Result, error) {
	chunks := Chunk(text, e.tokenBudget)
	summaries := make([]string, 0, len(chunks))
	totalTokens := 0

	for i, chunk := range chunks {
		part, tokens, err := e.client.Complete(ctx, chunkSystemPrompt, buildChunkPrompt(chunk))
		if err != nil {
			return nil, fmt.Errorf("summarize chunk %d/%d: %w", i+1, len(chunks), err)
		}
		summaries = append(summaries, strings.TrimSpace(part))
		totalTokens += tokens
	}

	if len(summaries) == 1 {
		return &Result{Summary: summaries[0], TokenCount: totalTokens}, nil
	}

	combined := strings.Join(summaries, "\n\n")
	if len(combined) <= e.maxLength {
		return &Result{Summary: combined, TokenCount: totalTokens}, nil
	}

	merged, tokens, err := e.client.Complete(ctx, mergeSystemPrompt, buildMergePrompt(combined))
	if err != nil {
		return nil, fmt.Errorf("merge summaries: %w", err)
	}
	totalTokens += tokens
	return &Result{Summary: strings.TrimSpace(merged), TokenCount: totalTokens}, nil
}
