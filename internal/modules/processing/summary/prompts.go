package summary

import "fmt"

const (
	chunkSystemPrompt = "You are a skilled summarizer that extracts key information from text."
	mergeSystemPrompt = "You are a skilled editor that creates cohesive summaries from multiple text sections."
)

func buildChunkPrompt(text string) string {
	return fmt.Sprintf(`Summarize the following text in a clear, concise manner.
Focus on the main ideas and key information.

%s`, text)
}

func buildMergePrompt(combined string) string {
	return fmt.Sprintf(`Create a cohesive, unified summary from these section summaries:

%s`, combined)
}
