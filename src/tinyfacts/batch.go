package tinyfacts

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

// Message is one chat message in a completion request body.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// CompletionRequest is the request body submitted to the chat-completions
// endpoint, directly or through the batch API.
type CompletionRequest struct {
	Model           string    `json:"model"`
	PromptCacheKey  string    `json:"prompt_cache_key,omitempty"`
	ReasoningEffort string    `json:"reasoning_effort,omitempty"`
	Messages        []Message `json:"messages"`
}

// Query builds completion requests that share a system prompt and a prompt
// cache key so repeated batch submissions reuse the provider's cache.
type Query struct {
	model        string
	cacheKey     string
	systemPrompt string
}

// NewQuery prepares a query factory for the given model. Reasoning is pinned
// to minimal for the gpt-5 family; these texts are about word choice, not
// reasoning depth.
func NewQuery(model, cacheKey, systemPrompt string) *Query {
	return &Query{model: model, cacheKey: cacheKey, systemPrompt: systemPrompt}
}

func (q *Query) request(message string) CompletionRequest {
	req := CompletionRequest{
		Model:          q.model,
		PromptCacheKey: q.cacheKey,
		Messages: []Message{
			{Role: "developer", Content: q.systemPrompt},
			{Role: "user", Content: message},
		},
	}
	if strings.Contains(q.model, "gpt-5") {
		req.ReasoningEffort = "minimal"
	}
	return req
}

// AskExplain asks the model to explain a thing.
func (q *Query) AskExplain(thing string) CompletionRequest {
	return q.request(fmt.Sprintf("Please explain what the word '%s' means.", thing))
}

// AskExplainAndFact asks for an explanation plus a fact in a new paragraph.
func (q *Query) AskExplainAndFact(thing string) CompletionRequest {
	return q.request(fmt.Sprintf("Please explain what the word '%s' means and in a new paragraph provide a fact about it.", thing))
}

type batchRecord struct {
	CustomID string            `json:"custom_id"`
	Method   string            `json:"method"`
	URL      string            `json:"url"`
	Body     CompletionRequest `json:"body"`
}

// WriteBatch streams requests as batch-API JSONL records, one per line, with
// sequential custom IDs.
func WriteBatch(w io.Writer, requests []CompletionRequest) error {
	enc := json.NewEncoder(w)
	for i, req := range requests {
		record := batchRecord{
			CustomID: fmt.Sprintf("query-%d", i),
			Method:   "POST",
			URL:      "/v1/chat/completions",
			Body:     req,
		}
		if err := enc.Encode(record); err != nil {
			return fmt.Errorf("could not write batch record %d: %w", i, err)
		}
	}
	return nil
}
