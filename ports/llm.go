package ports

import "context"

// LLMClient is the boundary to a hosted chat-completion provider
type LLMClient interface {
	ChatCompletion(ctx context.Context, model string, prompt string, maxTokens int) (string, error)
}
