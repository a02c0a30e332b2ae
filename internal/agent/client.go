// Package agent provides the LLM layer for promoPilot's planning and
// insights agents. The entire tool works without an API key; every caller
// falls back to its built-in tables when no client is configured or a
// call fails.
package agent

import "context"

// Client is the interface for LLM completions.
type Client interface {
	// Complete sends a prompt and returns the completion.
	Complete(ctx context.Context, prompt string) (string, error)

	// CompleteWithSystem sends a prompt with a system message.
	CompleteWithSystem(ctx context.Context, systemPrompt, userPrompt string) (string, error)
}
