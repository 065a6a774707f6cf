package providers

import (
	"context"
	"time"
)

// ChatClient is the capability the generation agents depend on: a composed
// system/user prompt pair in, raw model text out. Implementations may fail
// with transport or provider errors; callers own retry and timeout policy.
type ChatClient interface {
	// Invoke sends one chat completion request.
	Invoke(ctx context.Context, req *ChatRequest) (*ChatResult, error)

	// Name returns the client identifier (e.g., "openai").
	Name() string
}

// ChatRequest is a single generation call.
type ChatRequest struct {
	SystemPrompt string `json:"system_prompt"`
	UserPrompt   string `json:"user_prompt"`

	// Model selection (client default if empty)
	Model string `json:"model,omitempty"`

	// Sampling temperature in [0,1]
	Temperature float64 `json:"temperature"`

	// Request tracking
	RequestID string `json:"-"`
}

// ChatResult is the response from a generation call.
type ChatResult struct {
	Content string `json:"content"`

	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`

	TotalTime time.Duration `json:"total_time"`

	Provider  string `json:"provider"`
	ModelUsed string `json:"model_used"`
	RequestID string `json:"request_id"`
}
