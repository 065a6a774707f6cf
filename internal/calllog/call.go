// Package calllog records every generation call with its variant, model,
// and metrics for the recent-activity endpoint. Records live in a bounded
// in-memory buffer; there is no persistence.
package calllog

import (
	"time"

	"github.com/google/uuid"

	"github.com/DISIA-TECH/tool-content-backend/internal/providers"
)

// Call represents a recorded generation call.
type Call struct {
	ID string `json:"id"`

	Timestamp time.Time `json:"timestamp"`
	LatencyMs int       `json:"latency_ms"`

	// Generation context
	Variant string `json:"variant"`
	Persona string `json:"persona,omitempty"`

	// Model info
	Provider    string   `json:"provider"`
	Model       string   `json:"model"`
	Temperature *float64 `json:"temperature,omitempty"`

	// Token usage
	InputTokens  int `json:"input_tokens"`
	OutputTokens int `json:"output_tokens"`

	// Status
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

// RecordOptions provides context for recording a generation call.
type RecordOptions struct {
	Variant     string
	Persona     string
	Temperature *float64
}

// FromChatResult creates a Call from a ChatResult. A nil result (failed
// call) still yields a record carrying the error.
func FromChatResult(result *providers.ChatResult, callErr error, opts RecordOptions) *Call {
	call := &Call{
		ID:          uuid.New().String(),
		Timestamp:   time.Now(),
		Variant:     opts.Variant,
		Persona:     opts.Persona,
		Temperature: opts.Temperature,
		Success:     callErr == nil,
	}
	if callErr != nil {
		call.Error = callErr.Error()
	}
	if result != nil {
		call.LatencyMs = int(result.TotalTime.Milliseconds())
		call.Provider = result.Provider
		call.Model = result.ModelUsed
		call.InputTokens = result.PromptTokens
		call.OutputTokens = result.CompletionTokens
	}
	return call
}
