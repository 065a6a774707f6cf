// Package agent orchestrates a single generation call: merge overrides
// into the active template variant, render the prompt pair, invoke the
// chat client, and parse the response. Each agent owns a mutable current
// variant and model identity that is swapped for the duration of one call
// and restored on every exit path.
package agent

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/DISIA-TECH/tool-content-backend/internal/calllog"
	"github.com/DISIA-TECH/tool-content-backend/internal/extract"
	"github.com/DISIA-TECH/tool-content-backend/internal/prompts"
	"github.com/DISIA-TECH/tool-content-backend/internal/providers"
)

// Default model settings, applied when the config leaves them unset.
const (
	DefaultModel       = "gpt-4"
	DefaultTemperature = 0.7
)

// Persona is a named author identity: an optional fine-tuned model id plus
// style instructions appended to the system prompt.
type Persona struct {
	Model        string `json:"model,omitempty"        yaml:"model"`
	Instructions string `json:"instructions,omitempty" yaml:"instructions"`
}

// Config configures an agent instance.
type Config struct {
	// Tag selects the agent's home variant
	Tag prompts.Tag

	// Client performs the generation calls (required)
	Client providers.ChatClient

	// Model and Temperature override the defaults
	Model       string
	Temperature float64

	// Personas maps persona ids to their model and instructions
	Personas map[string]Persona

	// Calls receives a record of every generation call (optional)
	Calls *calllog.Store

	Logger *slog.Logger
}

// Agent holds the mutable generation state for one content family.
// A single mutex serializes the whole swap-call-restore section, so an
// agent never exposes another call's transient variant or model.
type Agent struct {
	mu sync.Mutex

	variant     prompts.Variant
	model       string
	temperature float64

	client   providers.ChatClient
	personas map[string]Persona
	calls    *calllog.Store
	logger   *slog.Logger
}

// New creates an agent with its home variant's defaults.
func New(cfg Config) *Agent {
	if cfg.Model == "" {
		cfg.Model = DefaultModel
	}
	if cfg.Temperature == 0 {
		cfg.Temperature = DefaultTemperature
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	return &Agent{
		variant:     prompts.Lookup(cfg.Tag),
		model:       cfg.Model,
		temperature: cfg.Temperature,
		client:      cfg.Client,
		personas:    cfg.Personas,
		calls:       cfg.Calls,
		logger:      cfg.Logger,
	}
}

// Request is one generation call.
type Request struct {
	// Variables fill the user template's placeholders
	Variables map[string]string

	// Tag switches to another variant for this call only (style selection);
	// empty means the agent's current variant
	Tag prompts.Tag

	// Overrides replace variant defaults for this call only
	Overrides prompts.Overrides

	// Model and Temperature override the agent's settings for this call
	Model       string
	Temperature *float64

	// Persona selects an author identity; unknown ids are ignored
	Persona string
}

// Generation is the raw outcome of a call, before family-specific parsing.
type Generation struct {
	Text        string
	Variant     prompts.Tag
	Model       string
	Temperature float64
	Result      *providers.ChatResult
}

// UpdateDefaults permanently applies overrides to the agent's home
// variant. Fields outside the variant's declared set are dropped.
func (a *Agent) UpdateDefaults(o prompts.Overrides) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.variant = prompts.Merge(a.variant, o)
}

// Current returns the agent's variant tag, model, and temperature.
func (a *Agent) Current() (prompts.Tag, string, float64) {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.variant.Tag, a.model, a.temperature
}

// Generate runs one generation call. Rendering failures surface before any
// network traffic; client errors pass through wrapped. The agent's variant,
// model, and temperature are restored whether the call succeeds, fails, or
// is cancelled.
func (a *Agent) Generate(ctx context.Context, req Request) (*Generation, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	base := a.variant
	if req.Tag != "" && req.Tag != a.variant.Tag {
		base = prompts.Lookup(req.Tag)
	}
	eff := prompts.Merge(base, req.Overrides)

	model := a.model
	if req.Model != "" {
		model = req.Model
	}
	temperature := a.temperature
	if req.Temperature != nil {
		temperature = *req.Temperature
	}

	if req.Persona != "" {
		if p, ok := a.personas[req.Persona]; ok {
			if p.Model != "" {
				model = p.Model
			}
			if p.Instructions != "" {
				cur := eff.Defaults.AdditionalInstructions
				if cur != "" {
					eff.Defaults.AdditionalInstructions = cur + "\n\n" + p.Instructions
				} else {
					eff.Defaults.AdditionalInstructions = p.Instructions
				}
			}
		}
	}

	systemPrompt := prompts.RenderSystem(eff.Defaults)
	userPrompt, err := prompts.RenderUser(eff.UserTemplate, req.Variables)
	if err != nil {
		return nil, err
	}

	prevVariant, prevModel, prevTemp := a.variant, a.model, a.temperature
	a.variant, a.model, a.temperature = eff, model, temperature
	defer func() {
		a.variant, a.model, a.temperature = prevVariant, prevModel, prevTemp
	}()

	requestID := uuid.New().String()
	a.logger.Info("generation call",
		"request_id", requestID,
		"variant", eff.Tag,
		"model", model,
		"persona", req.Persona)

	result, callErr := a.client.Invoke(ctx, &providers.ChatRequest{
		SystemPrompt: systemPrompt,
		UserPrompt:   userPrompt,
		Model:        model,
		Temperature:  temperature,
		RequestID:    requestID,
	})

	if a.calls != nil {
		a.calls.Record(calllog.FromChatResult(result, callErr, calllog.RecordOptions{
			Variant:     string(eff.Tag),
			Persona:     req.Persona,
			Temperature: &temperature,
		}))
	}

	if callErr != nil {
		return nil, fmt.Errorf("generation call %s: %w", requestID, callErr)
	}

	return &Generation{
		Text:        extract.Normalize(result.Content),
		Variant:     eff.Tag,
		Model:       model,
		Temperature: temperature,
		Result:      result,
	}, nil
}
