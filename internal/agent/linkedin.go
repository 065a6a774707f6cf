package agent

import (
	"context"

	"github.com/DISIA-TECH/tool-content-backend/internal/extract"
	"github.com/DISIA-TECH/tool-content-backend/internal/prompts"
)

// PostRequest asks for a LinkedIn post in one of the registered styles.
type PostRequest struct {
	Topic            string            `json:"tema"`
	Style            string            `json:"estilo"`
	Persona          string            `json:"autor,omitempty"`
	ExtraInfo        string            `json:"informacion_adicional,omitempty"`
	Model            string            `json:"model,omitempty"`
	Temperature      *float64          `json:"temperature,omitempty"`
	SystemComponents prompts.Overrides `json:"system_components,omitempty"`
}

// PostResponse is a generated LinkedIn post.
type PostResponse struct {
	Text     string         `json:"texto"`
	Hashtags []string       `json:"hashtags"`
	Persona  string         `json:"autor,omitempty"`
	Style    string         `json:"estilo"`
	Metadata map[string]any `json:"metadata"`
}

// LinkedInService generates posts on a single shared agent; the style of
// each request selects the variant for that call only.
type LinkedInService struct {
	agent *Agent
}

// NewLinkedInService builds the LinkedIn agent from a shared config.
func NewLinkedInService(cfg Config) *LinkedInService {
	cfg.Tag = prompts.TagLinkedInBase
	return &LinkedInService{agent: New(cfg)}
}

// Current returns the agent's variant tag, model, and temperature.
func (s *LinkedInService) Current() (prompts.Tag, string, float64) {
	return s.agent.Current()
}

// Styles lists the registered post styles.
func (s *LinkedInService) Styles() []prompts.Tag {
	return prompts.StyleTags()
}

// Post generates a LinkedIn post. An unrecognized style falls back to the
// base LinkedIn variant; an unknown persona generates with the default
// identity.
func (s *LinkedInService) Post(ctx context.Context, req PostRequest) (*PostResponse, error) {
	extraInfo := req.ExtraInfo
	if extraInfo == "" {
		extraInfo = "No se proporcionó información adicional."
	}

	style := prompts.Tag(req.Style)
	if !prompts.IsStyle(style) {
		style = prompts.TagLinkedInBase
	}

	gen, err := s.agent.Generate(ctx, Request{
		Variables: map[string]string{
			"tema":                  req.Topic,
			"informacion_adicional": extraInfo,
		},
		Tag:         style,
		Overrides:   req.SystemComponents,
		Model:       req.Model,
		Temperature: req.Temperature,
		Persona:     req.Persona,
	})
	if err != nil {
		return nil, err
	}

	return &PostResponse{
		Text:     gen.Text,
		Hashtags: extract.Hashtags(gen.Text),
		Persona:  req.Persona,
		Style:    string(gen.Variant),
		Metadata: map[string]any{
			"post_type":        "linkedin",
			"content_family":   string(gen.Variant),
			"topic":            req.Topic,
			"author":           req.Persona,
			"model_used":       gen.Model,
			"temperature_used": gen.Temperature,
		},
	}, nil
}
