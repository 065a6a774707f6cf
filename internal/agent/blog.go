package agent

import (
	"context"
	"fmt"
	"strings"

	"github.com/DISIA-TECH/tool-content-backend/internal/extract"
	"github.com/DISIA-TECH/tool-content-backend/internal/prompts"
)

// URLFetcher retrieves reference material for the general-interest flow.
// Implementations own their retry policy.
type URLFetcher interface {
	Fetch(ctx context.Context, url string) (string, error)
}

// Reference URL content is truncated to keep prompt size bounded.
const maxURLContentLen = 2000

// GeneralInterestRequest asks for a general-interest blog article.
type GeneralInterestRequest struct {
	Topic             string            `json:"tema"`
	PrimaryKeywords   []string          `json:"palabras_clave_primarias"`
	SecondaryKeywords []string          `json:"palabras_clave_secundarias"`
	Length            string            `json:"longitud"`
	Audience          string            `json:"publico_objetivo"`
	Objective         string            `json:"objetivo"`
	Tone              string            `json:"tono_especifico"`
	CallToAction      string            `json:"llamada_accion"`
	Avoid             []string          `json:"elementos_evitar"`
	ReferenceURLs     []string          `json:"urls_referencia"`
	Comments          string            `json:"comentarios_adicionales"`
	Model             string            `json:"model,omitempty"`
	Temperature       *float64          `json:"temperature,omitempty"`
	SystemComponents  prompts.Overrides `json:"system_components,omitempty"`
}

// SuccessCaseRequest asks for a success-case article generated from source
// material, typically text extracted from an attached PDF.
type SuccessCaseRequest struct {
	Topic             string            `json:"tema"`
	PrimaryKeywords   []string          `json:"palabras_clave_primarias"`
	SecondaryKeywords []string          `json:"palabras_clave_secundarias"`
	Length            string            `json:"longitud"`
	Audience          string            `json:"publico_objetivo"`
	Objective         string            `json:"objetivo"`
	Tone              string            `json:"tono_especifico"`
	CallToAction      string            `json:"llamada_accion"`
	Avoid             []string          `json:"elementos_evitar"`
	Comments          string            `json:"comentarios_adicionales"`
	SourceText        string            `json:"informacion_caso_exito,omitempty"`
	Model             string            `json:"model,omitempty"`
	Temperature       *float64          `json:"temperature,omitempty"`
	SystemComponents  prompts.Overrides `json:"system_components,omitempty"`
}

// ArticleResponse is a generated general-interest article.
type ArticleResponse struct {
	extract.Article
	Metadata map[string]any `json:"metadata"`
}

// SuccessCaseResponse is a generated success-case article with both the
// executive summary and the full narrative.
type SuccessCaseResponse struct {
	extract.DualArticle
	Metadata map[string]any `json:"metadata"`
}

// BlogService runs the two blog content families, each on its own agent.
type BlogService struct {
	general *Agent
	success *Agent
	fetcher URLFetcher
}

// NewBlogService builds the blog agents from a shared config. The config's
// Tag field is ignored; each family gets its own variant.
func NewBlogService(cfg Config, fetcher URLFetcher) *BlogService {
	generalCfg, successCfg := cfg, cfg
	generalCfg.Tag = prompts.TagGeneralInterest
	successCfg.Tag = prompts.TagSuccessCase
	return &BlogService{
		general: New(generalCfg),
		success: New(successCfg),
		fetcher: fetcher,
	}
}

// Agents exposes the family agents for status reporting, keyed by family
// name.
func (s *BlogService) Agents() map[string]*Agent {
	return map[string]*Agent{
		"blog_general_interest": s.general,
		"blog_success_case":     s.success,
	}
}

// Customize permanently updates both blog agents' default templates.
func (s *BlogService) Customize(o prompts.Overrides) {
	s.general.UpdateDefaults(o)
	s.success.UpdateDefaults(o)
}

// GeneralInterest generates a general-interest article.
func (s *BlogService) GeneralInterest(ctx context.Context, req GeneralInterestRequest) (*ArticleResponse, error) {
	comments := req.Comments
	if urlContent := s.fetchReferences(ctx, req.ReferenceURLs); urlContent != "" {
		comments += "\n\nInformación adicional de las URLs:\n" + urlContent
	}

	vars := map[string]string{
		"tema":                       req.Topic,
		"palabras_clave_primarias":   strings.Join(req.PrimaryKeywords, ", "),
		"palabras_clave_secundarias": strings.Join(req.SecondaryKeywords, ", "),
		"longitud":                   req.Length,
		"publico_objetivo":           req.Audience,
		"objetivo":                   req.Objective,
		"tono_especifico":            req.Tone,
		"llamada_accion":             req.CallToAction,
		"elementos_evitar":           strings.Join(req.Avoid, ", "),
		"urls_referencia":            strings.Join(req.ReferenceURLs, ", "),
		"comentarios_adicionales":    comments,
	}

	gen, err := s.general.Generate(ctx, Request{
		Variables:   vars,
		Overrides:   req.SystemComponents,
		Model:       req.Model,
		Temperature: req.Temperature,
	})
	if err != nil {
		return nil, err
	}

	return &ArticleResponse{
		Article: extract.ExtractArticle(gen.Text),
		Metadata: map[string]any{
			"content_family":   string(prompts.TagGeneralInterest),
			"topic":            req.Topic,
			"target_audience":  req.Audience,
			"keywords_used":    append(append([]string{}, req.PrimaryKeywords...), req.SecondaryKeywords...),
			"model_used":       gen.Model,
			"temperature_used": gen.Temperature,
		},
	}, nil
}

// SuccessCase generates a success-case article from the provided source
// text.
func (s *BlogService) SuccessCase(ctx context.Context, req SuccessCaseRequest) (*SuccessCaseResponse, error) {
	source := req.SourceText
	if source == "" {
		source = "No se proporcionó información del caso de éxito."
	}

	vars := map[string]string{
		"tema":                       req.Topic,
		"palabras_clave_primarias":   strings.Join(req.PrimaryKeywords, ", "),
		"palabras_clave_secundarias": strings.Join(req.SecondaryKeywords, ", "),
		"longitud":                   req.Length,
		"publico_objetivo":           req.Audience,
		"objetivo":                   req.Objective,
		"tono_especifico":            req.Tone,
		"llamada_accion":             req.CallToAction,
		"elementos_evitar":           strings.Join(req.Avoid, ", "),
		"comentarios_adicionales":    req.Comments,
		"informacion_caso_exito":     source,
	}

	gen, err := s.success.Generate(ctx, Request{
		Variables:   vars,
		Overrides:   req.SystemComponents,
		Model:       req.Model,
		Temperature: req.Temperature,
	})
	if err != nil {
		return nil, err
	}

	return &SuccessCaseResponse{
		DualArticle: extract.ExtractDual(gen.Text),
		Metadata: map[string]any{
			"content_family":   string(prompts.TagSuccessCase),
			"topic":            req.Topic,
			"target_audience":  req.Audience,
			"keywords_used":    append(append([]string{}, req.PrimaryKeywords...), req.SecondaryKeywords...),
			"model_used":       gen.Model,
			"temperature_used": gen.Temperature,
			"with_source":      req.SourceText != "",
		},
	}, nil
}

// fetchReferences collects reference URL content, best effort. A URL that
// cannot be fetched contributes a note instead of failing the request.
func (s *BlogService) fetchReferences(ctx context.Context, urls []string) string {
	if s.fetcher == nil || len(urls) == 0 {
		return ""
	}
	var parts []string
	for _, url := range urls {
		content, err := s.fetcher.Fetch(ctx, url)
		if err != nil {
			parts = append(parts, fmt.Sprintf("No se pudo extraer contenido de %s\n", url))
			continue
		}
		if runes := []rune(content); len(runes) > maxURLContentLen {
			content = string(runes[:maxURLContentLen])
		}
		parts = append(parts, fmt.Sprintf("Contenido de %s:\n%s\n", url, content))
	}
	return strings.Join(parts, "\n")
}
