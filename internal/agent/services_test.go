package agent

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/DISIA-TECH/tool-content-backend/internal/prompts"
	"github.com/DISIA-TECH/tool-content-backend/internal/providers"
)

type fakeFetcher struct {
	content map[string]string
}

func (f *fakeFetcher) Fetch(_ context.Context, url string) (string, error) {
	if c, ok := f.content[url]; ok {
		return c, nil
	}
	return "", errors.New("fetch failed")
}

func TestBlogServiceGeneralInterest(t *testing.T) {
	mock := providers.NewMockClient()
	mock.ResponseText = "# Título del artículo\nmeta descripción: Desc\npalabras clave: ia, blogs\nCuerpo del artículo."
	svc := NewBlogService(Config{Client: mock}, &fakeFetcher{content: map[string]string{
		"https://example.com": "contenido de referencia",
	}})

	resp, err := svc.GeneralInterest(context.Background(), GeneralInterestRequest{
		Topic:           "IA en marketing",
		PrimaryKeywords: []string{"ia", "marketing"},
		Audience:        "profesionales",
		ReferenceURLs:   []string{"https://example.com", "https://down.example.com"},
	})
	if err != nil {
		t.Fatalf("GeneralInterest: %v", err)
	}
	if resp.Title != "Título del artículo" || resp.MetaDescription != "Desc" {
		t.Errorf("extraction wrong: %+v", resp.Article)
	}
	if resp.Metadata["content_family"] != string(prompts.TagGeneralInterest) {
		t.Errorf("metadata = %v", resp.Metadata)
	}
	if resp.Metadata["model_used"] != DefaultModel || resp.Metadata["temperature_used"] != DefaultTemperature {
		t.Errorf("model metadata = %v", resp.Metadata)
	}

	user := mock.LastRequest().UserPrompt
	if !strings.Contains(user, "Tema: IA en marketing") {
		t.Errorf("topic missing from user prompt:\n%s", user)
	}
	if !strings.Contains(user, "contenido de referencia") {
		t.Error("fetched URL content missing from user prompt")
	}
	if !strings.Contains(user, "No se pudo extraer contenido de https://down.example.com") {
		t.Error("failed fetch must degrade to a note, not an error")
	}
}

func TestBlogServiceSuccessCase(t *testing.T) {
	mock := providers.NewMockClient()
	mock.ResponseText = "# Caso Acme\nVersión corta: resumen del caso\nVersión completa: narrativa completa del caso"
	svc := NewBlogService(Config{Client: mock}, nil)

	resp, err := svc.SuccessCase(context.Background(), SuccessCaseRequest{
		Topic:      "Transformación digital en Acme",
		Audience:   "directivos",
		SourceText: "datos extraídos del pdf",
	})
	if err != nil {
		t.Fatalf("SuccessCase: %v", err)
	}
	if resp.Title != "Caso Acme" {
		t.Errorf("title = %q", resp.Title)
	}
	if !strings.Contains(resp.ShortSummary, "resumen del caso") {
		t.Errorf("short = %q", resp.ShortSummary)
	}
	if !strings.Contains(resp.FullBody, "narrativa completa") {
		t.Errorf("full = %q", resp.FullBody)
	}
	if resp.Metadata["with_source"] != true {
		t.Errorf("metadata = %v", resp.Metadata)
	}
	if !strings.Contains(mock.LastRequest().UserPrompt, "datos extraídos del pdf") {
		t.Error("source text missing from user prompt")
	}
}

func TestBlogServiceCustomize(t *testing.T) {
	mock := providers.NewMockClient()
	svc := NewBlogService(Config{Client: mock}, nil)

	o := prompts.Overrides{}
	o.Set(prompts.FieldTone, "tono corporativo")
	svc.Customize(o)

	if _, err := svc.GeneralInterest(context.Background(), GeneralInterestRequest{Topic: "t"}); err != nil {
		t.Fatalf("GeneralInterest: %v", err)
	}
	if !strings.Contains(mock.LastRequest().SystemPrompt, "tono corporativo") {
		t.Error("customization missing from general-interest prompt")
	}

	if _, err := svc.SuccessCase(context.Background(), SuccessCaseRequest{Topic: "t"}); err != nil {
		t.Fatalf("SuccessCase: %v", err)
	}
	if !strings.Contains(mock.LastRequest().SystemPrompt, "tono corporativo") {
		t.Error("customization missing from success-case prompt")
	}
}

func TestLinkedInServicePost(t *testing.T) {
	mock := providers.NewMockClient()
	mock.ResponseText = "Gran noticia para el equipo 🎉\n\n#Innovación #Equipo"
	svc := NewLinkedInService(Config{Client: mock, Personas: map[string]Persona{
		"aitor": {Model: "ft:gpt-4o-aitor-linkedin-20250325", Instructions: prompts.PersonaInstructions["aitor"]},
	}})

	resp, err := svc.Post(context.Background(), PostRequest{
		Topic:   "nuevo hito",
		Style:   string(prompts.TagWins),
		Persona: "aitor",
	})
	if err != nil {
		t.Fatalf("Post: %v", err)
	}
	if resp.Style != string(prompts.TagWins) {
		t.Errorf("style = %q", resp.Style)
	}
	if len(resp.Hashtags) != 2 || resp.Hashtags[0] != "Innovación" {
		t.Errorf("hashtags = %v", resp.Hashtags)
	}
	if resp.Metadata["model_used"] != "ft:gpt-4o-aitor-linkedin-20250325" {
		t.Errorf("persona model not used: %v", resp.Metadata)
	}

	last := mock.LastRequest()
	if !strings.Contains(last.SystemPrompt, "líder que celebra logros") {
		t.Error("wins style defaults missing from system prompt")
	}
	if !strings.Contains(last.UserPrompt, "No se proporcionó información adicional.") {
		t.Error("empty extra info must use the default note")
	}
}

func TestLinkedInServiceUnknownStyle(t *testing.T) {
	mock := providers.NewMockClient()
	svc := NewLinkedInService(Config{Client: mock})

	resp, err := svc.Post(context.Background(), PostRequest{Topic: "t", Style: "inexistente"})
	if err != nil {
		t.Fatalf("Post: %v", err)
	}
	if resp.Style != string(prompts.TagLinkedInBase) {
		t.Errorf("unknown style must fall back to the base variant, got %q", resp.Style)
	}
}
