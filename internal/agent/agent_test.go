package agent

import (
	"context"
	"strings"
	"testing"

	"github.com/DISIA-TECH/tool-content-backend/internal/calllog"
	"github.com/DISIA-TECH/tool-content-backend/internal/prompts"
	"github.com/DISIA-TECH/tool-content-backend/internal/providers"
)

func newTestAgent(t *testing.T, mock *providers.MockClient) *Agent {
	t.Helper()
	return New(Config{
		Tag:    prompts.TagLeadership,
		Client: mock,
		Personas: map[string]Persona{
			"pablo": {Model: "ft:gpt-4o-pablo-linkedin-20250320", Instructions: prompts.PersonaInstructions["pablo"]},
		},
	})
}

func linkedinVars() map[string]string {
	return map[string]string{
		"tema":                  "innovación",
		"informacion_adicional": "ninguna",
	}
}

func TestGenerateRestoresState(t *testing.T) {
	mock := providers.NewMockClient()
	a := newTestAgent(t, mock)
	wantTag, wantModel, wantTemp := a.Current()

	temp := 0.2
	_, err := a.Generate(context.Background(), Request{
		Variables:   linkedinVars(),
		Tag:         prompts.TagWins,
		Model:       "gpt-4o",
		Temperature: &temp,
	})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	tag, model, tmp := a.Current()
	if tag != wantTag || model != wantModel || tmp != wantTemp {
		t.Errorf("state not restored: got (%v, %v, %v), want (%v, %v, %v)",
			tag, model, tmp, wantTag, wantModel, wantTemp)
	}

	// The call itself must have used the swapped settings.
	last := mock.LastRequest()
	if last.Model != "gpt-4o" || last.Temperature != 0.2 {
		t.Errorf("call used wrong settings: %+v", last)
	}
}

func TestGenerateRestoresStateOnError(t *testing.T) {
	mock := providers.NewMockClient()
	mock.ShouldFail = true
	a := newTestAgent(t, mock)
	wantTag, wantModel, wantTemp := a.Current()

	_, err := a.Generate(context.Background(), Request{
		Variables: linkedinVars(),
		Model:     "gpt-4o",
	})
	if err == nil {
		t.Fatal("want error from failing client")
	}

	tag, model, tmp := a.Current()
	if tag != wantTag || model != wantModel || tmp != wantTemp {
		t.Error("state must be restored after a failed call")
	}
}

func TestRenderErrorBeforeInvoke(t *testing.T) {
	mock := providers.NewMockClient()
	a := newTestAgent(t, mock)

	_, err := a.Generate(context.Background(), Request{
		Variables: map[string]string{"tema": "solo el tema"},
	})
	if err == nil {
		t.Fatal("want RenderError for missing variable")
	}
	if len(mock.Requests()) != 0 {
		t.Error("client must not be invoked when rendering fails")
	}
}

func TestPersonaAugmentation(t *testing.T) {
	mock := providers.NewMockClient()
	a := newTestAgent(t, mock)

	gen, err := a.Generate(context.Background(), Request{
		Variables: linkedinVars(),
		Persona:   "pablo",
	})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if gen.Model != "ft:gpt-4o-pablo-linkedin-20250320" {
		t.Errorf("persona model not selected: %q", gen.Model)
	}
	last := mock.LastRequest()
	if !strings.Contains(last.SystemPrompt, "Emula el estilo de escritura de Pablo") {
		t.Error("persona instructions missing from system prompt")
	}
	// Persona instructions append to, not replace, the variant's own
	// additional instructions.
	if !strings.Contains(last.SystemPrompt, "Muestra confianza y visión sin arrogancia") {
		t.Error("variant instructions dropped by persona augmentation")
	}

	if _, model, _ := a.Current(); model == "ft:gpt-4o-pablo-linkedin-20250320" {
		t.Error("persona model must not persist after the call")
	}
}

func TestUnknownPersonaIsNoop(t *testing.T) {
	mock := providers.NewMockClient()
	a := newTestAgent(t, mock)

	gen, err := a.Generate(context.Background(), Request{
		Variables: linkedinVars(),
		Persona:   "desconocido",
	})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if gen.Model != DefaultModel {
		t.Errorf("unknown persona must keep the default model, got %q", gen.Model)
	}
}

func TestUpdateDefaultsPersists(t *testing.T) {
	mock := providers.NewMockClient()
	a := newTestAgent(t, mock)

	o := prompts.Overrides{}
	o.Set(prompts.FieldTone, "tono personalizado")
	a.UpdateDefaults(o)

	if _, err := a.Generate(context.Background(), Request{Variables: linkedinVars()}); err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if !strings.Contains(mock.LastRequest().SystemPrompt, "tono personalizado") {
		t.Error("customized tone missing from system prompt")
	}
}

func TestGenerateRecordsCall(t *testing.T) {
	mock := providers.NewMockClient()
	store := calllog.NewStore(8)
	a := New(Config{Tag: prompts.TagWins, Client: mock, Calls: store})

	if _, err := a.Generate(context.Background(), Request{Variables: linkedinVars()}); err != nil {
		t.Fatalf("Generate: %v", err)
	}
	recent := store.Recent(0)
	if len(recent) != 1 {
		t.Fatalf("want 1 recorded call, got %d", len(recent))
	}
	if recent[0].Variant != string(prompts.TagWins) || !recent[0].Success {
		t.Errorf("unexpected record: %+v", recent[0])
	}

	mock.ShouldFail = true
	a.Generate(context.Background(), Request{Variables: linkedinVars()})
	recent = store.Recent(0)
	if len(recent) != 2 || recent[0].Success {
		t.Errorf("failed call must be recorded: %+v", recent)
	}
}

func TestGenerateNormalizesOutput(t *testing.T) {
	mock := providers.NewMockClient()
	mock.ResponseText = "Primera.Segunda   frase\n\n\n\nfin"
	a := newTestAgent(t, mock)

	gen, err := a.Generate(context.Background(), Request{Variables: linkedinVars()})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if gen.Text != "Primera. Segunda frase\n\nfin" {
		t.Errorf("output not normalized: %q", gen.Text)
	}
}
