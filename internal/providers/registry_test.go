package providers

import (
	"context"
	"testing"
)

func TestRegistryRegisterGet(t *testing.T) {
	r := NewRegistry()
	mock := NewMockClient()
	r.Register("mock", mock)

	got, err := r.Get("mock")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got != mock {
		t.Error("Get returned a different client")
	}
	if !r.Has("mock") {
		t.Error("Has should report registered client")
	}
	if _, err := r.Get("missing"); err == nil {
		t.Error("Get on missing client must error")
	}
}

func TestRegistryFromConfig(t *testing.T) {
	cfg := RegistryConfig{ChatProviders: map[string]ChatProviderConfig{
		"openai":   {Type: "openai", Model: "gpt-4", APIKey: "sk-test", Enabled: true},
		"disabled": {Type: "openai", APIKey: "sk-test", Enabled: false},
		"nokey":    {Type: "openai", Enabled: true},
	}}
	r := NewRegistryFromConfig(cfg)
	if !r.Has("openai") {
		t.Error("enabled provider with key must be registered")
	}
	if r.Has("disabled") || r.Has("nokey") {
		t.Error("disabled or keyless providers must not be registered")
	}
}

func TestRegistryReload(t *testing.T) {
	r := NewRegistryFromConfig(RegistryConfig{ChatProviders: map[string]ChatProviderConfig{
		"openai": {Type: "openai", Model: "gpt-4", APIKey: "sk-a", Enabled: true},
	}})

	r.Reload(RegistryConfig{ChatProviders: map[string]ChatProviderConfig{
		"mock": {Type: "mock", Enabled: true, APIKey: "x"},
	}})

	if r.Has("openai") {
		t.Error("removed provider must be unregistered on reload")
	}
	if !r.Has("mock") {
		t.Error("new provider must be registered on reload")
	}
}

func TestMockClientRecordsRequests(t *testing.T) {
	c := NewMockClient()
	c.ResponseText = "hola"

	res, err := c.Invoke(context.Background(), &ChatRequest{
		SystemPrompt: "sys",
		UserPrompt:   "user",
		Model:        "gpt-4",
		Temperature:  0.7,
	})
	if err != nil {
		t.Fatalf("Invoke: %v", err)
	}
	if res.Content != "hola" {
		t.Errorf("content = %q", res.Content)
	}
	last := c.LastRequest()
	if last == nil || last.SystemPrompt != "sys" || last.Model != "gpt-4" {
		t.Errorf("request not recorded: %+v", last)
	}
}

func TestMockClientFailure(t *testing.T) {
	c := NewMockClient()
	c.ShouldFail = true
	if _, err := c.Invoke(context.Background(), &ChatRequest{}); err == nil {
		t.Fatal("want error from failing mock")
	}
}
