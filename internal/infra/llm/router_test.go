package llm

import (
	"context"
	"testing"
)

type providerStub struct{ id string }

func (s *providerStub) ChatCompletion(_ context.Context, _ ChatRequest) (*ChatResponse, error) {
	return &ChatResponse{Content: s.id}, nil
}
func (s *providerStub) ModelInfo() ModelMeta                { return ModelMeta{ID: s.id, Provider: "stub"} }
func (s *providerStub) HealthCheck(_ context.Context) error { return nil }

func TestRouter_Route_Default(t *testing.T) {
	r := NewRouter(map[string]Provider{
		"openai": &providerStub{id: "a"},
		"ollama": &providerStub{id: "b"},
	}, "openai")

	p, err := r.Route(context.Background())
	if err != nil {
		t.Fatalf("Route failed: %v", err)
	}
	if p.ModelInfo().ID != "a" {
		t.Errorf("expected default provider, got %q", p.ModelInfo().ID)
	}
}

func TestRouter_Route_MissingDefault(t *testing.T) {
	r := NewRouter(nil, "openai")
	if _, err := r.Route(context.Background()); err == nil {
		t.Fatal("expected error when default provider is not registered")
	}
}

func TestRouter_Register(t *testing.T) {
	r := NewRouter(nil, "openai")
	r.Register("openai", &providerStub{id: "late"})

	p, err := r.Route(context.Background())
	if err != nil {
		t.Fatalf("Route failed: %v", err)
	}
	if p.ModelInfo().ID != "late" {
		t.Errorf("expected registered provider, got %q", p.ModelInfo().ID)
	}
}
