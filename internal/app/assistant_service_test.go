package app

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/example/bpos/internal/ports/primary"
	"github.com/example/bpos/internal/ports/secondary"
)

func newAssistantFixture(generator *mockGenerator) (*AssistantServiceImpl, *mockProjectRepository, *mockArtifactRepository, *mockADRRepository) {
	projectRepo := newMockProjectRepository()
	artifactRepo := newMockArtifactRepository()
	adrRepo := newMockADRRepository()
	seedMockProject(projectRepo, "proj-1", "planning")
	return NewAssistantService(generator, projectRepo, artifactRepo, adrRepo), projectRepo, artifactRepo, adrRepo
}

func TestAssistantService_Draft(t *testing.T) {
	generator := &mockGenerator{response: "# PRD\n..."}
	svc, _, _, _ := newAssistantFixture(generator)

	resp, err := svc.Draft(context.Background(), primary.DraftRequest{
		Action:    "draft_prd",
		ProjectID: "proj-1",
		Prompt:    "Draft a PRD for the checkout revamp",
		Context:   "mobile-first",
	})
	if err != nil {
		t.Fatalf("Draft failed: %v", err)
	}
	if resp.Text != "# PRD\n..." {
		t.Errorf("expected generated text passed through, got %q", resp.Text)
	}

	if !strings.Contains(generator.lastSystem, "product manager") {
		t.Errorf("expected draft_prd system prompt, got %q", generator.lastSystem)
	}
	// Project name, state and caller context are folded into the prompt.
	for _, want := range []string{"Test Project", "planning", "mobile-first", "checkout revamp"} {
		if !strings.Contains(generator.lastPrompt, want) {
			t.Errorf("expected prompt to contain %q, got %q", want, generator.lastPrompt)
		}
	}
}

func TestAssistantService_Draft_IncludesInventory(t *testing.T) {
	generator := &mockGenerator{response: "ok"}
	svc, _, artifactRepo, adrRepo := newAssistantFixture(generator)

	artifactRepo.artifacts["art-1"] = &secondary.ArtifactRecord{
		ID: "art-1", ProjectID: "proj-1", ArtifactType: "prd", Title: "Checkout PRD",
	}
	adrRepo.adrs["adr-1"] = &secondary.ADRRecord{
		ID: "adr-1", ProjectID: "proj-1", Title: "Use event sourcing", Status: "accepted",
	}

	_, err := svc.Draft(context.Background(), primary.DraftRequest{
		Action:    "draft_adr",
		ProjectID: "proj-1",
		Prompt:    "Draft an ADR about the payment provider",
	})
	if err != nil {
		t.Fatalf("Draft failed: %v", err)
	}

	if !strings.Contains(generator.lastPrompt, "prd: Checkout PRD") {
		t.Errorf("expected artifact inventory in prompt, got %q", generator.lastPrompt)
	}
	if !strings.Contains(generator.lastPrompt, "Use event sourcing (accepted)") {
		t.Errorf("expected ADR inventory in prompt, got %q", generator.lastPrompt)
	}
}

func TestAssistantService_Draft_UnknownAction(t *testing.T) {
	svc, _, _, _ := newAssistantFixture(&mockGenerator{})

	_, err := svc.Draft(context.Background(), primary.DraftRequest{
		Action:    "write_poem",
		ProjectID: "proj-1",
		Prompt:    "x",
	})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestAssistantService_Draft_GeneratorError(t *testing.T) {
	svc, _, _, _ := newAssistantFixture(&mockGenerator{err: errors.New("upstream timeout")})

	_, err := svc.Draft(context.Background(), primary.DraftRequest{
		Action:    "suggest_topics",
		ProjectID: "proj-1",
		Prompt:    "x",
	})
	if err == nil {
		t.Fatal("expected error from failing generator")
	}
}
