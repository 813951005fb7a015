package app

import (
	"context"
	"fmt"
	"strings"

	"github.com/example/bpos/internal/ports/primary"
	"github.com/example/bpos/internal/ports/secondary"
)

// System prompts per assistant action. The project's name, lifecycle state,
// existing artifacts/ADRs and caller-supplied context are folded into the
// user prompt.
var assistantPrompts = map[string]string{
	"draft_prd":      "You are a product manager. Write a concise product requirements document in markdown with sections for problem, goals, non-goals, user stories and success metrics.",
	"draft_adr":      "You are a software architect. Write an architecture decision record in markdown with sections for context, decision, alternatives considered and consequences.",
	"suggest_topics": "You are a technical lead. Suggest research topics as a markdown list; for each topic give a short title and the concrete question that must be answered before decisions are locked.",
	"assess_risks":   "You are a delivery lead. Identify project risks as a markdown list; for each risk give a severity (low/medium/high/critical) and a one-line mitigation.",
}

// AssistantServiceImpl implements the AssistantService interface.
type AssistantServiceImpl struct {
	generator    secondary.TextGenerator
	projectRepo  secondary.ProjectRepository
	artifactRepo secondary.ArtifactRepository
	adrRepo      secondary.ADRRepository
}

// NewAssistantService creates a new AssistantService with injected dependencies.
func NewAssistantService(generator secondary.TextGenerator, projectRepo secondary.ProjectRepository, artifactRepo secondary.ArtifactRepository, adrRepo secondary.ADRRepository) *AssistantServiceImpl {
	return &AssistantServiceImpl{
		generator:    generator,
		projectRepo:  projectRepo,
		artifactRepo: artifactRepo,
		adrRepo:      adrRepo,
	}
}

// Draft generates text for the given action.
func (s *AssistantServiceImpl) Draft(ctx context.Context, req primary.DraftRequest) (*primary.DraftResponse, error) {
	system, ok := assistantPrompts[req.Action]
	if !ok {
		return nil, fmt.Errorf("%w: unknown assistant action %q", ErrInvalidInput, req.Action)
	}
	if strings.TrimSpace(req.Prompt) == "" {
		return nil, fmt.Errorf("%w: prompt is required", ErrInvalidInput)
	}

	project, err := s.projectRepo.GetByID(ctx, req.ProjectID)
	if err != nil {
		return nil, err
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Project: %s (lifecycle state: %s)\n", project.Name, project.CurrentState)
	if project.Description != "" {
		fmt.Fprintf(&b, "Description: %s\n", project.Description)
	}
	s.writeInventory(ctx, &b, req.ProjectID)
	if req.Context != "" {
		fmt.Fprintf(&b, "Additional context: %s\n", req.Context)
	}
	b.WriteString("\n")
	b.WriteString(req.Prompt)

	text, err := s.generator.Generate(ctx, system, b.String())
	if err != nil {
		return nil, fmt.Errorf("assistant generation failed: %w", err)
	}

	return &primary.DraftResponse{
		Action: req.Action,
		Text:   text,
	}, nil
}

// writeInventory appends the project's existing artifacts and ADRs to the
// prompt. Inventory is best-effort context; listing errors are ignored.
func (s *AssistantServiceImpl) writeInventory(ctx context.Context, b *strings.Builder, projectID string) {
	if artifacts, err := s.artifactRepo.ListByProject(ctx, projectID); err == nil && len(artifacts) > 0 {
		b.WriteString("Existing artifacts:\n")
		for _, a := range artifacts {
			fmt.Fprintf(b, "- %s: %s\n", a.ArtifactType, a.Title)
		}
	}
	if adrs, err := s.adrRepo.ListByProject(ctx, projectID); err == nil && len(adrs) > 0 {
		b.WriteString("Existing ADRs:\n")
		for _, adr := range adrs {
			fmt.Fprintf(b, "- %s (%s)\n", adr.Title, adr.Status)
		}
	}
}
