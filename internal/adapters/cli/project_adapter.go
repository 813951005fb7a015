// Package cli provides thin CLI adapters that translate between CLI concerns
// and application services. Adapters handle output formatting but delegate
// all business logic to services.
package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/example/bpos/internal/ports/primary"
)

// ProjectAdapter is a thin adapter that translates CLI operations to
// ProjectService calls. It depends only on the service interface, enabling
// easy testing with mocks.
type ProjectAdapter struct {
	service primary.ProjectService
	out     io.Writer
}

// NewProjectAdapter creates a new ProjectAdapter with the given service.
func NewProjectAdapter(service primary.ProjectService, out io.Writer) *ProjectAdapter {
	return &ProjectAdapter{
		service: service,
		out:     out,
	}
}

// Create creates a new project under an app.
func (a *ProjectAdapter) Create(ctx context.Context, appID, name, description string) error {
	project, err := a.service.CreateProject(ctx, primary.CreateProjectRequest{
		AppID:       appID,
		Name:        name,
		Description: description,
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "✓ Created project %s: %s (%s)\n", project.ID, project.Name, project.CurrentState)
	return nil
}

// List lists projects with optional app and state filters.
func (a *ProjectAdapter) List(ctx context.Context, appID, stateFilter string) error {
	projects, err := a.service.ListProjects(ctx, primary.ProjectFilters{
		AppID: appID,
		State: stateFilter,
	})
	if err != nil {
		return fmt.Errorf("failed to list projects: %w", err)
	}

	if len(projects) == 0 {
		fmt.Fprintln(a.out, "No projects found")
		return nil
	}

	fmt.Fprintf(a.out, "\n%-38s %-18s %s\n", "ID", "STATE", "NAME")
	fmt.Fprintln(a.out, "────────────────────────────────────────────────────────────────────────")
	for _, p := range projects {
		fmt.Fprintf(a.out, "%-38s %-18s %s\n", p.ID, stateSprint(p.CurrentState), p.Name)
	}
	fmt.Fprintln(a.out)

	return nil
}

// Show displays details for a single project.
func (a *ProjectAdapter) Show(ctx context.Context, projectID string) (*primary.Project, error) {
	project, err := a.service.GetProject(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to get project: %w", err)
	}

	fmt.Fprintf(a.out, "\nProject: %s\n", project.ID)
	fmt.Fprintf(a.out, "Name:    %s\n", project.Name)
	fmt.Fprintf(a.out, "App:     %s\n", project.AppID)
	fmt.Fprintf(a.out, "State:   %s\n", stateSprint(project.CurrentState))
	if project.Description != "" {
		fmt.Fprintf(a.out, "Description: %s\n", project.Description)
	}
	fmt.Fprintf(a.out, "Created: %s\n", project.CreatedAt)
	fmt.Fprintln(a.out)

	return project, nil
}

// Update updates a project's name and/or description.
func (a *ProjectAdapter) Update(ctx context.Context, projectID, name, description string) error {
	if name == "" && description == "" {
		return fmt.Errorf("must specify at least --name or --description")
	}

	_, err := a.service.UpdateProject(ctx, primary.UpdateProjectRequest{
		ProjectID:   projectID,
		Name:        name,
		Description: description,
	})
	if err != nil {
		return fmt.Errorf("failed to update project: %w", err)
	}

	fmt.Fprintf(a.out, "✓ Project %s updated\n", projectID)
	return nil
}

// Delete removes a project and its dependent entities.
func (a *ProjectAdapter) Delete(ctx context.Context, projectID string) error {
	if err := a.service.DeleteProject(ctx, projectID); err != nil {
		return fmt.Errorf("failed to delete project: %w", err)
	}

	fmt.Fprintf(a.out, "✓ Deleted project %s\n", projectID)
	return nil
}

// Stats prints the dependent-entity counts for a project.
func (a *ProjectAdapter) Stats(ctx context.Context, projectID string) error {
	stats, err := a.service.GetStats(ctx, projectID)
	if err != nil {
		return fmt.Errorf("failed to get project stats: %w", err)
	}

	fmt.Fprintf(a.out, "\nStats for project %s\n", stats.ProjectID)
	fmt.Fprintln(a.out, "────────────────────────────────")
	fmt.Fprintf(a.out, "Artifacts: %d\n", stats.ArtifactCount)
	fmt.Fprintf(a.out, "Topics:    %d (%d resolved)\n", stats.TopicCount, stats.ResolvedTopicCount)
	fmt.Fprintf(a.out, "ADRs:      %d (%d accepted)\n", stats.ADRCount, stats.AcceptedADRCount)
	fmt.Fprintf(a.out, "Tasks:     %d (%d done)\n", stats.TaskCount, stats.DoneTaskCount)
	fmt.Fprintf(a.out, "Tests:     %d (%d passed)\n", stats.TestCount, stats.PassedTestCount)
	fmt.Fprintf(a.out, "Risks:     %d (%d high or critical)\n", stats.RiskCount, stats.HighRiskCount)
	fmt.Fprintln(a.out)

	return nil
}
