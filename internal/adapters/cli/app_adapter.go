package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/example/bpos/internal/ports/primary"
)

// AppAdapter is a thin adapter that translates CLI operations to
// AppService calls.
type AppAdapter struct {
	service primary.AppService
	out     io.Writer
}

// NewAppAdapter creates a new AppAdapter with the given service.
func NewAppAdapter(service primary.AppService, out io.Writer) *AppAdapter {
	return &AppAdapter{
		service: service,
		out:     out,
	}
}

// Create creates a new app.
func (a *AppAdapter) Create(ctx context.Context, name, description string) error {
	app, err := a.service.CreateApp(ctx, primary.CreateAppRequest{
		Name:        name,
		Description: description,
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "✓ Created app %s: %s\n", app.ID, app.Name)
	return nil
}

// List lists all apps.
func (a *AppAdapter) List(ctx context.Context) error {
	apps, err := a.service.ListApps(ctx)
	if err != nil {
		return fmt.Errorf("failed to list apps: %w", err)
	}

	if len(apps) == 0 {
		fmt.Fprintln(a.out, "No apps found")
		return nil
	}

	fmt.Fprintf(a.out, "\n%-38s %s\n", "ID", "NAME")
	fmt.Fprintln(a.out, "────────────────────────────────────────────────────────")
	for _, app := range apps {
		fmt.Fprintf(a.out, "%-38s %s\n", app.ID, app.Name)
	}
	fmt.Fprintln(a.out)

	return nil
}

// Show displays details for a single app.
func (a *AppAdapter) Show(ctx context.Context, appID string) error {
	app, err := a.service.GetApp(ctx, appID)
	if err != nil {
		return fmt.Errorf("failed to get app: %w", err)
	}

	fmt.Fprintf(a.out, "\nApp:     %s\n", app.ID)
	fmt.Fprintf(a.out, "Name:    %s\n", app.Name)
	if app.Description != "" {
		fmt.Fprintf(a.out, "Description: %s\n", app.Description)
	}
	fmt.Fprintf(a.out, "Created: %s\n", app.CreatedAt)
	fmt.Fprintln(a.out)

	return nil
}

// Update updates an app's name and/or description.
func (a *AppAdapter) Update(ctx context.Context, appID, name, description string) error {
	if name == "" && description == "" {
		return fmt.Errorf("must specify at least --name or --description")
	}

	_, err := a.service.UpdateApp(ctx, primary.UpdateAppRequest{
		AppID:       appID,
		Name:        name,
		Description: description,
	})
	if err != nil {
		return fmt.Errorf("failed to update app: %w", err)
	}

	fmt.Fprintf(a.out, "✓ App %s updated\n", appID)
	return nil
}

// Delete removes an app and all of its projects.
func (a *AppAdapter) Delete(ctx context.Context, appID string) error {
	if err := a.service.DeleteApp(ctx, appID); err != nil {
		return fmt.Errorf("failed to delete app: %w", err)
	}

	fmt.Fprintf(a.out, "✓ Deleted app %s\n", appID)
	return nil
}
