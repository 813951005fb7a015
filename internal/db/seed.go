package db

import (
	"database/sql"
	"fmt"
	"time"
)

// SeedFixtures populates the database with development fixtures covering
// every lifecycle state and each gate's satisfying entities.
func SeedFixtures(database *sql.DB) error {
	now := time.Now().Format(time.RFC3339)

	apps := []struct{ id, name, desc string }{
		{"app-0001", "Aurora", "Customer-facing web app"},
		{"app-0002", "Backoffice", "Internal tooling"},
	}
	for _, a := range apps {
		if _, err := database.Exec(
			"INSERT INTO apps (id, name, description, created_at) VALUES (?, ?, ?, ?)",
			a.id, a.name, a.desc, now,
		); err != nil {
			return fmt.Errorf("seed apps: %w", err)
		}
	}

	projects := []struct{ id, appID, name, state string }{
		{"proj-0001", "app-0001", "Onboarding revamp", "planning"},
		{"proj-0002", "app-0001", "Billing v2", "research"},
		{"proj-0003", "app-0002", "Audit exports", "building"},
		{"proj-0004", "app-0002", "SSO rollout", "live"},
	}
	for _, p := range projects {
		if _, err := database.Exec(
			"INSERT INTO projects (id, app_id, name, current_state, created_at) VALUES (?, ?, ?, ?, ?)",
			p.id, p.appID, p.name, p.state, now,
		); err != nil {
			return fmt.Errorf("seed projects: %w", err)
		}
	}

	// One PRD so proj-0001 can clear the planning gate.
	if _, err := database.Exec(
		"INSERT INTO artifacts (id, project_id, artifact_type, title, content) VALUES (?, ?, 'prd', ?, ?)",
		"art-0001", "proj-0001", "Onboarding PRD", "Goals, scope, success metrics",
	); err != nil {
		return fmt.Errorf("seed artifacts: %w", err)
	}

	// Two resolved topics on proj-0002: one short of the research gate,
	// useful for exercising blocked advances.
	topics := []struct{ id, title, question, status string }{
		{"top-0001", "Payment provider", "Stripe or Adyen?", "resolved"},
		{"top-0002", "Proration strategy", "How do mid-cycle changes bill?", "resolved"},
		{"top-0003", "Tax handling", "Do we need a tax vendor?", "open"},
	}
	for _, tp := range topics {
		if _, err := database.Exec(
			"INSERT INTO topics (id, project_id, title, question, status) VALUES (?, ?, ?, ?, ?)",
			tp.id, "proj-0002", tp.title, tp.question, tp.status,
		); err != nil {
			return fmt.Errorf("seed topics: %w", err)
		}
	}

	if _, err := database.Exec(
		"INSERT INTO adrs (id, project_id, title, context, decision, status) VALUES (?, ?, ?, ?, ?, 'accepted')",
		"adr-0001", "proj-0003", "Export format", "Customers need machine-readable audit logs", "Use NDJSON over CSV",
	); err != nil {
		return fmt.Errorf("seed adrs: %w", err)
	}

	tasks := []struct{ id, projID, title, status string }{
		{"task-0001", "proj-0003", "Schema for export jobs", "done"},
		{"task-0002", "proj-0003", "Worker for batch export", "in_progress"},
	}
	for _, tk := range tasks {
		if _, err := database.Exec(
			"INSERT INTO tasks (id, project_id, title, status) VALUES (?, ?, ?, ?)",
			tk.id, tk.projID, tk.title, tk.status,
		); err != nil {
			return fmt.Errorf("seed tasks: %w", err)
		}
	}

	if _, err := database.Exec(
		"INSERT INTO tests (id, project_id, test_type, title, status) VALUES (?, ?, 'integration', ?, 'pending')",
		"test-0001", "proj-0003", "Export job end to end",
	); err != nil {
		return fmt.Errorf("seed tests: %w", err)
	}

	if _, err := database.Exec(
		"INSERT INTO risks (id, project_id, title, level, mitigation) VALUES (?, ?, ?, 'high', ?)",
		"risk-0001", "proj-0004", "IdP outage locks out all users", "Cache sessions, keep break-glass admin",
	); err != nil {
		return fmt.Errorf("seed risks: %w", err)
	}

	return nil
}
