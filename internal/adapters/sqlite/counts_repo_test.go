package sqlite_test

import (
	"context"
	"database/sql"
	"testing"

	"github.com/example/bpos/internal/adapters/sqlite"
)

func setupCountsTestDB(t *testing.T) *sql.DB {
	t.Helper()
	testDB := setupTestDB(t)
	seedApp(t, testDB, "app-001", "Test App")
	seedProject(t, testDB, "proj-001", "app-001", "Counted", "planning")
	seedProject(t, testDB, "proj-002", "app-001", "Other", "planning")
	return testDB
}

func TestCountsRepository_CountArtifactsByType(t *testing.T) {
	db := setupCountsTestDB(t)
	repo := sqlite.NewCountsRepository(db)
	ctx := context.Background()
	seedArtifact(t, db, "art-001", "proj-001", "prd")
	seedArtifact(t, db, "art-002", "proj-001", "technical_spec")
	seedArtifact(t, db, "art-003", "proj-002", "prd")

	n, err := repo.CountArtifactsByType(ctx, "proj-001", "prd")
	if err != nil {
		t.Fatalf("CountArtifactsByType failed: %v", err)
	}
	if n != 1 {
		t.Errorf("expected 1 prd artifact for proj-001, got %d", n)
	}
}

func TestCountsRepository_CountTopicsByStatus(t *testing.T) {
	db := setupCountsTestDB(t)
	repo := sqlite.NewCountsRepository(db)
	ctx := context.Background()
	seedTopic(t, db, "topic-001", "proj-001", "resolved")
	seedTopic(t, db, "topic-002", "proj-001", "resolved")
	seedTopic(t, db, "topic-003", "proj-001", "open")
	seedTopic(t, db, "topic-004", "proj-002", "resolved")

	n, err := repo.CountTopicsByStatus(ctx, "proj-001", "resolved")
	if err != nil {
		t.Fatalf("CountTopicsByStatus failed: %v", err)
	}
	if n != 2 {
		t.Errorf("expected 2 resolved topics for proj-001, got %d", n)
	}
}

func TestCountsRepository_CountADRsByStatuses(t *testing.T) {
	db := setupCountsTestDB(t)
	repo := sqlite.NewCountsRepository(db)
	ctx := context.Background()
	for _, row := range []struct{ id, status string }{
		{"adr-001", "accepted"},
		{"adr-002", "locked"},
		{"adr-003", "draft"},
	} {
		_, err := db.Exec("INSERT INTO adrs (id, project_id, title, context, decision, status) VALUES (?, 'proj-001', 'T', 'C', 'D', ?)", row.id, row.status)
		if err != nil {
			t.Fatalf("failed to seed adr: %v", err)
		}
	}

	n, err := repo.CountADRsByStatuses(ctx, "proj-001", []string{"accepted", "locked"})
	if err != nil {
		t.Fatalf("CountADRsByStatuses failed: %v", err)
	}
	if n != 2 {
		t.Errorf("expected 2 accepted/locked ADRs, got %d", n)
	}

	n, err = repo.CountADRsByStatuses(ctx, "proj-001", nil)
	if err != nil {
		t.Fatalf("empty status list failed: %v", err)
	}
	if n != 0 {
		t.Errorf("expected 0 for empty status list, got %d", n)
	}
}

func TestCountsRepository_CountTasksByStatus(t *testing.T) {
	db := setupCountsTestDB(t)
	repo := sqlite.NewCountsRepository(db)
	ctx := context.Background()
	seedTask(t, db, "task-001", "proj-001", "done")
	seedTask(t, db, "task-002", "proj-001", "in_progress")

	n, err := repo.CountTasksByStatus(ctx, "proj-001", "done")
	if err != nil {
		t.Fatalf("CountTasksByStatus failed: %v", err)
	}
	if n != 1 {
		t.Errorf("expected 1 done task, got %d", n)
	}
}

func TestCountsRepository_CountTestsByStatus(t *testing.T) {
	db := setupCountsTestDB(t)
	repo := sqlite.NewCountsRepository(db)
	ctx := context.Background()
	for _, row := range []struct{ id, status string }{
		{"test-001", "passed"},
		{"test-002", "failed"},
		{"test-003", "pending"},
	} {
		_, err := db.Exec("INSERT INTO tests (id, project_id, test_type, title, status) VALUES (?, 'proj-001', 'unit', 'T', ?)", row.id, row.status)
		if err != nil {
			t.Fatalf("failed to seed test record: %v", err)
		}
	}

	n, err := repo.CountTestsByStatus(ctx, "proj-001", "passed")
	if err != nil {
		t.Fatalf("CountTestsByStatus failed: %v", err)
	}
	if n != 1 {
		t.Errorf("expected 1 passed test, got %d", n)
	}
}
