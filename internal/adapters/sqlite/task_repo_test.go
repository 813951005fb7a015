package sqlite_test

import (
	"context"
	"database/sql"
	"testing"

	"github.com/example/bpos/internal/adapters/sqlite"
	"github.com/example/bpos/internal/ports/secondary"
)

func setupTaskTestDB(t *testing.T) *sql.DB {
	t.Helper()
	testDB := setupTestDB(t)
	seedApp(t, testDB, "app-001", "")
	seedProject(t, testDB, "proj-001", "app-001", "", "building")
	return testDB
}

func TestTaskRepository_Create(t *testing.T) {
	db := setupTaskTestDB(t)
	repo := sqlite.NewTaskRepository(db)
	ctx := context.Background()

	task := &secondary.TaskRecord{
		ID:          "task-001",
		ProjectID:   "proj-001",
		Title:       "Wire payments webhook",
		Description: "Handle provider callbacks",
		Status:      "todo",
		AssignedTo:  "user-1",
	}
	if err := repo.Create(ctx, task); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	retrieved, err := repo.GetByID(ctx, "task-001")
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if retrieved.Status != "todo" {
		t.Errorf("expected status 'todo', got '%s'", retrieved.Status)
	}
	if retrieved.AssignedTo != "user-1" {
		t.Errorf("expected assignee 'user-1', got '%s'", retrieved.AssignedTo)
	}
}

func TestTaskRepository_Create_WithDependency(t *testing.T) {
	db := setupTaskTestDB(t)
	repo := sqlite.NewTaskRepository(db)
	ctx := context.Background()
	seedTask(t, db, "task-001", "proj-001", "in_progress")

	task := &secondary.TaskRecord{
		ID:              "task-002",
		ProjectID:       "proj-001",
		Title:           "Dependent task",
		Status:          "todo",
		DependsOnTaskID: "task-001",
	}
	if err := repo.Create(ctx, task); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	retrieved, _ := repo.GetByID(ctx, "task-002")
	if retrieved.DependsOnTaskID != "task-001" {
		t.Errorf("expected dependency 'task-001', got '%s'", retrieved.DependsOnTaskID)
	}
}

func TestTaskRepository_Delete_NullsDependent(t *testing.T) {
	db := setupTaskTestDB(t)
	repo := sqlite.NewTaskRepository(db)
	ctx := context.Background()
	seedTask(t, db, "task-001", "proj-001", "todo")
	if _, err := db.Exec("INSERT INTO tasks (id, project_id, title, status, depends_on_task_id) VALUES ('task-002', 'proj-001', 'Dep', 'todo', 'task-001')"); err != nil {
		t.Fatalf("failed to seed dependent task: %v", err)
	}

	if err := repo.Delete(ctx, "task-001"); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}

	retrieved, err := repo.GetByID(ctx, "task-002")
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if retrieved.DependsOnTaskID != "" {
		t.Errorf("expected dependency nulled after delete, got '%s'", retrieved.DependsOnTaskID)
	}
}

func TestTaskRepository_Update_BlockedReason(t *testing.T) {
	db := setupTaskTestDB(t)
	repo := sqlite.NewTaskRepository(db)
	ctx := context.Background()
	seedTask(t, db, "task-001", "proj-001", "in_progress")

	err := repo.Update(ctx, &secondary.TaskRecord{
		ID:            "task-001",
		Title:         "Test Task",
		Status:        "blocked",
		BlockedReason: "waiting on API credentials",
	})
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}

	retrieved, _ := repo.GetByID(ctx, "task-001")
	if retrieved.Status != "blocked" {
		t.Errorf("expected status 'blocked', got '%s'", retrieved.Status)
	}
	if retrieved.BlockedReason != "waiting on API credentials" {
		t.Errorf("expected blocked reason round-trip, got '%s'", retrieved.BlockedReason)
	}
}
