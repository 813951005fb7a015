// Package sqlite_test contains integration tests for SQLite repositories.
//
// # Schema Protection
//
// This file is the SINGLE POINT where the database schema is loaded for tests.
// All test setup functions use db.GetSchemaSQL() to ensure tests run against
// the authoritative schema, preventing drift between test and production.
//
// DO NOT hardcode CREATE TABLE statements in test files. Use setupTestDB()
// and the seed* helpers instead.
package sqlite_test

import (
	"database/sql"
	"testing"

	_ "github.com/mattn/go-sqlite3"

	"github.com/example/bpos/internal/db"
)

// setupTestDB creates an in-memory database with the authoritative schema.
// This is the single shared test database setup function for all repository tests.
// Uses db.GetSchemaSQL() to prevent test schemas from drifting.
func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	testDB, err := sql.Open("sqlite3", ":memory:")
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}

	if _, err := testDB.Exec("PRAGMA foreign_keys = ON"); err != nil {
		t.Fatalf("failed to enable foreign keys: %v", err)
	}

	// Use the authoritative schema from schema.go
	_, err = testDB.Exec(db.GetSchemaSQL())
	if err != nil {
		t.Fatalf("failed to create schema: %v", err)
	}

	t.Cleanup(func() {
		testDB.Close()
	})

	return testDB
}

// seedApp inserts a test app and returns its ID.
func seedApp(t *testing.T, db *sql.DB, id, name string) string {
	t.Helper()
	if id == "" {
		id = "app-001"
	}
	if name == "" {
		name = "Test App"
	}
	_, err := db.Exec("INSERT INTO apps (id, name) VALUES (?, ?)", id, name)
	if err != nil {
		t.Fatalf("failed to seed app: %v", err)
	}
	return id
}

// seedProject inserts a test project and returns its ID.
func seedProject(t *testing.T, db *sql.DB, id, appID, name, state string) string {
	t.Helper()
	if id == "" {
		id = "proj-001"
	}
	if appID == "" {
		appID = "app-001"
	}
	if name == "" {
		name = "Test Project"
	}
	if state == "" {
		state = "planning"
	}
	_, err := db.Exec("INSERT INTO projects (id, app_id, name, current_state) VALUES (?, ?, ?, ?)", id, appID, name, state)
	if err != nil {
		t.Fatalf("failed to seed project: %v", err)
	}
	return id
}

// seedArtifact inserts a test artifact and returns its ID.
func seedArtifact(t *testing.T, db *sql.DB, id, projectID, artifactType string) string {
	t.Helper()
	if id == "" {
		id = "art-001"
	}
	if artifactType == "" {
		artifactType = "prd"
	}
	_, err := db.Exec("INSERT INTO artifacts (id, project_id, artifact_type, title) VALUES (?, ?, ?, 'Test Artifact')", id, projectID, artifactType)
	if err != nil {
		t.Fatalf("failed to seed artifact: %v", err)
	}
	return id
}

// seedTopic inserts a test topic with the given status and returns its ID.
func seedTopic(t *testing.T, db *sql.DB, id, projectID, status string) string {
	t.Helper()
	if id == "" {
		id = "topic-001"
	}
	if status == "" {
		status = "open"
	}
	_, err := db.Exec("INSERT INTO topics (id, project_id, title, question, status) VALUES (?, ?, 'Test Topic', 'Why?', ?)", id, projectID, status)
	if err != nil {
		t.Fatalf("failed to seed topic: %v", err)
	}
	return id
}

// seedTask inserts a test task with the given status and returns its ID.
func seedTask(t *testing.T, db *sql.DB, id, projectID, status string) string {
	t.Helper()
	if id == "" {
		id = "task-001"
	}
	if status == "" {
		status = "todo"
	}
	_, err := db.Exec("INSERT INTO tasks (id, project_id, title, status) VALUES (?, ?, 'Test Task', ?)", id, projectID, status)
	if err != nil {
		t.Fatalf("failed to seed task: %v", err)
	}
	return id
}
