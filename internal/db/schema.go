package db

// SchemaSQL is the complete modern schema for fresh installs.
// This schema reflects the current state after all migrations.
//
// This is the SINGLE SOURCE OF TRUTH for the database schema. All repository
// tests load it via GetSchemaSQL(), so code that references a column missing
// here fails immediately with "no such column" at development time.
//
// When adding columns or tables:
//  1. Add a migration in migrations.go
//  2. Update SchemaSQL here
const SchemaSQL = `
-- Apps (top-level grouping; a project belongs to one app)
CREATE TABLE IF NOT EXISTS apps (
	id TEXT PRIMARY KEY,
	name TEXT NOT NULL,
	description TEXT,
	created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
	updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
);

-- Projects (the unit of work tracked through the lifecycle)
CREATE TABLE IF NOT EXISTS projects (
	id TEXT PRIMARY KEY,
	app_id TEXT NOT NULL,
	name TEXT NOT NULL,
	description TEXT,
	current_state TEXT NOT NULL CHECK(current_state IN ('planning', 'research', 'decisions_locked', 'building', 'testing', 'ready_to_ship', 'live')) DEFAULT 'planning',
	created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
	updated_at DATETIME DEFAULT CURRENT_TIMESTAMP,
	FOREIGN KEY (app_id) REFERENCES apps(id) ON DELETE CASCADE
);

CREATE INDEX IF NOT EXISTS idx_projects_app ON projects(app_id);
CREATE INDEX IF NOT EXISTS idx_projects_state ON projects(current_state);

-- Artifacts (documents attached to a project; prd artifacts gate planning -> research)
CREATE TABLE IF NOT EXISTS artifacts (
	id TEXT PRIMARY KEY,
	project_id TEXT NOT NULL,
	artifact_type TEXT NOT NULL CHECK(artifact_type IN ('prd', 'technical_spec', 'architecture_diagram', 'user_stories', 'wireframes', 'api_spec', 'other')),
	title TEXT NOT NULL,
	content TEXT,
	ai_generated INTEGER NOT NULL DEFAULT 0,
	created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
	updated_at DATETIME DEFAULT CURRENT_TIMESTAMP,
	FOREIGN KEY (project_id) REFERENCES projects(id) ON DELETE CASCADE
);

CREATE INDEX IF NOT EXISTS idx_artifacts_project ON artifacts(project_id);
CREATE INDEX IF NOT EXISTS idx_artifacts_type ON artifacts(project_id, artifact_type);

-- Research topics (resolved topics gate research -> decisions_locked)
CREATE TABLE IF NOT EXISTS topics (
	id TEXT PRIMARY KEY,
	project_id TEXT NOT NULL,
	title TEXT NOT NULL,
	question TEXT NOT NULL,
	research_notes TEXT,
	status TEXT NOT NULL CHECK(status IN ('open', 'researching', 'resolved')) DEFAULT 'open',
	resolved_at DATETIME,
	created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
	updated_at DATETIME DEFAULT CURRENT_TIMESTAMP,
	FOREIGN KEY (project_id) REFERENCES projects(id) ON DELETE CASCADE
);

CREATE INDEX IF NOT EXISTS idx_topics_project ON topics(project_id);
CREATE INDEX IF NOT EXISTS idx_topics_status ON topics(project_id, status);

-- Architecture decision records (accepted/locked ADRs gate decisions_locked -> building)
CREATE TABLE IF NOT EXISTS adrs (
	id TEXT PRIMARY KEY,
	project_id TEXT NOT NULL,
	title TEXT NOT NULL,
	context TEXT NOT NULL,
	decision TEXT NOT NULL,
	consequences TEXT,
	status TEXT NOT NULL CHECK(status IN ('draft', 'proposed', 'accepted', 'locked', 'deprecated', 'superseded')) DEFAULT 'draft',
	locked_at DATETIME,
	created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
	updated_at DATETIME DEFAULT CURRENT_TIMESTAMP,
	FOREIGN KEY (project_id) REFERENCES projects(id) ON DELETE CASCADE
);

CREATE INDEX IF NOT EXISTS idx_adrs_project ON adrs(project_id);
CREATE INDEX IF NOT EXISTS idx_adrs_status ON adrs(project_id, status);

-- Tasks (done tasks gate building -> testing)
CREATE TABLE IF NOT EXISTS tasks (
	id TEXT PRIMARY KEY,
	project_id TEXT NOT NULL,
	title TEXT NOT NULL,
	description TEXT,
	status TEXT NOT NULL CHECK(status IN ('todo', 'in_progress', 'blocked', 'done')) DEFAULT 'todo',
	depends_on_task_id TEXT,
	blocked_reason TEXT,
	assigned_to TEXT,
	created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
	updated_at DATETIME DEFAULT CURRENT_TIMESTAMP,
	FOREIGN KEY (project_id) REFERENCES projects(id) ON DELETE CASCADE,
	FOREIGN KEY (depends_on_task_id) REFERENCES tasks(id) ON DELETE SET NULL
);

CREATE INDEX IF NOT EXISTS idx_tasks_project ON tasks(project_id);
CREATE INDEX IF NOT EXISTS idx_tasks_status ON tasks(project_id, status);

-- Test records (passed tests gate testing -> ready_to_ship)
CREATE TABLE IF NOT EXISTS tests (
	id TEXT PRIMARY KEY,
	project_id TEXT NOT NULL,
	test_type TEXT NOT NULL CHECK(test_type IN ('unit', 'integration', 'e2e', 'manual')),
	title TEXT NOT NULL,
	description TEXT,
	expected_result TEXT,
	actual_result TEXT,
	status TEXT NOT NULL CHECK(status IN ('pending', 'passed', 'failed')) DEFAULT 'pending',
	executed_at DATETIME,
	created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
	updated_at DATETIME DEFAULT CURRENT_TIMESTAMP,
	FOREIGN KEY (project_id) REFERENCES projects(id) ON DELETE CASCADE
);

CREATE INDEX IF NOT EXISTS idx_tests_project ON tests(project_id);
CREATE INDEX IF NOT EXISTS idx_tests_status ON tests(project_id, status);

-- Risks (tracked per project; informational, never a gate input)
CREATE TABLE IF NOT EXISTS risks (
	id TEXT PRIMARY KEY,
	project_id TEXT NOT NULL,
	title TEXT NOT NULL,
	description TEXT,
	level TEXT NOT NULL CHECK(level IN ('low', 'medium', 'high', 'critical')) DEFAULT 'medium',
	mitigation TEXT,
	created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
	updated_at DATETIME DEFAULT CURRENT_TIMESTAMP,
	FOREIGN KEY (project_id) REFERENCES projects(id) ON DELETE CASCADE
);

CREATE INDEX IF NOT EXISTS idx_risks_project ON risks(project_id);

-- Activity log (append-only audit trail; never updated or deleted)
CREATE TABLE IF NOT EXISTS activity_log (
	id TEXT PRIMARY KEY,
	project_id TEXT NOT NULL,
	actor_id TEXT,
	event_type TEXT NOT NULL,
	entity_type TEXT NOT NULL,
	entity_id TEXT NOT NULL,
	description TEXT NOT NULL,
	previous_state TEXT,
	new_state TEXT,
	severity TEXT NOT NULL CHECK(severity IN ('info', 'warning', 'critical')) DEFAULT 'info',
	is_rollback INTEGER NOT NULL DEFAULT 0,
	rollback_reason TEXT,
	forced INTEGER NOT NULL DEFAULT 0,
	created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
	FOREIGN KEY (project_id) REFERENCES projects(id) ON DELETE CASCADE
);

CREATE INDEX IF NOT EXISTS idx_activity_project ON activity_log(project_id, created_at);

-- Passed-gate markers (historical record only; never re-read for authorization)
CREATE TABLE IF NOT EXISTS project_gates (
	id TEXT PRIMARY KEY,
	project_id TEXT NOT NULL,
	from_state TEXT NOT NULL,
	to_state TEXT NOT NULL,
	gate_passed INTEGER NOT NULL DEFAULT 0,
	passed_at DATETIME,
	UNIQUE(project_id, from_state, to_state),
	FOREIGN KEY (project_id) REFERENCES projects(id) ON DELETE CASCADE
);
`

// InitSchema creates the database schema on first open and runs any pending
// migrations on existing databases.
func InitSchema() error {
	db, err := GetDB()
	if err != nil {
		return err
	}

	var tableCount int
	err = db.QueryRow("SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name='schema_version'").Scan(&tableCount)
	if err != nil {
		return err
	}

	if tableCount == 0 {
		// Fresh install: create the modern schema directly and mark all
		// migrations as applied so they never run.
		if _, err = db.Exec(SchemaSQL); err != nil {
			return err
		}
		_, err = db.Exec(`
			CREATE TABLE IF NOT EXISTS schema_version (
				version INTEGER PRIMARY KEY,
				applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
			)
		`)
		if err != nil {
			return err
		}
		for _, m := range migrations {
			if _, err = db.Exec("INSERT INTO schema_version (version) VALUES (?)", m.Version); err != nil {
				return err
			}
		}
		return nil
	}

	return RunMigrations()
}

// GetSchemaSQL returns the authoritative schema SQL for use by tests.
// Tests should use this instead of hardcoding their own schema to prevent drift.
func GetSchemaSQL() string {
	return SchemaSQL
}
