package sqlite

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

// NewTestDB creates a new in-memory SQLite database for testing
func NewTestDB(t *testing.T) *DB {
	t.Helper()

	db, err := New(":memory:")
	require.NoError(t, err, "failed to create test database")

	err = db.RunMigrations()
	require.NoError(t, err, "failed to run migrations")

	t.Cleanup(func() {
		db.Close()
	})

	return db
}

// TestMigrations verifies that migrations run successfully
func TestMigrations(t *testing.T) {
	db := NewTestDB(t)

	tables := []string{
		"projects",
		"project_images",
		"project_techniques",
		"project_collaborators",
	}

	for _, table := range tables {
		var count int
		err := db.QueryRow("SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name=?", table).Scan(&count)
		require.NoError(t, err, "failed to query table %s", table)
		require.Equal(t, 1, count, "table %s not found", table)
	}
}

func TestMigrationsRerun(t *testing.T) {
	db := NewTestDB(t)
	require.NoError(t, db.RunMigrations())
}

// TestForeignKeys verifies that foreign key constraints are enabled
func TestForeignKeys(t *testing.T) {
	db := NewTestDB(t)

	var enabled int
	err := db.QueryRow("PRAGMA foreign_keys").Scan(&enabled)
	require.NoError(t, err)
	require.Equal(t, 1, enabled, "foreign keys not enabled")
}

func TestProjectChildTables(t *testing.T) {
	db := NewTestDB(t)
	ctx := context.Background()

	_, err := db.ExecContext(ctx,
		`INSERT INTO projects (id, position, title, category, year, short_description, description, thumbnail_url, is_featured)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		"1", 0, "Urban Solitude", "Short Film", 2023, "Short", "Long", "thumb.jpg", true)
	require.NoError(t, err)

	_, err = db.ExecContext(ctx,
		`INSERT INTO project_images (project_id, position, url) VALUES (?, ?, ?)`,
		"1", 0, "a.jpg")
	require.NoError(t, err)

	// Unknown project
	_, err = db.ExecContext(ctx,
		`INSERT INTO project_images (project_id, position, url) VALUES (?, ?, ?)`,
		"missing", 0, "b.jpg")
	require.Error(t, err, "should fail with invalid project_id")

	// Deleting the project cascades to its images
	_, err = db.ExecContext(ctx, `DELETE FROM projects WHERE id = ?`, "1")
	require.NoError(t, err)

	var count int
	err = db.QueryRowContext(ctx, `SELECT COUNT(*) FROM project_images`).Scan(&count)
	require.NoError(t, err)
	require.Equal(t, 0, count)
}
