package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/rpggio/reel/internal/domain/project"
	"github.com/rpggio/reel/internal/repository"
)

var _ repository.ProjectRepository = (*ProjectRepository)(nil)

// ProjectRepository implements repository.ProjectRepository for SQLite
type ProjectRepository struct {
	db *DB
}

// NewProjectRepository creates a new ProjectRepository
func NewProjectRepository(db *DB) *ProjectRepository {
	return &ProjectRepository{db: db}
}

var listTables = []string{"project_images", "project_techniques", "project_collaborators"}

// Replace swaps the whole catalog inside one transaction
func (r *ProjectRepository) Replace(ctx context.Context, projects []project.Project) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	for _, table := range listTables {
		if _, err := tx.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			return fmt.Errorf("failed to clear %s: %w", table, err)
		}
	}
	if _, err := tx.ExecContext(ctx, "DELETE FROM projects"); err != nil {
		return fmt.Errorf("failed to clear projects: %w", err)
	}

	insert := `
		INSERT INTO projects (
			id, position, title, category, year, short_description, description,
			thumbnail_url, is_featured, video_embed_url, duration, role
		)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`
	for i, p := range projects {
		_, err := tx.ExecContext(ctx, insert,
			p.ID,
			i,
			p.Title,
			p.Category,
			p.Year,
			p.ShortDescription,
			p.Description,
			p.ThumbnailURL,
			p.IsFeatured,
			nullString(p.VideoEmbedURL),
			nullString(p.Duration),
			nullString(p.Role),
		)
		if err != nil {
			if isUniqueViolation(err) {
				return fmt.Errorf("project %q: %w", p.ID, repository.ErrConflict)
			}
			return fmt.Errorf("failed to insert project: %w", err)
		}

		lists := map[string][]string{
			"project_images":        p.Images,
			"project_techniques":    p.Techniques,
			"project_collaborators": p.Collaborators,
		}
		for table, values := range lists {
			if err := insertList(ctx, tx, table, p.ID, values); err != nil {
				return err
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

func insertList(ctx context.Context, tx *sql.Tx, table, projectID string, values []string) error {
	column := "name"
	if table == "project_images" {
		column = "url"
	}
	query := fmt.Sprintf("INSERT INTO %s (project_id, position, %s) VALUES (?, ?, ?)", table, column)
	for i, v := range values {
		if _, err := tx.ExecContext(ctx, query, projectID, i, v); err != nil {
			return fmt.Errorf("failed to insert into %s: %w", table, err)
		}
	}
	return nil
}

const selectProject = `
	SELECT id, title, category, year, short_description, description,
		thumbnail_url, is_featured, video_embed_url, duration, role
	FROM projects
`

// List returns every project in catalog order
func (r *ProjectRepository) List(ctx context.Context) ([]project.Project, error) {
	rows, err := r.db.QueryContext(ctx, selectProject+" ORDER BY position ASC")
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}

	projects := []project.Project{}
	index := make(map[string]int)
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			rows.Close()
			return nil, fmt.Errorf("failed to scan project: %w", err)
		}
		index[p.ID] = len(projects)
		projects = append(projects, p)
	}
	if err = rows.Err(); err != nil {
		rows.Close()
		return nil, fmt.Errorf("error iterating project rows: %w", err)
	}
	rows.Close()

	err = r.loadLists(ctx, "", func(projectID, table, value string) {
		if i, ok := index[projectID]; ok {
			appendList(&projects[i], table, value)
		}
	})
	if err != nil {
		return nil, err
	}

	return projects, nil
}

// Get retrieves a project by ID
func (r *ProjectRepository) Get(ctx context.Context, id string) (*project.Project, error) {
	row := r.db.QueryRowContext(ctx, selectProject+" WHERE id = ?", id)
	p, err := scanProject(row)
	if err == sql.ErrNoRows {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get project: %w", err)
	}

	err = r.loadLists(ctx, id, func(_, table, value string) {
		appendList(&p, table, value)
	})
	if err != nil {
		return nil, err
	}

	return &p, nil
}

// loadLists streams list rows ordered by position. An empty projectID
// loads rows for every project.
func (r *ProjectRepository) loadLists(ctx context.Context, projectID string, add func(projectID, table, value string)) error {
	for _, table := range listTables {
		column := "name"
		if table == "project_images" {
			column = "url"
		}
		query := fmt.Sprintf("SELECT project_id, %s FROM %s", column, table)
		var args []any
		if projectID != "" {
			query += " WHERE project_id = ?"
			args = append(args, projectID)
		}
		query += " ORDER BY project_id, position"

		rows, err := r.db.QueryContext(ctx, query, args...)
		if err != nil {
			return fmt.Errorf("failed to load %s: %w", table, err)
		}
		for rows.Next() {
			var owner, value string
			if err := rows.Scan(&owner, &value); err != nil {
				rows.Close()
				return fmt.Errorf("failed to scan %s: %w", table, err)
			}
			add(owner, table, value)
		}
		if err := rows.Err(); err != nil {
			rows.Close()
			return fmt.Errorf("error iterating %s rows: %w", table, err)
		}
		rows.Close()
	}
	return nil
}

func appendList(p *project.Project, table, value string) {
	switch table {
	case "project_images":
		p.Images = append(p.Images, value)
	case "project_techniques":
		p.Techniques = append(p.Techniques, value)
	case "project_collaborators":
		p.Collaborators = append(p.Collaborators, value)
	}
}

type scanner interface {
	Scan(dest ...any) error
}

func scanProject(s scanner) (project.Project, error) {
	var p project.Project
	var video, duration, role sql.NullString
	err := s.Scan(
		&p.ID,
		&p.Title,
		&p.Category,
		&p.Year,
		&p.ShortDescription,
		&p.Description,
		&p.ThumbnailURL,
		&p.IsFeatured,
		&video,
		&duration,
		&role,
	)
	if err != nil {
		return project.Project{}, err
	}
	p.VideoEmbedURL = video.String
	p.Duration = duration.String
	p.Role = role.String
	return p, nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
