package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/inayah-hub/DASHBOARDS/internal/projects/domain"
)

// SQLiteRepository stores projects through database/sql. It is used with the
// SQLite driver for local development and tests.
type SQLiteRepository struct {
	db *sql.DB
}

func NewSQLiteRepository(db *sql.DB) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) List(ctx context.Context) ([]domain.Project, error) {
	query := `
		SELECT id, client_name, project_no, media, status, created_at
		FROM projects
		ORDER BY id
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	defer rows.Close()

	out := make([]domain.Project, 0, 16)
	for rows.Next() {
		var p domain.Project
		if err := rows.Scan(&p.ID, &p.ClientName, &p.ProjectNo, &p.Media, &p.Status, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan project: %w", err)
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	return out, nil
}

func (r *SQLiteRepository) Create(ctx context.Context, in domain.NewProject) (*domain.Project, error) {
	query := `
		INSERT INTO projects (client_name, project_no, media, status, created_at)
		VALUES (?, ?, ?, ?, ?)
	`

	p := domain.Project{
		ClientName: in.ClientName,
		ProjectNo:  in.ProjectNo,
		Media:      in.Media,
		Status:     statusOrDefault(in.Status),
		CreatedAt:  now(),
	}

	result, err := r.db.ExecContext(ctx, query, p.ClientName, p.ProjectNo, p.Media, p.Status, p.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to create project: %w", err)
	}

	p.ID, err = result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to read project id: %w", err)
	}
	return &p, nil
}

func (r *SQLiteRepository) Update(ctx context.Context, id int64, patch domain.ProjectPatch) (*domain.Project, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin update: %w", err)
	}
	defer tx.Rollback()

	query := `
		SELECT id, client_name, project_no, media, status, created_at
		FROM projects
		WHERE id = ?
	`

	var current domain.Project
	err = tx.QueryRowContext(ctx, query, id).
		Scan(&current.ID, &current.ClientName, &current.ProjectNo, &current.Media, &current.Status, &current.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrProjectNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get project %d: %w", id, err)
	}

	if patch.IsEmpty() {
		return &current, nil
	}

	p := patch.Apply(current)
	update := `
		UPDATE projects
		SET client_name = ?, project_no = ?, media = ?, status = ?
		WHERE id = ?
	`
	if _, err := tx.ExecContext(ctx, update, p.ClientName, p.ProjectNo, p.Media, p.Status, id); err != nil {
		return nil, fmt.Errorf("failed to update project %d: %w", id, err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit update: %w", err)
	}
	return &p, nil
}

func (r *SQLiteRepository) Delete(ctx context.Context, id int64) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM projects WHERE id = ?`, id); err != nil {
		return fmt.Errorf("failed to delete project %d: %w", id, err)
	}
	return nil
}
