package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/inayah-hub/DASHBOARDS/internal/projects/domain"
)

// Querier is the part of *pgxpool.Pool the repository uses.
type Querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

// PostgresRepository stores projects in PostgreSQL through a pgx pool.
type PostgresRepository struct {
	db Querier
}

func NewPostgresRepository(db Querier) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) List(ctx context.Context) ([]domain.Project, error) {
	const q = `
select id, client_name, project_no, media, status, created_at
from projects
order by id;
`
	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	defer rows.Close()

	out := make([]domain.Project, 0, 16)
	for rows.Next() {
		var p domain.Project
		if err := rows.Scan(&p.ID, &p.ClientName, &p.ProjectNo, &p.Media, &p.Status, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan project: %w", err)
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	return out, nil
}

func (r *PostgresRepository) Create(ctx context.Context, in domain.NewProject) (*domain.Project, error) {
	const q = `
insert into projects (client_name, project_no, media, status, created_at)
values ($1, $2, $3, $4, $5)
returning id, client_name, project_no, media, status, created_at;
`
	var p domain.Project
	err := r.db.QueryRow(ctx, q, in.ClientName, in.ProjectNo, in.Media, statusOrDefault(in.Status), now()).
		Scan(&p.ID, &p.ClientName, &p.ProjectNo, &p.Media, &p.Status, &p.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("create project: %w", err)
	}
	return &p, nil
}

func (r *PostgresRepository) Update(ctx context.Context, id int64, patch domain.ProjectPatch) (*domain.Project, error) {
	const q = `
update projects
set client_name = coalesce($2, client_name),
    project_no  = coalesce($3, project_no),
    media       = coalesce($4, media),
    status      = coalesce($5, status)
where id = $1
returning id, client_name, project_no, media, status, created_at;
`
	var p domain.Project
	err := r.db.QueryRow(ctx, q, id, patch.ClientName, patch.ProjectNo, patch.Media, patch.Status).
		Scan(&p.ID, &p.ClientName, &p.ProjectNo, &p.Media, &p.Status, &p.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrProjectNotFound
		}
		return nil, fmt.Errorf("update project %d: %w", id, err)
	}
	return &p, nil
}

func (r *PostgresRepository) Delete(ctx context.Context, id int64) error {
	if _, err := r.db.Exec(ctx, `delete from projects where id = $1;`, id); err != nil {
		return fmt.Errorf("delete project %d: %w", id, err)
	}
	return nil
}
