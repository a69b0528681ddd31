package repository

import (
	"context"
	"time"

	"github.com/inayah-hub/DASHBOARDS/internal/projects/domain"
)

// Repository is the durable collection of projects.
//
// Update returns domain.ErrProjectNotFound for an unknown id. Delete of an
// unknown id is a no-op.
type Repository interface {
	List(ctx context.Context) ([]domain.Project, error)
	Create(ctx context.Context, in domain.NewProject) (*domain.Project, error)
	Update(ctx context.Context, id int64, patch domain.ProjectPatch) (*domain.Project, error)
	Delete(ctx context.Context, id int64) error
}

// now is rounded up to microseconds, the finest precision both stores keep,
// so a stored createdAt never precedes the moment the request arrived.
func now() time.Time {
	return ceilMicro(time.Now().UTC())
}

func ceilMicro(t time.Time) time.Time {
	return t.Add(time.Microsecond - 1).Truncate(time.Microsecond)
}

func statusOrDefault(status string) string {
	if status == "" {
		return domain.DefaultStatus
	}
	return status
}
