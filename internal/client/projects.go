package client

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/inayah-hub/DASHBOARDS/internal/projects/domain"
	"github.com/inayah-hub/DASHBOARDS/internal/projects/schema"
)

// ProjectsKey is the cache key of the project list.
const ProjectsKey = "/api/projects"

type CreateProjectRequest struct {
	ClientName string `json:"clientName"`
	ProjectNo  string `json:"projectNo"`
	Media      string `json:"media"`
	Status     string `json:"status,omitempty"`
}

type UpdateProjectRequest struct {
	ClientName *string `json:"clientName,omitempty"`
	ProjectNo  *string `json:"projectNo,omitempty"`
	Media      *string `json:"media,omitempty"`
	Status     *string `json:"status,omitempty"`
}

type Projects struct {
	c *Client
}

// List returns all projects, from the cache when possible.
func (p *Projects) List(ctx context.Context) ([]domain.Project, error) {
	v, err := p.c.Cache.Fetch(ctx, ProjectsKey, p.fetchList)
	if err != nil {
		return nil, err
	}
	return v.([]domain.Project), nil
}

func (p *Projects) fetchList(ctx context.Context) (any, error) {
	const failed = "Failed to fetch projects"

	resp, err := p.c.do(ctx, http.MethodGet, ProjectsKey, nil)
	if err != nil {
		return nil, &APIError{Message: failed, Err: err}
	}
	if !resp.ok() {
		return nil, &APIError{Status: resp.status, Message: failed}
	}

	var projects []domain.Project
	if err := resp.decode(&projects); err != nil {
		return nil, &APIError{Status: resp.status, Message: failed, Err: err}
	}
	for i := range projects {
		if err := checkProject(projects[i]); err != nil {
			return nil, &APIError{Status: resp.status, Message: failed, Err: err}
		}
	}
	if projects == nil {
		projects = []domain.Project{}
	}
	return projects, nil
}

// Create adds a project. A rejected input comes back with the server's
// message and the offending field.
func (p *Projects) Create(ctx context.Context, in CreateProjectRequest) (*domain.Project, error) {
	const failed = "Failed to create project"

	resp, err := p.c.do(ctx, http.MethodPost, ProjectsKey, in)
	if err != nil {
		return nil, &APIError{Message: failed, Err: err}
	}
	if !resp.ok() {
		if eb, ok := resp.errorBody(); ok && resp.status == http.StatusBadRequest {
			return nil, &APIError{Status: resp.status, Message: eb.Message, Field: eb.Field}
		}
		return nil, &APIError{Status: resp.status, Message: failed}
	}

	project, err := decodeProject(resp)
	if err != nil {
		return nil, &APIError{Status: resp.status, Message: failed, Err: err}
	}
	p.c.Cache.Invalidate(ProjectsKey)
	return project, nil
}

// Update applies a partial update to project id.
func (p *Projects) Update(ctx context.Context, id int64, in UpdateProjectRequest) (*domain.Project, error) {
	const failed = "Failed to update project"

	resp, err := p.c.do(ctx, http.MethodPut, projectPath(id), in)
	if err != nil {
		return nil, &APIError{Message: failed, Err: err}
	}
	if !resp.ok() {
		return nil, &APIError{Status: resp.status, Message: failed}
	}

	project, err := decodeProject(resp)
	if err != nil {
		return nil, &APIError{Status: resp.status, Message: failed, Err: err}
	}
	p.c.Cache.Invalidate(ProjectsKey)
	return project, nil
}

// Delete removes project id. Deleting an unknown id succeeds.
func (p *Projects) Delete(ctx context.Context, id int64) error {
	const failed = "Failed to delete project"

	resp, err := p.c.do(ctx, http.MethodDelete, projectPath(id), nil)
	if err != nil {
		return &APIError{Message: failed, Err: err}
	}
	if !resp.ok() {
		return &APIError{Status: resp.status, Message: failed}
	}
	p.c.Cache.Invalidate(ProjectsKey)
	return nil
}

func projectPath(id int64) string {
	return ProjectsKey + "/" + strconv.FormatInt(id, 10)
}

func decodeProject(resp *response) (*domain.Project, error) {
	var project domain.Project
	if err := resp.decode(&project); err != nil {
		return nil, err
	}
	if err := checkProject(project); err != nil {
		return nil, err
	}
	return &project, nil
}

func checkProject(p domain.Project) error {
	if fe := schema.ValidateProject(p); fe != nil {
		return fmt.Errorf("invalid project in response: %w", fe)
	}
	return nil
}

// IsNotFound reports whether err is a 404 from the API.
func IsNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Status == http.StatusNotFound
}
