package http

import (
	"github.com/inayah-hub/DASHBOARDS/internal/projects/schema"
	"github.com/inayah-hub/DASHBOARDS/internal/projects/service"
)

// Handler bundles the dependencies for projects HTTP endpoints.
type Handler struct {
	svc *service.ProjectService
}

func New(svc *service.ProjectService) *Handler {
	return &Handler{svc: svc}
}

var errInvalidID = &schema.FieldError{Field: "id", Message: "Invalid project id"}
