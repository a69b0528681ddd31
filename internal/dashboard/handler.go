package dashboard

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/inayah-hub/DASHBOARDS/internal/api/http/middleware"
	"github.com/inayah-hub/DASHBOARDS/internal/projects/domain"
)

// Lister is the read side of the project service.
type Lister interface {
	List(ctx context.Context) ([]domain.Project, error)
}

type Handler struct {
	projects Lister
}

func NewHandler(projects Lister) *Handler {
	return &Handler{projects: projects}
}

func (h *Handler) Register(rg *gin.RouterGroup) {
	rg.GET("/summary", h.summary)
}

func (h *Handler) summary(c *gin.Context) {
	projects, err := h.projects.List(c.Request.Context())
	if err != nil {
		middleware.AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, Summarize(projects))
}
