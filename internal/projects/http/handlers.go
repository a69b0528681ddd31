package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/inayah-hub/DASHBOARDS/internal/api/http/middleware"
	"github.com/inayah-hub/DASHBOARDS/internal/projects/domain"
	"github.com/inayah-hub/DASHBOARDS/internal/projects/schema"
)

func (h *Handler) list(c *gin.Context) {
	items, err := h.svc.List(c.Request.Context())
	if err != nil {
		middleware.AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

func (h *Handler) create(c *gin.Context) {
	body, err := c.GetRawData()
	if err != nil {
		middleware.AbortWithError(c, err)
		return
	}

	res := schema.ParseInsert(body)
	if !res.OK() {
		c.JSON(http.StatusBadRequest, res.Err)
		return
	}

	p, err := h.svc.Create(c.Request.Context(), res.Value)
	if err != nil {
		middleware.AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, p)
}

func (h *Handler) update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	body, err := c.GetRawData()
	if err != nil {
		middleware.AbortWithError(c, err)
		return
	}

	res := schema.ParseUpdate(body)
	if !res.OK() {
		c.JSON(http.StatusBadRequest, res.Err)
		return
	}

	p, err := h.svc.Update(c.Request.Context(), id, res.Value)
	if err != nil {
		if errors.Is(err, domain.ErrProjectNotFound) {
			c.JSON(http.StatusNotFound, middleware.ErrorResponse{Message: "Project not found"})
			return
		}
		middleware.AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

func (h *Handler) delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		middleware.AbortWithError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, errInvalidID)
		return 0, false
	}
	return id, true
}
