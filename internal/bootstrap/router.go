package bootstrap

import (
	"net/http"
	"slices"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	apihttp "github.com/inayah-hub/DASHBOARDS/internal/api/http"
	"github.com/inayah-hub/DASHBOARDS/internal/api/http/middleware"
	"github.com/inayah-hub/DASHBOARDS/internal/dashboard"
	projectshttp "github.com/inayah-hub/DASHBOARDS/internal/projects/http"
	"github.com/inayah-hub/DASHBOARDS/internal/projects/service"
)

type RouterDeps struct {
	ServiceName string
	Version     string
	CORSOrigins []string
	Logger      *zap.Logger
	Projects    *service.ProjectService
	Ping        apihttp.PingFunc
	// Registry receives the HTTP metrics and is served on /metrics.
	Registry *prometheus.Registry
}

func BuildRouter(dep RouterDeps) *gin.Engine {
	r := gin.New()
	r.HandleMethodNotAllowed = true

	r.Use(gin.Recovery())
	r.Use(middleware.RequestID(dep.Logger))
	if dep.Registry != nil {
		r.Use(middleware.NewHTTPMetrics(dep.Registry).Middleware())
		r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(dep.Registry, promhttp.HandlerOpts{})))
	}
	r.Use(corsMiddleware(dep.CORSOrigins))
	r.Use(middleware.Errors(dep.Logger))

	healthHandler := apihttp.NewHealthHandler(dep.ServiceName, dep.Version, dep.Ping)
	healthHandler.RegisterRoutes(r)

	api := r.Group("/api")

	projectshttp.New(dep.Projects).Register(api.Group("/projects"))
	dashboard.NewHandler(dep.Projects).Register(api.Group("/dashboard"))

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, middleware.ErrorResponse{Message: "Not Found"})
	})

	return r
}

func corsMiddleware(origins []string) gin.HandlerFunc {
	cfg := cors.Config{
		AllowMethods:  []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", middleware.RequestIDHeader},
		ExposeHeaders: []string{middleware.RequestIDHeader},
		MaxAge:        12 * time.Hour,
	}
	if len(origins) == 0 || slices.Contains(origins, "*") {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = origins
	}
	return cors.New(cfg)
}
