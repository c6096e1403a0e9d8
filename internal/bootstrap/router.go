package bootstrap

import (
	"path/filepath"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	httpapi "github.com/career-compass/career-compass-backend/internal/api/http"
	"github.com/career-compass/career-compass-backend/internal/api/http/middleware"
	planshttp "github.com/career-compass/career-compass-backend/internal/plans/http"
)

type RouterDeps struct {
	ServiceName string
	Version     string
	StaticDir   string
	Generator   planshttp.PlanGenerator
}

func BuildRouter(dep RouterDeps) *gin.Engine {
	r := gin.Default()
	r.Use(cors.Default())

	healthHandler := httpapi.NewHealthHandler(dep.ServiceName, dep.Version)
	healthHandler.RegisterRoutes(r)

	r.StaticFile("/", filepath.Join(dep.StaticDir, "index.html"))

	plans := r.Group("/")
	plans.Use(middleware.RequestIDMiddleware())

	planHandler := planshttp.NewHandler(dep.Generator)
	planHandler.Register(plans)

	return r
}
