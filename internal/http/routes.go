package http

import (
	"github.com/gin-gonic/gin"

	"github.com/guttosm/translate-service/internal/middleware"
)

// RouteGroup defines a group of routes that can be registered.
type RouteGroup interface {
	// RegisterRoutes registers routes to the given router group.
	RegisterRoutes(rg *gin.RouterGroup, cfg *RouterConfig)
}

// TranslationRoutes registers the public translation endpoints.
type TranslationRoutes struct {
	handler *Handler
}

// RegisterRoutes implements RouteGroup.
func (r TranslationRoutes) RegisterRoutes(rg *gin.RouterGroup, _ *RouterConfig) {
	rg.POST("/translate", r.handler.TranslateText)
	rg.POST("/translate/document", r.handler.TranslateDocument)
	rg.POST("/translate/image", r.handler.TranslateImage)
	rg.GET("/languages", r.handler.Languages)
}

// ConfigRoutes registers the credentials endpoints. Writing is an admin operation.
type ConfigRoutes struct {
	handler *ConfigHandler
}

// RegisterRoutes implements RouteGroup.
func (r ConfigRoutes) RegisterRoutes(rg *gin.RouterGroup, cfg *RouterConfig) {
	rg.GET("/config", r.handler.GetConfig)
	rg.POST("/config", append(adminMiddleware(cfg), r.handler.SaveConfig)...)
}

// JobsRoutes registers the job history endpoint.
type JobsRoutes struct {
	handler *JobsHandler
}

// RegisterRoutes implements RouteGroup.
func (r JobsRoutes) RegisterRoutes(rg *gin.RouterGroup, cfg *RouterConfig) {
	rg.GET("/jobs", append(adminMiddleware(cfg), r.handler.ListJobs)...)
}

func adminMiddleware(cfg *RouterConfig) []gin.HandlerFunc {
	if !cfg.EnableAuth {
		return nil
	}
	return []gin.HandlerFunc{middleware.AdminAuth(cfg.APIKeys, cfg.Tokens)}
}
