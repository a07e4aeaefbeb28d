package api

import (
	"github.com/gin-gonic/gin"
	"github.com/lexhaven/lexai/internal/api/accounts"
	"github.com/lexhaven/lexai/internal/api/middleware"
	"github.com/lexhaven/lexai/internal/api/portal"
	"github.com/lexhaven/lexai/internal/auth"
	"github.com/lexhaven/lexai/internal/search"
	"github.com/lexhaven/lexai/internal/service"
)

// RouterConfig holds configuration for the router
type RouterConfig struct {
	AllowOrigins []string
}

// SetupRouter sets up the Gin router
func SetupRouter(
	authService *auth.Service,
	caseService *service.CaseService,
	chatService *service.ChatService,
	requestService *service.RequestService,
	searchService *search.Service,
	cfg RouterConfig,
) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	// CORS middleware
	r.Use(middleware.CORS(cfg.AllowOrigins))

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// Auth API (public)
	accountsHandler := accounts.NewHandler(authService)
	accountsGroup := r.Group("/api/auth")
	accountsHandler.RegisterRoutes(accountsGroup)

	// Portal API (requires bearer token)
	portalHandler := portal.NewHandler(caseService, chatService, requestService, searchService)
	portalGroup := r.Group("/api")
	portalGroup.Use(middleware.Auth(authService))
	portalHandler.RegisterRoutes(portalGroup)

	return r
}
