package handlers

import (
	"portfolio_backend/internal/blob"
	"portfolio_backend/internal/logger"
	"portfolio_backend/internal/service"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Handler wires the HTTP layer to services, blob storage and logging.
// The blob store sits here because uploads happen during request handling,
// before any business logic runs. The services only ever see URLs.
type Handler struct {
	services   *service.Service
	blobs      blob.Store
	uploadsDir string // served statically under /uploads
	log        *logger.Logger
}

// NewHandler constructs a new HTTP handler with dependencies.
func NewHandler(services *service.Service, blobs blob.Store, uploadsDir string, log *logger.Logger) *Handler {
	return &Handler{services: services, blobs: blobs, uploadsDir: uploadsDir, log: log}
}

// InitRoutes builds and returns the Gin router with all routes registered.
func (h *Handler) InitRoutes() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(h.requestLogger)

	// The admin panel and the public site run on their own origins.
	router.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:    []string{"Origin", "Content-Type", "Authorization"},
	}))

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health endpoints
	router.GET("/", h.health)
	router.GET("/health", h.health)

	// Stored images
	if h.uploadsDir != "" {
		router.Static("/uploads", h.uploadsDir)
	}

	h.registerAPIRoutes(router)

	// Live project feed for the admin panel (HTTP upgrade, same port)
	router.GET("/ws", h.authMiddleware, h.wsConnect)

	return router
}

func (h *Handler) registerAPIRoutes(r *gin.Engine) {
	api := r.Group("/api")
	{
		api.POST("/login", h.login)

		projects := api.Group("/projects")
		{
			projects.GET("", h.listProjects)
			projects.POST("", h.createProject)
			projects.PUT("/:id", h.updateProject)
			projects.DELETE("/:id", h.deleteProject)
		}
	}
}
