package handlers

import (
	"github.com/charan-271/ISS-Tracker/internal/logger"
	"github.com/charan-271/ISS-Tracker/internal/observability"
	"github.com/charan-271/ISS-Tracker/internal/service"

	"github.com/gin-gonic/gin"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Handler wires the read-only HTTP layer to services and logging.
type Handler struct {
	services *service.Service
	metrics  *observability.TrackerCollector
	log      *logger.Logger
}

// NewHandler constructs a new HTTP handler with dependencies.
func NewHandler(services *service.Service, metrics *observability.TrackerCollector, log *logger.Logger) *Handler {
	return &Handler{services: services, metrics: metrics, log: log}
}

// InitRoutes builds and returns the Gin router with all routes registered.
func (h *Handler) InitRoutes() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health endpoint
	router.GET("/health", h.health)

	// Prometheus scrape endpoint
	if h.metrics != nil {
		router.GET("/metrics", gin.WrapH(h.metrics.Handler()))
	}

	// Versioned read-only API
	h.registerAPIRoutes(router)

	// Minimal WebSocket connection (HTTP upgrade) — same port
	router.GET("/ws", h.wsConnect)

	return router
}

func (h *Handler) registerAPIRoutes(r *gin.Engine) {
	api := r.Group("/api/v1")
	{
		tracker := api.Group("/tracker")
		{
			tracker.GET("/state", h.getState)
			tracker.GET("/events", h.getEvents)
		}
	}
}
