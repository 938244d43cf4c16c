package handler

import (
	"balance_gateway/pkg/middleware"
	"balance_gateway/pkg/service"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

type Options struct {
	APIKey       string
	AllowOrigins []string
}

type Handler struct {
	service *service.Service
	opts    Options
}

func NewHandler(service *service.Service, opts Options) *Handler {
	return &Handler{
		service: service,
		opts:    opts,
	}
}

func (h *Handler) InitRoute() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(cors.New(h.corsConfig()))

	router.GET("/health", h.Health)

	functions := router.Group("/functions", middleware.APIKeyMiddleware(h.opts.APIKey))
	{
		functions.GET("", h.ListFunctions)
		functions.POST("/:name", h.Invoke)
	}
	return router
}

func (h *Handler) corsConfig() cors.Config {
	cfg := cors.Config{
		AllowMethods:  []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Length", "Content-Type", "Authorization", middleware.APIKeyHeader},
		ExposeHeaders: []string{"Content-Length"},
	}
	for _, origin := range h.opts.AllowOrigins {
		if origin == "*" {
			cfg.AllowAllOrigins = true
			return cfg
		}
	}
	if len(h.opts.AllowOrigins) == 0 {
		cfg.AllowAllOrigins = true
		return cfg
	}
	cfg.AllowOrigins = h.opts.AllowOrigins
	cfg.AllowCredentials = true
	return cfg
}
